package repositories

import (
	"context"

	"github.com/condogestor/condoasset-backend/internal/domain/entities"
)

// AtivoRepository define a interface para persistência de ativos
type AtivoRepository interface {
	Create(ctx context.Context, ativo *entities.Ativo) error
	// FindByID resolve um ativo dentro do escopo de um imóvel
	FindByID(ctx context.Context, imovelID, ativoID string) (*entities.Ativo, error)
	// ListByImovel retorna os ativos do imóvel ordenados por asset_code
	ListByImovel(ctx context.Context, imovelID string) ([]*entities.Ativo, error)
	CountByImovel(ctx context.Context, imovelID string) (int64, error)
	Update(ctx context.Context, ativo *entities.Ativo) error
	Delete(ctx context.Context, id string) error
}

// AssetCodeSequence emite códigos de ativo sequenciais. A implementação deve
// ser atômica: duas chamadas concorrentes nunca retornam o mesmo código.
type AssetCodeSequence interface {
	Next(ctx context.Context) (string, error)
}
