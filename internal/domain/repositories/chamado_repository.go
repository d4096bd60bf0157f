package repositories

import (
	"context"

	"github.com/condogestor/condoasset-backend/internal/domain/entities"
)

// ChamadoRepository expõe a superfície de leitura de chamados usada pelas
// visões de imóveis e ativos (contagens e chamados recentes)
type ChamadoRepository interface {
	CountByImovel(ctx context.Context, imovelID string) (int64, error)
	CountByAtivo(ctx context.Context, ativoID string) (int64, error)
	ListRecentByImovel(ctx context.Context, imovelID string, limit int) ([]*entities.Chamado, error)
	ListRecentByAtivo(ctx context.Context, ativoID string, limit int) ([]*entities.Chamado, error)
}
