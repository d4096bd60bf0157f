package repositories

import (
	"context"

	"github.com/condogestor/condoasset-backend/internal/domain/entities"
)

// ImovelRepository define a interface para persistência de imóveis
type ImovelRepository interface {
	Create(ctx context.Context, imovel *entities.Imovel) error
	FindByID(ctx context.Context, id string) (*entities.Imovel, error)
	FindByCnpj(ctx context.Context, cnpj string) (*entities.Imovel, error)
	ListByGestor(ctx context.Context, gestorID string) ([]*entities.Imovel, error)
	Update(ctx context.Context, imovel *entities.Imovel) error
	Delete(ctx context.Context, id string) error
}
