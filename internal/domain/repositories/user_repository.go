package repositories

import (
	"context"

	"github.com/condogestor/condoasset-backend/internal/domain/entities"
)

// UserRepository define a interface para persistência de usuários
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	FindByID(ctx context.Context, id string) (*entities.User, error)
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	FindByCpfCnpj(ctx context.Context, cpfCnpj string) (*entities.User, error)
	FindByWhatsapp(ctx context.Context, whatsapp string) (*entities.User, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
}
