package ports

import "github.com/condogestor/condoasset-backend/internal/domain/entities"

// TokenIssuer emite tokens de acesso para usuários autenticados
type TokenIssuer interface {
	Generate(user *entities.User) (string, error)
}
