package authz

import (
	"github.com/condogestor/condoasset-backend/internal/domain/entities"
	"github.com/condogestor/condoasset-backend/internal/domain/errors"
)

// CheckRole nega qualquer operação de imóvel/ativo para prestadores.
// Executa antes da checagem de existência do recurso.
func CheckRole(userType entities.UserType) error {
	if userType == entities.UserTypePrestador {
		return errors.ErrPrestadorSemAcesso
	}
	return nil
}

// Authorize é o predicado único de autorização de imóveis e ativos:
// prestadores são negados incondicionalmente e qualquer outro ator precisa
// ser o gestor dono do recurso. A checagem de existência já deve ter
// ocorrido; aqui um não-dono recebe sempre forbidden.
func Authorize(userType entities.UserType, actorID, gestorID string) error {
	if err := CheckRole(userType); err != nil {
		return err
	}
	if gestorID != actorID {
		return errors.ErrSemPermissao
	}
	return nil
}
