package authz

import (
	errs "errors"
	"testing"

	"github.com/condogestor/condoasset-backend/internal/domain/entities"
	"github.com/condogestor/condoasset-backend/internal/domain/errors"
)

func TestCheckRole(t *testing.T) {
	t.Run("nega prestadores", func(t *testing.T) {
		err := CheckRole(entities.UserTypePrestador)
		if !errs.Is(err, errors.ErrPrestadorSemAcesso) {
			t.Fatalf("esperava ErrPrestadorSemAcesso, obteve %v", err)
		}
	})

	t.Run("permite os demais tipos", func(t *testing.T) {
		for _, userType := range []entities.UserType{
			entities.UserTypeSindicoResidente,
			entities.UserTypeSindicoProfissional,
			entities.UserTypeAdminImoveis,
		} {
			if err := CheckRole(userType); err != nil {
				t.Errorf("%s: erro inesperado %v", userType, err)
			}
		}
	})
}

func TestAuthorize(t *testing.T) {
	t.Run("permite o gestor dono", func(t *testing.T) {
		if err := Authorize(entities.UserTypeSindicoResidente, "gestor-1", "gestor-1"); err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
	})

	t.Run("nega não-dono com forbidden", func(t *testing.T) {
		err := Authorize(entities.UserTypeAdminImoveis, "gestor-2", "gestor-1")
		if !errs.Is(err, errors.ErrSemPermissao) {
			t.Fatalf("esperava ErrSemPermissao, obteve %v", err)
		}
	})

	t.Run("prestador é negado mesmo sendo o dono", func(t *testing.T) {
		err := Authorize(entities.UserTypePrestador, "gestor-1", "gestor-1")
		if !errs.Is(err, errors.ErrPrestadorSemAcesso) {
			t.Fatalf("esperava ErrPrestadorSemAcesso, obteve %v", err)
		}
	})
}
