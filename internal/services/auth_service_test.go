package services

import (
	"context"
	errs "errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/condogestor/condoasset-backend/internal/domain/entities"
	"github.com/condogestor/condoasset-backend/internal/domain/errors"
)

// fakeTokenIssuer emite tokens previsíveis para os testes
type fakeTokenIssuer struct{}

func (fakeTokenIssuer) Generate(user *entities.User) (string, error) {
	return "token-" + user.ID, nil
}

func newAuthService(t *testing.T) (*AuthService, *fakeUserRepo) {
	t.Helper()

	userRepo := newFakeUserRepo()
	service := NewAuthService(userRepo, fakeTokenIssuer{}, nopLogger{})
	return service, userRepo
}

func validRegisterInput() RegisterInput {
	return RegisterInput{
		Name:                 "Maria Souza",
		CpfCnpj:              "12345678901",
		Whatsapp:             "11999990000",
		Email:                "maria@example.com",
		Password:             "senha-secreta",
		PasswordConfirmation: "senha-secreta",
		UserType:             entities.UserTypeSindicoResidente,
	}
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("cadastra usuário e emite token", func(t *testing.T) {
		service, _ := newAuthService(t)

		result, err := service.Register(ctx, validRegisterInput())
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}

		if result.User.ID == "" {
			t.Error("usuário deveria receber um ID")
		}
		if result.Token != "token-"+result.User.ID {
			t.Errorf("token inesperado: %q", result.Token)
		}
		if result.User.PasswordHash == "senha-secreta" {
			t.Error("senha não deveria ser armazenada em claro")
		}
		if err := bcrypt.CompareHashAndPassword([]byte(result.User.PasswordHash), []byte("senha-secreta")); err != nil {
			t.Errorf("hash da senha não confere: %v", err)
		}
	})

	t.Run("rejeita confirmação de senha divergente", func(t *testing.T) {
		service, _ := newAuthService(t)

		input := validRegisterInput()
		input.PasswordConfirmation = "outra-senha"

		_, err := service.Register(ctx, input)
		if !errs.Is(err, errors.ErrSenhasNaoCoincidem) {
			t.Fatalf("esperava ErrSenhasNaoCoincidem, obteve %v", err)
		}
	})

	t.Run("rejeita email já cadastrado", func(t *testing.T) {
		service, _ := newAuthService(t)

		if _, err := service.Register(ctx, validRegisterInput()); err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}

		input := validRegisterInput()
		input.CpfCnpj = "98765432100"
		input.Whatsapp = "11888880000"

		_, err := service.Register(ctx, input)
		if !errs.Is(err, errors.ErrEmailEmUso) {
			t.Fatalf("esperava ErrEmailEmUso, obteve %v", err)
		}
	})

	t.Run("rejeita CPF/CNPJ já cadastrado", func(t *testing.T) {
		service, _ := newAuthService(t)

		if _, err := service.Register(ctx, validRegisterInput()); err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}

		input := validRegisterInput()
		input.Email = "outra@example.com"
		input.Whatsapp = "11888880000"

		_, err := service.Register(ctx, input)
		if !errs.Is(err, errors.ErrCpfCnpjEmUso) {
			t.Fatalf("esperava ErrCpfCnpjEmUso, obteve %v", err)
		}
	})

	t.Run("rejeita whatsapp já cadastrado", func(t *testing.T) {
		service, _ := newAuthService(t)

		if _, err := service.Register(ctx, validRegisterInput()); err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}

		input := validRegisterInput()
		input.Email = "outra@example.com"
		input.CpfCnpj = "98765432100"

		_, err := service.Register(ctx, input)
		if !errs.Is(err, errors.ErrWhatsappEmUso) {
			t.Fatalf("esperava ErrWhatsappEmUso, obteve %v", err)
		}
	})

	t.Run("ignora campos de empresa para síndicos", func(t *testing.T) {
		service, _ := newAuthService(t)

		inicio := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		fim := time.Date(2027, 12, 31, 0, 0, 0, 0, time.UTC)
		nomeFantasia := "Não Deveria Persistir"

		input := validRegisterInput()
		input.PeriodoMandatoInicio = &inicio
		input.PeriodoMandatoFim = &fim
		input.NomeFantasia = &nomeFantasia

		result, err := service.Register(ctx, input)
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if result.User.PeriodoMandatoInicio == nil || !result.User.PeriodoMandatoInicio.Equal(inicio) {
			t.Error("período de mandato deveria ser persistido para síndicos")
		}
		if result.User.NomeFantasia != nil {
			t.Error("campos de empresa não se aplicam a síndicos")
		}
	})

	t.Run("prestador recebe segmentos de atuação vazios quando omitidos", func(t *testing.T) {
		service, _ := newAuthService(t)

		input := validRegisterInput()
		input.UserType = entities.UserTypePrestador

		result, err := service.Register(ctx, input)
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if result.User.SegmentosAtuacao == nil {
			t.Error("segmentos de atuação deveriam ser lista vazia")
		}
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("autentica com credenciais corretas", func(t *testing.T) {
		service, _ := newAuthService(t)

		registered, err := service.Register(ctx, validRegisterInput())
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}

		result, err := service.Login(ctx, "maria@example.com", "senha-secreta")
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if result.User.ID != registered.User.ID {
			t.Errorf("usuário inesperado: %q", result.User.ID)
		}
	})

	t.Run("rejeita senha incorreta", func(t *testing.T) {
		service, _ := newAuthService(t)

		if _, err := service.Register(ctx, validRegisterInput()); err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}

		_, err := service.Login(ctx, "maria@example.com", "senha-errada")
		if !errs.Is(err, errors.ErrCredenciaisInvalidas) {
			t.Fatalf("esperava ErrCredenciaisInvalidas, obteve %v", err)
		}
	})

	t.Run("email desconhecido recebe o mesmo erro de credenciais", func(t *testing.T) {
		service, _ := newAuthService(t)

		_, err := service.Login(ctx, "ninguem@example.com", "qualquer")
		if !errs.Is(err, errors.ErrCredenciaisInvalidas) {
			t.Fatalf("esperava ErrCredenciaisInvalidas, obteve %v", err)
		}
	})
}

func TestAuthService_UpdatePassword(t *testing.T) {
	ctx := context.Background()

	t.Run("troca a senha e invalida a anterior", func(t *testing.T) {
		service, _ := newAuthService(t)

		registered, err := service.Register(ctx, validRegisterInput())
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}

		err = service.UpdatePassword(ctx, registered.User.ID, "senha-secreta", "nova-senha-forte", "nova-senha-forte")
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}

		if _, err := service.Login(ctx, "maria@example.com", "nova-senha-forte"); err != nil {
			t.Errorf("login com a nova senha falhou: %v", err)
		}
		if _, err := service.Login(ctx, "maria@example.com", "senha-secreta"); !errs.Is(err, errors.ErrCredenciaisInvalidas) {
			t.Errorf("senha antiga deveria ser rejeitada, obteve %v", err)
		}
	})

	t.Run("rejeita senha atual incorreta", func(t *testing.T) {
		service, _ := newAuthService(t)

		registered, err := service.Register(ctx, validRegisterInput())
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}

		err = service.UpdatePassword(ctx, registered.User.ID, "senha-errada", "nova-senha", "nova-senha")
		if !errs.Is(err, errors.ErrSenhaAtualIncorreta) {
			t.Fatalf("esperava ErrSenhaAtualIncorreta, obteve %v", err)
		}
	})

	t.Run("rejeita confirmação divergente", func(t *testing.T) {
		service, _ := newAuthService(t)

		registered, err := service.Register(ctx, validRegisterInput())
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}

		err = service.UpdatePassword(ctx, registered.User.ID, "senha-secreta", "nova-senha", "outra-senha")
		if !errs.Is(err, errors.ErrSenhasNaoCoincidem) {
			t.Fatalf("esperava ErrSenhasNaoCoincidem, obteve %v", err)
		}
	})
}

func TestAuthService_Availability(t *testing.T) {
	ctx := context.Background()

	t.Run("informa disponibilidade de email e CPF/CNPJ", func(t *testing.T) {
		service, _ := newAuthService(t)

		if _, err := service.Register(ctx, validRegisterInput()); err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}

		available, err := service.CheckEmail(ctx, "maria@example.com")
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if available {
			t.Error("email cadastrado não deveria estar disponível")
		}

		available, err = service.CheckEmail(ctx, "livre@example.com")
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if !available {
			t.Error("email livre deveria estar disponível")
		}

		available, err = service.CheckCpfCnpj(ctx, "12345678901")
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if available {
			t.Error("CPF/CNPJ cadastrado não deveria estar disponível")
		}
	})
}
