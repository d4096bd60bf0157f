package services

import (
	"context"
	errs "errors"
	"testing"

	"github.com/condogestor/condoasset-backend/internal/domain/entities"
	"github.com/condogestor/condoasset-backend/internal/domain/errors"
)

type imovelFixture struct {
	service     *ImovelService
	userRepo    *fakeUserRepo
	imovelRepo  *fakeImovelRepo
	ativoRepo   *fakeAtivoRepo
	chamadoRepo *fakeChamadoRepo
	publisher   *capturePublisher
	gestor      Actor
}

func newImovelFixture(t *testing.T) *imovelFixture {
	t.Helper()

	f := &imovelFixture{
		userRepo:    newFakeUserRepo(),
		imovelRepo:  newFakeImovelRepo(),
		ativoRepo:   newFakeAtivoRepo(),
		chamadoRepo: newFakeChamadoRepo(),
		publisher:   &capturePublisher{},
	}
	f.service = NewImovelService(f.imovelRepo, f.userRepo, f.ativoRepo, f.chamadoRepo, f.publisher, nopLogger{})

	owner := &entities.User{
		Name:     "Maria Souza",
		Email:    "maria@example.com",
		CpfCnpj:  "12345678901",
		Whatsapp: "11999990000",
		UserType: entities.UserTypeSindicoResidente,
	}
	if err := f.userRepo.Create(context.Background(), owner); err != nil {
		t.Fatalf("falha ao criar gestor: %v", err)
	}
	f.gestor = Actor{ID: owner.ID, UserType: owner.UserType}

	return f
}

func validImovelInput() CreateImovelInput {
	return CreateImovelInput{
		Cnpj:               "12.345.678/0001-95",
		NomeFantasia:       "Condomínio Jardim",
		RazaoSocial:        "Condomínio Jardim Ltda",
		Cep:                "01310-100",
		Endereco:           "Av. Paulista, 1000",
		Cidade:             "São Paulo",
		UF:                 "SP",
		QuantidadeMoradias: 40,
	}
}

func TestImovelService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("cria imóvel vinculado ao gestor autenticado", func(t *testing.T) {
		f := newImovelFixture(t)

		view, err := f.service.Create(ctx, f.gestor, validImovelInput())
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}

		if view.Imovel.GestorID != f.gestor.ID {
			t.Errorf("esperava gestor_id %q, obteve %q", f.gestor.ID, view.Imovel.GestorID)
		}
		if view.Gestor.Name != "Maria Souza" {
			t.Errorf("esperava resumo do gestor, obteve %q", view.Gestor.Name)
		}
		if view.TotalAtivos != 0 || view.TotalChamados != 0 {
			t.Errorf("esperava contagens zeradas, obteve %d/%d", view.TotalAtivos, view.TotalChamados)
		}
		if view.Imovel.AreasComuns == nil {
			t.Error("áreas comuns devem ser inicializadas como lista vazia")
		}
	})

	t.Run("rejeita CNPJ malformado", func(t *testing.T) {
		f := newImovelFixture(t)

		input := validImovelInput()
		input.Cnpj = "123"

		_, err := f.service.Create(ctx, f.gestor, input)
		if !errs.Is(err, errors.ErrCnpjInvalido) {
			t.Fatalf("esperava ErrCnpjInvalido, obteve %v", err)
		}
	})

	t.Run("rejeita CNPJ já cadastrado", func(t *testing.T) {
		f := newImovelFixture(t)

		if _, err := f.service.Create(ctx, f.gestor, validImovelInput()); err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}

		input := validImovelInput()
		input.NomeFantasia = "Outro Condomínio"

		_, err := f.service.Create(ctx, f.gestor, input)
		if !errs.Is(err, errors.ErrCnpjEmUso) {
			t.Fatalf("esperava ErrCnpjEmUso, obteve %v", err)
		}
	})

	t.Run("nega acesso a prestadores", func(t *testing.T) {
		f := newImovelFixture(t)

		prestador := Actor{ID: "qualquer", UserType: entities.UserTypePrestador}
		_, err := f.service.Create(ctx, prestador, validImovelInput())
		if !errs.Is(err, errors.ErrPrestadorSemAcesso) {
			t.Fatalf("esperava ErrPrestadorSemAcesso, obteve %v", err)
		}
	})

	t.Run("publica evento imovel.created", func(t *testing.T) {
		f := newImovelFixture(t)

		view, err := f.service.Create(ctx, f.gestor, validImovelInput())
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}

		events := f.publisher.published()
		if len(events) != 1 {
			t.Fatalf("esperava 1 evento, obteve %d", len(events))
		}
		if events[0].Event.Type != "imovel.created" || events[0].Event.ID != view.Imovel.ID {
			t.Errorf("evento inesperado: %+v", events[0])
		}
	})
}

func TestImovelService_ListByGestor(t *testing.T) {
	ctx := context.Background()

	t.Run("lista apenas os imóveis do ator", func(t *testing.T) {
		f := newImovelFixture(t)

		if _, err := f.service.Create(ctx, f.gestor, validImovelInput()); err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}

		outro := &entities.Imovel{
			GestorID:           "outro-gestor",
			Cnpj:               "11.222.333/0001-81",
			NomeFantasia:       "Condomínio Lago",
			RazaoSocial:        "Condomínio Lago Ltda",
			Cep:                "04567-000",
			Endereco:           "Rua do Lago, 50",
			Cidade:             "São Paulo",
			UF:                 "SP",
			QuantidadeMoradias: 12,
		}
		if err := f.imovelRepo.Create(ctx, outro); err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}

		views, err := f.service.ListByGestor(ctx, f.gestor)
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if len(views) != 1 {
			t.Fatalf("esperava 1 imóvel, obteve %d", len(views))
		}
		if views[0].Imovel.NomeFantasia != "Condomínio Jardim" {
			t.Errorf("imóvel inesperado: %q", views[0].Imovel.NomeFantasia)
		}
	})
}

func TestImovelService_GetOne(t *testing.T) {
	ctx := context.Background()

	t.Run("não-dono recebe forbidden quando o imóvel existe", func(t *testing.T) {
		f := newImovelFixture(t)

		view, err := f.service.Create(ctx, f.gestor, validImovelInput())
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}

		outro := &entities.User{
			Name:     "João Lima",
			Email:    "joao@example.com",
			CpfCnpj:  "98765432100",
			Whatsapp: "11888880000",
			UserType: entities.UserTypeAdminImoveis,
		}
		if err := f.userRepo.Create(ctx, outro); err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}

		_, err = f.service.GetOne(ctx, Actor{ID: outro.ID, UserType: outro.UserType}, view.Imovel.ID)
		if !errs.Is(err, errors.ErrSemPermissao) {
			t.Fatalf("esperava ErrSemPermissao, obteve %v", err)
		}
	})

	t.Run("retorna not found para imóvel inexistente", func(t *testing.T) {
		f := newImovelFixture(t)

		_, err := f.service.GetOne(ctx, f.gestor, "nao-existe")
		if !errs.Is(err, errors.ErrImovelNotFound) {
			t.Fatalf("esperava ErrImovelNotFound, obteve %v", err)
		}
	})
}

func TestImovelService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("atualiza apenas os campos informados", func(t *testing.T) {
		f := newImovelFixture(t)

		view, err := f.service.Create(ctx, f.gestor, validImovelInput())
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}

		nome := "Condomínio Jardim Renovado"
		updated, err := f.service.Update(ctx, f.gestor, view.Imovel.ID, UpdateImovelInput{
			NomeFantasia: &nome,
		})
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if updated.Imovel.NomeFantasia != nome {
			t.Errorf("esperava %q, obteve %q", nome, updated.Imovel.NomeFantasia)
		}
		if updated.Imovel.Cnpj != view.Imovel.Cnpj {
			t.Errorf("CNPJ não deveria mudar, obteve %q", updated.Imovel.Cnpj)
		}
	})

	t.Run("permite reenviar o próprio CNPJ sem conflito", func(t *testing.T) {
		f := newImovelFixture(t)

		view, err := f.service.Create(ctx, f.gestor, validImovelInput())
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}

		mesmo := view.Imovel.Cnpj
		if _, err := f.service.Update(ctx, f.gestor, view.Imovel.ID, UpdateImovelInput{Cnpj: &mesmo}); err != nil {
			t.Fatalf("reenvio do próprio CNPJ não deve conflitar: %v", err)
		}
	})

	t.Run("rejeita troca para CNPJ de outro imóvel", func(t *testing.T) {
		f := newImovelFixture(t)

		view, err := f.service.Create(ctx, f.gestor, validImovelInput())
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}

		segundo := validImovelInput()
		segundo.Cnpj = "11.222.333/0001-81"
		if _, err := f.service.Create(ctx, f.gestor, segundo); err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}

		conflitante := "11.222.333/0001-81"
		_, err = f.service.Update(ctx, f.gestor, view.Imovel.ID, UpdateImovelInput{Cnpj: &conflitante})
		if !errs.Is(err, errors.ErrCnpjEmUso) {
			t.Fatalf("esperava ErrCnpjEmUso, obteve %v", err)
		}
	})
}

func TestImovelService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("exclui imóvel sem vínculos", func(t *testing.T) {
		f := newImovelFixture(t)

		view, err := f.service.Create(ctx, f.gestor, validImovelInput())
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}

		if err := f.service.Delete(ctx, f.gestor, view.Imovel.ID); err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}

		found, err := f.imovelRepo.FindByID(ctx, view.Imovel.ID)
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if found != nil {
			t.Error("imóvel deveria ter sido excluído")
		}
	})

	t.Run("bloqueia exclusão com ativos vinculados", func(t *testing.T) {
		f := newImovelFixture(t)

		view, err := f.service.Create(ctx, f.gestor, validImovelInput())
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}

		ativo := &entities.Ativo{
			ImovelID:        view.Imovel.ID,
			AssetCode:       "00001",
			DescricaoAtivo:  "Elevador",
			LocalInstalacao: "Torre A",
		}
		if err := f.ativoRepo.Create(ctx, ativo); err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}

		err = f.service.Delete(ctx, f.gestor, view.Imovel.ID)
		if !errs.Is(err, errors.ErrImovelComVinculos) {
			t.Fatalf("esperava ErrImovelComVinculos, obteve %v", err)
		}
	})

	t.Run("bloqueia exclusão com chamados vinculados", func(t *testing.T) {
		f := newImovelFixture(t)

		view, err := f.service.Create(ctx, f.gestor, validImovelInput())
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}

		f.chamadoRepo.countsByImovel[view.Imovel.ID] = 1

		err = f.service.Delete(ctx, f.gestor, view.Imovel.ID)
		if !errs.Is(err, errors.ErrImovelComVinculos) {
			t.Fatalf("esperava ErrImovelComVinculos, obteve %v", err)
		}
	})
}
