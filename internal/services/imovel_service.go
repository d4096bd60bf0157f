package services

import (
	"context"

	"github.com/condogestor/condoasset-backend/internal/domain/authz"
	"github.com/condogestor/condoasset-backend/internal/domain/entities"
	"github.com/condogestor/condoasset-backend/internal/domain/errors"
	"github.com/condogestor/condoasset-backend/internal/domain/ports"
	"github.com/condogestor/condoasset-backend/internal/domain/repositories"
	"github.com/condogestor/condoasset-backend/internal/domain/valueobjects"
)

// ImovelService contém a lógica de negócio para imóveis
type ImovelService struct {
	imovelRepo  repositories.ImovelRepository
	userRepo    repositories.UserRepository
	ativoRepo   repositories.AtivoRepository
	chamadoRepo repositories.ChamadoRepository
	events      ports.EventPublisher
	logger      ports.Logger
}

// NewImovelService cria um novo ImovelService
func NewImovelService(
	imovelRepo repositories.ImovelRepository,
	userRepo repositories.UserRepository,
	ativoRepo repositories.AtivoRepository,
	chamadoRepo repositories.ChamadoRepository,
	events ports.EventPublisher,
	logger ports.Logger,
) *ImovelService {
	if events == nil {
		events = noopPublisher{}
	}
	return &ImovelService{
		imovelRepo:  imovelRepo,
		userRepo:    userRepo,
		ativoRepo:   ativoRepo,
		chamadoRepo: chamadoRepo,
		events:      events,
		logger:      logger,
	}
}

// CreateImovelInput representa os dados para criar um imóvel
type CreateImovelInput struct {
	Cnpj               string
	NomeFantasia       string
	RazaoSocial        string
	Cep                string
	Endereco           string
	Cidade             string
	UF                 string
	RegimeTributario   *entities.RegimeTributario
	QuantidadeMoradias int
	AreasComuns        []string
	EstatutoURL        *string
}

// UpdateImovelInput representa os dados para atualizar um imóvel.
// Campos nil permanecem inalterados.
type UpdateImovelInput struct {
	Cnpj               *string
	NomeFantasia       *string
	RazaoSocial        *string
	Cep                *string
	Endereco           *string
	Cidade             *string
	UF                 *string
	RegimeTributario   *entities.RegimeTributario
	QuantidadeMoradias *int
	AreasComuns        []string
	EstatutoURL        *string
}

// Create cria um novo imóvel pertencente ao ator
func (s *ImovelService) Create(ctx context.Context, actor Actor, input CreateImovelInput) (*ImovelComRelacoes, error) {
	if err := authz.CheckRole(actor.UserType); err != nil {
		return nil, err
	}

	cnpj, err := valueobjects.NewCNPJ(input.Cnpj)
	if err != nil {
		return nil, errors.ErrCnpjInvalido
	}

	// CNPJ é único entre todos os imóveis
	existing, err := s.imovelRepo.FindByCnpj(ctx, cnpj.String())
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.ErrCnpjEmUso
	}

	areasComuns := input.AreasComuns
	if areasComuns == nil {
		areasComuns = []string{}
	}

	imovel := &entities.Imovel{
		GestorID:           actor.ID,
		Cnpj:               cnpj.String(),
		NomeFantasia:       input.NomeFantasia,
		RazaoSocial:        input.RazaoSocial,
		Cep:                input.Cep,
		Endereco:           input.Endereco,
		Cidade:             input.Cidade,
		UF:                 input.UF,
		RegimeTributario:   input.RegimeTributario,
		QuantidadeMoradias: input.QuantidadeMoradias,
		AreasComuns:        areasComuns,
		EstatutoURL:        input.EstatutoURL,
	}

	if err := s.imovelRepo.Create(ctx, imovel); err != nil {
		return nil, err
	}

	s.logger.Info("imovel criado", "imovel_id", imovel.ID, "gestor_id", actor.ID)
	s.events.Publish(actor.ID, ports.Event{Type: "imovel.created", Resource: "imovel", ID: imovel.ID})

	return s.enrich(ctx, imovel)
}

// ListByGestor lista os imóveis do ator com gestor e contagens
func (s *ImovelService) ListByGestor(ctx context.Context, actor Actor) ([]*ImovelComRelacoes, error) {
	if err := authz.CheckRole(actor.UserType); err != nil {
		return nil, err
	}

	imoveis, err := s.imovelRepo.ListByGestor(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	result := make([]*ImovelComRelacoes, 0, len(imoveis))
	for _, imovel := range imoveis {
		enriched, err := s.enrich(ctx, imovel)
		if err != nil {
			return nil, err
		}
		result = append(result, enriched)
	}
	return result, nil
}

// GetOne retorna a visão de detalhe de um imóvel do ator
func (s *ImovelService) GetOne(ctx context.Context, actor Actor, id string) (*ImovelDetalhe, error) {
	imovel, err := s.resolveOwned(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	enriched, err := s.enrich(ctx, imovel)
	if err != nil {
		return nil, err
	}

	ativos, err := s.ativoRepo.ListByImovel(ctx, id)
	if err != nil {
		return nil, err
	}

	chamados, err := s.chamadoRepo.ListRecentByImovel(ctx, id, recentChamadosLimit)
	if err != nil {
		return nil, err
	}

	return &ImovelDetalhe{
		ImovelComRelacoes: *enriched,
		Ativos:            toAtivoSummaries(ativos),
		ChamadosRecentes:  toChamadoSummaries(chamados),
	}, nil
}

// Update atualiza um imóvel do ator
func (s *ImovelService) Update(ctx context.Context, actor Actor, id string, input UpdateImovelInput) (*ImovelComRelacoes, error) {
	imovel, err := s.resolveOwned(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	// CNPJ só é revalidado quando está sendo alterado
	if input.Cnpj != nil && *input.Cnpj != imovel.Cnpj {
		cnpj, err := valueobjects.NewCNPJ(*input.Cnpj)
		if err != nil {
			return nil, errors.ErrCnpjInvalido
		}
		existing, err := s.imovelRepo.FindByCnpj(ctx, cnpj.String())
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, errors.ErrCnpjEmUso
		}
		imovel.Cnpj = cnpj.String()
	}

	if input.NomeFantasia != nil {
		imovel.NomeFantasia = *input.NomeFantasia
	}
	if input.RazaoSocial != nil {
		imovel.RazaoSocial = *input.RazaoSocial
	}
	if input.Cep != nil {
		imovel.Cep = *input.Cep
	}
	if input.Endereco != nil {
		imovel.Endereco = *input.Endereco
	}
	if input.Cidade != nil {
		imovel.Cidade = *input.Cidade
	}
	if input.UF != nil {
		imovel.UF = *input.UF
	}
	if input.RegimeTributario != nil {
		imovel.RegimeTributario = input.RegimeTributario
	}
	if input.QuantidadeMoradias != nil {
		imovel.QuantidadeMoradias = *input.QuantidadeMoradias
	}
	if input.AreasComuns != nil {
		imovel.AreasComuns = input.AreasComuns
	}
	if input.EstatutoURL != nil {
		imovel.EstatutoURL = input.EstatutoURL
	}

	if err := s.imovelRepo.Update(ctx, imovel); err != nil {
		return nil, err
	}

	s.events.Publish(actor.ID, ports.Event{Type: "imovel.updated", Resource: "imovel", ID: imovel.ID})

	return s.enrich(ctx, imovel)
}

// Delete exclui um imóvel do ator; bloqueado enquanto houver ativos ou
// chamados vinculados
func (s *ImovelService) Delete(ctx context.Context, actor Actor, id string) error {
	_, err := s.resolveOwned(ctx, actor, id)
	if err != nil {
		return err
	}

	totalAtivos, err := s.ativoRepo.CountByImovel(ctx, id)
	if err != nil {
		return err
	}
	totalChamados, err := s.chamadoRepo.CountByImovel(ctx, id)
	if err != nil {
		return err
	}
	if totalAtivos > 0 || totalChamados > 0 {
		return errors.ErrImovelComVinculos
	}

	if err := s.imovelRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("imovel excluido", "imovel_id", id, "gestor_id", actor.ID)
	s.events.Publish(actor.ID, ports.Event{Type: "imovel.deleted", Resource: "imovel", ID: id})

	return nil
}

// resolveOwned aplica a ordem fixa de checagens: papel, existência e
// propriedade. Um não-dono só recebe not found quando o imóvel não existe.
func (s *ImovelService) resolveOwned(ctx context.Context, actor Actor, id string) (*entities.Imovel, error) {
	if err := authz.CheckRole(actor.UserType); err != nil {
		return nil, err
	}

	imovel, err := s.imovelRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if imovel == nil {
		return nil, errors.ErrImovelNotFound
	}

	if err := authz.Authorize(actor.UserType, actor.ID, imovel.GestorID); err != nil {
		return nil, err
	}

	return imovel, nil
}

// enrich monta a visão desnormalizada com gestor e contagens
func (s *ImovelService) enrich(ctx context.Context, imovel *entities.Imovel) (*ImovelComRelacoes, error) {
	gestor, err := s.userRepo.FindByID(ctx, imovel.GestorID)
	if err != nil {
		return nil, err
	}

	totalAtivos, err := s.ativoRepo.CountByImovel(ctx, imovel.ID)
	if err != nil {
		return nil, err
	}

	totalChamados, err := s.chamadoRepo.CountByImovel(ctx, imovel.ID)
	if err != nil {
		return nil, err
	}

	return &ImovelComRelacoes{
		Imovel:        imovel,
		Gestor:        toGestorSummary(gestor),
		TotalAtivos:   totalAtivos,
		TotalChamados: totalChamados,
	}, nil
}
