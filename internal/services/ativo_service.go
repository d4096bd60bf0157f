package services

import (
	"context"
	"time"

	"github.com/condogestor/condoasset-backend/internal/domain/authz"
	"github.com/condogestor/condoasset-backend/internal/domain/entities"
	"github.com/condogestor/condoasset-backend/internal/domain/errors"
	"github.com/condogestor/condoasset-backend/internal/domain/ports"
	"github.com/condogestor/condoasset-backend/internal/domain/repositories"
)

// defaultAtivos são os três ativos criados automaticamente na primeira
// criação de ativo de um imóvel, nesta ordem
var defaultAtivos = []struct {
	descricao string
	local     string
}{
	{"Sistema Elétrico", "Áreas Comuns"},
	{"Sistema Hidráulico", "Áreas Comuns"},
	{"Estrutura Civil", "Geral"},
}

// AtivoService contém a lógica de negócio para ativos
type AtivoService struct {
	ativoRepo   repositories.AtivoRepository
	imovelRepo  repositories.ImovelRepository
	userRepo    repositories.UserRepository
	chamadoRepo repositories.ChamadoRepository
	sequence    repositories.AssetCodeSequence
	uow         ports.UnitOfWork
	events      ports.EventPublisher
	logger      ports.Logger
}

// NewAtivoService cria um novo AtivoService
func NewAtivoService(
	ativoRepo repositories.AtivoRepository,
	imovelRepo repositories.ImovelRepository,
	userRepo repositories.UserRepository,
	chamadoRepo repositories.ChamadoRepository,
	sequence repositories.AssetCodeSequence,
	uow ports.UnitOfWork,
	events ports.EventPublisher,
	logger ports.Logger,
) *AtivoService {
	if events == nil {
		events = noopPublisher{}
	}
	return &AtivoService{
		ativoRepo:   ativoRepo,
		imovelRepo:  imovelRepo,
		userRepo:    userRepo,
		chamadoRepo: chamadoRepo,
		sequence:    sequence,
		uow:         uow,
		events:      events,
		logger:      logger,
	}
}

// CreateAtivoInput representa os dados para criar um ativo
type CreateAtivoInput struct {
	DescricaoAtivo  string
	LocalInstalacao string

	Marca          *string
	Modelo         *string
	DataInstalacao *time.Time
	ValorCompra    *float64

	Garantia               bool
	GarantiaValidade       *time.Time
	GarantiaFornecedorInfo *entities.FornecedorGarantia

	ContratoManutencao     bool
	ContratoValidade       *time.Time
	ContratoFornecedorInfo *entities.FornecedorContrato

	RelatorioFotograficoURLs []string
}

// UpdateAtivoInput representa os dados para atualizar um ativo.
// Campos nil permanecem inalterados.
type UpdateAtivoInput struct {
	DescricaoAtivo  *string
	LocalInstalacao *string

	Marca          *string
	Modelo         *string
	DataInstalacao *time.Time
	ValorCompra    *float64

	Garantia               *bool
	GarantiaValidade       *time.Time
	GarantiaFornecedorInfo *entities.FornecedorGarantia

	ContratoManutencao     *bool
	ContratoValidade       *time.Time
	ContratoFornecedorInfo *entities.FornecedorContrato

	RelatorioFotograficoURLs []string
}

// Create cria um ativo no imóvel. Na primeira criação do imóvel, os três
// ativos padrão são inseridos antes, cada um consumindo um código da
// sequência; o ativo solicitado recebe então o código seguinte. Tudo roda
// em uma única transação.
func (s *AtivoService) Create(ctx context.Context, actor Actor, imovelID string, input CreateAtivoInput) (*AtivoComRelacoes, error) {
	imovel, err := s.resolveImovel(ctx, actor, imovelID)
	if err != nil {
		return nil, err
	}

	relatorio := input.RelatorioFotograficoURLs
	if relatorio == nil {
		relatorio = []string{}
	}

	ativo := &entities.Ativo{
		ImovelID:                 imovelID,
		DescricaoAtivo:           input.DescricaoAtivo,
		LocalInstalacao:          input.LocalInstalacao,
		Marca:                    input.Marca,
		Modelo:                   input.Modelo,
		DataInstalacao:           input.DataInstalacao,
		ValorCompra:              input.ValorCompra,
		Garantia:                 input.Garantia,
		GarantiaValidade:         input.GarantiaValidade,
		GarantiaFornecedorInfo:   input.GarantiaFornecedorInfo,
		ContratoManutencao:       input.ContratoManutencao,
		ContratoValidade:         input.ContratoValidade,
		ContratoFornecedorInfo:   input.ContratoFornecedorInfo,
		RelatorioFotograficoURLs: relatorio,
	}

	err = s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		count, err := s.ativoRepo.CountByImovel(txCtx, imovelID)
		if err != nil {
			return err
		}

		// Primeiro ativo do imóvel: semear os padrões antes, para que os
		// códigos deles sejam numericamente menores que o do solicitado
		if count == 0 {
			if err := s.seedDefaults(txCtx, imovelID); err != nil {
				return err
			}
		}

		code, err := s.sequence.Next(txCtx)
		if err != nil {
			return err
		}
		ativo.AssetCode = code

		return s.ativoRepo.Create(txCtx, ativo)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("ativo criado",
		"ativo_id", ativo.ID,
		"asset_code", ativo.AssetCode,
		"imovel_id", imovelID,
	)
	s.events.Publish(actor.ID, ports.Event{Type: "ativo.created", Resource: "ativo", ID: ativo.ID, ImovelID: imovelID})

	return s.enrich(ctx, ativo, imovel)
}

// seedDefaults insere os três ativos padrão do imóvel, cada um com flags em
// falso, relatório fotográfico vazio e um código próprio da sequência
func (s *AtivoService) seedDefaults(ctx context.Context, imovelID string) error {
	for _, def := range defaultAtivos {
		code, err := s.sequence.Next(ctx)
		if err != nil {
			return err
		}

		seeded := &entities.Ativo{
			ImovelID:                 imovelID,
			AssetCode:                code,
			DescricaoAtivo:           def.descricao,
			LocalInstalacao:          def.local,
			Garantia:                 false,
			ContratoManutencao:       false,
			RelatorioFotograficoURLs: []string{},
		}

		if err := s.ativoRepo.Create(ctx, seeded); err != nil {
			return err
		}
	}

	s.logger.Info("ativos padrao criados", "imovel_id", imovelID)
	return nil
}

// ListByImovel lista os ativos do imóvel ordenados por asset_code
func (s *AtivoService) ListByImovel(ctx context.Context, actor Actor, imovelID string) ([]*AtivoComRelacoes, error) {
	imovel, err := s.resolveImovel(ctx, actor, imovelID)
	if err != nil {
		return nil, err
	}

	ativos, err := s.ativoRepo.ListByImovel(ctx, imovelID)
	if err != nil {
		return nil, err
	}

	result := make([]*AtivoComRelacoes, 0, len(ativos))
	for _, ativo := range ativos {
		enriched, err := s.enrich(ctx, ativo, imovel)
		if err != nil {
			return nil, err
		}
		result = append(result, enriched)
	}
	return result, nil
}

// GetOne retorna a visão de detalhe de um ativo
func (s *AtivoService) GetOne(ctx context.Context, actor Actor, imovelID, ativoID string) (*AtivoDetalhe, error) {
	imovel, err := s.resolveImovel(ctx, actor, imovelID)
	if err != nil {
		return nil, err
	}

	ativo, err := s.ativoRepo.FindByID(ctx, imovelID, ativoID)
	if err != nil {
		return nil, err
	}
	if ativo == nil {
		return nil, errors.ErrAtivoNotFound
	}

	enriched, err := s.enrich(ctx, ativo, imovel)
	if err != nil {
		return nil, err
	}

	gestor, err := s.userRepo.FindByID(ctx, imovel.GestorID)
	if err != nil {
		return nil, err
	}

	chamados, err := s.chamadoRepo.ListRecentByAtivo(ctx, ativoID, recentChamadosLimit)
	if err != nil {
		return nil, err
	}

	return &AtivoDetalhe{
		AtivoComRelacoes: *enriched,
		Gestor:           toGestorSummary(gestor),
		ChamadosRecentes: toChamadoSummaries(chamados),
	}, nil
}

// Update atualiza um ativo do imóvel
func (s *AtivoService) Update(ctx context.Context, actor Actor, imovelID, ativoID string, input UpdateAtivoInput) (*AtivoComRelacoes, error) {
	imovel, err := s.resolveImovel(ctx, actor, imovelID)
	if err != nil {
		return nil, err
	}

	ativo, err := s.ativoRepo.FindByID(ctx, imovelID, ativoID)
	if err != nil {
		return nil, err
	}
	if ativo == nil {
		return nil, errors.ErrAtivoNotFound
	}

	if input.DescricaoAtivo != nil {
		ativo.DescricaoAtivo = *input.DescricaoAtivo
	}
	if input.LocalInstalacao != nil {
		ativo.LocalInstalacao = *input.LocalInstalacao
	}
	if input.Marca != nil {
		ativo.Marca = input.Marca
	}
	if input.Modelo != nil {
		ativo.Modelo = input.Modelo
	}
	if input.DataInstalacao != nil {
		ativo.DataInstalacao = input.DataInstalacao
	}
	if input.ValorCompra != nil {
		ativo.ValorCompra = input.ValorCompra
	}
	if input.Garantia != nil {
		ativo.Garantia = *input.Garantia
	}
	if input.GarantiaValidade != nil {
		ativo.GarantiaValidade = input.GarantiaValidade
	}
	if input.GarantiaFornecedorInfo != nil {
		ativo.GarantiaFornecedorInfo = input.GarantiaFornecedorInfo
	}
	if input.ContratoManutencao != nil {
		ativo.ContratoManutencao = *input.ContratoManutencao
	}
	if input.ContratoValidade != nil {
		ativo.ContratoValidade = input.ContratoValidade
	}
	if input.ContratoFornecedorInfo != nil {
		ativo.ContratoFornecedorInfo = input.ContratoFornecedorInfo
	}
	if input.RelatorioFotograficoURLs != nil {
		ativo.RelatorioFotograficoURLs = input.RelatorioFotograficoURLs
	}

	if err := s.ativoRepo.Update(ctx, ativo); err != nil {
		return nil, err
	}

	s.events.Publish(actor.ID, ports.Event{Type: "ativo.updated", Resource: "ativo", ID: ativo.ID, ImovelID: imovelID})

	return s.enrich(ctx, ativo, imovel)
}

// Delete exclui um ativo; bloqueado enquanto houver chamados vinculados
func (s *AtivoService) Delete(ctx context.Context, actor Actor, imovelID, ativoID string) error {
	_, err := s.resolveImovel(ctx, actor, imovelID)
	if err != nil {
		return err
	}

	ativo, err := s.ativoRepo.FindByID(ctx, imovelID, ativoID)
	if err != nil {
		return err
	}
	if ativo == nil {
		return errors.ErrAtivoNotFound
	}

	totalChamados, err := s.chamadoRepo.CountByAtivo(ctx, ativoID)
	if err != nil {
		return err
	}
	if totalChamados > 0 {
		return errors.ErrAtivoComChamados
	}

	if err := s.ativoRepo.Delete(ctx, ativoID); err != nil {
		return err
	}

	s.logger.Info("ativo excluido", "ativo_id", ativoID, "imovel_id", imovelID)
	s.events.Publish(actor.ID, ports.Event{Type: "ativo.deleted", Resource: "ativo", ID: ativoID, ImovelID: imovelID})

	return nil
}

// resolveImovel aplica a ordem fixa de checagens sobre o imóvel pai:
// papel, existência e propriedade
func (s *AtivoService) resolveImovel(ctx context.Context, actor Actor, imovelID string) (*entities.Imovel, error) {
	if err := authz.CheckRole(actor.UserType); err != nil {
		return nil, err
	}

	imovel, err := s.imovelRepo.FindByID(ctx, imovelID)
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

// enrich monta a visão desnormalizada com o resumo do imóvel e a contagem
// de chamados
func (s *AtivoService) enrich(ctx context.Context, ativo *entities.Ativo, imovel *entities.Imovel) (*AtivoComRelacoes, error) {
	totalChamados, err := s.chamadoRepo.CountByAtivo(ctx, ativo.ID)
	if err != nil {
		return nil, err
	}

	return &AtivoComRelacoes{
		Ativo:         ativo,
		Imovel:        toImovelSummary(imovel),
		TotalChamados: totalChamados,
	}, nil
}
