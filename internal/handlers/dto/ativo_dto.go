package dto

import (
	"time"

	"github.com/condogestor/condoasset-backend/internal/domain/entities"
	"github.com/condogestor/condoasset-backend/internal/services"
)

// CreateAtivoRequest representa a requisição para criar um ativo
type CreateAtivoRequest struct {
	DescricaoAtivo  string `json:"descricao_ativo" binding:"required"`
	LocalInstalacao string `json:"local_instalacao" binding:"required"`

	Marca          *string  `json:"marca"`
	Modelo         *string  `json:"modelo"`
	DataInstalacao *string  `json:"data_instalacao" binding:"omitempty,datetime=2006-01-02"`
	ValorCompra    *float64 `json:"valor_compra"`

	Garantia               *bool                        `json:"garantia"`
	GarantiaValidade       *string                      `json:"garantia_validade" binding:"omitempty,datetime=2006-01-02"`
	GarantiaFornecedorInfo *entities.FornecedorGarantia `json:"garantia_fornecedor_info"`

	ContratoManutencao     *bool                        `json:"contrato_manutencao"`
	ContratoValidade       *string                      `json:"contrato_validade" binding:"omitempty,datetime=2006-01-02"`
	ContratoFornecedorInfo *entities.FornecedorContrato `json:"contrato_fornecedor_info"`

	RelatorioFotograficoURLs []string `json:"relatorio_fotografico_urls" binding:"omitempty,dive,url"`
}

// ToInput converte a requisição para o input do serviço
func (r *CreateAtivoRequest) ToInput() (services.CreateAtivoInput, error) {
	dataInstalacao, err := ParseDate(r.DataInstalacao)
	if err != nil {
		return services.CreateAtivoInput{}, err
	}
	garantiaValidade, err := ParseDate(r.GarantiaValidade)
	if err != nil {
		return services.CreateAtivoInput{}, err
	}
	contratoValidade, err := ParseDate(r.ContratoValidade)
	if err != nil {
		return services.CreateAtivoInput{}, err
	}

	input := services.CreateAtivoInput{
		DescricaoAtivo:           r.DescricaoAtivo,
		LocalInstalacao:          r.LocalInstalacao,
		Marca:                    r.Marca,
		Modelo:                   r.Modelo,
		DataInstalacao:           dataInstalacao,
		ValorCompra:              r.ValorCompra,
		GarantiaValidade:         garantiaValidade,
		GarantiaFornecedorInfo:   r.GarantiaFornecedorInfo,
		ContratoValidade:         contratoValidade,
		ContratoFornecedorInfo:   r.ContratoFornecedorInfo,
		RelatorioFotograficoURLs: r.RelatorioFotograficoURLs,
	}
	if r.Garantia != nil {
		input.Garantia = *r.Garantia
	}
	if r.ContratoManutencao != nil {
		input.ContratoManutencao = *r.ContratoManutencao
	}
	return input, nil
}

// UpdateAtivoRequest representa a requisição para atualizar um ativo
type UpdateAtivoRequest struct {
	DescricaoAtivo  *string `json:"descricao_ativo"`
	LocalInstalacao *string `json:"local_instalacao"`

	Marca          *string  `json:"marca"`
	Modelo         *string  `json:"modelo"`
	DataInstalacao *string  `json:"data_instalacao" binding:"omitempty,datetime=2006-01-02"`
	ValorCompra    *float64 `json:"valor_compra"`

	Garantia               *bool                        `json:"garantia"`
	GarantiaValidade       *string                      `json:"garantia_validade" binding:"omitempty,datetime=2006-01-02"`
	GarantiaFornecedorInfo *entities.FornecedorGarantia `json:"garantia_fornecedor_info"`

	ContratoManutencao     *bool                        `json:"contrato_manutencao"`
	ContratoValidade       *string                      `json:"contrato_validade" binding:"omitempty,datetime=2006-01-02"`
	ContratoFornecedorInfo *entities.FornecedorContrato `json:"contrato_fornecedor_info"`

	RelatorioFotograficoURLs []string `json:"relatorio_fotografico_urls" binding:"omitempty,dive,url"`
}

// ToInput converte a requisição para o input do serviço
func (r *UpdateAtivoRequest) ToInput() (services.UpdateAtivoInput, error) {
	dataInstalacao, err := ParseDate(r.DataInstalacao)
	if err != nil {
		return services.UpdateAtivoInput{}, err
	}
	garantiaValidade, err := ParseDate(r.GarantiaValidade)
	if err != nil {
		return services.UpdateAtivoInput{}, err
	}
	contratoValidade, err := ParseDate(r.ContratoValidade)
	if err != nil {
		return services.UpdateAtivoInput{}, err
	}

	return services.UpdateAtivoInput{
		DescricaoAtivo:           r.DescricaoAtivo,
		LocalInstalacao:          r.LocalInstalacao,
		Marca:                    r.Marca,
		Modelo:                   r.Modelo,
		DataInstalacao:           dataInstalacao,
		ValorCompra:              r.ValorCompra,
		Garantia:                 r.Garantia,
		GarantiaValidade:         garantiaValidade,
		GarantiaFornecedorInfo:   r.GarantiaFornecedorInfo,
		ContratoManutencao:       r.ContratoManutencao,
		ContratoValidade:         contratoValidade,
		ContratoFornecedorInfo:   r.ContratoFornecedorInfo,
		RelatorioFotograficoURLs: r.RelatorioFotograficoURLs,
	}, nil
}

// ImovelSummaryResponse é o resumo do imóvel nas respostas de ativos
type ImovelSummaryResponse struct {
	ID           string `json:"id"`
	NomeFantasia string `json:"nome_fantasia"`
	Cidade       string `json:"cidade"`
}

// AtivoResponse representa a resposta de um ativo com imóvel e contagens
type AtivoResponse struct {
	ID              string `json:"id"`
	ImovelID        string `json:"imovel_id"`
	AssetCode       string `json:"asset_code"`
	DescricaoAtivo  string `json:"descricao_ativo"`
	LocalInstalacao string `json:"local_instalacao"`

	Marca          *string  `json:"marca,omitempty"`
	Modelo         *string  `json:"modelo,omitempty"`
	DataInstalacao *string  `json:"data_instalacao,omitempty"`
	ValorCompra    *float64 `json:"valor_compra,omitempty"`

	Garantia               bool                         `json:"garantia"`
	GarantiaValidade       *string                      `json:"garantia_validade,omitempty"`
	GarantiaFornecedorInfo *entities.FornecedorGarantia `json:"garantia_fornecedor_info,omitempty"`

	ContratoManutencao     bool                         `json:"contrato_manutencao"`
	ContratoValidade       *string                      `json:"contrato_validade,omitempty"`
	ContratoFornecedorInfo *entities.FornecedorContrato `json:"contrato_fornecedor_info,omitempty"`

	RelatorioFotograficoURLs []string `json:"relatorio_fotografico_urls"`

	Imovel        ImovelSummaryResponse `json:"imovel"`
	TotalChamados int64                 `json:"total_chamados"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AtivoDetailResponse representa a visão de detalhe de um ativo
type AtivoDetailResponse struct {
	AtivoResponse
	Gestor           GestorResponse    `json:"gestor"`
	ChamadosRecentes []ChamadoResponse `json:"chamados_recentes"`
}

// ToAtivoResponse converte a visão de serviço para a resposta HTTP
func ToAtivoResponse(view *services.AtivoComRelacoes) AtivoResponse {
	ativo := view.Ativo

	return AtivoResponse{
		ID:                       ativo.ID,
		ImovelID:                 ativo.ImovelID,
		AssetCode:                ativo.AssetCode,
		DescricaoAtivo:           ativo.DescricaoAtivo,
		LocalInstalacao:          ativo.LocalInstalacao,
		Marca:                    ativo.Marca,
		Modelo:                   ativo.Modelo,
		DataInstalacao:           formatDate(ativo.DataInstalacao),
		ValorCompra:              ativo.ValorCompra,
		Garantia:                 ativo.Garantia,
		GarantiaValidade:         formatDate(ativo.GarantiaValidade),
		GarantiaFornecedorInfo:   ativo.GarantiaFornecedorInfo,
		ContratoManutencao:       ativo.ContratoManutencao,
		ContratoValidade:         formatDate(ativo.ContratoValidade),
		ContratoFornecedorInfo:   ativo.ContratoFornecedorInfo,
		RelatorioFotograficoURLs: ativo.RelatorioFotograficoURLs,
		Imovel: ImovelSummaryResponse{
			ID:           view.Imovel.ID,
			NomeFantasia: view.Imovel.NomeFantasia,
			Cidade:       view.Imovel.Cidade,
		},
		TotalChamados: view.TotalChamados,
		CreatedAt:     ativo.CreatedAt,
		UpdatedAt:     ativo.UpdatedAt,
	}
}

// ToAtivoResponses converte uma lista de visões de ativos
func ToAtivoResponses(views []*services.AtivoComRelacoes) []AtivoResponse {
	responses := make([]AtivoResponse, len(views))
	for i, view := range views {
		responses[i] = ToAtivoResponse(view)
	}
	return responses
}

// ToAtivoDetailResponse converte a visão de detalhe de um ativo
func ToAtivoDetailResponse(detail *services.AtivoDetalhe) AtivoDetailResponse {
	return AtivoDetailResponse{
		AtivoResponse:    ToAtivoResponse(&detail.AtivoComRelacoes),
		Gestor:           toGestorResponse(detail.Gestor),
		ChamadosRecentes: toChamadoResponses(detail.ChamadosRecentes),
	}
}
