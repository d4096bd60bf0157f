package dto

import (
	"time"

	"github.com/condogestor/condoasset-backend/internal/domain/entities"
	"github.com/condogestor/condoasset-backend/internal/services"
)

// CreateImovelRequest representa a requisição para criar um imóvel
type CreateImovelRequest struct {
	Cnpj               string   `json:"cnpj" binding:"required"`
	NomeFantasia       string   `json:"nome_fantasia" binding:"required"`
	RazaoSocial        string   `json:"razao_social" binding:"required"`
	Cep                string   `json:"cep" binding:"required"`
	Endereco           string   `json:"endereco" binding:"required"`
	Cidade             string   `json:"cidade" binding:"required"`
	UF                 string   `json:"uf" binding:"required,len=2"`
	RegimeTributario   *string  `json:"regime_tributario" binding:"omitempty,oneof=simples_nacional lucro_presumido lucro_real"`
	QuantidadeMoradias int      `json:"quantidade_moradias" binding:"required,min=1"`
	AreasComuns        []string `json:"areas_comuns"`
	EstatutoURL        *string  `json:"estatuto_url" binding:"omitempty,url"`
}

// ToInput converte a requisição para o input do serviço
func (r *CreateImovelRequest) ToInput() services.CreateImovelInput {
	var regime *entities.RegimeTributario
	if r.RegimeTributario != nil {
		v := entities.RegimeTributario(*r.RegimeTributario)
		regime = &v
	}

	return services.CreateImovelInput{
		Cnpj:               r.Cnpj,
		NomeFantasia:       r.NomeFantasia,
		RazaoSocial:        r.RazaoSocial,
		Cep:                r.Cep,
		Endereco:           r.Endereco,
		Cidade:             r.Cidade,
		UF:                 r.UF,
		RegimeTributario:   regime,
		QuantidadeMoradias: r.QuantidadeMoradias,
		AreasComuns:        r.AreasComuns,
		EstatutoURL:        r.EstatutoURL,
	}
}

// UpdateImovelRequest representa a requisição para atualizar um imóvel
type UpdateImovelRequest struct {
	Cnpj               *string  `json:"cnpj"`
	NomeFantasia       *string  `json:"nome_fantasia"`
	RazaoSocial        *string  `json:"razao_social"`
	Cep                *string  `json:"cep"`
	Endereco           *string  `json:"endereco"`
	Cidade             *string  `json:"cidade"`
	UF                 *string  `json:"uf" binding:"omitempty,len=2"`
	RegimeTributario   *string  `json:"regime_tributario" binding:"omitempty,oneof=simples_nacional lucro_presumido lucro_real"`
	QuantidadeMoradias *int     `json:"quantidade_moradias" binding:"omitempty,min=1"`
	AreasComuns        []string `json:"areas_comuns"`
	EstatutoURL        *string  `json:"estatuto_url" binding:"omitempty,url"`
}

// ToInput converte a requisição para o input do serviço
func (r *UpdateImovelRequest) ToInput() services.UpdateImovelInput {
	var regime *entities.RegimeTributario
	if r.RegimeTributario != nil {
		v := entities.RegimeTributario(*r.RegimeTributario)
		regime = &v
	}

	return services.UpdateImovelInput{
		Cnpj:               r.Cnpj,
		NomeFantasia:       r.NomeFantasia,
		RazaoSocial:        r.RazaoSocial,
		Cep:                r.Cep,
		Endereco:           r.Endereco,
		Cidade:             r.Cidade,
		UF:                 r.UF,
		RegimeTributario:   regime,
		QuantidadeMoradias: r.QuantidadeMoradias,
		AreasComuns:        r.AreasComuns,
		EstatutoURL:        r.EstatutoURL,
	}
}

// GestorResponse é o resumo do gestor nas respostas de imóveis e ativos
type GestorResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	UserType string `json:"user_type"`
}

// ChamadoResponse é o resumo de um chamado recente
type ChamadoResponse struct {
	ID                string    `json:"id"`
	NumeroChamado     string    `json:"numero_chamado"`
	DescricaoOcorrido string    `json:"descricao_ocorrido"`
	Status            string    `json:"status"`
	Prioridade        string    `json:"prioridade"`
	CreatedAt         time.Time `json:"created_at"`
}

// ImovelResponse representa a resposta de um imóvel com gestor e contagens
type ImovelResponse struct {
	ID                 string         `json:"id"`
	Cnpj               string         `json:"cnpj"`
	NomeFantasia       string         `json:"nome_fantasia"`
	RazaoSocial        string         `json:"razao_social"`
	Cep                string         `json:"cep"`
	Endereco           string         `json:"endereco"`
	Cidade             string         `json:"cidade"`
	UF                 string         `json:"uf"`
	RegimeTributario   *string        `json:"regime_tributario,omitempty"`
	QuantidadeMoradias int            `json:"quantidade_moradias"`
	AreasComuns        []string       `json:"areas_comuns"`
	EstatutoURL        *string        `json:"estatuto_url,omitempty"`
	Gestor             GestorResponse `json:"gestor"`
	TotalAtivos        int64          `json:"total_ativos"`
	TotalChamados      int64          `json:"total_chamados"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
}

// AtivoSummaryResponse é o resumo de um ativo na visão de detalhe do imóvel
type AtivoSummaryResponse struct {
	ID              string    `json:"id"`
	AssetCode       string    `json:"asset_code"`
	DescricaoAtivo  string    `json:"descricao_ativo"`
	LocalInstalacao string    `json:"local_instalacao"`
	CreatedAt       time.Time `json:"created_at"`
}

// ImovelDetailResponse representa a visão de detalhe de um imóvel
type ImovelDetailResponse struct {
	ImovelResponse
	Ativos           []AtivoSummaryResponse `json:"ativos"`
	ChamadosRecentes []ChamadoResponse      `json:"chamados_recentes"`
}

// MessageResponse é a resposta de operações sem payload
type MessageResponse struct {
	Message string `json:"message"`
}

// ToImovelResponse converte a visão de serviço para a resposta HTTP
func ToImovelResponse(view *services.ImovelComRelacoes) ImovelResponse {
	imovel := view.Imovel

	var regime *string
	if imovel.RegimeTributario != nil {
		s := string(*imovel.RegimeTributario)
		regime = &s
	}

	return ImovelResponse{
		ID:                 imovel.ID,
		Cnpj:               imovel.Cnpj,
		NomeFantasia:       imovel.NomeFantasia,
		RazaoSocial:        imovel.RazaoSocial,
		Cep:                imovel.Cep,
		Endereco:           imovel.Endereco,
		Cidade:             imovel.Cidade,
		UF:                 imovel.UF,
		RegimeTributario:   regime,
		QuantidadeMoradias: imovel.QuantidadeMoradias,
		AreasComuns:        imovel.AreasComuns,
		EstatutoURL:        imovel.EstatutoURL,
		Gestor:             toGestorResponse(view.Gestor),
		TotalAtivos:        view.TotalAtivos,
		TotalChamados:      view.TotalChamados,
		CreatedAt:          imovel.CreatedAt,
		UpdatedAt:          imovel.UpdatedAt,
	}
}

// ToImovelResponses converte uma lista de visões de imóveis
func ToImovelResponses(views []*services.ImovelComRelacoes) []ImovelResponse {
	responses := make([]ImovelResponse, len(views))
	for i, view := range views {
		responses[i] = ToImovelResponse(view)
	}
	return responses
}

// ToImovelDetailResponse converte a visão de detalhe de um imóvel
func ToImovelDetailResponse(detail *services.ImovelDetalhe) ImovelDetailResponse {
	ativos := make([]AtivoSummaryResponse, len(detail.Ativos))
	for i, ativo := range detail.Ativos {
		ativos[i] = AtivoSummaryResponse{
			ID:              ativo.ID,
			AssetCode:       ativo.AssetCode,
			DescricaoAtivo:  ativo.DescricaoAtivo,
			LocalInstalacao: ativo.LocalInstalacao,
			CreatedAt:       ativo.CreatedAt,
		}
	}

	return ImovelDetailResponse{
		ImovelResponse:   ToImovelResponse(&detail.ImovelComRelacoes),
		Ativos:           ativos,
		ChamadosRecentes: toChamadoResponses(detail.ChamadosRecentes),
	}
}

func toGestorResponse(gestor services.GestorSummary) GestorResponse {
	return GestorResponse{
		ID:       gestor.ID,
		Name:     gestor.Name,
		Email:    gestor.Email,
		UserType: string(gestor.UserType),
	}
}

func toChamadoResponses(chamados []services.ChamadoSummary) []ChamadoResponse {
	responses := make([]ChamadoResponse, len(chamados))
	for i, chamado := range chamados {
		responses[i] = ChamadoResponse{
			ID:                chamado.ID,
			NumeroChamado:     chamado.NumeroChamado,
			DescricaoOcorrido: chamado.DescricaoOcorrido,
			Status:            chamado.Status,
			Prioridade:        chamado.Prioridade,
			CreatedAt:         chamado.CreatedAt,
		}
	}
	return responses
}
