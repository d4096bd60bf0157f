package services

import (
	"time"

	"github.com/condogestor/condoasset-backend/internal/domain/entities"
	"github.com/condogestor/condoasset-backend/internal/domain/ports"
)

// Actor identifica quem está executando a operação
type Actor struct {
	ID       string
	UserType entities.UserType
}

// GestorSummary é o resumo do gestor embutido nas visões de leitura
type GestorSummary struct {
	ID       string
	Name     string
	Email    string
	UserType entities.UserType
}

// ImovelSummary é o resumo do imóvel embutido nas visões de ativos
type ImovelSummary struct {
	ID           string
	NomeFantasia string
	Cidade       string
}

// AtivoSummary é o resumo de um ativo na visão de detalhe do imóvel
type AtivoSummary struct {
	ID              string
	AssetCode       string
	DescricaoAtivo  string
	LocalInstalacao string
	CreatedAt       time.Time
}

// ChamadoSummary é o resumo de um chamado recente
type ChamadoSummary struct {
	ID                string
	NumeroChamado     string
	DescricaoOcorrido string
	Status            string
	Prioridade        string
	CreatedAt         time.Time
}

// ImovelComRelacoes é a visão desnormalizada de um imóvel: o registro, o
// resumo do gestor e as contagens de vínculos
type ImovelComRelacoes struct {
	Imovel        *entities.Imovel
	Gestor        GestorSummary
	TotalAtivos   int64
	TotalChamados int64
}

// ImovelDetalhe estende ImovelComRelacoes com os ativos (por asset_code) e
// os chamados mais recentes
type ImovelDetalhe struct {
	ImovelComRelacoes
	Ativos           []AtivoSummary
	ChamadosRecentes []ChamadoSummary
}

// AtivoComRelacoes é a visão desnormalizada de um ativo
type AtivoComRelacoes struct {
	Ativo         *entities.Ativo
	Imovel        ImovelSummary
	TotalChamados int64
}

// AtivoDetalhe estende AtivoComRelacoes com o gestor e os chamados recentes
type AtivoDetalhe struct {
	AtivoComRelacoes
	Gestor           GestorSummary
	ChamadosRecentes []ChamadoSummary
}

// recentChamadosLimit limita os chamados embutidos nas visões de detalhe
const recentChamadosLimit = 10

func toGestorSummary(user *entities.User) GestorSummary {
	if user == nil {
		return GestorSummary{}
	}
	return GestorSummary{
		ID:       user.ID,
		Name:     user.Name,
		Email:    user.Email,
		UserType: user.UserType,
	}
}

func toImovelSummary(imovel *entities.Imovel) ImovelSummary {
	return ImovelSummary{
		ID:           imovel.ID,
		NomeFantasia: imovel.NomeFantasia,
		Cidade:       imovel.Cidade,
	}
}

func toAtivoSummaries(ativos []*entities.Ativo) []AtivoSummary {
	summaries := make([]AtivoSummary, 0, len(ativos))
	for _, ativo := range ativos {
		summaries = append(summaries, AtivoSummary{
			ID:              ativo.ID,
			AssetCode:       ativo.AssetCode,
			DescricaoAtivo:  ativo.DescricaoAtivo,
			LocalInstalacao: ativo.LocalInstalacao,
			CreatedAt:       ativo.CreatedAt,
		})
	}
	return summaries
}

func toChamadoSummaries(chamados []*entities.Chamado) []ChamadoSummary {
	summaries := make([]ChamadoSummary, 0, len(chamados))
	for _, chamado := range chamados {
		summaries = append(summaries, ChamadoSummary{
			ID:                chamado.ID,
			NumeroChamado:     chamado.NumeroChamado,
			DescricaoOcorrido: chamado.DescricaoOcorrido,
			Status:            chamado.Status,
			Prioridade:        chamado.Prioridade,
			CreatedAt:         chamado.CreatedAt,
		})
	}
	return summaries
}

// noopPublisher é usado quando nenhum publicador de eventos é injetado
type noopPublisher struct{}

func (noopPublisher) Publish(string, ports.Event) {}
