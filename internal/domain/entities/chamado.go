package entities

import "time"

// Chamado representa um registro de manutenção/incidente vinculado a um
// imóvel e, opcionalmente, a um ativo. Aqui ele aparece apenas em contagens
// e nos resumos das visões de detalhe.
type Chamado struct {
	ID                string
	ImovelID          string
	AtivoID           *string
	NumeroChamado     string
	DescricaoOcorrido string
	Status            string
	Prioridade        string
	CreatedAt         time.Time
}
