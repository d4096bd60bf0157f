package entities

import "time"

// Imovel representa um imóvel gerido por exatamente um gestor.
// O CNPJ é único entre todos os imóveis.
type Imovel struct {
	ID                  string
	GestorID            string
	Cnpj                string
	NomeFantasia        string
	RazaoSocial         string
	Cep                 string
	Endereco            string
	Cidade              string
	UF                  string
	RegimeTributario    *RegimeTributario
	QuantidadeMoradias  int
	AreasComuns         []string
	EstatutoURL         *string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
