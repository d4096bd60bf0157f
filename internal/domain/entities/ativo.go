package entities

import "time"

// FornecedorGarantia são os dados do fornecedor responsável pela garantia
type FornecedorGarantia struct {
	Nome    string `json:"nome"`
	Cnpj    string `json:"cnpj"`
	Contato string `json:"contato"`
}

// FornecedorContrato são os dados do contrato de manutenção vigente
type FornecedorContrato struct {
	Empresa     string  `json:"empresa"`
	ValorMensal float64 `json:"valor_mensal"`
}

// Ativo representa um item físico rastreado de um imóvel, identificado por
// um asset_code sequencial de cinco dígitos único em todo o sistema.
type Ativo struct {
	ID              string
	ImovelID        string
	AssetCode       string
	DescricaoAtivo  string
	LocalInstalacao string

	Marca          *string
	Modelo         *string
	DataInstalacao *time.Time
	ValorCompra    *float64

	Garantia               bool
	GarantiaValidade       *time.Time
	GarantiaFornecedorInfo *FornecedorGarantia

	ContratoManutencao     bool
	ContratoValidade       *time.Time
	ContratoFornecedorInfo *FornecedorContrato

	RelatorioFotograficoURLs []string

	CreatedAt time.Time
	UpdatedAt time.Time
}
