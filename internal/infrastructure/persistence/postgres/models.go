package postgres

import (
	"encoding/json"
	"time"
)

// UserModel é o model GORM para usuários
type UserModel struct {
	ID           string `gorm:"type:uuid;primaryKey"`
	Name         string `gorm:"type:varchar(255);not null"`
	CpfCnpj      string `gorm:"type:varchar(18);uniqueIndex;not null"`
	Whatsapp     string `gorm:"type:varchar(20);uniqueIndex;not null"`
	Email        string `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	UserType     string `gorm:"type:varchar(50);not null;index"`

	DataNascimento *time.Time
	EmailPessoal   *string `gorm:"type:varchar(255)"`

	PeriodoMandatoInicio *time.Time
	PeriodoMandatoFim    *time.Time
	SubsindicoInfo       *string `gorm:"type:text"`

	NomeFantasia       *string `gorm:"type:varchar(255)"`
	RazaoSocial        *string `gorm:"type:varchar(255)"`
	ResponsavelEmpresa *string `gorm:"type:varchar(255)"`
	Cep                *string `gorm:"type:varchar(9)"`
	Endereco           *string `gorm:"type:varchar(500)"`
	Cidade             *string `gorm:"type:varchar(255)"`
	UF                 *string `gorm:"type:varchar(2)"`
	RegimeTributario   *string `gorm:"type:varchar(50)"`

	SegmentosAtuacao string `gorm:"type:jsonb;not null;default:'[]'"`

	CreatedAt time.Time `gorm:"autoCreateTime;index"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (UserModel) TableName() string {
	return "users"
}

// ImovelModel é o model GORM para imóveis
type ImovelModel struct {
	ID                 string  `gorm:"type:uuid;primaryKey"`
	GestorID           string  `gorm:"type:uuid;not null;index"`
	Cnpj               string  `gorm:"type:varchar(18);uniqueIndex;not null"`
	NomeFantasia       string  `gorm:"type:varchar(255);not null"`
	RazaoSocial        string  `gorm:"type:varchar(255);not null"`
	Cep                string  `gorm:"type:varchar(9);not null"`
	Endereco           string  `gorm:"type:varchar(500);not null"`
	Cidade             string  `gorm:"type:varchar(255);not null"`
	UF                 string  `gorm:"type:varchar(2);not null"`
	RegimeTributario   *string `gorm:"type:varchar(50)"`
	QuantidadeMoradias int     `gorm:"not null"`
	AreasComuns        string  `gorm:"type:jsonb;not null;default:'[]'"`
	EstatutoURL        *string `gorm:"type:varchar(500)"`

	CreatedAt time.Time `gorm:"autoCreateTime;index"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (ImovelModel) TableName() string {
	return "imoveis"
}

// AtivoModel é o model GORM para ativos
type AtivoModel struct {
	ID              string `gorm:"type:uuid;primaryKey"`
	ImovelID        string `gorm:"type:uuid;not null;index"`
	AssetCode       string `gorm:"type:varchar(20);uniqueIndex;not null"`
	DescricaoAtivo  string `gorm:"type:varchar(500);not null"`
	LocalInstalacao string `gorm:"type:varchar(255);not null"`

	Marca          *string `gorm:"type:varchar(255)"`
	Modelo         *string `gorm:"type:varchar(255)"`
	DataInstalacao *time.Time
	ValorCompra    *float64

	Garantia               bool `gorm:"not null;default:false"`
	GarantiaValidade       *time.Time
	GarantiaFornecedorInfo *string `gorm:"type:jsonb"`

	ContratoManutencao     bool `gorm:"not null;default:false"`
	ContratoValidade       *time.Time
	ContratoFornecedorInfo *string `gorm:"type:jsonb"`

	RelatorioFotograficoURLs string `gorm:"type:jsonb;not null;default:'[]'"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (AtivoModel) TableName() string {
	return "ativos"
}

// ChamadoModel é o model GORM para chamados
type ChamadoModel struct {
	ID                string  `gorm:"type:uuid;primaryKey"`
	ImovelID          string  `gorm:"type:uuid;not null;index"`
	AtivoID           *string `gorm:"type:uuid;index"`
	NumeroChamado     string  `gorm:"type:varchar(50);uniqueIndex;not null"`
	DescricaoOcorrido string  `gorm:"type:text;not null"`
	Status            string  `gorm:"type:varchar(50);not null"`
	Prioridade        string  `gorm:"type:varchar(50);not null"`

	CreatedAt time.Time `gorm:"autoCreateTime;index"`
}

func (ChamadoModel) TableName() string {
	return "chamados"
}

// AssetCodeSeqModel guarda o contador atômico da sequência de asset codes.
// Uma única linha (id=1) é incrementada com UPDATE ... RETURNING.
type AssetCodeSeqModel struct {
	ID    int   `gorm:"primaryKey"`
	Value int64 `gorm:"not null"`
}

func (AssetCodeSeqModel) TableName() string {
	return "asset_code_seqs"
}

// Helpers de serialização para colunas jsonb

func marshalStringSlice(values []string) string {
	if values == nil {
		values = []string{}
	}
	data, err := json.Marshal(values)
	if err != nil {
		return "[]"
	}
	return string(data)
}

func unmarshalStringSlice(raw string) []string {
	if raw == "" {
		return []string{}
	}
	var values []string
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		return []string{}
	}
	return values
}

func marshalJSON(v any) (*string, error) {
	if v == nil {
		return nil, nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	s := string(data)
	return &s, nil
}
