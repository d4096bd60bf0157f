package entities

import (
	"errors"
	"time"
)

// User representa um usuário do sistema (síndico, administradora ou prestador)
type User struct {
	ID           string
	Name         string
	CpfCnpj      string
	Whatsapp     string
	Email        string
	PasswordHash string
	UserType     UserType

	DataNascimento *time.Time
	EmailPessoal   *string

	// Campos de síndico (residente ou profissional)
	PeriodoMandatoInicio *time.Time
	PeriodoMandatoFim    *time.Time
	SubsindicoInfo       *string

	// Campos de empresa (administradora ou prestador)
	NomeFantasia       *string
	RazaoSocial        *string
	ResponsavelEmpresa *string
	Cep                *string
	Endereco           *string
	Cidade             *string
	UF                 *string
	RegimeTributario   *RegimeTributario

	// Somente para prestadores
	SegmentosAtuacao []string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsPrestador verifica se o usuário é um prestador de serviços
func (u *User) IsPrestador() bool {
	return u.UserType == UserTypePrestador
}

// Validate valida regras de negócio da entidade User
func (u *User) Validate() error {
	if u.Name == "" {
		return errors.New("name is required")
	}
	if u.Email == "" {
		return errors.New("email is required")
	}
	if u.CpfCnpj == "" {
		return errors.New("cpf_cnpj is required")
	}
	if !u.UserType.IsValid() {
		return errors.New("invalid user type")
	}
	return nil
}
