package valueobjects

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidCNPJ = errors.New("invalid cnpj format")
)

// cnpjPattern aceita o formato pontuado (00.000.000/0001-00) ou os 14 dígitos
var cnpjPattern = regexp.MustCompile(`^(\d{2}\.\d{3}\.\d{3}/\d{4}-\d{2}|\d{14})$`)

// CNPJ é um value object que garante que CNPJs sejam sempre bem formados
type CNPJ struct {
	value string
}

// NewCNPJ cria um novo CNPJ validado
func NewCNPJ(cnpj string) (CNPJ, error) {
	cnpj = strings.TrimSpace(cnpj)

	if !cnpjPattern.MatchString(cnpj) {
		return CNPJ{}, ErrInvalidCNPJ
	}

	return CNPJ{value: cnpj}, nil
}

// String retorna o valor do CNPJ como informado
func (c CNPJ) String() string {
	return c.value
}

// Digits retorna somente os 14 dígitos do CNPJ
func (c CNPJ) Digits() string {
	digits := strings.NewReplacer(".", "", "/", "", "-", "").Replace(c.value)
	return digits
}
