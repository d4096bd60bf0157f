package valueobjects

import (
	errs "errors"
	"testing"
)

func TestNewCNPJ(t *testing.T) {
	t.Run("aceita o formato pontuado", func(t *testing.T) {
		cnpj, err := NewCNPJ("12.345.678/0001-95")
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if cnpj.String() != "12.345.678/0001-95" {
			t.Errorf("valor inesperado: %q", cnpj.String())
		}
	})

	t.Run("aceita os 14 dígitos", func(t *testing.T) {
		cnpj, err := NewCNPJ("12345678000195")
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if cnpj.Digits() != "12345678000195" {
			t.Errorf("dígitos inesperados: %q", cnpj.Digits())
		}
	})

	t.Run("remove espaços nas pontas", func(t *testing.T) {
		cnpj, err := NewCNPJ("  12.345.678/0001-95  ")
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if cnpj.String() != "12.345.678/0001-95" {
			t.Errorf("valor inesperado: %q", cnpj.String())
		}
	})

	t.Run("rejeita formatos malformados", func(t *testing.T) {
		for _, invalid := range []string{
			"",
			"123",
			"12.345.678/0001-9",
			"12345678900",
			"12.345.678-0001/95",
			"ab.cde.fgh/ijkl-mn",
		} {
			if _, err := NewCNPJ(invalid); !errs.Is(err, ErrInvalidCNPJ) {
				t.Errorf("%q: esperava ErrInvalidCNPJ, obteve %v", invalid, err)
			}
		}
	})

	t.Run("extrai os dígitos do formato pontuado", func(t *testing.T) {
		cnpj, err := NewCNPJ("12.345.678/0001-95")
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if cnpj.Digits() != "12345678000195" {
			t.Errorf("dígitos inesperados: %q", cnpj.Digits())
		}
	})
}
