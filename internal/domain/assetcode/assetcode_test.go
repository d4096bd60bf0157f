package assetcode

import "testing"

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		value    int64
		expected string
	}{
		{"primeiro código", 1, "00001"},
		{"preenche com zeros", 42, "00042"},
		{"limite da largura", 99999, "99999"},
		{"acima da largura usa a largura natural", 100000, "100000"},
		{"muito acima da largura", 1234567, "1234567"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.value); got != tt.expected {
				t.Errorf("Format(%d) = %q, esperava %q", tt.value, got, tt.expected)
			}
		})
	}
}

func TestParse(t *testing.T) {
	t.Run("converte código de volta para o valor", func(t *testing.T) {
		value, err := Parse("00042")
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if value != 42 {
			t.Errorf("esperava 42, obteve %d", value)
		}
	})

	t.Run("rejeita código não numérico", func(t *testing.T) {
		if _, err := Parse("abc"); err == nil {
			t.Fatal("esperava erro para código inválido")
		}
	})

	t.Run("Format e Parse são inversos acima da largura", func(t *testing.T) {
		value, err := Parse(Format(100001))
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if value != 100001 {
			t.Errorf("esperava 100001, obteve %d", value)
		}
	})
}
