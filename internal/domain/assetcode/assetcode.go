package assetcode

import (
	"fmt"
	"strconv"
)

// Width é a largura padrão dos códigos de ativo
const Width = 5

// Format renderiza um valor da sequência como código de ativo decimal com
// zeros à esquerda até cinco dígitos. Valores acima de 99999 não cabem na
// largura padrão e são renderizados na largura natural, preservando a
// monotonicidade numérica da sequência.
func Format(value int64) string {
	return fmt.Sprintf("%0*d", Width, value)
}

// Parse converte um código de ativo de volta para o valor da sequência
func Parse(code string) (int64, error) {
	value, err := strconv.ParseInt(code, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid asset code %q: %w", code, err)
	}
	return value, nil
}
