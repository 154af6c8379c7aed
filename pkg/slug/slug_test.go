package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/invorax/invorax-go/pkg/slug"
)

func TestSuggest(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"acentos", "Lácteos y Huevos", "lacteos-y-huevos"},
		{"eñe", "Año Nuevo", "ano-nuevo"},
		{"espacios múltiples", "  Café   Molido  ", "cafe-molido"},
		{"símbolos", "Aceites & Vinagres (premium)", "aceites-vinagres-premium"},
		{"ya es slug", "bebidas-frias", "bebidas-frias"},
		{"números", "Coca Cola 500ml", "coca-cola-500ml"},
		{"vacío", "", ""},
		{"solo símbolos", "¡¿?!", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, slug.Suggest(tc.in))
		})
	}
}
