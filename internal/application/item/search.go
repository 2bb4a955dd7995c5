package item

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldTransformer descompone, descarta las marcas diacríticas y recompone.
// Los nombres de ítems vienen en portugués/español; la búsqueda debe tratar
// "Cafe" y "Café" como equivalentes.
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// fold normaliza un término para comparación: sin acentos y en minúsculas.
func fold(s string) string {
	out, _, err := transform.String(foldTransformer, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

// matches indica si el ítem coincide con el término ya normalizado
// en nombre, descripción o proveedor.
func matches(term string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(fold(f), term) {
			return true
		}
	}
	return false
}
