// Package money convierte entre importes en formato de pantalla ("1.234,56 €")
// y decimal.Decimal. Los formularios y las columnas antiguas de la tienda
// mezclan coma y punto decimal, así que el parser acepta ambos convenios y
// nunca falla: cualquier entrada irreconocible vale 0.
package money

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// TryParse intenta interpretar un importe. Devuelve (0, false) si el valor es
// nil, una cadena vacía o irreconocible, o un tipo no numérico.
//
// Reglas para cadenas: se eliminan el símbolo €, los espacios y los espacios
// duros; si aparecen coma y punto, el que esté más a la derecha es el separador
// decimal y el otro se descarta como separador de miles; si solo aparece coma,
// es el separador decimal; si solo aparece punto, se interpreta tal cual.
func TryParse(v any) (decimal.Decimal, bool) {
	switch x := v.(type) {
	case nil:
		return decimal.Zero, false
	case decimal.Decimal:
		return x, true
	case decimal.NullDecimal:
		if !x.Valid {
			return decimal.Zero, false
		}
		return x.Decimal, true
	case string:
		return parseString(x)
	case json.Number:
		return parseString(string(x))
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return decimal.Zero, false
		}
		return decimal.NewFromFloat(x), true
	case float32:
		return TryParse(float64(x))
	case int:
		return decimal.NewFromInt(int64(x)), true
	case int64:
		return decimal.NewFromInt(x), true
	default:
		return decimal.Zero, false
	}
}

// Parse es TryParse con 0 como valor por defecto.
func Parse(v any) decimal.Decimal {
	d, _ := TryParse(v)
	return d
}

// ParseFloat devuelve el importe como float64 (0 si no se reconoce).
func ParseFloat(v any) float64 {
	f, _ := Parse(v).Float64()
	return f
}

func parseString(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "€", "")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return decimal.Zero, false
	}

	coma := strings.LastIndex(s, ",")
	punto := strings.LastIndex(s, ".")
	switch {
	case coma >= 0 && punto >= 0:
		if coma > punto {
			// "1.234,56": el punto agrupa miles
			s = strings.ReplaceAll(s, ".", "")
			s = strings.Replace(s, ",", ".", 1)
		} else {
			// "1,234.56": la coma agrupa miles
			s = strings.ReplaceAll(s, ",", "")
		}
	case coma >= 0:
		s = strings.ReplaceAll(s, ",", ".")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// Format renderiza un importe con dos decimales, punto de miles y coma
// decimal, con el símbolo de euro al final: 1234.5 -> "1.234,50 €".
func Format(v any) string {
	d := Parse(v).Round(2)

	negativo := d.IsNegative()
	fijo := d.Abs().StringFixed(2) // "1234.50"
	entero, fraccion, _ := strings.Cut(fijo, ".")

	var b strings.Builder
	if negativo {
		b.WriteByte('-')
	}
	for i, r := range entero {
		if i > 0 && (len(entero)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	b.WriteByte(',')
	b.WriteString(fraccion)
	b.WriteString(" €")
	return b.String()
}
