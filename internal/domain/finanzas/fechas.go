package finanzas

import (
	"regexp"
	"strconv"
	"time"
)

// Etiquetas de mes para los resúmenes (índice 0 = enero).
var nombresMes = [12]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

// NombreMes devuelve la etiqueta en castellano de un índice de mes 0-11.
func NombreMes(indice int) string {
	if indice < 0 || indice > 11 {
		return ""
	}
	return nombresMes[indice]
}

var fechaEstricta = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)

// ClaveMes extrae la clave "YYYY-MM" de una fecha estrictamente en formato
// YYYY-MM-DD (año de 4 dígitos, mes y día de 2). Cualquier otra forma,
// incluida "2026-3-15" o "20260315", no produce clave: la entrada se descarta
// de la agrupación mensual.
func ClaveMes(fecha string) (string, bool) {
	m := fechaEstricta.FindStringSubmatch(fecha)
	if m == nil {
		return "", false
	}
	mes, _ := strconv.Atoi(m[2])
	if mes < 1 || mes > 12 {
		return "", false
	}
	return m[1] + "-" + m[2], true
}

// Formatos que acepta el paso permisivo, en orden de prueba.
var formatosFecha = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02/01/2006",
}

// indiceMesPermisivo resuelve un índice de mes 0-11 de una sola cadena.
// Camino rápido: si los 10 primeros caracteres tienen forma YYYY-MM-DD se lee
// el mes directamente de la subcadena, sin pasar por time.Parse y sin
// desplazamientos de zona horaria. Si no, se prueban formatos genéricos.
func indiceMesPermisivo(s string) (int, bool) {
	if len(s) >= 10 && s[4] == '-' && s[7] == '-' {
		if mes, err := strconv.Atoi(s[5:7]); err == nil && mes >= 1 && mes <= 12 {
			return mes - 1, true
		}
	}
	for _, layout := range formatosFecha {
		if t, err := time.Parse(layout, s); err == nil {
			return int(t.Month()) - 1, true
		}
	}
	return 0, false
}

// IndiceMes resuelve el mes 0-11 de una fila de factura: primero la fecha del
// documento, después la fecha de subida. Si ninguna se reconoce la fila queda
// fuera del resumen.
func IndiceMes(fecha, fechaSubida string) (int, bool) {
	if idx, ok := indiceMesPermisivo(fecha); ok {
		return idx, true
	}
	return indiceMesPermisivo(fechaSubida)
}
