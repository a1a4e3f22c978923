package finanzas_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/albertmmateo-blip/entretelas-api/internal/domain/finanzas"
)

// Solo la forma estricta YYYY-MM-DD produce clave de mes.
func TestClaveMes_SoloFormatoEstricto(t *testing.T) {
	clave, ok := finanzas.ClaveMes("2026-03-15")
	assert.True(t, ok)
	assert.Equal(t, "2026-03", clave)

	for _, fecha := range []string{
		"2026-3-15",  // mes de un solo dígito
		"20260315",   // sin guiones
		"2026-03",    // sin día
		"15/03/2026", // otro convenio
		"2026-13-01", // mes imposible
		"",
		"no es fecha",
		"2026-03-15T10:00:00", // con hora: para la agrupación mensual no vale
	} {
		_, ok := finanzas.ClaveMes(fecha)
		assert.False(t, ok, "ClaveMes(%q) no debe producir clave", fecha)
	}
}

// El camino permisivo lee el mes de la subcadena YYYY-MM-DD sin zona horaria
// y cae a formatos genéricos; la fecha de subida es la reserva.
func TestIndiceMes_CaminoRapidoYReservas(t *testing.T) {
	idx, ok := finanzas.IndiceMes("2026-03-20", "")
	assert.True(t, ok)
	assert.Equal(t, 2, idx)

	// Fecha con hora: la subcadena sigue valiendo
	idx, ok = finanzas.IndiceMes("2026-11-02T23:59:00Z", "")
	assert.True(t, ok)
	assert.Equal(t, 10, idx)

	// Fecha ilegible: se usa la fecha de subida
	idx, ok = finanzas.IndiceMes("???", "2026-07-01 09:30:00")
	assert.True(t, ok)
	assert.Equal(t, 6, idx)

	// Ninguna legible: la fila queda fuera
	_, ok = finanzas.IndiceMes("???", "tampoco")
	assert.False(t, ok)
}

func TestNombreMes(t *testing.T) {
	assert.Equal(t, "Enero", finanzas.NombreMes(0))
	assert.Equal(t, "Diciembre", finanzas.NombreMes(11))
	assert.Equal(t, "", finanzas.NombreMes(12))
	assert.Equal(t, "", finanzas.NombreMes(-1))
}
