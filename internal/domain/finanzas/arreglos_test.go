package finanzas_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albertmmateo-blip/entretelas-api/internal/domain/finanzas"
)

// ──────────────────────────────────────────────────────────────────────────────
// NormalizarCarpeta
// ──────────────────────────────────────────────────────────────────────────────

func TestNormalizarCarpeta(t *testing.T) {
	for entrada, esperado := range map[string]string{
		"Entretelas": "Entretelas",
		"entretelas": "Entretelas",
		"ISA":        "Isa",
		"loli":       "Loli",
		"  Isa  ":    "Isa",
	} {
		out, ok := finanzas.NormalizarCarpeta(entrada)
		assert.True(t, ok, "NormalizarCarpeta(%q) debe reconocerse", entrada)
		assert.Equal(t, esperado, out)
	}

	for _, entrada := range []string{"otro", "", "Entretelas2", "Isabel"} {
		_, ok := finanzas.NormalizarCarpeta(entrada)
		assert.False(t, ok, "NormalizarCarpeta(%q) no debe reconocerse", entrada)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// ResumenMensualArreglos
// ──────────────────────────────────────────────────────────────────────────────

func TestResumenMensualArreglos_AgrupacionYOrden(t *testing.T) {
	entradas := []finanzas.FilaArreglo{
		{Fecha: "2026-03-05", Importe: 10, Carpeta: "Entretelas"},
		{Fecha: "2026-03-31", Importe: "12.5 €", Carpeta: "Isa"},
		{Fecha: "2026-02-01", Importe: 3, Carpeta: "Loli"},
	}

	buckets := finanzas.ResumenMensualArreglos(entradas)
	require.Len(t, buckets, 2)

	// Orden descendente: el mes más reciente primero
	marzo := buckets[0]
	assert.Equal(t, "2026-03", marzo.ClaveMes)
	assert.Equal(t, 2, marzo.Cantidad)
	assert.True(t, marzo.TotalImporte.Equal(dec("22.5")))
	assert.True(t, marzo.Entretelas.Equal(dec("10")))
	assert.True(t, marzo.Isa.Equal(dec("12.5")))
	assert.True(t, marzo.Loli.IsZero())

	febrero := buckets[1]
	assert.Equal(t, "2026-02", febrero.ClaveMes)
	assert.Equal(t, 1, febrero.Cantidad)
	assert.True(t, febrero.TotalImporte.Equal(dec("3")))
	assert.True(t, febrero.Loli.Equal(dec("3")))
}

// Las entradas con fecha no estricta se descartan del todo: ni cantidad ni
// importe en ningún bucket.
func TestResumenMensualArreglos_FechaNoEstrictaSeDescarta(t *testing.T) {
	buckets := finanzas.ResumenMensualArreglos([]finanzas.FilaArreglo{
		{Fecha: "2026-3-15", Importe: 100, Carpeta: "Isa"},
		{Fecha: "20260315", Importe: 100, Carpeta: "Isa"},
		{Fecha: "2026-03-15", Importe: 5, Carpeta: "Isa"},
	})
	require.Len(t, buckets, 1)
	assert.Equal(t, 1, buckets[0].Cantidad)
	assert.True(t, buckets[0].TotalImporte.Equal(dec("5")))
}

// Carpeta desconocida: cuenta en cantidad y total pero en ninguna carpeta.
func TestResumenMensualArreglos_CarpetaDesconocida(t *testing.T) {
	buckets := finanzas.ResumenMensualArreglos([]finanzas.FilaArreglo{
		{Fecha: "2026-06-01", Importe: 40, Carpeta: "otra"},
		{Fecha: "2026-06-02", Importe: 10, Carpeta: "loli"},
	})
	require.Len(t, buckets, 1)
	b := buckets[0]
	assert.Equal(t, 2, b.Cantidad)
	assert.True(t, b.TotalImporte.Equal(dec("50")))
	assert.True(t, b.Entretelas.IsZero())
	assert.True(t, b.Isa.IsZero())
	assert.True(t, b.Loli.Equal(dec("10")))
}

// Las funciones de resumen no tocan la entrada: instantánea antes y después.
func TestResumenArreglos_NoMutaLaEntrada(t *testing.T) {
	entradas := []finanzas.FilaArreglo{
		{Fecha: "2026-03-05", Importe: 10, Carpeta: "Entretelas"},
		{Fecha: "garbage", Importe: "12.5 €", Carpeta: "isa"},
	}
	instantanea := make([]finanzas.FilaArreglo, len(entradas))
	copy(instantanea, entradas)

	_ = finanzas.ResumenMensualArreglos(entradas)
	_ = finanzas.ResumenTrimestralArreglos(entradas)

	assert.Equal(t, instantanea, entradas)
}

// ──────────────────────────────────────────────────────────────────────────────
// ResumenTrimestralArreglos: fecha permisiva
// ──────────────────────────────────────────────────────────────────────────────

func TestResumenTrimestralArreglos_FechaPermisiva(t *testing.T) {
	out := finanzas.ResumenTrimestralArreglos([]finanzas.FilaArreglo{
		{Fecha: "2026-02-10", Importe: 10, Carpeta: "Isa"},
		// Con hora: el resumen trimestral sí la acepta (el mensual no)
		{Fecha: "2026-02-10T08:00:00Z", Importe: 5, Carpeta: "Isa"},
		{Fecha: "2026-08-01", Importe: 7, Carpeta: "fuera"},
		{Fecha: "ilegible", Importe: 999, Carpeta: "Isa"},
	})

	assert.True(t, out.Trimestres[0].Total.Isa.Equal(dec("15")))
	assert.True(t, out.Trimestres[0].Total.Total.Equal(dec("15")))
	// Carpeta desconocida: suma al total del trimestre, no a ninguna carpeta
	assert.True(t, out.Trimestres[2].Total.Total.Equal(dec("7")))
	assert.True(t, out.Trimestres[2].Total.Isa.IsZero())
	assert.True(t, out.TotalAnual.Total.Equal(dec("22")))
}

// ──────────────────────────────────────────────────────────────────────────────
// RepartoArreglos
// ──────────────────────────────────────────────────────────────────────────────

// La parte de la tienda sale por resta: las dos mitades suman el total exacto.
func TestRepartoArreglos_SumaExacta(t *testing.T) {
	tarifas := finanzas.TarifasPorDefecto()

	r := finanzas.RepartoArreglos(dec("200"), tarifas)
	assert.True(t, r.Total.Equal(dec("200")))
	assert.True(t, r.ParteCarpeta.Equal(dec("130")))
	assert.True(t, r.ParteTienda.Equal(dec("70")))

	for _, total := range []string{"0", "0.01", "33.33", "99.99", "12345.67"} {
		r := finanzas.RepartoArreglos(dec(total), tarifas)
		assert.True(t, r.ParteCarpeta.Add(r.ParteTienda).Equal(r.Total),
			"reparto de %s: %s + %s debe dar el total exacto", total, r.ParteCarpeta, r.ParteTienda)
	}
}
