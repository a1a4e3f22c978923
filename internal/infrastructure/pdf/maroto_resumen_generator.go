// Package pdf implementa la versión imprimible de los resúmenes anuales de la
// tienda usando Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Entretelas  │  Título del resumen + ejercicio      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  POR TRIMESTRE: T1..T4, una tabla de tres meses cada uno     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL ANUAL                                                 │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/albertmmateo-blip/entretelas-api/internal/domain/finanzas"
	"github.com/albertmmateo-blip/entretelas-api/pkg/money"
)

var (
	colorPrimary = &props.Color{Red: 102, Green: 51, Blue: 51}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoResumenGenerator implementa usecase.ResumenPDFGenerator usando
// Maroto v2.
type MarotoResumenGenerator struct {
	nombreTienda string
}

// NewMarotoResumenGenerator construye el generador.
func NewMarotoResumenGenerator(nombreTienda string) *MarotoResumenGenerator {
	return &MarotoResumenGenerator{nombreTienda: nombreTienda}
}

func (g *MarotoResumenGenerator) nuevoDocumento(titulo string) core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(titulo, true).
		WithAuthor(g.nombreTienda, true).
		Build()
	return maroto.New(cfg)
}

// GenerarResumenFacturas genera el PDF del resumen trimestral de facturas y
// devuelve sus bytes.
func (g *MarotoResumenGenerator) GenerarResumenFacturas(
	_ context.Context,
	titulo string,
	anio int,
	res finanzas.ResumenAnual,
) ([]byte, error) {
	m := g.nuevoDocumento(titulo)

	m.AddRows(headerRow(g.nombreTienda, titulo, anio))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	for _, tri := range res.Trimestres {
		m.AddRows(trimestreTituloRow(tri.Clave))
		m.AddRows(facturasCabeceraRow())
		for _, mes := range tri.Meses {
			m.AddRows(facturasMesRow(mes.Etiqueta, mes.Total, false))
		}
		m.AddRows(facturasMesRow("Total "+tri.Clave, tri.Total, true))
	}

	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(facturasMesRow(fmt.Sprintf("TOTAL %d", anio), res.TotalAnual, true))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar resumen de facturas: %w", err)
	}
	return doc.GetBytes(), nil
}

// GenerarResumenArreglos genera el PDF del resumen trimestral del libro de
// arreglos, con el desglose por carpeta.
func (g *MarotoResumenGenerator) GenerarResumenArreglos(
	_ context.Context,
	titulo string,
	anio int,
	res finanzas.ResumenAnualArreglos,
) ([]byte, error) {
	m := g.nuevoDocumento(titulo)

	m.AddRows(headerRow(g.nombreTienda, titulo, anio))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	for _, tri := range res.Trimestres {
		m.AddRows(trimestreTituloRow(tri.Clave))
		m.AddRows(arreglosCabeceraRow())
		for _, mes := range tri.Meses {
			m.AddRows(arreglosMesRow(mes.Etiqueta, mes.Total, false))
		}
		m.AddRows(arreglosMesRow("Total "+tri.Clave, tri.Total, true))
	}

	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(arreglosMesRow(fmt.Sprintf("TOTAL %d", anio), res.TotalAnual, true))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar resumen de arreglos: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre de la tienda (izq), título y ejercicio (der).
func headerRow(tienda, titulo string, anio int) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(tienda, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New(titulo, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 1,
			}),
			text.New(fmt.Sprintf("Ejercicio %d", anio), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

func trimestreTituloRow(clave string) core.Row {
	return row.New(9).Add(
		col.New(12).Add(text.New(clave, props.Text{
			Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 3,
		})),
	)
}

func cabecera(label string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(label, props.Text{
		Style: fontstyle.Bold, Size: 8, Align: a,
		Color: colorGray, Top: 1, Left: 1, Right: 1,
	}))
}

func celda(valor string, size int, a align.Type, destacada bool) core.Col {
	estilo := fontstyle.Normal
	if destacada {
		estilo = fontstyle.Bold
	}
	return col.New(size).Add(text.New(valor, props.Text{
		Style: estilo, Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
	}))
}

func facturasCabeceraRow() core.Row {
	return row.New(7).Add(
		cabecera("Mes", 6, align.Left),
		cabecera("Importe", 3, align.Right),
		cabecera("Con IVA", 3, align.Right),
	)
}

func facturasMesRow(etiqueta string, total finanzas.TotalFactura, destacada bool) core.Row {
	return row.New(6).Add(
		celda(etiqueta, 6, align.Left, destacada),
		celda(money.Format(total.Importe), 3, align.Right, destacada),
		celda(money.Format(total.ImporteConIVA), 3, align.Right, destacada),
	)
}

func arreglosCabeceraRow() core.Row {
	return row.New(7).Add(
		cabecera("Mes", 4, align.Left),
		cabecera("Entretelas", 2, align.Right),
		cabecera("Isa", 2, align.Right),
		cabecera("Loli", 2, align.Right),
		cabecera("Total", 2, align.Right),
	)
}

func arreglosMesRow(etiqueta string, total finanzas.TotalArreglos, destacada bool) core.Row {
	return row.New(6).Add(
		celda(etiqueta, 4, align.Left, destacada),
		celda(money.Format(total.Entretelas), 2, align.Right, destacada),
		celda(money.Format(total.Isa), 2, align.Right, destacada),
		celda(money.Format(total.Loli), 2, align.Right, destacada),
		celda(money.Format(total.Total), 2, align.Right, destacada),
	)
}
