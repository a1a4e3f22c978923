package finanzas

import (
	"github.com/shopspring/decimal"

	"github.com/albertmmateo-blip/entretelas-api/pkg/money"
)

// FilaFactura es la proyección mínima de una factura archivada que necesita
// el resumen trimestral. Importe e ImporteIVARE llegan tal cual salen del
// almacén o del formulario: número, cadena con formato de pantalla o nil.
type FilaFactura struct {
	Fecha        string
	FechaSubida  string
	Tipo         string
	Importe      any
	ImporteIVARE any
}

// TotalFactura acumula importe base e importe con impuestos.
type TotalFactura struct {
	Importe       decimal.Decimal `json:"importe"`
	ImporteConIVA decimal.Decimal `json:"importe_con_iva"`
}

func (t TotalFactura) suma(o TotalFactura) TotalFactura {
	return TotalFactura{
		Importe:       t.Importe.Add(o.Importe),
		ImporteConIVA: t.ImporteConIVA.Add(o.ImporteConIVA),
	}
}

// MesFactura es el total de un mes concreto dentro de un trimestre.
type MesFactura struct {
	Indice   int          `json:"indice"`
	Etiqueta string       `json:"etiqueta"`
	Total    TotalFactura `json:"total"`
}

// TrimestreFactura agrupa tres meses naturales (T1 = enero-marzo, etc.).
type TrimestreFactura struct {
	Clave string       `json:"clave"`
	Total TotalFactura `json:"total"`
	Meses []MesFactura `json:"meses"`
}

// ResumenAnual es la salida completa del resumen trimestral de facturas.
type ResumenAnual struct {
	Trimestres [4]TrimestreFactura `json:"trimestres"`
	TotalAnual TotalFactura        `json:"total_anual"`
}

var clavesTrimestre = [4]string{"T1", "T2", "T3", "T4"}

// ResumenTrimestral agrega facturas en totales por mes, trimestre y año.
//
// Cada fila resuelve su mes con IndiceMes (fecha del documento, con la fecha
// de subida como reserva); las filas sin fecha reconocible se descartan en
// silencio. El importe con impuestos usa ImporteIVARE cuando está presente y
// es interpretable; si no, se calcula importe × multiplicador del tipo de la
// fila (o, a falta de tipo en la fila, del tipo pedido). Una entrada vacía
// devuelve la estructura completa a cero, nunca un error.
func ResumenTrimestral(filas []FilaFactura, tipo string, tarifas Tarifas) ResumenAnual {
	var meses [12]TotalFactura

	for _, fila := range filas {
		idx, ok := IndiceMes(fila.Fecha, fila.FechaSubida)
		if !ok {
			continue
		}
		importe := money.Parse(fila.Importe)

		conIVA, ok := money.TryParse(fila.ImporteIVARE)
		if !ok {
			tipoFila := fila.Tipo
			if tipoFila == "" {
				tipoFila = tipo
			}
			conIVA = importe.Mul(tarifas.Multiplicador(tipoFila))
		}

		meses[idx].Importe = meses[idx].Importe.Add(importe)
		meses[idx].ImporteConIVA = meses[idx].ImporteConIVA.Add(conIVA)
	}

	var out ResumenAnual
	for q := 0; q < 4; q++ {
		tri := TrimestreFactura{Clave: clavesTrimestre[q], Meses: make([]MesFactura, 0, 3)}
		for m := q * 3; m < q*3+3; m++ {
			tri.Meses = append(tri.Meses, MesFactura{
				Indice:   m,
				Etiqueta: NombreMes(m),
				Total:    meses[m],
			})
			tri.Total = tri.Total.suma(meses[m])
		}
		out.Trimestres[q] = tri
		out.TotalAnual = out.TotalAnual.suma(tri.Total)
	}
	return out
}
