package finanzas

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/albertmmateo-blip/entretelas-api/pkg/money"
)

// Carpetas canónicas bajo las que se archivan los arreglos.
const (
	CarpetaEntretelas = "Entretelas"
	CarpetaIsa        = "Isa"
	CarpetaLoli       = "Loli"
)

// Carpetas lista las tres carpetas en su orden de presentación.
var Carpetas = [3]string{CarpetaEntretelas, CarpetaIsa, CarpetaLoli}

// NormalizarCarpeta devuelve el nombre canónico de una carpeta comparando sin
// distinguir mayúsculas. Cualquier otro valor, incluida la cadena vacía, no
// normaliza: el arreglo cuenta en los totales generales pero no se atribuye a
// ninguna carpeta.
func NormalizarCarpeta(v string) (string, bool) {
	v = strings.TrimSpace(v)
	for _, c := range Carpetas {
		if strings.EqualFold(v, c) {
			return c, true
		}
	}
	return "", false
}

// FilaArreglo es la proyección de un arreglo que necesitan los resúmenes.
// Importe llega crudo: número, cadena de pantalla o nil.
type FilaArreglo struct {
	Fecha   string
	Carpeta string
	Importe any
}

// BucketMensual acumula los arreglos de un mes natural con desglose por
// carpeta. Derivado, nunca persistido.
type BucketMensual struct {
	ClaveMes     string          `json:"clave_mes"`
	Cantidad     int             `json:"cantidad"`
	TotalImporte decimal.Decimal `json:"total_importe"`
	Entretelas   decimal.Decimal `json:"entretelas"`
	Isa          decimal.Decimal `json:"isa"`
	Loli         decimal.Decimal `json:"loli"`
}

// ResumenMensualArreglos agrupa arreglos por mes natural, del más reciente al
// más antiguo.
//
// Solo cuentan las entradas cuya fecha es estrictamente YYYY-MM-DD (ClaveMes);
// el resto se descarta por completo, sin contarse en ningún total. Dentro de
// cada mes se acumulan cantidad, importe total y el importe por carpeta; las
// entradas con carpeta desconocida suman en cantidad y total pero no en
// ninguna carpeta.
func ResumenMensualArreglos(entradas []FilaArreglo) []BucketMensual {
	porMes := make(map[string]*BucketMensual)

	for _, e := range entradas {
		clave, ok := ClaveMes(e.Fecha)
		if !ok {
			continue
		}
		b := porMes[clave]
		if b == nil {
			b = &BucketMensual{ClaveMes: clave}
			porMes[clave] = b
		}
		importe := money.Parse(e.Importe)
		b.Cantidad++
		b.TotalImporte = b.TotalImporte.Add(importe)
		if carpeta, ok := NormalizarCarpeta(e.Carpeta); ok {
			switch carpeta {
			case CarpetaEntretelas:
				b.Entretelas = b.Entretelas.Add(importe)
			case CarpetaIsa:
				b.Isa = b.Isa.Add(importe)
			case CarpetaLoli:
				b.Loli = b.Loli.Add(importe)
			}
		}
	}

	out := make([]BucketMensual, 0, len(porMes))
	for _, b := range porMes {
		out = append(out, *b)
	}
	// Las claves YYYY-MM ordenan bien como texto
	sort.Slice(out, func(i, j int) bool { return out[i].ClaveMes > out[j].ClaveMes })
	return out
}

// TotalArreglos acumula importes por carpeta más el total conjunto.
type TotalArreglos struct {
	Entretelas decimal.Decimal `json:"entretelas"`
	Isa        decimal.Decimal `json:"isa"`
	Loli       decimal.Decimal `json:"loli"`
	Total      decimal.Decimal `json:"total"`
}

func (t TotalArreglos) suma(o TotalArreglos) TotalArreglos {
	return TotalArreglos{
		Entretelas: t.Entretelas.Add(o.Entretelas),
		Isa:        t.Isa.Add(o.Isa),
		Loli:       t.Loli.Add(o.Loli),
		Total:      t.Total.Add(o.Total),
	}
}

// MesArreglos es el total de arreglos de un mes dentro de un trimestre.
type MesArreglos struct {
	Indice   int           `json:"indice"`
	Etiqueta string        `json:"etiqueta"`
	Total    TotalArreglos `json:"total"`
}

// TrimestreArreglos agrupa tres meses naturales.
type TrimestreArreglos struct {
	Clave string        `json:"clave"`
	Total TotalArreglos `json:"total"`
	Meses []MesArreglos `json:"meses"`
}

// ResumenAnualArreglos es la salida del resumen trimestral de arreglos.
type ResumenAnualArreglos struct {
	Trimestres [4]TrimestreArreglos `json:"trimestres"`
	TotalAnual TotalArreglos        `json:"total_anual"`
}

// ResumenTrimestralArreglos agrega arreglos en los cuatro trimestres fijos,
// desglosados por carpeta.
//
// A diferencia del resumen mensual, aquí la fecha se resuelve con el parseo
// permisivo (subcadena YYYY-MM-DD o formatos genéricos). Los dos caminos se
// mantienen tal cual se observan en producción; ver DESIGN.md.
func ResumenTrimestralArreglos(entradas []FilaArreglo) ResumenAnualArreglos {
	var meses [12]TotalArreglos

	for _, e := range entradas {
		idx, ok := indiceMesPermisivo(e.Fecha)
		if !ok {
			continue
		}
		importe := money.Parse(e.Importe)
		meses[idx].Total = meses[idx].Total.Add(importe)
		if carpeta, ok := NormalizarCarpeta(e.Carpeta); ok {
			switch carpeta {
			case CarpetaEntretelas:
				meses[idx].Entretelas = meses[idx].Entretelas.Add(importe)
			case CarpetaIsa:
				meses[idx].Isa = meses[idx].Isa.Add(importe)
			case CarpetaLoli:
				meses[idx].Loli = meses[idx].Loli.Add(importe)
			}
		}
	}

	var out ResumenAnualArreglos
	for q := 0; q < 4; q++ {
		tri := TrimestreArreglos{Clave: clavesTrimestre[q], Meses: make([]MesArreglos, 0, 3)}
		for m := q * 3; m < q*3+3; m++ {
			tri.Meses = append(tri.Meses, MesArreglos{
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

// Reparto es la división de un total de arreglos entre carpeta y tienda.
type Reparto struct {
	Total        decimal.Decimal `json:"total"`
	ParteCarpeta decimal.Decimal `json:"parte_carpeta"`
	ParteTienda  decimal.Decimal `json:"parte_tienda"`
}

// RepartoArreglos reparte un total al 65/35. La parte de la tienda se obtiene
// por resta y no multiplicando por 0,35: así las dos mitades suman el total
// exacto sin redondeos independientes.
func RepartoArreglos(total decimal.Decimal, tarifas Tarifas) Reparto {
	carpeta := total.Mul(tarifas.ParteTaller)
	return Reparto{
		Total:        total,
		ParteCarpeta: carpeta,
		ParteTienda:  total.Sub(carpeta),
	}
}
