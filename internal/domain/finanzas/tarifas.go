// Package finanzas agrupa los cálculos financieros de la tienda: resúmenes
// trimestrales de facturas, resúmenes mensuales/trimestrales de arreglos y el
// reparto de ingresos entre carpeta y tienda. Todas las funciones son puras:
// no mutan las filas recibidas y nunca devuelven error por datos sucios (las
// filas con fecha irreconocible simplemente no se cuentan).
package finanzas

import "github.com/shopspring/decimal"

// Tarifas reúne las constantes de negocio de la tienda. No tienen derivación
// documentada, así que viven como configuración y no como literales.
type Tarifas struct {
	// IVAVenta multiplica el importe de facturas de venta sin IVA informado.
	IVAVenta decimal.Decimal
	// IVACompraRE multiplica el resto (compra y otros): IVA más recargo de
	// equivalencia de proveedor.
	IVACompraRE decimal.Decimal
	// ParteTaller es la fracción del total de arreglos que corresponde a la
	// carpeta; la tienda se queda el resto.
	ParteTaller decimal.Decimal
}

// TarifasPorDefecto devuelve los valores vigentes: 21% de IVA en ventas,
// 26,2% (IVA + RE) en compras y reparto 65/35 en arreglos.
func TarifasPorDefecto() Tarifas {
	return Tarifas{
		IVAVenta:    decimal.RequireFromString("1.21"),
		IVACompraRE: decimal.RequireFromString("1.262"),
		ParteTaller: decimal.RequireFromString("0.65"),
	}
}

// Multiplicador devuelve el factor de impuestos aplicable a un tipo de factura.
func (t Tarifas) Multiplicador(tipo string) decimal.Decimal {
	if tipo == TipoVenta {
		return t.IVAVenta
	}
	return t.IVACompraRE
}

// Tipos de factura archivables.
const (
	TipoCompra       = "compra"
	TipoVenta        = "venta"
	TipoArreglos     = "arreglos"
	TipoContabilidad = "contabilidad"
)
