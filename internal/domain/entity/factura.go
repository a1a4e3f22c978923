package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// FacturaPDF es una factura archivada: los metadatos más el documento subido
// (PDF u ofimático) guardado como bytes en la propia fila.
//
// Fecha y Vencimiento se guardan como texto tal cual llegan del formulario:
// los resúmenes toleran fechas sucias y las descartan en vez de rechazarlas
// al archivar.
type FacturaPDF struct {
	ID            int64
	Referencia    string // UUID asignado al archivar, estable aunque cambien los metadatos
	EntidadID     int64
	Tipo          string // compra | venta | arreglos | contabilidad
	NombreArchivo string
	Fecha         string
	FechaSubida   time.Time
	Importe       decimal.NullDecimal
	ImporteIVARE  decimal.NullDecimal
	Vencimiento   string
	Pagada        bool
	// Documento solo se carga al descargar; los listados lo dejan vacío.
	Documento []byte
}
