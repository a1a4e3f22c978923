package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// UploadFacturaRequest metadatos que acompañan al documento subido. Los
// importes llegan como texto libre del formulario ("1.234,50 €" incluido) y
// se interpretan en el caso de uso.
type UploadFacturaRequest struct {
	EntidadID    int64  `form:"entidad_id" validate:"required"`
	Tipo         string `form:"tipo" validate:"required,oneof=compra venta arreglos contabilidad"`
	Fecha        string `form:"fecha"`
	Importe      string `form:"importe"`
	ImporteIVARE string `form:"importe_ivare"`
	Vencimiento  string `form:"vencimiento"`
}

// UpdateFacturaRequest metadatos editables tras la subida. Un campo ausente
// se deja como está; un importe vacío pasa a nulo.
type UpdateFacturaRequest struct {
	Fecha        *string `json:"fecha"`
	Importe      *string `json:"importe"`
	ImporteIVARE *string `json:"importe_ivare"`
	Vencimiento  *string `json:"vencimiento"`
	Pagada       *bool   `json:"pagada"`
}

// FacturaResponse salida de una factura archivada, sin el documento.
type FacturaResponse struct {
	ID                int64            `json:"id"`
	Referencia        string           `json:"referencia"`
	EntidadID         int64            `json:"entidad_id"`
	Tipo              string           `json:"tipo"`
	NombreArchivo     string           `json:"nombre_archivo"`
	Fecha             string           `json:"fecha"`
	FechaSubida       time.Time        `json:"fecha_subida"`
	Importe           *decimal.Decimal `json:"importe"`
	ImporteFormateado string           `json:"importe_formateado"`
	ImporteIVARE      *decimal.Decimal `json:"importe_ivare"`
	Vencimiento       string           `json:"vencimiento"`
	Pagada            bool             `json:"pagada"`
}

// FacturaListResponse lista de facturas de una entidad o de un ejercicio.
type FacturaListResponse struct {
	Items []FacturaResponse `json:"items"`
}
