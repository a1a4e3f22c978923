package repository

import (
	"github.com/shopspring/decimal"

	"github.com/albertmmateo-blip/entretelas-api/internal/domain/entity"
)

// MetadatosFactura son los campos editables tras la subida. Un puntero nil
// deja el campo como está; un NullDecimal no válido pone el importe a NULL.
type MetadatosFactura struct {
	Fecha        *string
	Importe      *decimal.NullDecimal
	ImporteIVARE *decimal.NullDecimal
	Vencimiento  *string
	Pagada       *bool
}

// FacturaRepository define el puerto de persistencia del archivador de
// facturas. Los listados devuelven las filas sin el documento binario.
type FacturaRepository interface {
	Upload(f *entity.FacturaPDF) error
	GetAllForEntidad(entidadID int64, tipo string) ([]*entity.FacturaPDF, error)
	ListByTipoYAnio(tipo string, anio int) ([]*entity.FacturaPDF, error)
	GetByID(id int64) (*entity.FacturaPDF, error)
	GetDocumento(id int64) (nombre string, documento []byte, err error)
	UpdateMetadata(id int64, m MetadatosFactura) error
	Delete(id int64) error
}
