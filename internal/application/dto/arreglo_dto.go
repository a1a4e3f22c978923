package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/albertmmateo-blip/entretelas-api/internal/domain/finanzas"
)

// CreateArregloRequest entrada para apuntar un vale en el libro de arreglos.
// Importe llega como texto del formulario.
type CreateArregloRequest struct {
	Carpeta string `json:"carpeta" validate:"required"`
	Fecha   string `json:"fecha" validate:"required"`
	Numero  string `json:"numero"`
	Cliente string `json:"cliente"`
	Arreglo string `json:"arreglo"`
	Importe string `json:"importe"`
}

// UpdateArregloRequest entrada para corregir un vale.
type UpdateArregloRequest struct {
	Carpeta *string `json:"carpeta"`
	Fecha   *string `json:"fecha"`
	Numero  *string `json:"numero"`
	Cliente *string `json:"cliente"`
	Arreglo *string `json:"arreglo"`
	Importe *string `json:"importe"`
}

// ArregloResponse salida de un vale del libro.
type ArregloResponse struct {
	ID                int64           `json:"id"`
	Carpeta           string          `json:"carpeta"`
	Fecha             string          `json:"fecha"`
	Numero            string          `json:"numero"`
	Cliente           string          `json:"cliente"`
	Arreglo           string          `json:"arreglo"`
	Importe           decimal.Decimal `json:"importe"`
	ImporteFormateado string          `json:"importe_formateado"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// ArregloListResponse lista de vales filtrada por carpeta y año.
type ArregloListResponse struct {
	Items []ArregloResponse `json:"items"`
}

// ResumenMensualResponse meses del libro de arreglos, del más reciente al
// más antiguo.
type ResumenMensualResponse struct {
	Meses []finanzas.BucketMensual `json:"meses"`
}

// RepartoResponse división 65/35 del total de una carpeta.
type RepartoResponse struct {
	Carpeta string          `json:"carpeta"`
	Reparto finanzas.Reparto `json:"reparto"`
}
