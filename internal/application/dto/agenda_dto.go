package dto

import "time"

// CreateNotaRequest entrada para crear una nota.
type CreateNotaRequest struct {
	Titulo    string `json:"titulo" validate:"required,min=1,max=200"`
	Contenido string `json:"contenido"`
}

// UpdateNotaRequest entrada para editar una nota.
type UpdateNotaRequest struct {
	Titulo    *string `json:"titulo" validate:"omitempty,min=1,max=200"`
	Contenido *string `json:"contenido"`
}

// NotaResponse salida de una nota.
type NotaResponse struct {
	ID        int64     `json:"id"`
	Titulo    string    `json:"titulo"`
	Contenido string    `json:"contenido"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NotaListResponse notas ordenadas por última edición.
type NotaListResponse struct {
	Items []NotaResponse `json:"items"`
}

// CreateAvisoRequest entrada para apuntar un aviso de llamada.
type CreateAvisoRequest struct {
	Nombre   string `json:"nombre" validate:"required,min=1,max=200"`
	Telefono string `json:"telefono"`
	Motivo   string `json:"motivo"`
}

// UpdateAvisoRequest entrada para corregir un aviso.
type UpdateAvisoRequest struct {
	Nombre   *string `json:"nombre" validate:"omitempty,min=1,max=200"`
	Telefono *string `json:"telefono"`
	Motivo   *string `json:"motivo"`
}

// SetPendienteRequest marca o desmarca un aviso como pendiente.
type SetPendienteRequest struct {
	Pendiente bool `json:"pendiente"`
}

// AvisoResponse salida de un aviso de llamada.
type AvisoResponse struct {
	ID        int64     `json:"id"`
	Nombre    string    `json:"nombre"`
	Telefono  string    `json:"telefono"`
	Motivo    string    `json:"motivo"`
	Pendiente bool      `json:"pendiente"`
	CreatedAt time.Time `json:"created_at"`
}

// AvisoListResponse avisos del más reciente al más antiguo.
type AvisoListResponse struct {
	Items []AvisoResponse `json:"items"`
}

// CreatePedidoRequest entrada para registrar un pedido a proveedor.
type CreatePedidoRequest struct {
	Proveedor   string `json:"proveedor" validate:"required,min=1,max=200"`
	Descripcion string `json:"descripcion"`
	Fecha       string `json:"fecha"`
}

// UpdatePedidoRequest entrada para editar un pedido o cambiar su estado.
type UpdatePedidoRequest struct {
	Proveedor   *string `json:"proveedor" validate:"omitempty,min=1,max=200"`
	Descripcion *string `json:"descripcion"`
	Estado      *string `json:"estado" validate:"omitempty,oneof=pendiente recibido cancelado"`
	Fecha       *string `json:"fecha"`
}

// PedidoResponse salida de un pedido a proveedor.
type PedidoResponse struct {
	ID          int64     `json:"id"`
	Proveedor   string    `json:"proveedor"`
	Descripcion string    `json:"descripcion"`
	Estado      string    `json:"estado"`
	Fecha       string    `json:"fecha"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PedidoListResponse pedidos filtrados por estado.
type PedidoListResponse struct {
	Items []PedidoResponse `json:"items"`
}
