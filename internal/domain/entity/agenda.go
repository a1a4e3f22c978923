package entity

import "time"

// Nota es un apunte libre de la tienda.
type Nota struct {
	ID        int64
	Titulo    string
	Contenido string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Aviso es un recordatorio de llamada a un cliente o proveedor.
type Aviso struct {
	ID        int64
	Nombre    string
	Telefono  string
	Motivo    string
	Pendiente bool
	CreatedAt time.Time
}

// Estados de un pedido a proveedor.
const (
	PedidoPendiente = "pendiente"
	PedidoRecibido  = "recibido"
	PedidoCancelado = "cancelado"
)

// Pedido es un encargo a proveedor pendiente de recibir.
type Pedido struct {
	ID          int64
	Proveedor   string
	Descripcion string
	Estado      string // pendiente | recibido | cancelado
	Fecha       string // YYYY-MM-DD
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
