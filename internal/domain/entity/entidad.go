package entity

import "time"

// Tipos de entidad con las que trata la tienda.
const (
	EntidadProveedor = "proveedor"
	EntidadCliente   = "cliente"
)

// Entidad representa un proveedor o cliente bajo el que se archivan facturas.
type Entidad struct {
	ID        int64
	Nombre    string
	Tipo      string // proveedor | cliente
	Telefono  string
	Notas     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
