package dto

import "time"

// CreateEntidadRequest entrada para dar de alta un proveedor o cliente.
type CreateEntidadRequest struct {
	Nombre   string `json:"nombre" validate:"required,min=1,max=200"`
	Tipo     string `json:"tipo" validate:"required,oneof=proveedor cliente"`
	Telefono string `json:"telefono"`
	Notas    string `json:"notas"`
}

// UpdateEntidadRequest entrada para actualizar una entidad. Tipo no se toca:
// una ficha no cambia de proveedor a cliente.
type UpdateEntidadRequest struct {
	Nombre   *string `json:"nombre" validate:"omitempty,min=1,max=200"`
	Telefono *string `json:"telefono"`
	Notas    *string `json:"notas"`
}

// EntidadResponse salida de una entidad.
type EntidadResponse struct {
	ID        int64     `json:"id"`
	Nombre    string    `json:"nombre"`
	Tipo      string    `json:"tipo"`
	Telefono  string    `json:"telefono"`
	Notas     string    `json:"notas"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EntidadListResponse lista de entidades, opcionalmente filtrada por tipo.
type EntidadListResponse struct {
	Items []EntidadResponse `json:"items"`
}
