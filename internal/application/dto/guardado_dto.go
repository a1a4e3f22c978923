package dto

// DTOs del catálogo de guardado. Las respuestas llevan los nombres de lugar y
// compartimento desnormalizados para que la vista no tenga que resolverlos.

// CreateLugarRequest entrada para crear un lugar de almacenaje.
type CreateLugarRequest struct {
	Nombre      string `json:"nombre" validate:"required,min=1,max=200"`
	Descripcion string `json:"descripcion"`
}

// UpdateLugarRequest entrada para renombrar o describir un lugar.
type UpdateLugarRequest struct {
	Nombre      *string `json:"nombre" validate:"omitempty,min=1,max=200"`
	Descripcion *string `json:"descripcion"`
}

// CreateCompartimentoRequest entrada para añadir un compartimento a un lugar.
type CreateCompartimentoRequest struct {
	Nombre      string `json:"nombre" validate:"required,min=1,max=200"`
	Descripcion string `json:"descripcion"`
}

// UpdateCompartimentoRequest entrada para editar un compartimento.
type UpdateCompartimentoRequest struct {
	Nombre      *string `json:"nombre" validate:"omitempty,min=1,max=200"`
	Descripcion *string `json:"descripcion"`
}

// CompartimentoResponse salida de un compartimento.
type CompartimentoResponse struct {
	ID          int64  `json:"id"`
	LugarID     int64  `json:"lugar_id"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
}

// LugarResponse salida de un lugar con sus compartimentos ordenados.
type LugarResponse struct {
	ID             int64                   `json:"id"`
	Nombre         string                  `json:"nombre"`
	Descripcion    string                  `json:"descripcion"`
	Compartimentos []CompartimentoResponse `json:"compartimentos"`
}

// LugarListResponse lista alfabética de lugares.
type LugarListResponse struct {
	Items []LugarResponse `json:"items"`
}

// CreateProductoRequest entrada para crear un producto de catálogo.
type CreateProductoRequest struct {
	Nombre      string `json:"nombre" validate:"required,min=1,max=200"`
	Ref         string `json:"ref"`
	Descripcion string `json:"descripcion"`
}

// UpdateProductoRequest entrada para editar un producto.
type UpdateProductoRequest struct {
	Nombre      *string `json:"nombre" validate:"omitempty,min=1,max=200"`
	Ref         *string `json:"ref"`
	Descripcion *string `json:"descripcion"`
}

// CreateAsignacionRequest entrada para colocar un producto en un lugar.
type CreateAsignacionRequest struct {
	LugarID         int64  `json:"lugar_id" validate:"required"`
	CompartimentoID *int64 `json:"compartimento_id"`
	Notas           string `json:"notas"`
}

// UpdateAsignacionRequest entrada para mover o anotar una asignación.
type UpdateAsignacionRequest struct {
	LugarID         *int64  `json:"lugar_id"`
	CompartimentoID *int64  `json:"compartimento_id"`
	QuitarComp      bool    `json:"quitar_compartimento"`
	Notas           *string `json:"notas"`
}

// CreateArticuloRequest entrada para desglosar un producto en un artículo.
type CreateArticuloRequest struct {
	Nombre          string `json:"nombre" validate:"required,min=1,max=200"`
	Ref             string `json:"ref"`
	Descripcion     string `json:"descripcion"`
	Notas           string `json:"notas"`
	LugarID         *int64 `json:"lugar_id"`
	CompartimentoID *int64 `json:"compartimento_id"`
}

// UpdateArticuloRequest entrada para editar o reubicar un artículo. QuitarLugar
// deja el artículo sin ubicación (y sin compartimento).
type UpdateArticuloRequest struct {
	Nombre          *string `json:"nombre"`
	Ref             *string `json:"ref"`
	Descripcion     *string `json:"descripcion"`
	Notas           *string `json:"notas"`
	LugarID         *int64  `json:"lugar_id"`
	CompartimentoID *int64  `json:"compartimento_id"`
	QuitarLugar     bool    `json:"quitar_lugar"`
	QuitarComp      bool    `json:"quitar_compartimento"`
}

// AsignacionResponse salida de una asignación directa producto → lugar.
type AsignacionResponse struct {
	ID                  int64  `json:"id"`
	ProductoID          int64  `json:"producto_id"`
	LugarID             int64  `json:"lugar_id"`
	CompartimentoID     *int64 `json:"compartimento_id"`
	LugarNombre         string `json:"lugar_nombre"`
	CompartimentoNombre string `json:"compartimento_nombre"`
	Notas               string `json:"notas"`
}

// ArticuloResponse salida de un artículo con su ubicación resuelta.
type ArticuloResponse struct {
	ID                  int64  `json:"id"`
	ProductoID          int64  `json:"producto_id"`
	Nombre              string `json:"nombre"`
	Ref                 string `json:"ref"`
	Descripcion         string `json:"descripcion"`
	Notas               string `json:"notas"`
	LugarID             *int64 `json:"lugar_id"`
	CompartimentoID     *int64 `json:"compartimento_id"`
	LugarNombre         string `json:"lugar_nombre"`
	CompartimentoNombre string `json:"compartimento_nombre"`
}

// GrupoUbicacionResponse artículos de un producto agrupados por ubicación.
// El grupo sin asignar, si existe, va siempre el último.
type GrupoUbicacionResponse struct {
	Clave               string             `json:"clave"`
	LugarID             *int64             `json:"lugar_id"`
	CompartimentoID     *int64             `json:"compartimento_id"`
	LugarNombre         string             `json:"lugar_nombre"`
	CompartimentoNombre string             `json:"compartimento_nombre"`
	Articulos           []ArticuloResponse `json:"articulos"`
}

// ProductoResponse salida de un producto de catálogo. PorArticulo indica qué
// colección manda en la vista: grupos si hay artículos, asignaciones si no.
type ProductoResponse struct {
	ID           int64                    `json:"id"`
	Nombre       string                   `json:"nombre"`
	Ref          string                   `json:"ref"`
	Descripcion  string                   `json:"descripcion"`
	PorArticulo  bool                     `json:"por_articulo"`
	Asignaciones []AsignacionResponse     `json:"asignaciones"`
	Articulos    []ArticuloResponse       `json:"articulos"`
	Grupos       []GrupoUbicacionResponse `json:"grupos"`
}

// ProductoListResponse lista alfabética de productos.
type ProductoListResponse struct {
	Items []ProductoResponse `json:"items"`
}
