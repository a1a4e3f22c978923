package entity

// Entidades del catálogo de guardado: lugares físicos de la tienda, sus
// compartimentos y los productos colocados en ellos. Los nombres de lugar y
// compartimento viajan desnormalizados en asignaciones y artículos para que
// las vistas no tengan que resolverlos.

// Lugar es un sitio físico de almacenaje (armario, altillo, trastienda...).
type Lugar struct {
	ID             int64
	Nombre         string
	Descripcion    string
	Compartimentos []Compartimento
}

// Compartimento es una subdivisión con nombre dentro de un Lugar.
type Compartimento struct {
	ID          int64
	LugarID     int64
	Nombre      string
	Descripcion string
}

// Producto es un artículo de catálogo. Puede ubicarse de dos maneras
// excluyentes para la vista: por asignaciones directas (producto → lugar) o,
// si tiene artículos, por la ubicación de cada artículo.
type Producto struct {
	ID           int64
	Nombre       string
	Ref          string
	Descripcion  string
	Asignaciones []Asignacion
	Articulos    []Articulo
}

// Asignacion enlaza un producto completo con un lugar, con compartimento
// opcional. Se usa cuando el producto no se desglosa en artículos.
type Asignacion struct {
	ID                  int64
	ProductoID          int64
	LugarID             int64
	CompartimentoID     *int64
	LugarNombre         string
	CompartimentoNombre string
	Notas               string
}

// Articulo es una variante concreta de un Producto, con ubicación propia
// opcional.
type Articulo struct {
	ID                  int64
	ProductoID          int64
	Nombre              string
	Ref                 string
	Descripcion         string
	Notas               string
	LugarID             *int64
	CompartimentoID     *int64
	LugarNombre         string
	CompartimentoNombre string
}

// PorArticulo indica si el producto se presenta en modo "ubicación por
// artículo": basta con que exista algún artículo, aunque también haya
// asignaciones.
func (p *Producto) PorArticulo() bool {
	return len(p.Articulos) > 0
}
