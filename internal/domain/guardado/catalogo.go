// Package guardado implementa el catálogo de almacenaje de la tienda: lugares
// físicos, compartimentos, productos, asignaciones y artículos, junto con los
// agrupadores que alimentan la página de "Guardado".
//
// Catalogo es una caché normalizada construida explícitamente (nada de
// singletons de paquete): se crea, se carga al completo y se le aplican
// mutaciones discretas tras cada operación de persistencia que tenga éxito.
// No es seguro para uso concurrente; el consumidor serializa el acceso.
package guardado

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/albertmmateo-blip/entretelas-api/internal/domain/entity"
)

// Catalogo agrega lugares y productos con sus colecciones embebidas.
type Catalogo struct {
	Lugares   []entity.Lugar
	Productos []entity.Producto

	col *collate.Collator
}

// NewCatalogo construye un catálogo vacío con colación española sin
// distinción de mayúsculas para todos los órdenes alfabéticos.
func NewCatalogo() *Catalogo {
	return &Catalogo{col: collate.New(language.Spanish, collate.IgnoreCase)}
}

// Reset vacía el catálogo. Pensado para aislamiento entre tests y para
// recargas completas.
func (c *Catalogo) Reset() {
	c.Lugares = nil
	c.Productos = nil
}

// menorNombre compara nombres con la colación del catálogo.
func (c *Catalogo) menorNombre(a, b string) bool {
	return c.col.CompareString(a, b) < 0
}

func (c *Catalogo) ordenarLugares() {
	sort.SliceStable(c.Lugares, func(i, j int) bool {
		return c.menorNombre(c.Lugares[i].Nombre, c.Lugares[j].Nombre)
	})
}

func (c *Catalogo) ordenarProductos() {
	sort.SliceStable(c.Productos, func(i, j int) bool {
		return c.menorNombre(c.Productos[i].Nombre, c.Productos[j].Nombre)
	})
}

func (c *Catalogo) ordenarCompartimentos(l *entity.Lugar) {
	sort.SliceStable(l.Compartimentos, func(i, j int) bool {
		return c.menorNombre(l.Compartimentos[i].Nombre, l.Compartimentos[j].Nombre)
	})
}

func (c *Catalogo) ordenarArticulos(p *entity.Producto) {
	sort.SliceStable(p.Articulos, func(i, j int) bool {
		return c.menorNombre(p.Articulos[i].Nombre, p.Articulos[j].Nombre)
	})
}

// Clonar devuelve una copia profunda del catálogo (misma colación). Es la
// instantánea que usa la máquina de mutación optimista para revertir.
func (c *Catalogo) Clonar() Catalogo {
	out := Catalogo{col: c.col}
	if c.Lugares != nil {
		out.Lugares = make([]entity.Lugar, len(c.Lugares))
		for i, l := range c.Lugares {
			l.Compartimentos = append([]entity.Compartimento(nil), l.Compartimentos...)
			out.Lugares[i] = l
		}
	}
	if c.Productos != nil {
		out.Productos = make([]entity.Producto, len(c.Productos))
		for i, p := range c.Productos {
			p.Asignaciones = append([]entity.Asignacion(nil), p.Asignaciones...)
			p.Articulos = append([]entity.Articulo(nil), p.Articulos...)
			out.Productos[i] = p
		}
	}
	return out
}

// ── Carga completa ────────────────────────────────────────────────────────────

// CargarLugares sustituye la lista de lugares y la deja ordenada.
func (c *Catalogo) CargarLugares(lugares []entity.Lugar) {
	c.Lugares = lugares
	for i := range c.Lugares {
		c.ordenarCompartimentos(&c.Lugares[i])
	}
	c.ordenarLugares()
}

// CargarProductos sustituye la lista de productos y la deja ordenada.
func (c *Catalogo) CargarProductos(productos []entity.Producto) {
	c.Productos = productos
	for i := range c.Productos {
		c.ordenarArticulos(&c.Productos[i])
	}
	c.ordenarProductos()
}

// ── Búsqueda ──────────────────────────────────────────────────────────────────

// BuscarLugar devuelve el lugar con ese id, o nil.
func (c *Catalogo) BuscarLugar(id int64) *entity.Lugar {
	for i := range c.Lugares {
		if c.Lugares[i].ID == id {
			return &c.Lugares[i]
		}
	}
	return nil
}

// BuscarProducto devuelve el producto con ese id, o nil.
func (c *Catalogo) BuscarProducto(id int64) *entity.Producto {
	for i := range c.Productos {
		if c.Productos[i].ID == id {
			return &c.Productos[i]
		}
	}
	return nil
}

// ── Lugares ───────────────────────────────────────────────────────────────────

// AgregarLugar inserta un lugar manteniendo el orden alfabético.
func (c *Catalogo) AgregarLugar(l entity.Lugar) {
	c.Lugares = append(c.Lugares, l)
	c.ordenarLugares()
}

// ActualizarLugar sustituye nombre y descripción, conserva los compartimentos
// embebidos y refresca el nombre desnormalizado en asignaciones y artículos.
func (c *Catalogo) ActualizarLugar(l entity.Lugar) {
	actual := c.BuscarLugar(l.ID)
	if actual == nil {
		return
	}
	actual.Nombre = l.Nombre
	actual.Descripcion = l.Descripcion
	c.ordenarLugares()

	for i := range c.Productos {
		p := &c.Productos[i]
		for j := range p.Asignaciones {
			if p.Asignaciones[j].LugarID == l.ID {
				p.Asignaciones[j].LugarNombre = l.Nombre
			}
		}
		for j := range p.Articulos {
			if p.Articulos[j].LugarID != nil && *p.Articulos[j].LugarID == l.ID {
				p.Articulos[j].LugarNombre = l.Nombre
			}
		}
	}
}

// EliminarLugar borra el lugar con sus compartimentos y limpia toda referencia:
// las asignaciones que apuntaban a él desaparecen y los artículos pierden el
// par lugar/compartimento completo. No queda ninguna referencia colgante.
func (c *Catalogo) EliminarLugar(id int64) {
	lugares := c.Lugares[:0]
	for _, l := range c.Lugares {
		if l.ID != id {
			lugares = append(lugares, l)
		}
	}
	c.Lugares = lugares

	for i := range c.Productos {
		p := &c.Productos[i]

		asigs := p.Asignaciones[:0]
		for _, a := range p.Asignaciones {
			if a.LugarID != id {
				asigs = append(asigs, a)
			}
		}
		p.Asignaciones = asigs

		for j := range p.Articulos {
			art := &p.Articulos[j]
			if art.LugarID != nil && *art.LugarID == id {
				art.LugarID = nil
				art.LugarNombre = ""
				art.CompartimentoID = nil
				art.CompartimentoNombre = ""
			}
		}
	}
}

// ── Compartimentos ────────────────────────────────────────────────────────────

// AgregarCompartimento inserta un compartimento en su lugar, ordenado.
func (c *Catalogo) AgregarCompartimento(comp entity.Compartimento) {
	l := c.BuscarLugar(comp.LugarID)
	if l == nil {
		return
	}
	l.Compartimentos = append(l.Compartimentos, comp)
	c.ordenarCompartimentos(l)
}

// ActualizarCompartimento sustituye nombre y descripción y refresca el nombre
// desnormalizado en asignaciones y artículos.
func (c *Catalogo) ActualizarCompartimento(comp entity.Compartimento) {
	l := c.BuscarLugar(comp.LugarID)
	if l == nil {
		return
	}
	for i := range l.Compartimentos {
		if l.Compartimentos[i].ID == comp.ID {
			l.Compartimentos[i].Nombre = comp.Nombre
			l.Compartimentos[i].Descripcion = comp.Descripcion
			break
		}
	}
	c.ordenarCompartimentos(l)

	for i := range c.Productos {
		p := &c.Productos[i]
		for j := range p.Asignaciones {
			if p.Asignaciones[j].CompartimentoID != nil && *p.Asignaciones[j].CompartimentoID == comp.ID {
				p.Asignaciones[j].CompartimentoNombre = comp.Nombre
			}
		}
		for j := range p.Articulos {
			if p.Articulos[j].CompartimentoID != nil && *p.Articulos[j].CompartimentoID == comp.ID {
				p.Articulos[j].CompartimentoNombre = comp.Nombre
			}
		}
	}
}

// EliminarCompartimento borra el compartimento y anula solo el par
// compartimento_id/compartimento_nombre en asignaciones y artículos; el
// lugar_id se conserva intacto.
func (c *Catalogo) EliminarCompartimento(id int64) {
	for i := range c.Lugares {
		l := &c.Lugares[i]
		comps := l.Compartimentos[:0]
		for _, comp := range l.Compartimentos {
			if comp.ID != id {
				comps = append(comps, comp)
			}
		}
		l.Compartimentos = comps
	}

	for i := range c.Productos {
		p := &c.Productos[i]
		for j := range p.Asignaciones {
			a := &p.Asignaciones[j]
			if a.CompartimentoID != nil && *a.CompartimentoID == id {
				a.CompartimentoID = nil
				a.CompartimentoNombre = ""
			}
		}
		for j := range p.Articulos {
			art := &p.Articulos[j]
			if art.CompartimentoID != nil && *art.CompartimentoID == id {
				art.CompartimentoID = nil
				art.CompartimentoNombre = ""
			}
		}
	}
}

// ── Productos ─────────────────────────────────────────────────────────────────

// AgregarProducto inserta un producto manteniendo el orden alfabético.
func (c *Catalogo) AgregarProducto(p entity.Producto) {
	c.Productos = append(c.Productos, p)
	c.ordenarProductos()
}

// ActualizarProducto sustituye los campos propios; las asignaciones y los
// artículos embebidos se conservan.
func (c *Catalogo) ActualizarProducto(p entity.Producto) {
	actual := c.BuscarProducto(p.ID)
	if actual == nil {
		return
	}
	actual.Nombre = p.Nombre
	actual.Ref = p.Ref
	actual.Descripcion = p.Descripcion
	c.ordenarProductos()
}

// EliminarProducto borra el producto con sus colecciones embebidas.
func (c *Catalogo) EliminarProducto(id int64) {
	productos := c.Productos[:0]
	for _, p := range c.Productos {
		if p.ID != id {
			productos = append(productos, p)
		}
	}
	c.Productos = productos
}

// ── Asignaciones ──────────────────────────────────────────────────────────────

// AgregarAsignacion inserta una asignación en su producto.
func (c *Catalogo) AgregarAsignacion(a entity.Asignacion) {
	p := c.BuscarProducto(a.ProductoID)
	if p == nil {
		return
	}
	p.Asignaciones = append(p.Asignaciones, a)
}

// ActualizarAsignacion sustituye la asignación con el mismo id.
func (c *Catalogo) ActualizarAsignacion(a entity.Asignacion) {
	p := c.BuscarProducto(a.ProductoID)
	if p == nil {
		return
	}
	for i := range p.Asignaciones {
		if p.Asignaciones[i].ID == a.ID {
			p.Asignaciones[i] = a
			return
		}
	}
}

// EliminarAsignacion borra una asignación de su producto.
func (c *Catalogo) EliminarAsignacion(productoID, id int64) {
	p := c.BuscarProducto(productoID)
	if p == nil {
		return
	}
	asigs := p.Asignaciones[:0]
	for _, a := range p.Asignaciones {
		if a.ID != id {
			asigs = append(asigs, a)
		}
	}
	p.Asignaciones = asigs
}

// ── Artículos ─────────────────────────────────────────────────────────────────

// AgregarArticulo inserta un artículo en su producto, ordenado por nombre.
func (c *Catalogo) AgregarArticulo(a entity.Articulo) {
	p := c.BuscarProducto(a.ProductoID)
	if p == nil {
		return
	}
	p.Articulos = append(p.Articulos, a)
	c.ordenarArticulos(p)
}

// ActualizarArticulo sustituye el artículo con el mismo id y reordena.
func (c *Catalogo) ActualizarArticulo(a entity.Articulo) {
	p := c.BuscarProducto(a.ProductoID)
	if p == nil {
		return
	}
	for i := range p.Articulos {
		if p.Articulos[i].ID == a.ID {
			p.Articulos[i] = a
			break
		}
	}
	c.ordenarArticulos(p)
}

// EliminarArticulo borra un artículo de su producto.
func (c *Catalogo) EliminarArticulo(productoID, id int64) {
	p := c.BuscarProducto(productoID)
	if p == nil {
		return
	}
	arts := p.Articulos[:0]
	for _, a := range p.Articulos {
		if a.ID != id {
			arts = append(arts, a)
		}
	}
	p.Articulos = arts
}
