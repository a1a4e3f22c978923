package usecase

import (
	"strings"
	"sync"

	"github.com/albertmmateo-blip/entretelas-api/internal/application/dto"
	"github.com/albertmmateo-blip/entretelas-api/internal/domain"
	"github.com/albertmmateo-blip/entretelas-api/internal/domain/entity"
	"github.com/albertmmateo-blip/entretelas-api/internal/domain/guardado"
	"github.com/albertmmateo-blip/entretelas-api/internal/domain/repository"
)

// GuardadoUseCase casos de uso del catálogo de guardado. Mantiene el catálogo
// en memoria como caché de lectura: cada mutación se aplica primero al
// catálogo de forma optimista, se persiste y se confirma o revierte según el
// resultado. El mutex serializa todas las operaciones; el catálogo no es
// seguro para uso concurrente.
type GuardadoUseCase struct {
	mu        sync.Mutex
	lugares   repository.LugarRepository
	productos repository.ProductoRepository
	cat       *guardado.Catalogo
	opt       *guardado.Optimista[guardado.Catalogo]
}

// NewGuardadoUseCase construye el caso de uso con un catálogo vacío; llamar a
// Recargar antes de servir peticiones.
func NewGuardadoUseCase(lugares repository.LugarRepository, productos repository.ProductoRepository) *GuardadoUseCase {
	cat := guardado.NewCatalogo()
	return &GuardadoUseCase{
		lugares:   lugares,
		productos: productos,
		cat:       cat,
		opt: guardado.NewOptimista(cat, func(c guardado.Catalogo) guardado.Catalogo {
			return c.Clonar()
		}),
	}
}

// Recargar vacía el catálogo y lo reconstruye desde la base de datos.
func (uc *GuardadoUseCase) Recargar() error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	lugares, err := uc.lugares.List()
	if err != nil {
		return err
	}
	productos, err := uc.productos.List()
	if err != nil {
		return err
	}

	uc.cat.Reset()
	vl := make([]entity.Lugar, 0, len(lugares))
	for _, l := range lugares {
		vl = append(vl, *l)
	}
	vp := make([]entity.Producto, 0, len(productos))
	for _, p := range productos {
		vp = append(vp, *p)
	}
	uc.cat.CargarLugares(vl)
	uc.cat.CargarProductos(vp)
	return nil
}

// ── Lugares ───────────────────────────────────────────────────────────────────

// ListLugares devuelve los lugares en orden alfabético con sus compartimentos.
func (uc *GuardadoUseCase) ListLugares() *dto.LugarListResponse {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	out := &dto.LugarListResponse{Items: make([]dto.LugarResponse, 0, len(uc.cat.Lugares))}
	for i := range uc.cat.Lugares {
		out.Items = append(out.Items, toLugarResponse(&uc.cat.Lugares[i]))
	}
	return out
}

// CreateLugar da de alta un lugar de almacenaje.
func (uc *GuardadoUseCase) CreateLugar(in dto.CreateLugarRequest) (*dto.LugarResponse, error) {
	in.Nombre = strings.TrimSpace(in.Nombre)
	if in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	uc.mu.Lock()
	defer uc.mu.Unlock()

	l := entity.Lugar{Nombre: in.Nombre, Descripcion: in.Descripcion}
	tok := uc.opt.Aplicar(func(c *guardado.Catalogo) { c.AgregarLugar(l) })
	if err := uc.lugares.Create(&l); err != nil {
		uc.opt.Revertir(tok)
		return nil, err
	}
	uc.opt.Confirmar(tok, func(c *guardado.Catalogo) {
		c.EliminarLugar(0)
		c.AgregarLugar(l)
	})
	resp := toLugarResponse(&l)
	return &resp, nil
}

// UpdateLugar renombra o describe un lugar. El nombre desnormalizado se
// refresca en todas las asignaciones y artículos que lo referencian.
func (uc *GuardadoUseCase) UpdateLugar(id int64, in dto.UpdateLugarRequest) (*dto.LugarResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	actual := uc.cat.BuscarLugar(id)
	if actual == nil {
		return nil, nil
	}
	l := entity.Lugar{ID: id, Nombre: actual.Nombre, Descripcion: actual.Descripcion}
	if in.Nombre != nil {
		nombre := strings.TrimSpace(*in.Nombre)
		if nombre == "" {
			return nil, domain.ErrInvalidInput
		}
		l.Nombre = nombre
	}
	if in.Descripcion != nil {
		l.Descripcion = *in.Descripcion
	}

	tok := uc.opt.Aplicar(func(c *guardado.Catalogo) { c.ActualizarLugar(l) })
	if err := uc.lugares.Update(&l); err != nil {
		uc.opt.Revertir(tok)
		return nil, err
	}
	uc.opt.Confirmar(tok, nil)
	resp := toLugarResponse(uc.cat.BuscarLugar(id))
	return &resp, nil
}

// DeleteLugar elimina un lugar con sus compartimentos. Las asignaciones que lo
// referenciaban desaparecen y los artículos quedan sin ubicación.
func (uc *GuardadoUseCase) DeleteLugar(id int64) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.cat.BuscarLugar(id) == nil {
		return domain.ErrNotFound
	}
	tok := uc.opt.Aplicar(func(c *guardado.Catalogo) { c.EliminarLugar(id) })
	if err := uc.lugares.Delete(id); err != nil {
		uc.opt.Revertir(tok)
		return err
	}
	uc.opt.Confirmar(tok, nil)
	return nil
}

// CreateCompartimento añade un compartimento a un lugar existente.
func (uc *GuardadoUseCase) CreateCompartimento(lugarID int64, in dto.CreateCompartimentoRequest) (*dto.CompartimentoResponse, error) {
	in.Nombre = strings.TrimSpace(in.Nombre)
	if in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.cat.BuscarLugar(lugarID) == nil {
		return nil, domain.ErrReferenciaRota
	}
	comp := entity.Compartimento{LugarID: lugarID, Nombre: in.Nombre, Descripcion: in.Descripcion}
	tok := uc.opt.Aplicar(func(c *guardado.Catalogo) { c.AgregarCompartimento(comp) })
	if err := uc.lugares.CreateCompartimento(&comp); err != nil {
		uc.opt.Revertir(tok)
		return nil, err
	}
	uc.opt.Confirmar(tok, func(c *guardado.Catalogo) {
		c.EliminarCompartimento(0)
		c.AgregarCompartimento(comp)
	})
	resp := toCompartimentoResponse(comp)
	return &resp, nil
}

// UpdateCompartimento edita un compartimento; el nombre desnormalizado se
// refresca donde se usa.
func (uc *GuardadoUseCase) UpdateCompartimento(id int64, in dto.UpdateCompartimentoRequest) (*dto.CompartimentoResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	actual := uc.buscarCompartimento(id)
	if actual == nil {
		return nil, nil
	}
	comp := *actual
	if in.Nombre != nil {
		nombre := strings.TrimSpace(*in.Nombre)
		if nombre == "" {
			return nil, domain.ErrInvalidInput
		}
		comp.Nombre = nombre
	}
	if in.Descripcion != nil {
		comp.Descripcion = *in.Descripcion
	}

	tok := uc.opt.Aplicar(func(c *guardado.Catalogo) { c.ActualizarCompartimento(comp) })
	if err := uc.lugares.UpdateCompartimento(&comp); err != nil {
		uc.opt.Revertir(tok)
		return nil, err
	}
	uc.opt.Confirmar(tok, nil)
	resp := toCompartimentoResponse(comp)
	return &resp, nil
}

// DeleteCompartimento elimina un compartimento. Las asignaciones y artículos
// que lo usaban conservan el lugar y pierden solo el compartimento.
func (uc *GuardadoUseCase) DeleteCompartimento(id int64) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.buscarCompartimento(id) == nil {
		return domain.ErrNotFound
	}
	tok := uc.opt.Aplicar(func(c *guardado.Catalogo) { c.EliminarCompartimento(id) })
	if err := uc.lugares.DeleteCompartimento(id); err != nil {
		uc.opt.Revertir(tok)
		return err
	}
	uc.opt.Confirmar(tok, nil)
	return nil
}

func (uc *GuardadoUseCase) buscarCompartimento(id int64) *entity.Compartimento {
	for i := range uc.cat.Lugares {
		l := &uc.cat.Lugares[i]
		for j := range l.Compartimentos {
			if l.Compartimentos[j].ID == id {
				return &l.Compartimentos[j]
			}
		}
	}
	return nil
}

// ── Productos ─────────────────────────────────────────────────────────────────

// ListProductos devuelve los productos en orden alfabético con sus
// colecciones y, en modo por artículo, los grupos por ubicación.
func (uc *GuardadoUseCase) ListProductos() *dto.ProductoListResponse {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	out := &dto.ProductoListResponse{Items: make([]dto.ProductoResponse, 0, len(uc.cat.Productos))}
	for i := range uc.cat.Productos {
		out.Items = append(out.Items, toProductoResponse(&uc.cat.Productos[i]))
	}
	return out
}

// GetProducto devuelve un producto por ID, o nil si no existe.
func (uc *GuardadoUseCase) GetProducto(id int64) *dto.ProductoResponse {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	p := uc.cat.BuscarProducto(id)
	if p == nil {
		return nil
	}
	resp := toProductoResponse(p)
	return &resp
}

// CreateProducto da de alta un producto de catálogo.
func (uc *GuardadoUseCase) CreateProducto(in dto.CreateProductoRequest) (*dto.ProductoResponse, error) {
	in.Nombre = strings.TrimSpace(in.Nombre)
	if in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	uc.mu.Lock()
	defer uc.mu.Unlock()

	p := entity.Producto{Nombre: in.Nombre, Ref: in.Ref, Descripcion: in.Descripcion}
	tok := uc.opt.Aplicar(func(c *guardado.Catalogo) { c.AgregarProducto(p) })
	if err := uc.productos.Create(&p); err != nil {
		uc.opt.Revertir(tok)
		return nil, err
	}
	uc.opt.Confirmar(tok, func(c *guardado.Catalogo) {
		c.EliminarProducto(0)
		c.AgregarProducto(p)
	})
	resp := toProductoResponse(&p)
	return &resp, nil
}

// UpdateProducto edita los campos propios del producto.
func (uc *GuardadoUseCase) UpdateProducto(id int64, in dto.UpdateProductoRequest) (*dto.ProductoResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	actual := uc.cat.BuscarProducto(id)
	if actual == nil {
		return nil, nil
	}
	p := entity.Producto{ID: id, Nombre: actual.Nombre, Ref: actual.Ref, Descripcion: actual.Descripcion}
	if in.Nombre != nil {
		nombre := strings.TrimSpace(*in.Nombre)
		if nombre == "" {
			return nil, domain.ErrInvalidInput
		}
		p.Nombre = nombre
	}
	if in.Ref != nil {
		p.Ref = *in.Ref
	}
	if in.Descripcion != nil {
		p.Descripcion = *in.Descripcion
	}

	tok := uc.opt.Aplicar(func(c *guardado.Catalogo) { c.ActualizarProducto(p) })
	if err := uc.productos.Update(&p); err != nil {
		uc.opt.Revertir(tok)
		return nil, err
	}
	uc.opt.Confirmar(tok, nil)
	resp := toProductoResponse(uc.cat.BuscarProducto(id))
	return &resp, nil
}

// DeleteProducto elimina un producto con sus asignaciones y artículos.
func (uc *GuardadoUseCase) DeleteProducto(id int64) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.cat.BuscarProducto(id) == nil {
		return domain.ErrNotFound
	}
	tok := uc.opt.Aplicar(func(c *guardado.Catalogo) { c.EliminarProducto(id) })
	if err := uc.productos.Delete(id); err != nil {
		uc.opt.Revertir(tok)
		return err
	}
	uc.opt.Confirmar(tok, nil)
	return nil
}

// ── Asignaciones ──────────────────────────────────────────────────────────────

// CreateAsignacion coloca un producto en un lugar, con compartimento opcional.
func (uc *GuardadoUseCase) CreateAsignacion(productoID int64, in dto.CreateAsignacionRequest) (*dto.AsignacionResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.cat.BuscarProducto(productoID) == nil {
		return nil, domain.ErrReferenciaRota
	}
	lugarNombre, compNombre, err := uc.resolverUbicacion(in.LugarID, in.CompartimentoID)
	if err != nil {
		return nil, err
	}
	a := entity.Asignacion{
		ProductoID:          productoID,
		LugarID:             in.LugarID,
		CompartimentoID:     in.CompartimentoID,
		LugarNombre:         lugarNombre,
		CompartimentoNombre: compNombre,
		Notas:               in.Notas,
	}
	tok := uc.opt.Aplicar(func(c *guardado.Catalogo) { c.AgregarAsignacion(a) })
	if err := uc.productos.CreateAsignacion(&a); err != nil {
		uc.opt.Revertir(tok)
		return nil, err
	}
	uc.opt.Confirmar(tok, func(c *guardado.Catalogo) {
		c.EliminarAsignacion(productoID, 0)
		c.AgregarAsignacion(a)
	})
	resp := toAsignacionResponse(a)
	return &resp, nil
}

// UpdateAsignacion mueve o anota una asignación existente.
func (uc *GuardadoUseCase) UpdateAsignacion(productoID, id int64, in dto.UpdateAsignacionRequest) (*dto.AsignacionResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	p := uc.cat.BuscarProducto(productoID)
	if p == nil {
		return nil, nil
	}
	var actual *entity.Asignacion
	for i := range p.Asignaciones {
		if p.Asignaciones[i].ID == id {
			actual = &p.Asignaciones[i]
			break
		}
	}
	if actual == nil {
		return nil, nil
	}

	a := *actual
	if in.LugarID != nil {
		a.LugarID = *in.LugarID
		// al cambiar de lugar el compartimento anterior deja de valer
		if in.CompartimentoID == nil {
			a.CompartimentoID = nil
		}
	}
	if in.CompartimentoID != nil {
		a.CompartimentoID = in.CompartimentoID
	}
	if in.QuitarComp {
		a.CompartimentoID = nil
	}
	if in.Notas != nil {
		a.Notas = *in.Notas
	}
	lugarNombre, compNombre, err := uc.resolverUbicacion(a.LugarID, a.CompartimentoID)
	if err != nil {
		return nil, err
	}
	a.LugarNombre = lugarNombre
	a.CompartimentoNombre = compNombre

	tok := uc.opt.Aplicar(func(c *guardado.Catalogo) { c.ActualizarAsignacion(a) })
	if err := uc.productos.UpdateAsignacion(&a); err != nil {
		uc.opt.Revertir(tok)
		return nil, err
	}
	uc.opt.Confirmar(tok, nil)
	resp := toAsignacionResponse(a)
	return &resp, nil
}

// DeleteAsignacion retira una asignación de su producto.
func (uc *GuardadoUseCase) DeleteAsignacion(productoID, id int64) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.cat.BuscarProducto(productoID) == nil {
		return domain.ErrNotFound
	}
	tok := uc.opt.Aplicar(func(c *guardado.Catalogo) { c.EliminarAsignacion(productoID, id) })
	if err := uc.productos.DeleteAsignacion(id); err != nil {
		uc.opt.Revertir(tok)
		return err
	}
	uc.opt.Confirmar(tok, nil)
	return nil
}

// ── Artículos ─────────────────────────────────────────────────────────────────

// CreateArticulo desglosa un producto en un artículo con ubicación propia
// opcional.
func (uc *GuardadoUseCase) CreateArticulo(productoID int64, in dto.CreateArticuloRequest) (*dto.ArticuloResponse, error) {
	in.Nombre = strings.TrimSpace(in.Nombre)
	if in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.cat.BuscarProducto(productoID) == nil {
		return nil, domain.ErrReferenciaRota
	}
	a := entity.Articulo{
		ProductoID:      productoID,
		Nombre:          in.Nombre,
		Ref:             in.Ref,
		Descripcion:     in.Descripcion,
		Notas:           in.Notas,
		LugarID:         in.LugarID,
		CompartimentoID: in.CompartimentoID,
	}
	if a.LugarID != nil {
		lugarNombre, compNombre, err := uc.resolverUbicacion(*a.LugarID, a.CompartimentoID)
		if err != nil {
			return nil, err
		}
		a.LugarNombre = lugarNombre
		a.CompartimentoNombre = compNombre
	} else if a.CompartimentoID != nil {
		// compartimento sin lugar no es una ubicación válida
		return nil, domain.ErrInvalidInput
	}

	tok := uc.opt.Aplicar(func(c *guardado.Catalogo) { c.AgregarArticulo(a) })
	if err := uc.productos.CreateArticulo(&a); err != nil {
		uc.opt.Revertir(tok)
		return nil, err
	}
	uc.opt.Confirmar(tok, func(c *guardado.Catalogo) {
		c.EliminarArticulo(productoID, 0)
		c.AgregarArticulo(a)
	})
	resp := toArticuloResponse(a)
	return &resp, nil
}

// UpdateArticulo edita o reubica un artículo.
func (uc *GuardadoUseCase) UpdateArticulo(productoID, id int64, in dto.UpdateArticuloRequest) (*dto.ArticuloResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	p := uc.cat.BuscarProducto(productoID)
	if p == nil {
		return nil, nil
	}
	var actual *entity.Articulo
	for i := range p.Articulos {
		if p.Articulos[i].ID == id {
			actual = &p.Articulos[i]
			break
		}
	}
	if actual == nil {
		return nil, nil
	}

	a := *actual
	if in.Nombre != nil {
		nombre := strings.TrimSpace(*in.Nombre)
		if nombre == "" {
			return nil, domain.ErrInvalidInput
		}
		a.Nombre = nombre
	}
	if in.Ref != nil {
		a.Ref = *in.Ref
	}
	if in.Descripcion != nil {
		a.Descripcion = *in.Descripcion
	}
	if in.Notas != nil {
		a.Notas = *in.Notas
	}
	if in.LugarID != nil {
		a.LugarID = in.LugarID
		if in.CompartimentoID == nil {
			a.CompartimentoID = nil
		}
	}
	if in.CompartimentoID != nil {
		a.CompartimentoID = in.CompartimentoID
	}
	if in.QuitarComp {
		a.CompartimentoID = nil
	}
	if in.QuitarLugar {
		a.LugarID = nil
		a.CompartimentoID = nil
	}
	a.LugarNombre = ""
	a.CompartimentoNombre = ""
	if a.LugarID != nil {
		lugarNombre, compNombre, err := uc.resolverUbicacion(*a.LugarID, a.CompartimentoID)
		if err != nil {
			return nil, err
		}
		a.LugarNombre = lugarNombre
		a.CompartimentoNombre = compNombre
	} else if a.CompartimentoID != nil {
		return nil, domain.ErrInvalidInput
	}

	tok := uc.opt.Aplicar(func(c *guardado.Catalogo) { c.ActualizarArticulo(a) })
	if err := uc.productos.UpdateArticulo(&a); err != nil {
		uc.opt.Revertir(tok)
		return nil, err
	}
	uc.opt.Confirmar(tok, nil)
	resp := toArticuloResponse(a)
	return &resp, nil
}

// DeleteArticulo retira un artículo de su producto.
func (uc *GuardadoUseCase) DeleteArticulo(productoID, id int64) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.cat.BuscarProducto(productoID) == nil {
		return domain.ErrNotFound
	}
	tok := uc.opt.Aplicar(func(c *guardado.Catalogo) { c.EliminarArticulo(productoID, id) })
	if err := uc.productos.DeleteArticulo(id); err != nil {
		uc.opt.Revertir(tok)
		return err
	}
	uc.opt.Confirmar(tok, nil)
	return nil
}

// resolverUbicacion comprueba que el lugar existe y que el compartimento, si
// viene, pertenece a ese lugar, y devuelve sus nombres desnormalizados.
func (uc *GuardadoUseCase) resolverUbicacion(lugarID int64, compID *int64) (string, string, error) {
	l := uc.cat.BuscarLugar(lugarID)
	if l == nil {
		return "", "", domain.ErrReferenciaRota
	}
	if compID == nil {
		return l.Nombre, "", nil
	}
	for _, comp := range l.Compartimentos {
		if comp.ID == *compID {
			return l.Nombre, comp.Nombre, nil
		}
	}
	return "", "", domain.ErrReferenciaRota
}

// ── Mapeo a DTO ───────────────────────────────────────────────────────────────

func toLugarResponse(l *entity.Lugar) dto.LugarResponse {
	out := dto.LugarResponse{
		ID:             l.ID,
		Nombre:         l.Nombre,
		Descripcion:    l.Descripcion,
		Compartimentos: make([]dto.CompartimentoResponse, 0, len(l.Compartimentos)),
	}
	for _, comp := range l.Compartimentos {
		out.Compartimentos = append(out.Compartimentos, toCompartimentoResponse(comp))
	}
	return out
}

func toCompartimentoResponse(c entity.Compartimento) dto.CompartimentoResponse {
	return dto.CompartimentoResponse{
		ID:          c.ID,
		LugarID:     c.LugarID,
		Nombre:      c.Nombre,
		Descripcion: c.Descripcion,
	}
}

func toAsignacionResponse(a entity.Asignacion) dto.AsignacionResponse {
	return dto.AsignacionResponse{
		ID:                  a.ID,
		ProductoID:          a.ProductoID,
		LugarID:             a.LugarID,
		CompartimentoID:     a.CompartimentoID,
		LugarNombre:         a.LugarNombre,
		CompartimentoNombre: a.CompartimentoNombre,
		Notas:               a.Notas,
	}
}

func toArticuloResponse(a entity.Articulo) dto.ArticuloResponse {
	return dto.ArticuloResponse{
		ID:                  a.ID,
		ProductoID:          a.ProductoID,
		Nombre:              a.Nombre,
		Ref:                 a.Ref,
		Descripcion:         a.Descripcion,
		Notas:               a.Notas,
		LugarID:             a.LugarID,
		CompartimentoID:     a.CompartimentoID,
		LugarNombre:         a.LugarNombre,
		CompartimentoNombre: a.CompartimentoNombre,
	}
}

func toProductoResponse(p *entity.Producto) dto.ProductoResponse {
	out := dto.ProductoResponse{
		ID:           p.ID,
		Nombre:       p.Nombre,
		Ref:          p.Ref,
		Descripcion:  p.Descripcion,
		PorArticulo:  p.PorArticulo(),
		Asignaciones: make([]dto.AsignacionResponse, 0, len(p.Asignaciones)),
		Articulos:    make([]dto.ArticuloResponse, 0, len(p.Articulos)),
	}
	for _, a := range p.Asignaciones {
		out.Asignaciones = append(out.Asignaciones, toAsignacionResponse(a))
	}
	for _, a := range p.Articulos {
		out.Articulos = append(out.Articulos, toArticuloResponse(a))
	}
	if out.PorArticulo {
		grupos := guardado.AgruparArticulosPorUbicacion(p.Articulos)
		out.Grupos = make([]dto.GrupoUbicacionResponse, 0, len(grupos))
		for _, g := range grupos {
			gr := dto.GrupoUbicacionResponse{
				Clave:               g.Clave,
				LugarID:             g.LugarID,
				CompartimentoID:     g.CompartimentoID,
				LugarNombre:         g.LugarNombre,
				CompartimentoNombre: g.CompartimentoNombre,
				Articulos:           make([]dto.ArticuloResponse, 0, len(g.Articulos)),
			}
			for _, a := range g.Articulos {
				gr.Articulos = append(gr.Articulos, toArticuloResponse(a))
			}
			out.Grupos = append(out.Grupos, gr)
		}
	}
	return out
}
