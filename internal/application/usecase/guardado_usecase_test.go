package usecase_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albertmmateo-blip/entretelas-api/internal/application/dto"
	"github.com/albertmmateo-blip/entretelas-api/internal/application/usecase"
	"github.com/albertmmateo-blip/entretelas-api/internal/domain"
	"github.com/albertmmateo-blip/entretelas-api/internal/domain/entity"
	"github.com/albertmmateo-blip/entretelas-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios falsos en memoria
// ──────────────────────────────────────────────────────────────────────────────

var errBaseDatos = errors.New("base de datos caída")

// lugarRepoFake asigna IDs secuenciales. Con fallar a true toda escritura
// devuelve error, para probar la reversión optimista.
type lugarRepoFake struct {
	seq    int64
	fallar bool
}

var _ repository.LugarRepository = (*lugarRepoFake)(nil)

func (f *lugarRepoFake) Create(l *entity.Lugar) error {
	if f.fallar {
		return errBaseDatos
	}
	f.seq++
	l.ID = f.seq
	return nil
}

func (f *lugarRepoFake) List() ([]*entity.Lugar, error) { return nil, nil }

func (f *lugarRepoFake) Update(*entity.Lugar) error {
	if f.fallar {
		return errBaseDatos
	}
	return nil
}

func (f *lugarRepoFake) Delete(int64) error {
	if f.fallar {
		return errBaseDatos
	}
	return nil
}

func (f *lugarRepoFake) CreateCompartimento(c *entity.Compartimento) error {
	if f.fallar {
		return errBaseDatos
	}
	f.seq++
	c.ID = f.seq
	return nil
}

func (f *lugarRepoFake) UpdateCompartimento(*entity.Compartimento) error {
	if f.fallar {
		return errBaseDatos
	}
	return nil
}

func (f *lugarRepoFake) DeleteCompartimento(int64) error {
	if f.fallar {
		return errBaseDatos
	}
	return nil
}

type productoRepoFake struct {
	seq    int64
	fallar bool
}

var _ repository.ProductoRepository = (*productoRepoFake)(nil)

func (f *productoRepoFake) Create(p *entity.Producto) error {
	if f.fallar {
		return errBaseDatos
	}
	f.seq++
	p.ID = f.seq
	return nil
}

func (f *productoRepoFake) GetByID(int64) (*entity.Producto, error) { return nil, nil }
func (f *productoRepoFake) List() ([]*entity.Producto, error)       { return nil, nil }

func (f *productoRepoFake) Update(*entity.Producto) error {
	if f.fallar {
		return errBaseDatos
	}
	return nil
}

func (f *productoRepoFake) Delete(int64) error {
	if f.fallar {
		return errBaseDatos
	}
	return nil
}

func (f *productoRepoFake) CreateAsignacion(a *entity.Asignacion) error {
	if f.fallar {
		return errBaseDatos
	}
	f.seq++
	a.ID = f.seq
	return nil
}

func (f *productoRepoFake) UpdateAsignacion(*entity.Asignacion) error {
	if f.fallar {
		return errBaseDatos
	}
	return nil
}

func (f *productoRepoFake) DeleteAsignacion(int64) error {
	if f.fallar {
		return errBaseDatos
	}
	return nil
}

func (f *productoRepoFake) CreateArticulo(a *entity.Articulo) error {
	if f.fallar {
		return errBaseDatos
	}
	f.seq++
	a.ID = f.seq
	return nil
}

func (f *productoRepoFake) UpdateArticulo(*entity.Articulo) error {
	if f.fallar {
		return errBaseDatos
	}
	return nil
}

func (f *productoRepoFake) DeleteArticulo(int64) error {
	if f.fallar {
		return errBaseDatos
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func nuevoGuardadoUC(t *testing.T) (*usecase.GuardadoUseCase, *lugarRepoFake, *productoRepoFake) {
	t.Helper()
	lugares := &lugarRepoFake{}
	productos := &productoRepoFake{}
	uc := usecase.NewGuardadoUseCase(lugares, productos)
	require.NoError(t, uc.Recargar())
	return uc, lugares, productos
}

func strPtr(s string) *string { return &s }

func i64Ptr(v int64) *int64 { return &v }

// montarCatalogo deja el caso de uso con un lugar con compartimento y un
// producto con una asignación y un artículo ubicados en él.
func montarCatalogo(t *testing.T, uc *usecase.GuardadoUseCase) (lugar dto.LugarResponse, comp dto.CompartimentoResponse, producto dto.ProductoResponse) {
	t.Helper()

	l, err := uc.CreateLugar(dto.CreateLugarRequest{Nombre: "Altillo"})
	require.NoError(t, err)
	c, err := uc.CreateCompartimento(l.ID, dto.CreateCompartimentoRequest{Nombre: "Caja azul"})
	require.NoError(t, err)
	p, err := uc.CreateProducto(dto.CreateProductoRequest{Nombre: "Cremalleras"})
	require.NoError(t, err)
	_, err = uc.CreateAsignacion(p.ID, dto.CreateAsignacionRequest{LugarID: l.ID, CompartimentoID: i64Ptr(c.ID)})
	require.NoError(t, err)

	got := uc.GetProducto(p.ID)
	require.NotNil(t, got)
	return *l, *c, *got
}

// ──────────────────────────────────────────────────────────────────────────────
// Altas con reconciliación de ID
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateLugarReconciliaIDReal(t *testing.T) {
	uc, _, _ := nuevoGuardadoUC(t)

	l, err := uc.CreateLugar(dto.CreateLugarRequest{Nombre: "  Altillo  "})
	require.NoError(t, err)
	assert.Equal(t, int64(1), l.ID)
	assert.Equal(t, "Altillo", l.Nombre)

	list := uc.ListLugares()
	require.Len(t, list.Items, 1)
	assert.Equal(t, int64(1), list.Items[0].ID)
}

func TestCreateLugarOrdenAlfabetico(t *testing.T) {
	uc, _, _ := nuevoGuardadoUC(t)

	_, err := uc.CreateLugar(dto.CreateLugarRequest{Nombre: "Trastienda"})
	require.NoError(t, err)
	_, err = uc.CreateLugar(dto.CreateLugarRequest{Nombre: "armario"})
	require.NoError(t, err)

	list := uc.ListLugares()
	require.Len(t, list.Items, 2)
	assert.Equal(t, "armario", list.Items[0].Nombre)
	assert.Equal(t, "Trastienda", list.Items[1].Nombre)
}

func TestCreateLugarNombreVacio(t *testing.T) {
	uc, _, _ := nuevoGuardadoUC(t)

	_, err := uc.CreateLugar(dto.CreateLugarRequest{Nombre: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, uc.ListLugares().Items)
}

func TestCreateCompartimentoLugarInexistente(t *testing.T) {
	uc, _, _ := nuevoGuardadoUC(t)

	_, err := uc.CreateCompartimento(99, dto.CreateCompartimentoRequest{Nombre: "Caja"})
	assert.ErrorIs(t, err, domain.ErrReferenciaRota)
}

// ──────────────────────────────────────────────────────────────────────────────
// Reversión optimista cuando la base de datos falla
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateLugarRevierteSiFallaLaBase(t *testing.T) {
	uc, lugares, _ := nuevoGuardadoUC(t)
	lugares.fallar = true

	_, err := uc.CreateLugar(dto.CreateLugarRequest{Nombre: "Altillo"})
	assert.ErrorIs(t, err, errBaseDatos)
	assert.Empty(t, uc.ListLugares().Items, "el lugar no debe quedar en el catálogo")
}

func TestDeleteLugarRevierteSiFallaLaBase(t *testing.T) {
	uc, lugares, _ := nuevoGuardadoUC(t)
	lugar, _, producto := montarCatalogo(t, uc)
	lugares.fallar = true

	err := uc.DeleteLugar(lugar.ID)
	assert.ErrorIs(t, err, errBaseDatos)

	// el lugar sigue y el producto conserva su asignación
	require.Len(t, uc.ListLugares().Items, 1)
	got := uc.GetProducto(producto.ID)
	require.NotNil(t, got)
	assert.Len(t, got.Asignaciones, 1)
}

func TestUpdateProductoRevierteSiFallaLaBase(t *testing.T) {
	uc, _, productos := nuevoGuardadoUC(t)
	_, _, producto := montarCatalogo(t, uc)
	productos.fallar = true

	_, err := uc.UpdateProducto(producto.ID, dto.UpdateProductoRequest{Nombre: strPtr("Botones")})
	assert.ErrorIs(t, err, errBaseDatos)

	got := uc.GetProducto(producto.ID)
	require.NotNil(t, got)
	assert.Equal(t, "Cremalleras", got.Nombre)
}

// ──────────────────────────────────────────────────────────────────────────────
// Cascadas y nombres desnormalizados
// ──────────────────────────────────────────────────────────────────────────────

func TestDeleteLugarCascada(t *testing.T) {
	uc, _, _ := nuevoGuardadoUC(t)
	lugar, _, producto := montarCatalogo(t, uc)

	art, err := uc.CreateArticulo(producto.ID, dto.CreateArticuloRequest{
		Nombre:  "Cremallera roja",
		LugarID: i64Ptr(lugar.ID),
	})
	require.NoError(t, err)
	require.Equal(t, "Altillo", art.LugarNombre)

	require.NoError(t, uc.DeleteLugar(lugar.ID))

	assert.Empty(t, uc.ListLugares().Items)
	got := uc.GetProducto(producto.ID)
	require.NotNil(t, got)
	assert.Empty(t, got.Asignaciones, "las asignaciones del lugar borrado desaparecen")
	require.Len(t, got.Articulos, 1)
	assert.Nil(t, got.Articulos[0].LugarID, "el artículo queda sin ubicación")
	assert.Empty(t, got.Articulos[0].LugarNombre)
}

func TestDeleteCompartimentoConservaElLugar(t *testing.T) {
	uc, _, _ := nuevoGuardadoUC(t)
	_, comp, producto := montarCatalogo(t, uc)

	require.NoError(t, uc.DeleteCompartimento(comp.ID))

	got := uc.GetProducto(producto.ID)
	require.NotNil(t, got)
	require.Len(t, got.Asignaciones, 1)
	a := got.Asignaciones[0]
	assert.Nil(t, a.CompartimentoID)
	assert.Empty(t, a.CompartimentoNombre)
	assert.Equal(t, "Altillo", a.LugarNombre)
}

func TestUpdateLugarRefrescaNombresDesnormalizados(t *testing.T) {
	uc, _, _ := nuevoGuardadoUC(t)
	lugar, _, producto := montarCatalogo(t, uc)

	_, err := uc.UpdateLugar(lugar.ID, dto.UpdateLugarRequest{Nombre: strPtr("Sótano")})
	require.NoError(t, err)

	got := uc.GetProducto(producto.ID)
	require.NotNil(t, got)
	require.Len(t, got.Asignaciones, 1)
	assert.Equal(t, "Sótano", got.Asignaciones[0].LugarNombre)
}

// ──────────────────────────────────────────────────────────────────────────────
// Validación de referencias de ubicación
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateAsignacionProductoInexistente(t *testing.T) {
	uc, _, _ := nuevoGuardadoUC(t)

	_, err := uc.CreateAsignacion(99, dto.CreateAsignacionRequest{LugarID: 1})
	assert.ErrorIs(t, err, domain.ErrReferenciaRota)
}

func TestCreateAsignacionCompartimentoDeOtroLugar(t *testing.T) {
	uc, _, _ := nuevoGuardadoUC(t)
	_, comp, producto := montarCatalogo(t, uc)

	otro, err := uc.CreateLugar(dto.CreateLugarRequest{Nombre: "Trastienda"})
	require.NoError(t, err)

	_, err = uc.CreateAsignacion(producto.ID, dto.CreateAsignacionRequest{
		LugarID:         otro.ID,
		CompartimentoID: i64Ptr(comp.ID),
	})
	assert.ErrorIs(t, err, domain.ErrReferenciaRota)
}

func TestCreateArticuloCompartimentoSinLugar(t *testing.T) {
	uc, _, _ := nuevoGuardadoUC(t)
	_, comp, producto := montarCatalogo(t, uc)

	_, err := uc.CreateArticulo(producto.ID, dto.CreateArticuloRequest{
		Nombre:          "Suelto",
		CompartimentoID: i64Ptr(comp.ID),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdateArticuloQuitarLugar(t *testing.T) {
	uc, _, _ := nuevoGuardadoUC(t)
	lugar, comp, producto := montarCatalogo(t, uc)

	art, err := uc.CreateArticulo(producto.ID, dto.CreateArticuloRequest{
		Nombre:          "Cremallera roja",
		LugarID:         i64Ptr(lugar.ID),
		CompartimentoID: i64Ptr(comp.ID),
	})
	require.NoError(t, err)

	got, err := uc.UpdateArticulo(producto.ID, art.ID, dto.UpdateArticuloRequest{QuitarLugar: true})
	require.NoError(t, err)
	assert.Nil(t, got.LugarID)
	assert.Nil(t, got.CompartimentoID)
	assert.Empty(t, got.LugarNombre)
}

func TestUpdateAsignacionCambioDeLugarSueltaElCompartimento(t *testing.T) {
	uc, _, _ := nuevoGuardadoUC(t)
	_, _, producto := montarCatalogo(t, uc)

	otro, err := uc.CreateLugar(dto.CreateLugarRequest{Nombre: "Trastienda"})
	require.NoError(t, err)

	asigID := producto.Asignaciones[0].ID
	got, err := uc.UpdateAsignacion(producto.ID, asigID, dto.UpdateAsignacionRequest{LugarID: i64Ptr(otro.ID)})
	require.NoError(t, err)
	assert.Equal(t, otro.ID, got.LugarID)
	assert.Nil(t, got.CompartimentoID, "el compartimento del lugar anterior no viaja")
	assert.Equal(t, "Trastienda", got.LugarNombre)
}

// ──────────────────────────────────────────────────────────────────────────────
// Modo por artículo
// ──────────────────────────────────────────────────────────────────────────────

func TestGetProductoAgrupaArticulosPorUbicacion(t *testing.T) {
	uc, _, _ := nuevoGuardadoUC(t)
	lugar, _, _ := montarCatalogo(t, uc)

	p, err := uc.CreateProducto(dto.CreateProductoRequest{Nombre: "Botones"})
	require.NoError(t, err)
	_, err = uc.CreateArticulo(p.ID, dto.CreateArticuloRequest{Nombre: "Botón nácar", LugarID: i64Ptr(lugar.ID)})
	require.NoError(t, err)
	_, err = uc.CreateArticulo(p.ID, dto.CreateArticuloRequest{Nombre: "Botón madera"})
	require.NoError(t, err)

	got := uc.GetProducto(p.ID)
	require.NotNil(t, got)
	assert.True(t, got.PorArticulo)
	require.Len(t, got.Grupos, 2)
}
