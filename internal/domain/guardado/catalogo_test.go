package guardado_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albertmmateo-blip/entretelas-api/internal/domain/entity"
	"github.com/albertmmateo-blip/entretelas-api/internal/domain/guardado"
)

func ptr(v int64) *int64 { return &v }

// catalogoDePrueba monta un catálogo con un lugar (dos compartimentos) y dos
// productos: uno ubicado por asignaciones y otro por artículos.
func catalogoDePrueba() *guardado.Catalogo {
	c := guardado.NewCatalogo()
	c.CargarLugares([]entity.Lugar{
		{ID: 1, Nombre: "Altillo", Compartimentos: []entity.Compartimento{
			{ID: 10, LugarID: 1, Nombre: "Caja azul"},
			{ID: 11, LugarID: 1, Nombre: "Balda baja"},
		}},
		{ID: 2, Nombre: "Trastienda"},
	})
	c.CargarProductos([]entity.Producto{
		{ID: 100, Nombre: "Cremalleras", Asignaciones: []entity.Asignacion{
			{ID: 1000, ProductoID: 100, LugarID: 1, CompartimentoID: ptr(10), LugarNombre: "Altillo", CompartimentoNombre: "Caja azul"},
			{ID: 1001, ProductoID: 100, LugarID: 2, LugarNombre: "Trastienda"},
		}},
		{ID: 101, Nombre: "Botones", Articulos: []entity.Articulo{
			{ID: 2000, ProductoID: 101, Nombre: "Botón nácar", LugarID: ptr(1), CompartimentoID: ptr(11), LugarNombre: "Altillo", CompartimentoNombre: "Balda baja"},
			{ID: 2001, ProductoID: 101, Nombre: "Botón madera", LugarID: ptr(2), LugarNombre: "Trastienda"},
		}},
	})
	return c
}

// ──────────────────────────────────────────────────────────────────────────────
// Borrados en cascada
// ──────────────────────────────────────────────────────────────────────────────

// Borrar un lugar no deja referencia colgante: desaparecen sus asignaciones y
// los artículos pierden el par lugar/compartimento completo.
func TestEliminarLugar_SinReferenciasColgantes(t *testing.T) {
	c := catalogoDePrueba()

	c.EliminarLugar(1)

	assert.Nil(t, c.BuscarLugar(1))
	require.NotNil(t, c.BuscarLugar(2))

	cremalleras := c.BuscarProducto(100)
	require.NotNil(t, cremalleras)
	require.Len(t, cremalleras.Asignaciones, 1, "la asignación al lugar borrado desaparece")
	assert.Equal(t, int64(2), cremalleras.Asignaciones[0].LugarID)

	botones := c.BuscarProducto(101)
	require.NotNil(t, botones)
	for _, a := range botones.Articulos {
		if a.ID == 2000 {
			assert.Nil(t, a.LugarID, "el artículo pierde el lugar")
			assert.Nil(t, a.CompartimentoID, "y el compartimento")
			assert.Empty(t, a.LugarNombre)
			assert.Empty(t, a.CompartimentoNombre)
		}
		if a.LugarID != nil {
			assert.NotEqual(t, int64(1), *a.LugarID)
		}
	}
}

// Borrar un compartimento anula solo el par compartimento; el lugar se queda.
func TestEliminarCompartimento_ConservaElLugar(t *testing.T) {
	c := catalogoDePrueba()

	c.EliminarCompartimento(10)

	altillo := c.BuscarLugar(1)
	require.NotNil(t, altillo)
	require.Len(t, altillo.Compartimentos, 1)
	assert.Equal(t, "Balda baja", altillo.Compartimentos[0].Nombre)

	asig := c.BuscarProducto(100).Asignaciones[0]
	assert.Equal(t, int64(1), asig.LugarID, "lugar_id intacto")
	assert.Nil(t, asig.CompartimentoID)
	assert.Empty(t, asig.CompartimentoNombre)
	assert.Equal(t, "Altillo", asig.LugarNombre)
}

// ──────────────────────────────────────────────────────────────────────────────
// Orden alfabético y nombres desnormalizados
// ──────────────────────────────────────────────────────────────────────────────

func TestMutaciones_MantienenOrdenAlfabetico(t *testing.T) {
	c := catalogoDePrueba()

	// Productos cargados desordenados quedan ordenados
	assert.Equal(t, "Botones", c.Productos[0].Nombre)
	assert.Equal(t, "Cremalleras", c.Productos[1].Nombre)

	c.AgregarProducto(entity.Producto{ID: 102, Nombre: "agujas"})
	assert.Equal(t, "agujas", c.Productos[0].Nombre, "colación sin distinguir mayúsculas")

	c.AgregarLugar(entity.Lugar{ID: 3, Nombre: "Armario"})
	assert.Equal(t, []string{"Altillo", "Armario", "Trastienda"},
		[]string{c.Lugares[0].Nombre, c.Lugares[1].Nombre, c.Lugares[2].Nombre})

	// Compartimentos ordenados dentro de su lugar
	altillo := c.BuscarLugar(1)
	assert.Equal(t, "Balda baja", altillo.Compartimentos[0].Nombre)
	assert.Equal(t, "Caja azul", altillo.Compartimentos[1].Nombre)

	// Renombrar reordena
	c.ActualizarProducto(entity.Producto{ID: 102, Nombre: "Zurcidos"})
	assert.Equal(t, "Zurcidos", c.Productos[len(c.Productos)-1].Nombre)
}

func TestActualizarLugar_RefrescaNombresDesnormalizados(t *testing.T) {
	c := catalogoDePrueba()

	c.ActualizarLugar(entity.Lugar{ID: 1, Nombre: "Altillo nuevo"})

	assert.Equal(t, "Altillo nuevo", c.BuscarProducto(100).Asignaciones[0].LugarNombre)
	for _, a := range c.BuscarProducto(101).Articulos {
		if a.LugarID != nil && *a.LugarID == 1 {
			assert.Equal(t, "Altillo nuevo", a.LugarNombre)
		}
	}

	c.ActualizarCompartimento(entity.Compartimento{ID: 10, LugarID: 1, Nombre: "Caja roja"})
	assert.Equal(t, "Caja roja", c.BuscarProducto(100).Asignaciones[0].CompartimentoNombre)
}

// ──────────────────────────────────────────────────────────────────────────────
// Modo de presentación y Reset
// ──────────────────────────────────────────────────────────────────────────────

func TestPorArticulo_ModoDePresentacion(t *testing.T) {
	c := catalogoDePrueba()

	assert.False(t, c.BuscarProducto(100).PorArticulo(), "solo asignaciones: modo por asignación")
	assert.True(t, c.BuscarProducto(101).PorArticulo())

	// Un producto con ambas colecciones se presenta por artículo
	c.AgregarArticulo(entity.Articulo{ID: 2100, ProductoID: 100, Nombre: "Cremallera roja"})
	assert.True(t, c.BuscarProducto(100).PorArticulo())
}

func TestReset_VaciaElCatalogo(t *testing.T) {
	c := catalogoDePrueba()
	c.Reset()
	assert.Empty(t, c.Lugares)
	assert.Empty(t, c.Productos)

	// El catálogo sigue siendo usable tras el reset
	c.AgregarLugar(entity.Lugar{ID: 9, Nombre: "Nuevo"})
	assert.NotNil(t, c.BuscarLugar(9))
}

func TestClonar_CopiaProfunda(t *testing.T) {
	c := catalogoDePrueba()
	copia := c.Clonar()

	c.EliminarLugar(1)
	c.EliminarProducto(100)

	assert.NotNil(t, copia.Lugares)
	assert.Len(t, copia.Lugares, 2)
	require.Len(t, copia.Productos, 2)
	assert.Len(t, copia.Productos[1].Asignaciones, 2, "las colecciones embebidas no comparten memoria")
}
