package guardado_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albertmmateo-blip/entretelas-api/internal/domain/entity"
	"github.com/albertmmateo-blip/entretelas-api/internal/domain/guardado"
)

func TestAgruparArticulosPorUbicacion(t *testing.T) {
	articulos := []entity.Articulo{
		{ID: 1, Nombre: "Hilo negro", LugarID: ptr(2), LugarNombre: "Trastienda"},
		{ID: 2, Nombre: "Hilo blanco", LugarID: ptr(1), CompartimentoID: ptr(10), LugarNombre: "Altillo", CompartimentoNombre: "Caja azul"},
		{ID: 3, Nombre: "Hilo rojo"},
		{ID: 4, Nombre: "Hilo verde", LugarID: ptr(1), CompartimentoID: ptr(10), LugarNombre: "Altillo", CompartimentoNombre: "Caja azul"},
		{ID: 5, Nombre: "Hilo azul", LugarID: ptr(1), CompartimentoID: ptr(11), LugarNombre: "Altillo", CompartimentoNombre: "Balda baja"},
	}

	grupos := guardado.AgruparArticulosPorUbicacion(articulos)
	require.Len(t, grupos, 4)

	// Orden por nombre de lugar y después de compartimento
	assert.Equal(t, "Altillo", grupos[0].LugarNombre)
	assert.Equal(t, "Balda baja", grupos[0].CompartimentoNombre)
	assert.Equal(t, "Altillo", grupos[1].LugarNombre)
	assert.Equal(t, "Caja azul", grupos[1].CompartimentoNombre)
	assert.Equal(t, "Trastienda", grupos[2].LugarNombre)

	// Los artículos comparten grupo por (lugar, compartimento)
	require.Len(t, grupos[1].Articulos, 2)
	assert.Equal(t, int64(2), grupos[1].Articulos[0].ID)
	assert.Equal(t, int64(4), grupos[1].Articulos[1].ID)

	// El grupo sin asignar cierra la lista
	ultimo := grupos[3]
	assert.Equal(t, guardado.ClaveSinAsignar, ultimo.Clave)
	assert.Nil(t, ultimo.LugarID)
	require.Len(t, ultimo.Articulos, 1)
	assert.Equal(t, int64(3), ultimo.Articulos[0].ID)
}

// El grupo sin asignar va el último aunque alfabéticamente fuese el primero.
func TestAgruparArticulosPorUbicacion_SinAsignarSiempreAlFinal(t *testing.T) {
	grupos := guardado.AgruparArticulosPorUbicacion([]entity.Articulo{
		{ID: 1, Nombre: "Suelto"},
		{ID: 2, Nombre: "Guardado", LugarID: ptr(1), LugarNombre: "Zapatero"},
	})
	require.Len(t, grupos, 2)
	assert.Equal(t, "Zapatero", grupos[0].LugarNombre)
	assert.Equal(t, guardado.ClaveSinAsignar, grupos[1].Clave)
}

func TestAgruparArticulosPorUbicacion_Vacio(t *testing.T) {
	assert.Empty(t, guardado.AgruparArticulosPorUbicacion(nil))
}
