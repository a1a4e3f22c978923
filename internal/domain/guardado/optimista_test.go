package guardado_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albertmmateo-blip/entretelas-api/internal/domain/entity"
	"github.com/albertmmateo-blip/entretelas-api/internal/domain/guardado"
)

func nuevaMaquina() (*guardado.Catalogo, *guardado.Optimista[guardado.Catalogo]) {
	c := catalogoDePrueba()
	return c, guardado.NewOptimista(c, func(cat guardado.Catalogo) guardado.Catalogo {
		return cat.Clonar()
	})
}

// Aplicar y confirmar: el cambio optimista se queda y el token se consume.
func TestOptimista_AplicarYConfirmar(t *testing.T) {
	c, m := nuevaMaquina()

	tok := m.Aplicar(func(cat *guardado.Catalogo) {
		cat.AgregarLugar(entity.Lugar{ID: -1, Nombre: "Provisional"})
	})
	require.NotNil(t, c.BuscarLugar(-1), "el cambio se ve antes de confirmar")
	assert.Equal(t, 1, m.Pendientes())

	// El servidor asignó id definitivo: reconciliar sustituye el provisional
	m.Confirmar(tok, func(cat *guardado.Catalogo) {
		cat.EliminarLugar(-1)
		cat.AgregarLugar(entity.Lugar{ID: 7, Nombre: "Provisional"})
	})
	assert.Nil(t, c.BuscarLugar(-1))
	assert.NotNil(t, c.BuscarLugar(7))
	assert.Equal(t, 0, m.Pendientes())
}

// Revertir restaura la instantánea previa a la mutación.
func TestOptimista_Revertir(t *testing.T) {
	c, m := nuevaMaquina()
	antes := len(c.Lugares)

	tok := m.Aplicar(func(cat *guardado.Catalogo) {
		cat.EliminarLugar(1)
	})
	assert.Nil(t, c.BuscarLugar(1))

	m.Revertir(tok)
	assert.NotNil(t, c.BuscarLugar(1), "el lugar vuelve tras revertir")
	assert.Len(t, c.Lugares, antes)
	// Las asignaciones arrastradas por la cascada también vuelven
	assert.Len(t, c.BuscarProducto(100).Asignaciones, 2)
}

// Confirmar o revertir un token ya consumido no hace nada.
func TestOptimista_TokenConsumido(t *testing.T) {
	c, m := nuevaMaquina()

	tok := m.Aplicar(func(cat *guardado.Catalogo) {
		cat.AgregarProducto(entity.Producto{ID: 500, Nombre: "Nuevo"})
	})
	m.Confirmar(tok, nil)
	m.Revertir(tok)
	assert.NotNil(t, c.BuscarProducto(500), "revertir tras confirmar no deshace nada")
}
