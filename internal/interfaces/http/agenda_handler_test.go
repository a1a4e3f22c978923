package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albertmmateo-blip/entretelas-api/internal/application/dto"
	"github.com/albertmmateo-blip/entretelas-api/internal/application/usecase"
	"github.com/albertmmateo-blip/entretelas-api/internal/domain/entity"
	"github.com/albertmmateo-blip/entretelas-api/internal/domain/repository"
	apphttp "github.com/albertmmateo-blip/entretelas-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// notaRepoFake guarda las notas en memoria, ordenadas por última edición como
// hace la consulta real.
type notaRepoFake struct {
	seq   int64
	items []*entity.Nota
}

var _ repository.NotaRepository = (*notaRepoFake)(nil)

func (f *notaRepoFake) Create(n *entity.Nota) error {
	f.seq++
	n.ID = f.seq
	copia := *n
	f.items = append(f.items, &copia)
	return nil
}

func (f *notaRepoFake) GetByID(id int64) (*entity.Nota, error) {
	for _, n := range f.items {
		if n.ID == id {
			copia := *n
			return &copia, nil
		}
	}
	return nil, nil
}

func (f *notaRepoFake) List() ([]*entity.Nota, error) {
	out := make([]*entity.Nota, 0, len(f.items))
	for i := len(f.items) - 1; i >= 0; i-- {
		copia := *f.items[i]
		out = append(out, &copia)
	}
	return out, nil
}

func (f *notaRepoFake) Update(n *entity.Nota) error {
	for i, actual := range f.items {
		if actual.ID == n.ID {
			copia := *n
			f.items[i] = &copia
			return nil
		}
	}
	return nil
}

func (f *notaRepoFake) Delete(id int64) error {
	for i, n := range f.items {
		if n.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return nil
}

// buildNotasApp construye una aplicación Fiber mínima con las rutas de notas
// montadas igual que en el router real.
func buildNotasApp(repo repository.NotaRepository) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})
	h := apphttp.NewNotaHandler(usecase.NewNotaUseCase(repo))
	notas := app.Group("/api/notas")
	notas.Get("/", h.List)
	notas.Post("/", h.Create)
	notas.Get("/:id", h.GetByID)
	notas.Put("/:id", h.Update)
	notas.Delete("/:id", h.Delete)
	return app
}

// doJSON lanza una petición con cuerpo JSON opcional y devuelve la respuesta.
func doJSON(t *testing.T, app *fiber.App, method, target string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeNota(t *testing.T, resp *http.Response) dto.NotaResponse {
	t.Helper()
	defer resp.Body.Close()
	var out dto.NotaResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de las rutas de notas
// ──────────────────────────────────────────────────────────────────────────────

func TestNotasCreateDevuelve201(t *testing.T) {
	app := buildNotasApp(&notaRepoFake{})

	resp := doJSON(t, app, http.MethodPost, "/api/notas/", dto.CreateNotaRequest{
		Titulo:    "Pedir forro azul",
		Contenido: "Llamar antes del viernes",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	nota := decodeNota(t, resp)
	assert.Equal(t, int64(1), nota.ID)
	assert.Equal(t, "Pedir forro azul", nota.Titulo)
	assert.WithinDuration(t, time.Now(), nota.CreatedAt, time.Minute)
}

func TestNotasCreateTituloVacioDevuelve400(t *testing.T) {
	app := buildNotasApp(&notaRepoFake{})

	resp := doJSON(t, app, http.MethodPost, "/api/notas/", dto.CreateNotaRequest{Titulo: "   "})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestNotasGetInexistenteDevuelve404(t *testing.T) {
	app := buildNotasApp(&notaRepoFake{})

	resp := doJSON(t, app, http.MethodGet, "/api/notas/99", nil)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	defer resp.Body.Close()
	var e dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&e))
	assert.Equal(t, "NOT_FOUND", e.Code)
}

func TestNotasIDNoNumericoDevuelve400(t *testing.T) {
	app := buildNotasApp(&notaRepoFake{})

	resp := doJSON(t, app, http.MethodGet, "/api/notas/abc", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestNotasCicloCompleto(t *testing.T) {
	app := buildNotasApp(&notaRepoFake{})

	creada := decodeNota(t, doJSON(t, app, http.MethodPost, "/api/notas/", dto.CreateNotaRequest{Titulo: "Hilos"}))

	nuevoTitulo := "Hilos de seda"
	resp := doJSON(t, app, http.MethodPut, "/api/notas/1", dto.UpdateNotaRequest{Titulo: &nuevoTitulo})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	editada := decodeNota(t, resp)
	assert.Equal(t, creada.ID, editada.ID)
	assert.Equal(t, nuevoTitulo, editada.Titulo)

	resp = doJSON(t, app, http.MethodDelete, "/api/notas/1", nil)
	require.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/notas/1", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestNotasListDevuelveLasMasRecientesPrimero(t *testing.T) {
	app := buildNotasApp(&notaRepoFake{})
	doJSON(t, app, http.MethodPost, "/api/notas/", dto.CreateNotaRequest{Titulo: "Primera"})
	doJSON(t, app, http.MethodPost, "/api/notas/", dto.CreateNotaRequest{Titulo: "Segunda"})

	resp := doJSON(t, app, http.MethodGet, "/api/notas/", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	defer resp.Body.Close()
	var out dto.NotaListResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Len(t, out.Items, 2)
	assert.Equal(t, "Segunda", out.Items[0].Titulo)
	assert.Equal(t, "Primera", out.Items[1].Titulo)
}
