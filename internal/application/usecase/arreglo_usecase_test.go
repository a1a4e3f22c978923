package usecase_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albertmmateo-blip/entretelas-api/internal/application/dto"
	"github.com/albertmmateo-blip/entretelas-api/internal/application/usecase"
	"github.com/albertmmateo-blip/entretelas-api/internal/domain"
	"github.com/albertmmateo-blip/entretelas-api/internal/domain/entity"
	"github.com/albertmmateo-blip/entretelas-api/internal/domain/finanzas"
	"github.com/albertmmateo-blip/entretelas-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorio y generador falsos
// ──────────────────────────────────────────────────────────────────────────────

type arregloRepoFake struct {
	seq   int64
	items []*entity.Arreglo
}

var _ repository.ArregloRepository = (*arregloRepoFake)(nil)

func (f *arregloRepoFake) Create(a *entity.Arreglo) error {
	f.seq++
	a.ID = f.seq
	copia := *a
	f.items = append(f.items, &copia)
	return nil
}

func (f *arregloRepoFake) GetByID(id int64) (*entity.Arreglo, error) {
	for _, a := range f.items {
		if a.ID == id {
			copia := *a
			return &copia, nil
		}
	}
	return nil, nil
}

func (f *arregloRepoFake) List(carpeta string, anio int) ([]*entity.Arreglo, error) {
	prefijo := ""
	if anio != 0 {
		prefijo = fmt.Sprintf("%04d-", anio)
	}
	var out []*entity.Arreglo
	for _, a := range f.items {
		if carpeta != "" && a.Carpeta != carpeta {
			continue
		}
		if prefijo != "" && (len(a.Fecha) < 5 || a.Fecha[:5] != prefijo) {
			continue
		}
		copia := *a
		out = append(out, &copia)
	}
	return out, nil
}

func (f *arregloRepoFake) Update(a *entity.Arreglo) error {
	for i, actual := range f.items {
		if actual.ID == a.ID {
			copia := *a
			f.items[i] = &copia
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *arregloRepoFake) Delete(id int64) error {
	for i, a := range f.items {
		if a.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// generadorFake devuelve un documento fijo para no depender del motor de PDF.
type generadorFake struct{}

var _ usecase.ResumenPDFGenerator = (*generadorFake)(nil)

func (generadorFake) GenerarResumenFacturas(context.Context, string, int, finanzas.ResumenAnual) ([]byte, error) {
	return []byte("%PDF-falso"), nil
}

func (generadorFake) GenerarResumenArreglos(context.Context, string, int, finanzas.ResumenAnualArreglos) ([]byte, error) {
	return []byte("%PDF-falso"), nil
}

func nuevoArregloUC(t *testing.T) (*usecase.ArregloUseCase, *arregloRepoFake) {
	t.Helper()
	repo := &arregloRepoFake{}
	return usecase.NewArregloUseCase(repo, finanzas.TarifasPorDefecto(), generadorFake{}), repo
}

func apuntarVale(t *testing.T, uc *usecase.ArregloUseCase, carpeta, fecha, importe string) dto.ArregloResponse {
	t.Helper()
	a, err := uc.Create(dto.CreateArregloRequest{Carpeta: carpeta, Fecha: fecha, Importe: importe})
	require.NoError(t, err)
	return *a
}

// ──────────────────────────────────────────────────────────────────────────────
// Altas
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateArregloNormalizaCarpeta(t *testing.T) {
	uc, _ := nuevoArregloUC(t)

	a := apuntarVale(t, uc, "entretelas", "2025-03-10", "12,50 €")
	assert.Equal(t, finanzas.CarpetaEntretelas, a.Carpeta)
	assert.Equal(t, "12.5", a.Importe.String())
	assert.Equal(t, "12,50 €", a.ImporteFormateado)
}

func TestCreateArregloCarpetaDesconocida(t *testing.T) {
	uc, _ := nuevoArregloUC(t)

	_, err := uc.Create(dto.CreateArregloRequest{Carpeta: "Pepa", Fecha: "2025-03-10"})
	assert.ErrorIs(t, err, domain.ErrCarpetaDesconocida)
}

func TestCreateArregloImporteIlegible(t *testing.T) {
	uc, _ := nuevoArregloUC(t)

	// el texto que no parece un importe se apunta a cero, no se rechaza
	a := apuntarVale(t, uc, "Isa", "2025-03-10", "pendiente de cobrar")
	assert.True(t, a.Importe.IsZero())
}

func TestListCarpetaDesconocida(t *testing.T) {
	uc, _ := nuevoArregloUC(t)

	_, err := uc.List("Pepa", 2025)
	assert.ErrorIs(t, err, domain.ErrCarpetaDesconocida)
}

// ──────────────────────────────────────────────────────────────────────────────
// Resúmenes y reparto
// ──────────────────────────────────────────────────────────────────────────────

func TestResumenMensualSoloFechasEstrictas(t *testing.T) {
	uc, _ := nuevoArregloUC(t)
	apuntarVale(t, uc, "Entretelas", "2025-03-10", "10")
	apuntarVale(t, uc, "Isa", "2025-03-22", "5")
	apuntarVale(t, uc, "Loli", "10/03/2025", "100") // fecha no canónica, fuera del mensual

	res, err := uc.ResumenMensual("", 0)
	require.NoError(t, err)
	require.Len(t, res.Meses, 1)

	mes := res.Meses[0]
	assert.Equal(t, "2025-03", mes.ClaveMes)
	assert.Equal(t, 2, mes.Cantidad)
	assert.Equal(t, "15", mes.TotalImporte.String())
	assert.Equal(t, "10", mes.Entretelas.String())
	assert.Equal(t, "5", mes.Isa.String())
	assert.True(t, mes.Loli.IsZero())
}

func TestResumenMensualOrdenDescendente(t *testing.T) {
	uc, _ := nuevoArregloUC(t)
	apuntarVale(t, uc, "Entretelas", "2025-01-02", "10")
	apuntarVale(t, uc, "Entretelas", "2025-04-09", "20")

	res, err := uc.ResumenMensual("Entretelas", 2025)
	require.NoError(t, err)
	require.Len(t, res.Meses, 2)
	assert.Equal(t, "2025-04", res.Meses[0].ClaveMes)
	assert.Equal(t, "2025-01", res.Meses[1].ClaveMes)
}

func TestRepartoSesentaYCincoTreintaYCinco(t *testing.T) {
	uc, _ := nuevoArregloUC(t)
	apuntarVale(t, uc, "Entretelas", "2025-03-10", "80")
	apuntarVale(t, uc, "Entretelas", "2025-05-02", "20")
	apuntarVale(t, uc, "Isa", "2025-03-10", "999") // otra carpeta, no entra

	res, err := uc.Reparto("entretelas", 2025)
	require.NoError(t, err)
	assert.Equal(t, finanzas.CarpetaEntretelas, res.Carpeta)
	assert.Equal(t, "100", res.Reparto.Total.String())
	assert.Equal(t, "65", res.Reparto.ParteCarpeta.String())
	assert.Equal(t, "35", res.Reparto.ParteTienda.String())
}

func TestRepartoCarpetaObligatoria(t *testing.T) {
	uc, _ := nuevoArregloUC(t)

	_, err := uc.Reparto("", 2025)
	assert.ErrorIs(t, err, domain.ErrCarpetaDesconocida)
}

func TestResumenTrimestralPDFNombreDeArchivo(t *testing.T) {
	uc, _ := nuevoArregloUC(t)
	apuntarVale(t, uc, "Entretelas", "2025-03-10", "10")

	pdfBytes, nombre, err := uc.ResumenTrimestralPDF(context.Background(), 2025)
	require.NoError(t, err)
	assert.NotEmpty(t, pdfBytes)
	assert.Equal(t, "resumen-arreglos-2025.pdf", nombre)
}
