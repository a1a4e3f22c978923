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
// Repositorios falsos
// ──────────────────────────────────────────────────────────────────────────────

type entidadRepoFake struct {
	seq   int64
	items []*entity.Entidad
}

var _ repository.EntidadRepository = (*entidadRepoFake)(nil)

func (f *entidadRepoFake) Create(e *entity.Entidad) error {
	f.seq++
	e.ID = f.seq
	copia := *e
	f.items = append(f.items, &copia)
	return nil
}

func (f *entidadRepoFake) GetByID(id int64) (*entity.Entidad, error) {
	for _, e := range f.items {
		if e.ID == id {
			copia := *e
			return &copia, nil
		}
	}
	return nil, nil
}

func (f *entidadRepoFake) List(string) ([]*entity.Entidad, error) { return nil, nil }
func (f *entidadRepoFake) Update(*entity.Entidad) error           { return nil }
func (f *entidadRepoFake) Delete(int64) error                     { return nil }

type facturaRepoFake struct {
	seq   int64
	items []*entity.FacturaPDF
}

var _ repository.FacturaRepository = (*facturaRepoFake)(nil)

func (f *facturaRepoFake) Upload(fac *entity.FacturaPDF) error {
	f.seq++
	fac.ID = f.seq
	copia := *fac
	f.items = append(f.items, &copia)
	return nil
}

func (f *facturaRepoFake) GetAllForEntidad(entidadID int64, tipo string) ([]*entity.FacturaPDF, error) {
	var out []*entity.FacturaPDF
	for _, fac := range f.items {
		if fac.EntidadID != entidadID {
			continue
		}
		if tipo != "" && fac.Tipo != tipo {
			continue
		}
		copia := *fac
		out = append(out, &copia)
	}
	return out, nil
}

func (f *facturaRepoFake) ListByTipoYAnio(tipo string, anio int) ([]*entity.FacturaPDF, error) {
	prefijo := fmt.Sprintf("%04d-", anio)
	var out []*entity.FacturaPDF
	for _, fac := range f.items {
		if fac.Tipo != tipo {
			continue
		}
		if len(fac.Fecha) < 5 || fac.Fecha[:5] != prefijo {
			continue
		}
		copia := *fac
		out = append(out, &copia)
	}
	return out, nil
}

func (f *facturaRepoFake) GetByID(id int64) (*entity.FacturaPDF, error) {
	for _, fac := range f.items {
		if fac.ID == id {
			copia := *fac
			return &copia, nil
		}
	}
	return nil, nil
}

func (f *facturaRepoFake) GetDocumento(id int64) (string, []byte, error) {
	for _, fac := range f.items {
		if fac.ID == id {
			return fac.NombreArchivo, fac.Documento, nil
		}
	}
	return "", nil, domain.ErrNotFound
}

func (f *facturaRepoFake) UpdateMetadata(id int64, m repository.MetadatosFactura) error {
	for _, fac := range f.items {
		if fac.ID != id {
			continue
		}
		if m.Fecha != nil {
			fac.Fecha = *m.Fecha
		}
		if m.Importe != nil {
			fac.Importe = *m.Importe
		}
		if m.ImporteIVARE != nil {
			fac.ImporteIVARE = *m.ImporteIVARE
		}
		if m.Vencimiento != nil {
			fac.Vencimiento = *m.Vencimiento
		}
		if m.Pagada != nil {
			fac.Pagada = *m.Pagada
		}
		return nil
	}
	return domain.ErrNotFound
}

func (f *facturaRepoFake) Delete(id int64) error {
	for i, fac := range f.items {
		if fac.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func nuevoFacturaUC(t *testing.T) (*usecase.FacturaUseCase, *entidadRepoFake) {
	t.Helper()
	entidades := &entidadRepoFake{}
	uc := usecase.NewFacturaUseCase(&facturaRepoFake{}, entidades, finanzas.TarifasPorDefecto(), generadorFake{})
	return uc, entidades
}

func altaProveedor(t *testing.T, entidades *entidadRepoFake) int64 {
	t.Helper()
	e := &entity.Entidad{Nombre: "Telas Paredes", Tipo: entity.EntidadProveedor}
	require.NoError(t, entidades.Create(e))
	return e.ID
}

func archivar(t *testing.T, uc *usecase.FacturaUseCase, in dto.UploadFacturaRequest) dto.FacturaResponse {
	t.Helper()
	f, err := uc.Upload(in, "factura.pdf", []byte("%PDF-falso"))
	require.NoError(t, err)
	return *f
}

// ──────────────────────────────────────────────────────────────────────────────
// Subida y metadatos
// ──────────────────────────────────────────────────────────────────────────────

func TestUploadRechazaTipoDesconocido(t *testing.T) {
	uc, entidades := nuevoFacturaUC(t)
	id := altaProveedor(t, entidades)

	_, err := uc.Upload(dto.UploadFacturaRequest{EntidadID: id, Tipo: "nominas"}, "f.pdf", []byte("x"))
	assert.ErrorIs(t, err, domain.ErrTipoFactura)
}

func TestUploadRechazaEntidadInexistente(t *testing.T) {
	uc, _ := nuevoFacturaUC(t)

	_, err := uc.Upload(dto.UploadFacturaRequest{EntidadID: 99, Tipo: finanzas.TipoCompra}, "f.pdf", []byte("x"))
	assert.ErrorIs(t, err, domain.ErrReferenciaRota)
}

func TestUploadRechazaDocumentoVacio(t *testing.T) {
	uc, entidades := nuevoFacturaUC(t)
	id := altaProveedor(t, entidades)

	_, err := uc.Upload(dto.UploadFacturaRequest{EntidadID: id, Tipo: finanzas.TipoCompra}, "f.pdf", nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUploadInterpretaImportesDelFormulario(t *testing.T) {
	uc, entidades := nuevoFacturaUC(t)
	id := altaProveedor(t, entidades)

	f := archivar(t, uc, dto.UploadFacturaRequest{
		EntidadID: id,
		Tipo:      finanzas.TipoCompra,
		Fecha:     "2025-02-14",
		Importe:   "1.234,50 €",
	})

	assert.NotEmpty(t, f.Referencia, "cada factura archivada recibe una referencia")
	require.NotNil(t, f.Importe)
	assert.Equal(t, "1234.5", f.Importe.String())
	assert.Equal(t, "1.234,50 €", f.ImporteFormateado)
	assert.Nil(t, f.ImporteIVARE, "un campo vacío queda a nulo")
	assert.False(t, f.Pagada, "una factura archivada nace sin pagar")
}

func TestUploadImporteIlegibleQuedaNulo(t *testing.T) {
	uc, entidades := nuevoFacturaUC(t)
	id := altaProveedor(t, entidades)

	f := archivar(t, uc, dto.UploadFacturaRequest{
		EntidadID: id,
		Tipo:      finanzas.TipoCompra,
		Importe:   "ver albarán",
	})
	assert.Nil(t, f.Importe)
	assert.Empty(t, f.ImporteFormateado)
}

func TestUpdateMetadataVaciaUnImporte(t *testing.T) {
	uc, entidades := nuevoFacturaUC(t)
	id := altaProveedor(t, entidades)
	f := archivar(t, uc, dto.UploadFacturaRequest{
		EntidadID: id,
		Tipo:      finanzas.TipoCompra,
		Importe:   "100",
	})
	require.NotNil(t, f.Importe)

	got, err := uc.UpdateMetadata(f.ID, dto.UpdateFacturaRequest{Importe: strPtr("")})
	require.NoError(t, err)
	assert.Nil(t, got.Importe)
}

func TestUpdateMetadataMarcaPagada(t *testing.T) {
	uc, entidades := nuevoFacturaUC(t)
	id := altaProveedor(t, entidades)
	f := archivar(t, uc, dto.UploadFacturaRequest{EntidadID: id, Tipo: finanzas.TipoVenta})

	pagada := true
	got, err := uc.UpdateMetadata(f.ID, dto.UpdateFacturaRequest{Pagada: &pagada})
	require.NoError(t, err)
	assert.True(t, got.Pagada)
}

func TestUpdateMetadataFacturaInexistente(t *testing.T) {
	uc, _ := nuevoFacturaUC(t)

	got, err := uc.UpdateMetadata(99, dto.UpdateFacturaRequest{})
	require.NoError(t, err)
	assert.Nil(t, got)
}

// ──────────────────────────────────────────────────────────────────────────────
// Resumen trimestral
// ──────────────────────────────────────────────────────────────────────────────

func TestResumenTrimestralAplicaIVADeVenta(t *testing.T) {
	uc, entidades := nuevoFacturaUC(t)
	id := altaProveedor(t, entidades)
	archivar(t, uc, dto.UploadFacturaRequest{
		EntidadID: id,
		Tipo:      finanzas.TipoVenta,
		Fecha:     "2025-01-15",
		Importe:   "100",
	})

	res, err := uc.ResumenTrimestral(finanzas.TipoVenta, 2025)
	require.NoError(t, err)
	assert.Equal(t, "100", res.TotalAnual.Importe.String())
	assert.Equal(t, "121", res.TotalAnual.ImporteConIVA.String())
	assert.Equal(t, "100", res.Trimestres[0].Total.Importe.String())
	assert.True(t, res.Trimestres[1].Total.Importe.IsZero())
}

func TestResumenTrimestralTipoDesconocido(t *testing.T) {
	uc, _ := nuevoFacturaUC(t)

	_, err := uc.ResumenTrimestral("nominas", 2025)
	assert.ErrorIs(t, err, domain.ErrTipoFactura)
}

func TestResumenTrimestralPDFNombre(t *testing.T) {
	uc, _ := nuevoFacturaUC(t)

	pdfBytes, nombre, err := uc.ResumenTrimestralPDF(context.Background(), finanzas.TipoCompra, 2025)
	require.NoError(t, err)
	assert.NotEmpty(t, pdfBytes)
	assert.Equal(t, "resumen-compra-2025.pdf", nombre)
}
