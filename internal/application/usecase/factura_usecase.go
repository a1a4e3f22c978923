package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/albertmmateo-blip/entretelas-api/internal/application/dto"
	"github.com/albertmmateo-blip/entretelas-api/internal/domain"
	"github.com/albertmmateo-blip/entretelas-api/internal/domain/entity"
	"github.com/albertmmateo-blip/entretelas-api/internal/domain/finanzas"
	"github.com/albertmmateo-blip/entretelas-api/internal/domain/repository"
	"github.com/albertmmateo-blip/entretelas-api/pkg/money"
)

// ResumenPDFGenerator genera la versión imprimible de los resúmenes anuales.
type ResumenPDFGenerator interface {
	GenerarResumenFacturas(ctx context.Context, titulo string, anio int, res finanzas.ResumenAnual) ([]byte, error)
	GenerarResumenArreglos(ctx context.Context, titulo string, anio int, res finanzas.ResumenAnualArreglos) ([]byte, error)
}

// FacturaUseCase casos de uso del archivador de facturas: subida del
// documento, metadatos, listados y resumen trimestral.
type FacturaUseCase struct {
	repo        repository.FacturaRepository
	entidadRepo repository.EntidadRepository
	tarifas     finanzas.Tarifas
	generator   ResumenPDFGenerator
}

// NewFacturaUseCase construye el caso de uso.
func NewFacturaUseCase(
	repo repository.FacturaRepository,
	entidadRepo repository.EntidadRepository,
	tarifas finanzas.Tarifas,
	generator ResumenPDFGenerator,
) *FacturaUseCase {
	return &FacturaUseCase{
		repo:        repo,
		entidadRepo: entidadRepo,
		tarifas:     tarifas,
		generator:   generator,
	}
}

func tipoFacturaValido(tipo string) bool {
	switch tipo {
	case finanzas.TipoCompra, finanzas.TipoVenta, finanzas.TipoArreglos, finanzas.TipoContabilidad:
		return true
	}
	return false
}

// Upload archiva un documento bajo una entidad. Los importes del formulario
// se interpretan con el parser de importes; un campo vacío queda a nulo.
func (uc *FacturaUseCase) Upload(in dto.UploadFacturaRequest, nombreArchivo string, documento []byte) (*dto.FacturaResponse, error) {
	if !tipoFacturaValido(in.Tipo) {
		return nil, domain.ErrTipoFactura
	}
	if len(documento) == 0 || strings.TrimSpace(nombreArchivo) == "" {
		return nil, domain.ErrInvalidInput
	}
	ent, err := uc.entidadRepo.GetByID(in.EntidadID)
	if err != nil {
		return nil, err
	}
	if ent == nil {
		return nil, domain.ErrReferenciaRota
	}

	f := &entity.FacturaPDF{
		Referencia:    uuid.New().String(),
		EntidadID:     in.EntidadID,
		Tipo:          in.Tipo,
		NombreArchivo: nombreArchivo,
		Fecha:         in.Fecha,
		FechaSubida:   time.Now(),
		Importe:       nullDecimalDeTexto(in.Importe),
		ImporteIVARE:  nullDecimalDeTexto(in.ImporteIVARE),
		Vencimiento:   in.Vencimiento,
		Documento:     documento,
	}
	if err := uc.repo.Upload(f); err != nil {
		return nil, err
	}
	return toFacturaResponse(f), nil
}

// GetByID obtiene los metadatos de una factura.
func (uc *FacturaUseCase) GetByID(id int64) (*dto.FacturaResponse, error) {
	f, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, nil
	}
	return toFacturaResponse(f), nil
}

// GetDocumento devuelve el nombre y los bytes del documento archivado.
func (uc *FacturaUseCase) GetDocumento(id int64) (string, []byte, error) {
	return uc.repo.GetDocumento(id)
}

// ListForEntidad lista las facturas de una entidad, opcionalmente por tipo.
func (uc *FacturaUseCase) ListForEntidad(entidadID int64, tipo string) (*dto.FacturaListResponse, error) {
	if tipo != "" && !tipoFacturaValido(tipo) {
		return nil, domain.ErrTipoFactura
	}
	list, err := uc.repo.GetAllForEntidad(entidadID, tipo)
	if err != nil {
		return nil, err
	}
	return toFacturaList(list), nil
}

// ListByTipoYAnio lista las facturas de un tipo cuyo campo fecha cae en el
// ejercicio pedido.
func (uc *FacturaUseCase) ListByTipoYAnio(tipo string, anio int) (*dto.FacturaListResponse, error) {
	if !tipoFacturaValido(tipo) {
		return nil, domain.ErrTipoFactura
	}
	list, err := uc.repo.ListByTipoYAnio(tipo, anio)
	if err != nil {
		return nil, err
	}
	return toFacturaList(list), nil
}

// UpdateMetadata edita los metadatos de una factura ya archivada.
func (uc *FacturaUseCase) UpdateMetadata(id int64, in dto.UpdateFacturaRequest) (*dto.FacturaResponse, error) {
	f, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, nil
	}
	m := repository.MetadatosFactura{
		Fecha:       in.Fecha,
		Vencimiento: in.Vencimiento,
		Pagada:      in.Pagada,
	}
	if in.Importe != nil {
		nd := nullDecimalDeTexto(*in.Importe)
		m.Importe = &nd
	}
	if in.ImporteIVARE != nil {
		nd := nullDecimalDeTexto(*in.ImporteIVARE)
		m.ImporteIVARE = &nd
	}
	if err := uc.repo.UpdateMetadata(id, m); err != nil {
		return nil, err
	}
	return uc.GetByID(id)
}

// Delete elimina una factura con su documento.
func (uc *FacturaUseCase) Delete(id int64) error {
	return uc.repo.Delete(id)
}

// ResumenTrimestral agrega las facturas de un tipo y un ejercicio en totales
// por mes, trimestre y año.
func (uc *FacturaUseCase) ResumenTrimestral(tipo string, anio int) (*finanzas.ResumenAnual, error) {
	if !tipoFacturaValido(tipo) {
		return nil, domain.ErrTipoFactura
	}
	list, err := uc.repo.ListByTipoYAnio(tipo, anio)
	if err != nil {
		return nil, err
	}
	res := finanzas.ResumenTrimestral(filasDeFacturas(list), tipo, uc.tarifas)
	return &res, nil
}

// ResumenTrimestralPDF genera la versión imprimible del resumen.
func (uc *FacturaUseCase) ResumenTrimestralPDF(ctx context.Context, tipo string, anio int) ([]byte, string, error) {
	res, err := uc.ResumenTrimestral(tipo, anio)
	if err != nil {
		return nil, "", err
	}
	titulo := fmt.Sprintf("Resumen %s %d", tipo, anio)
	pdfBytes, err := uc.generator.GenerarResumenFacturas(ctx, titulo, anio, *res)
	if err != nil {
		return nil, "", fmt.Errorf("generar pdf resumen: %w", err)
	}
	nombre := fmt.Sprintf("resumen-%s-%d.pdf", tipo, anio)
	return pdfBytes, nombre, nil
}

func filasDeFacturas(list []*entity.FacturaPDF) []finanzas.FilaFactura {
	filas := make([]finanzas.FilaFactura, 0, len(list))
	for _, f := range list {
		filas = append(filas, finanzas.FilaFactura{
			Fecha:        f.Fecha,
			FechaSubida:  f.FechaSubida.Format("2006-01-02"),
			Tipo:         f.Tipo,
			Importe:      f.Importe,
			ImporteIVARE: f.ImporteIVARE,
		})
	}
	return filas
}

// nullDecimalDeTexto interpreta un importe de formulario: vacío o
// irreconocible queda nulo, no a cero.
func nullDecimalDeTexto(s string) decimal.NullDecimal {
	if strings.TrimSpace(s) == "" {
		return decimal.NullDecimal{}
	}
	d, ok := money.TryParse(s)
	if !ok {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: d, Valid: true}
}

func toFacturaResponse(f *entity.FacturaPDF) *dto.FacturaResponse {
	out := &dto.FacturaResponse{
		ID:            f.ID,
		Referencia:    f.Referencia,
		EntidadID:     f.EntidadID,
		Tipo:          f.Tipo,
		NombreArchivo: f.NombreArchivo,
		Fecha:         f.Fecha,
		FechaSubida:   f.FechaSubida,
		Vencimiento:   f.Vencimiento,
		Pagada:        f.Pagada,
	}
	if f.Importe.Valid {
		d := f.Importe.Decimal
		out.Importe = &d
		out.ImporteFormateado = money.Format(d)
	}
	if f.ImporteIVARE.Valid {
		d := f.ImporteIVARE.Decimal
		out.ImporteIVARE = &d
	}
	return out
}

func toFacturaList(list []*entity.FacturaPDF) *dto.FacturaListResponse {
	out := &dto.FacturaListResponse{Items: make([]dto.FacturaResponse, 0, len(list))}
	for _, f := range list {
		out.Items = append(out.Items, *toFacturaResponse(f))
	}
	return out
}
