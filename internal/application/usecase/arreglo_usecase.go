package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/albertmmateo-blip/entretelas-api/internal/application/dto"
	"github.com/albertmmateo-blip/entretelas-api/internal/domain"
	"github.com/albertmmateo-blip/entretelas-api/internal/domain/entity"
	"github.com/albertmmateo-blip/entretelas-api/internal/domain/finanzas"
	"github.com/albertmmateo-blip/entretelas-api/internal/domain/repository"
	"github.com/albertmmateo-blip/entretelas-api/pkg/money"
)

// ArregloUseCase casos de uso del libro de arreglos: vales, resúmenes y
// reparto entre carpeta y tienda.
type ArregloUseCase struct {
	repo      repository.ArregloRepository
	tarifas   finanzas.Tarifas
	generator ResumenPDFGenerator
}

// NewArregloUseCase construye el caso de uso.
func NewArregloUseCase(repo repository.ArregloRepository, tarifas finanzas.Tarifas, generator ResumenPDFGenerator) *ArregloUseCase {
	return &ArregloUseCase{repo: repo, tarifas: tarifas, generator: generator}
}

// Create apunta un vale en el libro. La carpeta se normaliza a su forma
// canónica; una carpeta desconocida se rechaza.
func (uc *ArregloUseCase) Create(in dto.CreateArregloRequest) (*dto.ArregloResponse, error) {
	carpeta, ok := finanzas.NormalizarCarpeta(in.Carpeta)
	if !ok {
		return nil, domain.ErrCarpetaDesconocida
	}
	now := time.Now()
	a := &entity.Arreglo{
		Carpeta:   carpeta,
		Fecha:     in.Fecha,
		Numero:    in.Numero,
		Cliente:   in.Cliente,
		Arreglo:   in.Arreglo,
		Importe:   money.Parse(in.Importe),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(a); err != nil {
		return nil, err
	}
	return toArregloResponse(a), nil
}

// GetByID obtiene un vale por ID.
func (uc *ArregloUseCase) GetByID(id int64) (*dto.ArregloResponse, error) {
	a, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, nil
	}
	return toArregloResponse(a), nil
}

// List lista vales. carpeta vacía lista todas; anio 0 lista todos los años.
func (uc *ArregloUseCase) List(carpeta string, anio int) (*dto.ArregloListResponse, error) {
	if carpeta != "" {
		canonica, ok := finanzas.NormalizarCarpeta(carpeta)
		if !ok {
			return nil, domain.ErrCarpetaDesconocida
		}
		carpeta = canonica
	}
	list, err := uc.repo.List(carpeta, anio)
	if err != nil {
		return nil, err
	}
	out := &dto.ArregloListResponse{Items: make([]dto.ArregloResponse, 0, len(list))}
	for _, a := range list {
		out.Items = append(out.Items, *toArregloResponse(a))
	}
	return out, nil
}

// Update corrige un vale.
func (uc *ArregloUseCase) Update(id int64, in dto.UpdateArregloRequest) (*dto.ArregloResponse, error) {
	a, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, nil
	}
	if in.Carpeta != nil {
		carpeta, ok := finanzas.NormalizarCarpeta(*in.Carpeta)
		if !ok {
			return nil, domain.ErrCarpetaDesconocida
		}
		a.Carpeta = carpeta
	}
	if in.Fecha != nil {
		a.Fecha = *in.Fecha
	}
	if in.Numero != nil {
		a.Numero = *in.Numero
	}
	if in.Cliente != nil {
		a.Cliente = *in.Cliente
	}
	if in.Arreglo != nil {
		a.Arreglo = *in.Arreglo
	}
	if in.Importe != nil {
		a.Importe = money.Parse(*in.Importe)
	}
	a.UpdatedAt = time.Now()
	if err := uc.repo.Update(a); err != nil {
		return nil, err
	}
	return toArregloResponse(a), nil
}

// Delete elimina un vale.
func (uc *ArregloUseCase) Delete(id int64) error {
	return uc.repo.Delete(id)
}

// ResumenMensual agrega los vales por mes natural, del más reciente al más
// antiguo. Solo entran las fechas estrictas YYYY-MM-DD.
func (uc *ArregloUseCase) ResumenMensual(carpeta string, anio int) (*dto.ResumenMensualResponse, error) {
	filas, err := uc.filas(carpeta, anio)
	if err != nil {
		return nil, err
	}
	return &dto.ResumenMensualResponse{Meses: finanzas.ResumenMensualArreglos(filas)}, nil
}

// ResumenTrimestral agrega los vales de un ejercicio en los cuatro trimestres
// fijos, desglosados por carpeta.
func (uc *ArregloUseCase) ResumenTrimestral(anio int) (*finanzas.ResumenAnualArreglos, error) {
	filas, err := uc.filas("", anio)
	if err != nil {
		return nil, err
	}
	res := finanzas.ResumenTrimestralArreglos(filas)
	return &res, nil
}

// ResumenTrimestralPDF genera la versión imprimible del resumen de arreglos.
func (uc *ArregloUseCase) ResumenTrimestralPDF(ctx context.Context, anio int) ([]byte, string, error) {
	res, err := uc.ResumenTrimestral(anio)
	if err != nil {
		return nil, "", err
	}
	titulo := fmt.Sprintf("Resumen arreglos %d", anio)
	pdfBytes, err := uc.generator.GenerarResumenArreglos(ctx, titulo, anio, *res)
	if err != nil {
		return nil, "", fmt.Errorf("generar pdf resumen arreglos: %w", err)
	}
	return pdfBytes, fmt.Sprintf("resumen-arreglos-%d.pdf", anio), nil
}

// Reparto calcula la división 65/35 del total de una carpeta en un ejercicio.
func (uc *ArregloUseCase) Reparto(carpeta string, anio int) (*dto.RepartoResponse, error) {
	canonica, ok := finanzas.NormalizarCarpeta(carpeta)
	if !ok {
		return nil, domain.ErrCarpetaDesconocida
	}
	list, err := uc.repo.List(canonica, anio)
	if err != nil {
		return nil, err
	}
	total := decimal.Zero
	for _, a := range list {
		total = total.Add(a.Importe)
	}
	return &dto.RepartoResponse{
		Carpeta: canonica,
		Reparto: finanzas.RepartoArreglos(total, uc.tarifas),
	}, nil
}

func (uc *ArregloUseCase) filas(carpeta string, anio int) ([]finanzas.FilaArreglo, error) {
	if carpeta != "" {
		canonica, ok := finanzas.NormalizarCarpeta(carpeta)
		if !ok {
			return nil, domain.ErrCarpetaDesconocida
		}
		carpeta = canonica
	}
	list, err := uc.repo.List(carpeta, anio)
	if err != nil {
		return nil, err
	}
	filas := make([]finanzas.FilaArreglo, 0, len(list))
	for _, a := range list {
		filas = append(filas, finanzas.FilaArreglo{
			Fecha:   a.Fecha,
			Carpeta: a.Carpeta,
			Importe: a.Importe,
		})
	}
	return filas, nil
}

func toArregloResponse(a *entity.Arreglo) *dto.ArregloResponse {
	return &dto.ArregloResponse{
		ID:                a.ID,
		Carpeta:           a.Carpeta,
		Fecha:             a.Fecha,
		Numero:            a.Numero,
		Cliente:           a.Cliente,
		Arreglo:           a.Arreglo,
		Importe:           a.Importe,
		ImporteFormateado: money.Format(a.Importe),
		CreatedAt:         a.CreatedAt,
		UpdatedAt:         a.UpdatedAt,
	}
}
