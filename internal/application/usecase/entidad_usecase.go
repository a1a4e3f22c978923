package usecase

import (
	"strings"
	"time"

	"github.com/albertmmateo-blip/entretelas-api/internal/application/dto"
	"github.com/albertmmateo-blip/entretelas-api/internal/domain"
	"github.com/albertmmateo-blip/entretelas-api/internal/domain/entity"
	"github.com/albertmmateo-blip/entretelas-api/internal/domain/repository"
)

// EntidadUseCase casos de uso de proveedores y clientes.
type EntidadUseCase struct {
	repo repository.EntidadRepository
}

// NewEntidadUseCase construye el caso de uso.
func NewEntidadUseCase(repo repository.EntidadRepository) *EntidadUseCase {
	return &EntidadUseCase{repo: repo}
}

// Create da de alta un proveedor o cliente.
func (uc *EntidadUseCase) Create(in dto.CreateEntidadRequest) (*dto.EntidadResponse, error) {
	in.Nombre = strings.TrimSpace(in.Nombre)
	if in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Tipo != entity.EntidadProveedor && in.Tipo != entity.EntidadCliente {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	e := &entity.Entidad{
		Nombre:    in.Nombre,
		Tipo:      in.Tipo,
		Telefono:  in.Telefono,
		Notas:     in.Notas,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(e); err != nil {
		return nil, err
	}
	return toEntidadResponse(e), nil
}

// GetByID obtiene una entidad por ID.
func (uc *EntidadUseCase) GetByID(id int64) (*dto.EntidadResponse, error) {
	e, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, nil
	}
	return toEntidadResponse(e), nil
}

// List lista entidades; tipo vacío devuelve proveedores y clientes juntos.
func (uc *EntidadUseCase) List(tipo string) (*dto.EntidadListResponse, error) {
	if tipo != "" && tipo != entity.EntidadProveedor && tipo != entity.EntidadCliente {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.repo.List(tipo)
	if err != nil {
		return nil, err
	}
	out := &dto.EntidadListResponse{Items: make([]dto.EntidadResponse, 0, len(list))}
	for _, e := range list {
		out.Items = append(out.Items, *toEntidadResponse(e))
	}
	return out, nil
}

// Update actualiza nombre, teléfono o notas de una entidad.
func (uc *EntidadUseCase) Update(id int64, in dto.UpdateEntidadRequest) (*dto.EntidadResponse, error) {
	e, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, nil
	}
	if in.Nombre != nil {
		nombre := strings.TrimSpace(*in.Nombre)
		if nombre == "" {
			return nil, domain.ErrInvalidInput
		}
		e.Nombre = nombre
	}
	if in.Telefono != nil {
		e.Telefono = *in.Telefono
	}
	if in.Notas != nil {
		e.Notas = *in.Notas
	}
	e.UpdatedAt = time.Now()
	if err := uc.repo.Update(e); err != nil {
		return nil, err
	}
	return toEntidadResponse(e), nil
}

// Delete elimina una entidad y, por cascada en base de datos, sus facturas.
func (uc *EntidadUseCase) Delete(id int64) error {
	return uc.repo.Delete(id)
}

func toEntidadResponse(e *entity.Entidad) *dto.EntidadResponse {
	return &dto.EntidadResponse{
		ID:        e.ID,
		Nombre:    e.Nombre,
		Tipo:      e.Tipo,
		Telefono:  e.Telefono,
		Notas:     e.Notas,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
