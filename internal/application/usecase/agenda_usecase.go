package usecase

import (
	"strings"
	"time"

	"github.com/albertmmateo-blip/entretelas-api/internal/application/dto"
	"github.com/albertmmateo-blip/entretelas-api/internal/domain"
	"github.com/albertmmateo-blip/entretelas-api/internal/domain/entity"
	"github.com/albertmmateo-blip/entretelas-api/internal/domain/repository"
)

// NotaUseCase casos de uso de las notas de la tienda.
type NotaUseCase struct {
	repo repository.NotaRepository
}

// NewNotaUseCase construye el caso de uso.
func NewNotaUseCase(repo repository.NotaRepository) *NotaUseCase {
	return &NotaUseCase{repo: repo}
}

// Create crea una nota.
func (uc *NotaUseCase) Create(in dto.CreateNotaRequest) (*dto.NotaResponse, error) {
	in.Titulo = strings.TrimSpace(in.Titulo)
	if in.Titulo == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	n := &entity.Nota{Titulo: in.Titulo, Contenido: in.Contenido, CreatedAt: now, UpdatedAt: now}
	if err := uc.repo.Create(n); err != nil {
		return nil, err
	}
	return toNotaResponse(n), nil
}

// GetByID obtiene una nota por ID.
func (uc *NotaUseCase) GetByID(id int64) (*dto.NotaResponse, error) {
	n, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, nil
	}
	return toNotaResponse(n), nil
}

// List lista las notas por última edición.
func (uc *NotaUseCase) List() (*dto.NotaListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := &dto.NotaListResponse{Items: make([]dto.NotaResponse, 0, len(list))}
	for _, n := range list {
		out.Items = append(out.Items, *toNotaResponse(n))
	}
	return out, nil
}

// Update edita una nota.
func (uc *NotaUseCase) Update(id int64, in dto.UpdateNotaRequest) (*dto.NotaResponse, error) {
	n, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, nil
	}
	if in.Titulo != nil {
		titulo := strings.TrimSpace(*in.Titulo)
		if titulo == "" {
			return nil, domain.ErrInvalidInput
		}
		n.Titulo = titulo
	}
	if in.Contenido != nil {
		n.Contenido = *in.Contenido
	}
	n.UpdatedAt = time.Now()
	if err := uc.repo.Update(n); err != nil {
		return nil, err
	}
	return toNotaResponse(n), nil
}

// Delete elimina una nota.
func (uc *NotaUseCase) Delete(id int64) error {
	return uc.repo.Delete(id)
}

func toNotaResponse(n *entity.Nota) *dto.NotaResponse {
	return &dto.NotaResponse{
		ID:        n.ID,
		Titulo:    n.Titulo,
		Contenido: n.Contenido,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

// AvisoUseCase casos de uso de los avisos de llamada.
type AvisoUseCase struct {
	repo repository.AvisoRepository
}

// NewAvisoUseCase construye el caso de uso.
func NewAvisoUseCase(repo repository.AvisoRepository) *AvisoUseCase {
	return &AvisoUseCase{repo: repo}
}

// Create apunta un aviso; nace pendiente.
func (uc *AvisoUseCase) Create(in dto.CreateAvisoRequest) (*dto.AvisoResponse, error) {
	in.Nombre = strings.TrimSpace(in.Nombre)
	if in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	a := &entity.Aviso{
		Nombre:    in.Nombre,
		Telefono:  in.Telefono,
		Motivo:    in.Motivo,
		Pendiente: true,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(a); err != nil {
		return nil, err
	}
	return toAvisoResponse(a), nil
}

// List lista avisos; soloPendientes filtra los ya resueltos.
func (uc *AvisoUseCase) List(soloPendientes bool) (*dto.AvisoListResponse, error) {
	list, err := uc.repo.List(soloPendientes)
	if err != nil {
		return nil, err
	}
	out := &dto.AvisoListResponse{Items: make([]dto.AvisoResponse, 0, len(list))}
	for _, a := range list {
		out.Items = append(out.Items, *toAvisoResponse(a))
	}
	return out, nil
}

// Update corrige los datos de contacto o el motivo de un aviso.
func (uc *AvisoUseCase) Update(id int64, in dto.UpdateAvisoRequest) (*dto.AvisoResponse, error) {
	a, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, nil
	}
	if in.Nombre != nil {
		nombre := strings.TrimSpace(*in.Nombre)
		if nombre == "" {
			return nil, domain.ErrInvalidInput
		}
		a.Nombre = nombre
	}
	if in.Telefono != nil {
		a.Telefono = *in.Telefono
	}
	if in.Motivo != nil {
		a.Motivo = *in.Motivo
	}
	if err := uc.repo.Update(a); err != nil {
		return nil, err
	}
	return toAvisoResponse(a), nil
}

// SetPendiente marca o desmarca un aviso.
func (uc *AvisoUseCase) SetPendiente(id int64, pendiente bool) error {
	return uc.repo.SetPendiente(id, pendiente)
}

// Delete elimina un aviso.
func (uc *AvisoUseCase) Delete(id int64) error {
	return uc.repo.Delete(id)
}

func toAvisoResponse(a *entity.Aviso) *dto.AvisoResponse {
	return &dto.AvisoResponse{
		ID:        a.ID,
		Nombre:    a.Nombre,
		Telefono:  a.Telefono,
		Motivo:    a.Motivo,
		Pendiente: a.Pendiente,
		CreatedAt: a.CreatedAt,
	}
}

// PedidoUseCase casos de uso de los pedidos a proveedor.
type PedidoUseCase struct {
	repo repository.PedidoRepository
}

// NewPedidoUseCase construye el caso de uso.
func NewPedidoUseCase(repo repository.PedidoRepository) *PedidoUseCase {
	return &PedidoUseCase{repo: repo}
}

func estadoPedidoValido(estado string) bool {
	switch estado {
	case entity.PedidoPendiente, entity.PedidoRecibido, entity.PedidoCancelado:
		return true
	}
	return false
}

// Create registra un pedido; nace pendiente. Sin fecha se usa la del día.
func (uc *PedidoUseCase) Create(in dto.CreatePedidoRequest) (*dto.PedidoResponse, error) {
	in.Proveedor = strings.TrimSpace(in.Proveedor)
	if in.Proveedor == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	fecha := in.Fecha
	if fecha == "" {
		fecha = now.Format("2006-01-02")
	}
	p := &entity.Pedido{
		Proveedor:   in.Proveedor,
		Descripcion: in.Descripcion,
		Estado:      entity.PedidoPendiente,
		Fecha:       fecha,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(p); err != nil {
		return nil, err
	}
	return toPedidoResponse(p), nil
}

// List lista pedidos; estado vacío lista todos.
func (uc *PedidoUseCase) List(estado string) (*dto.PedidoListResponse, error) {
	if estado != "" && !estadoPedidoValido(estado) {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.repo.List(estado)
	if err != nil {
		return nil, err
	}
	out := &dto.PedidoListResponse{Items: make([]dto.PedidoResponse, 0, len(list))}
	for _, p := range list {
		out.Items = append(out.Items, *toPedidoResponse(p))
	}
	return out, nil
}

// Update edita un pedido o cambia su estado.
func (uc *PedidoUseCase) Update(id int64, in dto.UpdatePedidoRequest) (*dto.PedidoResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	if in.Proveedor != nil {
		proveedor := strings.TrimSpace(*in.Proveedor)
		if proveedor == "" {
			return nil, domain.ErrInvalidInput
		}
		p.Proveedor = proveedor
	}
	if in.Descripcion != nil {
		p.Descripcion = *in.Descripcion
	}
	if in.Estado != nil {
		if !estadoPedidoValido(*in.Estado) {
			return nil, domain.ErrInvalidInput
		}
		p.Estado = *in.Estado
	}
	if in.Fecha != nil {
		p.Fecha = *in.Fecha
	}
	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(p); err != nil {
		return nil, err
	}
	return toPedidoResponse(p), nil
}

// Delete elimina un pedido.
func (uc *PedidoUseCase) Delete(id int64) error {
	return uc.repo.Delete(id)
}

func toPedidoResponse(p *entity.Pedido) *dto.PedidoResponse {
	return &dto.PedidoResponse{
		ID:          p.ID,
		Proveedor:   p.Proveedor,
		Descripcion: p.Descripcion,
		Estado:      p.Estado,
		Fecha:       p.Fecha,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
