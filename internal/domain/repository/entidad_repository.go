package repository

import "github.com/albertmmateo-blip/entretelas-api/internal/domain/entity"

// EntidadRepository define el puerto de persistencia para proveedores y
// clientes (DIP).
type EntidadRepository interface {
	Create(e *entity.Entidad) error
	GetByID(id int64) (*entity.Entidad, error)
	List(tipo string) ([]*entity.Entidad, error)
	Update(e *entity.Entidad) error
	Delete(id int64) error
}
