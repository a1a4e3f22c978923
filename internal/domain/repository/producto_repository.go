package repository

import "github.com/albertmmateo-blip/entretelas-api/internal/domain/entity"

// ProductoRepository define el puerto de persistencia de productos con sus
// asignaciones y artículos embebidos. List devuelve los nombres de lugar y
// compartimento ya desnormalizados para la vista.
type ProductoRepository interface {
	Create(p *entity.Producto) error
	GetByID(id int64) (*entity.Producto, error)
	List() ([]*entity.Producto, error)
	Update(p *entity.Producto) error
	Delete(id int64) error

	CreateAsignacion(a *entity.Asignacion) error
	UpdateAsignacion(a *entity.Asignacion) error
	DeleteAsignacion(id int64) error

	CreateArticulo(a *entity.Articulo) error
	UpdateArticulo(a *entity.Articulo) error
	DeleteArticulo(id int64) error
}
