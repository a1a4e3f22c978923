package repository

import "github.com/albertmmateo-blip/entretelas-api/internal/domain/entity"

// ArregloRepository define el puerto de persistencia del libro de arreglos.
// carpeta vacía lista todas las carpetas; anio 0 lista todos los años.
type ArregloRepository interface {
	Create(a *entity.Arreglo) error
	GetByID(id int64) (*entity.Arreglo, error)
	List(carpeta string, anio int) ([]*entity.Arreglo, error)
	Update(a *entity.Arreglo) error
	Delete(id int64) error
}
