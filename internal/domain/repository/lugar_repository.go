package repository

import "github.com/albertmmateo-blip/entretelas-api/internal/domain/entity"

// LugarRepository define el puerto de persistencia de lugares y sus
// compartimentos.
//
// Delete debe dejar el almacén sin referencias colgantes: borra los
// compartimentos del lugar, elimina las asignaciones que apuntaban a él y
// anula lugar y compartimento en los artículos afectados. DeleteCompartimento
// anula solo compartimento_id en asignaciones y artículos, conservando el
// lugar. Ambos corren dentro de una transacción.
type LugarRepository interface {
	Create(l *entity.Lugar) error
	List() ([]*entity.Lugar, error)
	Update(l *entity.Lugar) error
	Delete(id int64) error

	CreateCompartimento(c *entity.Compartimento) error
	UpdateCompartimento(c *entity.Compartimento) error
	DeleteCompartimento(id int64) error
}
