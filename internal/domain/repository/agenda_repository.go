package repository

import "github.com/albertmmateo-blip/entretelas-api/internal/domain/entity"

// NotaRepository define el puerto de persistencia de las notas de la tienda.
type NotaRepository interface {
	Create(n *entity.Nota) error
	GetByID(id int64) (*entity.Nota, error)
	List() ([]*entity.Nota, error)
	Update(n *entity.Nota) error
	Delete(id int64) error
}

// AvisoRepository define el puerto de persistencia de los avisos de llamada.
type AvisoRepository interface {
	Create(a *entity.Aviso) error
	GetByID(id int64) (*entity.Aviso, error)
	List(soloPendientes bool) ([]*entity.Aviso, error)
	Update(a *entity.Aviso) error
	SetPendiente(id int64, pendiente bool) error
	Delete(id int64) error
}

// PedidoRepository define el puerto de persistencia de los pedidos a
// proveedor.
type PedidoRepository interface {
	Create(p *entity.Pedido) error
	GetByID(id int64) (*entity.Pedido, error)
	List(estado string) ([]*entity.Pedido, error)
	Update(p *entity.Pedido) error
	Delete(id int64) error
}
