package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/albertmmateo-blip/entretelas-api/internal/domain"
	"github.com/albertmmateo-blip/entretelas-api/internal/domain/entity"
	"github.com/albertmmateo-blip/entretelas-api/internal/domain/repository"
)

var _ repository.NotaRepository = (*NotaRepo)(nil)
var _ repository.AvisoRepository = (*AvisoRepo)(nil)
var _ repository.PedidoRepository = (*PedidoRepo)(nil)

// NotaRepo implementación del puerto NotaRepository sobre PostgreSQL.
type NotaRepo struct {
	pool *pgxpool.Pool
}

// NewNotaRepository construye el adaptador de persistencia de notas.
func NewNotaRepository(pool *pgxpool.Pool) *NotaRepo {
	return &NotaRepo{pool: pool}
}

func (r *NotaRepo) Create(n *entity.Nota) error {
	query := `
		INSERT INTO notas (titulo, contenido, created_at, updated_at)
		VALUES ($1, $2, $3, $4) RETURNING id`
	err := r.pool.QueryRow(context.Background(), query,
		n.Titulo, n.Contenido, n.CreatedAt, n.UpdatedAt).Scan(&n.ID)
	if err != nil {
		return fmt.Errorf("insert nota: %w", err)
	}
	return nil
}

func (r *NotaRepo) GetByID(id int64) (*entity.Nota, error) {
	var n entity.Nota
	err := r.pool.QueryRow(context.Background(),
		`SELECT id, titulo, contenido, created_at, updated_at FROM notas WHERE id = $1`, id,
	).Scan(&n.ID, &n.Titulo, &n.Contenido, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get nota: %w", err)
	}
	return &n, nil
}

func (r *NotaRepo) List() ([]*entity.Nota, error) {
	rows, err := r.pool.Query(context.Background(),
		`SELECT id, titulo, contenido, created_at, updated_at FROM notas ORDER BY updated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list notas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Nota
	for rows.Next() {
		var n entity.Nota
		if err := rows.Scan(&n.ID, &n.Titulo, &n.Contenido, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan nota: %w", err)
		}
		list = append(list, &n)
	}
	return list, rows.Err()
}

func (r *NotaRepo) Update(n *entity.Nota) error {
	cmd, err := r.pool.Exec(context.Background(),
		`UPDATE notas SET titulo = $2, contenido = $3, updated_at = $4 WHERE id = $1`,
		n.ID, n.Titulo, n.Contenido, n.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update nota: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *NotaRepo) Delete(id int64) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM notas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete nota: %w", err)
	}
	return nil
}

// AvisoRepo implementación del puerto AvisoRepository sobre PostgreSQL.
type AvisoRepo struct {
	pool *pgxpool.Pool
}

// NewAvisoRepository construye el adaptador de persistencia de avisos.
func NewAvisoRepository(pool *pgxpool.Pool) *AvisoRepo {
	return &AvisoRepo{pool: pool}
}

func (r *AvisoRepo) Create(a *entity.Aviso) error {
	query := `
		INSERT INTO avisos (nombre, telefono, motivo, pendiente, created_at)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err := r.pool.QueryRow(context.Background(), query,
		a.Nombre, a.Telefono, a.Motivo, a.Pendiente, a.CreatedAt).Scan(&a.ID)
	if err != nil {
		return fmt.Errorf("insert aviso: %w", err)
	}
	return nil
}

func (r *AvisoRepo) GetByID(id int64) (*entity.Aviso, error) {
	var a entity.Aviso
	err := r.pool.QueryRow(context.Background(),
		`SELECT id, nombre, telefono, motivo, pendiente, created_at FROM avisos WHERE id = $1`, id,
	).Scan(&a.ID, &a.Nombre, &a.Telefono, &a.Motivo, &a.Pendiente, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get aviso: %w", err)
	}
	return &a, nil
}

func (r *AvisoRepo) List(soloPendientes bool) ([]*entity.Aviso, error) {
	query := `
		SELECT id, nombre, telefono, motivo, pendiente, created_at
		FROM avisos
		WHERE (NOT $1 OR pendiente)
		ORDER BY created_at DESC`
	rows, err := r.pool.Query(context.Background(), query, soloPendientes)
	if err != nil {
		return nil, fmt.Errorf("list avisos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Aviso
	for rows.Next() {
		var a entity.Aviso
		if err := rows.Scan(&a.ID, &a.Nombre, &a.Telefono, &a.Motivo, &a.Pendiente, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan aviso: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

func (r *AvisoRepo) Update(a *entity.Aviso) error {
	cmd, err := r.pool.Exec(context.Background(),
		`UPDATE avisos SET nombre = $2, telefono = $3, motivo = $4, pendiente = $5 WHERE id = $1`,
		a.ID, a.Nombre, a.Telefono, a.Motivo, a.Pendiente)
	if err != nil {
		return fmt.Errorf("update aviso: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SetPendiente marca o desmarca un aviso. Es la operación que el cliente
// aplica de forma optimista y revierte si aquí falla.
func (r *AvisoRepo) SetPendiente(id int64, pendiente bool) error {
	cmd, err := r.pool.Exec(context.Background(),
		`UPDATE avisos SET pendiente = $2 WHERE id = $1`, id, pendiente)
	if err != nil {
		return fmt.Errorf("set pendiente: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *AvisoRepo) Delete(id int64) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM avisos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete aviso: %w", err)
	}
	return nil
}

// PedidoRepo implementación del puerto PedidoRepository sobre PostgreSQL.
type PedidoRepo struct {
	pool *pgxpool.Pool
}

// NewPedidoRepository construye el adaptador de persistencia de pedidos.
func NewPedidoRepository(pool *pgxpool.Pool) *PedidoRepo {
	return &PedidoRepo{pool: pool}
}

func (r *PedidoRepo) Create(p *entity.Pedido) error {
	query := `
		INSERT INTO pedidos (proveedor, descripcion, estado, fecha, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	err := r.pool.QueryRow(context.Background(), query,
		p.Proveedor, p.Descripcion, p.Estado, p.Fecha, p.CreatedAt, p.UpdatedAt).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("insert pedido: %w", err)
	}
	return nil
}

func (r *PedidoRepo) GetByID(id int64) (*entity.Pedido, error) {
	var p entity.Pedido
	err := r.pool.QueryRow(context.Background(),
		`SELECT id, proveedor, descripcion, estado, fecha, created_at, updated_at FROM pedidos WHERE id = $1`, id,
	).Scan(&p.ID, &p.Proveedor, &p.Descripcion, &p.Estado, &p.Fecha, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pedido: %w", err)
	}
	return &p, nil
}

func (r *PedidoRepo) List(estado string) ([]*entity.Pedido, error) {
	query := `
		SELECT id, proveedor, descripcion, estado, fecha, created_at, updated_at
		FROM pedidos
		WHERE ($1 = '' OR estado = $1)
		ORDER BY fecha DESC, id DESC`
	rows, err := r.pool.Query(context.Background(), query, estado)
	if err != nil {
		return nil, fmt.Errorf("list pedidos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Pedido
	for rows.Next() {
		var p entity.Pedido
		if err := rows.Scan(&p.ID, &p.Proveedor, &p.Descripcion, &p.Estado, &p.Fecha, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan pedido: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

func (r *PedidoRepo) Update(p *entity.Pedido) error {
	cmd, err := r.pool.Exec(context.Background(),
		`UPDATE pedidos SET proveedor = $2, descripcion = $3, estado = $4, fecha = $5, updated_at = $6 WHERE id = $1`,
		p.ID, p.Proveedor, p.Descripcion, p.Estado, p.Fecha, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update pedido: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PedidoRepo) Delete(id int64) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM pedidos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete pedido: %w", err)
	}
	return nil
}
