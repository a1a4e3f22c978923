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

var _ repository.EntidadRepository = (*EntidadRepo)(nil)

// EntidadRepo implementación del puerto EntidadRepository sobre PostgreSQL.
type EntidadRepo struct {
	pool *pgxpool.Pool
}

// NewEntidadRepository construye el adaptador de persistencia para entidades.
func NewEntidadRepository(pool *pgxpool.Pool) *EntidadRepo {
	return &EntidadRepo{pool: pool}
}

// Create persiste una entidad nueva y fija su id.
func (r *EntidadRepo) Create(e *entity.Entidad) error {
	query := `
		INSERT INTO entidades (nombre, tipo, telefono, notas, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.pool.QueryRow(context.Background(), query,
		e.Nombre, e.Tipo, e.Telefono, e.Notas, e.CreatedAt, e.UpdatedAt,
	).Scan(&e.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert entidad: %w", err)
	}
	return nil
}

// GetByID obtiene una entidad por id.
func (r *EntidadRepo) GetByID(id int64) (*entity.Entidad, error) {
	query := `
		SELECT id, nombre, tipo, telefono, notas, created_at, updated_at
		FROM entidades WHERE id = $1`
	var e entity.Entidad
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&e.ID, &e.Nombre, &e.Tipo, &e.Telefono, &e.Notas, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get entidad: %w", err)
	}
	return &e, nil
}

// List lista entidades, opcionalmente filtradas por tipo.
func (r *EntidadRepo) List(tipo string) ([]*entity.Entidad, error) {
	query := `
		SELECT id, nombre, tipo, telefono, notas, created_at, updated_at
		FROM entidades
		WHERE ($1 = '' OR tipo = $1)
		ORDER BY nombre`
	rows, err := r.pool.Query(context.Background(), query, tipo)
	if err != nil {
		return nil, fmt.Errorf("list entidades: %w", err)
	}
	defer rows.Close()
	var list []*entity.Entidad
	for rows.Next() {
		var e entity.Entidad
		if err := rows.Scan(&e.ID, &e.Nombre, &e.Tipo, &e.Telefono, &e.Notas, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan entidad: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Update actualiza una entidad existente.
func (r *EntidadRepo) Update(e *entity.Entidad) error {
	query := `
		UPDATE entidades SET nombre = $2, tipo = $3, telefono = $4, notas = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		e.ID, e.Nombre, e.Tipo, e.Telefono, e.Notas, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update entidad: %w", err)
	}
	return nil
}

// Delete elimina una entidad; sus facturas archivadas caen por cascada de la
// clave foránea.
func (r *EntidadRepo) Delete(id int64) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM entidades WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete entidad: %w", err)
	}
	return nil
}
