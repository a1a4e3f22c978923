package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/albertmmateo-blip/entretelas-api/internal/domain"
	"github.com/albertmmateo-blip/entretelas-api/internal/domain/entity"
	"github.com/albertmmateo-blip/entretelas-api/internal/domain/repository"
)

var _ repository.LugarRepository = (*LugarRepo)(nil)

// LugarRepo implementación del puerto LugarRepository sobre PostgreSQL.
// Los borrados con cascada corren dentro de una transacción del TxRunner.
type LugarRepo struct {
	pool *pgxpool.Pool
	tx   *TxRunner
}

// NewLugarRepository construye el adaptador de persistencia de lugares.
func NewLugarRepository(pool *pgxpool.Pool, tx *TxRunner) *LugarRepo {
	return &LugarRepo{pool: pool, tx: tx}
}

// Create persiste un lugar nuevo y fija su id.
func (r *LugarRepo) Create(l *entity.Lugar) error {
	query := `INSERT INTO lugares (nombre, descripcion) VALUES ($1, $2) RETURNING id`
	err := r.pool.QueryRow(context.Background(), query, l.Nombre, l.Descripcion).Scan(&l.ID)
	if err != nil {
		return fmt.Errorf("insert lugar: %w", err)
	}
	return nil
}

// List devuelve todos los lugares con sus compartimentos embebidos.
func (r *LugarRepo) List() ([]*entity.Lugar, error) {
	rows, err := r.pool.Query(context.Background(),
		`SELECT id, nombre, descripcion FROM lugares ORDER BY nombre`)
	if err != nil {
		return nil, fmt.Errorf("list lugares: %w", err)
	}
	defer rows.Close()

	var list []*entity.Lugar
	porID := make(map[int64]*entity.Lugar)
	for rows.Next() {
		var l entity.Lugar
		if err := rows.Scan(&l.ID, &l.Nombre, &l.Descripcion); err != nil {
			return nil, fmt.Errorf("scan lugar: %w", err)
		}
		list = append(list, &l)
		porID[l.ID] = &l
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	comps, err := r.pool.Query(context.Background(),
		`SELECT id, lugar_id, nombre, descripcion FROM compartimentos ORDER BY nombre`)
	if err != nil {
		return nil, fmt.Errorf("list compartimentos: %w", err)
	}
	defer comps.Close()
	for comps.Next() {
		var c entity.Compartimento
		if err := comps.Scan(&c.ID, &c.LugarID, &c.Nombre, &c.Descripcion); err != nil {
			return nil, fmt.Errorf("scan compartimento: %w", err)
		}
		if l := porID[c.LugarID]; l != nil {
			l.Compartimentos = append(l.Compartimentos, c)
		}
	}
	return list, comps.Err()
}

// Update actualiza nombre y descripción de un lugar.
func (r *LugarRepo) Update(l *entity.Lugar) error {
	cmd, err := r.pool.Exec(context.Background(),
		`UPDATE lugares SET nombre = $2, descripcion = $3 WHERE id = $1`,
		l.ID, l.Nombre, l.Descripcion)
	if err != nil {
		return fmt.Errorf("update lugar: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un lugar sin dejar referencias colgantes: caen sus
// asignaciones, los artículos pierden el par lugar/compartimento y los
// compartimentos desaparecen, todo en una transacción.
func (r *LugarRepo) Delete(id int64) error {
	return r.tx.Run(context.Background(), func(tx pgx.Tx) error {
		ctx := context.Background()
		if _, err := tx.Exec(ctx, `DELETE FROM asignaciones WHERE lugar_id = $1`, id); err != nil {
			return fmt.Errorf("delete asignaciones del lugar: %w", err)
		}
		if _, err := tx.Exec(ctx,
			`UPDATE articulos SET lugar_id = NULL, compartimento_id = NULL WHERE lugar_id = $1`, id); err != nil {
			return fmt.Errorf("desvincular articulos del lugar: %w", err)
		}
		if _, err := tx.Exec(ctx, `DELETE FROM compartimentos WHERE lugar_id = $1`, id); err != nil {
			return fmt.Errorf("delete compartimentos del lugar: %w", err)
		}
		if _, err := tx.Exec(ctx, `DELETE FROM lugares WHERE id = $1`, id); err != nil {
			return fmt.Errorf("delete lugar: %w", err)
		}
		return nil
	})
}

// CreateCompartimento persiste un compartimento nuevo y fija su id.
func (r *LugarRepo) CreateCompartimento(c *entity.Compartimento) error {
	query := `INSERT INTO compartimentos (lugar_id, nombre, descripcion) VALUES ($1, $2, $3) RETURNING id`
	err := r.pool.QueryRow(context.Background(), query, c.LugarID, c.Nombre, c.Descripcion).Scan(&c.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrReferenciaRota
		}
		return fmt.Errorf("insert compartimento: %w", err)
	}
	return nil
}

// UpdateCompartimento actualiza nombre y descripción de un compartimento.
func (r *LugarRepo) UpdateCompartimento(c *entity.Compartimento) error {
	cmd, err := r.pool.Exec(context.Background(),
		`UPDATE compartimentos SET nombre = $2, descripcion = $3 WHERE id = $1`,
		c.ID, c.Nombre, c.Descripcion)
	if err != nil {
		return fmt.Errorf("update compartimento: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteCompartimento elimina un compartimento anulando solo el par
// compartimento en asignaciones y artículos; el lugar_id queda intacto.
func (r *LugarRepo) DeleteCompartimento(id int64) error {
	return r.tx.Run(context.Background(), func(tx pgx.Tx) error {
		ctx := context.Background()
		if _, err := tx.Exec(ctx,
			`UPDATE asignaciones SET compartimento_id = NULL WHERE compartimento_id = $1`, id); err != nil {
			return fmt.Errorf("desvincular asignaciones del compartimento: %w", err)
		}
		if _, err := tx.Exec(ctx,
			`UPDATE articulos SET compartimento_id = NULL WHERE compartimento_id = $1`, id); err != nil {
			return fmt.Errorf("desvincular articulos del compartimento: %w", err)
		}
		if _, err := tx.Exec(ctx, `DELETE FROM compartimentos WHERE id = $1`, id); err != nil {
			return fmt.Errorf("delete compartimento: %w", err)
		}
		return nil
	})
}
