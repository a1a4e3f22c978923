package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/albertmmateo-blip/entretelas-api/internal/domain/entity"
	"github.com/albertmmateo-blip/entretelas-api/internal/domain/repository"
)

var _ repository.ArregloRepository = (*ArregloRepo)(nil)

// ArregloRepo implementación del puerto ArregloRepository sobre PostgreSQL.
type ArregloRepo struct {
	pool *pgxpool.Pool
}

// NewArregloRepository construye el adaptador de persistencia del libro de
// arreglos.
func NewArregloRepository(pool *pgxpool.Pool) *ArregloRepo {
	return &ArregloRepo{pool: pool}
}

// Create persiste un arreglo nuevo y fija su id.
func (r *ArregloRepo) Create(a *entity.Arreglo) error {
	query := `
		INSERT INTO arreglos (carpeta, fecha, numero, cliente, arreglo, importe, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	err := r.pool.QueryRow(context.Background(), query,
		a.Carpeta, a.Fecha, a.Numero, a.Cliente, a.Arreglo, a.Importe, a.CreatedAt, a.UpdatedAt,
	).Scan(&a.ID)
	if err != nil {
		return fmt.Errorf("insert arreglo: %w", err)
	}
	return nil
}

// GetByID obtiene un arreglo por id.
func (r *ArregloRepo) GetByID(id int64) (*entity.Arreglo, error) {
	query := `
		SELECT id, carpeta, fecha, numero, cliente, arreglo, importe, created_at, updated_at
		FROM arreglos WHERE id = $1`
	var a entity.Arreglo
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&a.ID, &a.Carpeta, &a.Fecha, &a.Numero, &a.Cliente, &a.Arreglo, &a.Importe, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get arreglo: %w", err)
	}
	return &a, nil
}

// List lista arreglos, del más reciente al más antiguo. carpeta vacía lista
// todas las carpetas; anio 0 todos los años (el filtro de año compara el
// prefijo del texto de la fecha, igual que los resúmenes).
func (r *ArregloRepo) List(carpeta string, anio int) ([]*entity.Arreglo, error) {
	filtroAnio := ""
	if anio > 0 {
		filtroAnio = strconv.Itoa(anio)
	}
	query := `
		SELECT id, carpeta, fecha, numero, cliente, arreglo, importe, created_at, updated_at
		FROM arreglos
		WHERE ($1 = '' OR lower(carpeta) = lower($1))
		  AND ($2 = '' OR left(fecha, 4) = $2)
		ORDER BY fecha DESC, id DESC`
	rows, err := r.pool.Query(context.Background(), query, carpeta, filtroAnio)
	if err != nil {
		return nil, fmt.Errorf("list arreglos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Arreglo
	for rows.Next() {
		var a entity.Arreglo
		if err := rows.Scan(&a.ID, &a.Carpeta, &a.Fecha, &a.Numero, &a.Cliente, &a.Arreglo, &a.Importe, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan arreglo: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// Update actualiza un arreglo existente.
func (r *ArregloRepo) Update(a *entity.Arreglo) error {
	query := `
		UPDATE arreglos
		SET carpeta = $2, fecha = $3, numero = $4, cliente = $5, arreglo = $6, importe = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		a.ID, a.Carpeta, a.Fecha, a.Numero, a.Cliente, a.Arreglo, a.Importe, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update arreglo: %w", err)
	}
	return nil
}

// Delete elimina un arreglo por id.
func (r *ArregloRepo) Delete(id int64) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM arreglos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete arreglo: %w", err)
	}
	return nil
}
