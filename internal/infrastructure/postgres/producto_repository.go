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

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

// ProductoRepo implementación del puerto ProductoRepository sobre PostgreSQL.
// Los listados devuelven asignaciones y artículos con los nombres de lugar y
// compartimento ya resueltos por JOIN.
type ProductoRepo struct {
	pool *pgxpool.Pool
}

// NewProductoRepository construye el adaptador de persistencia de productos.
func NewProductoRepository(pool *pgxpool.Pool) *ProductoRepo {
	return &ProductoRepo{pool: pool}
}

// Create persiste un producto nuevo y fija su id.
func (r *ProductoRepo) Create(p *entity.Producto) error {
	query := `INSERT INTO productos (nombre, ref, descripcion) VALUES ($1, $2, $3) RETURNING id`
	err := r.pool.QueryRow(context.Background(), query, p.Nombre, p.Ref, p.Descripcion).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("insert producto: %w", err)
	}
	return nil
}

// GetByID obtiene un producto con sus colecciones embebidas.
func (r *ProductoRepo) GetByID(id int64) (*entity.Producto, error) {
	var p entity.Producto
	err := r.pool.QueryRow(context.Background(),
		`SELECT id, nombre, ref, descripcion FROM productos WHERE id = $1`, id,
	).Scan(&p.ID, &p.Nombre, &p.Ref, &p.Descripcion)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	if err := r.adjuntarColecciones(map[int64]*entity.Producto{p.ID: &p}, p.ID); err != nil {
		return nil, err
	}
	return &p, nil
}

// List devuelve todos los productos con asignaciones y artículos embebidos.
func (r *ProductoRepo) List() ([]*entity.Producto, error) {
	rows, err := r.pool.Query(context.Background(),
		`SELECT id, nombre, ref, descripcion FROM productos ORDER BY nombre`)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()

	var list []*entity.Producto
	porID := make(map[int64]*entity.Producto)
	for rows.Next() {
		var p entity.Producto
		if err := rows.Scan(&p.ID, &p.Nombre, &p.Ref, &p.Descripcion); err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, &p)
		porID[p.ID] = &p
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return list, nil
	}
	if err := r.adjuntarColecciones(porID, 0); err != nil {
		return nil, err
	}
	return list, nil
}

// adjuntarColecciones carga asignaciones y artículos (con nombres resueltos)
// y los reparte entre los productos del mapa. productoID 0 carga todos.
func (r *ProductoRepo) adjuntarColecciones(porID map[int64]*entity.Producto, productoID int64) error {
	ctx := context.Background()

	asigs, err := r.pool.Query(ctx, `
		SELECT a.id, a.producto_id, a.lugar_id, a.compartimento_id,
		       l.nombre, COALESCE(c.nombre, ''), a.notas
		FROM asignaciones a
		JOIN lugares l ON l.id = a.lugar_id
		LEFT JOIN compartimentos c ON c.id = a.compartimento_id
		WHERE ($1 = 0 OR a.producto_id = $1)
		ORDER BY l.nombre, c.nombre`, productoID)
	if err != nil {
		return fmt.Errorf("list asignaciones: %w", err)
	}
	defer asigs.Close()
	for asigs.Next() {
		var a entity.Asignacion
		if err := asigs.Scan(&a.ID, &a.ProductoID, &a.LugarID, &a.CompartimentoID,
			&a.LugarNombre, &a.CompartimentoNombre, &a.Notas); err != nil {
			return fmt.Errorf("scan asignacion: %w", err)
		}
		if p := porID[a.ProductoID]; p != nil {
			p.Asignaciones = append(p.Asignaciones, a)
		}
	}
	if err := asigs.Err(); err != nil {
		return err
	}

	arts, err := r.pool.Query(ctx, `
		SELECT t.id, t.producto_id, t.nombre, t.ref, t.descripcion, t.notas,
		       t.lugar_id, t.compartimento_id, COALESCE(l.nombre, ''), COALESCE(c.nombre, '')
		FROM articulos t
		LEFT JOIN lugares l ON l.id = t.lugar_id
		LEFT JOIN compartimentos c ON c.id = t.compartimento_id
		WHERE ($1 = 0 OR t.producto_id = $1)
		ORDER BY t.nombre`, productoID)
	if err != nil {
		return fmt.Errorf("list articulos: %w", err)
	}
	defer arts.Close()
	for arts.Next() {
		var a entity.Articulo
		if err := arts.Scan(&a.ID, &a.ProductoID, &a.Nombre, &a.Ref, &a.Descripcion, &a.Notas,
			&a.LugarID, &a.CompartimentoID, &a.LugarNombre, &a.CompartimentoNombre); err != nil {
			return fmt.Errorf("scan articulo: %w", err)
		}
		if p := porID[a.ProductoID]; p != nil {
			p.Articulos = append(p.Articulos, a)
		}
	}
	return arts.Err()
}

// Update actualiza los campos propios de un producto.
func (r *ProductoRepo) Update(p *entity.Producto) error {
	cmd, err := r.pool.Exec(context.Background(),
		`UPDATE productos SET nombre = $2, ref = $3, descripcion = $4 WHERE id = $1`,
		p.ID, p.Nombre, p.Ref, p.Descripcion)
	if err != nil {
		return fmt.Errorf("update producto: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un producto; asignaciones y artículos caen por cascada de la
// clave foránea.
func (r *ProductoRepo) Delete(id int64) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM productos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete producto: %w", err)
	}
	return nil
}

// resolverNombres rellena los nombres desnormalizados de una ubicación.
func (r *ProductoRepo) resolverNombres(lugarID, compartimentoID *int64) (string, string, error) {
	lugar, comp := "", ""
	if lugarID != nil {
		err := r.pool.QueryRow(context.Background(),
			`SELECT nombre FROM lugares WHERE id = $1`, *lugarID).Scan(&lugar)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return "", "", domain.ErrReferenciaRota
			}
			return "", "", fmt.Errorf("resolver lugar: %w", err)
		}
	}
	if compartimentoID != nil {
		err := r.pool.QueryRow(context.Background(),
			`SELECT nombre FROM compartimentos WHERE id = $1`, *compartimentoID).Scan(&comp)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return "", "", domain.ErrReferenciaRota
			}
			return "", "", fmt.Errorf("resolver compartimento: %w", err)
		}
	}
	return lugar, comp, nil
}

// CreateAsignacion persiste una asignación y deja los nombres resueltos.
func (r *ProductoRepo) CreateAsignacion(a *entity.Asignacion) error {
	query := `
		INSERT INTO asignaciones (producto_id, lugar_id, compartimento_id, notas)
		VALUES ($1, $2, $3, $4) RETURNING id`
	err := r.pool.QueryRow(context.Background(), query,
		a.ProductoID, a.LugarID, a.CompartimentoID, a.Notas).Scan(&a.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrReferenciaRota
		}
		return fmt.Errorf("insert asignacion: %w", err)
	}
	lugarID := a.LugarID
	a.LugarNombre, a.CompartimentoNombre, err = r.resolverNombres(&lugarID, a.CompartimentoID)
	return err
}

// UpdateAsignacion actualiza una asignación y deja los nombres resueltos.
func (r *ProductoRepo) UpdateAsignacion(a *entity.Asignacion) error {
	cmd, err := r.pool.Exec(context.Background(),
		`UPDATE asignaciones SET lugar_id = $2, compartimento_id = $3, notas = $4 WHERE id = $1`,
		a.ID, a.LugarID, a.CompartimentoID, a.Notas)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrReferenciaRota
		}
		return fmt.Errorf("update asignacion: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	lugarID := a.LugarID
	a.LugarNombre, a.CompartimentoNombre, err = r.resolverNombres(&lugarID, a.CompartimentoID)
	return err
}

// DeleteAsignacion elimina una asignación por id.
func (r *ProductoRepo) DeleteAsignacion(id int64) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM asignaciones WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete asignacion: %w", err)
	}
	return nil
}

// CreateArticulo persiste un artículo y deja los nombres resueltos.
func (r *ProductoRepo) CreateArticulo(a *entity.Articulo) error {
	query := `
		INSERT INTO articulos (producto_id, nombre, ref, descripcion, notas, lugar_id, compartimento_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	err := r.pool.QueryRow(context.Background(), query,
		a.ProductoID, a.Nombre, a.Ref, a.Descripcion, a.Notas, a.LugarID, a.CompartimentoID).Scan(&a.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrReferenciaRota
		}
		return fmt.Errorf("insert articulo: %w", err)
	}
	a.LugarNombre, a.CompartimentoNombre, err = r.resolverNombres(a.LugarID, a.CompartimentoID)
	return err
}

// UpdateArticulo actualiza un artículo y deja los nombres resueltos.
func (r *ProductoRepo) UpdateArticulo(a *entity.Articulo) error {
	query := `
		UPDATE articulos
		SET nombre = $2, ref = $3, descripcion = $4, notas = $5, lugar_id = $6, compartimento_id = $7
		WHERE id = $1`
	cmd, err := r.pool.Exec(context.Background(), query,
		a.ID, a.Nombre, a.Ref, a.Descripcion, a.Notas, a.LugarID, a.CompartimentoID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrReferenciaRota
		}
		return fmt.Errorf("update articulo: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	a.LugarNombre, a.CompartimentoNombre, err = r.resolverNombres(a.LugarID, a.CompartimentoID)
	return err
}

// DeleteArticulo elimina un artículo por id.
func (r *ProductoRepo) DeleteArticulo(id int64) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM articulos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete articulo: %w", err)
	}
	return nil
}
