package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/albertmmateo-blip/entretelas-api/internal/domain"
	"github.com/albertmmateo-blip/entretelas-api/internal/domain/entity"
	"github.com/albertmmateo-blip/entretelas-api/internal/domain/repository"
)

var _ repository.FacturaRepository = (*FacturaRepo)(nil)

// FacturaRepo implementación del puerto FacturaRepository sobre PostgreSQL.
// El documento vive como BYTEA en la propia fila; los listados no lo cargan.
type FacturaRepo struct {
	pool *pgxpool.Pool
}

// NewFacturaRepository construye el adaptador de persistencia del archivador.
func NewFacturaRepository(pool *pgxpool.Pool) *FacturaRepo {
	return &FacturaRepo{pool: pool}
}

const columnasFactura = `id, referencia, entidad_id, tipo, nombre_archivo, fecha, fecha_subida,
	importe, importe_iva_re, vencimiento, pagada`

func escanearFactura(row pgx.Row) (*entity.FacturaPDF, error) {
	var f entity.FacturaPDF
	err := row.Scan(
		&f.ID, &f.Referencia, &f.EntidadID, &f.Tipo, &f.NombreArchivo, &f.Fecha, &f.FechaSubida,
		&f.Importe, &f.ImporteIVARE, &f.Vencimiento, &f.Pagada,
	)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// Upload persiste una factura nueva con su documento y fija su id.
func (r *FacturaRepo) Upload(f *entity.FacturaPDF) error {
	query := `
		INSERT INTO facturas_pdf
			(referencia, entidad_id, tipo, nombre_archivo, fecha, fecha_subida,
			 importe, importe_iva_re, vencimiento, pagada, documento)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`
	err := r.pool.QueryRow(context.Background(), query,
		f.Referencia, f.EntidadID, f.Tipo, f.NombreArchivo, f.Fecha, f.FechaSubida,
		f.Importe, f.ImporteIVARE, f.Vencimiento, f.Pagada, f.Documento,
	).Scan(&f.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert factura: %w", err)
	}
	return nil
}

// GetAllForEntidad lista las facturas de una entidad, de la más reciente a la
// más antigua; tipo vacío lista todos los tipos.
func (r *FacturaRepo) GetAllForEntidad(entidadID int64, tipo string) ([]*entity.FacturaPDF, error) {
	query := `
		SELECT ` + columnasFactura + `
		FROM facturas_pdf
		WHERE entidad_id = $1 AND ($2 = '' OR tipo = $2)
		ORDER BY fecha_subida DESC, id DESC`
	return r.listar(query, entidadID, tipo)
}

// ListByTipoYAnio lista las facturas de un tipo cuyo año coincide, mirando
// primero la fecha del documento y, si no es legible, la fecha de subida.
func (r *FacturaRepo) ListByTipoYAnio(tipo string, anio int) ([]*entity.FacturaPDF, error) {
	query := `
		SELECT ` + columnasFactura + `
		FROM facturas_pdf
		WHERE tipo = $1
		  AND (left(fecha, 4) = $2 OR (left(fecha, 4) <> $2 AND to_char(fecha_subida, 'YYYY') = $2))
		ORDER BY fecha_subida DESC, id DESC`
	return r.listar(query, tipo, strconv.Itoa(anio))
}

func (r *FacturaRepo) listar(query string, args ...any) ([]*entity.FacturaPDF, error) {
	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list facturas: %w", err)
	}
	defer rows.Close()
	var list []*entity.FacturaPDF
	for rows.Next() {
		f, err := escanearFactura(rows)
		if err != nil {
			return nil, fmt.Errorf("scan factura: %w", err)
		}
		list = append(list, f)
	}
	return list, rows.Err()
}

// GetByID obtiene los metadatos de una factura, sin el documento.
func (r *FacturaRepo) GetByID(id int64) (*entity.FacturaPDF, error) {
	query := `SELECT ` + columnasFactura + ` FROM facturas_pdf WHERE id = $1`
	f, err := escanearFactura(r.pool.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get factura: %w", err)
	}
	return f, nil
}

// GetDocumento carga el documento binario de una factura para su descarga.
func (r *FacturaRepo) GetDocumento(id int64) (string, []byte, error) {
	var nombre string
	var doc []byte
	err := r.pool.QueryRow(context.Background(),
		`SELECT nombre_archivo, documento FROM facturas_pdf WHERE id = $1`, id,
	).Scan(&nombre, &doc)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil, domain.ErrNotFound
		}
		return "", nil, fmt.Errorf("get documento: %w", err)
	}
	return nombre, doc, nil
}

// UpdateMetadata actualiza solo los campos presentes en los metadatos.
func (r *FacturaRepo) UpdateMetadata(id int64, m repository.MetadatosFactura) error {
	set := make([]string, 0, 5)
	args := []any{id}
	setCol := func(columna string, valor any) {
		args = append(args, valor)
		set = append(set, fmt.Sprintf("%s = $%d", columna, len(args)))
	}
	if m.Fecha != nil {
		setCol("fecha", *m.Fecha)
	}
	if m.Importe != nil {
		setCol("importe", *m.Importe)
	}
	if m.ImporteIVARE != nil {
		setCol("importe_iva_re", *m.ImporteIVARE)
	}
	if m.Vencimiento != nil {
		setCol("vencimiento", *m.Vencimiento)
	}
	if m.Pagada != nil {
		setCol("pagada", *m.Pagada)
	}
	if len(set) == 0 {
		return nil
	}
	query := `UPDATE facturas_pdf SET ` + strings.Join(set, ", ") + ` WHERE id = $1`
	cmd, err := r.pool.Exec(context.Background(), query, args...)
	if err != nil {
		return fmt.Errorf("update metadatos factura: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una factura con su documento.
func (r *FacturaRepo) Delete(id int64) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM facturas_pdf WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete factura: %w", err)
	}
	return nil
}
