// seed aplica el esquema y carga datos de ejemplo para desarrollo local.
//
// Uso: go run ./cmd/seed [ruta/001_schema.sql]
// Por defecto busca el esquema en internal/infrastructure/postgres/migrations.
// La conexión se toma de la misma configuración que el servidor (DATABASE_URL
// o DB_*).
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/albertmmateo-blip/entretelas-api/internal/infrastructure/postgres"
	"github.com/albertmmateo-blip/entretelas-api/pkg/config"
)

func main() {
	schemaPath := "internal/infrastructure/postgres/migrations/001_schema.sql"
	if len(os.Args) > 1 {
		schemaPath = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conectar a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	schema, err := os.ReadFile(schemaPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer esquema: %v\n", err)
		os.Exit(1)
	}
	if _, err := pool.Exec(ctx, string(schema)); err != nil {
		fmt.Fprintf(os.Stderr, "Aplicar esquema: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Esquema aplicado")

	var n int
	if err := pool.QueryRow(ctx, `SELECT count(*) FROM entidades`).Scan(&n); err != nil {
		fmt.Fprintf(os.Stderr, "Comprobar datos: %v\n", err)
		os.Exit(1)
	}
	if n > 0 {
		fmt.Println("La base ya tiene datos; no se insertan ejemplos")
		return
	}

	demo := []string{
		`INSERT INTO entidades (nombre, tipo, telefono) VALUES
			('Tejidos Paredes', 'proveedor', '963 000 111'),
			('Mercería Cullera', 'proveedor', '963 000 222'),
			('Amparo Ferrandis', 'cliente', '600 111 222')`,
		`INSERT INTO arreglos (carpeta, fecha, numero, cliente, arreglo, importe) VALUES
			('Entretelas', '2026-01-12', '1041', 'Amparo', 'Bajos pantalón', 8.50),
			('Isa', '2026-01-15', '1042', 'Vicent', 'Cremallera abrigo', 14.00),
			('Loli', '2026-02-03', '1043', 'Carmen', 'Ajuste vestido', 22.50)`,
		`INSERT INTO lugares (nombre, descripcion) VALUES
			('Armario grande', 'Entrada de la trastienda'),
			('Altillo', 'Sobre el probador')`,
		`INSERT INTO compartimentos (lugar_id, nombre) VALUES
			(1, 'Balda superior'),
			(1, 'Cajón inferior')`,
		`INSERT INTO productos (nombre, ref) VALUES
			('Cremalleras', 'CR-20'),
			('Botones forrados', 'BF-11')`,
		`INSERT INTO asignaciones (producto_id, lugar_id, compartimento_id, notas) VALUES
			(2, 1, 2, 'Caja azul')`,
		`INSERT INTO articulos (producto_id, nombre, ref, lugar_id, compartimento_id) VALUES
			(1, 'Cremallera 20cm negra', 'CR-20-N', 1, 1),
			(1, 'Cremallera 20cm blanca', 'CR-20-B', 1, 1),
			(1, 'Cremallera inyectada 60cm', 'CR-60', NULL, NULL)`,
		`INSERT INTO notas (titulo, contenido) VALUES
			('Horario agosto', 'Cerrado por las tardes del 10 al 24')`,
		`INSERT INTO avisos (nombre, telefono, motivo) VALUES
			('Amparo Ferrandis', '600 111 222', 'Vestido listo para recoger')`,
		`INSERT INTO pedidos (proveedor, descripcion, fecha) VALUES
			('Tejidos Paredes', 'Entretela termoadhesiva, 2 rollos', '2026-08-20')`,
	}
	for _, stmt := range demo {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			fmt.Fprintf(os.Stderr, "Insertar ejemplos: %v\n", err)
			os.Exit(1)
		}
	}
	fmt.Println("Datos de ejemplo insertados")
}
