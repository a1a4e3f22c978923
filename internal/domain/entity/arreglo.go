package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Arreglo es un vale del libro de arreglos, archivado bajo una de las tres
// carpetas canónicas (Entretelas, Isa, Loli).
type Arreglo struct {
	ID        int64
	Carpeta   string
	Fecha     string // YYYY-MM-DD; se guarda como texto por tolerancia a datos antiguos
	Numero    string
	Cliente   string
	Arreglo   string
	Importe   decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}
