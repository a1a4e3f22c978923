package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrCarpetaDesconocida = errors.New("carpeta de arreglos desconocida")
	ErrTipoFactura        = errors.New("tipo de factura desconocido")
	ErrReferenciaRota     = errors.New("referencia a lugar o compartimento inexistente")
)
