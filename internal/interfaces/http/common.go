package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/albertmmateo-blip/entretelas-api/internal/application/dto"
	"github.com/albertmmateo-blip/entretelas-api/internal/domain"
)

// parsearID lee un parámetro de ruta numérico; 0 y negativos no son IDs.
func parsearID(c *fiber.Ctx, nombre string) (int64, bool) {
	id, err := strconv.ParseInt(c.Params(nombre), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func errorID(c *fiber.Ctx, nombre string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: nombre + " numérico requerido"})
}

func errorBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}

// errorHTTP traduce los errores de dominio a respuestas HTTP.
func errorHTTP(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrCarpetaDesconocida):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "CARPETA", Message: "carpeta desconocida"})
	case errors.Is(err, domain.ErrTipoFactura):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "TIPO_FACTURA", Message: "tipo de factura desconocido"})
	case errors.Is(err, domain.ErrReferenciaRota):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "REFERENCIA", Message: "la referencia apunta a un registro inexistente"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el registro ya existe"})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "conflicto con el estado actual"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
