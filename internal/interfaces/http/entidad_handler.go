package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/albertmmateo-blip/entretelas-api/internal/application/dto"
	"github.com/albertmmateo-blip/entretelas-api/internal/application/usecase"
)

// EntidadHandler maneja las peticiones HTTP de proveedores y clientes.
type EntidadHandler struct {
	uc *usecase.EntidadUseCase
}

// NewEntidadHandler construye el handler.
func NewEntidadHandler(uc *usecase.EntidadUseCase) *EntidadHandler {
	return &EntidadHandler{uc: uc}
}

// Create godoc
// @Summary      Crear proveedor o cliente
// @Tags         entidades
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEntidadRequest  true  "Datos de la entidad"
// @Success      201   {object}  dto.EntidadResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/entidades [post]
func (h *EntidadHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEntidadRequest
	if err := c.BodyParser(&in); err != nil {
		return errorBody(c)
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return errorHTTP(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener entidad por ID
// @Tags         entidades
// @Produce      json
// @Param        id   path  int  true  "ID de la entidad"
// @Success      200  {object}  dto.EntidadResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/entidades/{id} [get]
func (h *EntidadHandler) GetByID(c *fiber.Ctx) error {
	id, ok := parsearID(c, "id")
	if !ok {
		return errorID(c, "id")
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return errorHTTP(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "entidad no encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar entidades
// @Tags         entidades
// @Produce      json
// @Param        tipo  query  string  false  "proveedor o cliente"
// @Success      200   {object}  dto.EntidadListResponse
// @Router       /api/entidades [get]
func (h *EntidadHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Query("tipo"))
	if err != nil {
		return errorHTTP(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar entidad
// @Tags         entidades
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la entidad"
// @Param        body  body  dto.UpdateEntidadRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.EntidadResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/entidades/{id} [put]
func (h *EntidadHandler) Update(c *fiber.Ctx) error {
	id, ok := parsearID(c, "id")
	if !ok {
		return errorID(c, "id")
	}
	var in dto.UpdateEntidadRequest
	if err := c.BodyParser(&in); err != nil {
		return errorBody(c)
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return errorHTTP(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "entidad no encontrada"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar entidad con sus facturas
// @Tags         entidades
// @Param        id  path  int  true  "ID de la entidad"
// @Success      204
// @Router       /api/entidades/{id} [delete]
func (h *EntidadHandler) Delete(c *fiber.Ctx) error {
	id, ok := parsearID(c, "id")
	if !ok {
		return errorID(c, "id")
	}
	if err := h.uc.Delete(id); err != nil {
		return errorHTTP(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
