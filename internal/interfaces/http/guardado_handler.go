package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/albertmmateo-blip/entretelas-api/internal/application/dto"
	"github.com/albertmmateo-blip/entretelas-api/internal/application/usecase"
)

// GuardadoHandler maneja las peticiones HTTP del catálogo de guardado:
// lugares, compartimentos, productos, asignaciones y artículos.
type GuardadoHandler struct {
	uc *usecase.GuardadoUseCase
}

// NewGuardadoHandler construye el handler.
func NewGuardadoHandler(uc *usecase.GuardadoUseCase) *GuardadoHandler {
	return &GuardadoHandler{uc: uc}
}

// ── Lugares ───────────────────────────────────────────────────────────────────

// ListLugares godoc
// @Summary      Listar lugares con sus compartimentos
// @Tags         guardado
// @Produce      json
// @Success      200  {object}  dto.LugarListResponse
// @Router       /api/guardado/lugares [get]
func (h *GuardadoHandler) ListLugares(c *fiber.Ctx) error {
	return c.JSON(h.uc.ListLugares())
}

// CreateLugar godoc
// @Summary      Crear un lugar de almacenaje
// @Tags         guardado
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateLugarRequest  true  "Datos del lugar"
// @Success      201   {object}  dto.LugarResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/guardado/lugares [post]
func (h *GuardadoHandler) CreateLugar(c *fiber.Ctx) error {
	var in dto.CreateLugarRequest
	if err := c.BodyParser(&in); err != nil {
		return errorBody(c)
	}
	out, err := h.uc.CreateLugar(in)
	if err != nil {
		return errorHTTP(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateLugar godoc
// @Summary      Renombrar o describir un lugar
// @Tags         guardado
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del lugar"
// @Param        body  body  dto.UpdateLugarRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.LugarResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/guardado/lugares/{id} [put]
func (h *GuardadoHandler) UpdateLugar(c *fiber.Ctx) error {
	id, ok := parsearID(c, "id")
	if !ok {
		return errorID(c, "id")
	}
	var in dto.UpdateLugarRequest
	if err := c.BodyParser(&in); err != nil {
		return errorBody(c)
	}
	out, err := h.uc.UpdateLugar(id, in)
	if err != nil {
		return errorHTTP(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "lugar no encontrado"})
	}
	return c.JSON(out)
}

// DeleteLugar godoc
// @Summary      Eliminar un lugar y limpiar sus referencias
// @Tags         guardado
// @Param        id  path  int  true  "ID del lugar"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/guardado/lugares/{id} [delete]
func (h *GuardadoHandler) DeleteLugar(c *fiber.Ctx) error {
	id, ok := parsearID(c, "id")
	if !ok {
		return errorID(c, "id")
	}
	if err := h.uc.DeleteLugar(id); err != nil {
		return errorHTTP(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CreateCompartimento godoc
// @Summary      Añadir un compartimento a un lugar
// @Tags         guardado
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del lugar"
// @Param        body  body  dto.CreateCompartimentoRequest  true  "Datos del compartimento"
// @Success      201   {object}  dto.CompartimentoResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/guardado/lugares/{id}/compartimentos [post]
func (h *GuardadoHandler) CreateCompartimento(c *fiber.Ctx) error {
	id, ok := parsearID(c, "id")
	if !ok {
		return errorID(c, "id")
	}
	var in dto.CreateCompartimentoRequest
	if err := c.BodyParser(&in); err != nil {
		return errorBody(c)
	}
	out, err := h.uc.CreateCompartimento(id, in)
	if err != nil {
		return errorHTTP(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateCompartimento godoc
// @Summary      Editar un compartimento
// @Tags         guardado
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del compartimento"
// @Param        body  body  dto.UpdateCompartimentoRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.CompartimentoResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/guardado/compartimentos/{id} [put]
func (h *GuardadoHandler) UpdateCompartimento(c *fiber.Ctx) error {
	id, ok := parsearID(c, "id")
	if !ok {
		return errorID(c, "id")
	}
	var in dto.UpdateCompartimentoRequest
	if err := c.BodyParser(&in); err != nil {
		return errorBody(c)
	}
	out, err := h.uc.UpdateCompartimento(id, in)
	if err != nil {
		return errorHTTP(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "compartimento no encontrado"})
	}
	return c.JSON(out)
}

// DeleteCompartimento godoc
// @Summary      Eliminar un compartimento conservando el lugar en las referencias
// @Tags         guardado
// @Param        id  path  int  true  "ID del compartimento"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/guardado/compartimentos/{id} [delete]
func (h *GuardadoHandler) DeleteCompartimento(c *fiber.Ctx) error {
	id, ok := parsearID(c, "id")
	if !ok {
		return errorID(c, "id")
	}
	if err := h.uc.DeleteCompartimento(id); err != nil {
		return errorHTTP(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ── Productos ─────────────────────────────────────────────────────────────────

// ListProductos godoc
// @Summary      Listar productos con ubicaciones resueltas
// @Tags         guardado
// @Produce      json
// @Success      200  {object}  dto.ProductoListResponse
// @Router       /api/guardado/productos [get]
func (h *GuardadoHandler) ListProductos(c *fiber.Ctx) error {
	return c.JSON(h.uc.ListProductos())
}

// GetProducto godoc
// @Summary      Obtener un producto por ID
// @Tags         guardado
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  dto.ProductoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/guardado/productos/{id} [get]
func (h *GuardadoHandler) GetProducto(c *fiber.Ctx) error {
	id, ok := parsearID(c, "id")
	if !ok {
		return errorID(c, "id")
	}
	out := h.uc.GetProducto(id)
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	return c.JSON(out)
}

// CreateProducto godoc
// @Summary      Crear un producto de catálogo
// @Tags         guardado
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductoRequest  true  "Datos del producto"
// @Success      201   {object}  dto.ProductoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/guardado/productos [post]
func (h *GuardadoHandler) CreateProducto(c *fiber.Ctx) error {
	var in dto.CreateProductoRequest
	if err := c.BodyParser(&in); err != nil {
		return errorBody(c)
	}
	out, err := h.uc.CreateProducto(in)
	if err != nil {
		return errorHTTP(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateProducto godoc
// @Summary      Editar un producto
// @Tags         guardado
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del producto"
// @Param        body  body  dto.UpdateProductoRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.ProductoResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/guardado/productos/{id} [put]
func (h *GuardadoHandler) UpdateProducto(c *fiber.Ctx) error {
	id, ok := parsearID(c, "id")
	if !ok {
		return errorID(c, "id")
	}
	var in dto.UpdateProductoRequest
	if err := c.BodyParser(&in); err != nil {
		return errorBody(c)
	}
	out, err := h.uc.UpdateProducto(id, in)
	if err != nil {
		return errorHTTP(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	return c.JSON(out)
}

// DeleteProducto godoc
// @Summary      Eliminar un producto con sus asignaciones y artículos
// @Tags         guardado
// @Param        id  path  int  true  "ID del producto"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/guardado/productos/{id} [delete]
func (h *GuardadoHandler) DeleteProducto(c *fiber.Ctx) error {
	id, ok := parsearID(c, "id")
	if !ok {
		return errorID(c, "id")
	}
	if err := h.uc.DeleteProducto(id); err != nil {
		return errorHTTP(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ── Asignaciones ──────────────────────────────────────────────────────────────

// CreateAsignacion godoc
// @Summary      Colocar un producto en un lugar
// @Tags         guardado
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del producto"
// @Param        body  body  dto.CreateAsignacionRequest  true  "Ubicación"
// @Success      201   {object}  dto.AsignacionResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/guardado/productos/{id}/asignaciones [post]
func (h *GuardadoHandler) CreateAsignacion(c *fiber.Ctx) error {
	id, ok := parsearID(c, "id")
	if !ok {
		return errorID(c, "id")
	}
	var in dto.CreateAsignacionRequest
	if err := c.BodyParser(&in); err != nil {
		return errorBody(c)
	}
	out, err := h.uc.CreateAsignacion(id, in)
	if err != nil {
		return errorHTTP(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateAsignacion godoc
// @Summary      Mover o anotar una asignación
// @Tags         guardado
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del producto"
// @Param        aid   path  int  true  "ID de la asignación"
// @Param        body  body  dto.UpdateAsignacionRequest  true  "Cambios"
// @Success      200   {object}  dto.AsignacionResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/guardado/productos/{id}/asignaciones/{aid} [put]
func (h *GuardadoHandler) UpdateAsignacion(c *fiber.Ctx) error {
	id, ok := parsearID(c, "id")
	if !ok {
		return errorID(c, "id")
	}
	aid, ok := parsearID(c, "aid")
	if !ok {
		return errorID(c, "aid")
	}
	var in dto.UpdateAsignacionRequest
	if err := c.BodyParser(&in); err != nil {
		return errorBody(c)
	}
	out, err := h.uc.UpdateAsignacion(id, aid, in)
	if err != nil {
		return errorHTTP(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "asignación no encontrada"})
	}
	return c.JSON(out)
}

// DeleteAsignacion godoc
// @Summary      Retirar una asignación
// @Tags         guardado
// @Param        id   path  int  true  "ID del producto"
// @Param        aid  path  int  true  "ID de la asignación"
// @Success      204
// @Router       /api/guardado/productos/{id}/asignaciones/{aid} [delete]
func (h *GuardadoHandler) DeleteAsignacion(c *fiber.Ctx) error {
	id, ok := parsearID(c, "id")
	if !ok {
		return errorID(c, "id")
	}
	aid, ok := parsearID(c, "aid")
	if !ok {
		return errorID(c, "aid")
	}
	if err := h.uc.DeleteAsignacion(id, aid); err != nil {
		return errorHTTP(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ── Artículos ─────────────────────────────────────────────────────────────────

// CreateArticulo godoc
// @Summary      Desglosar un producto en un artículo
// @Tags         guardado
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del producto"
// @Param        body  body  dto.CreateArticuloRequest  true  "Datos del artículo"
// @Success      201   {object}  dto.ArticuloResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/guardado/productos/{id}/articulos [post]
func (h *GuardadoHandler) CreateArticulo(c *fiber.Ctx) error {
	id, ok := parsearID(c, "id")
	if !ok {
		return errorID(c, "id")
	}
	var in dto.CreateArticuloRequest
	if err := c.BodyParser(&in); err != nil {
		return errorBody(c)
	}
	out, err := h.uc.CreateArticulo(id, in)
	if err != nil {
		return errorHTTP(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateArticulo godoc
// @Summary      Editar o reubicar un artículo
// @Tags         guardado
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del producto"
// @Param        aid   path  int  true  "ID del artículo"
// @Param        body  body  dto.UpdateArticuloRequest  true  "Cambios"
// @Success      200   {object}  dto.ArticuloResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/guardado/productos/{id}/articulos/{aid} [put]
func (h *GuardadoHandler) UpdateArticulo(c *fiber.Ctx) error {
	id, ok := parsearID(c, "id")
	if !ok {
		return errorID(c, "id")
	}
	aid, ok := parsearID(c, "aid")
	if !ok {
		return errorID(c, "aid")
	}
	var in dto.UpdateArticuloRequest
	if err := c.BodyParser(&in); err != nil {
		return errorBody(c)
	}
	out, err := h.uc.UpdateArticulo(id, aid, in)
	if err != nil {
		return errorHTTP(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "artículo no encontrado"})
	}
	return c.JSON(out)
}

// DeleteArticulo godoc
// @Summary      Retirar un artículo
// @Tags         guardado
// @Param        id   path  int  true  "ID del producto"
// @Param        aid  path  int  true  "ID del artículo"
// @Success      204
// @Router       /api/guardado/productos/{id}/articulos/{aid} [delete]
func (h *GuardadoHandler) DeleteArticulo(c *fiber.Ctx) error {
	id, ok := parsearID(c, "id")
	if !ok {
		return errorID(c, "id")
	}
	aid, ok := parsearID(c, "aid")
	if !ok {
		return errorID(c, "aid")
	}
	if err := h.uc.DeleteArticulo(id, aid); err != nil {
		return errorHTTP(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
