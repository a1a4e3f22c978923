package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/albertmmateo-blip/entretelas-api/internal/application/dto"
	"github.com/albertmmateo-blip/entretelas-api/internal/application/usecase"
)

// NotaHandler maneja las peticiones HTTP de las notas.
type NotaHandler struct {
	uc *usecase.NotaUseCase
}

// NewNotaHandler construye el handler.
func NewNotaHandler(uc *usecase.NotaUseCase) *NotaHandler {
	return &NotaHandler{uc: uc}
}

// Create godoc
// @Summary      Crear nota
// @Tags         notas
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateNotaRequest  true  "Datos de la nota"
// @Success      201   {object}  dto.NotaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/notas [post]
func (h *NotaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateNotaRequest
	if err := c.BodyParser(&in); err != nil {
		return errorBody(c)
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return errorHTTP(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar notas
// @Tags         notas
// @Produce      json
// @Success      200  {object}  dto.NotaListResponse
// @Router       /api/notas [get]
func (h *NotaHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return errorHTTP(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener nota por ID
// @Tags         notas
// @Produce      json
// @Param        id   path  int  true  "ID de la nota"
// @Success      200  {object}  dto.NotaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/notas/{id} [get]
func (h *NotaHandler) GetByID(c *fiber.Ctx) error {
	id, ok := parsearID(c, "id")
	if !ok {
		return errorID(c, "id")
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return errorHTTP(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "nota no encontrada"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar nota
// @Tags         notas
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la nota"
// @Param        body  body  dto.UpdateNotaRequest  true  "Campos a editar"
// @Success      200   {object}  dto.NotaResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/notas/{id} [put]
func (h *NotaHandler) Update(c *fiber.Ctx) error {
	id, ok := parsearID(c, "id")
	if !ok {
		return errorID(c, "id")
	}
	var in dto.UpdateNotaRequest
	if err := c.BodyParser(&in); err != nil {
		return errorBody(c)
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return errorHTTP(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "nota no encontrada"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar nota
// @Tags         notas
// @Param        id  path  int  true  "ID de la nota"
// @Success      204
// @Router       /api/notas/{id} [delete]
func (h *NotaHandler) Delete(c *fiber.Ctx) error {
	id, ok := parsearID(c, "id")
	if !ok {
		return errorID(c, "id")
	}
	if err := h.uc.Delete(id); err != nil {
		return errorHTTP(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AvisoHandler maneja las peticiones HTTP de los avisos de llamada.
type AvisoHandler struct {
	uc *usecase.AvisoUseCase
}

// NewAvisoHandler construye el handler.
func NewAvisoHandler(uc *usecase.AvisoUseCase) *AvisoHandler {
	return &AvisoHandler{uc: uc}
}

// Create godoc
// @Summary      Apuntar aviso de llamada
// @Tags         avisos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAvisoRequest  true  "Datos del aviso"
// @Success      201   {object}  dto.AvisoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/avisos [post]
func (h *AvisoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAvisoRequest
	if err := c.BodyParser(&in); err != nil {
		return errorBody(c)
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return errorHTTP(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar avisos
// @Tags         avisos
// @Produce      json
// @Param        pendientes  query  bool  false  "Solo pendientes"
// @Success      200  {object}  dto.AvisoListResponse
// @Router       /api/avisos [get]
func (h *AvisoHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.QueryBool("pendientes"))
	if err != nil {
		return errorHTTP(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Corregir un aviso
// @Tags         avisos
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del aviso"
// @Param        body  body  dto.UpdateAvisoRequest  true  "Campos a corregir"
// @Success      200   {object}  dto.AvisoResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/avisos/{id} [put]
func (h *AvisoHandler) Update(c *fiber.Ctx) error {
	id, ok := parsearID(c, "id")
	if !ok {
		return errorID(c, "id")
	}
	var in dto.UpdateAvisoRequest
	if err := c.BodyParser(&in); err != nil {
		return errorBody(c)
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return errorHTTP(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "aviso no encontrado"})
	}
	return c.JSON(out)
}

// SetPendiente godoc
// @Summary      Marcar o desmarcar un aviso
// @Tags         avisos
// @Accept       json
// @Param        id    path  int  true  "ID del aviso"
// @Param        body  body  dto.SetPendienteRequest  true  "Nuevo estado"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/avisos/{id}/pendiente [put]
func (h *AvisoHandler) SetPendiente(c *fiber.Ctx) error {
	id, ok := parsearID(c, "id")
	if !ok {
		return errorID(c, "id")
	}
	var in dto.SetPendienteRequest
	if err := c.BodyParser(&in); err != nil {
		return errorBody(c)
	}
	if err := h.uc.SetPendiente(id, in.Pendiente); err != nil {
		return errorHTTP(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete godoc
// @Summary      Eliminar un aviso
// @Tags         avisos
// @Param        id  path  int  true  "ID del aviso"
// @Success      204
// @Router       /api/avisos/{id} [delete]
func (h *AvisoHandler) Delete(c *fiber.Ctx) error {
	id, ok := parsearID(c, "id")
	if !ok {
		return errorID(c, "id")
	}
	if err := h.uc.Delete(id); err != nil {
		return errorHTTP(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// PedidoHandler maneja las peticiones HTTP de los pedidos a proveedor.
type PedidoHandler struct {
	uc *usecase.PedidoUseCase
}

// NewPedidoHandler construye el handler.
func NewPedidoHandler(uc *usecase.PedidoUseCase) *PedidoHandler {
	return &PedidoHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar pedido a proveedor
// @Tags         pedidos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePedidoRequest  true  "Datos del pedido"
// @Success      201   {object}  dto.PedidoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/pedidos [post]
func (h *PedidoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePedidoRequest
	if err := c.BodyParser(&in); err != nil {
		return errorBody(c)
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return errorHTTP(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar pedidos
// @Tags         pedidos
// @Produce      json
// @Param        estado  query  string  false  "pendiente, recibido o cancelado"
// @Success      200     {object}  dto.PedidoListResponse
// @Router       /api/pedidos [get]
func (h *PedidoHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Query("estado"))
	if err != nil {
		return errorHTTP(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar un pedido o cambiar su estado
// @Tags         pedidos
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del pedido"
// @Param        body  body  dto.UpdatePedidoRequest  true  "Cambios"
// @Success      200   {object}  dto.PedidoResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/pedidos/{id} [put]
func (h *PedidoHandler) Update(c *fiber.Ctx) error {
	id, ok := parsearID(c, "id")
	if !ok {
		return errorID(c, "id")
	}
	var in dto.UpdatePedidoRequest
	if err := c.BodyParser(&in); err != nil {
		return errorBody(c)
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return errorHTTP(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "pedido no encontrado"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar un pedido
// @Tags         pedidos
// @Param        id  path  int  true  "ID del pedido"
// @Success      204
// @Router       /api/pedidos/{id} [delete]
func (h *PedidoHandler) Delete(c *fiber.Ctx) error {
	id, ok := parsearID(c, "id")
	if !ok {
		return errorID(c, "id")
	}
	if err := h.uc.Delete(id); err != nil {
		return errorHTTP(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
