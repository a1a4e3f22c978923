package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/albertmmateo-blip/entretelas-api/internal/application/dto"
	"github.com/albertmmateo-blip/entretelas-api/internal/application/usecase"
)

// ArregloHandler maneja las peticiones HTTP del libro de arreglos.
type ArregloHandler struct {
	uc *usecase.ArregloUseCase
}

// NewArregloHandler construye el handler.
func NewArregloHandler(uc *usecase.ArregloUseCase) *ArregloHandler {
	return &ArregloHandler{uc: uc}
}

// Create godoc
// @Summary      Apuntar un vale en el libro de arreglos
// @Tags         arreglos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateArregloRequest  true  "Datos del vale"
// @Success      201   {object}  dto.ArregloResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/arreglos [post]
func (h *ArregloHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateArregloRequest
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
// @Summary      Obtener un vale por ID
// @Tags         arreglos
// @Produce      json
// @Param        id   path  int  true  "ID del vale"
// @Success      200  {object}  dto.ArregloResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/arreglos/{id} [get]
func (h *ArregloHandler) GetByID(c *fiber.Ctx) error {
	id, ok := parsearID(c, "id")
	if !ok {
		return errorID(c, "id")
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return errorHTTP(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "vale no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar vales del libro
// @Tags         arreglos
// @Produce      json
// @Param        carpeta  query  string  false  "Entretelas, Isa o Loli"
// @Param        anio     query  int     false  "Ejercicio"
// @Success      200      {object}  dto.ArregloListResponse
// @Router       /api/arreglos [get]
func (h *ArregloHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Query("carpeta"), c.QueryInt("anio"))
	if err != nil {
		return errorHTTP(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Corregir un vale
// @Tags         arreglos
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del vale"
// @Param        body  body  dto.UpdateArregloRequest  true  "Campos a corregir"
// @Success      200   {object}  dto.ArregloResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/arreglos/{id} [put]
func (h *ArregloHandler) Update(c *fiber.Ctx) error {
	id, ok := parsearID(c, "id")
	if !ok {
		return errorID(c, "id")
	}
	var in dto.UpdateArregloRequest
	if err := c.BodyParser(&in); err != nil {
		return errorBody(c)
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return errorHTTP(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "vale no encontrado"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar un vale
// @Tags         arreglos
// @Param        id  path  int  true  "ID del vale"
// @Success      204
// @Router       /api/arreglos/{id} [delete]
func (h *ArregloHandler) Delete(c *fiber.Ctx) error {
	id, ok := parsearID(c, "id")
	if !ok {
		return errorID(c, "id")
	}
	if err := h.uc.Delete(id); err != nil {
		return errorHTTP(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ResumenMensual godoc
// @Summary      Resumen mensual del libro de arreglos
// @Tags         resumenes
// @Produce      json
// @Param        carpeta  query  string  false  "Entretelas, Isa o Loli"
// @Param        anio     query  int     false  "Ejercicio"
// @Success      200      {object}  dto.ResumenMensualResponse
// @Router       /api/resumenes/arreglos/mensual [get]
func (h *ArregloHandler) ResumenMensual(c *fiber.Ctx) error {
	out, err := h.uc.ResumenMensual(c.Query("carpeta"), c.QueryInt("anio"))
	if err != nil {
		return errorHTTP(c, err)
	}
	return c.JSON(out)
}

// ResumenTrimestral godoc
// @Summary      Resumen trimestral del libro de arreglos
// @Tags         resumenes
// @Produce      json
// @Param        anio  query  int  true  "Ejercicio"
// @Success      200   {object}  finanzas.ResumenAnualArreglos
// @Router       /api/resumenes/arreglos [get]
func (h *ArregloHandler) ResumenTrimestral(c *fiber.Ctx) error {
	out, err := h.uc.ResumenTrimestral(c.QueryInt("anio"))
	if err != nil {
		return errorHTTP(c, err)
	}
	return c.JSON(out)
}

// ResumenPDF godoc
// @Summary      Resumen trimestral de arreglos en PDF
// @Tags         resumenes
// @Produce      application/pdf
// @Param        anio  query  int  true  "Ejercicio"
// @Success      200  {file}  file
// @Router       /api/resumenes/arreglos/pdf [get]
func (h *ArregloHandler) ResumenPDF(c *fiber.Ctx) error {
	pdfBytes, nombre, err := h.uc.ResumenTrimestralPDF(c.Context(), c.QueryInt("anio"))
	if err != nil {
		return errorHTTP(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+nombre+`"`)
	return c.Send(pdfBytes)
}

// Reparto godoc
// @Summary      Reparto 65/35 de una carpeta
// @Tags         resumenes
// @Produce      json
// @Param        carpeta  query  string  true   "Entretelas, Isa o Loli"
// @Param        anio     query  int     false  "Ejercicio"
// @Success      200      {object}  dto.RepartoResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Router       /api/resumenes/arreglos/reparto [get]
func (h *ArregloHandler) Reparto(c *fiber.Ctx) error {
	out, err := h.uc.Reparto(c.Query("carpeta"), c.QueryInt("anio"))
	if err != nil {
		return errorHTTP(c, err)
	}
	return c.JSON(out)
}
