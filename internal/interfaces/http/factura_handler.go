package http

import (
	"io"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/albertmmateo-blip/entretelas-api/internal/application/dto"
	"github.com/albertmmateo-blip/entretelas-api/internal/application/usecase"
)

// FacturaHandler maneja las peticiones HTTP del archivador de facturas.
type FacturaHandler struct {
	uc *usecase.FacturaUseCase
}

// NewFacturaHandler construye el handler.
func NewFacturaHandler(uc *usecase.FacturaUseCase) *FacturaHandler {
	return &FacturaHandler{uc: uc}
}

// Upload godoc
// @Summary      Archivar una factura con su documento
// @Tags         facturas
// @Accept       multipart/form-data
// @Produce      json
// @Param        documento      formData  file    true   "PDF u ofimático"
// @Param        entidad_id     formData  int     true   "Entidad"
// @Param        tipo           formData  string  true   "compra, venta, arreglos o contabilidad"
// @Param        fecha          formData  string  false  "Fecha del documento"
// @Param        importe        formData  string  false  "Importe, formato libre"
// @Param        importe_ivare  formData  string  false  "Importe con IVA/RE, formato libre"
// @Param        vencimiento    formData  string  false  "Vencimiento"
// @Success      201  {object}  dto.FacturaResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/facturas [post]
func (h *FacturaHandler) Upload(c *fiber.Ctx) error {
	var in dto.UploadFacturaRequest
	if err := c.BodyParser(&in); err != nil {
		return errorBody(c)
	}
	fh, err := c.FormFile("documento")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "documento requerido"})
	}
	f, err := fh.Open()
	if err != nil {
		return errorHTTP(c, err)
	}
	defer f.Close()
	documento, err := io.ReadAll(f)
	if err != nil {
		return errorHTTP(c, err)
	}
	out, err := h.uc.Upload(in, fh.Filename, documento)
	if err != nil {
		return errorHTTP(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener metadatos de una factura
// @Tags         facturas
// @Produce      json
// @Param        id   path  int  true  "ID de la factura"
// @Success      200  {object}  dto.FacturaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/facturas/{id} [get]
func (h *FacturaHandler) GetByID(c *fiber.Ctx) error {
	id, ok := parsearID(c, "id")
	if !ok {
		return errorID(c, "id")
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return errorHTTP(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factura no encontrada"})
	}
	return c.JSON(out)
}

// Documento godoc
// @Summary      Descargar el documento archivado
// @Tags         facturas
// @Produce      application/octet-stream
// @Param        id  path  int  true  "ID de la factura"
// @Success      200  {file}  file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/facturas/{id}/documento [get]
func (h *FacturaHandler) Documento(c *fiber.Ctx) error {
	id, ok := parsearID(c, "id")
	if !ok {
		return errorID(c, "id")
	}
	nombre, documento, err := h.uc.GetDocumento(id)
	if err != nil {
		return errorHTTP(c, err)
	}
	if documento == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factura no encontrada"})
	}
	c.Set(fiber.HeaderContentDisposition, `attachment; filename*=UTF-8''`+url.PathEscape(nombre))
	return c.Send(documento)
}

// ListForEntidad godoc
// @Summary      Listar las facturas de una entidad
// @Tags         facturas
// @Produce      json
// @Param        id    path   int     true   "ID de la entidad"
// @Param        tipo  query  string  false  "Filtrar por tipo"
// @Success      200   {object}  dto.FacturaListResponse
// @Router       /api/entidades/{id}/facturas [get]
func (h *FacturaHandler) ListForEntidad(c *fiber.Ctx) error {
	id, ok := parsearID(c, "id")
	if !ok {
		return errorID(c, "id")
	}
	out, err := h.uc.ListForEntidad(id, c.Query("tipo"))
	if err != nil {
		return errorHTTP(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar las facturas de un tipo y ejercicio
// @Tags         facturas
// @Produce      json
// @Param        tipo  query  string  true   "compra, venta, arreglos o contabilidad"
// @Param        anio  query  int     true   "Ejercicio"
// @Success      200   {object}  dto.FacturaListResponse
// @Router       /api/facturas [get]
func (h *FacturaHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListByTipoYAnio(c.Query("tipo"), c.QueryInt("anio"))
	if err != nil {
		return errorHTTP(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar metadatos de una factura
// @Tags         facturas
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la factura"
// @Param        body  body  dto.UpdateFacturaRequest  true  "Metadatos"
// @Success      200   {object}  dto.FacturaResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/facturas/{id} [put]
func (h *FacturaHandler) Update(c *fiber.Ctx) error {
	id, ok := parsearID(c, "id")
	if !ok {
		return errorID(c, "id")
	}
	var in dto.UpdateFacturaRequest
	if err := c.BodyParser(&in); err != nil {
		return errorBody(c)
	}
	out, err := h.uc.UpdateMetadata(id, in)
	if err != nil {
		return errorHTTP(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factura no encontrada"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar una factura con su documento
// @Tags         facturas
// @Param        id  path  int  true  "ID de la factura"
// @Success      204
// @Router       /api/facturas/{id} [delete]
func (h *FacturaHandler) Delete(c *fiber.Ctx) error {
	id, ok := parsearID(c, "id")
	if !ok {
		return errorID(c, "id")
	}
	if err := h.uc.Delete(id); err != nil {
		return errorHTTP(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Resumen godoc
// @Summary      Resumen trimestral de facturas
// @Tags         resumenes
// @Produce      json
// @Param        tipo  query  string  true  "compra, venta, arreglos o contabilidad"
// @Param        anio  query  int     true  "Ejercicio"
// @Success      200   {object}  finanzas.ResumenAnual
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/resumenes/facturas [get]
func (h *FacturaHandler) Resumen(c *fiber.Ctx) error {
	out, err := h.uc.ResumenTrimestral(c.Query("tipo"), c.QueryInt("anio"))
	if err != nil {
		return errorHTTP(c, err)
	}
	return c.JSON(out)
}

// ResumenPDF godoc
// @Summary      Resumen trimestral de facturas en PDF
// @Tags         resumenes
// @Produce      application/pdf
// @Param        tipo  query  string  true  "compra, venta, arreglos o contabilidad"
// @Param        anio  query  int     true  "Ejercicio"
// @Success      200  {file}  file
// @Router       /api/resumenes/facturas/pdf [get]
func (h *FacturaHandler) ResumenPDF(c *fiber.Ctx) error {
	pdfBytes, nombre, err := h.uc.ResumenTrimestralPDF(c.Context(), c.Query("tipo"), c.QueryInt("anio"))
	if err != nil {
		return errorHTTP(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+nombre+`"`)
	return c.Send(pdfBytes)
}
