package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/comexa/stock-control-api/internal/application/dto"
	"github.com/comexa/stock-control-api/internal/application/inventory"
	"github.com/comexa/stock-control-api/internal/application/ports"
	"github.com/comexa/stock-control-api/internal/application/usecase"
	"github.com/comexa/stock-control-api/internal/domain"
)

// InstallationHandler maneja el registro de instalaciones, su versión
// imprimible y la extracción asistida de reportes.
type InstallationHandler struct {
	stock      *inventory.StockUseCase
	query      *usecase.QueryUseCase
	extraction *usecase.ExtractionUseCase
	pdf        ports.ServiceReportPDFGenerator
}

// NewInstallationHandler construye el handler.
func NewInstallationHandler(stock *inventory.StockUseCase, query *usecase.QueryUseCase, extraction *usecase.ExtractionUseCase, pdf ports.ServiceReportPDFGenerator) *InstallationHandler {
	return &InstallationHandler{stock: stock, query: query, extraction: extraction, pdf: pdf}
}

// Register godoc
// @Summary      Registrar una instalación que consume stock
// @Tags         installations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.InstallationRequest  true  "technicianId, branchId, items, garantía"
// @Success      201   {object}  dto.InstallationResult
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/installations [post]
func (h *InstallationHandler) Register(c *fiber.Ctx) error {
	var in dto.InstallationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	result, err := h.stock.RegisterInstallation(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(result)
}

// ServiceReportPDF godoc
// @Summary      Versión imprimible (PDF) de un registro del historial
// @Tags         installations
// @Security     Bearer
// @Produce      application/pdf
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/installations/{id}/pdf [get]
func (h *InstallationHandler) ServiceReportPDF(c *fiber.Ctx) error {
	log := h.query.HistoryByID(c.Params("id"))
	if log == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "registro no encontrado"})
	}
	doc, err := h.pdf.GenerateServiceReport(c.Context(), log)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="registro-`+log.ID+`.pdf"`)
	return c.Send(doc)
}

// extractRequest documento a extraer, en base64.
type extractRequest struct {
	FileBase64 string `json:"fileBase64"`
	MimeType   string `json:"mimeType"`
}

// Extract godoc
// @Summary      Extraer datos de un reporte de servicio (imagen/PDF) con IA
// @Description  Devuelve una sugerencia de pre-llenado del formulario de
//               instalación, cruzada contra técnicos, sucursales y stock
//               cargados. Nunca muta el libro: el operador confirma.
// @Tags         installations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Success      200  {object}  dto.InstallationPrefill
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/installations/extract [post]
func (h *InstallationHandler) Extract(c *fiber.Ctx) error {
	var in extractRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	prefill, err := h.extraction.ExtractAndPrefill(c.Context(), in.FileBase64, in.MimeType)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return respondError(c, err)
		}
		// fallo del oráculo: genérico hacia el operador, sin tocar su captura
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "EXTRACTION_FAILED", Message: "la extracción del reporte falló; capture los datos manualmente"})
	}
	return c.JSON(prefill)
}
