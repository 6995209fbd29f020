package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/comexa/stock-control-api/internal/application/dto"
	"github.com/comexa/stock-control-api/internal/application/usecase"
)

// HistoryHandler maneja el historial de servicios.
type HistoryHandler struct {
	query   *usecase.QueryUseCase
	imports *usecase.ImportUseCase
}

// NewHistoryHandler construye el handler.
func NewHistoryHandler(query *usecase.QueryUseCase, imports *usecase.ImportUseCase) *HistoryHandler {
	return &HistoryHandler{query: query, imports: imports}
}

// List godoc
// @Summary      Listar el historial de servicios
// @Tags         history
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.InstallationLog
// @Router       /api/history [get]
func (h *HistoryHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.query.History())
}

// GetByID godoc
// @Summary      Obtener un registro del historial
// @Tags         history
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  entity.InstallationLog
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/history/{id} [get]
func (h *HistoryHandler) GetByID(c *fiber.Ctx) error {
	log := h.query.HistoryByID(c.Params("id"))
	if log == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "registro no encontrado"})
	}
	return c.JSON(log)
}

// Import godoc
// @Summary      Importar el concentrado histórico de servicios
// @Description  Añade al historial existente; los archivos sin columnas
//               obligatorias se reportan como advertencia sin abortar el resto.
// @Tags         history
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        files  formData  file  true  "Concentrados (CSV o Excel con encabezado)"
// @Success      200   {object}  dto.ImportSummary
// @Router       /api/history/import [post]
func (h *HistoryHandler) Import(c *fiber.Ctx) error {
	files, err := readUploadedFiles(c, "files")
	if err != nil {
		return respondError(c, err)
	}
	summary, err := h.imports.ImportHistory(c.Context(), files)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}
