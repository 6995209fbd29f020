package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/comexa/stock-control-api/internal/application/inventory"
	"github.com/comexa/stock-control-api/internal/application/reports"
	"github.com/comexa/stock-control-api/internal/application/usecase"
)

// ReportsHandler maneja el tablero y los reportes CSV exportables.
type ReportsHandler struct {
	stock *inventory.StockUseCase
	query *usecase.QueryUseCase
}

// NewReportsHandler construye el handler.
func NewReportsHandler(stock *inventory.StockUseCase, query *usecase.QueryUseCase) *ReportsHandler {
	return &ReportsHandler{stock: stock, query: query}
}

func sendCSV(c *fiber.Ctx, filename string, data []byte) error {
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}

// Dashboard godoc
// @Summary      Totales del tablero principal
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardSummary
// @Router       /api/dashboard [get]
func (h *ReportsHandler) Dashboard(c *fiber.Ctx) error {
	return c.JSON(h.query.Dashboard())
}

// InventoryCSV godoc
// @Summary      Exportar el inventario a CSV
// @Tags         reports
// @Security     Bearer
// @Produce      text/csv
// @Router       /api/reports/inventory.csv [get]
func (h *ReportsHandler) InventoryCSV(c *fiber.Ctx) error {
	return sendCSV(c, "inventario.csv", reports.InventoryCSV(h.stock.ListStock()))
}

// HistoryCSV godoc
// @Summary      Exportar el historial a CSV (una fila por item usado)
// @Tags         reports
// @Security     Bearer
// @Produce      text/csv
// @Router       /api/reports/history.csv [get]
func (h *ReportsHandler) HistoryCSV(c *fiber.Ctx) error {
	return sendCSV(c, "historial.csv", reports.HistoryCSV(h.query.History()))
}

// SummaryCSV godoc
// @Summary      Exportar el resumen ejecutivo a CSV
// @Tags         reports
// @Security     Bearer
// @Produce      text/csv
// @Router       /api/reports/summary.csv [get]
func (h *ReportsHandler) SummaryCSV(c *fiber.Ctx) error {
	return sendCSV(c, "resumen.csv", reports.SummaryCSV(h.query.Dashboard()))
}
