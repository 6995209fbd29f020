package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/comexa/stock-control-api/internal/application/dto"
	"github.com/comexa/stock-control-api/internal/application/inventory"
)

// StockHandler maneja el libro de inventario y sus mutaciones.
type StockHandler struct {
	uc *inventory.StockUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *inventory.StockUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// List godoc
// @Summary      Listar el libro de inventario completo
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.StockLine
// @Router       /api/stock [get]
func (h *StockHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.uc.ListStock())
}

// AvailableFor godoc
// @Summary      Líneas consumibles por un técnico (pool EJECUTOR + dueño efectivo)
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   entity.StockLine
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/available/{technicianId} [get]
func (h *StockHandler) AvailableFor(c *fiber.Ctx) error {
	lines, err := h.uc.AvailableFor(c.Params("technicianId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(lines)
}

// Import godoc
// @Summary      Importación masiva de stock para un dueño
// @Description  Los archivos de stock no traen dueño: el operador lo elige y
//               viaja en el campo "owner" del formulario. Reemplaza todas las
//               líneas previas del dueño efectivo.
// @Tags         stock
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        owner  formData  string  true  "Dueño nominal (nombre de técnico o EJECUTOR)"
// @Param        files  formData  file    true  "Archivos de stock (CSV o Excel)"
// @Success      200  {object}  dto.StockImportResult
// @Failure      412  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/stock/import [post]
func (h *StockHandler) Import(c *fiber.Ctx) error {
	files, err := readUploadedFiles(c, "files")
	if err != nil {
		return respondError(c, err)
	}
	result, err := h.uc.ImportStock(c.Context(), c.FormValue("owner"), files)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(result)
}

// Transfer godoc
// @Summary      Transferir stock entre dueños
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TransferRequest  true  "sourceOwner, destOwner, items"
// @Success      200   {object}  dto.TransferResult
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/stock/transfer [post]
func (h *StockHandler) Transfer(c *fiber.Ctx) error {
	var in dto.TransferRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	result, err := h.uc.Transfer(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(result)
}

// DirectAdd godoc
// @Summary      Alta directa de material (compra/solicitud)
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DirectAddRequest  true  "technicianId, category, device, model, quantity"
// @Success      201   {object}  dto.DirectAddResult
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stock/direct-add [post]
func (h *StockHandler) DirectAdd(c *fiber.Ctx) error {
	var in dto.DirectAddRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	result, err := h.uc.DirectAdd(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(result)
}
