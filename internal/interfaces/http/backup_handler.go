package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/comexa/stock-control-api/internal/application/usecase"
)

// BackupHandler maneja respaldo, restauración y reinicio del estado.
type BackupHandler struct {
	uc *usecase.BackupUseCase
}

// NewBackupHandler construye el handler.
func NewBackupHandler(uc *usecase.BackupUseCase) *BackupHandler {
	return &BackupHandler{uc: uc}
}

// Export godoc
// @Summary      Exportar el respaldo completo (cinco colecciones + fecha)
// @Tags         backup
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.BackupDocument
// @Router       /api/backup [get]
func (h *BackupHandler) Export(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="respaldo-comexa.json"`)
	return c.JSON(h.uc.Export())
}

// Restore godoc
// @Summary      Restaurar un respaldo (sobrescribe las cinco colecciones)
// @Description  Valida la forma del documento completa antes de tocar el
//               estado; un respaldo malformado deja todo como estaba.
// @Tags         backup
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/backup/restore [post]
func (h *BackupHandler) Restore(c *fiber.Ctx) error {
	if err := h.uc.Restore(c.Context(), c.Body()); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "respaldo restaurado"})
}

// Reset godoc
// @Summary      Borrar todo el estado y volver al de fábrica
// @Tags         backup
// @Security     Bearer
// @Produce      json
// @Router       /api/backup/reset [post]
func (h *BackupHandler) Reset(c *fiber.Ctx) error {
	if err := h.uc.Reset(c.Context()); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "estado reiniciado"})
}
