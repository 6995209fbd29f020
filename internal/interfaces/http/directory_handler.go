package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/comexa/stock-control-api/internal/application/dto"
	"github.com/comexa/stock-control-api/internal/application/usecase"
)

// DirectoryHandler maneja el plantel de técnicos y el directorio de sucursales.
type DirectoryHandler struct {
	techs   *usecase.TechnicianUseCase
	imports *usecase.ImportUseCase
	query   *usecase.QueryUseCase
}

// NewDirectoryHandler construye el handler.
func NewDirectoryHandler(techs *usecase.TechnicianUseCase, imports *usecase.ImportUseCase, query *usecase.QueryUseCase) *DirectoryHandler {
	return &DirectoryHandler{techs: techs, imports: imports, query: query}
}

// ListTechnicians godoc
// @Summary      Listar el plantel de técnicos
// @Tags         directory
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.Technician
// @Router       /api/technicians [get]
func (h *DirectoryHandler) ListTechnicians(c *fiber.Ctx) error {
	return c.JSON(h.techs.List())
}

// AddTechnician godoc
// @Summary      Alta manual de un técnico
// @Tags         directory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddTechnicianRequest  true  "name, type (NOMINA|EJECUTOR)"
// @Success      201   {object}  entity.Technician
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/technicians [post]
func (h *DirectoryHandler) AddTechnician(c *fiber.Ctx) error {
	var in dto.AddTechnicianRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	tech, err := h.techs.Add(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(tech)
}

// ImportTechnicians godoc
// @Summary      Importar el plantel desde un archivo (reemplaza el actual)
// @Tags         directory
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Plantel (CSV o Excel con columna IDC/NOMBRE)"
// @Success      200   {object}  dto.ImportSummary
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/technicians/import [post]
func (h *DirectoryHandler) ImportTechnicians(c *fiber.Ctx) error {
	files, err := readUploadedFiles(c, "file")
	if err != nil {
		return respondError(c, err)
	}
	summary, err := h.imports.ImportTechnicians(c.Context(), files[0])
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}

// ListBranches godoc
// @Summary      Listar o buscar sucursales por SIRH o nombre
// @Tags         directory
// @Security     Bearer
// @Produce      json
// @Param        q  query  string  false  "Texto a buscar en SIRH o nombre"
// @Success      200  {array}  entity.Branch
// @Router       /api/branches [get]
func (h *DirectoryHandler) ListBranches(c *fiber.Ctx) error {
	return c.JSON(h.query.Branches(c.Query("q")))
}

// ImportBranches godoc
// @Summary      Importar el directorio de sucursales (uno o más archivos)
// @Tags         directory
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        files  formData  file  true  "Directorios (CSV posicional, columnas 0-4)"
// @Success      200   {object}  dto.ImportSummary
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/branches/import [post]
func (h *DirectoryHandler) ImportBranches(c *fiber.Ctx) error {
	files, err := readUploadedFiles(c, "files")
	if err != nil {
		return respondError(c, err)
	}
	summary, err := h.imports.ImportBranches(c.Context(), files)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}

// Catalog godoc
// @Summary      Catálogo de dispositivos por cliente (autocompletado)
// @Tags         directory
// @Security     Bearer
// @Produce      json
// @Param        client  query  string  false  "Filtrar por cliente (BANAMEX, SANTANDER, BANREGIO)"
// @Success      200  {object}  entity.DeviceCatalog
// @Router       /api/catalog [get]
func (h *DirectoryHandler) Catalog(c *fiber.Ctx) error {
	return c.JSON(h.query.Catalog(c.Query("client")))
}

// ImportCatalog godoc
// @Summary      Importar el catálogo de dispositivos (libro Excel multi-hoja)
// @Tags         directory
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Libro con una hoja por cliente"
// @Success      200   {object}  dto.CatalogImportSummary
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/catalog/import [post]
func (h *DirectoryHandler) ImportCatalog(c *fiber.Ctx) error {
	files, err := readUploadedFiles(c, "file")
	if err != nil {
		return respondError(c, err)
	}
	summary, err := h.imports.ImportCatalog(c.Context(), files[0])
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}
