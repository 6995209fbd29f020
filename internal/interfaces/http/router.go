package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/comexa/stock-control-api/internal/application/inventory"
	"github.com/comexa/stock-control-api/internal/application/ports"
	"github.com/comexa/stock-control-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *usecase.AuthUseCase
	StockUC      *inventory.StockUseCase
	TechnicianUC *usecase.TechnicianUseCase
	ImportUC     *usecase.ImportUseCase
	QueryUC      *usecase.QueryUseCase
	BackupUC     *usecase.BackupUseCase
	ExtractionUC *usecase.ExtractionUseCase
	PDFGenerator ports.ServiceReportPDFGenerator
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Stock (protegido)
	stockHandler := NewStockHandler(deps.StockUC)
	stock := protected.Group("/stock")
	stock.Get("/", stockHandler.List)
	stock.Get("/available/:technicianId", stockHandler.AvailableFor)
	stock.Post("/import", stockHandler.Import)
	stock.Post("/transfer", stockHandler.Transfer)
	stock.Post("/direct-add", stockHandler.DirectAdd)

	// Instalaciones (protegido)
	installationHandler := NewInstallationHandler(deps.StockUC, deps.QueryUC, deps.ExtractionUC, deps.PDFGenerator)
	installations := protected.Group("/installations")
	installations.Post("/", installationHandler.Register)
	installations.Post("/extract", installationHandler.Extract)
	installations.Get("/:id/pdf", installationHandler.ServiceReportPDF)

	// Plantel, directorio y catálogo (protegido)
	directoryHandler := NewDirectoryHandler(deps.TechnicianUC, deps.ImportUC, deps.QueryUC)
	protected.Get("/technicians", directoryHandler.ListTechnicians)
	protected.Post("/technicians", directoryHandler.AddTechnician)
	protected.Post("/technicians/import", directoryHandler.ImportTechnicians)
	protected.Get("/branches", directoryHandler.ListBranches)
	protected.Post("/branches/import", directoryHandler.ImportBranches)
	protected.Get("/catalog", directoryHandler.Catalog)
	protected.Post("/catalog/import", directoryHandler.ImportCatalog)

	// Historial (protegido)
	historyHandler := NewHistoryHandler(deps.QueryUC, deps.ImportUC)
	history := protected.Group("/history")
	history.Get("/", historyHandler.List)
	history.Get("/:id", historyHandler.GetByID)
	history.Post("/import", historyHandler.Import)

	// Tablero y reportes (protegido)
	reportsHandler := NewReportsHandler(deps.StockUC, deps.QueryUC)
	protected.Get("/dashboard", reportsHandler.Dashboard)
	protected.Get("/reports/inventory.csv", reportsHandler.InventoryCSV)
	protected.Get("/reports/history.csv", reportsHandler.HistoryCSV)
	protected.Get("/reports/summary.csv", reportsHandler.SummaryCSV)

	// Respaldo (protegido)
	backupHandler := NewBackupHandler(deps.BackupUC)
	backup := protected.Group("/backup")
	backup.Get("/", backupHandler.Export)
	backup.Post("/restore", backupHandler.Restore)
	backup.Post("/reset", backupHandler.Reset)
}
