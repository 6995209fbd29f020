package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/comexa/stock-control-api/internal/application/appstate"
	appinventory "github.com/comexa/stock-control-api/internal/application/inventory"
	"github.com/comexa/stock-control-api/internal/application/ports"
	"github.com/comexa/stock-control-api/internal/application/usecase"
	"github.com/comexa/stock-control-api/internal/domain/ownership"
	infraai "github.com/comexa/stock-control-api/internal/infrastructure/ai"
	"github.com/comexa/stock-control-api/internal/infrastructure/blobstore"
	infrapdf "github.com/comexa/stock-control-api/internal/infrastructure/pdf"
	httpRouter "github.com/comexa/stock-control-api/internal/interfaces/http"
	"github.com/comexa/stock-control-api/pkg/config"
	"github.com/comexa/stock-control-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	var store ports.BlobStore
	switch cfg.Store.Driver {
	case "postgres":
		pgStore, err := blobstore.NewPostgresStore(ctx, cfg.Store.DatabaseURL)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pgStore.Close()
		store = pgStore
	case "memory":
		store = blobstore.NewMemoryStore()
	default:
		fileStore, err := blobstore.NewFileStore(cfg.Store.DataDir)
		if err != nil {
			log.Fatal().Err(err).Str("dir", cfg.Store.DataDir).Msg("almacén de archivos")
		}
		store = fileStore
	}

	state := appstate.New(store)
	if err := state.Load(ctx); err != nil {
		log.Fatal().Err(err).Msg("cargar estado persistido")
	}

	resolver := ownership.NewResolver(nil)

	geminiSvc := infraai.NewGeminiService(cfg.AI.GeminiAPIKey, cfg.AI.GeminiModel)
	if cfg.AI.GeminiAPIKey == "" {
		log.Warn().Msg("GEMINI_API_KEY no configurada; la extracción de reportes devolverá error")
	}
	pdfGenerator := infrapdf.NewMarotoServiceReport()

	authUC := usecase.NewAuthUseCase(cfg.Auth, cfg.JWT)
	stockUC := appinventory.NewStockUseCase(state, resolver)
	technicianUC := usecase.NewTechnicianUseCase(state)
	importUC := usecase.NewImportUseCase(state)
	queryUC := usecase.NewQueryUseCase(state)
	backupUC := usecase.NewBackupUseCase(state)
	extractionUC := usecase.NewExtractionUseCase(state, geminiSvc, resolver)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		BodyLimit:    25 * 1024 * 1024, // cargas de workbooks y reportes en base64
		ReadTimeout:  time.Second * 30,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Comexa Stock Control API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		StockUC:      stockUC,
		TechnicianUC: technicianUC,
		ImportUC:     importUC,
		QueryUC:      queryUC,
		BackupUC:     backupUC,
		ExtractionUC: extractionUC,
		PDFGenerator: pdfGenerator,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
