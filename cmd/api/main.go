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

	"github.com/jhoicas/facturacion-pe/internal/application/billing"
	infrapdf "github.com/jhoicas/facturacion-pe/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/facturacion-pe/internal/interfaces/http"
	"github.com/jhoicas/facturacion-pe/pkg/config"
	"github.com/jhoicas/facturacion-pe/pkg/logger"
	"github.com/jhoicas/facturacion-pe/pkg/sunat"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Bool("ruc_prueba", cfg.Facturacion.PermitirRUCPrueba).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		if cfg.App.Env == "production" {
			log.Fatal().Msg("JWT_SECRET es obligatorio en producción")
		}
		log.Warn().Msg("JWT_SECRET vacío: todas las rutas /api responderán 401")
	}

	validador := sunat.Validador{PermitirRUCsDePrueba: cfg.Facturacion.PermitirRUCPrueba}

	// PDF: representación impresa del comprobante
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	facturacionUC := billing.NewFacturacionUseCase(validador, cfg.Facturacion.Moneda, pdfGenerator, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(cfg.HTTP.SwaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.HTTP.SwaggerFile,
			Path:     "docs",
			Title:    "Facturación PE API",
		}))
	} else {
		log.Warn().Str("archivo", cfg.HTTP.SwaggerFile).Msg("swagger no disponible")
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		AppName:       cfg.App.Name,
		FacturacionUC: facturacionUC,
		JWTSecret:     cfg.JWT.Secret,
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
