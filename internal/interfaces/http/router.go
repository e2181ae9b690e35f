package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/facturacion-pe/internal/application/billing"
	"github.com/jhoicas/facturacion-pe/internal/application/dto"
	"github.com/jhoicas/facturacion-pe/pkg/jwt"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AppName       string
	FacturacionUC *billing.FacturacionUseCase
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(dto.HealthResponse{Status: "ok", App: deps.AppName})
	})

	api := app.Group("/api")

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	documentos := protected.Group("/documentos")
	documentoHandler := NewDocumentoHandler(deps.FacturacionUC)
	documentos.Post("/validar", documentoHandler.Validar)

	montos := protected.Group("/montos")
	montoHandler := NewMontoHandler(deps.FacturacionUC)
	montos.Post("/formatear", montoHandler.Formatear)

	facturas := protected.Group("/facturas")
	facturaHandler := NewFacturaHandler(deps.FacturacionUC)
	facturas.Post("/totales", facturaHandler.Totales)
	facturas.Post("/validar", facturaHandler.Validar)
	facturas.Post("/pdf", RequireRole(jwt.RoleAdmin, jwt.RoleEmisor), facturaHandler.PDF)

	series := protected.Group("/series")
	serieHandler := NewSerieHandler(deps.FacturacionUC)
	series.Get("/:serie/siguiente", serieHandler.Siguiente)
}
