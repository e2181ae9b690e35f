package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/facturacion-pe/internal/application/billing"
	"github.com/jhoicas/facturacion-pe/internal/application/dto"
)

// MontoHandler formato de montos.
type MontoHandler struct {
	uc *billing.FacturacionUseCase
}

// NewMontoHandler construye el handler.
func NewMontoHandler(uc *billing.FacturacionUseCase) *MontoHandler {
	return &MontoHandler{uc: uc}
}

// Formatear POST /api/montos/formatear
func (h *MontoHandler) Formatear(c *fiber.Ctx) error {
	var in dto.FormatearMontoRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.FormatearMonto(in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
