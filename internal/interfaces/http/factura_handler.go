package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/facturacion-pe/internal/application/billing"
	"github.com/jhoicas/facturacion-pe/internal/application/dto"
	"github.com/jhoicas/facturacion-pe/pkg/jwt"
	"github.com/jhoicas/facturacion-pe/pkg/sunat"
)

// FacturaHandler cálculos, validación y PDF de comprobantes.
type FacturaHandler struct {
	uc *billing.FacturacionUseCase
}

// NewFacturaHandler construye el handler.
func NewFacturaHandler(uc *billing.FacturacionUseCase) *FacturaHandler {
	return &FacturaHandler{uc: uc}
}

// Totales POST /api/facturas/totales
func (h *FacturaHandler) Totales(c *fiber.Ctx) error {
	var in dto.TotalesRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	return c.JSON(h.uc.CalcularTotales(in.Items))
}

// Validar POST /api/facturas/validar
func (h *FacturaHandler) Validar(c *fiber.Ctx) error {
	var f sunat.Factura
	if err := c.BodyParser(&f); err != nil {
		return invalidBody(c)
	}
	return c.JSON(h.uc.ValidarFactura(c.UserContext(), &f))
}

// PDF POST /api/facturas/pdf
// Un emisor solo puede generar comprobantes de su propio RUC; admin, de cualquiera.
func (h *FacturaHandler) PDF(c *fiber.Ctx) error {
	var f sunat.Factura
	if err := c.BodyParser(&f); err != nil {
		return invalidBody(c)
	}
	ruc := GetRUC(c)
	if GetRole(c) == jwt.RoleAdmin {
		ruc = ""
	}
	pdfBytes, filename, err := h.uc.GenerarPDF(c.UserContext(), ruc, &f)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
