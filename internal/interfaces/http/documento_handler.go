package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/facturacion-pe/internal/application/billing"
	"github.com/jhoicas/facturacion-pe/internal/application/dto"
)

// DocumentoHandler validación de documentos de identidad.
type DocumentoHandler struct {
	uc *billing.FacturacionUseCase
}

// NewDocumentoHandler construye el handler.
func NewDocumentoHandler(uc *billing.FacturacionUseCase) *DocumentoHandler {
	return &DocumentoHandler{uc: uc}
}

// Validar POST /api/documentos/validar
// Responde 200 con es_valido y errores; un documento inválido no es un error HTTP.
func (h *DocumentoHandler) Validar(c *fiber.Ctx) error {
	var in dto.ValidarDocumentoRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	return c.JSON(h.uc.ValidarDocumento(in))
}
