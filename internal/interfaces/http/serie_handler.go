package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/facturacion-pe/internal/application/billing"
	"github.com/jhoicas/facturacion-pe/internal/application/dto"
)

// SerieHandler numeración correlativa.
type SerieHandler struct {
	uc *billing.FacturacionUseCase
}

// NewSerieHandler construye el handler.
func NewSerieHandler(uc *billing.FacturacionUseCase) *SerieHandler {
	return &SerieHandler{uc: uc}
}

// Siguiente GET /api/series/:serie/siguiente?ultimo=0
func (h *SerieHandler) Siguiente(c *fiber.Ctx) error {
	ultimo, err := strconv.Atoi(c.Query("ultimo", "0"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "ultimo debe ser un entero"})
	}
	out, err := h.uc.SiguienteNumero(c.Params("serie"), ultimo)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
