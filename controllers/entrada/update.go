package entrada

import (
	"errors"

	"jackpot/database"
	"jackpot/helpers"
	"jackpot/models"
	"jackpot/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type UpdateRequest struct {
	Modalidade      *string  `json:"modalidade"`
	ValorArrecadado *float64 `json:"valorArrecadado"`
}

// Update altera modalidade e/ou valor arrecadado de uma entrada. Quando o
// valor muda, retirada e contribuição são recalculadas contra a retirada
// padrão da sede.
func Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helpers.JSONBadRequest(c, "INVALID_ID")
	}

	var req UpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONBadRequest(c, "INVALID_JSON")
	}

	if req.Modalidade == nil && req.ValorArrecadado == nil {
		return helpers.JSONBadRequest(c, "NOTHING_TO_UPDATE")
	}

	var atual models.Entrada
	if err := database.DB.Preload("Sede").First(&atual, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JSONNotFound(c, "ENTRADA_NOT_FOUND")
		}
		return helpers.JSONInternal(c, "FAILED_TO_FETCH_ENTRADA")
	}

	if req.Modalidade != nil {
		atual.Modalidade = models.NormalizeModalidade(*req.Modalidade)
	}

	if req.ValorArrecadado != nil {
		retirada, valorJackpot := services.SplitContribution(*req.ValorArrecadado, atual.Sede.RetiradasPadrao)
		atual.ValorArrecadado = *req.ValorArrecadado
		atual.RetiradaEventos = retirada
		atual.ValorJackpot = valorJackpot
	}

	if err := database.DB.Save(&atual).Error; err != nil {
		return helpers.JSONInternal(c, "FAILED_TO_UPDATE_ENTRADA")
	}

	return helpers.JSONSuccess(c, "Entrada updated successfully", atual)
}
