package entrada

import (
	"jackpot/database"
	"jackpot/helpers"
	"jackpot/models"

	"github.com/gofiber/fiber/v2"
)

// List devolve todas as entradas, mais recentes primeiro, com a sede.
func List(c *fiber.Ctx) error {
	var entradas []models.Entrada
	if err := database.DB.Preload("Sede").
		Order("data DESC").
		Find(&entradas).Error; err != nil {
		return helpers.JSONInternal(c, "FAILED_TO_FETCH_ENTRADAS")
	}

	return helpers.JSONSuccess(c, "Entradas retrieved successfully", entradas)
}
