package saida

import (
	"jackpot/database"
	"jackpot/helpers"
	"jackpot/models"

	"github.com/gofiber/fiber/v2"
)

// List devolve todas as saídas, mais recentes primeiro.
func List(c *fiber.Ctx) error {
	var saidas []models.Saida
	if err := database.DB.Preload("Sede").
		Order("data DESC").
		Find(&saidas).Error; err != nil {
		return helpers.JSONInternal(c, "FAILED_TO_FETCH_SAIDAS")
	}

	return helpers.JSONSuccess(c, "Saidas retrieved successfully", saidas)
}

// Ultimas devolve as 5 saídas mais recentes, para o painel.
func Ultimas(c *fiber.Ctx) error {
	var saidas []models.Saida
	if err := database.DB.Preload("Sede").
		Order("data DESC").
		Limit(5).
		Find(&saidas).Error; err != nil {
		return helpers.JSONInternal(c, "FAILED_TO_FETCH_SAIDAS")
	}

	return helpers.JSONSuccess(c, "Saidas retrieved successfully", saidas)
}

// PorSede devolve as saídas de uma sede, mais recentes primeiro.
func PorSede(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helpers.JSONBadRequest(c, "INVALID_ID")
	}

	var saidas []models.Saida
	if err := database.DB.Preload("Sede").
		Where("sede_id = ?", id).
		Order("data DESC").
		Find(&saidas).Error; err != nil {
		return helpers.JSONInternal(c, "FAILED_TO_FETCH_SAIDAS")
	}

	return helpers.JSONSuccess(c, "Saidas retrieved successfully", saidas)
}
