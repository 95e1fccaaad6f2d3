package evento

import (
	"errors"
	"time"

	"jackpot/database"
	"jackpot/helpers"
	"jackpot/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type BaixaRequest struct {
	SedeID     uint           `json:"sedeId"`
	Valor      *float64       `json:"valor"`
	Observacao string         `json:"observacao"`
	Extra      datatypes.JSON `json:"extra"`
}

// ListBaixas lista as baixas manuais, mais recentes primeiro.
func ListBaixas(c *fiber.Ctx) error {
	var baixas []models.BaixaEvento
	if err := database.DB.Preload("Sede").
		Order("data DESC").
		Find(&baixas).Error; err != nil {
		return helpers.JSONInternal(c, "FAILED_TO_FETCH_BAIXAS")
	}

	return helpers.JSONSuccess(c, "Baixas retrieved successfully", baixas)
}

// CreateBaixa registra uma baixa manual de evento para uma sede.
func CreateBaixa(c *fiber.Ctx) error {
	var req BaixaRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONBadRequest(c, "INVALID_JSON")
	}

	if req.SedeID == 0 || req.Valor == nil {
		return helpers.JSONBadRequest(c, "SEDE_ID_AND_VALOR_REQUIRED")
	}

	var sede models.Sede
	if err := database.DB.First(&sede, req.SedeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JSONNotFound(c, "SEDE_NOT_FOUND")
		}
		return helpers.JSONInternal(c, "FAILED_TO_FETCH_SEDE")
	}

	baixa := models.BaixaEvento{
		Data:       time.Now(),
		SedeID:     sede.ID,
		Valor:      *req.Valor,
		Observacao: req.Observacao,
		Extra:      req.Extra,
	}

	if err := database.DB.Create(&baixa).Error; err != nil {
		return helpers.JSONInternal(c, "FAILED_TO_CREATE_BAIXA")
	}
	baixa.Sede = sede

	return helpers.JSONCreated(c, "Baixa registered successfully", baixa)
}
