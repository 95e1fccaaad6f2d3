package entrada

import (
	"errors"
	"time"

	"jackpot/database"
	"jackpot/helpers"
	"jackpot/models"
	"jackpot/services"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CreateRequest struct {
	Data            *string  `json:"data"`
	SedeID          uint     `json:"sedeId"`
	Modalidade      string   `json:"modalidade"`
	ValorArrecadado *float64 `json:"valorArrecadado"`
	Gerente         string   `json:"gerente"`
}

// Create registra uma nova entrada, aplicando a retirada padrão da sede e
// creditando o restante no jackpot.
func Create(c *fiber.Ctx) error {
	var req CreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONBadRequest(c, "INVALID_JSON")
	}

	if req.SedeID == 0 || req.Modalidade == "" || req.ValorArrecadado == nil || req.Gerente == "" {
		return helpers.JSONBadRequest(c, "SEDE_ID_MODALIDADE_VALOR_AND_GERENTE_REQUIRED")
	}

	var sede models.Sede
	if err := database.DB.First(&sede, req.SedeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JSONNotFound(c, "SEDE_NOT_FOUND")
		}
		return helpers.JSONInternal(c, "FAILED_TO_FETCH_SEDE")
	}

	quando, err := parseData(req.Data)
	if err != nil {
		return helpers.JSONBadRequest(c, "INVALID_DATA_USE_RFC3339_OR_OMIT")
	}

	retirada, valorJackpot := services.SplitContribution(*req.ValorArrecadado, sede.RetiradasPadrao)

	nova := models.Entrada{
		Data:            quando,
		SedeID:          sede.ID,
		Modalidade:      models.NormalizeModalidade(req.Modalidade),
		ValorArrecadado: *req.ValorArrecadado,
		RetiradaEventos: retirada,
		ValorJackpot:    valorJackpot,
		Gerente:         req.Gerente,
		RefID:           uuid.New().String(),
	}

	if err := database.DB.Create(&nova).Error; err != nil {
		return helpers.JSONInternal(c, "FAILED_TO_CREATE_ENTRADA")
	}
	nova.Sede = sede

	return helpers.JSONCreated(c, "Entrada registered successfully", nova)
}

// parseData aceita RFC3339; ausente = agora.
func parseData(raw *string) (time.Time, error) {
	if raw == nil || *raw == "" {
		return time.Now(), nil
	}
	return time.Parse(time.RFC3339, *raw)
}
