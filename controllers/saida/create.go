package saida

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
	"gorm.io/gorm/clause"
)

type CreateRequest struct {
	Data       *string `json:"data"`
	Hora       *string `json:"hora"`
	SedeID     uint    `json:"sedeId"`
	Modalidade string  `json:"modalidade"`
	Mesa       string  `json:"mesa"`
	Mao        string  `json:"mao"`
	Jogador    string  `json:"jogador"`
	Feito      bool    `json:"feito"`
	Gerente    string  `json:"gerente"`
}

// Create registra uma saída: resolve a regra de premiação para
// (modalidade, mesa, mao), calcula o prêmio sobre o jackpot atual e grava.
// Leitura e gravação rodam na mesma transação, com lock na sede, para que
// saídas concorrentes da mesma sede não calculem sobre um saldo velho.
func Create(c *fiber.Ctx) error {
	var req CreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONBadRequest(c, "INVALID_JSON")
	}

	if req.SedeID == 0 || req.Modalidade == "" || req.Mesa == "" || req.Mao == "" || req.Gerente == "" {
		return helpers.JSONBadRequest(c, "SEDE_ID_MODALIDADE_MESA_MAO_AND_GERENTE_REQUIRED")
	}

	quando, err := parseData(req.Data)
	if err != nil {
		return helpers.JSONBadRequest(c, "INVALID_DATA_USE_RFC3339_OR_OMIT")
	}

	modalidade := models.NormalizeModalidade(req.Modalidade)

	tx := database.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var sede models.Sede
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&sede, req.SedeID).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JSONNotFound(c, "SEDE_NOT_FOUND")
		}
		return helpers.JSONInternal(c, "FAILED_TO_FETCH_SEDE")
	}

	regra, err := services.FindRegra(tx, modalidade, req.Mesa, req.Mao)
	if err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JSONNotFound(c, "REGRA_PREMIACAO_NOT_FOUND")
		}
		return helpers.JSONInternal(c, "FAILED_TO_FETCH_REGRA")
	}

	jackpotAtual, err := services.CurrentJackpot(tx, sede.ID, modalidade, 0)
	if err != nil {
		tx.Rollback()
		return helpers.JSONInternal(c, "FAILED_TO_COMPUTE_JACKPOT")
	}

	premio, porcentagem := services.ResolvePremio(regra, jackpotAtual)

	jogador := req.Jogador
	if jogador == "" {
		jogador = "PREMIADO"
	}

	nova := models.Saida{
		Data:              quando,
		Hora:              req.Hora,
		SedeID:            sede.ID,
		Modalidade:        modalidade,
		Mesa:              req.Mesa,
		Mao:               req.Mao,
		Jogador:           jogador,
		PorcentagemRoleta: porcentagem,
		Premio:            premio,
		Feito:             req.Feito,
		Gerente:           req.Gerente,
		RefID:             uuid.New().String(),
	}

	if err := tx.Create(&nova).Error; err != nil {
		tx.Rollback()
		return helpers.JSONInternal(c, "FAILED_TO_CREATE_SAIDA")
	}

	if err := tx.Commit().Error; err != nil {
		return helpers.JSONInternal(c, "COMMIT_FAILED")
	}
	nova.Sede = sede

	return helpers.JSONCreated(c, "Saida registered successfully", nova)
}

func parseData(raw *string) (time.Time, error) {
	if raw == nil || *raw == "" {
		return time.Now(), nil
	}
	return time.Parse(time.RFC3339, *raw)
}
