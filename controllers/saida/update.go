package saida

import (
	"errors"
	"strings"

	"jackpot/database"
	"jackpot/helpers"
	"jackpot/models"
	"jackpot/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UpdateRequest struct {
	Modalidade *string `json:"modalidade"`
	Mesa       *string `json:"mesa"`
	Mao        *string `json:"mao"`
}

// Update altera modalidade, mesa e/ou mão de uma saída e recalcula o prêmio
// para a nova combinação. O jackpot usado no recálculo desconsidera a
// própria saída, senão o prêmio antigo seria descontado contra si mesmo.
func Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helpers.JSONBadRequest(c, "INVALID_ID")
	}

	var req UpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONBadRequest(c, "INVALID_JSON")
	}

	if req.Modalidade == nil && req.Mesa == nil && req.Mao == nil {
		return helpers.JSONBadRequest(c, "NOTHING_TO_UPDATE")
	}

	tx := database.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var atual models.Saida
	if err := tx.First(&atual, id).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JSONNotFound(c, "SAIDA_NOT_FOUND")
		}
		return helpers.JSONInternal(c, "FAILED_TO_FETCH_SAIDA")
	}

	var sede models.Sede
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&sede, atual.SedeID).Error; err != nil {
		tx.Rollback()
		return helpers.JSONInternal(c, "FAILED_TO_FETCH_SEDE")
	}

	modalidade := models.NormalizeModalidade(atual.Modalidade)
	if req.Modalidade != nil {
		modalidade = models.NormalizeModalidade(*req.Modalidade)
	}

	mesa := atual.Mesa
	if req.Mesa != nil {
		mesa = *req.Mesa
	}
	if mesa = strings.TrimSpace(mesa); mesa == "" {
		tx.Rollback()
		return helpers.JSONBadRequest(c, "MESA_REQUIRED")
	}

	mao := atual.Mao
	if req.Mao != nil {
		mao = *req.Mao
	}
	if mao = strings.TrimSpace(mao); mao == "" {
		tx.Rollback()
		return helpers.JSONBadRequest(c, "MAO_REQUIRED")
	}

	regra, err := services.FindRegra(tx, modalidade, mesa, mao)
	if err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JSONNotFound(c, "REGRA_PREMIACAO_NOT_FOUND")
		}
		return helpers.JSONInternal(c, "FAILED_TO_FETCH_REGRA")
	}

	jackpotAtual, err := services.CurrentJackpot(tx, atual.SedeID, modalidade, atual.ID)
	if err != nil {
		tx.Rollback()
		return helpers.JSONInternal(c, "FAILED_TO_COMPUTE_JACKPOT")
	}

	premio, porcentagem := services.ResolvePremio(regra, jackpotAtual)

	atual.Modalidade = modalidade
	atual.Mesa = mesa
	atual.Mao = mao
	atual.PorcentagemRoleta = porcentagem
	atual.Premio = premio

	if err := tx.Save(&atual).Error; err != nil {
		tx.Rollback()
		return helpers.JSONInternal(c, "FAILED_TO_UPDATE_SAIDA")
	}

	if err := tx.Commit().Error; err != nil {
		return helpers.JSONInternal(c, "COMMIT_FAILED")
	}
	atual.Sede = sede

	return helpers.JSONSuccess(c, "Saida updated successfully", atual)
}
