package jackpot

import (
	"jackpot/database"
	"jackpot/helpers"
	"jackpot/models"
	"jackpot/services"

	"github.com/gofiber/fiber/v2"
)

// Atual devolve o jackpot corrente de cada (sede, modalidade): somatório das
// contribuições menos os prêmios pagos, nunca negativo, em 2 casas. A
// agregação é feita no banco, por group-by em cada razão, e fundida em
// memória.
func Atual(c *fiber.Ctx) error {
	var entradas []services.LedgerTotal
	if err := database.DB.Model(&models.Entrada{}).
		Select("sede_id, modalidade, COALESCE(SUM(valor_jackpot), 0) AS total").
		Group("sede_id, modalidade").
		Scan(&entradas).Error; err != nil {
		return helpers.JSONInternal(c, "FAILED_TO_AGGREGATE_ENTRADAS")
	}

	var saidas []services.LedgerTotal
	if err := database.DB.Model(&models.Saida{}).
		Select("sede_id, modalidade, COALESCE(SUM(premio), 0) AS total").
		Group("sede_id, modalidade").
		Scan(&saidas).Error; err != nil {
		return helpers.JSONInternal(c, "FAILED_TO_AGGREGATE_SAIDAS")
	}

	var sedes []models.Sede
	if err := database.DB.Find(&sedes).Error; err != nil {
		return helpers.JSONInternal(c, "FAILED_TO_FETCH_SEDES")
	}
	nomes := make(map[uint]string, len(sedes))
	for _, sede := range sedes {
		nomes[sede.ID] = sede.Nome
	}

	totais := services.CombineJackpotTotais(entradas, saidas, nomes)
	return helpers.JSONSuccess(c, "Jackpot atual retrieved successfully", totais)
}
