package evento

import (
	"time"

	"jackpot/database"
	"jackpot/helpers"
	"jackpot/models"

	"github.com/gofiber/fiber/v2"
)

type RetiradaRow struct {
	Data            time.Time `json:"data"`
	RetiradaEventos float64   `json:"retiradaEventos"`
	Sede            string    `json:"sede"`
}

// Retiradas lista as retiradas automáticas de cada entrada com o nome da
// sede, para a prestação de contas dos eventos.
func Retiradas(c *fiber.Ctx) error {
	var linhas []RetiradaRow
	if err := database.DB.Model(&models.Entrada{}).
		Select("entradas.data, entradas.retirada_eventos, sedes.nome AS sede").
		Joins("JOIN sedes ON sedes.id = entradas.sede_id").
		Order("entradas.data DESC").
		Scan(&linhas).Error; err != nil {
		return helpers.JSONInternal(c, "FAILED_TO_FETCH_RETIRADAS")
	}

	return helpers.JSONSuccess(c, "Retiradas retrieved successfully", linhas)
}
