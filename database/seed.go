package database

import (
	"jackpot/models"

	"gorm.io/gorm"
)

var seedSedes = []models.Sede{
	{Nome: "Alphaville", RetiradasPadrao: 500},
	{Nome: "Jd. América", RetiradasPadrao: 750},
}

var seedPremiacoes = []models.PremiacaoTabela{
	// Texas – Quadra (fixo)
	{Modalidade: models.ModalidadeTexas, Blind: "1-2", Mao: "Quadra", Tipo: models.TipoFixo, Valor: 50},
	{Modalidade: models.ModalidadeTexas, Blind: "5-5", Mao: "Quadra", Tipo: models.TipoFixo, Valor: 200},
	{Modalidade: models.ModalidadeTexas, Blind: "5-10", Mao: "Quadra", Tipo: models.TipoFixo, Valor: 500},
	{Modalidade: models.ModalidadeTexas, Blind: "10-25+", Mao: "Quadra", Tipo: models.TipoFixo, Valor: 1000},

	// Texas – Straight Flush e Royal
	{Modalidade: models.ModalidadeTexas, Blind: "1-2", Mao: "Straight Flush", Tipo: models.TipoPercentual, Valor: 0.009},
	{Modalidade: models.ModalidadeTexas, Blind: "1-2", Mao: "Royal Straight Flush", Tipo: models.TipoPercentual, Valor: 0.025},
	{Modalidade: models.ModalidadeTexas, Blind: "5-5", Mao: "Straight Flush", Tipo: models.TipoPercentual, Valor: 0.0135},
	{Modalidade: models.ModalidadeTexas, Blind: "5-5", Mao: "Royal Straight Flush", Tipo: models.TipoPercentual, Valor: 0.0375},

	// Omaha – Straight Flush e Royal
	{Modalidade: models.ModalidadeOmaha, Blind: "1-2", Mao: "Straight Flush", Tipo: models.TipoPercentual, Valor: 0.012},
	{Modalidade: models.ModalidadeOmaha, Blind: "1-2", Mao: "Royal Straight Flush", Tipo: models.TipoPercentual, Valor: 0.035},
	{Modalidade: models.ModalidadeOmaha, Blind: "5-5", Mao: "Straight Flush", Tipo: models.TipoPercentual, Valor: 0.018},
	{Modalidade: models.ModalidadeOmaha, Blind: "5-5", Mao: "Royal Straight Flush", Tipo: models.TipoPercentual, Valor: 0.042},
}

// Seed cria as sedes e a tabela de premiação quando ainda não existem. Pode
// rodar em todo start sem duplicar linhas.
func Seed(db *gorm.DB) error {
	for _, sede := range seedSedes {
		if err := db.Where(models.Sede{Nome: sede.Nome}).
			FirstOrCreate(&sede).Error; err != nil {
			return err
		}
	}

	for _, regra := range seedPremiacoes {
		if err := db.Where(models.PremiacaoTabela{
			Modalidade: regra.Modalidade,
			Blind:      regra.Blind,
			Mao:        regra.Mao,
		}).Attrs(models.PremiacaoTabela{
			Tipo:  regra.Tipo,
			Valor: regra.Valor,
		}).FirstOrCreate(&regra).Error; err != nil {
			return err
		}
	}

	return nil
}
