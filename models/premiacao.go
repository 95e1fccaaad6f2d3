package models

import "gorm.io/gorm"

const (
	TipoFixo       = "fixo"
	TipoPercentual = "percentual"
)

// PremiacaoTabela mapeia (modalidade, blind, mao) para uma regra de prêmio:
// valor absoluto quando tipo=fixo, fração do jackpot atual quando
// tipo=percentual. A combinação das três chaves é única e a busca é sempre
// por igualdade exata.
type PremiacaoTabela struct {
	gorm.Model

	Modalidade string `gorm:"size:16;index:idx_regra_premiacao,unique" json:"modalidade"`
	Blind      string `gorm:"size:16;index:idx_regra_premiacao,unique" json:"blind"`
	Mao        string `gorm:"size:32;index:idx_regra_premiacao,unique" json:"mao"`

	Tipo  string  `gorm:"size:16" json:"tipo"`
	Valor float64 `gorm:"type:numeric(12,6)" json:"valor"`
}
