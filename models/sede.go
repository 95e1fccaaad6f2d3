package models

import "gorm.io/gorm"

type Sede struct {
	gorm.Model

	Nome string `gorm:"uniqueIndex;size:64" json:"nome"`
	// Valor fixo retirado de cada entrada antes de alimentar o jackpot.
	RetiradasPadrao float64 `json:"retiradasPadrao"`

	Entradas []Entrada `gorm:"foreignKey:SedeID" json:"-"`
	Saidas   []Saida   `gorm:"foreignKey:SedeID" json:"-"`
}
