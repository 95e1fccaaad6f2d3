package models

import (
	"time"

	"gorm.io/gorm"
)

// Entrada registra a arrecadação de um evento. Os valores são gravados como
// recebidos; o arredondamento para 2 casas acontece apenas na agregação.
type Entrada struct {
	gorm.Model

	Data       time.Time `gorm:"index" json:"data"`
	SedeID     uint      `gorm:"index" json:"sedeId"`
	Sede       Sede      `json:"sede"`
	Modalidade string    `gorm:"size:16;index" json:"modalidade"`

	ValorArrecadado float64 `json:"valorArrecadado"`
	RetiradaEventos float64 `json:"retiradaEventos"`
	ValorJackpot    float64 `json:"valorJackpot"`

	Gerente string `gorm:"size:64" json:"gerente"`
	RefID   string `gorm:"size:64;index" json:"refId"`
}
