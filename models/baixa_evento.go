package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// BaixaEvento é uma baixa manual lançada pela gerência, fora do cálculo do
// jackpot. O campo Extra guarda detalhes livres enviados pelo painel.
type BaixaEvento struct {
	gorm.Model

	Data   time.Time `gorm:"index" json:"data"`
	SedeID uint      `gorm:"index" json:"sedeId"`
	Sede   Sede      `json:"sede"`

	Valor      float64        `gorm:"type:numeric(12,2)" json:"valor"`
	Observacao string         `gorm:"size:255" json:"observacao"`
	Extra      datatypes.JSON `gorm:"type:jsonb" json:"extra,omitempty"`
}
