package models

import (
	"time"

	"gorm.io/gorm"
)

// Saida registra um prêmio pago a partir do jackpot de uma sede/modalidade.
type Saida struct {
	gorm.Model

	Data time.Time `gorm:"index" json:"data"`
	// Hora do prêmio em texto livre ("21:35"), opcional.
	Hora *string `gorm:"size:16" json:"hora"`

	SedeID     uint   `gorm:"index" json:"sedeId"`
	Sede       Sede   `json:"sede"`
	Modalidade string `gorm:"size:16;index" json:"modalidade"`

	Mesa    string `gorm:"size:32" json:"mesa"`
	Mao     string `gorm:"size:32" json:"mao"`
	Jogador string `gorm:"size:64" json:"jogador"`

	// Preenchida somente quando a regra aplicada é percentual.
	PorcentagemRoleta *float64 `gorm:"type:numeric(10,6)" json:"porcentagemRoleta"`
	Premio            float64  `gorm:"type:numeric(12,2)" json:"premio"`

	Feito   bool   `gorm:"default:false" json:"feito"`
	Gerente string `gorm:"size:64" json:"gerente"`
	RefID   string `gorm:"size:64;index" json:"refId"`
}
