package services

import (
	"math"

	"jackpot/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SplitContribution aplica a regra de retirada da sede sobre o valor
// arrecadado: a sede retém até retiradaPadrao e o restante alimenta o
// jackpot. Entradas negativas ou não numéricas contam como zero.
func SplitContribution(valorArrecadado, retiradaPadrao float64) (retirada, jackpot float64) {
	bruto := sanitize(valorArrecadado)
	padrao := sanitize(retiradaPadrao)

	retirada = math.Min(bruto, padrao)
	jackpot = math.Max(bruto-retirada, 0)
	return retirada, jackpot
}

func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// SumJackpot soma as contribuições e subtrai os prêmios de um mesmo
// (sede, modalidade). ignorarSaidaID > 0 desconsidera a própria saída ao
// recalcular uma edição, para que o valor antigo não seja descontado duas
// vezes. O resultado nunca é negativo e independe da ordem dos registros.
func SumJackpot(entradas []models.Entrada, saidas []models.Saida, ignorarSaidaID uint) float64 {
	total := decimal.Zero
	for _, e := range entradas {
		total = total.Add(decimal.NewFromFloat(e.ValorJackpot))
	}
	for _, s := range saidas {
		if ignorarSaidaID != 0 && s.ID == ignorarSaidaID {
			continue
		}
		total = total.Sub(decimal.NewFromFloat(s.Premio))
	}

	if total.IsNegative() {
		return 0
	}
	f, _ := total.Float64()
	return f
}

// RoundCurrency arredonda para 2 casas decimais, half away from zero. Usada
// sempre que um valor monetário é finalizado para gravação ou relatório.
func RoundCurrency(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

// CurrentJackpot lê os dois razões de (sedeID, modalidade) e devolve o saldo
// atual. Deve rodar dentro da mesma transação que vai gravar a saída.
func CurrentJackpot(tx *gorm.DB, sedeID uint, modalidade string, ignorarSaidaID uint) (float64, error) {
	var entradas []models.Entrada
	if err := tx.Where("sede_id = ? AND modalidade = ?", sedeID, modalidade).Find(&entradas).Error; err != nil {
		return 0, err
	}

	q := tx.Where("sede_id = ? AND modalidade = ?", sedeID, modalidade)
	if ignorarSaidaID != 0 {
		q = q.Where("id <> ?", ignorarSaidaID)
	}
	var saidas []models.Saida
	if err := q.Find(&saidas).Error; err != nil {
		return 0, err
	}

	return SumJackpot(entradas, saidas, 0), nil
}

// FindRegra busca a regra de premiação por igualdade exata nas três chaves.
// Devolve gorm.ErrRecordNotFound quando a combinação não existe na tabela.
func FindRegra(tx *gorm.DB, modalidade, blind, mao string) (models.PremiacaoTabela, error) {
	var regra models.PremiacaoTabela
	err := tx.Where("modalidade = ? AND blind = ? AND mao = ?", modalidade, blind, mao).
		First(&regra).Error
	return regra, err
}

// ResolvePremio converte a regra encontrada em prêmio. Regras fixas pagam o
// valor da tabela como está; regras percentuais pagam a fração do jackpot
// atual arredondada a 2 casas e informam a porcentagem aplicada.
func ResolvePremio(regra models.PremiacaoTabela, jackpotAtual float64) (premio float64, porcentagem *float64) {
	switch regra.Tipo {
	case models.TipoPercentual:
		premio, _ = decimal.NewFromFloat(jackpotAtual).
			Mul(decimal.NewFromFloat(regra.Valor)).
			Round(2).
			Float64()
		v := regra.Valor
		porcentagem = &v
	default:
		premio = regra.Valor
	}
	return premio, porcentagem
}
