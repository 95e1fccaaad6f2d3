package services

import (
	"sort"

	"jackpot/models"

	"github.com/shopspring/decimal"
)

// LedgerTotal é uma linha do group-by de entradas ou saídas: o somatório de
// valor_jackpot ou premio por (sede, modalidade).
type LedgerTotal struct {
	SedeID     uint
	Modalidade string
	Total      float64
}

// JackpotTotal é uma linha do relatório de jackpot atual.
type JackpotTotal struct {
	SedeID     uint    `json:"-"`
	Sede       string  `json:"sede"`
	Modalidade string  `json:"modalidade"`
	Jackpot    float64 `json:"jackpot"`
}

// CombineJackpotTotais funde os somatórios dos dois razões em um relatório
// por (sede, modalidade): contribuições menos prêmios, nunca negativo,
// arredondado a 2 casas. Precisa bater número a número com SumJackpot sobre
// os mesmos registros.
func CombineJackpotTotais(entradas, saidas []LedgerTotal, nomes map[uint]string) []JackpotTotal {
	type chave struct {
		sedeID     uint
		modalidade string
	}

	agg := map[chave]decimal.Decimal{}
	for _, e := range entradas {
		k := chave{e.SedeID, models.NormalizeModalidade(e.Modalidade)}
		agg[k] = agg[k].Add(decimal.NewFromFloat(e.Total))
	}
	for _, s := range saidas {
		k := chave{s.SedeID, models.NormalizeModalidade(s.Modalidade)}
		agg[k] = agg[k].Sub(decimal.NewFromFloat(s.Total))
	}

	totais := make([]JackpotTotal, 0, len(agg))
	for k, total := range agg {
		if total.IsNegative() {
			total = decimal.Zero
		}
		jackpot, _ := total.Round(2).Float64()
		totais = append(totais, JackpotTotal{
			SedeID:     k.sedeID,
			Sede:       nomes[k.sedeID],
			Modalidade: k.modalidade,
			Jackpot:    jackpot,
		})
	}

	sort.Slice(totais, func(i, j int) bool {
		if totais[i].Sede != totais[j].Sede {
			return totais[i].Sede < totais[j].Sede
		}
		return totais[i].Modalidade < totais[j].Modalidade
	})
	return totais
}
