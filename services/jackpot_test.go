package services

import (
	"math"
	"testing"

	"jackpot/models"
)

func TestSplitContribution(t *testing.T) {
	tests := []struct {
		name         string
		bruto        float64
		padrao       float64
		wantRetirada float64
		wantJackpot  float64
	}{
		{"above threshold", 1200, 500, 500, 700},
		{"below threshold", 300, 500, 300, 0},
		{"equal to threshold", 500, 500, 500, 0},
		{"zero collected", 0, 500, 0, 0},
		{"zero threshold", 1200, 0, 0, 1200},
		{"negative collected", -50, 100, 0, 0},
		{"negative threshold", 1200, -500, 0, 1200},
		{"nan collected", math.NaN(), 500, 0, 0},
		{"inf threshold", 1200, math.Inf(1), 0, 1200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			retirada, jackpot := SplitContribution(tt.bruto, tt.padrao)
			if retirada != tt.wantRetirada || jackpot != tt.wantJackpot {
				t.Fatalf("SplitContribution(%v, %v) = (%v, %v), want (%v, %v)",
					tt.bruto, tt.padrao, retirada, jackpot, tt.wantRetirada, tt.wantJackpot)
			}
		})
	}
}

func TestSplitContributionIdentity(t *testing.T) {
	casos := [][2]float64{{0, 0}, {1, 500}, {499.99, 500}, {500, 500}, {500.01, 500}, {12345.67, 750}}
	for _, caso := range casos {
		retirada, jackpot := SplitContribution(caso[0], caso[1])
		if retirada < 0 || jackpot < 0 {
			t.Fatalf("split(%v, %v) produced negative part (%v, %v)", caso[0], caso[1], retirada, jackpot)
		}
		if got := retirada + jackpot; got != caso[0] {
			t.Fatalf("split(%v, %v): retirada+jackpot = %v, want %v", caso[0], caso[1], got, caso[0])
		}
	}
}

func entradasDe(valores ...float64) []models.Entrada {
	entradas := make([]models.Entrada, len(valores))
	for i, v := range valores {
		entradas[i] = models.Entrada{ValorJackpot: v}
	}
	return entradas
}

func saidasDe(valores ...float64) []models.Saida {
	saidas := make([]models.Saida, len(valores))
	for i, v := range valores {
		saidas[i] = models.Saida{Premio: v}
		saidas[i].ID = uint(i + 1)
	}
	return saidas
}

func TestSumJackpot(t *testing.T) {
	entradas := entradasDe(700, 0, 250.50)
	saidas := saidasDe(50, 6.50)

	if got := SumJackpot(entradas, saidas, 0); got != 894 {
		t.Fatalf("SumJackpot = %v, want 894", got)
	}
}

func TestSumJackpotNeverNegative(t *testing.T) {
	entradas := entradasDe(100)
	saidas := saidasDe(80, 90)

	if got := SumJackpot(entradas, saidas, 0); got != 0 {
		t.Fatalf("SumJackpot = %v, want 0 when payouts exceed contributions", got)
	}
	if got := SumJackpot(nil, saidas, 0); got != 0 {
		t.Fatalf("SumJackpot without entradas = %v, want 0", got)
	}
}

func TestSumJackpotOrderIndependent(t *testing.T) {
	entradas := entradasDe(0.1, 0.2, 0.3, 1000, 33.33)
	saidas := saidasDe(10.01, 0.99, 500)

	want := SumJackpot(entradas, saidas, 0)
	for i := 0; i < 10; i++ {
		reversedE := make([]models.Entrada, len(entradas))
		for j := range entradas {
			reversedE[len(entradas)-1-j] = entradas[j]
		}
		reversedS := make([]models.Saida, len(saidas))
		for j := range saidas {
			reversedS[len(saidas)-1-j] = saidas[j]
		}
		if got := SumJackpot(reversedE, reversedS, 0); got != want {
			t.Fatalf("SumJackpot reversed = %v, want %v", got, want)
		}
		entradas, saidas = reversedE, reversedS
	}
}

func TestSumJackpotIgnoraSaida(t *testing.T) {
	entradas := entradasDe(1000)
	saidas := saidasDe(300, 100) // IDs 1 e 2

	if got := SumJackpot(entradas, saidas, 1); got != 900 {
		t.Fatalf("SumJackpot ignoring saida 1 = %v, want 900", got)
	}
	if got := SumJackpot(entradas, saidas, 0); got != 600 {
		t.Fatalf("SumJackpot without exclusion = %v, want 600", got)
	}
}

func TestResolvePremioFixo(t *testing.T) {
	regra := models.PremiacaoTabela{Tipo: models.TipoFixo, Valor: 500}

	for _, jackpot := range []float64{0, 10, 1000000} {
		premio, porcentagem := ResolvePremio(regra, jackpot)
		if premio != 500 {
			t.Fatalf("fixed premio over jackpot %v = %v, want 500", jackpot, premio)
		}
		if porcentagem != nil {
			t.Fatalf("fixed rule must not report porcentagem, got %v", *porcentagem)
		}
	}
}

func TestResolvePremioPercentual(t *testing.T) {
	tests := []struct {
		jackpot float64
		valor   float64
		want    float64
	}{
		{1000, 0.025, 25},
		{650, 0.01, 6.50},
		{1001, 0.0015, 1.50},
		{0, 0.035, 0},
		{333.335, 0.1, 33.33},
	}

	for _, tt := range tests {
		regra := models.PremiacaoTabela{Tipo: models.TipoPercentual, Valor: tt.valor}
		premio, porcentagem := ResolvePremio(regra, tt.jackpot)
		if premio != tt.want {
			t.Fatalf("percent premio(%v × %v) = %v, want %v", tt.jackpot, tt.valor, premio, tt.want)
		}
		if porcentagem == nil || *porcentagem != tt.valor {
			t.Fatalf("percent rule must report porcentagem %v, got %v", tt.valor, porcentagem)
		}
	}
}

func TestRoundCurrency(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{2.345, 2.35},
		{-2.345, -2.35},
		{6.504999, 6.50},
		{25, 25},
		{0.005, 0.01},
	}
	for _, tt := range tests {
		if got := RoundCurrency(tt.in); got != tt.want {
			t.Fatalf("RoundCurrency(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

// Reproduz o ciclo completo: duas entradas, um prêmio fixo, um percentual e a
// edição de uma saída desconsiderando o próprio prêmio.
func TestJackpotLifecycle(t *testing.T) {
	const retiradaPadrao = 500.0

	retirada1, jackpot1 := SplitContribution(1200, retiradaPadrao)
	if retirada1 != 500 || jackpot1 != 700 {
		t.Fatalf("first split = (%v, %v), want (500, 700)", retirada1, jackpot1)
	}

	retirada2, jackpot2 := SplitContribution(300, retiradaPadrao)
	if retirada2 != 300 || jackpot2 != 0 {
		t.Fatalf("second split = (%v, %v), want (300, 0)", retirada2, jackpot2)
	}

	entradas := entradasDe(jackpot1, jackpot2)
	if got := SumJackpot(entradas, nil, 0); got != 700 {
		t.Fatalf("balance before payouts = %v, want 700", got)
	}

	fixa := models.PremiacaoTabela{Tipo: models.TipoFixo, Valor: 50}
	premioFixo, _ := ResolvePremio(fixa, SumJackpot(entradas, nil, 0))

	saidas := saidasDe(premioFixo)
	if got := SumJackpot(entradas, saidas, 0); got != 650 {
		t.Fatalf("balance after fixed payout = %v, want 650", got)
	}

	percentual := models.PremiacaoTabela{Tipo: models.TipoPercentual, Valor: 0.01}
	premioPercentual, _ := ResolvePremio(percentual, SumJackpot(entradas, saidas, 0))
	if premioPercentual != 6.50 {
		t.Fatalf("percent payout = %v, want 6.50", premioPercentual)
	}

	saidas = saidasDe(premioFixo, premioPercentual)
	if got := SumJackpot(entradas, saidas, 0); got != 643.50 {
		t.Fatalf("final balance = %v, want 643.50", got)
	}

	// Edição da saída percentual (ID 2): a base do recálculo exclui o prêmio
	// antigo dela, mas mantém o fixo.
	base := SumJackpot(entradas, saidas, 2)
	if base != 650 {
		t.Fatalf("recompute base excluding self = %v, want 650", base)
	}
	novaRegra := models.PremiacaoTabela{Tipo: models.TipoPercentual, Valor: 0.1}
	novoPremio, _ := ResolvePremio(novaRegra, base)
	if novoPremio != 65 {
		t.Fatalf("recomputed premio = %v, want 65", novoPremio)
	}
}
