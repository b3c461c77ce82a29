package utils

import "github.com/shopspring/decimal"

// Round2 zaokragla kwoty do 2 miejsc przez decimal, zeby uniknac
// artefaktow float64 przy sumowaniu.
func Round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

// NetFromGross liczy netto z brutto dla danej stawki VAT.
func NetFromGross(gross, vatRate float64) float64 {
	g := decimal.NewFromFloat(gross)
	divisor := decimal.NewFromInt(1).Add(decimal.NewFromFloat(vatRate).Div(decimal.NewFromInt(100)))
	f, _ := g.DivRound(divisor, 2).Float64()
	return f
}
