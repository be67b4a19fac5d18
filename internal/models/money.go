package models

import "github.com/shopspring/decimal"

// RoundMoney округляет до 2 знаков (половина от нуля)
func RoundMoney(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

// Total суммирует значения без накопления ошибки float
type Total struct {
	sum decimal.Decimal
}

func (t *Total) Add(v float64) {
	t.sum = t.sum.Add(decimal.NewFromFloat(v))
}

func (t Total) Rounded() float64 {
	return RoundMoney(t.sum)
}
