package analytics

import (
	"math"

	"github.com/shopspring/decimal"
)

func safeDivide(a, b float64) float64 {
	if math.IsNaN(a) || math.IsNaN(b) || math.IsInf(a, 0) || math.IsInf(b, 0) {
		return 0
	}
	if math.Abs(b) < 1e-9 {
		return 0
	}
	return a / b
}

// percentOf returns delta/base*100, or 0 when the base is zero.
func percentOf(delta, base float64) float64 {
	return round2(safeDivide(delta, base) * 100)
}

func round2(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

// sum adds in decimal space so that totals like 0.1+0.2 do not drift.
func sum(values ...float64) float64 {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(decimal.NewFromFloat(v))
	}
	f, _ := total.Round(2).Float64()
	return f
}

func sub(a, b float64) float64 {
	f, _ := decimal.NewFromFloat(a).Sub(decimal.NewFromFloat(b)).Round(2).Float64()
	return f
}

func average(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(decimal.NewFromFloat(v))
	}
	f, _ := total.Div(decimal.NewFromInt(int64(len(values)))).Round(2).Float64()
	return f
}
