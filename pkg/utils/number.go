package utils

import (
	"math"
	"strconv"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// CoerceRevenue converte um valor de receita vindo de JSON para float64.
// Valores ausentes, não numéricos ou negativos resultam em 0, sem erro.
func CoerceRevenue(v any) float64 {
	var revenue float64

	switch value := v.(type) {
	case float64:
		revenue = value
	case int:
		revenue = float64(value)
	case int64:
		revenue = float64(value)
	case string:
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0
		}
		revenue = parsed
	default:
		return 0
	}

	if revenue < 0 || math.IsNaN(revenue) || math.IsInf(revenue, 0) {
		return 0
	}

	return revenue
}
