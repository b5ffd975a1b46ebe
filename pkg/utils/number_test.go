package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
	assert.Equal(t, 10.25, RoundWithTwoDecimalPlace(10.25))
	assert.Equal(t, 10.26, RoundWithTwoDecimalPlace(10.256))
	assert.Equal(t, 100.0, RoundWithTwoDecimalPlace(99.999))
}

func TestCoerceRevenue(t *testing.T) {
	scenarios := []struct {
		name     string
		value    any
		expected float64
	}{
		{name: "float64", value: 100.5, expected: 100.5},
		{name: "int", value: 42, expected: 42},
		{name: "int64", value: int64(7), expected: 7},
		{name: "string numérica", value: "99.9", expected: 99.9},
		{name: "string não numérica", value: "abc", expected: 0},
		{name: "nulo", value: nil, expected: 0},
		{name: "negativo", value: -10.0, expected: 0},
		{name: "string negativa", value: "-5", expected: 0},
		{name: "NaN", value: math.NaN(), expected: 0},
		{name: "infinito", value: math.Inf(1), expected: 0},
		{name: "tipo não suportado", value: []string{"100"}, expected: 0},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.name, func(t *testing.T) {
			assert.Equal(t, scenario.expected, CoerceRevenue(scenario.value))
		})
	}
}
