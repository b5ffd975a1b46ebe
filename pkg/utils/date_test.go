package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2024-01-05")

	assert.NoError(t, err)
	if assert.NotNil(t, date) {
		assert.Equal(t, 2024, date.Year())
		assert.Equal(t, time.January, date.Month())
		assert.Equal(t, 5, date.Day())
	}
}

func TestParseDate_EmptyIsAbsent(t *testing.T) {
	date, err := ParseDate("")

	assert.NoError(t, err)
	assert.Nil(t, date)
}

func TestParseDate_InvalidFormat(t *testing.T) {
	scenarios := []string{"05-01-2024", "2024/01/05", "2024-13-01", "amanhã"}

	for _, raw := range scenarios {
		date, err := ParseDate(raw)

		assert.Error(t, err, raw)
		assert.Nil(t, date)
	}
}
