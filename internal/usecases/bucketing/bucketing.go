// Package bucketing normaliza datas nos buckets de dia, semana e mês
// usados pelo calendário e pelas séries do dashboard.
package bucketing

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateKey formata a data como YYYY-MM-DD a partir dos campos de calendário
// locais, nunca por conversão UTC, para evitar deslocamento de um dia.
func DateKey(t time.Time) string {
	return fmt.Sprintf("%04d-%02d-%02d", t.Year(), int(t.Month()), t.Day())
}

// WeekKey formata o bucket semanal como "<ano>年第<n>周". A semana 1 começa
// sempre em 1º de janeiro: é uma partição simples por contagem de dias,
// e não a numeração de semanas ISO-8601.
func WeekKey(t time.Time) string {
	week := (t.YearDay()-1)/7 + 1
	return fmt.Sprintf("%d年第%d周", t.Year(), week)
}

// MonthKey formata o bucket mensal como "<ano>年<mês>月"
func MonthKey(t time.Time) string {
	return fmt.Sprintf("%d年%02d月", t.Year(), int(t.Month()))
}

// WeekOrdinal extrai o número da semana de um rótulo produzido por WeekKey.
// É o critério de ordenação das séries semanais: apenas o número da semana,
// ignorando o ano.
func WeekOrdinal(label string) int {
	start := strings.Index(label, "第")
	end := strings.Index(label, "周")
	if start < 0 || end < 0 || end <= start {
		return 0
	}

	number, err := strconv.Atoi(label[start+len("第") : end])
	if err != nil {
		return 0
	}

	return number
}
