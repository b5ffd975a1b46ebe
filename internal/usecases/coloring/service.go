// Package coloring atribui cores estáveis às contas a partir do conjunto de registros
package coloring

import (
	"unicode/utf16"

	"github.com/vfg2006/revenue-tracker-api/internal/domain"
)

// AssignColors deriva o mapa de cores das contas a partir dos registros.
// A cor escolhida explicitamente pelo usuário em qualquer registro da conta
// tem prioridade; as demais contas recebem cores da paleta na ordem de
// primeira aparição, sem repetir uma cor já usada. Quando a paleta esgota,
// as cores são reutilizadas por indexação modular.
func AssignColors(records []domain.Record) domain.AccountColorMap {
	// Contas na ordem de primeira aparição (estável, não ordenada)
	accountOrder := make([]string, 0)
	seen := make(map[string]bool)

	for _, record := range records {
		if record.AccountName != "" && !seen[record.AccountName] {
			seen[record.AccountName] = true
			accountOrder = append(accountOrder, record.AccountName)
		}
	}

	colorMap := make(domain.AccountColorMap, len(accountOrder))

	// Primeiro, vincular as cores escolhidas explicitamente pelo usuário.
	// Empate entre registros da mesma conta: vence o primeiro na ordem de iteração.
	for _, account := range accountOrder {
		for _, record := range records {
			if record.AccountName != account || record.AccountColor == nil {
				continue
			}

			colorMap[account] = *record.AccountColor
			break
		}
	}

	// Para as contas sem cor explícita, atribuir cores da paleta em ordem,
	// pulando as que já estão em uso (comparação pelo fundo). Com a paleta
	// esgotada a indexação modular reutiliza cores entre as contas excedentes.
	colorIndex := 0
	for _, account := range accountOrder {
		if _, ok := colorMap[account]; ok {
			continue
		}

		for skipped := 0; skipped < len(MacaronPalette); skipped++ {
			if !usedBackground(colorMap, MacaronPalette[colorIndex%len(MacaronPalette)].Background) {
				break
			}
			colorIndex++
		}

		colorMap[account] = MacaronPalette[colorIndex%len(MacaronPalette)]
		colorIndex++
	}

	return colorMap
}

// ColorFor resolve a cor de uma conta. Nunca falha: um nome vazio ou uma
// conta desconhecida sempre resulta em alguma cor da paleta.
func ColorFor(accountName string, colorMap domain.AccountColorMap) domain.Color {
	if accountName == "" {
		return MacaronPalette[0]
	}

	if color, ok := colorMap[accountName]; ok {
		return color
	}

	// Conta ainda não vista pelo mapa: usar a primeira cor livre da paleta
	for _, color := range MacaronPalette {
		if !usedBackground(colorMap, color.Background) {
			return color
		}
	}

	// Paleta esgotada: hash determinístico do nome da conta, aceitando colisões
	return MacaronPalette[hashIndex(accountName, len(MacaronPalette))]
}

func usedBackground(colorMap domain.AccountColorMap, background string) bool {
	for _, color := range colorMap {
		if color.Background == background {
			return true
		}
	}
	return false
}

// hashIndex calcula `hash = code + ((hash << 5) - hash)` sobre as unidades
// UTF-16 do nome, com aritmética de 32 bits, e reduz pelo tamanho da paleta
func hashIndex(name string, size int) int {
	var hash int32
	for _, code := range utf16.Encode([]rune(name)) {
		hash = int32(code) + ((hash << 5) - hash)
	}

	value := int64(hash)
	if value < 0 {
		value = -value
	}

	return int(value % int64(size))
}
