package coloring

import "github.com/vfg2006/revenue-tracker-api/internal/domain"

// MacaronPalette é a paleta fixa de 12 cores disponíveis para as contas.
// A ordem define a prioridade de atribuição automática.
var MacaronPalette = []domain.Color{
	{Background: "#FFB3BA", Text: "#8B4A4F", Border: "#FF9BA3"}, // Rosa claro
	{Background: "#FFDFBA", Text: "#8B6B4F", Border: "#FFD4A3"}, // Amarelo claro
	{Background: "#BAFFC9", Text: "#4F8B5F", Border: "#A3FFB8"}, // Verde claro
	{Background: "#BAE1FF", Text: "#4F6B8B", Border: "#A3D4FF"}, // Azul claro
	{Background: "#E0BBE4", Text: "#6B4F8B", Border: "#D4A3D8"}, // Roxo claro
	{Background: "#FFCCCB", Text: "#8B4F4F", Border: "#FFB3B0"}, // Laranja claro
	{Background: "#B4E4FF", Text: "#4F6B8B", Border: "#A3D4FF"}, // Ciano claro
	{Background: "#C7F5D9", Text: "#4F8B6B", Border: "#B3F0C9"}, // Verde menta
	{Background: "#FFE4E1", Text: "#8B5F5F", Border: "#FFD4D1"}, // Rosa chá
	{Background: "#E6E6FA", Text: "#6B6B8B", Border: "#D4D4F0"}, // Lavanda
	{Background: "#FFF8DC", Text: "#8B8B6B", Border: "#FFF4D4"}, // Bege claro
	{Background: "#F0E68C", Text: "#8B8B4F", Border: "#E6D87A"}, // Cáqui claro
}
