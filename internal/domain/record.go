// Package domain contém as estruturas de dados do domínio da aplicação
package domain

// Record representa um registro de divulgação (conta, produto, data e receita)
type Record struct {
	ID           string  `json:"id"`
	AccountName  string  `json:"accountName"`
	Product      string  `json:"product"`
	Date         *string `json:"date"` // Formato YYYY-MM-DD; nil = registro pendente (sem data)
	Revenue      float64 `json:"revenue"`
	AccountColor *Color  `json:"accountColor,omitempty"`
}

// HasDate indica se o registro possui uma data agendada
func (r Record) HasDate() bool {
	return r.Date != nil && *r.Date != ""
}

// RecordInput contém os campos de criação/atualização de um registro.
// O ID é atribuído pelo armazenamento remoto na criação.
type RecordInput struct {
	AccountName  string  `json:"accountName"`
	Product      string  `json:"product"`
	Date         *string `json:"date"`
	Revenue      float64 `json:"revenue"`
	AccountColor *Color  `json:"accountColor,omitempty"`
}

// Color é uma tripla de cores hexadecimais usada na renderização de uma conta
type Color struct {
	Background string `json:"bg"`
	Text       string `json:"text"`
	Border     string `json:"border"`
}

// AccountColorMap mapeia nome de conta para a cor resolvida.
// É derivado do conjunto de registros e nunca é persistido.
type AccountColorMap map[string]Color
