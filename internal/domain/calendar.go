package domain

// CalendarCell é uma célula da grade mensal de 42 posições (6 semanas fixas)
type CalendarCell struct {
	Date           string           `json:"date"` // Formato YYYY-MM-DD
	Day            int              `json:"day"`
	InMonth        bool             `json:"in_month"`
	Today          bool             `json:"today"`
	Records        []CalendarRecord `json:"records"`
	HiddenCount    int              `json:"hidden_count"` // Registros ocultos quando a célula não está expandida
	Expanded       bool             `json:"expanded"`
	TotalRecordCnt int              `json:"total_records"`
}

// CalendarRecord é um registro com a cor da conta já resolvida para exibição
type CalendarRecord struct {
	Record
	Color Color `json:"color"`
}

// CalendarMonth é a resposta completa da visão de calendário de um mês
type CalendarMonth struct {
	Year   int             `json:"year"`
	Month  int             `json:"month"`
	Cells  []CalendarCell  `json:"cells"`
	Colors AccountColorMap `json:"colors"`
}
