package domain

// Granularity define o agrupamento temporal das séries do dashboard
type Granularity string

const (
	GranularityDay   Granularity = "day"
	GranularityWeek  Granularity = "week"
	GranularityMonth Granularity = "month"
)

// Valid indica se a granularidade é uma das suportadas
func (g Granularity) Valid() bool {
	switch g {
	case GranularityDay, GranularityWeek, GranularityMonth:
		return true
	}
	return false
}

// DashboardSummary agrega os totais exibidos nos cards e tabelas do dashboard
type DashboardSummary struct {
	TotalRevenue        float64              `json:"total_revenue"`
	CurrentMonthRevenue float64              `json:"current_month_revenue"`
	AccountCount        int                  `json:"account_count"`
	Distribution        []AccountRevenueItem `json:"distribution"`
	Ranked              []Record             `json:"ranked"`
}

// AccountRevenueItem é uma fatia da distribuição de receita por conta
type AccountRevenueItem struct {
	AccountName string  `json:"account_name"`
	Revenue     float64 `json:"revenue"`
	Percent     float64 `json:"percent"` // Percentual do total filtrado (0 quando o total é 0)
}

// TimeSeriesEntry é um ponto da série temporal, com a receita somada por conta
type TimeSeriesEntry struct {
	Period   string             `json:"period"` // Rótulo do bucket (dia, "<ano>年第<n>周" ou "<ano>年<mês>月")
	Accounts map[string]float64 `json:"accounts"`
}
