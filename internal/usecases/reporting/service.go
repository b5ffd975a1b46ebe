// Package reporting agrega os registros nos totais, distribuições e séries
// temporais exibidos no dashboard.
package reporting

import (
	"sort"
	"time"

	"github.com/vfg2006/revenue-tracker-api/internal/domain"
	"github.com/vfg2006/revenue-tracker-api/internal/usecases/bucketing"
	"github.com/vfg2006/revenue-tracker-api/pkg/utils"
)

// Reporter define a interface de agregação consumida pelos handlers
type Reporter interface {
	Summarize(records []domain.Record, filters Filters) *domain.DashboardSummary
	TimeSeries(records []domain.Record, granularity domain.Granularity, filters Filters) []domain.TimeSeriesEntry
}

// Filters restringe o conjunto de registros por intervalo de datas (bordas
// inclusivas) e por contas selecionadas (conjunto vazio = sem filtro)
type Filters struct {
	Start    *time.Time
	End      *time.Time
	Accounts []string
}

// Matches indica se o registro passa pelos filtros.
// Um registro sem data falha qualquer intervalo não vazio.
func (f Filters) Matches(record domain.Record) bool {
	if len(f.Accounts) > 0 {
		found := false
		for _, account := range f.Accounts {
			if record.AccountName == account {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if f.Start == nil && f.End == nil {
		return true
	}

	date, err := utils.ParseDate(stringValue(record.Date))
	if err != nil || date == nil {
		return false
	}

	if f.Start != nil && date.Before(*f.Start) {
		return false
	}
	if f.End != nil && date.After(*f.End) {
		return false
	}

	return true
}

type Service struct {
	now func() time.Time
}

func NewService() Reporter {
	return &Service{now: time.Now}
}

// Summarize calcula os totais do dashboard sobre o conjunto filtrado.
// Nunca falha: registros sem data ou com receita inválida degradam para 0.
func (s *Service) Summarize(records []domain.Record, filters Filters) *domain.DashboardSummary {
	filtered := filterRecords(records, filters)

	var total float64
	for _, record := range filtered {
		total += revenueOf(record)
	}

	now := s.now()
	var currentMonth float64
	for _, record := range filtered {
		date, err := utils.ParseDate(stringValue(record.Date))
		if err != nil || date == nil {
			continue
		}
		if date.Year() == now.Year() && date.Month() == now.Month() {
			currentMonth += revenueOf(record)
		}
	}

	distribution := distributionOf(filtered)

	return &domain.DashboardSummary{
		TotalRevenue:        utils.RoundWithTwoDecimalPlace(total),
		CurrentMonthRevenue: utils.RoundWithTwoDecimalPlace(currentMonth),
		AccountCount:        countAccounts(filtered),
		Distribution:        distribution,
		Ranked:              rankRecords(filtered),
	}
}

// TimeSeries agrupa e soma a receita por bucket e por conta.
// Registros sem data não pertencem a nenhum bucket e são ignorados.
func (s *Service) TimeSeries(records []domain.Record, granularity domain.Granularity, filters Filters) []domain.TimeSeriesEntry {
	filtered := filterRecords(records, filters)

	accounts := accountOrder(filtered)
	buckets := make(map[string]map[string]float64)

	for _, record := range filtered {
		date, err := utils.ParseDate(stringValue(record.Date))
		if err != nil || date == nil {
			continue
		}

		key := bucketKey(*date, granularity)
		if _, ok := buckets[key]; !ok {
			// Cada bucket carrega todas as contas, zeradas, para que as
			// linhas do gráfico não tenham pontos ausentes
			buckets[key] = make(map[string]float64, len(accounts))
			for _, account := range accounts {
				buckets[key][account] = 0
			}
		}

		buckets[key][record.AccountName] += revenueOf(record)
	}

	series := make([]domain.TimeSeriesEntry, 0, len(buckets))
	for period, sums := range buckets {
		rounded := make(map[string]float64, len(sums))
		for account, sum := range sums {
			rounded[account] = utils.RoundWithTwoDecimalPlace(sum)
		}
		series = append(series, domain.TimeSeriesEntry{Period: period, Accounts: rounded})
	}

	if granularity == domain.GranularityWeek {
		// Séries semanais ordenam pelo número da semana extraído do rótulo
		sort.SliceStable(series, func(i, j int) bool {
			return bucketing.WeekOrdinal(series[i].Period) < bucketing.WeekOrdinal(series[j].Period)
		})
	} else {
		sort.SliceStable(series, func(i, j int) bool {
			return series[i].Period < series[j].Period
		})
	}

	return series
}

func bucketKey(date time.Time, granularity domain.Granularity) string {
	switch granularity {
	case domain.GranularityWeek:
		return bucketing.WeekKey(date)
	case domain.GranularityMonth:
		return bucketing.MonthKey(date)
	default:
		return bucketing.DateKey(date)
	}
}

// distributionOf soma a receita por conta e calcula o percentual de cada uma
// sobre o total filtrado, ordenando por receita decrescente (empates mantêm a
// ordem de primeira aparição das contas)
func distributionOf(records []domain.Record) []domain.AccountRevenueItem {
	order := accountOrder(records)
	sums := make(map[string]float64, len(order))

	for _, record := range records {
		sums[record.AccountName] += revenueOf(record)
	}

	items := make([]domain.AccountRevenueItem, 0, len(order))
	var total float64
	for _, account := range order {
		value := utils.RoundWithTwoDecimalPlace(sums[account])
		total += value
		items = append(items, domain.AccountRevenueItem{
			AccountName: account,
			Revenue:     value,
		})
	}

	for i := range items {
		if total > 0 {
			items[i].Percent = items[i].Revenue / total * 100
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Revenue > items[j].Revenue
	})

	return items
}

// rankRecords ordena os registros por receita decrescente, preservando a
// ordem original entre empates
func rankRecords(records []domain.Record) []domain.Record {
	ranked := make([]domain.Record, len(records))
	copy(ranked, records)

	sort.SliceStable(ranked, func(i, j int) bool {
		return revenueOf(ranked[i]) > revenueOf(ranked[j])
	})

	return ranked
}

func filterRecords(records []domain.Record, filters Filters) []domain.Record {
	filtered := make([]domain.Record, 0, len(records))
	for _, record := range records {
		if filters.Matches(record) {
			filtered = append(filtered, record)
		}
	}
	return filtered
}

func countAccounts(records []domain.Record) int {
	return len(accountOrder(records))
}

// accountOrder lista as contas distintas na ordem de primeira aparição
func accountOrder(records []domain.Record) []string {
	order := make([]string, 0)
	seen := make(map[string]bool)
	for _, record := range records {
		if record.AccountName != "" && !seen[record.AccountName] {
			seen[record.AccountName] = true
			order = append(order, record.AccountName)
		}
	}
	return order
}

func revenueOf(record domain.Record) float64 {
	if record.Revenue < 0 {
		return 0
	}
	return record.Revenue
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
