// Package calendaring monta a grade mensal do calendário e a lista de
// registros pendentes (sem data), e delega o reagendamento ao armazenamento.
package calendaring

import (
	"context"
	"time"

	"github.com/vfg2006/revenue-tracker-api/infrastructure/integrator/supabase"
	"github.com/vfg2006/revenue-tracker-api/internal/domain"
	"github.com/vfg2006/revenue-tracker-api/internal/usecases/bucketing"
	"github.com/vfg2006/revenue-tracker-api/internal/usecases/coloring"
)

// Registros visíveis por célula quando a célula não está expandida
const collapsedCellLimit = 3

type CalendarService interface {
	BuildMonthGrid(year int, month time.Month, records []domain.Record, colorMap domain.AccountColorMap, expandedDateKey string) []domain.CalendarCell
	PendingList(records []domain.Record, colorMap domain.AccountColorMap, accountFilter []string) []domain.CalendarRecord
	MoveRecordToDate(ctx context.Context, record domain.Record, newDate string) (*domain.Record, error)
}

type Service struct {
	store supabase.RecordStore
	now   func() time.Time
}

func NewService(store supabase.RecordStore) CalendarService {
	return &Service{
		store: store,
		now:   time.Now,
	}
}

// BuildMonthGrid produz a grade fixa de 42 células (6 semanas) do mês,
// preenchendo o início com os últimos dias do mês anterior e o final com os
// primeiros dias do mês seguinte. A primeira célula é alinhada ao dia da
// semana (0=domingo) do dia 1º do mês.
func (s *Service) BuildMonthGrid(year int, month time.Month, records []domain.Record, colorMap domain.AccountColorMap, expandedDateKey string) []domain.CalendarCell {
	firstDay := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	startingWeekday := int(firstDay.Weekday())

	byDate := recordsByDate(records)
	todayKey := bucketing.DateKey(s.now())

	cells := make([]domain.CalendarCell, 0, 42)

	// Dias do mês anterior até alinhar o dia 1º ao seu dia da semana
	for offset := startingWeekday; offset > 0; offset-- {
		date := firstDay.AddDate(0, 0, -offset)
		cells = append(cells, s.buildCell(date, false, byDate, colorMap, expandedDateKey, todayKey))
	}

	// Dias do mês corrente
	daysInMonth := firstDay.AddDate(0, 1, -1).Day()
	for day := 0; day < daysInMonth; day++ {
		date := firstDay.AddDate(0, 0, day)
		cells = append(cells, s.buildCell(date, true, byDate, colorMap, expandedDateKey, todayKey))
	}

	// Dias do mês seguinte até completar as 42 células
	nextMonth := firstDay.AddDate(0, 1, 0)
	for day := 0; len(cells) < 42; day++ {
		date := nextMonth.AddDate(0, 0, day)
		cells = append(cells, s.buildCell(date, false, byDate, colorMap, expandedDateKey, todayKey))
	}

	return cells
}

// buildCell monta uma célula com seus registros, limitados a três quando a
// célula não é a expandida
func (s *Service) buildCell(date time.Time, inMonth bool, byDate map[string][]domain.Record, colorMap domain.AccountColorMap, expandedDateKey, todayKey string) domain.CalendarCell {
	dateKey := bucketing.DateKey(date)
	dayRecords := byDate[dateKey]
	expanded := expandedDateKey != "" && expandedDateKey == dateKey

	visible := dayRecords
	if !expanded && len(dayRecords) > collapsedCellLimit {
		visible = dayRecords[:collapsedCellLimit]
	}

	cellRecords := make([]domain.CalendarRecord, 0, len(visible))
	for _, record := range visible {
		cellRecords = append(cellRecords, domain.CalendarRecord{
			Record: record,
			Color:  coloring.ColorFor(record.AccountName, colorMap),
		})
	}

	return domain.CalendarCell{
		Date:           dateKey,
		Day:            date.Day(),
		InMonth:        inMonth,
		Today:          dateKey == todayKey,
		Records:        cellRecords,
		HiddenCount:    len(dayRecords) - len(visible),
		Expanded:       expanded,
		TotalRecordCnt: len(dayRecords),
	}
}

// PendingList devolve os registros sem data, na ordem original, filtrados
// pelas contas selecionadas (filtro vazio = todas)
func (s *Service) PendingList(records []domain.Record, colorMap domain.AccountColorMap, accountFilter []string) []domain.CalendarRecord {
	pending := make([]domain.CalendarRecord, 0)

	for _, record := range records {
		if record.HasDate() {
			continue
		}

		if len(accountFilter) > 0 && !containsAccount(accountFilter, record.AccountName) {
			continue
		}

		pending = append(pending, domain.CalendarRecord{
			Record: record,
			Color:  coloring.ColorFor(record.AccountName, colorMap),
		})
	}

	return pending
}

// MoveRecordToDate reagenda um registro substituindo apenas a data, com os
// demais campos inalterados. É a única operação do núcleo com efeito
// colateral, totalmente delegada ao armazenamento remoto.
func (s *Service) MoveRecordToDate(ctx context.Context, record domain.Record, newDate string) (*domain.Record, error) {
	input := domain.RecordInput{
		AccountName:  record.AccountName,
		Product:      record.Product,
		Revenue:      record.Revenue,
		AccountColor: record.AccountColor,
	}

	if newDate != "" {
		input.Date = &newDate
	}

	return s.store.Update(ctx, record.ID, input)
}

func recordsByDate(records []domain.Record) map[string][]domain.Record {
	byDate := make(map[string][]domain.Record)
	for _, record := range records {
		if !record.HasDate() {
			continue
		}
		byDate[*record.Date] = append(byDate[*record.Date], record)
	}
	return byDate
}

func containsAccount(accounts []string, name string) bool {
	for _, account := range accounts {
		if account == name {
			return true
		}
	}
	return false
}
