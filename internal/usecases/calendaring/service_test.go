package calendaring

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/revenue-tracker-api/infrastructure/integrator/supabase/mocks"
	"github.com/vfg2006/revenue-tracker-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func strPtr(s string) *string {
	return &s
}

func fixedService(now time.Time) *Service {
	return &Service{now: func() time.Time { return now }}
}

func TestBuildMonthGrid_January2024(t *testing.T) {
	service := fixedService(time.Date(2024, time.January, 15, 12, 0, 0, 0, time.Local))

	records := []domain.Record{
		{ID: "1", AccountName: "A", Date: strPtr("2024-01-05"), Revenue: 100},
		{ID: "2", AccountName: "B", Date: strPtr("2024-01-05"), Revenue: 50},
	}
	colorMap := domain.AccountColorMap{}

	cells := service.BuildMonthGrid(2024, time.January, records, colorMap, "")

	assert.Len(t, cells, 42)

	// 1º de janeiro de 2024 é uma segunda-feira: uma célula do mês
	// anterior antes dela
	assert.Equal(t, "2023-12-31", cells[0].Date)
	assert.False(t, cells[0].InMonth)
	assert.Equal(t, "2024-01-01", cells[1].Date)
	assert.True(t, cells[1].InMonth)
	assert.Equal(t, 1, cells[1].Day)

	// Janeiro tem 31 dias: células 1..31 pertencem ao mês
	assert.Equal(t, "2024-01-31", cells[31].Date)
	assert.True(t, cells[31].InMonth)
	assert.Equal(t, "2024-02-01", cells[32].Date)
	assert.False(t, cells[32].InMonth)

	// Registros caem na célula da sua data
	assert.Equal(t, "2024-01-05", cells[5].Date)
	assert.Len(t, cells[5].Records, 2)
	assert.Equal(t, 2, cells[5].TotalRecordCnt)

	// Marcação de hoje segue o relógio do serviço
	assert.True(t, cells[15].Today)
	assert.Equal(t, "2024-01-15", cells[15].Date)
	assert.False(t, cells[14].Today)
}

func TestBuildMonthGrid_LeapFebruary(t *testing.T) {
	service := fixedService(time.Date(2024, time.June, 1, 0, 0, 0, 0, time.Local))

	cells := service.BuildMonthGrid(2024, time.February, nil, nil, "")

	assert.Len(t, cells, 42)

	// 1º de fevereiro de 2024 é uma quinta-feira (índice 4)
	assert.Equal(t, "2024-02-01", cells[4].Date)
	assert.True(t, cells[4].InMonth)

	// Ano bissexto: o dia 29 existe e pertence ao mês
	assert.Equal(t, "2024-02-29", cells[32].Date)
	assert.True(t, cells[32].InMonth)
	assert.Equal(t, "2024-03-01", cells[33].Date)
	assert.False(t, cells[33].InMonth)
}

func TestBuildMonthGrid_CollapsedCellShowsThreeRecords(t *testing.T) {
	service := fixedService(time.Date(2024, time.January, 1, 0, 0, 0, 0, time.Local))

	records := []domain.Record{
		{ID: "1", AccountName: "A", Date: strPtr("2024-01-10"), Revenue: 1},
		{ID: "2", AccountName: "A", Date: strPtr("2024-01-10"), Revenue: 2},
		{ID: "3", AccountName: "A", Date: strPtr("2024-01-10"), Revenue: 3},
		{ID: "4", AccountName: "A", Date: strPtr("2024-01-10"), Revenue: 4},
		{ID: "5", AccountName: "A", Date: strPtr("2024-01-10"), Revenue: 5},
	}

	cells := service.BuildMonthGrid(2024, time.January, records, nil, "")

	cell := cells[10]
	assert.Equal(t, "2024-01-10", cell.Date)
	assert.Len(t, cell.Records, 3)
	assert.Equal(t, 2, cell.HiddenCount)
	assert.Equal(t, 5, cell.TotalRecordCnt)
	assert.False(t, cell.Expanded)

	// Os três visíveis preservam a ordem de chegada
	assert.Equal(t, "1", cell.Records[0].ID)
	assert.Equal(t, "3", cell.Records[2].ID)
}

func TestBuildMonthGrid_ExpandedCellShowsAllRecords(t *testing.T) {
	service := fixedService(time.Date(2024, time.January, 1, 0, 0, 0, 0, time.Local))

	records := []domain.Record{
		{ID: "1", AccountName: "A", Date: strPtr("2024-01-10"), Revenue: 1},
		{ID: "2", AccountName: "A", Date: strPtr("2024-01-10"), Revenue: 2},
		{ID: "3", AccountName: "A", Date: strPtr("2024-01-10"), Revenue: 3},
		{ID: "4", AccountName: "A", Date: strPtr("2024-01-10"), Revenue: 4},
	}

	cells := service.BuildMonthGrid(2024, time.January, records, nil, "2024-01-10")

	cell := cells[10]
	assert.True(t, cell.Expanded)
	assert.Len(t, cell.Records, 4)
	assert.Equal(t, 0, cell.HiddenCount)
}

func TestPendingList(t *testing.T) {
	service := fixedService(time.Date(2024, time.January, 1, 0, 0, 0, 0, time.Local))

	records := []domain.Record{
		{ID: "1", AccountName: "A", Date: strPtr("2024-01-05"), Revenue: 100},
		{ID: "2", AccountName: "B", Date: nil, Revenue: 20},
		{ID: "3", AccountName: "A", Date: nil, Revenue: 30},
	}

	pending := service.PendingList(records, nil, nil)

	assert.Len(t, pending, 2)
	assert.Equal(t, "2", pending[0].ID)
	assert.Equal(t, "3", pending[1].ID)

	filtered := service.PendingList(records, nil, []string{"A"})

	assert.Len(t, filtered, 1)
	assert.Equal(t, "3", filtered[0].ID)
}

func TestMoveRecordToDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockRecordStore(ctrl)
	service := &Service{store: store, now: time.Now}

	record := domain.Record{
		ID:          "42",
		AccountName: "A",
		Product:     "produto-1",
		Date:        nil,
		Revenue:     100,
	}

	updated := record
	updated.Date = strPtr("2024-01-20")

	store.EXPECT().
		Update(gomock.Any(), "42", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, input domain.RecordInput) (*domain.Record, error) {
			assert.Equal(t, "A", input.AccountName)
			assert.Equal(t, "produto-1", input.Product)
			assert.Equal(t, 100.0, input.Revenue)
			if assert.NotNil(t, input.Date) {
				assert.Equal(t, "2024-01-20", *input.Date)
			}
			return &updated, nil
		})

	result, err := service.MoveRecordToDate(context.Background(), record, "2024-01-20")

	assert.NoError(t, err)
	if assert.NotNil(t, result) {
		assert.Equal(t, "2024-01-20", *result.Date)
	}
}
