package supabase

import (
	"context"
	"testing"

	jsonvalue "encoding/json"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/revenue-tracker-api/infrastructure/integrator/supabase/supabaseclient"
	"github.com/vfg2006/revenue-tracker-api/internal/domain"
)

// stubClient responde com valores fixos, para exercitar as conversões e o
// encapsulamento de erros do serviço
type stubClient struct {
	rows []supabaseclient.RecordRow
	row  *supabaseclient.RecordRow
	err  error
}

func (c *stubClient) ListRecords(_ context.Context) ([]supabaseclient.RecordRow, error) {
	return c.rows, c.err
}

func (c *stubClient) InsertRecord(_ context.Context, _ supabaseclient.RecordRowInput) (*supabaseclient.RecordRow, error) {
	return c.row, c.err
}

func (c *stubClient) UpdateRecord(_ context.Context, _ string, _ supabaseclient.RecordRowInput) (*supabaseclient.RecordRow, error) {
	return c.row, c.err
}

func (c *stubClient) DeleteRecord(_ context.Context, _ string) error {
	return c.err
}

func strPtr(s string) *string {
	return &s
}

func TestFetchAll_ConvertsRows(t *testing.T) {
	client := &stubClient{
		rows: []supabaseclient.RecordRow{
			{
				ID:          jsonvalue.Number("1"),
				AccountName: "A",
				Product:     "produto-1",
				Date:        strPtr("2024-01-05"),
				Revenue:     jsonvalue.Number("100.5"),
				AccountColor: &supabaseclient.ColorRow{
					Background: "#FFE4E1",
					Text:       "#8B4513",
					Border:     "#FFB6C1",
				},
			},
			{
				ID:          jsonvalue.Number("2"),
				AccountName: "B",
				Product:     "produto-2",
				Date:        nil,
				Revenue:     jsonvalue.Number("-30"),
			},
			{
				ID:          jsonvalue.Number("3"),
				AccountName: "C",
				Product:     "produto-3",
				Date:        strPtr(""),
				Revenue:     jsonvalue.Number("nao-numerico"),
			},
		},
	}

	store := New(nil, client)

	records, err := store.FetchAll(context.Background())

	assert.NoError(t, err)
	assert.Len(t, records, 3)

	assert.Equal(t, "1", records[0].ID)
	assert.Equal(t, 100.5, records[0].Revenue)
	if assert.NotNil(t, records[0].Date) {
		assert.Equal(t, "2024-01-05", *records[0].Date)
	}
	if assert.NotNil(t, records[0].AccountColor) {
		assert.Equal(t, "#FFE4E1", records[0].AccountColor.Background)
	}

	// Receita negativa degrada para 0 e data ausente permanece nula
	assert.Equal(t, 0.0, records[1].Revenue)
	assert.Nil(t, records[1].Date)
	assert.Nil(t, records[1].AccountColor)

	// Receita não numérica degrada para 0 e data vazia vira nula
	assert.Equal(t, 0.0, records[2].Revenue)
	assert.Nil(t, records[2].Date)
}

func TestFetchAll_WrapsClientError(t *testing.T) {
	client := &stubClient{err: errors.New("timeout")}

	store := New(nil, client)

	records, err := store.FetchAll(context.Background())

	assert.Nil(t, records)
	assert.True(t, errors.Is(err, ErrStore))
	assert.Contains(t, err.Error(), "timeout")
}

func TestCreate_ConvertsInputAndRow(t *testing.T) {
	client := &stubClient{
		row: &supabaseclient.RecordRow{
			ID:          jsonvalue.Number("9"),
			AccountName: "A",
			Product:     "produto-1",
			Date:        strPtr("2024-01-05"),
			Revenue:     jsonvalue.Number("100"),
		},
	}

	store := New(nil, client)

	record, err := store.Create(context.Background(), domain.RecordInput{
		AccountName: "A",
		Product:     "produto-1",
		Date:        strPtr("2024-01-05"),
		Revenue:     100,
	})

	assert.NoError(t, err)
	if assert.NotNil(t, record) {
		assert.Equal(t, "9", record.ID)
		assert.Equal(t, 100.0, record.Revenue)
	}
}

func TestToRowInput_NegativeRevenueBecomesZero(t *testing.T) {
	row := toRowInput(domain.RecordInput{
		AccountName: "A",
		Revenue:     -50,
	})

	assert.Equal(t, 0.0, row.Revenue)
	assert.Nil(t, row.AccountColor)
}

func TestToRowInput_CarriesExplicitColor(t *testing.T) {
	row := toRowInput(domain.RecordInput{
		AccountName: "A",
		Revenue:     10,
		AccountColor: &domain.Color{
			Background: "#111111",
			Text:       "#222222",
			Border:     "#333333",
		},
	})

	if assert.NotNil(t, row.AccountColor) {
		assert.Equal(t, "#111111", row.AccountColor.Background)
		assert.Equal(t, "#222222", row.AccountColor.Text)
		assert.Equal(t, "#333333", row.AccountColor.Border)
	}
}

func TestDelete_WrapsClientError(t *testing.T) {
	client := &stubClient{err: errors.New("connection refused")}

	store := New(nil, client)

	err := store.Delete(context.Background(), "1")

	assert.True(t, errors.Is(err, ErrStore))
}
