package supabaseclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/revenue-tracker-api/internal/config"
)

func testConfig(restURL string) *config.Config {
	return &config.Config{
		Supabase: config.Supabase{
			APIKey:         "test-anon-key",
			Table:          "records",
			TimeoutSeconds: 5,
			RestURL:        restURL,
		},
	}
}

func TestListRecords(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/rest/v1/records", r.URL.Path)
		assert.Equal(t, "*", r.URL.Query().Get("select"))
		assert.Equal(t, "date.desc", r.URL.Query().Get("order"))

		assert.Equal(t, "test-anon-key", r.Header.Get("apikey"))
		assert.Equal(t, "Bearer test-anon-key", r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("X-Request-Id"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id": 1, "account_name": "A", "product": "produto-1", "date": "2024-01-05", "revenue": 100.5, "account_color": {"bg": "#FFE4E1", "text": "#8B4513", "border": "#FFB6C1"}},
			{"id": 2, "account_name": "B", "product": "produto-2", "date": null, "revenue": 50, "account_color": null}
		]`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL + "/rest/v1/records"))

	rows, err := client.ListRecords(context.Background())

	assert.NoError(t, err)
	assert.Len(t, rows, 2)

	assert.Equal(t, "1", rows[0].ID.String())
	assert.Equal(t, "A", rows[0].AccountName)
	if assert.NotNil(t, rows[0].Date) {
		assert.Equal(t, "2024-01-05", *rows[0].Date)
	}
	if assert.NotNil(t, rows[0].AccountColor) {
		assert.Equal(t, "#FFE4E1", rows[0].AccountColor.Background)
	}

	assert.Nil(t, rows[1].Date)
	assert.Nil(t, rows[1].AccountColor)
}

func TestInsertRecord(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "return=representation", r.Header.Get("Prefer"))

		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)

		// O PostgREST recebe inserções como lista de linhas
		var payload []RecordRowInput
		assert.NoError(t, json.Unmarshal(body, &payload))
		assert.Len(t, payload, 1)
		assert.Equal(t, "A", payload[0].AccountName)
		assert.Equal(t, 100.0, payload[0].Revenue)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`[{"id": 7, "account_name": "A", "product": "produto-1", "date": "2024-01-05", "revenue": 100, "account_color": null}]`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL + "/rest/v1/records"))

	row, err := client.InsertRecord(context.Background(), RecordRowInput{
		AccountName: "A",
		Product:     "produto-1",
		Revenue:     100,
	})

	assert.NoError(t, err)
	if assert.NotNil(t, row) {
		assert.Equal(t, "7", row.ID.String())
	}
}

func TestUpdateRecord(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "eq.7", r.URL.Query().Get("id"))
		assert.Equal(t, "return=representation", r.Header.Get("Prefer"))

		_, _ = w.Write([]byte(`[{"id": 7, "account_name": "A", "product": "produto-1", "date": "2024-02-01", "revenue": 100, "account_color": null}]`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL + "/rest/v1/records"))

	date := "2024-02-01"
	row, err := client.UpdateRecord(context.Background(), "7", RecordRowInput{
		AccountName: "A",
		Product:     "produto-1",
		Date:        &date,
		Revenue:     100,
	})

	assert.NoError(t, err)
	if assert.NotNil(t, row) {
		assert.Equal(t, "2024-02-01", *row.Date)
	}
}

func TestDeleteRecord(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "eq.3", r.URL.Query().Get("id"))

		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL + "/rest/v1/records"))

	assert.NoError(t, client.DeleteRecord(context.Background(), "3"))
}

func TestDo_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message": "internal error"}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL + "/rest/v1/records"))

	rows, err := client.ListRecords(context.Background())

	assert.Nil(t, rows)
	assert.True(t, errors.Is(err, ErrRequestFailed))
	assert.Contains(t, err.Error(), "status 500")
}

func TestUpdateRecord_EmptyMutationResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL + "/rest/v1/records"))

	row, err := client.UpdateRecord(context.Background(), "99", RecordRowInput{AccountName: "A"})

	assert.Nil(t, row)
	assert.True(t, errors.Is(err, ErrRequestFailed))
}
