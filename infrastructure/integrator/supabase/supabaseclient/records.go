package supabaseclient

import (
	"context"
	"net/http"
	"net/url"

	jsonvalue "encoding/json"

	"github.com/pkg/errors"
)

// RecordRow é a forma persistida de um registro na tabela `records`.
// Os nomes de campo seguem o esquema snake_case do banco.
type RecordRow struct {
	ID           jsonvalue.Number `json:"id"`
	AccountName  string           `json:"account_name"`
	Product      string           `json:"product"`
	Date         *string          `json:"date"`
	Revenue      jsonvalue.Number `json:"revenue"`
	AccountColor *ColorRow        `json:"account_color"`
}

// ColorRow é a cor escolhida pelo usuário, persistida como JSON na linha
type ColorRow struct {
	Background string `json:"bg"`
	Text       string `json:"text"`
	Border     string `json:"border"`
}

// RecordRowInput são os campos enviados em criações e atualizações
type RecordRowInput struct {
	AccountName  string    `json:"account_name"`
	Product      string    `json:"product"`
	Date         *string   `json:"date"`
	Revenue      float64   `json:"revenue"`
	AccountColor *ColorRow `json:"account_color"`
}

// ListRecords busca todos os registros ordenados por data decrescente,
// como o armazenamento os devolve para o front
func (c *SupabaseClient) ListRecords(ctx context.Context) ([]RecordRow, error) {
	params := url.Values{}
	params.Set("select", "*")
	params.Set("order", "date.desc")

	req, err := c.newRequest(ctx, http.MethodGet, c.recordURL(params.Encode()), nil)
	if err != nil {
		return nil, err
	}

	body, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var rows []RecordRow
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, errors.Wrap(ErrRequestFailed, err.Error())
	}

	return rows, nil
}

// InsertRecord cria um registro; o banco atribui o ID
func (c *SupabaseClient) InsertRecord(ctx context.Context, row RecordRowInput) (*RecordRow, error) {
	payload, err := json.Marshal([]RecordRowInput{row})
	if err != nil {
		return nil, errors.Wrap(ErrRequestFailed, err.Error())
	}

	params := url.Values{}
	params.Set("select", "*")

	req, err := c.newRequest(ctx, http.MethodPost, c.recordURL(params.Encode()), payload)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Prefer", "return=representation")

	body, err := c.do(req)
	if err != nil {
		return nil, err
	}

	return c.decodeSingle(body)
}

// UpdateRecord substitui os campos listados do registro identificado por id
func (c *SupabaseClient) UpdateRecord(ctx context.Context, id string, row RecordRowInput) (*RecordRow, error) {
	payload, err := json.Marshal(row)
	if err != nil {
		return nil, errors.Wrap(ErrRequestFailed, err.Error())
	}

	params := url.Values{}
	params.Set("id", "eq."+id)
	params.Set("select", "*")

	req, err := c.newRequest(ctx, http.MethodPatch, c.recordURL(params.Encode()), payload)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Prefer", "return=representation")

	body, err := c.do(req)
	if err != nil {
		return nil, err
	}

	return c.decodeSingle(body)
}

// DeleteRecord remove o registro identificado por id
func (c *SupabaseClient) DeleteRecord(ctx context.Context, id string) error {
	params := url.Values{}
	params.Set("id", "eq."+id)

	req, err := c.newRequest(ctx, http.MethodDelete, c.recordURL(params.Encode()), nil)
	if err != nil {
		return err
	}

	_, err = c.do(req)
	return err
}

// decodeSingle interpreta respostas de mutação, que o PostgREST devolve
// como uma lista com a linha afetada
func (c *SupabaseClient) decodeSingle(body []byte) (*RecordRow, error) {
	var rows []RecordRow
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, errors.Wrap(ErrRequestFailed, err.Error())
	}

	if len(rows) == 0 {
		return nil, errors.Wrap(ErrRequestFailed, "nenhuma linha retornada pela mutação")
	}

	return &rows[0], nil
}
