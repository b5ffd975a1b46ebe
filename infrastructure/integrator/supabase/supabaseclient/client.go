// Package supabaseclient implementa o cliente REST fino para a tabela de
// registros hospedada no Supabase (PostgREST).
package supabaseclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/revenue-tracker-api/internal/config"
	"github.com/vfg2006/revenue-tracker-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrRequestFailed indica falha de comunicação ou resposta não-2xx do PostgREST
var ErrRequestFailed = errors.New("supabase request failed")

type Client interface {
	ListRecords(ctx context.Context) ([]RecordRow, error)
	InsertRecord(ctx context.Context, row RecordRowInput) (*RecordRow, error)
	UpdateRecord(ctx context.Context, id string, row RecordRowInput) (*RecordRow, error)
	DeleteRecord(ctx context.Context, id string) error
}

type SupabaseClient struct {
	Cfg        *config.Config
	HTTPClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	timeout := time.Duration(cfg.Supabase.TimeoutSeconds) * time.Second

	return &SupabaseClient{
		Cfg:        cfg,
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

// newRequest monta uma requisição com os headers exigidos pelo PostgREST.
// Cada requisição carrega um ID próprio para correlação nos logs.
func (c *SupabaseClient) newRequest(ctx context.Context, method, url string, body []byte) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição")
	}

	req.Header.Set("apikey", c.Cfg.Supabase.APIKey)
	req.Header.Set("Authorization", "Bearer "+c.Cfg.Supabase.APIKey)
	req.Header.Set("Content-Type", "application/json")

	if requestID, err := utils.GenerateID(); err == nil {
		req.Header.Set("X-Request-Id", requestID)
	}

	return req, nil
}

// do executa a requisição e devolve o corpo quando o status é 2xx
func (c *SupabaseClient) do(req *http.Request) ([]byte, error) {
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"method": req.Method,
			"url":    req.URL.Path,
		}).Error("Erro ao comunicar com o Supabase")
		return nil, errors.Wrap(ErrRequestFailed, err.Error())
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(ErrRequestFailed, err.Error())
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		logrus.WithFields(logrus.Fields{
			"method": req.Method,
			"url":    req.URL.Path,
			"status": resp.StatusCode,
		}).Error("Resposta de erro do Supabase")
		return nil, errors.Wrapf(ErrRequestFailed, "status %d: %s", resp.StatusCode, string(body))
	}

	return body, nil
}

func (c *SupabaseClient) recordURL(query string) string {
	if query == "" {
		return c.Cfg.Supabase.RestURL
	}
	return fmt.Sprintf("%s?%s", c.Cfg.Supabase.RestURL, query)
}
