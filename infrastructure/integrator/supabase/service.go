// Package supabase expõe o armazenamento remoto de registros como um
// RecordStore de domínio, convertendo o esquema persistido.
package supabase

import (
	"context"

	"github.com/pkg/errors"
	"github.com/vfg2006/revenue-tracker-api/infrastructure/integrator/supabase/supabaseclient"
	"github.com/vfg2006/revenue-tracker-api/internal/config"
	"github.com/vfg2006/revenue-tracker-api/internal/domain"
)

// ErrStore indica falha em qualquer operação do armazenamento remoto.
// Os chamadores a apresentam ao usuário como uma falha passível de retry;
// não há retry automático.
var ErrStore = errors.New("record store operation failed")

// RecordStore é a interface de persistência consumida pelo restante da aplicação
type RecordStore interface {
	FetchAll(ctx context.Context) ([]domain.Record, error)
	Create(ctx context.Context, input domain.RecordInput) (*domain.Record, error)
	Update(ctx context.Context, id string, input domain.RecordInput) (*domain.Record, error)
	Delete(ctx context.Context, id string) error
}

type Service struct {
	cfg    *config.Config
	client supabaseclient.Client
}

func New(cfg *config.Config, client supabaseclient.Client) RecordStore {
	return &Service{
		cfg:    cfg,
		client: client,
	}
}

func (s *Service) FetchAll(ctx context.Context) ([]domain.Record, error) {
	rows, err := s.client.ListRecords(ctx)
	if err != nil {
		return nil, errors.Wrap(ErrStore, err.Error())
	}

	records := make([]domain.Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, toRecord(row))
	}

	return records, nil
}

func (s *Service) Create(ctx context.Context, input domain.RecordInput) (*domain.Record, error) {
	row, err := s.client.InsertRecord(ctx, toRowInput(input))
	if err != nil {
		return nil, errors.Wrap(ErrStore, err.Error())
	}

	record := toRecord(*row)
	return &record, nil
}

func (s *Service) Update(ctx context.Context, id string, input domain.RecordInput) (*domain.Record, error) {
	row, err := s.client.UpdateRecord(ctx, id, toRowInput(input))
	if err != nil {
		return nil, errors.Wrap(ErrStore, err.Error())
	}

	record := toRecord(*row)
	return &record, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.client.DeleteRecord(ctx, id); err != nil {
		return errors.Wrap(ErrStore, err.Error())
	}

	return nil
}

// toRecord converte a linha persistida (snake_case, id numérico) para o
// formato do domínio. Receita ausente, inválida ou negativa degrada para 0.
func toRecord(row supabaseclient.RecordRow) domain.Record {
	var revenue float64
	if value, err := row.Revenue.Float64(); err == nil && value > 0 {
		revenue = value
	}

	var date *string
	if row.Date != nil && *row.Date != "" {
		value := *row.Date
		date = &value
	}

	return domain.Record{
		ID:           row.ID.String(),
		AccountName:  row.AccountName,
		Product:      row.Product,
		Date:         date,
		Revenue:      revenue,
		AccountColor: toColor(row.AccountColor),
	}
}

func toRowInput(input domain.RecordInput) supabaseclient.RecordRowInput {
	revenue := input.Revenue
	if revenue < 0 {
		revenue = 0
	}

	row := supabaseclient.RecordRowInput{
		AccountName: input.AccountName,
		Product:     input.Product,
		Date:        input.Date,
		Revenue:     revenue,
	}

	if input.AccountColor != nil {
		row.AccountColor = &supabaseclient.ColorRow{
			Background: input.AccountColor.Background,
			Text:       input.AccountColor.Text,
			Border:     input.AccountColor.Border,
		}
	}

	return row
}

func toColor(row *supabaseclient.ColorRow) *domain.Color {
	if row == nil {
		return nil
	}

	return &domain.Color{
		Background: row.Background,
		Text:       row.Text,
		Border:     row.Border,
	}
}
