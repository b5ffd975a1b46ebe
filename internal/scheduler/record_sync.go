// Package scheduler contém o serviço de atualização do snapshot de registros
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/revenue-tracker-api/infrastructure/integrator/supabase"
	"github.com/vfg2006/revenue-tracker-api/internal/config"
	"github.com/vfg2006/revenue-tracker-api/internal/domain"
)

type RecordSyncConfig struct {
	CronSchedule string
	Enabled      bool
	TTL          time.Duration
}

// RecordSyncService mantém o snapshot em memória dos registros do
// armazenamento remoto. As leituras passam por Snapshot, que rebusca os
// dados quando o snapshot está velho ou foi invalidado por uma mutação,
// de modo que cada escrita force a releitura na próxima consulta. O cron
// apenas aquece o snapshot periodicamente.
type RecordSyncService struct {
	scheduler *gocron.Scheduler
	store     supabase.RecordStore
	config    RecordSyncConfig

	mutex         sync.Mutex
	records       []domain.Record
	fetchedAt     time.Time
	invalidated   bool
	lastSyncError error
}

func NewRecordSyncService(store supabase.RecordStore, cfg *config.Config) *RecordSyncService {
	syncConfig := RecordSyncConfig{
		CronSchedule: cfg.RecordSync.CronSchedule,
		Enabled:      cfg.RecordSync.Enabled,
		TTL:          time.Duration(cfg.RecordSync.TTLSeconds) * time.Second,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"ttl":           syncConfig.TTL,
	}).Info("Configuração do snapshot de registros carregada")

	return &RecordSyncService{
		scheduler:   scheduler,
		store:       store,
		config:      syncConfig,
		invalidated: true, // Primeiro acesso sempre busca no armazenamento
	}
}

func (s *RecordSyncService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de atualização do snapshot de registros desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de atualização do snapshot de registros")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.Refresh(ctx); err != nil {
			logrus.WithError(err).Error("Erro na atualização agendada do snapshot de registros")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização do snapshot de registros: %w", err)
	}

	// Executar o cron em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do cron quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron do snapshot de registros")
		s.scheduler.Stop()
	}()

	return nil
}

// Snapshot devolve os registros correntes, rebuscando do armazenamento
// remoto quando o snapshot expirou ou foi invalidado
func (s *RecordSyncService) Snapshot(ctx context.Context) ([]domain.Record, error) {
	s.mutex.Lock()
	fresh := !s.invalidated && time.Since(s.fetchedAt) < s.config.TTL
	if fresh {
		records := s.records
		s.mutex.Unlock()
		return records, nil
	}
	s.mutex.Unlock()

	if err := s.Refresh(ctx); err != nil {
		return nil, err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.records, nil
}

// Refresh busca todos os registros no armazenamento remoto e substitui o
// snapshot por completo, nunca parcialmente
func (s *RecordSyncService) Refresh(ctx context.Context) error {
	records, err := s.store.FetchAll(ctx)
	if err != nil {
		s.mutex.Lock()
		s.lastSyncError = err
		s.mutex.Unlock()

		logrus.WithError(err).Error("Erro ao atualizar o snapshot de registros")
		return err
	}

	s.mutex.Lock()
	s.records = records
	s.fetchedAt = time.Now()
	s.invalidated = false
	s.lastSyncError = nil
	s.mutex.Unlock()

	logrus.WithField("records", len(records)).Debug("Snapshot de registros atualizado")
	return nil
}

// Invalidate marca o snapshot como obsoleto. Deve ser chamado após cada
// mutação para que a próxima leitura rebusque os dados.
func (s *RecordSyncService) Invalidate() {
	s.mutex.Lock()
	s.invalidated = true
	s.mutex.Unlock()
}

// Status descreve o estado corrente do snapshot para o endpoint de cron
type Status struct {
	Enabled       bool      `json:"enabled"`
	CronSchedule  string    `json:"cron_schedule"`
	RecordCount   int       `json:"record_count"`
	LastFetchedAt time.Time `json:"last_fetched_at"`
	Invalidated   bool      `json:"invalidated"`
	LastError     string    `json:"last_error,omitempty"`
}

func (s *RecordSyncService) Status() Status {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	status := Status{
		Enabled:       s.config.Enabled,
		CronSchedule:  s.config.CronSchedule,
		RecordCount:   len(s.records),
		LastFetchedAt: s.fetchedAt,
		Invalidated:   s.invalidated,
	}

	if s.lastSyncError != nil {
		status.LastError = s.lastSyncError.Error()
	}

	return status
}
