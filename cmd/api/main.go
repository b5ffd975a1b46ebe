package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/revenue-tracker-api/infrastructure/integrator/supabase"
	"github.com/vfg2006/revenue-tracker-api/infrastructure/integrator/supabase/supabaseclient"
	"github.com/vfg2006/revenue-tracker-api/internal/api"
	"github.com/vfg2006/revenue-tracker-api/internal/config"
	"github.com/vfg2006/revenue-tracker-api/internal/scheduler"
	"github.com/vfg2006/revenue-tracker-api/internal/usecases/calendaring"
	"github.com/vfg2006/revenue-tracker-api/internal/usecases/reporting"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	supabaseClient := supabaseclient.NewClient(cfg)
	recordStore := supabase.New(cfg, supabaseClient)

	reportService := reporting.NewService()
	calendarService := calendaring.NewService(recordStore)

	// Inicializa o snapshot de registros com atualização agendada
	recordSyncService := scheduler.NewRecordSyncService(recordStore, cfg)
	if err := recordSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do snapshot de registros")
	} else {
		logrus.Info("Agendador do snapshot de registros iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		recordStore,
		reportService,
		calendarService,
		recordSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
