package handler

import (
	"net/http"

	"github.com/vfg2006/revenue-tracker-api/internal/scheduler"
	"github.com/vfg2006/revenue-tracker-api/pkg/log"
)

// RunRecordSync dispara manualmente a atualização do snapshot de registros
func RunRecordSync(sync *scheduler.RecordSyncService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("cron: atualização manual do snapshot solicitada")

		if err := sync.Refresh(r.Context()); err != nil {
			writeStoreError(w, r, err, "Erro ao atualizar snapshot de registros")
			return
		}

		writeJSON(w, r, sync.Status())
	})
}

// GetCronStatus devolve o estado corrente do snapshot e do agendador
func GetCronStatus(sync *scheduler.RecordSyncService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, sync.Status())
	})
}
