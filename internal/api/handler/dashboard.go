package handler

import (
	"net/http"

	"github.com/vfg2006/revenue-tracker-api/internal/domain"
	"github.com/vfg2006/revenue-tracker-api/internal/scheduler"
	"github.com/vfg2006/revenue-tracker-api/internal/usecases/reporting"
	"github.com/vfg2006/revenue-tracker-api/pkg/apiErrors"
	"github.com/vfg2006/revenue-tracker-api/pkg/log"
	"github.com/vfg2006/revenue-tracker-api/pkg/utils"
)

// parseFilters monta os filtros do dashboard a partir da query string.
// Datas vazias não impõem limite; o filtro de contas vazio passa tudo.
func parseFilters(r *http.Request) (*reporting.Filters, string) {
	start, err := utils.ParseDate(r.URL.Query().Get("start"))
	if err != nil {
		return nil, "Data inicial inválida. Use o formato YYYY-MM-DD"
	}

	end, err := utils.ParseDate(r.URL.Query().Get("end"))
	if err != nil {
		return nil, "Data final inválida. Use o formato YYYY-MM-DD"
	}

	return &reporting.Filters{
		Start:    start,
		End:      end,
		Accounts: parseAccounts(r.URL.Query().Get("accounts")),
	}, ""
}

// GetDashboardSummary devolve os totais, a distribuição por conta e o
// ranking de registros do conjunto filtrado
func GetDashboardSummary(service reporting.Reporter, sync *scheduler.RecordSyncService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, message := parseFilters(r)
		if message != "" {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, message, nil)
			return
		}

		records, err := sync.Snapshot(r.Context())
		if err != nil {
			writeStoreError(w, r, err, "Erro ao buscar registros")
			return
		}

		summary := service.Summarize(records, *filters)

		logger.WithFields(log.Fields{
			"accounts": summary.AccountCount,
			"records":  len(summary.Ranked),
		}).Debug("dashboard: resumo calculado")

		writeJSON(w, r, summary)
	})
}

// GetDashboardTimeSeries devolve a série temporal de receita por conta na
// granularidade pedida (day, week ou month)
func GetDashboardTimeSeries(service reporting.Reporter, sync *scheduler.RecordSyncService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		granularity := domain.Granularity(r.URL.Query().Get("granularity"))
		if granularity == "" {
			granularity = domain.GranularityMonth
		}
		if !granularity.Valid() {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Granularidade inválida. Use day, week ou month", nil)
			return
		}

		filters, message := parseFilters(r)
		if message != "" {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, message, nil)
			return
		}

		records, err := sync.Snapshot(r.Context())
		if err != nil {
			writeStoreError(w, r, err, "Erro ao buscar registros")
			return
		}

		writeJSON(w, r, service.TimeSeries(records, granularity, *filters))
	})
}
