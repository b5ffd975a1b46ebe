package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/vfg2006/revenue-tracker-api/internal/domain"
	"github.com/vfg2006/revenue-tracker-api/internal/scheduler"
	"github.com/vfg2006/revenue-tracker-api/internal/usecases/calendaring"
	"github.com/vfg2006/revenue-tracker-api/internal/usecases/coloring"
	"github.com/vfg2006/revenue-tracker-api/pkg/apiErrors"
	"github.com/vfg2006/revenue-tracker-api/pkg/log"
)

// GetCalendarMonth devolve a grade de 42 células do mês pedido, junto com a
// legenda de cores das contas. Sem parâmetros, usa o mês corrente.
func GetCalendarMonth(service calendaring.CalendarService, sync *scheduler.RecordSyncService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		now := time.Now()
		year := now.Year()
		month := int(now.Month())

		if rawYear := r.URL.Query().Get("year"); rawYear != "" {
			parsed, err := strconv.Atoi(rawYear)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Ano inválido. Use quatro dígitos (ex: 2025)", nil)
				return
			}
			year = parsed
		}

		if rawMonth := r.URL.Query().Get("month"); rawMonth != "" {
			parsed, err := strconv.Atoi(rawMonth)
			if err != nil || parsed < 1 || parsed > 12 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Mês inválido. Use um valor entre 1 e 12", nil)
				return
			}
			month = parsed
		}

		records, err := sync.Snapshot(r.Context())
		if err != nil {
			writeStoreError(w, r, err, "Erro ao buscar registros")
			return
		}

		colorMap := assignColorsFor(records)
		cells := service.BuildMonthGrid(year, time.Month(month), records, colorMap, r.URL.Query().Get("expanded"))

		logger.WithFields(log.Fields{
			"year":  year,
			"month": month,
		}).Debug("calendar: grade mensal montada")

		writeJSON(w, r, domain.CalendarMonth{
			Year:   year,
			Month:  month,
			Cells:  cells,
			Colors: colorMap,
		})
	})
}

// GetAccountColors devolve o mapa de cores derivado do snapshot corrente
func GetAccountColors(sync *scheduler.RecordSyncService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		records, err := sync.Snapshot(r.Context())
		if err != nil {
			writeStoreError(w, r, err, "Erro ao buscar registros")
			return
		}

		writeJSON(w, r, assignColorsFor(records))
	})
}

// assignColorsFor deriva o mapa de cores do conjunto de registros corrente.
// O mapa é recomputado a cada requisição: é uma função pura dos registros,
// sem estado próprio.
func assignColorsFor(records []domain.Record) domain.AccountColorMap {
	return coloring.AssignColors(records)
}

// parseAccounts interpreta o filtro de contas da query string (a,b,c)
func parseAccounts(raw string) []string {
	if raw == "" {
		return nil
	}

	accounts := make([]string, 0)
	for _, account := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(account); trimmed != "" {
			accounts = append(accounts, trimmed)
		}
	}

	return accounts
}
