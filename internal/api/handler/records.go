package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/revenue-tracker-api/infrastructure/integrator/supabase"
	"github.com/vfg2006/revenue-tracker-api/internal/domain"
	"github.com/vfg2006/revenue-tracker-api/internal/scheduler"
	"github.com/vfg2006/revenue-tracker-api/internal/usecases/calendaring"
	"github.com/vfg2006/revenue-tracker-api/pkg/apiErrors"
	"github.com/vfg2006/revenue-tracker-api/pkg/log"
	"github.com/vfg2006/revenue-tracker-api/pkg/utils"
)

// recordRequest é o corpo aceito em criações e atualizações de registros.
// A receita é aceita como número ou string e coercida silenciosamente.
type recordRequest struct {
	AccountName  string        `json:"accountName"`
	Product      string        `json:"product"`
	Date         *string       `json:"date"`
	Revenue      any           `json:"revenue"`
	AccountColor *domain.Color `json:"accountColor"`
}

// toInput valida os campos obrigatórios e converte para o domínio.
// A validação acontece antes de qualquer chamada ao armazenamento.
func (r recordRequest) toInput() (*domain.RecordInput, []string) {
	missing := make([]string, 0, 2)
	if strings.TrimSpace(r.AccountName) == "" {
		missing = append(missing, "accountName")
	}
	if strings.TrimSpace(r.Product) == "" {
		missing = append(missing, "product")
	}
	if len(missing) > 0 {
		return nil, missing
	}

	input := &domain.RecordInput{
		AccountName:  r.AccountName,
		Product:      r.Product,
		Revenue:      utils.CoerceRevenue(r.Revenue),
		AccountColor: r.AccountColor,
	}

	if r.Date != nil && *r.Date != "" {
		date := *r.Date
		input.Date = &date
	}

	return input, nil
}

// ListRecords devolve o snapshot corrente, na ordem do armazenamento (data decrescente)
func ListRecords(sync *scheduler.RecordSyncService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		records, err := sync.Snapshot(r.Context())
		if err != nil {
			writeStoreError(w, r, err, "Erro ao buscar registros")
			return
		}

		writeJSON(w, r, records)
	})
}

func CreateRecord(store supabase.RecordStore, sync *scheduler.RecordSyncService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var request recordRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		input, missing := request.toInput()
		if len(missing) > 0 {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Campos obrigatórios ausentes", missing)
			return
		}

		record, err := store.Create(r.Context(), *input)
		if err != nil {
			writeStoreError(w, r, err, "Erro ao criar registro")
			return
		}

		// Invalida o snapshot para que a próxima leitura rebusque os dados
		sync.Invalidate()

		logger.WithFields(log.Fields{
			"record_id": record.ID,
		}).Info("records: registro criado com sucesso")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(record); err != nil {
			logger.WithError(err).Error("records: erro ao codificar resposta")
		}
	})
}

func UpdateRecord(store supabase.RecordStore, sync *scheduler.RecordSyncService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "ID do registro é obrigatório", nil)
			return
		}

		var request recordRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		input, missing := request.toInput()
		if len(missing) > 0 {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Campos obrigatórios ausentes", missing)
			return
		}

		record, err := store.Update(r.Context(), id, *input)
		if err != nil {
			writeStoreError(w, r, err, "Erro ao atualizar registro")
			return
		}

		sync.Invalidate()

		writeJSON(w, r, record)
	})
}

func DeleteRecord(store supabase.RecordStore, sync *scheduler.RecordSyncService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "ID do registro é obrigatório", nil)
			return
		}

		if err := store.Delete(r.Context(), id); err != nil {
			writeStoreError(w, r, err, "Erro ao excluir registro")
			return
		}

		sync.Invalidate()

		w.WriteHeader(http.StatusNoContent)
	})
}

// ScheduleRecord move um registro para uma data do calendário, mantendo os
// demais campos inalterados (arrastar um pendente para um dia, por exemplo)
func ScheduleRecord(service calendaring.CalendarService, sync *scheduler.RecordSyncService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var request struct {
			Date string `json:"date"`
		}
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		records, err := sync.Snapshot(r.Context())
		if err != nil {
			writeStoreError(w, r, err, "Erro ao buscar registros")
			return
		}

		record, found := findRecord(records, id)
		if !found {
			apiErrors.WriteError(w, apiErrors.ErrRecordNotFound, "Registro não encontrado", nil)
			return
		}

		updated, err := service.MoveRecordToDate(r.Context(), record, request.Date)
		if err != nil {
			writeStoreError(w, r, err, "Erro ao reagendar registro")
			return
		}

		sync.Invalidate()

		writeJSON(w, r, updated)
	})
}

// PendingRecords lista os registros sem data, filtrados por conta
func PendingRecords(service calendaring.CalendarService, sync *scheduler.RecordSyncService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		records, err := sync.Snapshot(r.Context())
		if err != nil {
			writeStoreError(w, r, err, "Erro ao buscar registros")
			return
		}

		colorMap := assignColorsFor(records)
		pending := service.PendingList(records, colorMap, parseAccounts(r.URL.Query().Get("accounts")))

		writeJSON(w, r, pending)
	})
}

func findRecord(records []domain.Record, id string) (domain.Record, bool) {
	for _, record := range records {
		if record.ID == id {
			return record, true
		}
	}
	return domain.Record{}, false
}

// writeStoreError mapeia falhas do armazenamento remoto para a resposta da API
func writeStoreError(w http.ResponseWriter, r *http.Request, err error, message string) {
	logger := log.ForContext(r.Context())
	logger.WithError(err).Error(message)

	if errors.Is(err, supabase.ErrStore) {
		apiErrors.WriteError(w, apiErrors.ErrExternalService, "Falha no armazenamento remoto, tente novamente", nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, message, nil)
}

func writeJSON(w http.ResponseWriter, r *http.Request, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao codificar resposta")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
	}
}
