package handler

import (
	"net/http"

	"github.com/vfg2006/revenue-tracker-api/infrastructure/integrator/supabase"
	"github.com/vfg2006/revenue-tracker-api/internal/api/handler/router"
	"github.com/vfg2006/revenue-tracker-api/internal/scheduler"
	"github.com/vfg2006/revenue-tracker-api/internal/usecases/calendaring"
	"github.com/vfg2006/revenue-tracker-api/internal/usecases/reporting"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Records(store supabase.RecordStore, sync *scheduler.RecordSyncService, calendarService calendaring.CalendarService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/records",
			Method:  http.MethodGet,
			Handler: ListRecords(sync),
		},
		{
			Path:    "/v1/records",
			Method:  http.MethodPost,
			Handler: CreateRecord(store, sync),
		},
		{
			Path:    "/v1/records/:id",
			Method:  http.MethodPut,
			Handler: UpdateRecord(store, sync),
		},
		{
			Path:    "/v1/records/:id",
			Method:  http.MethodDelete,
			Handler: DeleteRecord(store, sync),
		},
		{
			Path:    "/v1/records/:id/schedule",
			Method:  http.MethodPost,
			Handler: ScheduleRecord(calendarService, sync),
		},
		{
			Path:    "/v1/records/pending",
			Method:  http.MethodGet,
			Handler: PendingRecords(calendarService, sync),
		},
	}
}

func Calendar(service calendaring.CalendarService, sync *scheduler.RecordSyncService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/calendar",
			Method:  http.MethodGet,
			Handler: GetCalendarMonth(service, sync),
		},
		{
			Path:    "/v1/accounts/colors",
			Method:  http.MethodGet,
			Handler: GetAccountColors(sync),
		},
	}
}

func Dashboard(service reporting.Reporter, sync *scheduler.RecordSyncService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard/summary",
			Method:  http.MethodGet,
			Handler: GetDashboardSummary(service, sync),
		},
		{
			Path:    "/v1/dashboard/timeseries",
			Method:  http.MethodGet,
			Handler: GetDashboardTimeSeries(service, sync),
		},
	}
}

func CronJobs(sync *scheduler.RecordSyncService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/records-sync/run",
			Method:  http.MethodPost,
			Handler: RunRecordSync(sync),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(sync),
		},
	}
}
