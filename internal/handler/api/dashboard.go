package api

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"StationPulse/internal/domain/models"
	"StationPulse/internal/services/analytics"
	"StationPulse/internal/usecase"
	apphttp "StationPulse/pkg/http"
	applogger "StationPulse/pkg/logger"
)

// DashboardHandler exposes the station analytics API.
type DashboardHandler struct {
	dashboard *usecase.Dashboard
	logger    *applogger.Logger

	statMetrics map[string]struct{}
	groupLabels map[string]struct{}
}

func NewDashboardHandler(dashboard *usecase.Dashboard, logger *applogger.Logger) *DashboardHandler {
	h := &DashboardHandler{
		dashboard:   dashboard,
		logger:      logger,
		statMetrics: make(map[string]struct{}),
		groupLabels: make(map[string]struct{}),
	}
	for _, name := range analytics.StatMetricNames() {
		h.statMetrics[name] = struct{}{}
	}
	for _, label := range models.GroupLabels() {
		h.groupLabels[label] = struct{}{}
	}
	return h
}

var _ apphttp.Handler = (*DashboardHandler)(nil)

func (h *DashboardHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.GET("/health", h.Health)
	g.GET("/stations", h.Stations)
	g.GET("/hourly", h.Hourly)
	g.GET("/buckets", h.Buckets)
	g.GET("/map", h.Map)
	g.GET("/summary", h.Summary)
	g.GET("/export", h.Export)
}

// Health reports service liveness and the active dataset.
func (h *DashboardHandler) Health(c echo.Context) error {
	report, err := h.dashboard.Report(c.Request().Context())
	if err != nil {
		h.logError("health", err)
		return apphttp.InternalServerErrorResponse(c)
	}
	return apphttp.SuccessResponse(c, echo.Map{
		"status":  "ok",
		"dataset": report,
	})
}

// Stations returns the per-station statistics table.
func (h *DashboardHandler) Stations(c echo.Context) error {
	stats, err := h.dashboard.Stations(c.Request().Context())
	if err != nil {
		h.logError("stations", err)
		return apphttp.InternalServerErrorResponse(c)
	}
	return apphttp.ListResponse(c, stats, int64(len(stats)))
}

// Hourly returns the dataset-wide hourly availability trend.
func (h *DashboardHandler) Hourly(c echo.Context) error {
	hourly, err := h.dashboard.Hourly(c.Request().Context())
	if err != nil {
		h.logError("hourly", err)
		return apphttp.InternalServerErrorResponse(c)
	}
	return apphttp.ListResponse(c, hourly, int64(len(hourly)))
}

type bucketsResponse struct {
	Metric   string                `json:"metric"`
	Groups   []models.BucketGroup  `json:"groups"`
	Stations []models.StationStats `json:"stations"`
}

// Buckets partitions stations into quartile groups on a metric column,
// optionally filtered to a comma-separated group selection.
func (h *DashboardHandler) Buckets(c echo.Context) error {
	var req models.BucketsRequest
	if errs := apphttp.ReadAndValidateRequest(c, &req); errs != nil {
		return apphttp.BadRequestResponse(c, errs)
	}

	if _, ok := h.statMetrics[req.Metric]; !ok {
		return apphttp.AppErrorResponse(c, apphttp.UnknownMetricError(req.Metric))
	}

	groups, err := h.parseGroups(req.Groups)
	if err != nil {
		return apphttp.AppErrorResponse(c, err)
	}

	bucketing, stations, buckErr := h.dashboard.Buckets(c.Request().Context(), req.Metric, groups)
	if buckErr != nil {
		h.logError("buckets", buckErr)
		return apphttp.InternalServerErrorResponse(c)
	}

	return apphttp.SuccessResponse(c, bucketsResponse{
		Metric:   bucketing.Metric,
		Groups:   bucketing.Groups,
		Stations: stations,
	})
}

func (h *DashboardHandler) parseGroups(raw string) ([]string, error) {
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		label := strings.TrimSpace(p)
		if label == "" {
			continue
		}
		if _, ok := h.groupLabels[label]; !ok {
			return nil, apphttp.BadRequestError("ERR_UNKNOWN_GROUP", "groups",
				fmt.Sprintf("unknown group label '%s'", label))
		}
		out = append(out, label)
	}
	return out, nil
}

// Map returns the colored station markers for a map metric.
func (h *DashboardHandler) Map(c echo.Context) error {
	var req models.MapRequest
	if errs := apphttp.ReadAndValidateRequest(c, &req); errs != nil {
		return apphttp.BadRequestResponse(c, errs)
	}

	view, err := h.dashboard.Map(c.Request().Context(), req.Metric, req.Min)
	if err != nil {
		h.logError("map", err)
		return apphttp.InternalServerErrorResponse(c)
	}
	return apphttp.SuccessResponse(c, view)
}

// Summary returns the dashboard side panels.
func (h *DashboardHandler) Summary(c echo.Context) error {
	var req models.SummaryRequest
	if errs := apphttp.ReadAndValidateRequest(c, &req); errs != nil {
		return apphttp.BadRequestResponse(c, errs)
	}

	summary, err := h.dashboard.Summary(c.Request().Context(), req.Metric)
	if err != nil {
		h.logError("summary", err)
		return apphttp.InternalServerErrorResponse(c)
	}
	return apphttp.SuccessResponse(c, summary)
}

// Export streams the statistics table as a CSV download.
func (h *DashboardHandler) Export(c echo.Context) error {
	data, err := h.dashboard.ExportCSV(c.Request().Context())
	if err != nil {
		h.logError("export", err)
		return apphttp.InternalServerErrorResponse(c)
	}

	filename := fmt.Sprintf("station_stats_%s.csv", time.Now().Format("20060102"))
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", data)
}

func (h *DashboardHandler) logError(op string, err error) {
	if h.logger != nil {
		h.logger.Error("request failed", applogger.String("operation", op), applogger.Error(err))
	}
}
