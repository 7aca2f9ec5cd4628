package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/taskbook/api/internal/database"
	"github.com/taskbook/api/internal/export"
	"github.com/taskbook/api/internal/request"
)

// ExportHandler serves a month of tasks as a JSON or CSV download.
type ExportHandler struct {
	tasks  *database.TaskRepository
	logger *zap.Logger
}

// NewExportHandler creates a new export handler
func NewExportHandler(tasks *database.TaskRepository, logger *zap.Logger) *ExportHandler {
	return &ExportHandler{tasks: tasks, logger: logger}
}

// RegisterRoutes registers the export route on the given router
func (h *ExportHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("", h.Download).Methods("GET")
}

// Download streams the export file. Query parameters: year, month
// (default: current), format=json|csv (default json), and for CSV
// formatted=true|false to choose readable dates over raw RFC3339.
func (h *ExportHandler) Download(w http.ResponseWriter, r *http.Request) {
	user := request.UserFromContext(r)
	if user == nil {
		respondJSONError(w, http.StatusUnauthorized, "Unauthorized", "User not found in context")
		return
	}

	now := time.Now()
	year, month := now.Year(), int(now.Month())
	if v := r.URL.Query().Get("year"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			respondJSONError(w, http.StatusBadRequest, "Bad Request", "year must be a number")
			return
		}
		year = parsed
	}
	if v := r.URL.Query().Get("month"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 || parsed > 12 {
			respondJSONError(w, http.StatusBadRequest, "Bad Request", "month must be between 1 and 12")
			return
		}
		month = parsed
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = "json"
	}
	if format != "json" && format != "csv" {
		respondJSONError(w, http.StatusBadRequest, "Bad Request", "format must be json or csv")
		return
	}

	startISO, endISO := export.MonthRange(year, month)
	tasks, err := h.tasks.ByDateRange(r.Context(), user.Email, startISO, endISO)
	if err != nil {
		h.logger.Error("export_query_failure", zap.Error(err))
		respondJSONError(w, http.StatusBadGateway, "Store Error", database.Message(err))
		return
	}

	filename := export.Filename(year, month, format)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	switch format {
	case "json":
		body, err := export.JSON(tasks, year, month, now)
		if err != nil {
			h.logger.Error("export_encode_failure", zap.Error(err))
			respondJSONError(w, http.StatusInternalServerError, "Internal Server Error", "Failed to build export")
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(body)
	case "csv":
		body := export.CSV(tasks)
		if r.URL.Query().Get("formatted") == "true" {
			body = export.FormattedCSV(tasks)
		}
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		_, _ = w.Write([]byte(body))
	}
}
