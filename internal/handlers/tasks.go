package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/taskbook/api/internal/database"
	"github.com/taskbook/api/internal/models"
	"github.com/taskbook/api/internal/request"
	"github.com/taskbook/api/internal/taskid"
	"github.com/taskbook/api/internal/tasklist"
	"github.com/taskbook/api/internal/validation"
)

// TaskHandler drives the per-user task list through HTTP gestures.
type TaskHandler struct {
	lists  *tasklist.Manager
	logger *zap.Logger
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(lists *tasklist.Manager, logger *zap.Logger) *TaskHandler {
	return &TaskHandler{lists: lists, logger: logger}
}

// RegisterRoutes registers task routes on the given router. The router
// should already carry the /tasks prefix and the auth middleware.
func (h *TaskHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("", h.View).Methods("GET")
	r.HandleFunc("", h.Add).Methods("POST")
	r.HandleFunc("/refresh", h.Refresh).Methods("POST")
	r.HandleFunc("/more", h.LoadMore).Methods("POST")
	r.HandleFunc("/filter", h.SetFilter).Methods("PUT")
	r.HandleFunc("/filter", h.ClearFilter).Methods("DELETE")
	r.HandleFunc("/suggestions", h.Suggestions).Methods("GET")
	r.HandleFunc("/{id}", h.Edit).Methods("PATCH")
	r.HandleFunc("/{id}", h.Delete).Methods("DELETE")
}

func (h *TaskHandler) list(w http.ResponseWriter, r *http.Request) *tasklist.List {
	user := request.UserFromContext(r)
	if user == nil {
		respondJSONError(w, http.StatusUnauthorized, "Unauthorized", "User not found in context")
		return nil
	}
	return h.lists.Get(user.Email)
}

// View returns the current snapshot without touching the store.
func (h *TaskHandler) View(w http.ResponseWriter, r *http.Request) {
	l := h.list(w, r)
	if l == nil {
		return
	}
	respondJSON(w, http.StatusOK, l.Snapshot())
}

// Refresh resets pagination and loads the first page.
func (h *TaskHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	l := h.list(w, r)
	if l == nil {
		return
	}
	snap, err := l.Refresh(r.Context())
	if err != nil {
		h.respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, snap)
}

type loadMoreResponse struct {
	tasklist.Snapshot
	Loaded bool `json:"loaded"`
}

// LoadMore appends the next page. While a fetch is already in flight, or
// when nothing more is expected, it reports loaded=false without another
// store round-trip.
func (h *TaskHandler) LoadMore(w http.ResponseWriter, r *http.Request) {
	l := h.list(w, r)
	if l == nil {
		return
	}
	snap, loaded, err := l.LoadMore(r.Context())
	if err != nil {
		h.respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, loadMoreResponse{Snapshot: snap, Loaded: loaded})
}

type taskResponse struct {
	Task models.Task       `json:"task"`
	View tasklist.Snapshot `json:"view"`
}

// Add validates the input and creates a task.
func (h *TaskHandler) Add(w http.ResponseWriter, r *http.Request) {
	l := h.list(w, r)
	if l == nil {
		return
	}

	var in validation.TaskInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondJSONError(w, http.StatusBadRequest, "Bad Request", "Invalid JSON body")
		return
	}
	if err := validation.ValidateTaskInput(&in); err != nil {
		respondJSONError(w, http.StatusBadRequest, "Bad Request", err.Error())
		return
	}

	task, snap, err := l.Add(r.Context(), in.Description, in.StartTime, in.EndTime)
	if err != nil {
		h.respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, taskResponse{Task: task, View: snap})
}

// Edit validates the input and updates the task in place.
func (h *TaskHandler) Edit(w http.ResponseWriter, r *http.Request) {
	l := h.list(w, r)
	if l == nil {
		return
	}
	id := mux.Vars(r)["id"]

	var in validation.TaskInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondJSONError(w, http.StatusBadRequest, "Bad Request", "Invalid JSON body")
		return
	}
	if err := validation.ValidateTaskInput(&in); err != nil {
		respondJSONError(w, http.StatusBadRequest, "Bad Request", err.Error())
		return
	}

	snap, err := l.Edit(r.Context(), id, in.Description, in.StartTime, in.EndTime)
	if err != nil {
		h.respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, snap)
}

// Delete removes the task.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	l := h.list(w, r)
	if l == nil {
		return
	}
	snap, err := l.Delete(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, snap)
}

type filterRequest struct {
	Date string `json:"date"`
}

// SetFilter narrows the view to one day of already-fetched tasks.
func (h *TaskHandler) SetFilter(w http.ResponseWriter, r *http.Request) {
	l := h.list(w, r)
	if l == nil {
		return
	}
	var req filterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSONError(w, http.StatusBadRequest, "Bad Request", "Invalid JSON body")
		return
	}
	respondJSON(w, http.StatusOK, l.SetFilter(req.Date))
}

// ClearFilter restores the unfiltered view.
func (h *TaskHandler) ClearFilter(w http.ResponseWriter, r *http.Request) {
	l := h.list(w, r)
	if l == nil {
		return
	}
	respondJSON(w, http.StatusOK, l.ClearFilter())
}

// Suggestions returns autocomplete candidates for the description field.
// q narrows by prefix; exclude drops the caller's in-progress input.
func (h *TaskHandler) Suggestions(w http.ResponseWriter, r *http.Request) {
	l := h.list(w, r)
	if l == nil {
		return
	}
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	suggestions := l.Suggestions(r.URL.Query().Get("q"), r.URL.Query().Get("exclude"), limit)
	respondJSON(w, http.StatusOK, map[string]any{"suggestions": suggestions})
}

func (h *TaskHandler) respondStoreError(w http.ResponseWriter, err error) {
	message := database.Message(err)
	switch {
	case errors.Is(err, taskid.ErrMalformedTime):
		respondJSONError(w, http.StatusBadRequest, "Bad Request", "startTime must be an RFC3339 timestamp")
	case errors.Is(err, database.ErrNotFound):
		respondJSONError(w, http.StatusNotFound, "Not Found", message)
	case errors.Is(err, database.ErrAlreadyExists):
		respondJSONError(w, http.StatusConflict, "Conflict", message)
	default:
		h.logger.Error("task_store_failure", zap.Error(err))
		respondJSONError(w, http.StatusBadGateway, "Store Error", message)
	}
}
