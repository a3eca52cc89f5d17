package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/user/page-analyzer/internal/delivery/http/request"
	"github.com/user/page-analyzer/internal/delivery/http/response"
	"github.com/user/page-analyzer/internal/entity"
	"github.com/user/page-analyzer/internal/usecase"
)

type Handler struct {
	urlManager  usecase.URLManager
	checkRunner usecase.CheckRunner
}

func NewHandler(urlManager usecase.URLManager, checkRunner usecase.CheckRunner) *Handler {
	return &Handler{
		urlManager:  urlManager,
		checkRunner: checkRunner,
	}
}

func (h *Handler) HandleRegisterURL(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterURLRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	id, err := h.urlManager.Register(r.Context(), req.URL)
	switch {
	case errors.Is(err, usecase.ErrInvalidURL):
		h.writeJSONError(w, "Invalid URL format", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrURLExists):
		h.writeJSON(w, http.StatusOK, response.RegisterURLResponse{ID: id, AlreadyExists: true})
	case err != nil:
		slog.Error("Failed to register url", "url", req.URL, "error", err)
		h.writeJSONError(w, "Internal server error", http.StatusInternalServerError)
	default:
		h.writeJSON(w, http.StatusCreated, response.RegisterURLResponse{ID: id})
	}
}

func (h *Handler) HandleListURLs(w http.ResponseWriter, r *http.Request) {
	statuses, err := h.urlManager.ListURLs(r.Context())
	if err != nil {
		slog.Error("Failed to list urls", "error", err)
		h.writeJSONError(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	resp := make([]response.URLStatusResponse, 0, len(statuses))
	for _, s := range statuses {
		resp = append(resp, response.URLStatusResponse{
			ID:             s.URL.ID,
			Name:           s.URL.Name,
			CreatedAt:      s.URL.CreatedAt,
			LastStatusCode: s.LastStatusCode,
		})
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) HandleGetURL(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	u, err := h.urlManager.GetURL(r.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrURLNotFound) {
			h.writeJSONError(w, "URL not found", http.StatusNotFound)
			return
		}
		slog.Error("Failed to get url", "id", id, "error", err)
		h.writeJSONError(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusOK, response.URLResponse{
		ID:        u.ID,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
	})
}

func (h *Handler) HandleRunCheck(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	checkID, err := h.checkRunner.RunCheck(r.Context(), id)
	switch {
	case errors.Is(err, usecase.ErrURLNotFound):
		h.writeJSONError(w, "URL not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCheckFailed):
		h.writeJSONError(w, "Page could not be fetched", http.StatusBadGateway)
	case err != nil:
		slog.Error("Failed to run check", "url_id", id, "error", err)
		h.writeJSONError(w, "Internal server error", http.StatusInternalServerError)
	default:
		h.writeJSON(w, http.StatusCreated, response.RunCheckResponse{CheckID: checkID})
	}
}

func (h *Handler) HandleListChecks(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	checks, err := h.checkRunner.ListChecks(r.Context(), id)
	if err != nil {
		slog.Error("Failed to list checks", "url_id", id, "error", err)
		h.writeJSONError(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	resp := make([]response.CheckResponse, 0, len(checks))
	for _, c := range checks {
		resp = append(resp, toCheckResponse(c))
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) HandleHealthCheck(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func toCheckResponse(c entity.Check) response.CheckResponse {
	return response.CheckResponse{
		ID:          c.ID,
		StatusCode:  c.StatusCode,
		H1:          c.H1,
		Title:       c.Title,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
	}
}

// pathID parses the {id} path segment. On failure it writes a 400 response
// and returns ok=false.
func (h *Handler) pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		h.writeJSONError(w, "Invalid URL id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Failed to write JSON response", "error", err)
	}
}

func (h *Handler) writeJSONError(w http.ResponseWriter, message string, status int) {
	h.writeJSON(w, status, map[string]string{"error": message})
}
