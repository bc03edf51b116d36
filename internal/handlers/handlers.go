package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"sitesense/internal/logger"
	"sitesense/models"
)

const maxBodyBytes = 1048576

type Handler struct {
	Svc Service
	Log *zap.Logger
}

func NewHandler(svc Service, log *zap.Logger) *Handler {
	return &Handler{Svc: svc, Log: log}
}

// envelope is the body of every JSON response.
type envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// PingHandler answers "ok" for liveness checks.
func (h *Handler) PingHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

// decodeBody reads a size-limited JSON body into dst.
func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer r.Body.Close()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		return models.BadRequest("failed to read request body")
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return models.BadRequest("invalid JSON format")
	}
	return nil
}

// missingFields reports the names of absent required fields as one 400.
func missingFields(names []string) error {
	if len(names) == 0 {
		return nil
	}
	return models.BadRequest(fmt.Sprintf("missing required fields: %s", strings.Join(names, ", ")))
}

func requireQuery(r *http.Request, name string) (string, error) {
	v := strings.TrimSpace(r.URL.Query().Get(name))
	if v == "" {
		return "", models.BadRequest(fmt.Sprintf("missing required query parameter: %s", name))
	}
	return v, nil
}

func writeJSON(w http.ResponseWriter, status int, body envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func (h *Handler) respond(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, envelope{Success: true, Data: data})
}

// fail reports err with its own status when it is an ErrorResponse and as a 500 otherwise.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	var er *models.ErrorResponse
	if errors.As(err, &er) {
		writeJSON(w, er.StatusCode, envelope{Error: er.Message})
		return
	}

	logger.FromContext(r.Context(), h.Log).Error("request failed",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Error(err))
	writeJSON(w, http.StatusInternalServerError, envelope{Error: err.Error()})
}
