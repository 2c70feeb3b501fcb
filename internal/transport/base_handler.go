package transport

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"fintrack/internal"
	"fintrack/pkg/logger"
)

// Envelope is the JSON shape every endpoint responds with.
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Errors  interface{} `json:"errors,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// BaseHandler provides common functionality for HTTP handlers.
type BaseHandler struct {
	Logger *slog.Logger

	// ExposeErrors controls whether 500 responses carry diagnostic detail.
	// Enabled in development, suppressed in production.
	ExposeErrors bool
}

// NewBaseHandler creates a base handler with logger.
func NewBaseHandler(lg *slog.Logger, exposeErrors bool) *BaseHandler {
	if lg == nil {
		lg = logger.L()
	}
	return &BaseHandler{Logger: lg, ExposeErrors: exposeErrors}
}

func (h *BaseHandler) writeEnvelope(w http.ResponseWriter, status int, env Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(env); err != nil {
		h.Logger.Error("failed to encode JSON response", "error", err)
	}
}

// WriteData writes a success envelope with data only.
func (h *BaseHandler) WriteData(w http.ResponseWriter, status int, data interface{}) {
	h.writeEnvelope(w, status, Envelope{Success: true, Data: data})
}

// WriteSuccess writes a success envelope with a message and data.
func (h *BaseHandler) WriteSuccess(w http.ResponseWriter, status int, message string, data interface{}) {
	h.writeEnvelope(w, status, Envelope{Success: true, Message: message, Data: data})
}

// WriteError writes a failure envelope with a message.
func (h *BaseHandler) WriteError(w http.ResponseWriter, status int, message string) {
	h.Logger.Error("http error", "status", status, "message", message)
	h.writeEnvelope(w, status, Envelope{Success: false, Message: message})
}

// HandleServiceError translates service errors into the matching HTTP status.
// Validation errors carry their field list; anything unclassified becomes a
// generic 500, with detail only when ExposeErrors is set.
func (h *BaseHandler) HandleServiceError(w http.ResponseWriter, err error) {
	if appErr, ok := internal.IsAppError(err); ok {
		env := Envelope{Success: false, Message: appErr.Message}
		if details, ok := appErr.Details.(internal.ValidationErrors); ok {
			env.Errors = details.Errors
		}
		h.Logger.Warn("request failed", "status", appErr.StatusCode, "code", appErr.Code, "message", appErr.Message)
		h.writeEnvelope(w, appErr.StatusCode, env)
		return
	}

	h.Logger.Error("unhandled service error", "error", err)
	env := Envelope{Success: false, Message: "Internal server error"}
	if h.ExposeErrors {
		env.Error = err.Error()
	}
	h.writeEnvelope(w, http.StatusInternalServerError, env)
}
