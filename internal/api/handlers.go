package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/neexbeast/tripwise/internal/advice"
	"github.com/neexbeast/tripwise/internal/apperr"
	"github.com/neexbeast/tripwise/internal/planner"
)

const maxBodyBytes = 1 << 20

// Handlers holds the dependencies for all HTTP handlers.
type Handlers struct {
	planner TripPlanner
	config  ConfigChecker
	now     func() time.Time
	log     *slog.Logger
}

// NewHandlers constructs Handlers with all required dependencies.
func NewHandlers(p TripPlanner, cfg ConfigChecker, log *slog.Logger) *Handlers {
	return &Handlers{
		planner: p,
		config:  cfg,
		now:     time.Now,
		log:     log,
	}
}

type errorResponse struct {
	Error   string   `json:"error"`
	Details string   `json:"details,omitempty"`
	Fields  []string `json:"fields,omitempty"`
}

type askRequest struct {
	Question string                 `json:"question"`
	Context  advice.FollowUpContext `json:"context"`
}

type askResponse struct {
	Success  bool   `json:"success"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type configResponse struct {
	Valid   bool            `json:"valid"`
	Message string          `json:"message"`
	APIs    map[string]bool `json:"apis"`
}

// writeJSON encodes v as JSON and writes it with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps err to a status code and JSON error body. Errors that are
// not *apperr.Error never leak their message.
func (h *Handlers) writeError(w http.ResponseWriter, r *http.Request, err error) {
	ae, ok := apperr.As(err)
	if !ok {
		h.log.ErrorContext(r.Context(), "unhandled error", "path", r.URL.Path, "err", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
		return
	}

	status := ae.HTTPStatus()
	if status >= http.StatusInternalServerError {
		h.log.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "kind", ae.Kind.String(), "err", err)
	} else {
		h.log.InfoContext(r.Context(), "request rejected", "path", r.URL.Path, "kind", ae.Kind.String(), "err", err)
	}

	writeJSON(w, status, errorResponse{Error: ae.Message, Details: ae.Details(), Fields: ae.Fields})
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperr.Wrap(apperr.KindValidation, "Invalid JSON body", err)
	}
	return nil
}

// Health handles GET /api/health.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"timestamp": h.now().Format(time.RFC3339),
	})
}

// ValidateConfig handles GET /api/validate-config.
func (h *Handlers) ValidateConfig(w http.ResponseWriter, r *http.Request) {
	apis := h.config.APIStatus()
	if err := h.config.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, configResponse{Valid: false, Message: err.Error(), APIs: apis})
		return
	}
	writeJSON(w, http.StatusOK, configResponse{Valid: true, Message: "Configuration is valid", APIs: apis})
}

// GeneratePlan handles POST /api/generate-plan.
func (h *Handlers) GeneratePlan(w http.ResponseWriter, r *http.Request) {
	var req planner.TripRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	plan, err := h.planner.Plan(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, plan)
}

// AskQuestion handles POST /api/ask-question.
func (h *Handlers) AskQuestion(w http.ResponseWriter, r *http.Request) {
	var req askRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	answer, err := h.planner.AnswerFollowUp(r.Context(), req.Question, req.Context)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, askResponse{Success: true, Question: req.Question, Answer: answer})
}

// GetWeather handles GET /api/weather/{destination}?start=&end=.
func (h *Handlers) GetWeather(w http.ResponseWriter, r *http.Request) {
	destination := pathParam(r, "destination")
	q := r.URL.Query()

	res, err := h.planner.ResolveWeather(r.Context(), destination, q.Get("start"), q.Get("end"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// GetCountry handles GET /api/country/{name}.
func (h *Handlers) GetCountry(w http.ResponseWriter, r *http.Request) {
	h.country(w, r, pathParam(r, "name"), false)
}

// GetCountryByCode handles GET /api/country/code/{code}.
func (h *Handlers) GetCountryByCode(w http.ResponseWriter, r *http.Request) {
	h.country(w, r, pathParam(r, "code"), true)
}

func (h *Handlers) country(w http.ResponseWriter, r *http.Request, key string, byCode bool) {
	info, err := h.planner.ResolveCountry(r.Context(), key, byCode)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, info)
}

// pathParam returns the unescaped URL parameter. chi matches on the raw path
// when the request carries escaped characters.
func pathParam(r *http.Request, key string) string {
	v := chi.URLParam(r, key)
	if unescaped, err := url.PathUnescape(v); err == nil {
		v = unescaped
	}
	return strings.TrimSpace(v)
}
