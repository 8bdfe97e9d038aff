/*
handlers.go - HTTP API handlers for the settlement calculator

PURPOSE:
  Exposes the rescisao engine via a small JSON API. Handlers only read the
  body, delegate to the engine and serialize the result; every formula lives
  in package rescisao.

ENDPOINTS:
  GET    /                 Service status
  GET    /health           Liveness probe
  POST   /api/calcular     Calculate a settlement
  POST   /api/validar      Advisory checks on a request
  GET    /api/motivos      Termination reasons and notice types

ERROR HANDLING:
  - 400: body missing, empty or not a JSON object ("Dados não fornecidos")
  - 200 with sucesso=false: the object was readable but a field was missing
    or malformed. Clients rely on this contract.
  - 413: body larger than maxBodyBytes

SECURITY NOTE:
  No authentication. The calculator holds no data.

SEE ALSO:
  - dto.go: Response structures
  - server.go: Router setup and middleware
*/
package api

import (
	"errors"
	"io"
	"log"
	"net/http"
	"time"

	json "github.com/goccy/go-json"
	"github.com/warp/rescisao/calendar"
	"github.com/warp/rescisao/rescisao"
)

// maxBodyBytes bounds request bodies; a settlement request is a few hundred bytes.
const maxBodyBytes = 1 << 20

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds the dependencies of the HTTP handlers.
type Handler struct {
	// Metrics may be nil.
	Metrics *Metrics

	// Today anchors the "termination in the future" check.
	Today func() calendar.Date
}

// NewHandler creates a handler. metrics may be nil.
func NewHandler(metrics *Metrics) *Handler {
	return &Handler{
		Metrics: metrics,
		Today:   calendar.Today,
	}
}

// =============================================================================
// STATUS
// =============================================================================

// Home reports that the API is online.
// GET /
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, StatusResponse{
		Status:  "online",
		Message: "API Calculadora de Rescisão - Use o endpoint /api/calcular com método POST",
	})
}

// Health is the liveness probe.
// GET /health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}

// =============================================================================
// CALCULATION
// =============================================================================

// Calculate computes a settlement.
// POST /api/calcular
func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	body, ok := readBody(w, r)
	if !ok {
		return
	}

	in, err := rescisao.DecodeInput(body)
	if errors.Is(err, rescisao.ErrNoData) {
		h.Metrics.observe(rescisao.ReasonOther, resultRejected, 0)
		writeJSON(w, http.StatusBadRequest, CalculationResponse{Success: false, Error: msgNoData})
		return
	}

	start := time.Now()
	var out rescisao.Outcome
	if err != nil {
		out = rescisao.Outcome{Err: err}
	} else {
		out = rescisao.Calculate(in)
	}

	result := resultSuccess
	if !out.Succeeded() {
		result = resultInvalid
	}
	h.Metrics.observe(reasonOf(in), result, time.Since(start))

	writeJSON(w, http.StatusOK, NewCalculationResponse(out))
}

// Validate runs the advisory checks without calculating.
// POST /api/validar
func (h *Handler) Validate(w http.ResponseWriter, r *http.Request) {
	body, ok := readBody(w, r)
	if !ok {
		return
	}

	in, err := rescisao.DecodeInput(body)
	if errors.Is(err, rescisao.ErrNoData) {
		writeJSON(w, http.StatusBadRequest, ValidationResponse{Valid: false, Errors: []string{msgNoData}})
		return
	}

	var req rescisao.Request
	if err == nil {
		req, err = in.Parse()
	}
	if err != nil {
		writeJSON(w, http.StatusOK, ValidationResponse{Valid: false, Errors: []string{err.Error()}})
		return
	}

	problems := rescisao.Check(req, h.Today())
	resp := ValidationResponse{
		Valid:  len(problems) == 0,
		Errors: make([]string, len(problems)),
	}
	for i, p := range problems {
		resp.Errors[i] = p.Message
		resp.Problems = append(resp.Problems, ProblemDTO{Code: p.Code, Message: p.Message})
	}
	writeJSON(w, http.StatusOK, resp)
}

// ListReasons returns the reason and notice catalogs.
// GET /api/motivos
func (h *Handler) ListReasons(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, newCatalogResponse())
}

// =============================================================================
// HELPERS
// =============================================================================

func readBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "Request body too large", err)
			return nil, false
		}
		writeError(w, http.StatusBadRequest, "Failed to read request body", err)
		return nil, false
	}
	return body, true
}

func reasonOf(in rescisao.Input) rescisao.Reason {
	if in.Reason == nil {
		return rescisao.ReasonOther
	}
	return rescisao.ParseReason(*in.Reason)
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("api: failed to encode %T response: %v", data, err)
	}
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
