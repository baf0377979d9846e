package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/custodia-labs/bakehouse/internal/core/domain"
)

// Error codes returned in the "error" field of error bodies.
const (
	codeInvalidInput     = "invalid_input"
	codeNotFound         = "not_found"
	codeConflict         = "conflict"
	codeInvalidReference = "invalid_reference"
	codeInternal         = "internal_error"
	codeRateLimited      = "rate_limited"
	codeUnavailable      = "unavailable"
)

type bakeryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type bakedGoodResponse struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	BakeryID int64   `json:"bakery_id"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type healthResponse struct {
	Status string `json:"status"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func toBakeryResponse(b *domain.Bakery) bakeryResponse {
	return bakeryResponse{ID: b.ID, Name: b.Name}
}

func toBakedGoodResponse(g *domain.BakedGood) bakedGoodResponse {
	return bakedGoodResponse{ID: g.ID, Name: g.Name, Price: g.Price, BakeryID: g.BakeryID}
}

func toBakeryList(bakeries []domain.Bakery) []bakeryResponse {
	out := make([]bakeryResponse, 0, len(bakeries))
	for i := range bakeries {
		out = append(out, toBakeryResponse(&bakeries[i]))
	}
	return out
}

func toBakedGoodList(goods []domain.BakedGood) []bakedGoodResponse {
	out := make([]bakedGoodResponse, 0, len(goods))
	for i := range goods {
		out = append(out, toBakedGoodResponse(&goods[i]))
	}
	return out
}

// writeJSON writes data as a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// writeError writes a JSON error body.
func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: code, Message: message})
}

// writeServiceError maps a service error to a response. Domain errors carry
// messages built by this module and are returned as-is; anything else is
// logged in full and reported with a generic message.
func (s *Server) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, codeInvalidInput, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, codeNotFound, err.Error())
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, codeConflict, err.Error())
	case errors.Is(err, domain.ErrInvalidReference):
		writeError(w, http.StatusBadRequest, codeInvalidReference, err.Error())
	default:
		s.log.ErrorContext(r.Context(), "request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", requestIDFrom(r.Context()),
			"error", err,
		)
		writeError(w, http.StatusInternalServerError, codeInternal, "internal server error")
	}
}
