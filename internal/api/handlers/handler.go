package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/schema"

	"github.com/dinotradez/backend/internal/aggregator"
	"github.com/dinotradez/backend/internal/contracts"
	"github.com/dinotradez/backend/pkg/logger"
)

var (
	validate = validator.New()
	decoder  = newDecoder()
)

func newDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}

// Handler serves the market data and analytics endpoints
// ⭐ SSOT: HTTP handlers for /api live on this struct only
type Handler struct {
	agg      *aggregator.Aggregator
	provider contracts.Provider
	logger   *logger.Logger
}

// New creates a new handler
func New(agg *aggregator.Aggregator, provider contracts.Provider, log *logger.Logger) *Handler {
	return &Handler{
		agg:      agg,
		provider: provider,
		logger:   log.WithField("module", "api"),
	}
}

// bindQuery decodes query parameters into req, applies `default` tags, then validates
func bindQuery(r *http.Request, req interface{}) error {
	if err := decoder.Decode(req, r.URL.Query()); err != nil {
		return contracts.InvalidInput("malformed query: %v", err)
	}

	if err := defaults.Set(req); err != nil {
		return fmt.Errorf("apply defaults: %w", err)
	}

	if err := validate.StructCtx(r.Context(), req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			msgs := make([]string, 0, len(validationErrors))
			for _, fe := range validationErrors {
				msgs = append(msgs, fieldMessage(fe))
			}
			return contracts.InvalidInput("%s", strings.Join(msgs, "; "))
		}
		return contracts.InvalidInput("%v", err)
	}

	return nil
}

func fieldMessage(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field()[:1]) + fe.Field()[1:]
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s parameter is required", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation: %s", field, fe.Tag())
	}
}

// splitSymbols parses a comma separated symbol list
func splitSymbols(raw string) []string {
	if raw == "" {
		return nil
	}
	return aggregator.NormalizeSymbols(strings.Split(raw, ","))
}

// respondFeatureError maps an error to its HTTP status:
// 400 for caller input, 502 for a required upstream failure, 500 otherwise.
func (h *Handler) respondFeatureError(w http.ResponseWriter, r *http.Request, err error) {
	var featureErr *contracts.FeatureError
	switch {
	case errors.Is(err, contracts.ErrInvalidInput):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &featureErr):
		logger.FromContext(r.Context(), h.logger).WithError(err).WithField("path", r.URL.Path).Error("Upstream failure")
		respondError(w, http.StatusBadGateway, fmt.Sprintf("Failed to fetch %s data", featureErr.Resource))
	default:
		logger.FromContext(r.Context(), h.logger).WithError(err).WithField("path", r.URL.Path).Error("Request failed")
		respondError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// respondUpstreamError reports a failed passthrough fetch as 502
func (h *Handler) respondUpstreamError(w http.ResponseWriter, r *http.Request, resource string, err error) {
	h.respondFeatureError(w, r, &contracts.FeatureError{Feature: "passthrough", Resource: resource, Cause: err})
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{
		"error": message,
	})
}
