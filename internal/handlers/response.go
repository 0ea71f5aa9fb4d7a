// internal/handlers/response.go
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"math"
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/ammerola/phone-inventory/internal/core/domain"
)

const (
	msgInternal    = "Internal server error"
	msgInvalidJSON = "Invalid JSON body"
)

// ErrorBody is the error half of the response envelope
type ErrorBody struct {
	Message string   `json:"message"`
	Status  int      `json:"status"`
	Details []string `json:"details,omitempty"`
	Stack   []string `json:"stack,omitempty"`
}

type errorEnvelope struct {
	Success bool      `json:"success"`
	Error   ErrorBody `json:"error"`
}

// Responder writes the JSON envelope and maps errors to status codes.
// With debug set, internal failures expose their message and cause chain.
type Responder struct {
	logger *slog.Logger
	debug  bool
}

// NewResponder creates a responder
func NewResponder(logger *slog.Logger, debug bool) *Responder {
	return &Responder{
		logger: logger.With(slog.String("component", "responder")),
		debug:  debug,
	}
}

// JSON writes body with status
func (rs *Responder) JSON(w http.ResponseWriter, r *http.Request, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		rs.logger.ErrorContext(r.Context(), "failed to encode JSON response",
			slog.String("error", err.Error()))
	}
}

// Fail writes an error envelope with the given status
func (rs *Responder) Fail(w http.ResponseWriter, r *http.Request, status int, message string, details ...string) {
	rs.JSON(w, r, status, errorEnvelope{
		Error: ErrorBody{Message: message, Status: status, Details: details},
	})
}

// Error classifies err and writes the matching envelope
func (rs *Responder) Error(w http.ResponseWriter, r *http.Request, err error) {
	body := ErrorBody{Status: statusFor(err)}

	var de *domain.Error
	if errors.As(err, &de) && de.Kind != domain.KindInternal {
		body.Message = de.Message
		body.Details = de.Details
		rs.logger.DebugContext(r.Context(), "request rejected",
			slog.String("kind", string(de.Kind)),
			slog.String("error", err.Error()))
	} else {
		rs.logger.ErrorContext(r.Context(), "request failed",
			slog.String("error", err.Error()))

		body.Message = msgInternal
		if rs.debug {
			body.Message = err.Error()
			body.Stack = causes(err)
		}
	}

	rs.JSON(w, r, body.Status, errorEnvelope{Error: body})
}

func statusFor(err error) int {
	switch domain.KindOf(err) {
	case domain.KindValidation, domain.KindInvalidID:
		return http.StatusBadRequest
	case domain.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// causes lists the messages along the wrap chain
func causes(err error) []string {
	var chain []string
	for e := err; e != nil; e = errors.Unwrap(e) {
		chain = append(chain, e.Error())
	}
	return chain
}

// decodeJSON reads a JSON body into dst.
// Type mismatches do not abort decoding: they come back as violations, one
// per offending field, while every other field is still filled in.
func decodeJSON(r *http.Request, dst interface{}, fieldMessages map[string]string) ([]string, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, domain.NewValidationError(fmt.Sprintf("request body must not exceed %d bytes", maxErr.Limit))
		}
		return nil, domain.NewValidationError(msgInvalidJSON)
	}

	err = json.Unmarshal(body, dst)
	if err == nil {
		return nil, nil
	}
	var typeErr *json.UnmarshalTypeError
	if !errors.As(err, &typeErr) {
		return nil, domain.NewValidationError(msgInvalidJSON)
	}
	first := typeMessage(typeErr, fieldMessages)

	// Unmarshal stops reporting after the first mismatch, so walk the
	// top-level fields one at a time to find the rest.
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, domain.NewValidationError(msgInvalidJSON)
	}
	var violations []string
	for _, key := range slices.Sorted(maps.Keys(fields)) {
		single, err := json.Marshal(map[string]json.RawMessage{key: fields[key]})
		if err != nil {
			continue
		}
		if err := json.Unmarshal(single, dst); errors.As(err, &typeErr) {
			violations = append(violations, typeMessage(typeErr, fieldMessages))
		}
	}
	if len(violations) == 0 {
		violations = append(violations, first)
	}
	return mergeViolations(violations), nil
}

func typeMessage(typeErr *json.UnmarshalTypeError, fieldMessages map[string]string) string {
	if msg, ok := fieldMessages[typeErr.Field]; ok {
		return msg
	}
	return fmt.Sprintf("%s has an invalid type", typeErr.Field)
}

// mergeViolations concatenates lists, dropping repeated messages
func mergeViolations(lists ...[]string) []string {
	seen := make(map[string]struct{})
	var merged []string
	for _, list := range lists {
		for _, v := range list {
			if _, dup := seen[v]; dup {
				continue
			}
			seen[v] = struct{}{}
			merged = append(merged, v)
		}
	}
	return merged
}

// queryInt parses an optional integer query parameter
func queryInt(r *http.Request, name string) (*int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, domain.NewValidationError(fmt.Sprintf("%s must be an integer", name))
	}
	return &v, nil
}

// queryFloat parses an optional numeric query parameter
func queryFloat(r *http.Request, name string) (*float64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, domain.NewValidationError(fmt.Sprintf("%s must be a number", name))
	}
	return &v, nil
}
