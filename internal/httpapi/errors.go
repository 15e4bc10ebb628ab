package httpapi

import (
	"encoding/json"
	"net/http"

	"sigvault/internal/domain"
)

// CodeRateLimited is the error code of a 429 response.
const CodeRateLimited = "RATE_LIMITED"

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// StatusFor maps an error kind to its HTTP status.
func StatusFor(kind domain.ErrorKind) int {
	switch kind {
	case domain.KindIdentityNotFound, domain.KindKeysNotFound:
		return http.StatusNotFound
	case domain.KindIdentityAlreadyExists, domain.KindKeysAlreadyExist:
		return http.StatusConflict
	case domain.KindMalformedInput:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeText(w http.ResponseWriter, status int, s string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(s))
}

// writeError classifies err and writes the matching status and body. Server
// side kinds are logged as invariant violations and their detail is withheld.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	kind := domain.KindOf(err)
	status := StatusFor(kind)

	msg := err.Error()
	if status == http.StatusInternalServerError {
		log.Errorf("%s %s: %s: %v", r.Method, r.URL.Path, kind, err)
		if sentinel := kind.Sentinel(); sentinel != nil {
			msg = sentinel.Error()
		} else {
			msg = "internal error"
		}
	}
	writeJSON(w, status, ErrorBody{Error: msg, Code: kind.String()})
}
