package httpapi

import (
    "net/http"

    chimw "github.com/go-chi/chi/v5/middleware"
)

const msgInternal = "internal server error"

// errorResponse is the standard error payload for the API.
type errorResponse struct {
    Message string `json:"message"`
}

func writeErr(w http.ResponseWriter, status int, msg string) {
    toJSON(w, status, errorResponse{Message: msg})
}

func badRequest(w http.ResponseWriter, msg string) { writeErr(w, http.StatusBadRequest, msg) }
func notFound(w http.ResponseWriter, msg string)   { writeErr(w, http.StatusNotFound, msg) }

// internalError logs the storage fault and answers 500 without leaking details.
func (s *Server) internalError(w http.ResponseWriter, r *http.Request, err error) {
    s.log.ErrorContext(r.Context(), "request failed", "req_id", chimw.GetReqID(r.Context()), "method", r.Method, "path", r.URL.Path, "err", err)
    writeErr(w, http.StatusInternalServerError, msgInternal)
}
