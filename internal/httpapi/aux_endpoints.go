package httpapi

import (
    "context"
    "net/http"
    "time"
)

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
    toJSON(w, http.StatusOK, statusResponse{Status: "OK"})
}

// readyz reports 503 when the storage backend implements ReadyChecker and fails it.
func (s *Server) readyz(w http.ResponseWriter, r *http.Request) {
    ctx, cancel := context.WithTimeout(r.Context(), 800*time.Millisecond)
    defer cancel()
    if rc, ok := s.repo.(ReadyChecker); ok {
        if err := rc.Ready(ctx); err != nil {
            s.log.WarnContext(r.Context(), "storage not ready", "err", err)
            toJSON(w, http.StatusServiceUnavailable, statusResponse{Status: "UNAVAILABLE"})
            return
        }
    }
    toJSON(w, http.StatusOK, statusResponse{Status: "OK"})
}
