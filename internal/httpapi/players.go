// Player handlers: list, create, get, replace-or-create, patch, delete.
package httpapi

import (
    "errors"
    "net/http"

    chi "github.com/go-chi/chi/v5"

    "github.com/tinoosan/players/internal/errs"
    "github.com/tinoosan/players/internal/roster"
)

const (
    msgPlayerNotFound = "Player not found!"
    // DELETE has always used this capitalization; clients match on it.
    msgPlayerNotFoundDelete = "Player Not Found"
    listCacheControl        = "public, max-age=300"
)

// listPlayers handles GET /
func (s *Server) listPlayers(w http.ResponseWriter, r *http.Request) {
    list, err := s.svc.List(r.Context())
    if err != nil { s.internalError(w, r, err); return }
    w.Header().Set("Cache-Control", listCacheControl)
    toJSON(w, http.StatusOK, list)
}

// createPlayer handles POST /
func (s *Server) createPlayer(w http.ResponseWriter, r *http.Request) {
    u, ok := updateFromContext(w, r)
    if !ok { return }
    p, err := s.svc.Create(r.Context(), u)
    if err != nil { s.internalError(w, r, err); return }
    toJSON(w, http.StatusCreated, p)
}

// getPlayer handles GET /{id}
func (s *Server) getPlayer(w http.ResponseWriter, r *http.Request) {
    p, err := s.svc.Get(r.Context(), chi.URLParam(r, "id"))
    if err != nil {
        if errors.Is(err, errs.ErrNotFound) { notFound(w, msgPlayerNotFound) } else { s.internalError(w, r, err) }
        return
    }
    toJSON(w, http.StatusOK, p)
}

// replacePlayer handles PUT /{id}. A missing id creates a new player under a fresh id.
func (s *Server) replacePlayer(w http.ResponseWriter, r *http.Request) {
    u, ok := updateFromContext(w, r)
    if !ok { return }
    p, created, err := s.svc.Replace(r.Context(), chi.URLParam(r, "id"), u)
    if err != nil { s.internalError(w, r, err); return }
    if created {
        s.log.DebugContext(r.Context(), "put created player", "path_id", chi.URLParam(r, "id"), "player_id", p.ID)
    }
    toJSON(w, http.StatusOK, p)
}

// patchPlayer handles PATCH /{id}
func (s *Server) patchPlayer(w http.ResponseWriter, r *http.Request) {
    u, ok := updateFromContext(w, r)
    if !ok { return }
    p, err := s.svc.Patch(r.Context(), chi.URLParam(r, "id"), u)
    if err != nil {
        if errors.Is(err, errs.ErrNotFound) { notFound(w, msgPlayerNotFound) } else { s.internalError(w, r, err) }
        return
    }
    toJSON(w, http.StatusOK, p)
}

// deletePlayer handles DELETE /{id}
func (s *Server) deletePlayer(w http.ResponseWriter, r *http.Request) {
    if err := s.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
        if errors.Is(err, errs.ErrNotFound) { notFound(w, msgPlayerNotFoundDelete) } else { s.internalError(w, r, err) }
        return
    }
    w.WriteHeader(http.StatusNoContent)
}

func updateFromContext(w http.ResponseWriter, r *http.Request) (roster.Update, bool) {
    u, ok := r.Context().Value(ctxKeyPlayerUpdate).(roster.Update)
    if !ok {
        writeErr(w, http.StatusInternalServerError, "validated request missing")
        return roster.Update{}, false
    }
    return u, true
}
