package httpapi

import (
    "bytes"
    "context"
    "encoding/json"
    "errors"
    "io"
    "net/http"
)

type ctxKey string

const ctxKeyPlayerUpdate ctxKey = "decodedPlayerUpdate"

var errNotObject = errors.New("body must be a JSON object")

// decodeUpdate parses the optional {name, country, rank} body and stores the
// resulting roster.Update in the request context. An empty or non-JSON body is an
// empty update; unknown fields (a client-sent id included) are ignored.
func (s *Server) decodeUpdate() func(http.Handler) http.Handler {
    return func(next http.Handler) http.Handler {
        return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
            var req playerRequest
            if r.Body != nil && isJSON(r) {
                if err := decodeObject(r.Body, &req); err != nil {
                    badRequest(w, "invalid JSON: "+err.Error())
                    return
                }
            }
            ctx := context.WithValue(r.Context(), ctxKeyPlayerUpdate, req.toUpdate())
            next.ServeHTTP(w, r.WithContext(ctx))
        })
    }
}

// decodeObject reads exactly one JSON object from body into dst. An empty body
// leaves dst untouched; any other top-level value or trailing data is an error.
func decodeObject(body io.Reader, dst *playerRequest) error {
    dec := json.NewDecoder(body)
    var raw json.RawMessage
    if err := dec.Decode(&raw); err != nil {
        if errors.Is(err, io.EOF) { return nil }
        return err
    }
    if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
        if err == nil { return errors.New("unexpected data after JSON object") }
        return err
    }
    if !bytes.HasPrefix(bytes.TrimSpace(raw), []byte("{")) { return errNotObject }
    return json.Unmarshal(raw, dst)
}
