package httpapi

import (
    "net/http"
    "strings"
)

// isJSON reports whether the request declares a JSON body (optionally with params).
// Bodies sent under any other Content-Type are not parsed.
func isJSON(r *http.Request) bool {
    ct := r.Header.Get("Content-Type")
    if ct == "" { return false }
    mime := strings.ToLower(strings.TrimSpace(strings.Split(ct, ";")[0]))
    return mime == "application/json" || strings.HasSuffix(mime, "+json")
}
