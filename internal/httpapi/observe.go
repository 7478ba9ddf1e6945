package httpapi

import (
    "log/slog"
    "net/http"
    "runtime/debug"
    "strconv"
    "time"

    chi "github.com/go-chi/chi/v5"
    chimw "github.com/go-chi/chi/v5/middleware"
    "github.com/prometheus/client_golang/prometheus"
    "github.com/prometheus/client_golang/prometheus/promauto"
    "github.com/prometheus/client_golang/prometheus/promhttp"
)

// routeUnmatched labels requests chi could not route (404/405 before a handler).
const routeUnmatched = "unmatched"

var (
    httpRequestsTotal = promauto.NewCounterVec(
        prometheus.CounterOpts{
            Namespace: "players",
            Name:      "http_requests_total",
            Help:      "Player API requests by method, route pattern and status.",
        },
        []string{"method", "route", "status"},
    )
    httpRequestDuration = promauto.NewHistogramVec(
        prometheus.HistogramOpts{
            Namespace: "players",
            Name:      "http_request_duration_seconds",
            Help:      "Player API latency by method and route pattern.",
            Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
        },
        []string{"method", "route", "status"},
    )
    httpInFlight = promauto.NewGauge(prometheus.GaugeOpts{
        Namespace: "players",
        Name:      "http_requests_in_flight",
        Help:      "Player API requests currently being served.",
    })
)

func metricsHandler() http.Handler { return promhttp.Handler() }

// routePattern returns the chi pattern that matched r, so /{id} lookups share a label.
// Only meaningful after the router has served the request.
func routePattern(r *http.Request) string {
    if rctx := chi.RouteContext(r.Context()); rctx != nil {
        if p := rctx.RoutePattern(); p != "" { return p }
    }
    return routeUnmatched
}

// observe wraps the response once and feeds the outcome to both the request log
// and the Prometheus collectors. Server errors are logged at WARN.
func observe(l *slog.Logger) func(next http.Handler) http.Handler {
    return func(next http.Handler) http.Handler {
        return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
            ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
            start := time.Now()
            reqID := chimw.GetReqID(r.Context())
            l.Debug("request started", "req_id", reqID, "method", r.Method, "path", r.URL.Path)

            httpInFlight.Inc()
            defer httpInFlight.Dec()
            next.ServeHTTP(ww, r)

            elapsed := time.Since(start)
            status := ww.Status()
            if status == 0 { status = http.StatusOK }
            route := routePattern(r)
            code := strconv.Itoa(status)
            httpRequestsTotal.WithLabelValues(r.Method, route, code).Inc()
            httpRequestDuration.WithLabelValues(r.Method, route, code).Observe(elapsed.Seconds())

            level := slog.LevelInfo
            if status >= http.StatusInternalServerError { level = slog.LevelWarn }
            l.Log(r.Context(), level, "request complete",
                "req_id", reqID,
                "method", r.Method,
                "path", r.URL.Path,
                "route", route,
                "status", status,
                "bytes", ww.BytesWritten(),
                "duration", elapsed.String(),
            )
        })
    }
}

// recoverer turns a handler panic into the API's 500 error body and logs the stack.
func recoverer(l *slog.Logger) func(next http.Handler) http.Handler {
    return func(next http.Handler) http.Handler {
        return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
            defer func() {
                if rec := recover(); rec != nil {
                    if rec == http.ErrAbortHandler { panic(rec) }
                    l.ErrorContext(r.Context(), "panic", "req_id", chimw.GetReqID(r.Context()), "method", r.Method, "path", r.URL.Path, "err", rec, "stack", string(debug.Stack()))
                    writeErr(w, http.StatusInternalServerError, msgInternal)
                }
            }()
            next.ServeHTTP(w, r)
        })
    }
}
