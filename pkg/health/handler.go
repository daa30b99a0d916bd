package health

import (
	"encoding/json"
	"mime"
	"net/http"
	"strings"
)

// LivenessHandler answers 200 for as long as the process can serve HTTP.
func LivenessHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report(w, r, &Response{Status: StatusHealthy})
	}
}

// ReadinessHandler runs checks on every request and answers 503 when the
// mail provider, or anything else registered, is failing.
func ReadinessHandler(checks Checks, opts ...Option) http.HandlerFunc {
	cfg := newConfig(opts...)

	return func(w http.ResponseWriter, r *http.Request) {
		report(w, r, runChecks(r.Context(), checks, cfg))
	}
}

func report(w http.ResponseWriter, r *http.Request, resp *Response) {
	status, text := http.StatusOK, "OK"
	if resp.Status != StatusHealthy {
		status, text = http.StatusServiceUnavailable, "Service Unavailable"
	}

	h := w.Header()
	h.Set("Cache-Control", "no-store")
	if acceptsJSON(r) {
		h.Set("Content-Type", "application/json")
	} else {
		h.Set("Content-Type", "text/plain; charset=utf-8")
	}
	w.WriteHeader(status)

	if r.Method == http.MethodHead {
		return
	}
	if acceptsJSON(r) {
		_ = json.NewEncoder(w).Encode(resp)
		return
	}
	_, _ = w.Write([]byte(text))
}

// acceptsJSON honours ?format=json first, then any application/json media
// range in the Accept header.
func acceptsJSON(r *http.Request) bool {
	if r.URL.Query().Get("format") == "json" {
		return true
	}
	for part := range strings.SplitSeq(r.Header.Get("Accept"), ",") {
		mt, _, err := mime.ParseMediaType(strings.TrimSpace(part))
		if err == nil && mt == "application/json" {
			return true
		}
	}
	return false
}
