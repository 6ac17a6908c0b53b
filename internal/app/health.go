package app

import (
	"net/http"
	"sync/atomic"
)

type healthState struct {
	ready atomic.Bool
}

func (h *healthState) setReady(ready bool) {
	h.ready.Store(ready)
}

// healthz handles liveness probes.
func (h *healthState) healthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// readyz handles readiness probes.
func (h *healthState) readyz(w http.ResponseWriter, _ *http.Request) {
	if h.ready.Load() {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
		return
	}
	w.WriteHeader(http.StatusServiceUnavailable)
	_, _ = w.Write([]byte("not ready"))
}
