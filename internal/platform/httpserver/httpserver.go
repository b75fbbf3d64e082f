package httpserver

import (
	"net/http"
	"time"
)

// New builds the ledger's HTTP server. Per-request deadlines come from the
// router's timeout middleware, so only connection-level limits live here.
func New(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}
