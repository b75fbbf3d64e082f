package middleware

import (
	"fmt"
	"net/http"

	"github.com/mssola/useragent"

	"healthledger/pkg/platform/middleware/device"
)

// Device parses the User-Agent header into a compact browser/OS description
// and stores it in the request context so emitted events carry it.
func Device(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.UserAgent()
		if raw == "" {
			next.ServeHTTP(w, r)
			return
		}
		ua := useragent.New(raw)
		name, version := ua.Browser()
		desc := fmt.Sprintf("%s %s (%s)", name, version, ua.OS())
		next.ServeHTTP(w, r.WithContext(device.WithDevice(r.Context(), desc)))
	})
}
