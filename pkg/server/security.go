package server

import (
	"net/http"
)

// apiSecurityHeaders are set on every response. Responses are JSON or plain
// text and are never meant to be loaded as a page.
var apiSecurityHeaders = []struct {
	name, value string
}{
	// 2 years
	{"Strict-Transport-Security", "max-age=63072000; includeSubDomains"},
	{"X-Content-Type-Options", "nosniff"},
	{"X-Frame-Options", "DENY"},
	{"Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'"},
	{"Referrer-Policy", "no-referrer"},
	// other origins can't pull results in with no-cors requests
	{"Cross-Origin-Resource-Policy", "same-origin"},
}

func (s *Server) securityHeadersMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		for _, sh := range apiSecurityHeaders {
			h.Set(sh.name, sh.value)
		}
		next.ServeHTTP(w, r)
	})
}
