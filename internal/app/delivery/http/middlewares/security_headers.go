package middlewares

import (
	"net/http"

	"healthcamp-service/internal/pkg/constvars"
)

var securityHeaders = map[string]string{
	constvars.HeaderXContentTypeOptions:     "nosniff",
	constvars.HeaderXFrameOptions:           "SAMEORIGIN",
	constvars.HeaderXXSSProtection:          "0",
	constvars.HeaderReferrerPolicy:          "no-referrer",
	constvars.HeaderStrictTransportSecurity: "max-age=15552000; includeSubDomains",
	constvars.HeaderContentSecurityPolicy:   "default-src 'self'; frame-ancestors 'self'; object-src 'none'",
	constvars.HeaderCrossOriginOpenerPolicy: "same-origin",
}

func (m *Middlewares) SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for header, value := range securityHeaders {
			w.Header().Set(header, value)
		}
		next.ServeHTTP(w, r)
	})
}
