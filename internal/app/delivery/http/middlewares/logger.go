package middlewares

import (
	"net/http"
	"time"

	"healthcamp-service/internal/app/config"

	"github.com/sirupsen/logrus"
)

// RequestLogger writes one access line per request.
func (m *Middlewares) RequestLogger(appConfig config.App, log *logrus.Logger) func(next http.Handler) http.Handler {
	tz, err := time.LoadLocation(appConfig.Timezone)
	if err != nil {
		log.Printf("Invalid time zone: %v", err)
		tz = time.UTC
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &responseRecorder{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(rec, r)
			duration := time.Since(start)

			log.WithFields(logrus.Fields{
				"status":   rec.statusCode,
				"duration": duration.String(),
			}).Printf(`{%s} | {%s} | {%s} ==> {%s} | {%d}`,
				time.Now().In(tz).Format(time.RFC850), r.RemoteAddr, r.Method, r.RequestURI, rec.statusCode)
		})
	}
}
