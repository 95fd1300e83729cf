package middlewares

import (
	"net/http"
	"time"

	"healthcamp-service/internal/pkg/exceptions"
	"healthcamp-service/internal/pkg/utils"

	"github.com/go-chi/httprate"
)

// RateLimit allows MaxRequests per client IP within a window of
// MaxTimeRequestsPerSeconds and answers the excess with a JSON 429.
func (m *Middlewares) RateLimit() func(next http.Handler) http.Handler {
	window := time.Duration(m.InternalConfig.App.MaxTimeRequestsPerSeconds) * time.Second
	if window <= 0 {
		window = time.Second
	}

	return httprate.Limit(
		m.InternalConfig.App.MaxRequests,
		window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTooManyRequests(nil))
		}),
	)
}
