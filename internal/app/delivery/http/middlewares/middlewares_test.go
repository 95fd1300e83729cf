package middlewares

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"healthcamp-service/internal/app/config"
	"healthcamp-service/internal/pkg/constvars"
	"healthcamp-service/internal/pkg/utils"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestMiddlewares(app config.App) *Middlewares {
	return NewMiddlewares(zap.NewNop(), &config.InternalConfig{App: app})
}

func TestRequestIDMiddleware(t *testing.T) {
	m := newTestMiddlewares(config.App{})

	var seen string
	handler := m.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = utils.GetRequestID(r.Context())
	}))

	t.Run("Client Id Is Echoed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(constvars.HeaderXRequestID, "req-123")
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, "req-123", seen)
		assert.Equal(t, "req-123", rr.Header().Get(constvars.HeaderXRequestID))
	})

	t.Run("Missing Id Is Generated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, rr.Header().Get(constvars.HeaderXRequestID))
	})
}

func TestErrorHandler(t *testing.T) {
	m := newTestMiddlewares(config.App{})

	t.Run("Panic Becomes 500", func(t *testing.T) {
		handler := m.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic("nil map write")
		}))
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/analyze", nil))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.JSONEq(t, `{"error":"nil map write"}`, rr.Body.String())
	})

	t.Run("Abort Is Propagated", func(t *testing.T) {
		handler := m.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic(http.ErrAbortHandler)
		}))

		assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
			handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/analyze", nil))
		})
	})
}

func TestSecurityHeaders(t *testing.T) {
	m := newTestMiddlewares(config.App{})
	handler := m.SecurityHeaders(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, "nosniff", rr.Header().Get(constvars.HeaderXContentTypeOptions))
	assert.Equal(t, "SAMEORIGIN", rr.Header().Get(constvars.HeaderXFrameOptions))
	assert.Equal(t, "same-origin", rr.Header().Get(constvars.HeaderCrossOriginOpenerPolicy))
	assert.NotEmpty(t, rr.Header().Get(constvars.HeaderStrictTransportSecurity))
}

func TestRateLimit(t *testing.T) {
	m := newTestMiddlewares(config.App{MaxRequests: 2, MaxTimeRequestsPerSeconds: 60})
	handler := m.RateLimit()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/locations", nil)
		req.RemoteAddr = "10.0.0.7:5000"
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		codes = append(codes, rr.Code)

		if rr.Code == http.StatusTooManyRequests {
			assert.JSONEq(t, `{"error":"`+constvars.ErrClientTooManyRequests+`"}`, rr.Body.String())
		}
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	other := httptest.NewRequest(http.MethodGet, "/locations", nil)
	other.RemoteAddr = "10.0.0.8:5000"
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, other)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestRequestLogger(t *testing.T) {
	m := newTestMiddlewares(config.App{})
	var buf bytes.Buffer
	accessLog := logrus.New()
	accessLog.SetOutput(&buf)
	accessLog.SetFormatter(&logrus.JSONFormatter{})

	handler := m.RequestLogger(config.App{Timezone: "Africa/Nairobi"}, accessLog)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}),
	)
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/patients/1", nil))

	assert.Contains(t, buf.String(), `"status":404`)
	assert.Contains(t, buf.String(), "/patients/1")
}
