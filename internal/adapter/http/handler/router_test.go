package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"private-tips/internal/core/domain"
	"private-tips/internal/core/ports/mocks"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newTestRouter(t *testing.T, origins []string) (http.Handler, *mocks.MockKolDirectory, *mocks.MockRateLimiter) {
	ctrl := gomock.NewController(t)
	kols := mocks.NewMockKolDirectory(ctrl)
	limiter := mocks.NewMockRateLimiter(ctrl)

	r := SetupRouter(RouterDeps{
		Kols:           kols,
		Tips:           mocks.NewMockTipService(ctrl),
		Balances:       mocks.NewMockBalanceService(ctrl),
		Relayer:        mocks.NewMockRelayer(ctrl),
		Decrypt:        mocks.NewMockDecryptService(ctrl),
		RateLimiter:    limiter,
		AllowedOrigins: origins,
		Logger:         zerolog.Nop(),
	})
	return r, kols, limiter
}

func TestRouter_KolsThroughMiddleware(t *testing.T) {
	r, kols, limiter := newTestRouter(t, nil)
	reset := time.Now().Add(time.Minute).Unix()
	limiter.EXPECT().Allow(gomock.Any(), gomock.Any(), int64(120), time.Minute).
		Return(&domain.RateLimitResult{Allowed: true, Limit: 120, Remaining: 119, ResetAt: reset}, nil)
	kols.EXPECT().List(gomock.Any()).Return([]domain.KolProfile{})

	req := httptest.NewRequest(http.MethodGet, "/api/kols", nil)
	req.Header.Set("Origin", "https://tips.example")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"kols":[],"total":0}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	assert.Equal(t, "119", w.Header().Get("X-RateLimit-Remaining"))
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_RateLimited(t *testing.T) {
	r, _, limiter := newTestRouter(t, nil)
	limiter.EXPECT().Allow(gomock.Any(), gomock.Any(), int64(10), time.Minute).
		Return(&domain.RateLimitResult{Allowed: false, Limit: 10, Remaining: 0, ResetAt: time.Now().Add(30 * time.Second).Unix()}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/relay-tx", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
}

func TestRouter_CORSPreflight(t *testing.T) {
	r, _, _ := newTestRouter(t, []string{"https://tips.example"})

	req := httptest.NewRequest(http.MethodOptions, "/api/tips", nil)
	req.Header.Set("Origin", "https://tips.example")
	req.Header.Set("Access-Control-Request-Method", "POST")
	req.Header.Set("Access-Control-Request-Headers", "Content-Type, Idempotency-Key")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://tips.example", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/api/tips", nil)
	req.Header.Set("Origin", "https://evil.example")
	req.Header.Set("Access-Control-Request-Method", "POST")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRouter_Health(t *testing.T) {
	r, _, _ := newTestRouter(t, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"healthy"`)
}
