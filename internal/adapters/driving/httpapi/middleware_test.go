package httpapi

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/bakehouse/internal/core/domain"
)

func newMockServer(t *testing.T, bakeries *mockBakeryService, opts Options) *Server {
	t.Helper()
	if bakeries == nil {
		bakeries = &mockBakeryService{}
	}
	if opts.Logger == nil {
		opts.Logger = discardLogger()
	}
	srv, err := NewServer(&Ports{Bakeries: bakeries, BakedGoods: &mockBakedGoodService{}}, opts)
	require.NoError(t, err)
	return srv
}

func TestRequestID_Generated(t *testing.T) {
	srv := newMockServer(t, nil, Options{})

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/bakeries", nil))

	_, err := uuid.Parse(rec.Header().Get(RequestIDHeader))
	assert.NoError(t, err)
}

func TestRequestID_Propagated(t *testing.T) {
	var seen string
	srv := newMockServer(t, &mockBakeryService{
		listFunc: func(ctx context.Context) ([]domain.Bakery, error) {
			seen = requestIDFrom(ctx)
			return nil, nil
		},
	}, Options{})

	req := httptest.NewRequest(http.MethodGet, "/bakeries", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
	assert.Equal(t, "abc-123", seen)
	assert.Equal(t, "[]\n", rec.Body.String(), "nil list still serializes as an array")
}

func TestLogRequests(t *testing.T) {
	var logs bytes.Buffer
	srv := newMockServer(t, nil, Options{Logger: slog.New(slog.NewTextHandler(&logs, nil))})

	req := httptest.NewRequest(http.MethodGet, "/bakeries", nil)
	req.Header.Set(RequestIDHeader, "req-1")
	srv.Handler().ServeHTTP(httptest.NewRecorder(), req)

	out := logs.String()
	assert.Contains(t, out, "http request")
	assert.Contains(t, out, "method=GET")
	assert.Contains(t, out, "path=/bakeries")
	assert.Contains(t, out, "status=200")
	assert.Contains(t, out, "request_id=req-1")
}

func TestRecoverPanics(t *testing.T) {
	var logs bytes.Buffer
	srv := newMockServer(t, &mockBakeryService{
		listFunc: func(context.Context) ([]domain.Bakery, error) {
			panic("oven exploded")
		},
	}, Options{Logger: slog.New(slog.NewTextHandler(&logs, nil))})

	rec := httptest.NewRecorder()
	require.NotPanics(t, func() {
		srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/bakeries", nil))
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, codeInternal, decodeError(t, rec).Error)
	assert.NotContains(t, rec.Body.String(), "oven exploded")
	assert.Contains(t, logs.String(), "oven exploded")
	assert.Contains(t, logs.String(), "status=500")
}

func TestRateLimit(t *testing.T) {
	srv := newMockServer(t, nil, Options{RequestsPerSecond: 0.01, Burst: 2})

	codes := make([]int, 0, 3)
	var last *httptest.ResponseRecorder
	for i := 0; i < 3; i++ {
		last = httptest.NewRecorder()
		srv.Handler().ServeHTTP(last, httptest.NewRequest(http.MethodGet, "/bakeries", nil))
		codes = append(codes, last.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
	assert.Equal(t, codeRateLimited, decodeError(t, last).Error)
	assert.NotEmpty(t, last.Header().Get("Retry-After"))
}

func TestRateLimit_DisabledByDefault(t *testing.T) {
	srv := newMockServer(t, nil, Options{})

	for i := 0; i < 50; i++ {
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/bakeries", nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestStatusRecorder_ImplicitOK(t *testing.T) {
	rec := &statusRecorder{ResponseWriter: httptest.NewRecorder(), status: http.StatusOK}

	_, err := rec.Write([]byte("x"))
	require.NoError(t, err)
	rec.WriteHeader(http.StatusTeapot)

	assert.Equal(t, http.StatusOK, rec.status)
}
