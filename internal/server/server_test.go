package server

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	httperr "github.com/aevon-lab/favourite-service/internal/core/errors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealthHandler(t *testing.T) {
	tests := []struct {
		name       string
		store      HealthChecker
		wantStatus int
		wantBody   string
	}{
		{name: "no store", store: nil, wantStatus: http.StatusOK, wantBody: `{"status":"healthy","store":"memory"}`},
		{
			name:       "healthy store",
			store:      pingFunc(func(context.Context) error { return nil }),
			wantStatus: http.StatusOK,
			wantBody:   `{"status":"healthy","store":"connected"}`,
		},
		{
			name:       "unreachable store",
			store:      pingFunc(func(context.Context) error { return errors.New("connection refused") }),
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   `{"status":"unhealthy","store":"unreachable"}`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := New(":0", tc.store, "release")

			resp := httptest.NewRecorder()
			srv.Engine.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/health", nil))
			require.Equal(t, tc.wantStatus, resp.Code)
			require.JSONEq(t, tc.wantBody, resp.Body.String())
		})
	}
}

func TestRequestID(t *testing.T) {
	srv := New(":0", nil, "release")

	resp := httptest.NewRecorder()
	srv.Engine.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/health", nil))
	generated := resp.Header().Get(RequestIDHeader)
	_, err := uuid.Parse(generated)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(RequestIDHeader, "req-123")
	resp = httptest.NewRecorder()
	srv.Engine.ServeHTTP(resp, req)
	require.Equal(t, "req-123", resp.Header().Get(RequestIDHeader))
}

func TestRequestID_AvailableToHandlers(t *testing.T) {
	srv := New(":0", nil, "release")
	srv.Engine.GET("/echo", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(httperr.RequestIDKey))
	})

	req := httptest.NewRequest(http.MethodGet, "/echo", nil)
	req.Header.Set(RequestIDHeader, "req-456")
	resp := httptest.NewRecorder()
	srv.Engine.ServeHTTP(resp, req)
	require.Equal(t, "req-456", resp.Body.String())

	resp = httptest.NewRecorder()
	srv.Engine.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/echo", nil))
	require.NotEmpty(t, resp.Body.String())
	require.Equal(t, resp.Header().Get(RequestIDHeader), resp.Body.String())
}

func TestRun_StopsOnCancel(t *testing.T) {
	srv := New("127.0.0.1:0", nil, "release")
	ctx, cancel := context.WithCancel(context.Background())

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Run(ctx) }()
	cancel()

	require.NoError(t, <-errCh)
}
