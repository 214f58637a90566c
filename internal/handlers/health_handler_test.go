package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"farm_manager/internal/database"
	"farm_manager/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth(t *testing.T) {
	db := testutil.NewDB(t)
	s := newTestServer(t, HealthCheck{Name: "database", Check: func(ctx context.Context) error {
		return database.Ping(ctx, db)
	}})

	for _, path := range []string{"/health", "/api/health"} {
		w := s.do(http.MethodGet, path, "", nil)
		require.Equal(t, http.StatusOK, w.Code, path)
		assert.JSONEq(t, `{"status":"ok","checks":{"database":"ok"}}`, w.Body.String())
	}
}

func TestHealthReportsFailedCheck(t *testing.T) {
	s := newTestServer(t,
		HealthCheck{Name: "database", Check: func(context.Context) error { return nil }},
		HealthCheck{Name: "redis", Check: func(context.Context) error { return errors.New("connection refused") }},
	)

	w := s.do(http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.JSONEq(t, `{"status":"unavailable","checks":{"database":"ok","redis":"connection refused"}}`, w.Body.String())
}
