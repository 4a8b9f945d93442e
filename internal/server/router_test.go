package server

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/at-ishikawa/jin/internal/config"
	mock_server "github.com/at-ishikawa/jin/internal/mocks/server"
)

func TestNewRouter_CORS(t *testing.T) {
	tests := []struct {
		name            string
		cors            config.CORSConfig
		origin          string
		wantAllowOrigin string
		wantCredentials string
	}{
		{
			name:            "wildcard echoes the origin",
			cors:            config.CORSConfig{AllowedOrigins: []string{"*"}, AllowCredentials: true},
			origin:          "http://localhost:3000",
			wantAllowOrigin: "http://localhost:3000",
			wantCredentials: "true",
		},
		{
			name:            "listed origin is allowed",
			cors:            config.CORSConfig{AllowedOrigins: []string{"https://jin.example.com"}},
			origin:          "https://jin.example.com",
			wantAllowOrigin: "https://jin.example.com",
		},
		{
			name:   "unlisted origin is not allowed",
			cors:   config.CORSConfig{AllowedOrigins: []string{"https://jin.example.com"}},
			origin: "https://other.example.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			router := NewRouter(
				NewHandler(mock_server.NewMockSetLoader(ctrl)),
				config.ServerConfig{CORS: tt.cors},
				slog.New(slog.NewTextHandler(io.Discard, nil)),
			)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Origin", tt.origin)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.wantAllowOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, tt.wantCredentials, rec.Header().Get("Access-Control-Allow-Credentials"))
		})
	}
}

func TestNewRouter_Preflight(t *testing.T) {
	ctrl := gomock.NewController(t)
	router := NewRouter(
		NewHandler(mock_server.NewMockSetLoader(ctrl)),
		config.ServerConfig{CORS: config.CORSConfig{AllowedOrigins: []string{"*"}, AllowCredentials: true}},
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)

	req := httptest.NewRequest(http.MethodOptions, "/vocabulary/sets", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodGet)
}

func TestNewRouter_RateLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	router := NewRouter(
		NewHandler(mock_server.NewMockSetLoader(ctrl)),
		config.ServerConfig{RateLimit: 2},
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)

	var codes []int
	for range 3 {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "192.0.2.1:1234"
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}
	require.Len(t, codes, 3)
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}
