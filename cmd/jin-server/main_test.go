package main

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/jin/internal/testutil"
)

func TestNewRootCommand(t *testing.T) {
	cmd := newRootCommand()

	assert.Equal(t, "jin-server", cmd.Use)
	assert.NotNil(t, cmd.Flags().Lookup("config"))
	assert.NotNil(t, cmd.Flags().Lookup("env-file"))
	assert.NotNil(t, cmd.RunE)
}

func TestNewRootCommand_InvalidConfig(t *testing.T) {
	cmd := newRootCommand()
	cmd.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "missing.yml")})

	assert.Error(t, cmd.Execute())
}

func TestNewServer(t *testing.T) {
	tmpDir := t.TempDir()
	cfg, err := loadConfig(testutil.SetupTestConfig(t, tmpDir))
	require.NoError(t, err)
	testutil.WriteSampleSourceFiles(t, cfg.Vocabulary.DataDirectory, "HSK1")

	srv, err := newServer(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	assert.Equal(t, ":18000", srv.Addr)

	tests := []struct {
		path       string
		wantStatus int
		wantBody   string
	}{
		{
			path:       "/",
			wantStatus: http.StatusOK,
			wantBody:   `{"status":"healthy","message":"JinApp API is running"}`,
		},
		{
			path:       "/vocabulary/set/HSK1",
			wantStatus: http.StatusOK,
			wantBody: `[
				{"character":"你","pronunciation":"nǐ","translation":"you","example":""},
				{"character":"好","pronunciation":"hǎo","translation":"good","example":"你好"}
			]`,
		},
		{
			path:       "/vocabulary/sets",
			wantStatus: http.StatusOK,
			wantBody:   `[{"type":"HSK1","displayName":"HSK1 Vocabulary","cardCount":2,"difficultyTier":1}]`,
		},
		{
			path:       "/vocabulary/set/Press",
			wantStatus: http.StatusNotFound,
			wantBody:   `{"detail":"Vocabulary set 'Press' not found"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
	assert.FileExists(t, filepath.Join(cfg.Vocabulary.CacheDirectory, "HSK1.json"))
}
