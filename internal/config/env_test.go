package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnvFile(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		explicit  bool
		preset    map[string]string
		wantErr   bool
		wantValue string
	}{
		{
			name:      "explicit file is loaded",
			content:   "JIN_TEST_ENV_VALUE=from-file\n",
			explicit:  true,
			wantValue: "from-file",
		},
		{
			name:      "existing variables are kept",
			content:   "JIN_TEST_ENV_VALUE=from-file\n",
			explicit:  true,
			preset:    map[string]string{"JIN_TEST_ENV_VALUE": "from-env"},
			wantValue: "from-env",
		},
		{
			name:      "default file is loaded from the working directory",
			content:   "JIN_TEST_ENV_VALUE=default-file\n",
			wantValue: "default-file",
		},
		{
			name: "missing default file is ignored",
		},
		{
			name:     "missing explicit file fails",
			explicit: true,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			t.Chdir(tmpDir)
			t.Setenv("JIN_TEST_ENV_VALUE", "")
			require.NoError(t, os.Unsetenv("JIN_TEST_ENV_VALUE"))
			for k, v := range tt.preset {
				t.Setenv(k, v)
			}

			path := filepath.Join(tmpDir, "custom.env")
			if !tt.explicit {
				path = filepath.Join(tmpDir, DefaultEnvFile)
			}
			if tt.content != "" {
				require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))
			}

			arg := ""
			if tt.explicit {
				arg = path
			}
			err := LoadEnvFile(arg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantValue, os.Getenv("JIN_TEST_ENV_VALUE"))
		})
	}
}

func TestLogConfig_SlogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{level: "debug", want: slog.LevelDebug},
		{level: "info", want: slog.LevelInfo},
		{level: "warn", want: slog.LevelWarn},
		{level: "error", want: slog.LevelError},
		{level: "", want: slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.want, LogConfig{Level: tt.level}.SlogLevel())
		})
	}
}
