// Package testutil provides shared test helpers for creating config files and vocabulary source fixtures.
package testutil

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// SourceHeader is the header of a source file with every supported column.
var SourceHeader = []string{"Character", "Pinyin", "English", "Example"}

// SetupTestConfig creates a minimal config file with data and cache directories for testing.
// Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string) string {
	t.Helper()

	for _, d := range []string{"data", "cache"} {
		require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, d), 0755))
	}

	configContent := fmt.Sprintf(`vocabulary:
  data_directory: %s
  cache_directory: %s
server:
  port: 18000
log:
  level: debug
`,
		filepath.Join(tmpDir, "data"),
		filepath.Join(tmpDir, "cache"),
	)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// WriteSourceFile writes a CSV source file named <setType>.csv into dataDir.
// The first row is written as the header.
func WriteSourceFile(t *testing.T, dataDir, setType string, rows [][]string) string {
	t.Helper()

	path := filepath.Join(dataDir, setType+".csv")
	file, err := os.Create(path)
	require.NoError(t, err)
	defer func() {
		_ = file.Close()
	}()

	writer := csv.NewWriter(file)
	require.NoError(t, writer.WriteAll(rows))
	return path
}

// WriteSampleSourceFiles writes a two card source file for each set type.
func WriteSampleSourceFiles(t *testing.T, dataDir string, setTypes ...string) {
	t.Helper()

	for _, setType := range setTypes {
		WriteSourceFile(t, dataDir, setType, [][]string{
			SourceHeader,
			{"你", "nǐ", "you", ""},
			{"好", "hǎo", "good", "你好"},
		})
	}
}

// SetModTime sets both access and modification time of path.
func SetModTime(t *testing.T, path string, modTime time.Time) {
	t.Helper()
	require.NoError(t, os.Chtimes(path, modTime, modTime))
}
