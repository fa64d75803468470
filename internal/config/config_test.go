package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/junction/internal/config"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, 1000, cfg.Budget)
	assert.Equal(t, 3, cfg.TopK)
	assert.Equal(t, 1, cfg.Workers)
	assert.Equal(t, config.FormatText, cfg.Format)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_TOML(t *testing.T) {
	path := writeFile(t, "junction.toml", "budget = 10\nworkers = 4\n")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Budget)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, 3, cfg.TopK, "unset keys keep their defaults")
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "junction.yml", "top_k: 2\nformat: json\n")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.TopK)
	assert.Equal(t, config.FormatJSON, cfg.Format)
	assert.Equal(t, 1000, cfg.Budget)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("unsupported extension", func(t *testing.T) {
		_, err := config.Load(writeFile(t, "junction.ini", "budget=1"))
		assert.ErrorIs(t, err, config.ErrUnsupportedFormat)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := config.Load(filepath.Join(t.TempDir(), "nope.toml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("bad toml", func(t *testing.T) {
		_, err := config.Load(writeFile(t, "junction.toml", "budget = [\n"))
		assert.Error(t, err)
	})

	t.Run("validation", func(t *testing.T) {
		_, err := config.Load(writeFile(t, "junction.yaml", "budget: -5\nworkers: 0\nformat: xml\n"))
		require.ErrorIs(t, err, config.ErrInvalidConfig)
		assert.Contains(t, err.Error(), "Budget")
		assert.Contains(t, err.Error(), "Workers")
		assert.Contains(t, err.Error(), "Format")
	})
}

func TestRank_Validate(t *testing.T) {
	require.NoError(t, config.DefaultRank().Validate())
	assert.Equal(t, config.DefaultRankLimit, config.DefaultRank().Limit)

	err := config.Rank{Limit: -1, Workers: 0}.Validate()
	require.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.Contains(t, err.Error(), "Limit")
	assert.Contains(t, err.Error(), "Workers")

	assert.NoError(t, config.Rank{Limit: 0, Workers: 1024}.Validate())
}
