package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teamkeel/graphgate/runtime/actions"
)

func writeConfig(t *testing.T, contents string) string {
	path := filepath.Join(t.TempDir(), "graphgate.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, actions.DefaultOptions(), c.Options())
	assert.Equal(t, 10*time.Second, c.Backend.Timeout)
	assert.Empty(t, c.Backend.URL)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
pagination:
  defaultSize: 10
  maxSize: 30
  windowRadius: 3
backend:
  url: https://api.example.com/api/v1/artists
  timeout: 2s
`)

	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, actions.Options{DefaultSize: 10, MaxSize: 30, WindowRadius: 3}, c.Options())
	assert.Equal(t, "https://api.example.com/api/v1/artists", c.Backend.URL)
	assert.Equal(t, 2*time.Second, c.Backend.Timeout)
}

func TestLoadEnvOverrides(t *testing.T) {
	path := writeConfig(t, `
pagination:
  defaultSize: 10
  maxSize: 30
`)
	t.Setenv("GRAPHGATE_PAGINATION_MAXSIZE", "40")

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 40, c.Pagination.MaxSize)
	assert.Equal(t, 10, c.Pagination.DefaultSize)
}

func TestLoadInvalid(t *testing.T) {
	cases := map[string]string{
		"zero default":    "pagination:\n  defaultSize: 0\n",
		"max below":       "pagination:\n  defaultSize: 20\n  maxSize: 10\n",
		"negative radius": "pagination:\n  windowRadius: -1\n",
	}

	for name, contents := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, contents))
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
