package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadFromFile(t *testing.T) {
	viper.Reset()
	path := writeConfigFile(t, `
app:
  name: site-test
content:
  project_id: proj123
server:
  port: 9090
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "site-test", cfg.App.Name)
	assert.Equal(t, "proj123", cfg.Content.ProjectID)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "production", cfg.Content.Dataset, "defaults fill unset fields")
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadFromFile_ExpandsEnvPlaceholders(t *testing.T) {
	viper.Reset()
	t.Setenv("TEST_CONTENT_TOKEN", "sk-test")
	path := writeConfigFile(t, `
content:
  project_id: proj123
  token: ${TEST_CONTENT_TOKEN}
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "sk-test", cfg.Content.Token)
}

func TestLoadFromFile_MissingProjectIDFails(t *testing.T) {
	viper.Reset()
	path := writeConfigFile(t, "server:\n  port: 9090\n")

	_, err := LoadFromFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "project_id")
}

func TestLoadFromFile_MissingFileFails(t *testing.T) {
	viper.Reset()
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
