package configuration

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("YOUTUBE_API_KEY", "")
	v := NewViper()
	v.SetConfigName("does-not-exist")
	v.AddConfigPath(t.TempDir())

	c, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, DefaultBaseURL, c.YouTube.BaseURL)
	assert.Equal(t, DefaultTimeout, c.YouTube.Timeout)
	assert.Equal(t, int64(DefaultPageSize), c.YouTube.PageSize)
	assert.Equal(t, DefaultMaxPages, c.YouTube.MaxPages)
	assert.Equal(t, DefaultCountryCodePath, c.Export.CountryCodePath)
	assert.Equal(t, DefaultOutputDir, c.Export.OutputDir)
	assert.False(t, c.Export.Categories)
	assert.ErrorIs(t, c.Validate(), ErrMissingAPIKey)
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.json", `{
		"youtube": {"apiKey": "file-key", "timeout": "5s", "pageSize": 500, "maxPages": 3},
		"export": {"outputDir": "data/", "categories": true},
		"database": {"driver": "Postgres", "dsn": "postgres://localhost/db"}
	}`)
	t.Setenv("YOUTUBE_API_KEY", "env-key")

	v := NewViper()
	v.SetConfigFile(path)
	c, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "env-key", c.YouTube.APIKey)
	assert.Equal(t, 5*time.Second, c.YouTube.Timeout)
	assert.Equal(t, int64(DefaultPageSize), c.YouTube.PageSize, "page size is clamped to the API maximum")
	assert.Equal(t, 3, c.YouTube.MaxPages)
	assert.Equal(t, "data/", c.Export.OutputDir)
	assert.True(t, c.Export.Categories)
	assert.Equal(t, "postgres", c.Database.Driver)
	assert.NoError(t, c.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{name: "ok", config: Config{YouTube: YouTube{APIKey: "k"}}},
		{name: "placeholder key", config: Config{YouTube: YouTube{APIKey: "YOUR_YOUTUBE_API_KEY"}}, wantErr: true},
		{name: "unknown driver", config: Config{YouTube: YouTube{APIKey: "k"}, Database: Database{Driver: "mysql", DSN: "x"}}, wantErr: true},
		{name: "driver without dsn", config: Config{YouTube: YouTube{APIKey: "k"}, Database: Database{Driver: "sqlserver"}}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadEnvFromFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, ".env", "# comment\nTRENDING_TEST_NEW=\"from-file\"\nTRENDING_TEST_SET=from-file\n")
	t.Setenv("TRENDING_TEST_SET", "from-env")
	t.Setenv("TRENDING_TEST_NEW", "")
	require.NoError(t, os.Unsetenv("TRENDING_TEST_NEW"))
	t.Cleanup(func() { _ = os.Unsetenv("TRENDING_TEST_NEW") })

	LoadEnvFromFile(filepath.Join(dir, "missing.env"), path)

	assert.Equal(t, "from-file", os.Getenv("TRENDING_TEST_NEW"))
	assert.Equal(t, "from-env", os.Getenv("TRENDING_TEST_SET"))
}
