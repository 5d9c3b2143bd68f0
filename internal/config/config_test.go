package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "gemini", cfg.LLMProvider)
	assert.Equal(t, DefaultFetchTimeout, cfg.FetchTimeout)
	assert.Equal(t, DefaultMaxPosts, cfg.MaxPosts)
	assert.Equal(t, DefaultMaxArticles, cfg.MaxArticles)
	assert.NotEmpty(t, cfg.ProMediaOutlets)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_ValidFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	content := `{"llm_provider": "openai", "fetch_timeout_seconds": 10, "max_posts": 3, "use_browser": true}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "openai", cfg.LLMProvider)
	assert.Equal(t, 10*time.Second, cfg.FetchTimeout)
	assert.Equal(t, 3, cfg.MaxPosts)
	assert.True(t, cfg.UseBrowser)
	// Unset fields keep defaults
	assert.Equal(t, DefaultMaxArticles, cfg.MaxArticles)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoad_InvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate_UnknownProvider(t *testing.T) {
	cfg := Default()
	cfg.LLMProvider = "bard"
	assert.Error(t, cfg.Validate())
}

func TestValidate_NegativeLimits(t *testing.T) {
	cfg := Default()
	cfg.MaxPosts = -1
	assert.Error(t, cfg.Validate())
}
