package capi

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/urlkit"
	"github.com/reoring/urlkit/i18n"
)

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig(strings.NewReader(`
max_spec_bytes: 4096
log_level: warn
log_format: text
language: ja
`))
	require.NoError(t, err)
	assert.Equal(t, Config{MaxSpecBytes: 4096, LogLevel: "warn", LogFormat: "text", Language: "ja"}, cfg)

	empty, err := LoadConfig(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), empty)
}

func TestLoadConfig_Rejects(t *testing.T) {
	for name, doc := range map[string]string{
		"unknown key":    "max_bytes: 1\n",
		"negative limit": "max_spec_bytes: -1\n",
		"bad level":      "log_level: loud\n",
		"bad format":     "log_format: xml\n",
		"not yaml":       "max_spec_bytes: [\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := LoadConfig(strings.NewReader(doc))
			assert.Error(t, err)
		})
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv(ConfigEnv, "")
	cfg, err := LoadConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	path := filepath.Join(t.TempDir(), "urlkit.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_spec_bytes: 10\n"), 0o600))
	t.Setenv(ConfigEnv, path)
	cfg, err = LoadConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, int64(10), cfg.MaxSpecBytes)

	t.Setenv(ConfigEnv, filepath.Join(t.TempDir(), "missing.yaml"))
	_, err = LoadConfigFromEnv()
	assert.Error(t, err)
}

func TestConfig_Logger(t *testing.T) {
	var buf bytes.Buffer

	Config{}.Logger(&buf).Error("dropped")
	assert.Zero(t, buf.Len())

	Config{LogLevel: "info"}.Logger(&buf).Debug("too verbose")
	assert.Zero(t, buf.Len())

	Config{LogLevel: "info"}.Logger(&buf).Info("hello", "op", "new")
	assert.Contains(t, buf.String(), `"msg":"hello"`)
	assert.Contains(t, buf.String(), `"component":"urlkit-capi"`)

	buf.Reset()
	Config{LogLevel: "debug", LogFormat: "text"}.Logger(&buf).Debug("plain")
	assert.Contains(t, buf.String(), "msg=plain")
}

func TestConfig_ApplyLanguage(t *testing.T) {
	t.Cleanup(func() { i18n.SetLanguage("en") })

	Config{Language: "ja"}.Apply()
	_, err := urlkit.New([]byte("http://"))
	assert.ErrorContains(t, err, "ホストが空です")
}
