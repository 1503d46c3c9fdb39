package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"searchlist/internal/config"
)

func TestParseFlags(t *testing.T) {
	var out bytes.Buffer
	o, err := ParseFlags([]string{"-file", "items.txt", "-max-height", "7", "-no-scrollbar", "-size", "small", "-summary"}, &out)
	require.NoError(t, err)

	assert.Equal(t, "items.txt", o.File)
	assert.Equal(t, 7, o.MaxHeight)
	assert.True(t, o.NoScrollbar)
	assert.False(t, o.NoQuery)
	assert.Equal(t, "small", o.Size)
	assert.True(t, o.Summary)
}

func TestParseFlagsRejectsArguments(t *testing.T) {
	var out bytes.Buffer
	_, err := ParseFlags([]string{"stray"}, &out)
	assert.Error(t, err)

	_, err = ParseFlags([]string{"-bogus"}, &out)
	assert.Error(t, err)
	assert.Contains(t, out.String(), "-bogus")
}

func TestApplyOnlyOverridesGivenFlags(t *testing.T) {
	var out bytes.Buffer
	cfg := config.DefaultConfig()
	cfg.List.MaxHeight = 12
	cfg.List.Size = "large"

	o, err := ParseFlags([]string{"-no-query"}, &out)
	require.NoError(t, err)
	require.NoError(t, o.Apply(cfg))

	assert.False(t, cfg.List.Query)
	assert.True(t, cfg.List.Scrollbar)
	assert.Equal(t, 12, cfg.List.MaxHeight)
	assert.Equal(t, "large", cfg.List.Size)

	o, err = ParseFlags([]string{"-max-height", "0", "-size", "medium"}, &out)
	require.NoError(t, err)
	require.NoError(t, o.Apply(cfg))
	assert.Equal(t, 0, cfg.List.MaxHeight)
	assert.Equal(t, "medium", cfg.List.Size)
}

func TestApplyValidates(t *testing.T) {
	var out bytes.Buffer
	o, err := ParseFlags([]string{"-size", "huge"}, &out)
	require.NoError(t, err)
	assert.Error(t, o.Apply(config.DefaultConfig()))
}

func TestReadItems(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.txt")
	require.NoError(t, os.WriteFile(path, []byte("one\n\ntwo\r\n"), 0644))

	items, err := Options{File: path}.ReadItems(strings.NewReader("ignored"))
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two"}, items)

	items, err = Options{}.ReadItems(strings.NewReader("a\nb\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, items)

	_, err = Options{File: filepath.Join(t.TempDir(), "missing")}.ReadItems(nil)
	assert.Error(t, err)
}

func TestLoadConfigFromFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[list]\nmax_height = 4\n"), 0644))

	cfg, err := Options{ConfigPath: path}.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.List.MaxHeight)

	_, err = Options{ConfigPath: path + ".missing"}.LoadConfig()
	assert.ErrorIs(t, err, config.ErrConfigNotFound)
}

func TestRunUsageErrors(t *testing.T) {
	t.Chdir(t.TempDir())

	var stdout, stderr bytes.Buffer
	code := Run([]string{"-bogus"}, strings.NewReader(""), &stdout, &stderr)
	assert.Equal(t, ExitUsage, code)
	assert.Empty(t, stdout.String())

	stderr.Reset()
	code = Run([]string{"-config", "missing.toml"}, strings.NewReader(""), &stdout, &stderr)
	assert.Equal(t, ExitUsage, code)
	assert.Contains(t, stderr.String(), "Error loading config")

	code = Run([]string{"-h"}, strings.NewReader(""), &stdout, &stderr)
	assert.Equal(t, ExitConfirmed, code)
	assert.Empty(t, stdout.String())

	_, err := os.Stat(logFileName)
	assert.NoError(t, err, "log file is created in the working directory")
}
