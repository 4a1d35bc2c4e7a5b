package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haukened/idn-display/internal/idn/config"
)

func useConfig(t *testing.T, mutate func(*config.AppConfig)) {
	t.Helper()
	orig := loadConfig
	t.Cleanup(func() { loadConfig = orig })
	loadConfig = func() (*config.AppConfig, error) {
		cfg := config.DEFAULT_APP_CONFIG
		cfg.Log.Level = "error"
		if mutate != nil {
			mutate(&cfg)
		}
		return &cfg, nil
	}
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRoot_Args(t *testing.T) {
	useConfig(t, nil)
	out, err := execute(t, "", "www.аpple.com", "faß.example", "example.com.")
	require.NoError(t, err)
	assert.Equal(t, "www.xn--pple-43d.com\nfaß.example\nexample.com.\n", out)
}

func TestRoot_Stdin(t *testing.T) {
	useConfig(t, nil)
	out, err := execute(t, "# list\n\n  аpple.com  \nexample.org\n", "--workers", "2")
	require.NoError(t, err)
	assert.Equal(t, "xn--pple-43d.com\nexample.org\n", out)
}

func TestRoot_InvalidDomain(t *testing.T) {
	useConfig(t, nil)
	out, err := execute(t, "", "example..com", "example.com")
	assert.ErrorContains(t, err, "1 of 2 domains")
	assert.Contains(t, out, "example..com\terror:")
	assert.Contains(t, out, "\nexample.com\n")
}

func TestRoot_JSON(t *testing.T) {
	useConfig(t, nil)
	out, err := execute(t, "", "--format", "json", "--explain", "www.аpple.com")
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "www.аpple.com", got["input"])
	assert.Equal(t, "www.xn--pple-43d.com", got["checked"])
	assert.Equal(t, "www.аpple.com", got["unchecked"])
	assert.Equal(t, "xn--pple-43d.com", got["registrable"])
	assert.Equal(t, "com", got["tld"])
	assert.Equal(t, true, got["spoofed"])
	assert.Len(t, got["labels"], 3)
	assert.NotContains(t, got, "error")
}

func TestRoot_JSONWithoutExplainOmitsLabels(t *testing.T) {
	useConfig(t, nil)
	out, err := execute(t, "", "--format=json", "bad_label.com")
	require.Error(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.NotContains(t, got, "labels")
	assert.Contains(t, got["error"], "invalid domain")
	assert.Equal(t, false, got["spoofed"])
}

func TestRoot_ExplainText(t *testing.T) {
	useConfig(t, nil)
	out, err := execute(t, "", "--explain", "аpple.com")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "xn--pple-43d.com\n"))
	assert.Contains(t, out, "  unicode:     аpple.com\n")
	assert.Contains(t, out, "  label xn--pple-43d (аpple): ")
	assert.Contains(t, out, "  label com: safe\n")
}

func TestRoot_Overrides(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "brands.txt"), []byte("*.faß.example\n"), 0o644))
	useConfig(t, func(cfg *config.AppConfig) {
		cfg.Overrides.Directory = dir
		cfg.Overrides.DB = filepath.Join(t.TempDir(), "overrides.db")
	})

	out, err := execute(t, "", "--explain", "www.faß.example", "faß.example.com")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "www.xn--fa-hia.example\n"), out)
	assert.Contains(t, out, "override:    xn--fa-hia.example (suffix, "+filepath.Join(dir, "brands.txt")+")")
	assert.Contains(t, out, "\nfaß.example.com\n")
}

func TestRoot_BadFormat(t *testing.T) {
	useConfig(t, nil)
	_, err := execute(t, "", "--format", "xml", "example.com")
	assert.ErrorContains(t, err, "unsupported format")
}

func TestRoot_ConfigError(t *testing.T) {
	orig := loadConfig
	t.Cleanup(func() { loadConfig = orig })
	loadConfig = func() (*config.AppConfig, error) { return nil, errors.New("boom") }

	_, err := execute(t, "", "example.com")
	assert.ErrorContains(t, err, "configuration error")
}

func TestRoot_OverrideLoadError(t *testing.T) {
	useConfig(t, func(cfg *config.AppConfig) {
		cfg.Overrides.Directory = filepath.Join(t.TempDir(), "missing")
	})
	_, err := execute(t, "", "example.com")
	assert.ErrorContains(t, err, "failed to load overrides")
}

func TestReadDomains(t *testing.T) {
	got, err := readDomains(strings.NewReader("a.com\n\n# skip\n  b.com\r\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a.com", "b.com"}, got)
}
