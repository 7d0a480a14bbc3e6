package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atomicstack/servarr-tui/internal/config"
)

func TestCollectTTYDetailsIncludesStandardDescriptors(t *testing.T) {
	info := collectTTYDetails()
	require.Len(t, info.Probes, 3)
	for i, name := range []string{"stdin", "stdout", "stderr"} {
		assert.Equal(t, name, info.Probes[i].Name)
	}
}

func TestStartupTracePayloadRedactsToken(t *testing.T) {
	cfg := config.Config{
		Radarr:  config.Radarr{Host: "radarr.lan", Port: 7878, APIToken: "secret"},
		Logging: config.Logging{File: "trace.log", Trace: true},
	}
	flags := map[string]string{"trace": "true", "width": "80"}

	payload := startupTracePayload(cfg, []string{"--trace", "--width", "80"}, flags)

	assert.Equal(t, flags, payload["flags"])
	assert.Equal(t, []string{"--trace", "--width", "80"}, payload["argv"])
	logged, ok := payload["config"].(config.Config)
	require.True(t, ok)
	assert.NotEqual(t, "secret", logged.Radarr.APIToken)
	assert.Equal(t, "radarr.lan", logged.Radarr.Host)
	assert.IsType(t, ttyDetails{}, payload["tty"])
}

func TestVersionCommand(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "servarr-tui "+version+"\n", out.String())
}

func TestConfigInitWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "servarr-tui", "config.yml")
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"config", "init", "--config", path})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), path)
	_, err := os.Stat(path)
	require.NoError(t, err)

	again := newRootCmd()
	again.SetOut(&out)
	again.SetArgs([]string{"config", "init", "--config", path})
	assert.ErrorIs(t, again.Execute(), config.ErrExists)

	forced := newRootCmd()
	forced.SetOut(&out)
	forced.SetArgs([]string{"config", "init", "--config", path, "--force"})
	assert.NoError(t, forced.Execute())
}

func TestRootRejectsMissingToken(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("SERVARR_TUI_RADARR_API_TOKEN", "")

	cmd := newRootCmd()
	cmd.SetArgs([]string{})
	err := cmd.Execute()
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrMissingToken)
}
