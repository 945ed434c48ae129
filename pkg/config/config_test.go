package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	m := NewManager()
	require.NoError(t, m.Load(DefaultSources("", nil)...))

	cfg := m.Get()
	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, 4, cfg.Background.Workers)
	assert.Equal(t, 0, cfg.Background.QueueCapacity)
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := writeConfigFile(t, "log:\n  level: debug\nbackground:\n  workers: 2\n")

	m := NewManager()
	require.NoError(t, m.Load(DefaultSources(path, nil)...))

	cfg := m.Get()
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 2, cfg.Background.Workers)
}

func TestLoadMissingFileSkipped(t *testing.T) {
	m := NewManager()
	require.NoError(t, m.Load(DefaultSources(filepath.Join(t.TempDir(), "absent.yaml"), nil)...))
	assert.Equal(t, 4, m.Get().Background.Workers)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeConfigFile(t, "background:\n  workers: 2\n")
	t.Setenv("BASEPLATE_BACKGROUND_WORKERS", "9")
	t.Setenv("BASEPLATE_LOG_LEVEL", "warn")

	m := NewManager()
	require.NoError(t, m.Load(DefaultSources(path, nil)...))

	cfg := m.Get()
	assert.Equal(t, 9, cfg.Background.Workers)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadChangedFlagOverridesEnv(t *testing.T) {
	t.Setenv("BASEPLATE_LOG_LEVEL", "warn")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("log-level", "error", "")
	flags.Int("background-workers", 4, "")
	require.NoError(t, flags.Set("log-level", "trace"))

	m := NewManager()
	require.NoError(t, m.Load(DefaultSources("", flags)...))

	cfg := m.Get()
	assert.Equal(t, "trace", cfg.Log.Level, "changed flag wins over env")
	assert.Equal(t, 4, cfg.Background.Workers)
}

func TestLoadUnchangedFlagDoesNotOverride(t *testing.T) {
	t.Setenv("BASEPLATE_BACKGROUND_WORKERS", "7")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int("background-workers", 4, "")

	m := NewManager()
	require.NoError(t, m.Load(DefaultSources("", flags)...))

	assert.Equal(t, 7, m.Get().Background.Workers,
		"an unchanged flag default must not mask the env value")
}

func TestLoadRejectsInvalidWorkers(t *testing.T) {
	path := writeConfigFile(t, "background:\n  workers: 0\n")

	m := NewManager()
	assert.Error(t, m.Load(DefaultSources(path, nil)...))
}

func TestLoadRejectsInvalidLogLevel(t *testing.T) {
	path := writeConfigFile(t, "log:\n  level: shouty\n")

	m := NewManager()
	assert.Error(t, m.Load(DefaultSources(path, nil)...))
}

func TestReload(t *testing.T) {
	path := writeConfigFile(t, "log:\n  level: info\n")

	m := NewManager()
	require.NoError(t, m.Load(DefaultSources(path, nil)...))
	require.Equal(t, "info", m.Get().Log.Level)

	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: debug\n"), 0o600))
	require.NoError(t, m.Reload())
	assert.Equal(t, "debug", m.Get().Log.Level)
}

func TestReloadBeforeLoad(t *testing.T) {
	assert.Error(t, NewManager().Reload())
}

func TestReloadKeepsPreviousOnFailure(t *testing.T) {
	path := writeConfigFile(t, "log:\n  level: info\n")

	m := NewManager()
	require.NoError(t, m.Load(DefaultSources(path, nil)...))

	require.NoError(t, os.WriteFile(path, []byte("background:\n  workers: -3\n"), 0o600))
	require.Error(t, m.Reload())
	assert.Equal(t, "info", m.Get().Log.Level, "failed reload must keep the old config")
}
