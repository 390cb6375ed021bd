package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/neaten/pkg/config"
	"github.com/arthur-debert/neaten/pkg/errors"
	"github.com/arthur-debert/neaten/pkg/report"
	gotoml "github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func missingFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "none.toml")
}

func TestLoad_Defaults(t *testing.T) {
	s, err := config.Load(config.Options{SettingsFile: missingFile(t)})
	require.NoError(t, err)

	assert.False(t, s.Run.DryRun)
	assert.Equal(t, "auto", s.Output.Format)
	assert.Equal(t, report.FormatAuto, s.Format())
	assert.Equal(t, 0, s.Logging.Verbosity)
	assert.True(t, s.Logging.File)
}

func TestLoad_Layers(t *testing.T) {
	path := writeSettings(t, `
[run]
dry_run = true

[output]
format = "text"

[logging]
verbosity = 1
`)

	t.Run("settings file", func(t *testing.T) {
		s, err := config.Load(config.Options{SettingsFile: path})
		require.NoError(t, err)
		assert.True(t, s.Run.DryRun)
		assert.Equal(t, report.FormatText, s.Format())
		assert.Equal(t, 1, s.Logging.Verbosity)
		assert.True(t, s.Logging.File, "unset keys keep their defaults")
	})

	t.Run("environment beats file", func(t *testing.T) {
		t.Setenv("NEATEN_OUTPUT_FORMAT", "json")
		t.Setenv("NEATEN_LOGGING_FILE", "false")
		t.Setenv("NEATEN_RUN_DRY_RUN", "false")

		s, err := config.Load(config.Options{SettingsFile: path})
		require.NoError(t, err)
		assert.Equal(t, report.FormatJSON, s.Format())
		assert.False(t, s.Logging.File)
		assert.False(t, s.Run.DryRun)
	})

	t.Run("overrides beat environment", func(t *testing.T) {
		t.Setenv("NEATEN_LOGGING_VERBOSITY", "2")

		s, err := config.Load(config.Options{
			SettingsFile: path,
			Overrides: map[string]interface{}{
				config.KeyLoggingVerbosity: 3,
				config.KeyOutputFormat:     "term",
			},
		})
		require.NoError(t, err)
		assert.Equal(t, 3, s.Logging.Verbosity)
		assert.Equal(t, report.FormatTerminal, s.Format())
	})
}

func TestLoad_SettingsFileFromEnvironment(t *testing.T) {
	path := writeSettings(t, "[output]\nformat = \"json\"\n")
	t.Setenv("NEATEN_CONFIG_FILE", path)

	s, err := config.Load(config.Options{})
	require.NoError(t, err)
	assert.Equal(t, "json", s.Output.Format)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("malformed file", func(t *testing.T) {
		_, err := config.Load(config.Options{SettingsFile: writeSettings(t, "[run\ndry_run = ")})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrSettingsLoad))
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := config.Load(config.Options{
			SettingsFile: missingFile(t),
			Overrides:    map[string]interface{}{config.KeyOutputFormat: "yaml"},
		})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrSettingsLoad))
		assert.Equal(t, "yaml", errors.GetErrorDetails(err)["value"])
	})

	t.Run("negative verbosity", func(t *testing.T) {
		t.Setenv("NEATEN_LOGGING_VERBOSITY", "-1")
		_, err := config.Load(config.Options{SettingsFile: missingFile(t)})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrSettingsLoad))
	})
}

func TestToTOML(t *testing.T) {
	s, err := config.Load(config.Options{
		SettingsFile: missingFile(t),
		Overrides:    map[string]interface{}{config.KeyDryRun: true},
	})
	require.NoError(t, err)

	data, err := s.ToTOML()
	require.NoError(t, err)

	var decoded config.Settings
	require.NoError(t, gotoml.Unmarshal(data, &decoded))
	assert.Equal(t, *s, decoded)
	assert.Contains(t, string(data), "dry_run = true")
}

func TestDefaultSettings(t *testing.T) {
	var decoded config.Settings
	require.NoError(t, gotoml.Unmarshal([]byte(config.DefaultSettings()), &decoded))
	assert.Equal(t, "auto", decoded.Output.Format)
	assert.True(t, decoded.Logging.File)
}
