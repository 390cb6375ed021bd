package config

import (
	_ "embed"
	stderrors "errors"
	"os"
	"strings"

	"github.com/arthur-debert/neaten/pkg/errors"
	"github.com/arthur-debert/neaten/pkg/logging"
	"github.com/arthur-debert/neaten/pkg/paths"
	"github.com/arthur-debert/neaten/pkg/report"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	gotoml "github.com/pelletier/go-toml/v2"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// EnvPrefix is the prefix of environment variables read as settings
const EnvPrefix = "NEATEN_"

// Setting keys
const (
	KeyDryRun           = "run.dry_run"
	KeyOutputFormat     = "output.format"
	KeyLoggingVerbosity = "logging.verbosity"
	KeyLoggingFile      = "logging.file"
)

// Settings is the effective configuration of a run
type Settings struct {
	Run     RunSettings     `koanf:"run" toml:"run"`
	Output  OutputSettings  `koanf:"output" toml:"output"`
	Logging LoggingSettings `koanf:"logging" toml:"logging"`
}

// RunSettings apply to every rule of a run
type RunSettings struct {
	DryRun bool `koanf:"dry_run" toml:"dry_run"`
}

// OutputSettings select the report format
type OutputSettings struct {
	Format string `koanf:"format" toml:"format"`
}

// LoggingSettings control diagnostics
type LoggingSettings struct {
	Verbosity int  `koanf:"verbosity" toml:"verbosity"`
	File      bool `koanf:"file" toml:"file"`
}

// Options tune Load
type Options struct {
	// SettingsFile replaces the default user settings path
	SettingsFile string
	// Overrides are applied last, keyed by dotted setting name
	Overrides map[string]interface{}
}

// Load builds the effective settings from every layer and validates them
func Load(opts Options) (*Settings, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to load default settings")
	}

	// 2. User settings file
	settingsFile := opts.SettingsFile
	if settingsFile == "" {
		settingsFile = paths.SettingsFile()
	}
	if _, err := os.Stat(settingsFile); err == nil {
		if err := k.Load(file.Provider(settingsFile), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrSettingsLoad, "failed to load settings from %s", settingsFile).
				WithDetail("path", settingsFile)
		}
		logger.Debug().Str("path", settingsFile).Msg("Loaded settings file")
	}

	// 3. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrSettingsLoad, "failed to load settings from environment")
	}

	// 4. Explicit overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrSettingsLoad, "failed to apply setting overrides")
		}
	}

	var settings Settings
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &settings,
			WeaklyTypedInput: true,
			TagName:          "koanf",
		},
	}
	if err := k.UnmarshalWithConf("", &settings, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrSettingsLoad, "failed to decode settings")
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}

	logger.Debug().
		Bool("dryRun", settings.Run.DryRun).
		Str("format", settings.Output.Format).
		Int("verbosity", settings.Logging.Verbosity).
		Msg("Settings loaded")

	return &settings, nil
}

// Validate rejects values no component can act on
func (s *Settings) Validate() error {
	if _, err := report.ParseFormat(s.Output.Format); err != nil {
		return errors.Wrapf(err, errors.ErrSettingsLoad, "invalid %s", KeyOutputFormat).
			WithDetail("value", s.Output.Format)
	}
	if s.Logging.Verbosity < 0 {
		return errors.Newf(errors.ErrSettingsLoad, "invalid %s: %d is negative", KeyLoggingVerbosity, s.Logging.Verbosity).
			WithDetail("value", s.Logging.Verbosity)
	}
	return nil
}

// Format returns the parsed output format
func (s *Settings) Format() report.Format {
	f, _ := report.ParseFormat(s.Output.Format)
	return f
}

// ToTOML renders the settings in the settings file syntax
func (s *Settings) ToTOML() ([]byte, error) {
	data, err := gotoml.Marshal(s)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to render settings")
	}
	return data, nil
}

// DefaultSettings returns the embedded defaults as text
func DefaultSettings() string {
	return string(defaultConfig)
}

// envKey maps NEATEN_SECTION_KEY_NAME to section.key_name. Variables that
// only locate files are not settings and are skipped.
func envKey(s string) string {
	switch s {
	case paths.EnvNeatenConfigDir, paths.EnvNeatenConfigFile, paths.EnvNeatenStateDir:
		return ""
	}
	parts := strings.SplitN(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", 2)
	if len(parts) != 2 {
		return ""
	}
	return parts[0] + "." + parts[1]
}

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, stderrors.New("not implemented")
}
