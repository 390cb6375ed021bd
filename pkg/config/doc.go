// Package config loads neaten's own settings.
//
// Settings are not rules: they tune how a run behaves and how it is shown.
// They are layered from lowest to highest priority:
//
//  1. the embedded defaults (embedded/defaults.toml)
//  2. the user settings file, $XDG_CONFIG_HOME/neaten/config.toml or the
//     file named by NEATEN_CONFIG_FILE, when it exists
//  3. NEATEN_* environment variables; the first underscore after the
//     prefix separates section and key, so NEATEN_RUN_DRY_RUN sets
//     run.dry_run
//  4. explicit overrides, usually from command line flags
package config
