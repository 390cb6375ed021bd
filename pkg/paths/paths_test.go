package paths_test

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/neaten/pkg/errors"
	"github.com/arthur-debert/neaten/pkg/paths"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedWd(dir string) func() (string, error) {
	return func() (string, error) { return dir, nil }
}

func TestResolve(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		name string
		path string
		want string
	}{
		{"absolute path is cleaned", "/srv/projects/../work/", "/srv/work"},
		{"relative path joins cwd", "sample/project", "/work/sample/project"},
		{"dot is cwd", ".", "/work"},
		{"tilde expands to home", "~/projects", filepath.Join(home, "projects")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := paths.Resolve(tt.path, fixedWd("/work"))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolve_Errors(t *testing.T) {
	_, err := paths.Resolve("", fixedWd("/work"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	_, err = paths.Resolve("rel", func() (string, error) {
		return "", stderrors.New("cwd removed")
	})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInternal))
}

func TestResolve_DefaultsToProcessCwd(t *testing.T) {
	cwd, err := os.Getwd()
	require.NoError(t, err)

	got, err := paths.Resolve("x", nil)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cwd, "x"), got)
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, home, paths.ExpandHome("~"))
	assert.Equal(t, filepath.Join(home, "a"), paths.ExpandHome("~/a"))
	assert.Equal(t, "~bob/a", paths.ExpandHome("~bob/a"))
	assert.Equal(t, "/a/~", paths.ExpandHome("/a/~"))
	assert.Equal(t, "", paths.ExpandHome(""))
}

func TestXDGOverrides(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv(paths.EnvNeatenConfigDir, filepath.Join(tmp, "cfg"))
	t.Setenv(paths.EnvNeatenStateDir, filepath.Join(tmp, "state"))

	assert.Equal(t, filepath.Join(tmp, "cfg"), paths.ConfigDir())
	assert.Equal(t, filepath.Join(tmp, "cfg", paths.SettingsFileName), paths.SettingsFile())
	assert.Equal(t, filepath.Join(tmp, "state", paths.LogFileName), paths.LogFile())

	t.Setenv(paths.EnvNeatenConfigFile, filepath.Join(tmp, "other.toml"))
	assert.Equal(t, filepath.Join(tmp, "other.toml"), paths.SettingsFile())
}

func TestStateDir_XDGStateHome(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv(paths.EnvNeatenStateDir, "")
	t.Setenv("XDG_STATE_HOME", tmp)

	assert.Equal(t, filepath.Join(tmp, paths.NeatenDirName), paths.StateDir())
}
