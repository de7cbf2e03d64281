package engineconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingReturnsDefault(t *testing.T) {
	p, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.Equal(t, Default(), p)
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "viewer.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"feedback":"panel","show_fps":true}`), 0o644))

	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "panel", p.Feedback)
	assert.True(t, p.ShowFPS)
	assert.True(t, p.GridVisible)
	assert.Equal(t, 4, p.Revision)
}

func TestLoadInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "viewer.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"feedback":`), 0o644))

	p, err := Load(path)
	assert.Error(t, err)
	assert.Equal(t, Default(), p)
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config", "viewer.json")
	want := Default()
	want.Revision = 2
	want.Spin = true
	want.SpinRate = 4.5
	want.ModelFile = "models/rendija.yaml"
	require.NoError(t, Save(path, want))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvFeedback, " Panel ")
	t.Setenv(EnvRevision, "2")
	t.Setenv(EnvSpin, "true")
	t.Setenv(EnvDebug, "1")

	p, err := ApplyEnv(Default())
	require.NoError(t, err)
	assert.Equal(t, "panel", p.Feedback)
	assert.Equal(t, 2, p.Revision)
	assert.True(t, p.Spin)
	assert.True(t, p.Debug)
}

func TestApplyEnvInvalid(t *testing.T) {
	t.Setenv(EnvRevision, "cuatro")
	t.Setenv(EnvSpin, "yes please")

	p, err := ApplyEnv(Default())
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvRevision+"=cuatro")
	assert.Contains(t, err.Error(), EnvSpin)
	assert.Equal(t, 4, p.Revision, "invalid values are skipped")
	assert.False(t, p.Spin)
}
