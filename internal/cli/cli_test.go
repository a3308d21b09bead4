package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mandel "github.com/marben/mandelview"
	"github.com/marben/mandelview/config"
)

func newCmd(f *Flags) *cobra.Command {
	cmd := &cobra.Command{Use: "test", RunE: func(*cobra.Command, []string) error { return nil }}
	f.Register(cmd)
	return cmd
}

func TestConfigDefaults(t *testing.T) {
	var f Flags
	cmd := newCmd(&f)
	require.NoError(t, cmd.ParseFlags(nil))

	cfg, err := f.Config(cmd)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestConfigFlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.toml")
	require.NoError(t, os.WriteFile(path, []byte("[render]\nwidth = 100\nheight = 50\nmax_iter = 10\n"), 0o644))

	var f Flags
	cmd := newCmd(&f)
	require.NoError(t, cmd.ParseFlags([]string{"-c", path, "--height", "70", "--palette", "full", "--region", "spiral-minibrot", "--workers", "0"}))

	cfg, err := f.Config(cmd)
	require.NoError(t, err)
	assert.Equal(t, 100, cfg.Render.Width)
	assert.Equal(t, 70, cfg.Render.Height)
	assert.Equal(t, uint32(10), cfg.Render.MaxIter)
	assert.Equal(t, "full", cfg.Render.Palette)
	assert.Equal(t, 0, cfg.Render.Workers)
	assert.Equal(t, mandel.SpiralMinibrot.Viewport(), cfg.StartViewport())
}

func TestConfigValidatesFlags(t *testing.T) {
	var f Flags
	cmd := newCmd(&f)
	require.NoError(t, cmd.ParseFlags([]string{"--oversample", "0"}))
	_, err := f.Config(cmd)
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestSetupLogging(t *testing.T) {
	t.Cleanup(func() { mandel.SetLogger(nil) })
	require.NoError(t, SetupLogging("debug"))
	assert.Error(t, SetupLogging("loud"))

	var buf bytes.Buffer
	require.NoError(t, SetupLoggingTo(&buf, "warn"))
	mandel.Logger().Info("quiet")
	mandel.Logger().Warn("loud")
	assert.NotContains(t, buf.String(), "quiet")
	assert.Contains(t, buf.String(), "msg=loud")
}
