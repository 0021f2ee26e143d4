package ballast

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type builderTestConfig struct {
	Host string `yaml:"host" env:"HOST"`
	Port int    `yaml:"port" env:"PORT"`
}

// TestBuilderUnsupportedFormatLatched verifies an unrecognized extension is
// detected at declaration time and reported before any file is touched.
func TestBuilderUnsupportedFormatLatched(t *testing.T) {
	b := NewBuilder[builderTestConfig]().
		WithFile("config.txt").
		WithFile(filepath.Join(t.TempDir(), "never-read.toml"))

	_, err := b.Build(context.Background())
	require.Error(t, err)

	var formatErr *UnsupportedFormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Equal(t, "config.txt", formatErr.Path)
}

// TestBuilderSingleShot verifies a second execution fails.
func TestBuilderSingleShot(t *testing.T) {
	b := NewBuilder[builderTestConfig]().WithVariables(map[string]string{"HOST": "x"})

	_, err := b.Build(context.Background())
	require.NoError(t, err)

	_, err = b.Build(context.Background())
	require.ErrorIs(t, err, ErrBuilderConsumed)

	_, err = b.Merge(context.Background())
	require.ErrorIs(t, err, ErrBuilderConsumed)
}

// TestBuilderWithFileDotenvDegrades verifies a dotenv-suffixed path passed to
// WithFile behaves as an optional environment file.
func TestBuilderWithFileDotenvDegrades(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env.local")
	require.NoError(t, os.WriteFile(path, []byte("HOST=from-env-file\n"), 0o600))

	cfg, err := NewBuilder[builderTestConfig]().
		WithVariables(map[string]string{}).
		WithFile(path).
		Build(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "from-env-file", cfg.Host)

	// Absent dotenv paths are skipped rather than failing the build.
	cfg, err = NewBuilder[builderTestConfig]().
		WithVariables(map[string]string{}).
		WithFile(filepath.Join(dir, ".env.missing")).
		Build(context.Background())
	require.NoError(t, err)
	assert.Empty(t, cfg.Host)
}

// TestBuilderDeclarationIsInert verifies declaring sources reads nothing:
// a file created after declaration but before Build is still picked up.
func TestBuilderDeclarationIsInert(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	b := NewBuilder[builderTestConfig]().
		WithVariables(map[string]string{}).
		WithFile(path)

	require.NoError(t, os.WriteFile(path, []byte("host: late\n"), 0o600))

	cfg, err := b.Build(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "late", cfg.Host)
}

// TestBuilderContextCancellation verifies a cancelled context aborts the replay.
func TestBuilderContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewBuilder[builderTestConfig]().
		WithVariables(map[string]string{}).
		WithEnvFile(".env").
		Build(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
