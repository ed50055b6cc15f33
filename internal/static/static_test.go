package static

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstall(t *testing.T) {
	dataDir := t.TempDir()

	// runs after the environment is restored
	t.Cleanup(xdg.Reload)

	t.Setenv("XDG_DATA_HOME", dataDir)
	xdg.Reload()

	require.NoError(t, Install())

	icon := filepath.Join(dataDir, appDir, "icon.png")

	want, err := embeddedFiles.ReadFile(filesDir + "/icon.png")
	require.NoError(t, err)

	got, err := os.ReadFile(icon)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	// customised files survive a reinstall
	require.NoError(t, os.WriteFile(icon, []byte("custom"), 0o644))
	require.NoError(t, Install())

	got, err = os.ReadFile(icon)
	require.NoError(t, err)
	assert.Equal(t, "custom", string(got))
}
