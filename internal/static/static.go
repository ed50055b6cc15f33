// Package static embeds the assets howmuch needs at runtime, such as the
// notification icon, and copies them to the data directory
package static

import (
	"embed"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"

	"github.com/rytavi/howmuch/internal/osutil"
)

const (
	filesDir = "files"
	appDir   = "howmuch"
)

//go:embed files/*
var embeddedFiles embed.FS

// Install copies the embedded files into the howmuch data directory. Files
// that already exist are left alone so they can be customised.
func Install() error {
	return fs.WalkDir(
		embeddedFiles,
		filesDir,
		func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				return nil
			}

			b, err := embeddedFiles.ReadFile(path)
			if err != nil {
				return err
			}

			// embedded paths always use forward slashes
			stripped := strings.TrimPrefix(path, filesDir+"/")

			destPath, err := xdg.DataFile(
				filepath.Join(appDir, filepath.FromSlash(stripped)),
			)
			if err != nil {
				return err
			}

			if _, err := os.Stat(destPath); !errors.Is(err, os.ErrNotExist) {
				return err
			}

			return os.WriteFile(destPath, b, osutil.FilePermission)
		},
	)
}
