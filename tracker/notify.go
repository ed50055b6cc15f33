package tracker

import (
	"log/slog"
	"path/filepath"

	"github.com/adrg/xdg"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gen2brain/beeep"

	"github.com/rytavi/howmuch/internal/session"
)

// sendNotification shows a desktop notification.
func sendNotification(title, msg string) error {
	// pathToIcon will be an empty string if file is not found
	pathToIcon, _ := xdg.SearchDataFile(
		filepath.Join("howmuch", "icon.png"),
	)

	return beeep.Notify(title, msg, pathToIcon)
}

// celebrate announces a celebration outside the terminal when
// notifications are enabled.
func (t *Tracker) celebrate(cel session.Celebration) tea.Cmd {
	if !t.cfg.Notifications.Enabled {
		return nil
	}

	notify := t.notify
	play := t.playSound
	sound := t.cfg.Settings.CelebrationSound

	return func() tea.Msg {
		if err := notify(appTitle, cel.Message()); err != nil {
			slog.Warn("unable to display notification", slog.Any("error", err))
		}

		if sound == "" {
			return nil
		}

		if err := play(sound); err != nil {
			slog.Warn(
				"unable to play celebration sound",
				slog.String("sound", sound),
				slog.Any("error", err),
			)
		}

		return nil
	}
}
