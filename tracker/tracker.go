// Package tracker runs the interactive earnings counter in the terminal
package tracker

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/rytavi/howmuch/history"
	"github.com/rytavi/howmuch/internal/config"
	"github.com/rytavi/howmuch/internal/models"
	"github.com/rytavi/howmuch/internal/session"
	"github.com/rytavi/howmuch/internal/share"
	"github.com/rytavi/howmuch/internal/ui"
	"github.com/rytavi/howmuch/internal/wakelock"
	"github.com/rytavi/howmuch/store"
)

const (
	appTitle = "How Much Have I Made?"
	padding  = 2
	maxWidth = 60
)

type dialog int

const (
	noDialog dialog = iota
	summaryDialog
	shortcutsDialog
	settingsDialog
	historyDialog
	confirmResetDialog
	confirmClearDialog
)

// Option configures a Tracker.
type Option func(*Tracker)

// WithWakeLock keeps the machine awake while the timer runs.
func WithWakeLock(l *wakelock.Lock) Option {
	return func(t *Tracker) {
		t.lock = l
	}
}

// WithSharer sets how the share key delivers its text.
func WithSharer(s *share.Sharer) Option {
	return func(t *Tracker) {
		t.sharer = s
	}
}

// WithExportDir sets the directory CSV exports are written to.
func WithExportDir(dir string) Option {
	return func(t *Tracker) {
		t.exportDir = dir
	}
}

// WithDarkMode selects the initial theme.
func WithDarkMode(dark bool) Option {
	return func(t *Tracker) {
		t.darkMode = dark
	}
}

// Tracker is the bubbletea model for the earnings counter.
type Tracker struct {
	ctrl        *session.Controller
	db          store.DB
	cfg         *config.Config
	lock        *wakelock.Lock
	sharer      *share.Sharer
	form        *huh.Form
	formValues  *settingsValues
	celebration *session.Celebration
	summary     *history.Record
	notify      func(title, msg string) error
	playSound   func(path string) error
	unsubscribe func()
	state       session.State
	exportDir   string
	status      string
	style       ui.Style
	help        help.Model
	progress    progress.Model
	display     session.Follower
	dialog      dialog
	gen         int
	celebrateID int
	historyLen  int
	statusErr   bool
	darkMode    bool
	saveErr     error
}

// New creates the tracker model for ctrl. Committed transitions are saved
// to db.
func New(
	ctrl *session.Controller,
	db store.DB,
	cfg *config.Config,
	opts ...Option,
) *Tracker {
	t := &Tracker{
		ctrl:       ctrl,
		db:         db,
		cfg:        cfg,
		help:       help.New(),
		state:      ctrl.State(),
		historyLen: ctrl.History().Len(),
		notify:     sendNotification,
		playSound:  playSound,
		exportDir:  ".",
	}

	for _, opt := range opts {
		opt(t)
	}

	t.applyTheme()
	t.display.Snap(t.state.Earnings)

	t.unsubscribe = ctrl.Subscribe(t.onCommit)

	return t
}

// Init satisfies tea.Model.
func (t *Tracker) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.SetWindowTitle(appTitle)}

	if t.lock != nil {
		cmds = append(cmds, t.waitForRevoke())
	}

	return tea.Batch(cmds...)
}

// State returns the last committed timer state.
func (t *Tracker) State() session.State {
	return t.state
}

// Close stops listening to the controller. The session in progress, if
// any, is recorded and everything is saved one last time.
func (t *Tracker) Close() error {
	if t.state.Dirty(t.ctrl.Now()) {
		t.ctrl.Reset()
	}

	t.unsubscribe()

	if t.lock != nil {
		if err := t.lock.Release(); err != nil {
			slog.Warn("unable to release wake lock", slog.Any("error", err))
		}
	}

	return t.save()
}

// onCommit receives every state committed by the controller and saves the
// snapshot when something other than the running totals changed.
func (t *Tracker) onCommit(s session.State) {
	prev := t.state
	t.state = s

	n := t.ctrl.History().Len()

	if !transitioned(prev, s) && n == t.historyLen {
		return
	}

	t.historyLen = n

	t.saveErr = t.save()
	if t.saveErr != nil {
		slog.Error("unable to save snapshot", slog.Any("error", t.saveErr))
	}
}

// transitioned reports whether next differs from prev in anything but the
// running totals updated by a tick.
func transitioned(prev, next session.State) bool {
	return prev.Status != next.Status ||
		prev.OnBreak != next.OnBreak ||
		prev.Rate != next.Rate ||
		prev.Schedule != next.Schedule ||
		prev.Goal != next.Goal ||
		prev.UnpaidBreaks != next.UnpaidBreaks
}

func (t *Tracker) snapshot() *models.Snapshot {
	return &models.Snapshot{
		Preferences: models.Preferences{
			Mode:     t.state.Rate.Mode,
			Rate:     t.state.Rate.Value,
			Goal:     t.state.Goal,
			Schedule: t.state.Schedule,
			DarkMode: t.darkMode,
		},
		History: t.ctrl.History().Records(),
	}
}

func (t *Tracker) save() error {
	if t.db == nil {
		return nil
	}

	return t.db.Save(t.snapshot())
}

func (t *Tracker) applyTheme() {
	t.style = ui.NewStyle(t.darkMode)

	from, to := ui.ProgressColors(t.darkMode)
	width := t.progress.Width

	t.progress = progress.New(progress.WithGradient(from, to))
	if width > 0 {
		t.progress.Width = width
	}
}

func (t *Tracker) setStatus(msg string, isErr bool) {
	t.status = msg
	t.statusErr = isErr
}

func (t *Tracker) setError(err error) {
	t.setStatus(err.Error(), true)
}

// windowTitle mirrors the running earnings in the terminal title.
func windowTitle(s session.State) string {
	if !s.Running() {
		return appTitle
	}

	return fmt.Sprintf("$%.2f - %s", s.Earnings, appTitle)
}

func (t *Tracker) waitForRevoke() tea.Cmd {
	revoked := t.lock.Revoked()

	return func() tea.Msg {
		<-revoked

		return wakeLockRevokedMsg{}
	}
}

func (t *Tracker) acquireWakeLock() {
	if t.lock == nil {
		return
	}

	if err := t.lock.Acquire(); err != nil {
		slog.Warn("unable to acquire wake lock", slog.Any("error", err))
	}
}

func (t *Tracker) releaseWakeLock() {
	if t.lock == nil {
		return
	}

	if err := t.lock.Release(); err != nil {
		slog.Warn("unable to release wake lock", slog.Any("error", err))
	}
}

func (t *Tracker) shareCmd() tea.Cmd {
	if t.sharer == nil {
		return nil
	}

	sharer := t.sharer
	text := share.Text(t.state.Earnings, t.state.TotalElapsed(t.ctrl.Now()))

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		method, err := sharer.Share(ctx, text)

		return shareResultMsg{method: method, err: err}
	}
}

// exportHistory writes the history as CSV into the export directory and
// returns the file path.
func (t *Tracker) exportHistory() (string, error) {
	path := filepath.Join(
		t.exportDir,
		history.ExportFileName(t.ctrl.Now()),
	)

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}

	err = t.ctrl.History().ExportCSV(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}

	if err != nil {
		return "", err
	}

	return path, nil
}
