package tracker

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/davecgh/go-spew/spew"

	"github.com/rytavi/howmuch/internal/session"
)

// Update satisfies tea.Model.
func (t *Tracker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if slog.Default().Enabled(context.Background(), slog.LevelDebug) {
		slog.Debug("tracker message", slog.String("msg", spew.Sdump(msg)))
	}

	if t.dialog == settingsDialog && t.form != nil && forForm(msg) {
		return t.updateSettings(msg)
	}

	switch msg := msg.(type) {
	case tickMsg:
		return t.handleTick(msg)

	case frameMsg:
		return t.handleFrame(msg)

	case clearCelebrationMsg:
		if msg.id == t.celebrateID {
			t.celebration = nil
		}

		return t, nil

	case wakeLockRevokedMsg:
		if t.state.Running() {
			t.setStatus("The wake lock was released by the system", true)
		}

		return t, t.waitForRevoke()

	case shareResultMsg:
		if msg.err != nil {
			t.setError(msg.err)
		} else {
			t.setStatus("Earnings "+msg.method.String(), false)
		}

		return t, nil

	case tea.KeyMsg:
		return t.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		t.progress.Width = msg.Width - padding*2 - 4
		if t.progress.Width > maxWidth {
			t.progress.Width = maxWidth
		}

		t.help.Width = msg.Width

		return t, nil

	// FrameMsg is sent when the progress bar wants to animate itself
	case progress.FrameMsg:
		progressModel, cmd := t.progress.Update(msg)
		t.progress, _ = progressModel.(progress.Model)

		return t, cmd
	}

	return t, nil
}

// forForm reports whether msg belongs to the open settings form. Timer,
// wake lock and share messages always reach the tracker.
func forForm(msg tea.Msg) bool {
	switch msg := msg.(type) {
	case tickMsg, frameMsg, clearCelebrationMsg, wakeLockRevokedMsg,
		shareResultMsg, progress.FrameMsg, tea.WindowSizeMsg:
		return false
	case tea.KeyMsg:
		return msg.String() != "ctrl+c"
	}

	return true
}

// handleTick recomputes the earnings and announces any milestone reached.
func (t *Tracker) handleTick(msg tickMsg) (tea.Model, tea.Cmd) {
	if msg.gen != t.gen || !t.state.Running() {
		return t, nil
	}

	s, cel := t.ctrl.Tick()

	cmds := []tea.Cmd{
		tick(t.gen),
		tea.SetWindowTitle(windowTitle(s)),
	}

	if s.Goal > 0 {
		cmds = append(cmds, t.progress.SetPercent(s.Progress()/100))
	}

	if cel != nil {
		t.celebration = cel
		t.celebrateID++

		cmds = append(
			cmds,
			clearCelebrationAfter(t.cfg.Display.CelebrationDuration, t.celebrateID),
			t.celebrate(*cel),
		)
	}

	return t, tea.Batch(cmds...)
}

// handleFrame eases the displayed amount towards the real earnings.
func (t *Tracker) handleFrame(msg frameMsg) (tea.Model, tea.Cmd) {
	if msg.gen != t.gen || !t.state.Running() {
		return t, nil
	}

	t.display.Step(t.state.Earnings)

	return t, frame(t.gen)
}

func (t *Tracker) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, defaultKeymap.quit) {
		return t.quit()
	}

	switch t.dialog {
	case confirmResetDialog:
		return t.handleConfirm(msg, t.confirmReset)
	case confirmClearDialog:
		return t.handleConfirm(msg, t.confirmClear)
	case historyDialog:
		return t.handleHistoryKey(msg)
	case summaryDialog, shortcutsDialog:
		if key.Matches(msg, defaultKeymap.esc, defaultKeymap.confirm, defaultKeymap.shortcuts) {
			t.dialog = noDialog
		}

		return t, nil
	}

	switch {
	case key.Matches(msg, defaultKeymap.togglePlay):
		if t.state.Running() {
			return t.pause()
		}

		return t.start()

	case key.Matches(msg, defaultKeymap.breakTime):
		if _, err := t.ctrl.ToggleBreak(); err != nil {
			t.setError(err)
		}

		return t, nil

	case key.Matches(msg, defaultKeymap.reset):
		return t.requestReset()

	case key.Matches(msg, defaultKeymap.share):
		return t, t.shareCmd()

	case key.Matches(msg, defaultKeymap.export):
		t.export()

		return t, nil

	case key.Matches(msg, defaultKeymap.history):
		t.dialog = historyDialog

		return t, nil

	case key.Matches(msg, defaultKeymap.settings):
		return t.openSettings()

	case key.Matches(msg, defaultKeymap.darkMode):
		t.darkMode = !t.darkMode
		t.applyTheme()

		if err := t.save(); err != nil {
			t.setError(err)
		}

		return t, nil

	case key.Matches(msg, defaultKeymap.shortcuts):
		t.dialog = shortcutsDialog

		return t, nil

	case key.Matches(msg, defaultKeymap.esc):
		t.celebration = nil
		t.setStatus("", false)

		return t, nil
	}

	return t, nil
}

func (t *Tracker) start() (tea.Model, tea.Cmd) {
	s, err := t.ctrl.Start()
	if err != nil {
		t.setError(err)

		return t, nil
	}

	t.setStatus("", false)
	t.acquireWakeLock()

	t.gen++

	return t, tea.Batch(
		tick(t.gen),
		frame(t.gen),
		tea.SetWindowTitle(windowTitle(s)),
	)
}

func (t *Tracker) pause() (tea.Model, tea.Cmd) {
	s, err := t.ctrl.Pause()
	if err != nil {
		t.setError(err)

		return t, nil
	}

	t.stopTimers(s)

	return t, tea.SetWindowTitle(windowTitle(s))
}

// stopTimers invalidates the ticks in flight and shows the exact amount.
func (t *Tracker) stopTimers(s session.State) {
	t.gen++
	t.display.Snap(s.Earnings)
	t.releaseWakeLock()
}

// requestReset resets straight away unless the session has earned enough
// to be worth a confirmation.
func (t *Tracker) requestReset() (tea.Model, tea.Cmd) {
	now := t.ctrl.Now()

	if t.state.Dirty(now) && t.state.Earnings >= t.cfg.Settings.ConfirmResetAbove {
		t.dialog = confirmResetDialog

		return t, nil
	}

	return t.reset()
}

func (t *Tracker) reset() (tea.Model, tea.Cmd) {
	s, rec := t.ctrl.Reset()

	t.stopTimers(s)
	t.celebration = nil
	t.summary = rec
	t.dialog = noDialog

	if rec != nil {
		t.dialog = summaryDialog
	}

	return t, tea.Batch(
		tea.SetWindowTitle(windowTitle(s)),
		t.progress.SetPercent(0),
	)
}

func (t *Tracker) confirmReset() (tea.Model, tea.Cmd) {
	return t.reset()
}

func (t *Tracker) confirmClear() (tea.Model, tea.Cmd) {
	t.ctrl.ClearHistory()
	t.dialog = historyDialog
	t.setStatus("History cleared", false)

	return t, nil
}

// handleConfirm runs onConfirm when the user agrees and closes the dialog
// otherwise.
func (t *Tracker) handleConfirm(
	msg tea.KeyMsg,
	onConfirm func() (tea.Model, tea.Cmd),
) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, defaultKeymap.confirm):
		return onConfirm()
	case key.Matches(msg, defaultKeymap.cancel, defaultKeymap.esc):
		if t.dialog == confirmClearDialog {
			t.dialog = historyDialog
		} else {
			t.dialog = noDialog
		}
	}

	return t, nil
}

func (t *Tracker) handleHistoryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, defaultKeymap.clear):
		if t.ctrl.History().Len() > 0 {
			t.dialog = confirmClearDialog
		}
	case key.Matches(msg, defaultKeymap.export):
		t.export()
	case key.Matches(msg, defaultKeymap.esc, defaultKeymap.history):
		t.dialog = noDialog
	}

	return t, nil
}

func (t *Tracker) export() {
	if t.ctrl.History().Len() == 0 {
		t.setStatus("There are no sessions to export", true)
		return
	}

	path, err := t.exportHistory()
	if err != nil {
		t.setError(err)
		return
	}

	t.setStatus(
		fmt.Sprintf("Exported %d sessions to %s", t.ctrl.History().Len(), path),
		false,
	)
}

func (t *Tracker) openSettings() (tea.Model, tea.Cmd) {
	t.formValues = newSettingsValues(t.state)
	t.form = settingsForm(t.formValues)
	t.dialog = settingsDialog

	return t, t.form.Init()
}

func (t *Tracker) closeSettings() {
	t.form = nil
	t.formValues = nil
	t.dialog = noDialog
}

func (t *Tracker) updateSettings(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, defaultKeymap.esc) {
		t.closeSettings()

		return t, nil
	}

	form, cmd := t.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		t.form = f
	}

	switch t.form.State {
	case huh.StateCompleted:
		if err := applySettings(t.ctrl, t.formValues); err != nil {
			t.setError(err)
		} else {
			t.setStatus("Settings saved", false)
			t.display.Snap(t.state.Earnings)
		}

		t.closeSettings()

		return t, nil
	case huh.StateAborted:
		t.closeSettings()

		return t, nil
	}

	return t, cmd
}

func (t *Tracker) quit() (tea.Model, tea.Cmd) {
	t.gen++

	if err := t.Close(); err != nil {
		slog.Error("unable to save before quitting", slog.Any("error", err))
	}

	return t, tea.Batch(tea.SetWindowTitle(""), tea.Quit)
}
