// Package wakelock keeps the machine awake while the timer runs by holding
// a long-running inhibitor process
package wakelock

import (
	"log/slog"
	"os/exec"
	"runtime"
	"sync"

	"github.com/kballard/go-shellquote"

	"github.com/rytavi/howmuch/internal/apperr"
	"github.com/rytavi/howmuch/internal/osutil"
)

var errParseCmd = &apperr.Error{
	Message: "unable to parse wake_lock_cmd option",
}

// DefaultCommand returns the inhibitor command for the current platform,
// or an empty string when none is known.
func DefaultCommand() string {
	switch runtime.GOOS {
	case osutil.Linux:
		return `systemd-inhibit --what=idle:sleep --who=howmuch --why="Tracking earnings" sleep infinity`
	case osutil.Darwin:
		return "caffeinate -d"
	default:
		return ""
	}
}

// Lock runs an inhibitor command for as long as the lock is held. If the
// command exits on its own the lock is considered revoked.
type Lock struct {
	cmd     *exec.Cmd
	revoked chan struct{}
	argv    []string
	mu      sync.Mutex
}

// New parses command into a lock. An empty command gives a lock that does
// nothing.
func New(command string) (*Lock, error) {
	argv, err := shellquote.Split(command)
	if err != nil {
		return nil, errParseCmd.Wrap(err)
	}

	return &Lock{
		argv:    argv,
		revoked: make(chan struct{}, 1),
	}, nil
}

// Enabled reports whether the lock has a command to run.
func (l *Lock) Enabled() bool {
	return len(l.argv) > 0
}

// Held reports whether the inhibitor is currently running.
func (l *Lock) Held() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.cmd != nil
}

// Revoked receives a value each time the inhibitor exits without being
// released.
func (l *Lock) Revoked() <-chan struct{} {
	return l.revoked
}

// Acquire starts the inhibitor. It does nothing if the lock is already
// held or disabled.
func (l *Lock) Acquire() error {
	if !l.Enabled() {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.cmd != nil {
		return nil
	}

	cmd := exec.Command(l.argv[0], l.argv[1:]...)

	if err := cmd.Start(); err != nil {
		return err
	}

	l.cmd = cmd

	slog.Debug("wake lock acquired", slog.Int("pid", cmd.Process.Pid))

	go l.watch(cmd)

	return nil
}

// Release stops the inhibitor if it is running.
func (l *Lock) Release() error {
	l.mu.Lock()

	cmd := l.cmd
	l.cmd = nil

	l.mu.Unlock()

	if cmd == nil {
		return nil
	}

	slog.Debug("wake lock released", slog.Int("pid", cmd.Process.Pid))

	return cmd.Process.Kill()
}

func (l *Lock) watch(cmd *exec.Cmd) {
	err := cmd.Wait()

	l.mu.Lock()

	released := l.cmd != cmd
	if !released {
		l.cmd = nil
	}

	l.mu.Unlock()

	if released {
		return
	}

	slog.Warn("wake lock revoked", slog.Any("error", err))

	select {
	case l.revoked <- struct{}{}:
	default:
	}
}
