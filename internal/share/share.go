// Package share hands a summary of the current earnings to a share command,
// falling back to the clipboard
package share

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/kballard/go-shellquote"

	"github.com/rytavi/howmuch/internal/apperr"
	"github.com/rytavi/howmuch/internal/earnings"
	"github.com/rytavi/howmuch/internal/timeutil"
)

// Method is the way the text ended up being shared.
type Method int

const (
	ViaCommand Method = iota
	ViaClipboard
)

func (m Method) String() string {
	if m == ViaCommand {
		return "shared"
	}

	return "copied to clipboard"
}

var errShareFailed = &apperr.Error{
	Message: "unable to share or copy to the clipboard",
}

// Text returns the message that is shared.
func Text(amount float64, elapsed time.Duration) string {
	return fmt.Sprintf(
		"I've made %s in %s! How much have you made?",
		earnings.FormatMoney(amount),
		timeutil.Clock(elapsed),
	)
}

// Sharer sends text to the configured share command or the clipboard.
type Sharer struct {
	copy    func(string) error
	argv    []string
	timeout time.Duration
}

// New returns a Sharer for command, which receives the text on stdin. An
// empty command always uses the clipboard.
func New(command string) (*Sharer, error) {
	argv, err := shellquote.Split(command)
	if err != nil {
		return nil, fmt.Errorf("unable to parse share_cmd option: %w", err)
	}

	return &Sharer{
		argv:    argv,
		copy:    clipboard.WriteAll,
		timeout: 10 * time.Second,
	}, nil
}

// Share delivers text and reports how it was delivered.
func (s *Sharer) Share(ctx context.Context, text string) (Method, error) {
	var cmdErr error

	if len(s.argv) > 0 {
		cmdErr = s.run(ctx, text)
		if cmdErr == nil {
			return ViaCommand, nil
		}

		slog.Warn(
			"share command failed, falling back to clipboard",
			slog.Any("error", cmdErr),
		)
	}

	if err := s.copy(text); err != nil {
		return ViaClipboard, errShareFailed.Wrap(errors.Join(cmdErr, err))
	}

	return ViaClipboard, nil
}

func (s *Sharer) run(ctx context.Context, text string) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, s.argv[0], s.argv[1:]...)
	cmd.Stdin = strings.NewReader(text)

	return cmd.Run()
}
