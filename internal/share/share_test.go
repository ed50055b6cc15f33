package share

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rytavi/howmuch/internal/osutil"
)

type fakeClipboard struct {
	err  error
	text string
}

func (f *fakeClipboard) write(s string) error {
	if f.err != nil {
		return f.err
	}

	f.text = s

	return nil
}

func newTestSharer(t *testing.T, command string, cb *fakeClipboard) *Sharer {
	t.Helper()

	s, err := New(command)
	require.NoError(t, err)

	s.copy = cb.write

	return s
}

func TestText(t *testing.T) {
	got := Text(1234.5, time.Hour+2*time.Minute+3*time.Second)

	assert.Equal(t, "I've made $1,234.50 in 01:02:03! How much have you made?", got)
}

func TestShareWithoutCommandUsesClipboard(t *testing.T) {
	cb := &fakeClipboard{}
	s := newTestSharer(t, "", cb)

	method, err := s.Share(context.Background(), "hello")
	require.NoError(t, err)

	assert.Equal(t, ViaClipboard, method)
	assert.Equal(t, "hello", cb.text)
}

func TestShareViaCommand(t *testing.T) {
	if runtime.GOOS == osutil.Windows {
		t.Skip("needs a POSIX shell")
	}

	out := filepath.Join(t.TempDir(), "shared.txt")
	cb := &fakeClipboard{}
	s := newTestSharer(t, "sh -c 'cat > "+out+"'", cb)

	method, err := s.Share(context.Background(), "I've made $5.00")
	require.NoError(t, err)

	assert.Equal(t, ViaCommand, method)
	assert.Empty(t, cb.text)

	b, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "I've made $5.00", string(b))
}

func TestShareFallsBackWhenCommandFails(t *testing.T) {
	cb := &fakeClipboard{}
	s := newTestSharer(t, "howmuch-no-such-share-cmd", cb)

	method, err := s.Share(context.Background(), "hello")
	require.NoError(t, err)

	assert.Equal(t, ViaClipboard, method)
	assert.Equal(t, "hello", cb.text)
}

func TestShareReportsTotalFailure(t *testing.T) {
	cb := &fakeClipboard{err: errors.New("no clipboard")}
	s := newTestSharer(t, "howmuch-no-such-share-cmd", cb)

	_, err := s.Share(context.Background(), "hello")

	assert.ErrorIs(t, err, errShareFailed)
	assert.ErrorContains(t, err, "no clipboard")
}

func TestInvalidShareCommand(t *testing.T) {
	_, err := New(`xclip "-selection`)

	assert.Error(t, err)
}
