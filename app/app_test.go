package app

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rytavi/howmuch/history"
	"github.com/rytavi/howmuch/internal/config"
	"github.com/rytavi/howmuch/internal/earnings"
	"github.com/rytavi/howmuch/internal/models"
	"github.com/rytavi/howmuch/internal/pathutil"
	"github.com/rytavi/howmuch/store"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "howmuch-app")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	os.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	os.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	os.Setenv(envNoColor, "1")

	xdg.Reload()

	if err = pathutil.Initialize(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	code := m.Run()

	_ = os.RemoveAll(dir)

	os.Exit(code)
}

var annual = earnings.Rate{Value: 52_000, Mode: earnings.Annual}

func testRecords() []history.Record {
	return []history.Record{
		history.NewRecord(
			time.Date(2024, time.March, 12, 12, 0, 0, 0, time.UTC),
			50,
			2*time.Hour,
			0,
			annual,
		),
		history.NewRecord(
			time.Date(2024, time.March, 9, 12, 0, 0, 0, time.UTC),
			25,
			time.Hour+10*time.Minute,
			10*time.Minute,
			annual,
		),
	}
}

// seed replaces the stored snapshot with one holding records.
func seed(t *testing.T, records []history.Record) {
	t.Helper()

	db, err := store.NewClient(pathutil.DBFilePath())
	require.NoError(t, err)

	defer db.Close()

	require.NoError(t, db.Save(&models.Snapshot{
		History: records,
		Preferences: models.Preferences{
			Mode:     earnings.Annual,
			Rate:     52_000,
			Schedule: earnings.DefaultSchedule(),
		},
	}))
}

func load(t *testing.T) *models.Snapshot {
	t.Helper()

	db, err := store.NewClient(pathutil.DBFilePath())
	require.NoError(t, err)

	defer db.Close()

	snap, err := db.Load()
	require.NoError(t, err)

	return snap
}

// captureOutput redirects command output to a buffer for the duration of
// the test.
func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer

	stdout := config.Stdout
	config.Stdout = &buf

	t.Cleanup(func() {
		config.Stdout = stdout
	})

	return &buf
}

func run(t *testing.T, args ...string) error {
	t.Helper()

	return Get().Run(append([]string{"howmuch"}, args...))
}

func TestExportCommand(t *testing.T) {
	seed(t, testRecords())

	out := filepath.Join(t.TempDir(), "export.csv")

	require.NoError(t, run(t, "export", "--output", out))

	b, err := os.ReadFile(out)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(b)), "\n")

	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "Date,Earnings"))
	assert.Contains(t, lines[1], "2024-03-12")
	assert.Contains(t, lines[2], "2024-03-09")
}

func TestExportCommandToStdout(t *testing.T) {
	seed(t, testRecords())

	buf := captureOutput(t)

	require.NoError(t, run(t, "export", "--since", "2024-03-11", "-o", "-"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")

	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], "2024-03-12")
}

func TestHistoryCommandJSON(t *testing.T) {
	seed(t, testRecords())

	buf := captureOutput(t)

	require.NoError(t, run(t, "history", "--json"))

	var got struct {
		Sessions []history.Record `json:"sessions"`
		Summary  history.Summary  `json:"summary"`
	}

	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))

	assert.Len(t, got.Sessions, 2)
	assert.Equal(t, 2, got.Summary.Count)
	assert.Equal(t, "75", got.Summary.Earnings.String())
	assert.Equal(t, 3*time.Hour, got.Summary.WorkTime)
}

func TestHistoryCommandTable(t *testing.T) {
	seed(t, testRecords())

	buf := captureOutput(t)

	require.NoError(t, run(t, "history"))

	out := buf.String()

	assert.Contains(t, out, "$50.00")
	assert.Contains(t, out, "$25.00")
	assert.Contains(t, out, "00:10:00")
	assert.Contains(t, out, "$75.00 across 2 sessions")
}

func TestHistoryCommandRejectsReversedRange(t *testing.T) {
	seed(t, testRecords())

	err := run(t, "history", "--since", "2024-03-12", "--until", "2024-03-09")
	assert.Error(t, err)
}

func TestClearHistoryCommand(t *testing.T) {
	seed(t, testRecords())

	_ = captureOutput(t)

	require.NoError(t, run(t, "clear-history", "--yes"))

	snap := load(t)

	assert.Empty(t, snap.History)
	// preferences survive
	assert.Equal(t, 52_000.0, snap.Rate)
}

func TestCalcCommand(t *testing.T) {
	buf := captureOutput(t)

	require.NoError(t, run(t, "calc", "--rate", "52,000", "--mode", "annual"))

	out := buf.String()

	assert.Contains(t, out, "$52,000.00")
	assert.Contains(t, out, "$1,000.00")
	assert.Contains(t, out, "$200.00")
	assert.Contains(t, out, "$25.00")
}

type memDB struct {
	snap *models.Snapshot
}

func (m *memDB) Load() (*models.Snapshot, error) {
	cp := *m.snap
	return &cp, nil
}

func (m *memDB) Save(s *models.Snapshot) error {
	m.snap = s
	return nil
}

func (m *memDB) Close() error {
	return nil
}

func TestClearHistory(t *testing.T) {
	cases := []struct {
		name        string
		input       string
		skipConfirm bool
		cleared     bool
	}{
		{name: "confirmed", input: "y\n", cleared: true},
		{name: "confirmed in full", input: " YES \n", cleared: true},
		{name: "declined", input: "n\n"},
		{name: "no answer", input: "\n"},
		{name: "skip confirmation", skipConfirm: true, cleared: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			db := &memDB{snap: &models.Snapshot{History: testRecords()}}

			var out bytes.Buffer

			cleared, err := clearHistory(
				db,
				strings.NewReader(tc.input),
				&out,
				tc.skipConfirm,
			)
			require.NoError(t, err)

			assert.Equal(t, tc.cleared, cleared)

			if tc.cleared {
				assert.Empty(t, db.snap.History)
			} else {
				assert.Len(t, db.snap.History, 2)
				assert.Contains(t, out.String(), "Nothing was deleted")
			}
		})
	}
}

func TestClearHistoryEmpty(t *testing.T) {
	db := &memDB{snap: &models.Snapshot{}}

	var out bytes.Buffer

	cleared, err := clearHistory(db, strings.NewReader("y\n"), &out, false)
	require.NoError(t, err)

	assert.False(t, cleared)
	assert.Contains(t, out.String(), "no recorded sessions")
}
