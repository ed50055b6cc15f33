package app

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"

	"github.com/rytavi/howmuch/history"
	"github.com/rytavi/howmuch/store"
)

// clearHistory deletes every recorded session while keeping the stored
// preferences. Unless skipConfirm is set, it asks for confirmation first
// and does nothing if the answer is not yes.
func clearHistory(
	db store.DB,
	r io.Reader,
	w io.Writer,
	skipConfirm bool,
) (bool, error) {
	snap, err := db.Load()
	if err != nil {
		return false, err
	}

	if len(snap.History) == 0 {
		fmt.Fprintln(w, "There are no recorded sessions to clear")
		return false, nil
	}

	if !skipConfirm {
		printSummary(w, history.Summarise(snap.History))

		warning := pterm.Warning.Sprint(
			"The above sessions will be deleted permanently. Continue? [y/N] ",
		)

		fmt.Fprint(w, warning)

		reader := bufio.NewReader(r)

		answer, _ := reader.ReadString('\n')

		answer = strings.ToLower(strings.TrimSpace(answer))
		if answer != "y" && answer != "yes" {
			fmt.Fprintln(w, "Nothing was deleted")
			return false, nil
		}
	}

	snap.History = nil

	if err := db.Save(snap); err != nil {
		return false, err
	}

	return true, nil
}
