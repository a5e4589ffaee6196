package feed

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/postdeck/domain"
	"github.com/CrestNiraj12/postdeck/state"
)

var testNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func testClock() time.Time { return testNow }

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// loadedRoot builds a succeeded posts slice. Later ids get older dates, so
// display order equals argument order.
func loadedRoot(ids ...string) state.Root {
	recs := make([]domain.PostRecord, 0, len(ids))
	for _, id := range ids {
		recs = append(recs, domain.PostRecord{ID: id, Title: "Title " + id, Body: "Body " + id, UserID: "1"})
	}
	r := state.Reduce(state.Root{}, state.UsersLoaded{Users: []domain.User{{ID: 1, Name: "Leanne Graham"}}})
	return state.Reduce(r, state.PostsLoaded{Records: recs, At: testNow})
}
