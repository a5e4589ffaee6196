package tui

import (
	"context"
	"errors"
	"os/exec"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/postdeck/domain"
	"github.com/CrestNiraj12/postdeck/infra/idgen"
	"github.com/CrestNiraj12/postdeck/state"
	"github.com/CrestNiraj12/postdeck/tui/compose"
	"github.com/CrestNiraj12/postdeck/tui/feed"
)

var testNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

type stubPosts struct {
	records   []domain.PostRecord
	created   domain.PostRecord
	fetchErr  error
	createErr error
	fetches   int
}

func (s *stubPosts) FetchAll(ctx context.Context) ([]domain.PostRecord, error) {
	s.fetches++
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.records, s.fetchErr
}

func (s *stubPosts) Create(ctx context.Context, _ domain.Draft) (domain.PostRecord, error) {
	if err := ctx.Err(); err != nil {
		return domain.PostRecord{}, err
	}
	return s.created, s.createErr
}

type stubUsers struct{}

func (stubUsers) FetchAll(context.Context) ([]domain.User, error) {
	return []domain.User{{ID: 1, Name: "Leanne Graham"}, {ID: 3, Name: "Clementine Bauch"}}, nil
}

func newTestApp(posts *stubPosts) (App, *state.Store) {
	store := state.NewStore(nil)
	a := NewApp(context.Background(), Deps{
		Store: store,
		Posts: posts,
		Users: stubUsers{},
		IDs:   idgen.NewSequence("local"),
		Clock: func() time.Time { return testNow },
	})
	return a, store
}

// drain runs cmd and feeds every resulting message back into the app,
// breadth first, ignoring spinner ticks and cursor blinks.
func drain(t *testing.T, a App, cmd tea.Cmd) App {
	t.Helper()
	queue := []tea.Cmd{cmd}
	for steps := 0; len(queue) > 0; steps++ {
		if steps > 50 {
			t.Fatalf("message loop did not settle")
		}
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}
		msg := c()
		switch msg := msg.(type) {
		case tea.BatchMsg:
			queue = append(queue, msg...)
			continue
		case nil:
			continue
		}
		if !relevant(msg) {
			continue
		}
		model, next := a.Update(msg)
		a = model.(App)
		queue = append(queue, next)
	}
	return a
}

func relevant(msg tea.Msg) bool {
	switch msg.(type) {
	case state.Event, feed.LoadPostsMsg, feed.ComposeMsg,
		compose.SubmitMsg, compose.SaveLocalMsg, compose.CloseMsg,
		compose.EditContentMsg, compose.EditedMsg, createSettledMsg:
		return true
	}
	return false
}

func send(t *testing.T, a App, msg tea.Msg) App {
	t.Helper()
	model, cmd := a.Update(msg)
	return drain(t, model.(App), cmd)
}

// typeInto delivers runes to the focused field. The returned cursor blink
// command is dropped because it sleeps.
func typeInto(a App, s string) App {
	model, _ := a.Update(keyRunes(s))
	return model.(App)
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestInit_LoadsUsersAndPostsOnce(t *testing.T) {
	posts := &stubPosts{records: []domain.PostRecord{{ID: "1", Title: "A", Body: "b", UserID: "2"}}}
	a, store := newTestApp(posts)

	a = drain(t, a, a.Init())

	st := store.State()
	if st.Posts.Status != state.StatusSucceeded || len(st.Posts.Posts) != 1 {
		t.Fatalf("unexpected posts slice: %#v", st.Posts)
	}
	if st.Users.Status != state.StatusSucceeded || len(st.Users.Users) != 2 {
		t.Fatalf("unexpected users slice: %#v", st.Users)
	}

	// Re-mounting the list must not load again.
	a = send(t, a, feed.LoadPostsMsg{})
	if posts.fetches != 1 || len(store.State().Posts.Posts) != 1 {
		t.Fatalf("expected exactly one load, got %d fetches", posts.fetches)
	}
}

func TestInit_SkipsUsersWhenAlreadyFetched(t *testing.T) {
	a, store := newTestApp(&stubPosts{})
	store.Dispatch(state.UsersLoaded{Users: []domain.User{{ID: 9, Name: "Prefetched"}}})

	drain(t, a, a.Init())
	if u := state.SelectAllUsers(store.State()); len(u) != 1 || u[0].Name != "Prefetched" {
		t.Fatalf("users should not be refetched: %#v", u)
	}
}

func TestLoadFailure_ShowsError(t *testing.T) {
	a, store := newTestApp(&stubPosts{fetchErr: &domain.TransportError{Op: "GET /posts", Err: errors.New("connection refused")}})
	a = drain(t, a, a.Init())

	if st := store.State(); st.Posts.Status != state.StatusFailed {
		t.Fatalf("expected failed status, got %v", st.Posts.Status)
	}
	if !strings.Contains(a.View(), "GET /posts: connection refused") {
		t.Fatalf("expected error in view: %q", a.View())
	}
}

func TestRefresh_ReplacesCollection(t *testing.T) {
	posts := &stubPosts{records: []domain.PostRecord{{ID: "1"}, {ID: "2"}}}
	a, store := newTestApp(posts)
	a = drain(t, a, a.Init())

	a = send(t, a, keyRunes("r"))
	if got := len(store.State().Posts.Posts); got != 2 || posts.fetches != 2 {
		t.Fatalf("refresh should replace, got %d posts after %d fetches", got, posts.fetches)
	}
}

func TestReactionKey_UpdatesStore(t *testing.T) {
	a, store := newTestApp(&stubPosts{records: []domain.PostRecord{{ID: "1"}}})
	a = drain(t, a, a.Init())

	a = send(t, a, keyRunes("1"))
	a = send(t, a, keyRunes("1"))
	p, _ := state.SelectPostByID(store.State(), "1")
	if p.Reactions.Count(domain.ThumbsUp) != 2 {
		t.Fatalf("expected two thumbs up, got %d", p.Reactions.Count(domain.ThumbsUp))
	}
}

func openFilledForm(t *testing.T, a App) App {
	t.Helper()
	a = send(t, a, keyRunes("n"))
	if a.active != composeView {
		t.Fatalf("expected compose view")
	}
	a = typeInto(a, "T")
	a = send(t, a, tea.KeyMsg{Type: tea.KeyTab})
	a = send(t, a, tea.KeyMsg{Type: tea.KeyRight})
	a = send(t, a, tea.KeyMsg{Type: tea.KeyRight})
	a = send(t, a, tea.KeyMsg{Type: tea.KeyTab})
	a = typeInto(a, "C")
	return a
}

func TestSubmit_CreatesPostWithNumericAuthor(t *testing.T) {
	posts := &stubPosts{created: domain.PostRecord{ID: "99", Title: "T", Body: "C", UserID: "3"}}
	a, store := newTestApp(posts)
	a = drain(t, a, a.Init())

	before := len(store.State().Posts.Posts)
	a = openFilledForm(t, a)
	a = send(t, a, tea.KeyMsg{Type: tea.KeyCtrlS})

	st := store.State()
	if len(st.Posts.Posts) != before+1 {
		t.Fatalf("expected one more post, got %d", len(st.Posts.Posts))
	}
	p, ok := state.SelectPostByID(st, "99")
	if !ok || p.UserID != 3 || p.Date.IsZero() {
		t.Fatalf("unexpected created post: %#v", p)
	}
	if a.status != "Post saved!" || a.compose.Submitting() {
		t.Fatalf("unexpected app state: status=%q submitting=%v", a.status, a.compose.Submitting())
	}
}

func TestSubmit_FailureIsReported(t *testing.T) {
	a, store := newTestApp(&stubPosts{createErr: errors.New("POST /posts: status 500: boom")})
	a = drain(t, a, a.Init())

	a = openFilledForm(t, a)
	a = send(t, a, tea.KeyMsg{Type: tea.KeyCtrlS})

	if len(store.State().Posts.Posts) != 0 {
		t.Fatalf("failed create must not add posts")
	}
	if !strings.HasPrefix(a.status, "Error: ") {
		t.Fatalf("expected visible failure, got %q", a.status)
	}
	if a.compose.Submitting() {
		t.Fatalf("form must reset after failure")
	}
}

func TestSubmit_CancelledWhenFormCloses(t *testing.T) {
	a, store := newTestApp(&stubPosts{created: domain.PostRecord{ID: "99", UserID: "3"}})
	a = drain(t, a, a.Init())
	a = openFilledForm(t, a)

	model, cmd := a.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	a = model.(App)
	submit := cmd()
	model, settleCmd := a.Update(submit)
	a = model.(App)

	// Leave the form before the create settles.
	a = send(t, a, tea.KeyMsg{Type: tea.KeyEsc})
	a = drain(t, a, settleCmd)

	if a.active != feedView {
		t.Fatalf("expected list view after esc")
	}
	if a.status != "Cancelled." {
		t.Fatalf("expected cancelled status, got %q", a.status)
	}
	if len(store.State().Posts.Posts) != 0 {
		t.Fatalf("cancelled create must not add posts")
	}
}

// submitHeld presses ctrl+s on the open form and returns the command that
// settles the create without running it.
func submitHeld(t *testing.T, a App) (App, tea.Cmd) {
	t.Helper()
	model, cmd := a.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	a = model.(App)
	if cmd == nil {
		t.Fatalf("expected submit command")
	}
	model, settle := a.Update(cmd())
	return model.(App), settle
}

func TestSubmit_EarlierFormSettleDoesNotReleaseNewerForm(t *testing.T) {
	a, store := newTestApp(&stubPosts{created: domain.PostRecord{ID: "99", Title: "T", Body: "C", UserID: "3"}})
	a = drain(t, a, a.Init())

	a = openFilledForm(t, a)
	a, settleFirst := submitHeld(t, a)
	a = send(t, a, tea.KeyMsg{Type: tea.KeyEsc})

	a = openFilledForm(t, a)
	a, settleSecond := submitHeld(t, a)
	if !a.compose.Submitting() {
		t.Fatalf("second form should be submitting")
	}

	a = drain(t, a, settleFirst)
	if !a.compose.Submitting() {
		t.Fatalf("earlier form's settle released the newer form")
	}
	if a.status != "Saving..." {
		t.Fatalf("earlier form's settle overwrote status: %q", a.status)
	}
	if a.compose.CanSubmit(state.SelectAllUsers(store.State())) {
		t.Fatalf("submit must stay disabled while the newer create is pending")
	}

	a = drain(t, a, settleSecond)
	if a.compose.Submitting() || a.status != "Post saved!" {
		t.Fatalf("newer form not settled: submitting=%v status=%q", a.compose.Submitting(), a.status)
	}
	if len(store.State().Posts.Posts) != 1 {
		t.Fatalf("expected only the second create to land, got %d posts", len(store.State().Posts.Posts))
	}
}

func TestWindowSize_ResizesOpenForm(t *testing.T) {
	a, _ := newTestApp(&stubPosts{})
	a = drain(t, a, a.Init())
	a = send(t, a, keyRunes("n"))
	wide := a.compose.ContentWidth()

	a = send(t, a, tea.WindowSizeMsg{Width: 40, Height: 20})
	if got := a.compose.ContentWidth(); got >= wide {
		t.Fatalf("expected narrower textarea, got %d (was %d)", got, wide)
	}

	a = send(t, a, tea.KeyMsg{Type: tea.KeyEsc})
	a = send(t, a, keyRunes("n"))
	if got := a.compose.ContentWidth(); got >= wide {
		t.Fatalf("new form should pick up the last window size, got %d", got)
	}
}

func TestSaveLocal_AddsPostWithGeneratedID(t *testing.T) {
	a, store := newTestApp(&stubPosts{})
	a = drain(t, a, a.Init())
	a = openFilledForm(t, a)

	a = send(t, a, tea.KeyMsg{Type: tea.KeyCtrlL})
	p, ok := state.SelectPostByID(store.State(), "local-1")
	if !ok || p.Title != "T" || p.Body != "C" || p.UserID != 3 || !p.Date.Equal(testNow) {
		t.Fatalf("unexpected local post: %#v", p)
	}
	if a.status != "Saved locally." {
		t.Fatalf("unexpected status %q", a.status)
	}
}

func TestQuit_CancelsLifetimeScope(t *testing.T) {
	a, _ := newTestApp(&stubPosts{})
	ctx := a.ctx
	_, cmd := a.Update(keyRunes("q"))
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected QuitMsg")
	}
	if ctx.Err() == nil {
		t.Fatalf("expected app scope to be cancelled on quit")
	}
}

type failingEditor struct{ err error }

func (e failingEditor) Cmd(string) (*exec.Cmd, string, error) { return nil, "", e.err }
func (e failingEditor) ReadContent(string) (string, error)    { return "", e.err }

func TestEditor_FailureKeepsFormAndReports(t *testing.T) {
	a, _ := newTestApp(&stubPosts{})
	a.deps.Editor = failingEditor{err: errors.New("no tty")}
	a = drain(t, a, a.Init())
	a = openFilledForm(t, a)

	a = send(t, a, tea.KeyMsg{Type: tea.KeyCtrlE})
	if a.status != "Editor: no tty" {
		t.Fatalf("unexpected status %q", a.status)
	}
	if a.compose.Content() != "C" {
		t.Fatalf("content should be kept, got %q", a.compose.Content())
	}
}

func TestEditor_DisabledWithoutEditor(t *testing.T) {
	a, _ := newTestApp(&stubPosts{})
	if cmd := a.openEditor("x"); cmd != nil {
		t.Fatalf("expected no command without an editor")
	}
}
