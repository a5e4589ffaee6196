package tui

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/postdeck/app"
	"github.com/CrestNiraj12/postdeck/state"
	"github.com/CrestNiraj12/postdeck/tui/common"
	"github.com/CrestNiraj12/postdeck/tui/compose"
	"github.com/CrestNiraj12/postdeck/tui/feed"
)

// Deps holds all dependencies the TUI needs. Plain struct, not a DI container.
type Deps struct {
	Store  *state.Store
	Posts  app.PostService
	Users  app.UserService
	IDs    app.IDGenerator
	Clock  app.Clock
	Editor app.ContentEditor // Optional; nil disables ctrl+e
	Logger *slog.Logger
}

// createSettledMsg carries the terminal event of a remote create together
// with the scope of the form that submitted it.
type createSettledMsg struct {
	event state.Event
	ctx   context.Context
}

type activeView int

const (
	feedView activeView = iota
	composeView
)

// App is the root Bubble Tea model. It routes between sub-views and is the
// only place events reach the store.
type App struct {
	deps    Deps
	ctx     context.Context
	cancel  context.CancelFunc
	active  activeView
	feed    feed.Model
	compose compose.Model
	keys    common.KeyMap
	status  string // Transient status message (e.g. "Post saved!")
	width   int
	height  int
}

// NewApp creates the root model. Operations it starts are bound to ctx and
// are cancelled when the app quits.
func NewApp(ctx context.Context, deps Deps) App {
	if deps.Logger == nil {
		deps.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	ctx, cancel := context.WithCancel(ctx)
	return App{
		deps:   deps,
		ctx:    ctx,
		cancel: cancel,
		active: feedView,
		feed:   feed.New(deps.Clock),
		keys:   common.DefaultKeyMap(),
	}
}

// Init mounts the list view and fetches users if nobody did before.
func (a App) Init() tea.Cmd {
	root := a.deps.Store.State()
	cmds := []tea.Cmd{a.feed.Init(root)}
	if state.SelectUsersStatus(root) == state.StatusIdle {
		cmds = append(cmds, start(a.ctx, a.deps.Store, state.FetchUsers(a.deps.Users)))
	}
	return tea.Batch(cmds...)
}

// Update handles messages and routes to the active sub-model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, a.keys.ForceQuit) ||
			(a.active == feedView && key.Matches(msg, a.keys.Quit)) {
			return a.quit()
		}

	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.feed, _ = a.feed.Update(msg, a.deps.Store.State())
		if a.active == composeView {
			a.compose, _ = a.compose.Update(msg, nil)
		}
		return a, nil

	case feed.LoadPostsMsg:
		return a, a.loadPosts(msg.Refresh)

	case feed.ComposeMsg:
		a.active = composeView
		a.status = ""
		a.compose = compose.New(a.ctx)
		if a.width > 0 {
			a.compose, _ = a.compose.Update(tea.WindowSizeMsg{Width: a.width, Height: a.height}, nil)
		}
		return a, a.compose.Init()

	case compose.CloseMsg:
		a.active = feedView
		return a, nil

	case compose.SubmitMsg:
		a.status = "Saving..."
		pending, settle := state.AddNewPost(a.deps.Posts, a.deps.Clock, msg.Draft).Start(msg.Ctx)
		a.deps.Store.Dispatch(pending)
		ctx := msg.Ctx
		return a, func() tea.Msg { return createSettledMsg{event: settle(), ctx: ctx} }

	case createSettledMsg:
		return a.handleCreateSettled(msg)

	case compose.SaveLocalMsg:
		a.deps.Store.Dispatch(state.PreparePostAdded(a.deps.IDs, a.deps.Clock, msg.Title, msg.Content, msg.UserID))
		a.status = "Saved locally."
		return a, nil

	case compose.EditContentMsg:
		return a, a.openEditor(msg.Content)

	case compose.EditedMsg:
		if msg.Err != nil {
			a.status = "Editor: " + msg.Err.Error()
			a.deps.Logger.Warn("external editor failed", slog.String("error", msg.Err.Error()))
		}
		if a.active == composeView {
			a.compose, _ = a.compose.Update(msg, nil)
		}
		return a, nil

	case state.Event:
		return a.handleEvent(msg)
	}

	// Delegate to the active sub-model.
	root := a.deps.Store.State()
	var cmd tea.Cmd
	switch a.active {
	case feedView:
		a.feed, cmd = a.feed.Update(msg, root)
	case composeView:
		a.compose, cmd = a.compose.Update(msg, state.SelectAllUsers(root))
	}
	return a, cmd
}

// handleEvent applies a lifecycle or local event and reacts to its outcome.
func (a App) handleEvent(ev state.Event) (tea.Model, tea.Cmd) {
	a.deps.Store.Dispatch(ev)

	if ev, ok := ev.(state.UsersLoadFailed); ok {
		a.deps.Logger.Error("fetch users failed", slog.String("error", ev.Message))
	}
	return a, nil
}

// handleCreateSettled applies the outcome of a remote create. Only the form
// that submitted it is released. A create from an earlier form updates the
// status line only while no newer submission is in flight.
func (a App) handleCreateSettled(msg createSettledMsg) (tea.Model, tea.Cmd) {
	a.deps.Store.Dispatch(msg.event)

	var status string
	var err error
	switch ev := msg.event.(type) {
	case state.PostCreated:
		status = "Post saved!"
	case state.PostCreateFailed:
		err = ev.Err
		if errors.Is(ev.Err, context.Canceled) {
			status = "Cancelled."
		} else {
			status = "Error: " + ev.Message
		}
		a.deps.Logger.Error("create post failed", slog.String("error", ev.Message))
	}

	live := a.active == composeView
	switch {
	case live && a.compose.Owns(msg.ctx):
		a.compose, _ = a.compose.Update(compose.SettledMsg{Err: err}, nil)
		a.status = status
	case live && a.compose.Submitting():
		// A newer submission owns the status line.
	default:
		a.status = status
	}
	return a, nil
}

// loadPosts starts load-all. The initial load only runs while the slice is
// idle, so mounting twice never loads twice.
func (a App) loadPosts(refresh bool) tea.Cmd {
	status := state.SelectPostsStatus(a.deps.Store.State())
	if refresh {
		if status == state.StatusLoading {
			return nil
		}
		return start(a.ctx, a.deps.Store, state.RefreshPosts(a.deps.Posts, a.deps.Clock))
	}
	if status != state.StatusIdle {
		return nil
	}
	return start(a.ctx, a.deps.Store, state.FetchPosts(a.deps.Posts, a.deps.Clock))
}

// openEditor suspends the program while $EDITOR edits content, then delivers
// the result as compose.EditedMsg.
func (a App) openEditor(content string) tea.Cmd {
	ed := a.deps.Editor
	if ed == nil {
		return nil
	}
	cmd, path, err := ed.Cmd(content)
	if err != nil {
		return func() tea.Msg { return compose.EditedMsg{Err: err} }
	}
	return tea.ExecProcess(cmd, func(runErr error) tea.Msg {
		text, readErr := ed.ReadContent(path)
		if runErr != nil {
			return compose.EditedMsg{Err: runErr}
		}
		return compose.EditedMsg{Content: text, Err: readErr}
	})
}

// start dispatches the pending event now and returns a Cmd delivering the
// terminal event back through Update.
func start[T any](ctx context.Context, s *state.Store, t state.Thunk[T]) tea.Cmd {
	pending, settle := t.Start(ctx)
	s.Dispatch(pending)
	return func() tea.Msg { return settle() }
}

func (a App) quit() (tea.Model, tea.Cmd) {
	a.compose.Close()
	a.cancel()
	return a, tea.Quit
}

// View renders the active sub-model.
func (a App) View() string {
	root := a.deps.Store.State()

	var s string
	switch a.active {
	case feedView:
		s = a.feed.View(root)
	case composeView:
		s = a.compose.View(state.SelectAllUsers(root), root.Users.Err)
	}

	// Append transient status if present.
	if a.status != "" {
		s += "\n" + common.StatusBarStyle.Render(a.status)
	}

	return s
}
