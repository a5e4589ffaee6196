package feed

import (
	"slices"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/CrestNiraj12/postdeck/app"
	"github.com/CrestNiraj12/postdeck/domain"
	"github.com/CrestNiraj12/postdeck/state"
	"github.com/CrestNiraj12/postdeck/tui/common"
)

// --- Messages ---

// LoadPostsMsg asks the root to run the load-all operation. Refresh replaces
// the collection instead of appending to it.
type LoadPostsMsg struct {
	Refresh bool
}

// ComposeMsg asks the root to open the new post form.
type ComposeMsg struct{}

// --- Model ---

// Model holds the state for the post list view. Post data itself lives in
// the store and is passed in on every Update and View.
type Model struct {
	keys    common.KeyMap
	spinner spinner.Model
	clock   app.Clock
	cursor  int
	width   int
	height  int
}

// New creates a list model.
func New(clock app.Clock) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#8AADF4"))

	return Model{
		keys:    common.DefaultKeyMap(),
		spinner: s,
		clock:   clock,
	}
}

// Init starts the spinner and, if the posts slice has never been loaded,
// requests the initial load.
func (m Model) Init(root state.Root) tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick}
	if state.SelectPostsStatus(root) == state.StatusIdle {
		cmds = append(cmds, func() tea.Msg { return LoadPostsMsg{} })
	}
	return tea.Batch(cmds...)
}

// Update handles messages for the list view.
func (m Model) Update(msg tea.Msg, root state.Root) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKeyMsg(msg, root)
	}
	return m, nil
}

// Cursor returns the index of the selected post in display order.
func (m Model) Cursor() int {
	return m.cursor
}

// SelectedPost returns the highlighted post, if any.
func (m Model) SelectedPost(root state.Root) (domain.Post, bool) {
	posts := displayOrder(state.SelectAllPosts(root))
	if len(posts) == 0 {
		return domain.Post{}, false
	}
	return posts[min(m.cursor, len(posts)-1)], true
}

// displayOrder returns posts newest first. The store keeps insertion order;
// sorting happens only for display.
func displayOrder(posts []domain.Post) []domain.Post {
	out := slices.Clone(posts)
	slices.SortStableFunc(out, func(a, b domain.Post) int {
		return b.Date.Compare(a.Date)
	})
	return out
}
