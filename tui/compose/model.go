package compose

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/postdeck/domain"
	"github.com/CrestNiraj12/postdeck/tui/common"
)

// --- Fields ---

type field int

const (
	titleField field = iota
	authorField
	contentField

	fieldCount
)

// --- Messages ---

// SubmitMsg asks the root to create the draft remotely. Ctx is the form's
// lifetime scope; it is cancelled when the form closes.
type SubmitMsg struct {
	Draft domain.Draft
	Ctx   context.Context
}

// SaveLocalMsg asks the root to add a post to the store without touching the
// remote endpoint.
type SaveLocalMsg struct {
	Title   string
	Content string
	UserID  int
}

// SettledMsg tells the form that its pending submission finished.
type SettledMsg struct {
	Err error
}

// CloseMsg is sent when the user leaves the form.
type CloseMsg struct{}

// EditContentMsg asks the root to open the external editor on Content.
type EditContentMsg struct {
	Content string
}

// EditedMsg carries the text returned by the external editor.
type EditedMsg struct {
	Content string
	Err     error
}

// --- Model ---

// Model holds the state for the new post form.
type Model struct {
	keys       common.KeyMap
	title      textinput.Model
	content    textarea.Model
	authorIdx  int // Index into the user list; -1 means no author selected
	focus      field
	submitting bool
	ctx        context.Context
	cancel     context.CancelFunc
}

// New creates an empty form whose lifetime scope is derived from parent.
func New(parent context.Context) Model {
	ti := textinput.New()
	ti.Placeholder = "Post title"
	ti.CharLimit = 120
	ti.Focus()

	ta := textarea.New()
	ta.Placeholder = "What's on your mind?"
	ta.CharLimit = 2000
	ta.SetWidth(72)
	ta.SetHeight(6)

	ctx, cancel := context.WithCancel(parent)
	return Model{
		keys:      common.DefaultKeyMap(),
		title:     ti,
		content:   ta,
		authorIdx: -1,
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Title returns the current title input.
func (m Model) Title() string { return m.title.Value() }

// Content returns the current content input.
func (m Model) Content() string { return m.content.Value() }

// ContentWidth returns the width of the content textarea.
func (m Model) ContentWidth() int { return m.content.Width() }

// Submitting reports whether a remote create is in flight.
func (m Model) Submitting() bool { return m.submitting }

// AuthorID returns the selected author's id as the form value, or "".
func (m Model) AuthorID(users []domain.User) string {
	if m.authorIdx < 0 || m.authorIdx >= len(users) {
		return ""
	}
	return strconv.Itoa(users[m.authorIdx].ID)
}

// CanSubmit reports whether title, content and author are all set and no
// submission is in flight.
func (m Model) CanSubmit(users []domain.User) bool {
	return canSubmit(m.Title(), m.Content(), m.AuthorID(users), m.submitting)
}

func canSubmit(title, content, userID string, submitting bool) bool {
	return title != "" && content != "" && userID != "" && !submitting
}

// Update handles messages for the form. users is the current author list.
func (m Model) Update(msg tea.Msg, users []domain.User) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case SettledMsg:
		m.submitting = false
		return m, nil

	case tea.WindowSizeMsg:
		m.content.SetWidth(min(max(msg.Width-4, 20), 72))
		return m, nil

	case EditedMsg:
		if msg.Err == nil && msg.Content != "" {
			m.content.SetValue(msg.Content)
		}
		m.setFocus(contentField)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Back):
			m.Close()
			return m, func() tea.Msg { return CloseMsg{} }

		case key.Matches(msg, m.keys.Submit):
			if !m.CanSubmit(users) {
				return m, nil
			}
			draft := domain.Draft{Title: m.Title(), Body: m.Content(), UserID: m.AuthorID(users)}
			ctx := m.ctx
			m.submitting = true
			m.clear()
			return m, func() tea.Msg { return SubmitMsg{Draft: draft, Ctx: ctx} }

		case key.Matches(msg, m.keys.SaveLocal):
			if !m.CanSubmit(users) {
				return m, nil
			}
			save := SaveLocalMsg{Title: m.Title(), Content: m.Content(), UserID: users[m.authorIdx].ID}
			m.clear()
			return m, func() tea.Msg { return save }

		case key.Matches(msg, m.keys.Editor):
			content := m.Content()
			return m, func() tea.Msg { return EditContentMsg{Content: content} }

		case key.Matches(msg, m.keys.NextField):
			m.setFocus((m.focus + 1) % fieldCount)
			return m, nil

		case key.Matches(msg, m.keys.PrevField):
			m.setFocus((m.focus + fieldCount - 1) % fieldCount)
			return m, nil
		}

		if m.focus == authorField {
			switch {
			case key.Matches(msg, m.keys.NextUser):
				m.authorIdx = cycle(m.authorIdx, 1, len(users))
			case key.Matches(msg, m.keys.PrevUser):
				m.authorIdx = cycle(m.authorIdx, -1, len(users))
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case titleField:
		m.title, cmd = m.title.Update(msg)
	case contentField:
		m.content, cmd = m.content.Update(msg)
	}
	return m, cmd
}

// Owns reports whether ctx is the lifetime scope this form hands out with
// its submissions.
func (m Model) Owns(ctx context.Context) bool {
	return m.ctx != nil && m.ctx == ctx
}

// Close cancels the form's lifetime scope. Safe on a zero Model.
func (m Model) Close() {
	if m.cancel != nil {
		m.cancel()
	}
}

func (m *Model) clear() {
	m.title.SetValue("")
	m.content.SetValue("")
	m.authorIdx = -1
}

func (m *Model) setFocus(f field) {
	m.focus = f
	m.title.Blur()
	m.content.Blur()
	switch f {
	case titleField:
		m.title.Focus()
	case contentField:
		m.content.Focus()
	}
}

// cycle moves through [-1, n) where -1 is the empty selection.
func cycle(idx, step, n int) int {
	if n == 0 {
		return -1
	}
	span := n + 1
	return (idx+1+step+span)%span - 1
}

func trimmedLen(s string) int {
	return len([]rune(strings.TrimSpace(s)))
}
