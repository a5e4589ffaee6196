package feed

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/postdeck/domain"
	"github.com/CrestNiraj12/postdeck/state"
)

func (m Model) handleKeyMsg(msg tea.KeyMsg, root state.Root) (Model, tea.Cmd) {
	count := len(state.SelectAllPosts(root))
	if m.cursor >= count {
		m.cursor = max(count-1, 0)
	}

	switch {
	case key.Matches(msg, m.keys.Refresh):
		if state.SelectPostsStatus(root) == state.StatusLoading {
			return m, nil
		}
		m.cursor = 0
		return m, func() tea.Msg { return LoadPostsMsg{Refresh: true} }

	case key.Matches(msg, m.keys.NewPost):
		return m, func() tea.Msg { return ComposeMsg{} }

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < count-1 {
			m.cursor++
		}

	default:
		for i, b := range m.keys.React {
			if !key.Matches(msg, b) {
				continue
			}
			p, ok := m.SelectedPost(root)
			if !ok {
				return m, nil
			}
			ev := state.ReactionAdded{PostID: p.ID, Reaction: domain.AllReactions[i]}
			return m, func() tea.Msg { return ev }
		}
	}
	return m, nil
}
