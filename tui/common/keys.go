package common

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/CrestNiraj12/postdeck/domain"
)

// KeyMap defines shared key bindings across all views.
type KeyMap struct {
	Quit      key.Binding
	ForceQuit key.Binding
	Refresh   key.Binding
	NewPost   key.Binding // n: open the new post form
	Up        key.Binding
	Down      key.Binding
	React     [len(domain.AllReactions)]key.Binding // 1..5, one per reaction

	// Form bindings.
	Submit    key.Binding // ctrl+s: create remotely
	SaveLocal key.Binding // ctrl+l: add locally only
	Editor    key.Binding // ctrl+e: write content in $EDITOR
	NextField key.Binding
	PrevField key.Binding
	PrevUser  key.Binding
	NextUser  key.Binding
	Back      key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	km := KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		NewPost: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new post"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Submit: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save post"),
		),
		SaveLocal: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "save locally"),
		),
		Editor: key.NewBinding(
			key.WithKeys("ctrl+e"),
			key.WithHelp("ctrl+e", "open $EDITOR"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev field"),
		),
		PrevUser: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "prev author"),
		),
		NextUser: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "next author"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
	}
	for i, r := range domain.AllReactions {
		k := string(rune('1' + i))
		km.React[i] = key.NewBinding(
			key.WithKeys(k),
			key.WithHelp(k, r.Emoji()),
		)
	}
	return km
}
