package compose

import (
	"fmt"
	"strings"

	"github.com/CrestNiraj12/postdeck/domain"
	"github.com/CrestNiraj12/postdeck/tui/common"
)

// View renders the form.
func (m Model) View(users []domain.User, usersErr string) string {
	var b strings.Builder
	b.WriteString(common.AppTitleStyle.Render("📬 postdeck"))
	b.WriteString("  Add a New Post\n\n")

	b.WriteString(m.label(titleField, "Post Title:") + "\n")
	b.WriteString(m.title.View() + "\n\n")

	b.WriteString(m.label(authorField, "Author:") + "\n")
	b.WriteString(m.authorView(users, usersErr) + "\n\n")

	b.WriteString(m.label(contentField, "Content:") + "\n")
	b.WriteString(m.content.View() + "\n")

	save := "ctrl+s: save post"
	switch {
	case m.submitting:
		save = common.DisabledStyle.Render("saving...")
	case !m.CanSubmit(users):
		save = common.DisabledStyle.Render(save)
	}
	b.WriteString(common.StatusBarStyle.Render(fmt.Sprintf(
		"  %s • ctrl+l: save locally • ctrl+e: editor • tab: next field • esc: back • %d chars",
		save, trimmedLen(m.Content()),
	)))
	return b.String()
}

func (m Model) label(f field, text string) string {
	if m.focus == f {
		return common.FocusedLabelStyle.Render("› " + text)
	}
	return common.LabelStyle.Render("  " + text)
}

func (m Model) authorView(users []domain.User, usersErr string) string {
	if len(users) == 0 {
		if usersErr != "" {
			return common.ErrorStyle.Render("  users unavailable: " + usersErr)
		}
		return common.DisabledStyle.Render("  no authors loaded")
	}
	name := "(none)"
	if m.authorIdx >= 0 && m.authorIdx < len(users) {
		name = users[m.authorIdx].Name
	}
	if m.focus == authorField {
		return "  ← " + common.AuthorStyle.Render(name) + " →"
	}
	return "    " + name
}
