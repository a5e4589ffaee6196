package feed

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/CrestNiraj12/postdeck/domain"
	"github.com/CrestNiraj12/postdeck/state"
	"github.com/CrestNiraj12/postdeck/tui/common"
)

const (
	itemHeight     = 6 // 4 content lines + 2 border
	reservedHeight = 8 // header, help and status bar
	defaultWidth   = 80
)

// View renders the post list.
func (m Model) View(root state.Root) string {
	var b strings.Builder

	title := common.AppTitleStyle.Render("📬 postdeck")
	tagline := common.TaglineStyle.Render("<posts from the placeholder>")
	b.WriteString(title + tagline + "\n\n")

	switch state.SelectPostsStatus(root) {
	case state.StatusLoading:
		b.WriteString(fmt.Sprintf("  %s Loading...\n", m.spinner.View()))
	case state.StatusFailed:
		b.WriteString(common.ErrorStyle.Render("  " + state.SelectPostsError(root)))
		b.WriteString("\n\n  Press r to retry.\n")
	case state.StatusSucceeded:
		b.WriteString(m.renderList(root))
		b.WriteString("\n")
	}

	b.WriteString(m.helpView())
	return b.String()
}

func (m Model) renderList(root state.Root) string {
	posts := displayOrder(state.SelectAllPosts(root))
	if len(posts) == 0 {
		return "  No posts yet. Press n to write one.\n"
	}

	cursor := min(m.cursor, len(posts)-1)
	start, end := visibleRange(cursor, len(posts), m.visibleCount())
	now := m.clock()
	width := m.contentWidth()

	var items []string
	for i := start; i < end; i++ {
		item := renderPost(root, posts[i], now, width)
		if i == cursor {
			item = common.SelectedStyle.Render(item)
		} else {
			item = common.UnselectedStyle.Render(item)
		}
		items = append(items, item)
	}

	list := lipgloss.JoinVertical(lipgloss.Left, items...)
	if len(posts) > end-start {
		list += "\n" + common.MetadataStyle.Render(fmt.Sprintf("  %d/%d", cursor+1, len(posts)))
	}
	return list
}

func renderPost(root state.Root, p domain.Post, now time.Time, width int) string {
	author := "Unknown author"
	if u, ok := state.SelectUserByID(root, p.UserID); ok {
		author = u.Name
	}

	header := common.PostTitleStyle.Render(common.Excerpt(p.Title, width))
	byline := common.AuthorStyle.Render("by "+author) + "  " + common.TimestampStyle.Render(common.TimeAgo(p.Date, now))
	body := common.ContentStyle.Render(common.Excerpt(p.Body, width))
	return strings.Join([]string{header, byline, body, reactionLine(p.Reactions)}, "\n")
}

func reactionLine(rs domain.Reactions) string {
	parts := make([]string, 0, len(domain.AllReactions))
	for _, r := range domain.AllReactions {
		parts = append(parts, fmt.Sprintf("%s %d", r.Emoji(), rs.Count(r)))
	}
	return common.MetadataStyle.Render(strings.Join(parts, "  "))
}

// visibleRange returns the [start, end) window of size at most count that
// keeps cursor on screen.
func visibleRange(cursor, total, count int) (int, int) {
	count = max(count, 1)
	if total <= count {
		return 0, total
	}
	start := max(cursor-count/2, 0)
	end := start + count
	if end > total {
		end = total
		start = end - count
	}
	return start, end
}

func (m Model) visibleCount() int {
	if m.height == 0 {
		return 5
	}
	return max((m.height-reservedHeight)/itemHeight, 1)
}

func (m Model) contentWidth() int {
	w := m.width
	if w == 0 {
		w = defaultWidth
	}
	// Border and padding take four cells.
	return max(w-6, 16)
}

func (m Model) helpView() string {
	items := []string{
		"j/k: move",
		"1-5: react",
		"n: new post",
		"r: refresh",
		"q: quit",
	}
	return common.StatusBarStyle.Render("  " + strings.Join(items, " • "))
}
