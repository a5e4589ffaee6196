package common

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"
)

// TimeAgo renders t relative to now ("just now", "5 minutes ago", ...).
func TimeAgo(t, now time.Time) string {
	if t.IsZero() {
		return ""
	}
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return plural(int(d/time.Minute), "minute") + " ago"
	case d < 24*time.Hour:
		return plural(int(d/time.Hour), "hour") + " ago"
	case d < 30*24*time.Hour:
		return plural(int(d/(24*time.Hour)), "day") + " ago"
	}
	return t.Format("Jan 02 2006")
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

// Excerpt flattens text to a single line no wider than width cells.
func Excerpt(text string, width int) string {
	flat := strings.Join(strings.Fields(text), " ")
	if width <= 0 {
		return flat
	}
	return ansi.Truncate(flat, width, "…")
}
