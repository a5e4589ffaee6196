package common

import "github.com/charmbracelet/lipgloss"

var (
	// AppTitleStyle styles the application title. Rendered at call site with content.
	AppTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#8AADF4")).
			Padding(1, 2, 0, 1)

	// TaglineStyle styles the app's tagline.
	TaglineStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#555555")).
			Italic(true).
			MarginLeft(1)

	// PostTitleStyle styles a post title in the list.
	PostTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#CAD3F5"))

	// AuthorStyle styles the post author name.
	AuthorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7DC4E4"))

	// TimestampStyle styles timestamps.
	TimestampStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6E738D"))

	// ContentStyle styles post body text.
	ContentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#B8C0E0"))

	// MetadataStyle styles the reaction counters line.
	MetadataStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6E738D"))

	// SelectedStyle highlights the currently selected post.
	SelectedStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#8AADF4")).
			Padding(0, 1)

	// UnselectedStyle gives unselected posts a subtle greyed-out border.
	UnselectedStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#45475A")).
			Padding(0, 1)

	// LabelStyle styles form field labels.
	LabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6E738D")).
			Bold(true)

	// FocusedLabelStyle styles the label of the focused form field.
	FocusedLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#8AADF4")).
				Bold(true)

	// DisabledStyle styles an action that cannot currently run.
	DisabledStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#45475A"))

	// StatusBarStyle styles the bottom status bar.
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6E738D")).
			Padding(1, 0, 0, 0)

	// ErrorStyle styles error messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ED8796")).
			Bold(true)

	// SuccessStyle styles success messages.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A6DA95")).
			Bold(true)
)
