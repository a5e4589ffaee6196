package app

import "os/exec"

// ContentEditor hands post content to an external program. It only prepares
// the command; the TUI runs it with tea.ExecProcess so the terminal is
// released while the editor owns it.
type ContentEditor interface {
	Cmd(content string) (*exec.Cmd, string, error)
	ReadContent(path string) (string, error)
}
