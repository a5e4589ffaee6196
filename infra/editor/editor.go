package editor

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// EnvEditor prepares an external editor command using $EDITOR (fallback: "vi").
// It does NOT run the editor itself. Callers use tea.ExecProcess with the
// returned *exec.Cmd so Bubble Tea properly suspends raw terminal mode.
type EnvEditor struct{}

// NewEnvEditor creates an EnvEditor.
func NewEnvEditor() *EnvEditor {
	return &EnvEditor{}
}

const instructionComment = `<!--
postdeck: write the post content below.

- SAVE and EXIT to put the text into the form.
- Emptying the file keeps the previous content.
-->

`

// Cmd writes content under the instruction comment to a temp file and
// returns the editor command for it along with the file path.
func (e *EnvEditor) Cmd(content string) (*exec.Cmd, string, error) {
	editorCmd := strings.TrimSpace(os.Getenv("EDITOR"))
	if editorCmd == "" {
		editorCmd = "vi"
	}

	tmpFile, err := os.CreateTemp("", "postdeck-*.md")
	if err != nil {
		return nil, "", fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer tmpFile.Close()

	if _, err := tmpFile.WriteString(instructionComment + content); err != nil {
		os.Remove(tmpPath)
		return nil, "", fmt.Errorf("writing to temp file: %w", err)
	}

	// $EDITOR may carry flags ("code --wait").
	parts := strings.Fields(editorCmd)
	args := append(parts[1:], tmpPath)
	return exec.Command(parts[0], args...), tmpPath, nil
}

// ReadContent reads the temp file, strips the instruction comment, trims
// whitespace and removes the file.
func (e *EnvEditor) ReadContent(path string) (string, error) {
	defer os.Remove(path)

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading temp file: %w", err)
	}

	content := string(data)
	if idx := strings.Index(content, "-->"); idx != -1 {
		content = content[idx+3:]
	}
	return strings.TrimSpace(content), nil
}
