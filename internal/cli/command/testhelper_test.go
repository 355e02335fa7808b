package command

import (
	"bytes"
	"strings"
	"testing"
)

// appResult captures one CLI invocation.
type appResult struct {
	stdout string
	stderr string
	err    error
}

// runApp runs the CLI with args and stdin, isolated from the user's
// home directory config.
func runApp(t *testing.T, stdin string, args ...string) appResult {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	app := App()
	var stdout, stderr bytes.Buffer
	app.Writer = &stdout
	app.ErrWriter = &stderr
	app.Reader = strings.NewReader(stdin)

	err := app.Run(append([]string{"sortbench"}, args...))
	return appResult{
		stdout: stdout.String(),
		stderr: stderr.String(),
		err:    err,
	}
}

// sortedSections returns the line following each "Sorted Data:" header.
func sortedSections(out string) []string {
	lines := strings.Split(out, "\n")
	var sections []string
	for i, line := range lines {
		if line == "Sorted Data:" && i+1 < len(lines) {
			sections = append(sections, lines[i+1])
		}
	}
	return sections
}

// originalLine returns the line following "Original Data:".
func originalLine(out string) string {
	lines := strings.Split(out, "\n")
	for i, line := range lines {
		if line == "Original Data:" && i+1 < len(lines) {
			return lines[i+1]
		}
	}
	return ""
}
