package editor

import (
	"strings"

	xansi "github.com/charmbracelet/x/ansi"
)

// View repaints the whole line on every frame: prompt, buffer with the
// cursor rendered as a reverse-video cell, then spaces out to the terminal
// width so a previously longer frame never leaves stale characters behind.
func (m Model) View() string {
	if m.done {
		// Final frame: leave the finished line in the transcript, no cursor.
		return m.theme.Prompt.Render(m.prompt) + string(m.buffer)
	}

	var b strings.Builder
	b.WriteString(m.theme.Prompt.Render(m.prompt))
	b.WriteString(string(m.buffer[:m.cursor]))

	at := " "
	if m.cursor < len(m.buffer) {
		at = string(m.buffer[m.cursor])
	}
	b.WriteString(m.theme.Cursor.Render(at))

	if m.cursor < len(m.buffer) {
		b.WriteString(string(m.buffer[m.cursor+1:]))
	}

	line := b.String()
	if m.width > 0 {
		if pad := m.width - xansi.StringWidth(line); pad > 0 {
			line += strings.Repeat(" ", pad)
		}
	}

	if len(m.candidates) > 0 {
		row := strings.Join(m.candidates, "  ")
		if m.width > 0 {
			row = xansi.Truncate(row, m.width, "…")
		}
		line += "\n" + m.theme.Candidates.Render(row)
	}

	return line
}
