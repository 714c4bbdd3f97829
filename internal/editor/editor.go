// Package editor implements the single-line interactive editor behind the
// shell prompt: an editable rune buffer with a cursor, full-line redraw per
// keypress, and tab completion on the in-progress token.
package editor

import (
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Completer resolves tab completion for the current buffer and cursor.
// Implementations must be total: no candidates means the buffer comes back
// unchanged, never an error.
type Completer interface {
	Complete(buffer string, cursor int) (newBuffer string, newCursor int, candidates []string)
}

// Model is the bubbletea model for one line read. The zero value is not
// usable; construct with New.
type Model struct {
	prompt string
	buffer []rune
	cursor int
	width  int

	keys      KeyMap
	theme     Theme
	completer Completer

	// Candidate listing from the last ambiguous Tab press; cleared by the
	// next key.
	candidates []string

	done bool
	err  error
}

func New(prompt string, completer Completer) Model {
	return Model{
		prompt:    prompt,
		keys:      DefaultKeyMap(),
		theme:     DefaultTheme(),
		completer: completer,
	}
}

func (m Model) Init() tea.Cmd { return nil }

// Value returns the buffer as typed so far.
func (m Model) Value() string { return string(m.buffer) }

// Cursor returns the insertion index into the buffer, in runes.
func (m Model) Cursor() int { return m.cursor }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		// Any key invalidates a previously shown candidate listing.
		m.candidates = nil

		switch {
		case key.Matches(msg, m.keys.Submit):
			m.done = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Cancel):
			m.done = true
			m.err = ErrInterrupted
			return m, tea.Quit

		case key.Matches(msg, m.keys.EOF):
			if len(m.buffer) == 0 {
				m.done = true
				m.err = ErrEOF
				return m, tea.Quit
			}
			// Non-empty buffer: readline-style delete at cursor.
			m.deleteAtCursor()
			return m, nil

		case key.Matches(msg, m.keys.Backspace):
			if m.cursor > 0 {
				m.buffer = append(m.buffer[:m.cursor-1], m.buffer[m.cursor:]...)
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, m.keys.Delete):
			m.deleteAtCursor()
			return m, nil

		case key.Matches(msg, m.keys.Left):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, m.keys.Right):
			if m.cursor < len(m.buffer) {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, m.keys.Home):
			m.cursor = 0
			return m, nil

		case key.Matches(msg, m.keys.End):
			m.cursor = len(m.buffer)
			return m, nil

		case key.Matches(msg, m.keys.Complete):
			if len(m.buffer) == 0 || m.completer == nil {
				return m, nil
			}
			buf, cur, cands := m.completer.Complete(string(m.buffer), m.cursor)
			m.buffer = []rune(buf)
			m.cursor = clamp(cur, 0, len(m.buffer))
			m.candidates = cands
			return m, nil
		}

		switch msg.Type {
		case tea.KeySpace:
			m.insertRune(' ')
		case tea.KeyRunes:
			if msg.Alt {
				return m, nil
			}
			for _, r := range msg.Runes {
				if unicode.IsControl(r) {
					continue
				}
				m.insertRune(r)
			}
		}
		// Remaining control keys are deliberate no-ops.
		return m, nil
	}

	return m, nil
}

func (m *Model) insertRune(r rune) {
	m.buffer = append(m.buffer[:m.cursor], append([]rune{r}, m.buffer[m.cursor:]...)...)
	m.cursor++
}

func (m *Model) deleteAtCursor() {
	if m.cursor < len(m.buffer) {
		m.buffer = append(m.buffer[:m.cursor], m.buffer[m.cursor+1:]...)
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
