package editor

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Prompt styling.
//
// The prompt must stay readable on both light and dark terminal backgrounds,
// so colors are lipgloss.AdaptiveColor pairs rather than fixed ANSI codes.

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

// Theme holds the styles the editor renders with.
type Theme struct {
	Prompt     lipgloss.Style
	Cursor     lipgloss.Style
	Candidates lipgloss.Style
}

func DefaultTheme() Theme {
	return Theme{
		Prompt:     lipgloss.NewStyle().Bold(true).Foreground(ac("27", "62")), // blue
		Cursor:     lipgloss.NewStyle().Reverse(true),
		Candidates: lipgloss.NewStyle().Foreground(ac("240", "243")),
	}
}

// ApplyColorProfilePreference sets Lip Gloss's color profile for the
// interactive prompt.
//
// Note: termenv.EnvColorProfile respects CLICOLOR/CLICOLOR_FORCE, which can
// accidentally disable colors in an interactive surface. Here we only honor
// NO_COLOR and otherwise follow the terminal's capabilities, trusting
// TERM/COLORTERM when they report stronger support than color probing does.
func ApplyColorProfilePreference() {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}

	profile := termenv.ColorProfile()

	term := strings.ToLower(strings.TrimSpace(os.Getenv("TERM")))
	colorterm := strings.ToLower(strings.TrimSpace(os.Getenv("COLORTERM")))
	if strings.Contains(colorterm, "truecolor") || strings.Contains(colorterm, "24bit") {
		if profile != termenv.Ascii {
			profile = termenv.TrueColor
		}
	} else if strings.Contains(term, "256color") {
		if profile == termenv.Ascii || profile == termenv.ANSI {
			profile = termenv.ANSI256
		}
	}

	lipgloss.SetColorProfile(profile)
}
