package shell

import (
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

const helpMarkdown = `
# linesh

Interactive shell. Type a command and press **Enter**. **Tab** completes the
last token against files, directories and builtins; a unique match is filled
in, an ambiguous one lists the candidates under the line.

## Keys

| Key | Action |
|---|---|
| Enter | run the line |
| Tab | complete the last token |
| ← / → / Home / End | move the cursor |
| Backspace / Delete | remove a character |
| Ctrl+C | cancel the line |
| Ctrl+D | exit (on an empty line) |

## Builtins

- ` + "`echo`" + ` — print arguments
- ` + "`cd`" + ` — change directory (supports ` + "`~`" + `)
- ` + "`pwd`" + ` — print working directory
- ` + "`type`" + ` — show how a name would be resolved
- ` + "`help`" + ` — this page
- ` + "`exit`" + ` — leave the shell
`

var (
	helpMu        sync.Mutex
	helpRenderers = map[int]*glamour.TermRenderer{}
)

// helpStyle picks a fixed glamour style up front. WithAutoStyle would probe
// the terminal background on every render, which can block on some
// terminals.
func helpStyle() string {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		return "notty"
	}
	if lipgloss.HasDarkBackground() {
		return "dark"
	}
	return "light"
}

// renderHelp renders the help page as styled markdown, falling back to the
// raw markdown if the renderer cannot be built.
//
// Renderers are cached by wrap width: building one with WithAutoStyle can
// trigger terminal background queries that block on some terminals, so we
// use a fixed style and reuse instances.
func renderHelp(width int) string {
	if width < 20 {
		width = 20
	}

	helpMu.Lock()
	defer helpMu.Unlock()

	r := helpRenderers[width]
	if r == nil {
		rr, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(helpStyle()),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return strings.TrimSpace(helpMarkdown) + "\n"
		}
		helpRenderers[width] = rr
		r = rr
	}

	out, err := r.Render(helpMarkdown)
	if err != nil {
		return strings.TrimSpace(helpMarkdown) + "\n"
	}
	return out
}
