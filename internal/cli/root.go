// Package cli wires the linesh commands: the interactive shell when invoked
// bare, scriptable subcommands beside it.
package cli

import (
	"fmt"
	"os"
	"strings"

	"linesh/internal/editor"
	"linesh/internal/format"
	"linesh/internal/shell"
	"linesh/internal/store"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// App carries the persistent flag state shared by all commands.
type App struct {
	Dir    string
	Format string
	Pretty bool
	Prompt string
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "linesh",
		Short:        "Interactive shell with token-aware tab completion",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive shell
  linesh

  # Tokenize a raw command line (scriptable)
  linesh parse 'cat "my file.txt"'

  # Inspect the command worklog
  linesh worklog list --limit 10
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive shell.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runShell(app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&app.Dir, "dir", envOr("LINESH_DIR", ""), "Worklog directory (default: ~/.linesh)")
	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr("LINESH_FORMAT", "json"), "Output format (json|edn)")
	cmd.PersistentFlags().BoolVar(&app.Pretty, "pretty", false, "Pretty-print structured output")
	cmd.PersistentFlags().StringVar(&app.Prompt, "prompt", envOr("LINESH_PROMPT", ""), "Prompt label (default: current directory)")

	cmd.AddCommand(newParseCmd(app))
	cmd.AddCommand(newWorklogCmd(app))

	return cmd
}

func runShell(app *App) error {
	editor.ApplyColorProfilePreference()

	// The interactive surface owns the terminal, so debug output goes to a
	// file instead of stdout.
	if strings.TrimSpace(os.Getenv("LINESH_DEBUG")) != "" {
		f, err := tea.LogToFile("linesh-debug.log", "linesh")
		if err == nil {
			defer f.Close()
		}
	}

	var worklog *store.Store
	if store.Enabled() {
		worklog = &store.Store{Dir: app.Dir}
	}

	return shell.New(shell.Options{
		Prompt:  app.Prompt,
		Worklog: worklog,
	}).Run()
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.Format, app.Pretty)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
