package cli

import (
	"linesh/internal/store"

	"github.com/spf13/cobra"
)

func newWorklogCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "worklog",
		Short: "Inspect the local command worklog",
	}
	cmd.AddCommand(newWorklogListCmd(app))
	cmd.AddCommand(newWorklogClearCmd(app))
	return cmd
}

func newWorklogListCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List executed commands, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := store.Store{Dir: app.Dir}
			entries, err := s.List(cmd.Context(), limit)
			if err != nil {
				return writeErr(cmd, err)
			}
			if entries == nil {
				entries = []store.Entry{}
			}
			return writeOut(cmd, app, map[string]any{
				"data": entries,
				"meta": map[string]any{"count": len(entries)},
			})
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of entries (0 = all)")
	return cmd
}

func newWorklogClearCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete all worklog entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := store.Store{Dir: app.Dir}
			if err := s.Clear(cmd.Context()); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{
				"data": map[string]any{"cleared": true},
			})
		},
	}
}
