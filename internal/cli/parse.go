package cli

import (
	"strings"

	"linesh/internal/token"

	"github.com/spf13/cobra"
)

func newParseCmd(app *App) *cobra.Command {
	var keepEmpty bool

	cmd := &cobra.Command{
		Use:   "parse [--] <raw command line>",
		Short: "Tokenize a raw command line the way the shell would",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			line := strings.Join(args, " ")

			tokens := token.Args(line)
			if keepEmpty {
				tokens = token.Parse(line)
			}
			if tokens == nil {
				tokens = []string{}
			}

			return writeOut(cmd, app, map[string]any{
				"data": map[string]any{
					"line":   line,
					"tokens": tokens,
				},
				"meta": map[string]any{
					"count": len(tokens),
				},
			})
		},
	}

	cmd.Flags().BoolVar(&keepEmpty, "keep-empty", false, "Keep the empty boundary tokens the parser emits")
	return cmd
}
