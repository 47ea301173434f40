package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/stackaudit/pkg/errors"
	"github.com/matzehuels/stackaudit/pkg/graph"
	"github.com/matzehuels/stackaudit/pkg/license"
)

// graphCommand creates the graph command.
func (c *CLI) graphCommand() *cobra.Command {
	var (
		output string
		format string
		token  string
	)

	cmd := &cobra.Command{
		Use:   "graph [path]",
		Short: "Render license graphs",
		Long: `Without arguments, graph renders the built-in license compatibility
matrix. With a project path, it runs an audit and renders the project's
dependencies colored by verdict.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var dot string
			if len(args) == 1 {
				runner, backend, err := c.newRunner(cmd.Context(), args[0], token, false)
				if err != nil {
					return err
				}
				defer backend.Close()

				spinner := newSpinnerWithContext(cmd.Context(), fmt.Sprintf("Scanning %s", args[0]))
				spinner.Start()
				result, err := runner.Run(cmd.Context(), args[0])
				spinner.Stop()
				if err != nil {
					return err
				}
				dot = graph.ResultDOT(result)
			} else {
				dot = graph.CompatDOT(license.Relation())
			}

			var data []byte
			switch strings.ToLower(format) {
			case "dot":
				data = []byte(dot)
			case "svg":
				svg, err := graph.RenderSVG(cmd.Context(), dot)
				if err != nil {
					return err
				}
				data = svg
			case "png":
				png, err := graph.RenderPNG(cmd.Context(), dot)
				if err != nil {
					return err
				}
				data = png
			default:
				return errors.New(errors.ErrCodeUnsupported, "unknown graph format %q (supported: dot, svg, png)", format)
			}

			if output == "" {
				output = "licenses." + strings.ToLower(format)
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("write graph: %w", err)
			}

			printSuccess("Graph rendered")
			printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: licenses.<format>)")
	cmd.Flags().StringVarP(&format, "format", "f", "svg", "output format (dot, svg, png)")
	cmd.Flags().StringVar(&token, "token", "", "GitHub token for taxonomy fetches (default: GITHUB_TOKEN)")

	return cmd
}
