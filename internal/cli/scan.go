package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/stackaudit/pkg/audit"
	"github.com/matzehuels/stackaudit/pkg/errors"
	"github.com/matzehuels/stackaudit/pkg/report"
)

// scanCommand creates the scan command.
func (c *CLI) scanCommand() *cobra.Command {
	var (
		format          string
		output          string
		token           string
		restrictiveOnly bool
		strict          bool
		refresh         bool
		browse          bool
	)

	cmd := &cobra.Command{
		Use:   "scan [path]",
		Short: "Audit a project's dependency licenses",
		Long: `Scan discovers manifest files under the given path (default "."),
resolves each dependency's license from its registry, and classifies it
against the license taxonomy and the project's own license.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) == 1 {
				path = args[0]
			}

			outFormat, err := report.ParseFormat(format)
			if err != nil {
				return err
			}

			runner, backend, err := c.newRunner(cmd.Context(), path, token, refresh)
			if err != nil {
				return err
			}
			defer backend.Close()

			spinner := newSpinnerWithContext(cmd.Context(), fmt.Sprintf("Scanning %s", path))
			spinner.Start()
			prog := newProgress(c.Logger)
			result, err := runner.Run(cmd.Context(), path)
			spinner.Stop()
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Classified %d dependencies", result.Stats.Total))

			if browse {
				taxonomy, _ := runner.Store.Load()
				if err := browseResult(result, taxonomy); err != nil {
					return err
				}
			} else if err := c.writeReport(result, output, report.Options{
				Format:          outFormat,
				RestrictiveOnly: restrictiveOnly,
			}); err != nil {
				return err
			}

			if strict && !result.Clean() {
				return errors.New(errors.ErrCodeInternal,
					"found %d restrictive and %d incompatible dependencies",
					result.Stats.Restrictive, result.Stats.Incompatible)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format (text, json, yaml, github)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the report to a file instead of stdout")
	cmd.Flags().StringVar(&token, "token", "", "GitHub token for taxonomy fetches (default: GITHUB_TOKEN)")
	cmd.Flags().BoolVarP(&restrictiveOnly, "restrictive-only", "r", false, "report only restrictive or incompatible dependencies")
	cmd.Flags().BoolVar(&strict, "strict", false, "exit non-zero when restrictive or incompatible dependencies are found")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "bypass caches and refetch registry data")
	cmd.Flags().BoolVar(&browse, "browse", false, "browse results interactively")

	return cmd
}

// writeReport renders the result to stdout or, when output is set, to a
// file. File output always disables terminal styling.
func (c *CLI) writeReport(result *audit.Result, output string, opts report.Options) error {
	if output == "" {
		return report.Write(os.Stdout, result, opts)
	}

	opts.NoColor = true
	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}
	if err := report.Write(f, result, opts); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	printFile(output)
	return nil
}
