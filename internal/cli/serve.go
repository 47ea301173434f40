package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/stackaudit/internal/server"
	"github.com/matzehuels/stackaudit/pkg/taxonomy"
)

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr      string
		token     string
		namespace string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Serve exposes audits over HTTP: POST /v1/scans runs an audit for a
path on this host and persists the result in the cache backend; GET
/v1/scans/{id} retrieves it later. Use --redis-url or --mongo-uri to
share results between instances.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, backend, err := c.newRunner(cmd.Context(), "", token, false)
			if err != nil {
				return err
			}
			defer backend.Close()

			taxCache, err := taxonomy.NewCache("", c.Logger)
			if err != nil {
				return err
			}

			srv := server.New(runner, taxCache, runner.Fetcher, backend, c.Logger)
			srv.Namespace(namespace)
			return srv.ListenAndServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", defaultAddr(), "listen address")
	cmd.Flags().StringVar(&token, "token", "", "GitHub token for taxonomy fetches (default: GITHUB_TOKEN)")
	cmd.Flags().StringVar(&namespace, "namespace", os.Getenv("STACKAUDIT_NAMESPACE"), "cache key prefix, isolates instances sharing a backend")

	return cmd
}

func defaultAddr() string {
	if addr := os.Getenv("STACKAUDIT_ADDR"); addr != "" {
		return addr
	}
	return ":8080"
}
