package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/stackaudit/pkg/taxonomy"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect and manage the taxonomy and HTTP response caches",
	}

	cmd.AddCommand(c.cacheStatusCommand())
	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())

	return cmd
}

// cacheStatusCommand creates the "cache status" subcommand.
func (c *CLI) cacheStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the taxonomy snapshot state",
		RunE: func(cmd *cobra.Command, args []string) error {
			taxCache, err := taxonomy.NewCache("", c.Logger)
			if err != nil {
				return fmt.Errorf("open taxonomy cache: %w", err)
			}

			st := taxCache.Status()
			if !st.Exists {
				printInfo("No taxonomy snapshot")
				printDetail("Run 'stackaudit scan' to fetch the license taxonomy")
				return nil
			}

			freshness := "stale"
			if st.IsFresh {
				freshness = "fresh"
			}
			printKeyValue("Path", st.Path)
			printKeyValue("Licenses", fmt.Sprintf("%d", st.LicenseCount))
			printKeyValue("Size", taxonomy.FormatSize(st.SizeBytes))
			printKeyValue("Age", fmt.Sprintf("%s (%s)", taxonomy.FormatAge(st.AgeSecs), freshness))
			if !st.IsFresh {
				printWarning("Snapshot is stale; the next scan will refetch it")
			}
			return nil
		},
	}
}

// cacheClearCommand creates the "cache clear" subcommand. It removes the
// taxonomy snapshot and the local HTTP response cache; remote backends
// (Redis, MongoDB) expire on their own TTLs and are left alone.
func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear the taxonomy snapshot and local HTTP response cache",
		RunE: func(cmd *cobra.Command, args []string) error {
			taxCache, err := taxonomy.NewCache("", c.Logger)
			if err != nil {
				return fmt.Errorf("open taxonomy cache: %w", err)
			}
			if err := taxCache.Clear(); err != nil {
				return fmt.Errorf("clear taxonomy snapshot: %w", err)
			}

			dir, err := cacheDir()
			if err != nil {
				return fmt.Errorf("get cache dir: %w", err)
			}
			if _, err := os.Stat(dir); err == nil {
				if err := os.RemoveAll(dir); err != nil {
					return fmt.Errorf("clear response cache: %w", err)
				}
			}

			printSuccess("Caches cleared")
			printDetail("Taxonomy: %s", taxCache.Path())
			printDetail("Responses: %s", dir)
			return nil
		},
	}
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the cache locations",
		RunE: func(cmd *cobra.Command, args []string) error {
			taxCache, err := taxonomy.NewCache("", c.Logger)
			if err != nil {
				return fmt.Errorf("open taxonomy cache: %w", err)
			}
			dir, err := cacheDir()
			if err != nil {
				return fmt.Errorf("get cache dir: %w", err)
			}
			fmt.Println(taxCache.Path())
			fmt.Println(dir)
			return nil
		},
	}
}
