// Package cli implements the stackaudit command-line interface.
//
// This package provides commands for auditing project dependencies for
// restrictive licenses, managing the taxonomy and HTTP response caches,
// rendering license graphs, and running the HTTP API. The CLI is built
// using cobra and supports verbose logging via the charmbracelet/log
// library.
//
// # Commands
//
// The main commands are:
//   - scan: Audit a project's dependency licenses
//   - cache: Inspect and manage the taxonomy and HTTP response caches
//   - graph: Render license compatibility or audit graphs
//   - serve: Run the HTTP API
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/stackaudit/pkg/audit"
	"github.com/matzehuels/stackaudit/pkg/buildinfo"
	"github.com/matzehuels/stackaudit/pkg/cache"
	"github.com/matzehuels/stackaudit/pkg/config"
	"github.com/matzehuels/stackaudit/pkg/deps"
	"github.com/matzehuels/stackaudit/pkg/deps/cpp"
	"github.com/matzehuels/stackaudit/pkg/deps/golang"
	"github.com/matzehuels/stackaudit/pkg/deps/javascript"
	"github.com/matzehuels/stackaudit/pkg/deps/python"
	"github.com/matzehuels/stackaudit/pkg/deps/rust"
	"github.com/matzehuels/stackaudit/pkg/integrations/github"
	"github.com/matzehuels/stackaudit/pkg/taxonomy"
)

// appName is the application name used for directories and display.
const appName = "stackaudit"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Persistent flag values, bound in RootCommand.
	noCache  bool
	redisURL string
	mongoURI string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Stackaudit classifies dependency licenses",
		Long:         `Stackaudit scans project manifests, resolves dependency licenses from their registries, and flags restrictive or incompatible licenses against the project's own license.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.PersistentFlags().BoolVar(&c.noCache, "no-cache", false, "disable HTTP response caching")
	root.PersistentFlags().StringVar(&c.redisURL, "redis-url", os.Getenv("STACKAUDIT_REDIS_URL"), "Redis URL for response caching (redis://host:port)")
	root.PersistentFlags().StringVar(&c.mongoURI, "mongo-uri", os.Getenv("STACKAUDIT_MONGO_URI"), "MongoDB URI for response caching")

	root.AddCommand(c.scanCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.graphCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// languages returns every supported ecosystem, in scan order.
func languages() []*deps.Language {
	return []*deps.Language{
		rust.Language,
		javascript.Language,
		golang.Language,
		python.Language,
		cpp.Language,
	}
}

// newBackend selects the HTTP response cache backend. Redis and MongoDB
// take precedence over the file cache when configured; a failed remote
// connection is an error rather than a silent fallback.
func (c *CLI) newBackend(ctx context.Context) (cache.Cache, error) {
	if c.noCache {
		return cache.NewNullCache(), nil
	}
	if c.redisURL != "" {
		return cache.NewRedisCache(ctx, c.redisURL)
	}
	if c.mongoURI != "" {
		return cache.NewMongoCache(ctx, c.mongoURI, appName, "http_cache")
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// newRunner assembles an audit runner from the persistent flags.
func (c *CLI) newRunner(ctx context.Context, projectPath, token string, refresh bool) (*audit.Runner, cache.Cache, error) {
	backend, err := c.newBackend(ctx)
	if err != nil {
		return nil, nil, err
	}

	taxCache, err := taxonomy.NewCache("", c.Logger)
	if err != nil {
		backend.Close()
		return nil, nil, err
	}

	if token == "" {
		token = os.Getenv("GITHUB_TOKEN")
	}
	fetcher := github.NewClient(backend, token, taxonomy.TTL)

	runner := audit.New(backend, taxCache, fetcher, languages()...)
	runner.Config = config.Load(projectPath)
	runner.Refresh = refresh
	runner.Logger = c.Logger
	return runner, backend, nil
}

// cacheDir returns the cache directory using XDG standard (~/.cache/stackaudit/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// progress tracks the start time of an operation and logs completion with
// elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}
