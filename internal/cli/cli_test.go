package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/stackaudit/pkg/errors"
)

func TestCacheDir(t *testing.T) {
	oldXdg := os.Getenv("XDG_CACHE_HOME")
	os.Unsetenv("XDG_CACHE_HOME")
	defer func() {
		if oldXdg != "" {
			os.Setenv("XDG_CACHE_HOME", oldXdg)
		}
	}()

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}

	home, _ := os.UserHomeDir()
	expected := filepath.Join(home, ".cache", appName)
	if dir != expected {
		t.Errorf("cacheDir() = %q, want %q", dir, expected)
	}
}

func TestCacheDirXDG(t *testing.T) {
	customCache := t.TempDir()
	oldXdg := os.Getenv("XDG_CACHE_HOME")
	os.Setenv("XDG_CACHE_HOME", customCache)
	defer func() {
		if oldXdg != "" {
			os.Setenv("XDG_CACHE_HOME", oldXdg)
		} else {
			os.Unsetenv("XDG_CACHE_HOME")
		}
	}()

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}

	expected := filepath.Join(customCache, appName)
	if dir != expected {
		t.Errorf("cacheDir() with XDG_CACHE_HOME = %q, want %q", dir, expected)
	}
}

func TestRootCommand(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	if root.Use != appName {
		t.Errorf("root.Use = %q, want %q", root.Use, appName)
	}

	want := []string{"scan", "cache", "graph", "serve", "completion"}
	for _, name := range want {
		found := false
		for _, sub := range root.Commands() {
			if strings.HasPrefix(sub.Use, name) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("root command missing subcommand %q", name)
		}
	}
}

func TestLanguages(t *testing.T) {
	langs := languages()
	if len(langs) != 5 {
		t.Fatalf("got %d languages, want 5", len(langs))
	}

	names := make(map[string]bool)
	for _, l := range langs {
		names[l.Name] = true
		if len(l.Parsers()) == 0 {
			t.Errorf("language %s has no parsers", l.Name)
		}
	}
	for _, want := range []string{"rust", "javascript", "golang", "python", "cpp"} {
		if !names[want] {
			t.Errorf("missing language %s", want)
		}
	}
}

func TestGraphUnsupportedFormat(t *testing.T) {
	c := New(io.Discard, LogInfo)
	cmd := c.graphCommand()
	cmd.SetArgs([]string{"-f", "gif", "-o", filepath.Join(t.TempDir(), "out.gif")})
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)

	err := cmd.Execute()
	if !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("Execute() error = %v, want code %s", err, errors.ErrCodeUnsupported)
	}
}

func TestSetLogLevel(t *testing.T) {
	c := New(io.Discard, LogInfo)
	c.SetLogLevel(LogDebug)
	if c.Logger.GetLevel() != LogDebug {
		t.Errorf("level = %v, want debug", c.Logger.GetLevel())
	}
}
