// Package cli implements the mandelband command-line interface.
//
// This package provides commands for rendering grayscale Mandelbrot-set
// images, listing viewport presets, and managing the artifact cache. The
// CLI is built using cobra and supports verbose logging via the
// charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - render: Render a region of the complex plane to a PNG or PGM file
//   - regions: List built-in and configured viewport presets
//   - cache: Manage the rendered artifact cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mandelband/mandelband/pkg/buildinfo"
	"github.com/mandelband/mandelband/pkg/cache"
	"github.com/mandelband/mandelband/pkg/config"
	"github.com/mandelband/mandelband/pkg/pipeline"
)

// appName is the application name used for directories and display.
const appName = "mandelband"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "mandelband",
		Short:        "Mandelband renders grayscale Mandelbrot-set images",
		Long:         `Mandelband is a CLI tool that renders regions of the Mandelbrot set as grayscale images, computed in parallel across horizontal bands of the output raster.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.regionsCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(noCache bool) *pipeline.Runner {
	return pipeline.NewRunner(newCache(noCache), c.Logger)
}

func newCache(noCache bool) cache.Cache {
	if noCache {
		return cache.NewNullCache()
	}
	dir, err := cacheDir()
	if err != nil {
		printWarning("Cache unavailable (%v), rendering without it", err)
		return cache.NewNullCache()
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		printWarning("Cache unavailable (%v), rendering without it", err)
		return cache.NewNullCache()
	}
	return fc
}

// loadConfig reads the user configuration file, falling back to defaults
// when none exists.
func (c *CLI) loadConfig() (config.Config, error) {
	path, err := configPath()
	if err != nil {
		return config.Default(), nil
	}
	return config.Load(path)
}

// cacheDir returns the cache directory using XDG standard (~/.cache/mandelband/).
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

// configPath returns the config file path using XDG standard
// (~/.config/mandelband/config.toml).
func configPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}
