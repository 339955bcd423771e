// Package cli provides the command-line interface for inkswatch.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jmylchreest/inkswatch/internal/catalog"
	"github.com/jmylchreest/inkswatch/internal/config"
	"github.com/jmylchreest/inkswatch/internal/inks"
	"github.com/jmylchreest/inkswatch/internal/version"
)

var (
	// Global flags
	globalCatalog      string
	globalMetadata     string
	globalCacheDir     string
	globalDetailURL    string
	globalImageURL     string
	globalFetchTimeout time.Duration
	globalFormat       string
	globalLogJSON      bool

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "inkswatch",
		Short: "Fountain pen ink colour matching and palettes",
		Long: `inkswatch answers questions about a catalog of scanned fountain pen ink
swatches: find inks by name or by colour, list a maker's range, and build
palettes from built-in themes, custom colour lists or colour harmonies.

Run "inkswatch serve" to expose the catalog as MCP tools over stdio, or use
the query subcommands directly from a terminal.`,
		Version:      version.Short(),
		SilenceUsage: true,
	}
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	defaults := config.Default()

	flags := rootCmd.PersistentFlags()
	flags.BoolP("verbose", "v", false, "enable verbose output")
	flags.BoolP("quiet", "q", false, "suppress non-error output")
	flags.BoolVar(&globalLogJSON, "log-json", false, "write logs as JSON")
	flags.StringVar(&globalCatalog, "catalog", defaults.CatalogPath, "ink catalog path or URL (env "+config.EnvCatalog+")")
	flags.StringVar(&globalMetadata, "metadata", defaults.MetadataPath, "ink metadata path or URL, empty to skip (env "+config.EnvMetadata+")")
	flags.StringVar(&globalCacheDir, "cache-dir", "", "cache directory for remote catalog sources (env "+config.EnvCacheDir+")")
	flags.StringVar(&globalDetailURL, "detail-url", defaults.URLs.Detail, "ink detail URL template (env "+config.EnvDetailURL+")")
	flags.StringVar(&globalImageURL, "image-url", defaults.URLs.Image, "ink swatch image URL template (env "+config.EnvImageURL+")")
	flags.DurationVar(&globalFetchTimeout, "fetch-timeout", defaults.FetchTimeout, "timeout for remote catalog fetches (env "+config.EnvFetchTimeout+")")
	flags.StringVarP(&globalFormat, "format", "f", formatTable, "output format (table, json)")

	// Set version template
	rootCmd.SetVersionTemplate(version.String() + "\n")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(colourCmd)
	rootCmd.AddCommand(inkCmd)
	rootCmd.AddCommand(makerCmd)
	rootCmd.AddCommand(paletteCmd)
	rootCmd.AddCommand(themesCmd)
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print detailed version information including build date, commit hash, and Go version.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.String())
	},
}

// resolveConfig layers explicitly set flags over the environment configuration.
func resolveConfig(flags *pflag.FlagSet) (config.Config, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return cfg, err
	}

	flags.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "catalog":
			cfg.CatalogPath = globalCatalog
		case "metadata":
			cfg.MetadataPath = globalMetadata
		case "cache-dir":
			cfg.CacheDir = globalCacheDir
		case "detail-url":
			cfg.URLs.Detail = globalDetailURL
		case "image-url":
			cfg.URLs.Image = globalImageURL
		case "fetch-timeout":
			cfg.FetchTimeout = globalFetchTimeout
		}
	})

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// newLogger returns a stderr logger honouring --verbose, --quiet and the
// configured log level.
func newLogger(cmd *cobra.Command, cfg config.Config, out io.Writer) hclog.Logger {
	level := hclog.Info
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = hclog.Debug
	}
	if quiet, _ := cmd.Flags().GetBool("quiet"); quiet {
		level = hclog.Error
	}
	if cfg.LogLevel != "" {
		level = hclog.LevelFromString(cfg.LogLevel)
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:       "inkswatch",
		Output:     out,
		Level:      level,
		JSONFormat: globalLogJSON,
	})
}

// session is a loaded catalog with the configuration it came from.
type session struct {
	cfg     config.Config
	logger  hclog.Logger
	loader  *catalog.Loader
	store   *catalog.Store
	service *inks.Service
}

// openSession resolves configuration and loads the catalog.
func openSession(ctx context.Context, cmd *cobra.Command) (*session, error) {
	cfg, err := resolveConfig(cmd.Flags())
	if err != nil {
		return nil, err
	}
	logger := newLogger(cmd, cfg, cmd.ErrOrStderr())

	loader := catalog.NewLoader(cfg.LoaderOptions(logger))
	snap, err := loader.Load(ctx, cfg.Sources())
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	store := catalog.NewStore(snap)
	return &session{
		cfg:     cfg,
		logger:  logger,
		loader:  loader,
		store:   store,
		service: inks.NewService(store, cfg.URLs),
	}, nil
}

// reload re-reads the configured sources, keeping the current snapshot on failure.
func (s *session) reload(ctx context.Context) error {
	if _, err := s.store.Reload(ctx, s.loader, s.cfg.Sources()); err != nil {
		return fmt.Errorf("failed to reload catalog: %w", err)
	}
	return nil
}

// outputFormat returns the validated --format value.
func outputFormat() (string, error) {
	f := strings.ToLower(strings.TrimSpace(globalFormat))
	switch f {
	case formatTable, formatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q (table, json)", globalFormat)
	}
}
