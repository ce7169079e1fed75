package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/ytget/recipe-finder/internal/config"
	"github.com/ytget/recipe-finder/internal/logging"
	"github.com/ytget/recipe-finder/internal/platform"
)

const (
	name           = "recipe-finder"
	versionDefault = "dev"
	envPrefix      = "RECIPE_FINDER"
	configName     = "recipe-finder"
)

// Flag and config keys
const (
	FlagConfig  = "config"
	FlagAPIURL  = "api-url"
	FlagTimeout = "timeout"
	FlagTheme   = "theme"
	FlagVerbose = "verbose"
)

// RunConfig is the resolved configuration handed to the window launcher
type RunConfig struct {
	Overrides config.Overrides
	Verbose   bool
	Logger    *zap.Logger
}

// Launcher starts the graphical window and blocks until it is closed
type Launcher func(ctx context.Context, run RunConfig) error

// Options wires the command tree to its collaborators
type Options struct {
	Version string
	Launch  Launcher
	Opener  func(link string) error
}

// app carries state shared by the commands of one invocation
type app struct {
	opts   Options
	v      *viper.Viper
	logger *zap.Logger
}

// NewRootCommand builds the command tree. Each call uses its own viper
// instance so commands can be built repeatedly in tests.
func NewRootCommand(opts Options) *cobra.Command {
	if opts.Version == "" {
		opts.Version = versionDefault
	}
	if opts.Opener == nil {
		opts.Opener = platform.OpenURL
	}
	a := &app{opts: opts, v: viper.New()}

	rootCmd := &cobra.Command{
		Use:   name,
		Short: "Search recipes from TheMealDB",
		Long: `recipe-finder searches the public TheMealDB catalogue and shows the
matching recipes as cards with images, category, region and links.

Without a subcommand the desktop window opens. The search subcommand runs the
same search headless and prints the cards to the terminal.`,
		Version:       opts.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.initialize(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.opts.Launch == nil {
				return fmt.Errorf("no window available in this build")
			}
			return a.opts.Launch(cmd.Context(), a.runConfig())
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String(FlagConfig, "", "config file (default: ./recipe-finder.yaml or ~/.config/recipe-finder/recipe-finder.yaml)")
	flags.String(FlagAPIURL, "", "recipe API base URL (default: stored setting or "+config.DefaultAPIBaseURL+")")
	flags.Duration(FlagTimeout, 0, "request timeout, e.g. 10s (default: stored setting)")
	flags.String(FlagTheme, "", "theme for this run: light or dark")
	flags.BoolP(FlagVerbose, "v", false, "enable debug logging")

	for _, key := range []string{FlagAPIURL, FlagTimeout, FlagTheme, FlagVerbose} {
		_ = a.v.BindPFlag(key, flags.Lookup(key))
	}

	rootCmd.AddCommand(
		newSearchCommand(a),
		newVersionCommand(a),
	)

	return rootCmd
}

// Execute runs the command tree with SIGINT/SIGTERM cancelling the context
func Execute(opts Options) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := NewRootCommand(opts)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), "Error:", err)
		return err
	}
	return nil
}

// initialize reads the config file and environment, validates the merged
// values and builds the logger
func (a *app) initialize(cmd *cobra.Command) error {
	if err := a.initConfig(cmd); err != nil {
		return err
	}

	if theme := a.v.GetString(FlagTheme); theme != "" {
		if _, ok := config.ParseTheme(theme); !ok {
			return fmt.Errorf("invalid theme %q: expected light or dark", theme)
		}
	}
	if a.v.GetDuration(FlagTimeout) < 0 {
		return fmt.Errorf("invalid timeout %s", a.v.GetDuration(FlagTimeout))
	}

	logger, err := logging.New(a.v.GetBool(FlagVerbose))
	if err != nil {
		return err
	}
	a.logger = logger.With(zap.String("app", name), zap.String("version", a.opts.Version))
	a.logger.Debug("configuration loaded",
		zap.String("config_file", a.v.ConfigFileUsed()),
		zap.String("api_url", a.v.GetString(FlagAPIURL)),
		zap.Duration("timeout", a.v.GetDuration(FlagTimeout)),
		zap.String("theme", a.v.GetString(FlagTheme)))
	return nil
}

// initConfig reads in config file and ENV variables if set.
func (a *app) initConfig(cmd *cobra.Command) error {
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	cfgFile, _ := cmd.Flags().GetString(FlagConfig)
	if cfgFile != "" {
		a.v.SetConfigFile(cfgFile)

		// Fail fast if user-specified config doesn't exist
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file %s: %w", cfgFile, err)
		}
		return nil
	}

	a.v.SetConfigName(configName)
	a.v.SetConfigType("yaml")
	a.v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		a.v.AddConfigPath(filepath.Join(home, ".config", configName))
	}

	// The discovered config file is optional
	_ = a.v.ReadInConfig()
	return nil
}

// overrides returns the run-only values from flags, env and config file
func (a *app) overrides() config.Overrides {
	theme, _ := config.ParseTheme(a.v.GetString(FlagTheme))
	if !config.IsValidTheme(theme) {
		theme = ""
	}
	return config.Overrides{
		APIBaseURL: strings.TrimRight(strings.TrimSpace(a.v.GetString(FlagAPIURL)), "/"),
		Timeout:    a.v.GetDuration(FlagTimeout),
		Theme:      theme,
	}
}

// runConfig assembles the launcher input
func (a *app) runConfig() RunConfig {
	return RunConfig{
		Overrides: a.overrides(),
		Verbose:   a.v.GetBool(FlagVerbose),
		Logger:    logging.OrNop(a.logger),
	}
}

// timeoutOr returns the configured timeout, or fallback when none is set
func (a *app) timeoutOr(fallback time.Duration) time.Duration {
	if timeout := a.v.GetDuration(FlagTimeout); timeout > 0 {
		return timeout
	}
	return fallback
}

// fprintln writes a line to w, ignoring write errors on the terminal
func fprintln(w io.Writer, args ...any) {
	_, _ = fmt.Fprintln(w, args...)
}
