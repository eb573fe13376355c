package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/agiangrant/twclass"
	"github.com/agiangrant/twclass/internal/logging"
	"github.com/agiangrant/twclass/internal/settings"
	"github.com/agiangrant/twclass/tw"
)

const version = "0.1.0"

// app carries flag values and the project opened for the running command.
type app struct {
	dir       string
	twVersion string
	cacheSize int
	logLevel  string
	logFormat string
	envFile   string

	project *twclass.Project
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "twclass",
		Short:         "Tailwind class vocabulary and resolver",
		Long:          "twclass reads a project's Tailwind configuration and answers questions about its classes:\nwhich exist, what they resolve to, and the CSS they generate.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	flags := root.PersistentFlags()
	flags.StringVarP(&a.dir, "dir", "C", "", "Project directory (default: $TWCLASS_DIR or current directory)")
	flags.StringVar(&a.twVersion, "tw-version", "", "Tailwind major version: 2, 3 or 4 (default: detected)")
	flags.IntVar(&a.cacheSize, "cache-size", 0, "Resolver cache entries (default: $TWCLASS_CACHE_SIZE or 4096)")
	flags.StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	flags.StringVar(&a.logFormat, "log-format", "", "Log format: text or json")
	flags.StringVar(&a.envFile, "env-file", ".env", "Environment file read before $TWCLASS_* variables")

	root.AddCommand(
		a.vocabCmd(),
		a.resolveCmd(),
		a.completeCmd(),
		a.cssCmd(),
		a.themeCmd(),
		a.usageCmd(),
		a.initCmd(),
		versionCmd(),
	)
	return root
}

// open loads settings, applies flag overrides and opens the project.
func (a *app) open(cmd *cobra.Command) error {
	s, err := settings.Load(a.envFile)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("dir") {
		s.Dir = a.dir
	}
	if flags.Changed("tw-version") {
		v, ok := tw.ParseVersion(a.twVersion)
		if !ok {
			return fmt.Errorf("--tw-version: unsupported version %q", a.twVersion)
		}
		s.Version = v
	}
	if flags.Changed("cache-size") {
		s.CacheSize = a.cacheSize
	}
	if flags.Changed("log-level") {
		if err := s.LogLevel.UnmarshalText([]byte(a.logLevel)); err != nil {
			return fmt.Errorf("--log-level: %w", err)
		}
	}
	if flags.Changed("log-format") {
		s.LogFormat = a.logFormat
	}

	logger := logging.New(cmd.ErrOrStderr(), s.LogFormat, s.LogLevel)
	p, err := twclass.Open(cmd.Context(), s.Dir,
		twclass.WithLogger(logger),
		twclass.WithVersion(s.Version),
		twclass.WithCacheSize(s.CacheSize),
	)
	if err != nil {
		return err
	}
	for _, d := range p.Diagnostics() {
		logger.Warn("configuration", "diagnostic", d.String())
	}
	a.project = p
	return nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "twclass version %s\n", version)
		},
	}
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
