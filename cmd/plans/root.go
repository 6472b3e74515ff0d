package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/aretw0/plans"
)

var (
	verbose  bool
	dataDir  string
	dataFile string
	format   string
	adapter  string
	readOnly bool

	cfg *plans.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "plans",
	Short: "A small note list kept in one local file",
	Long: `plans keeps a list of notes in a single JSON, YAML or CSV file (or a
SQLite database) and rewrites it atomically on every change.

Configuration is read from PLANS_* environment variables and an optional
.env file; flags take precedence.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		var err error
		cfg, err = plans.LoadConfig()
		if err != nil {
			fatal("Error loading configuration", err)
		}

		level := cfg.LogLevel
		if verbose {
			level = slog.LevelDebug
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	flags.StringVar(&dataDir, "dir", "", "Data directory (default: user config dir/plans)")
	flags.StringVar(&dataFile, "file", "", "Data file name (default: todo.<format>)")
	flags.StringVar(&format, "format", "", "Encoding: json, yaml or csv")
	flags.StringVar(&adapter, "adapter", "", "Storage adapter: fs or sqlite")
	flags.BoolVar(&readOnly, "read-only", false, "Never write to the data file")
}

// openStore merges flags over the environment configuration.
func openStore(cmd *cobra.Command) *plans.Store {
	opts := append(cfg.Options(), plans.WithLogger(slog.Default()))

	dir := cfg.Dir
	if cmd.Flags().Changed("dir") {
		dir = dataDir
	}
	if cmd.Flags().Changed("file") {
		opts = append(opts, plans.WithFilename(dataFile))
	}
	if cmd.Flags().Changed("format") {
		opts = append(opts, plans.WithFormat(format))
	}
	if cmd.Flags().Changed("adapter") {
		opts = append(opts, plans.WithAdapter(adapter))
	}
	if cmd.Flags().Changed("read-only") {
		opts = append(opts, plans.WithReadOnly(readOnly))
	}

	store, err := plans.Open(commandContext(cmd), dir, opts...)
	if err != nil {
		fatal("Error opening notes", err)
	}
	return store
}

// loadPresenter opens the store and loads the display list.
func loadPresenter(cmd *cobra.Command, view plans.View) (*plans.Store, *plans.Presenter) {
	store := openStore(cmd)
	p := plans.NewPresenter(store, view)
	if err := p.Load(commandContext(cmd)); err != nil {
		_ = store.Close()
		os.Exit(1)
	}
	return store, p
}

// parseIndex converts a 1-based CLI position into a display index.
func parseIndex(arg string) int {
	n, err := strconv.Atoi(arg)
	if err != nil {
		fatal("Error parsing note number", err)
	}
	return n - 1
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
