package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"league-server/internal/bootstrap"
	"league-server/internal/config"
	"league-server/internal/observability"

	"github.com/spf13/cobra"
)

var Version = "dev"

// app is the wiring shared by every subcommand
type app struct {
	cfg     *config.Config
	logger  *observability.Logger
	deps    *bootstrap.Dependencies
	verbose bool
}

func main() {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "leaguectl",
		Short:         "Operate the segment league webhook pipeline",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd.Context())
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Write structured logs to stderr")

	rootCmd.AddCommand(capacityCmd(a))
	rootCmd.AddCommand(subscriptionCmd(a))
	rootCmd.AddCommand(eventsCmd(a))
	rootCmd.AddCommand(weeksCmd(a))
	rootCmd.AddCommand(tokenCmd(a))

	err := rootCmd.ExecuteContext(context.Background())
	a.close()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func (a *app) init(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	a.cfg = cfg

	a.logger = observability.NewNopLogger()
	if a.verbose {
		a.logger = observability.NewLogger()
	}

	a.deps, err = bootstrap.Initialize(ctx, cfg, a.logger)
	if err != nil {
		return err
	}
	return nil
}

func (a *app) close() {
	if a.deps != nil {
		a.deps.Cleanup()
	}
	if a.logger != nil {
		a.logger.Sync()
	}
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
