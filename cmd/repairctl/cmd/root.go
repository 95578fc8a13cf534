// Package cmd provides the CLI commands for repairctl.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dtroode/repairctl/internal/config"
	"github.com/dtroode/repairctl/internal/terminal"
)

// skipAppAnnotation marks commands that run without a backend session.
const skipAppAnnotation = "repairctl/skip-app"

var (
	outputFormat string
	a            *app
)

var rootCmd = &cobra.Command{
	Use:   "repairctl",
	Short: "repairctl - mobile repair marketplace client",
	Long: `repairctl talks to the mobile repair marketplace backend.

Customers submit repair requests with photos, accept quotes and review
shops. Shop owners quote on and progress requests. Admins see platform
statistics.

Configuration is read from REPAIRCTL_-prefixed environment variables.
Example: REPAIRCTL_API_BASE_URL=https://repair.example.com/api/v1`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if !needsApp(cmd) {
			return nil
		}

		format, err := terminal.ParseFormat(outputFormat)
		if err != nil {
			return err
		}

		cfg, err := config.NewConfig()
		if err != nil {
			return err
		}

		a, err = newApp(cmd.Context(), cfg, format, cmd.OutOrStdout(), cmd.ErrOrStderr())
		return err
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeApp(cmd.Context())
	},
}

// Execute runs the root command.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	// PersistentPostRunE is skipped when RunE fails.
	if cerr := closeApp(context.WithoutCancel(ctx)); cerr != nil && err == nil {
		err = cerr
	}
	if err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		stop()
		os.Exit(1)
	}
}

func needsApp(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations[skipAppAnnotation] == "true" {
			return false
		}
	}
	return cmd.Runnable() && cmd.Name() != "help"
}

func closeApp(ctx context.Context) error {
	if a == nil {
		return nil
	}
	err := a.close(ctx)
	a = nil
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", string(terminal.FormatTable), "output format: table, json or yaml")
}
