package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/five82/svitlo/internal/app"
)

var (
	cfgPath     string
	prefsPath   string
	pollSeconds int
)

var rootCmd = &cobra.Command{
	Use:           "svitlo",
	Short:         "Power outage schedule for the Kyiv region",
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	RunE:          runTUI,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "config file (default ~/.config/svitlo/config.toml)")
	rootCmd.PersistentFlags().StringVar(&prefsPath, "prefs", "", "preferences file (default ~/.config/svitlo/prefs.toml)")
	rootCmd.Flags().IntVar(&pollSeconds, "poll", 0, "refresh interval in seconds (overrides config)")
}

func runTUI(cmd *cobra.Command, args []string) error {
	if pollSeconds < 0 {
		return fmt.Errorf("--poll must be positive, got %d", pollSeconds)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return app.Run(ctx, app.Options{
		ConfigPath: cfgPath,
		PrefsPath:  prefsPath,
		PollEvery:  pollSeconds,
	})
}
