package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/five82/svitlo/internal/app"
)

var printOpts app.PrintOptions

var printCmd = &cobra.Command{
	Use:   "print",
	Short: "Fetch the schedule once and print it",
	Args:  cobra.NoArgs,
	RunE:  runPrint,
}

func init() {
	printCmd.Flags().StringVar(&printOpts.Lang, "lang", "", "language: uk or en (default from preferences)")
	printCmd.Flags().StringVar(&printOpts.Day, "day", "today", "day: today or tomorrow")
	printCmd.Flags().StringVar(&printOpts.Kind, "kind", "live", "schedule: live or predicted")
	printCmd.Flags().IntVar(&printOpts.Width, "width", 100, "output width in columns")
	rootCmd.AddCommand(printCmd)
}

func runPrint(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := printOpts
	opts.ConfigPath = cfgPath
	opts.PrefsPath = prefsPath
	return app.Print(ctx, cmd.OutOrStdout(), opts)
}
