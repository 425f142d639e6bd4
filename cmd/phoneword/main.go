package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"codeberg.org/snonux/phoneword/internal/cli"
	"codeberg.org/snonux/phoneword/internal/processor"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create command tree
	rootCmd := cli.CreateRootCommand(flags)
	serveCmd := cli.CreateServeCommand(flags)
	lookupCmd := cli.CreateLookupCommand(flags)
	decodeCmd := cli.CreateDecodeCommand()

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
		cli.ApplyConfig(flags)
	})

	serveCmd.RunE = func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return processor.NewProcessor(flags).Serve(ctx)
	}

	lookupCmd.RunE = func(cmd *cobra.Command, args []string) error {
		proc := processor.NewProcessor(flags)
		if flags.BatchFile != "" {
			return proc.LookupBatch(cmd.Context())
		}
		return proc.LookupNumbers(cmd.Context(), args)
	}

	decodeCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return processor.NewProcessor(flags).DecodeWords(args)
	}

	rootCmd.AddCommand(serveCmd, lookupCmd, decodeCmd)

	// Execute command
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
