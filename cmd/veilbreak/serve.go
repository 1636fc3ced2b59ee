package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/veilbreak/veilbreak/pkg/matcher"
	"github.com/veilbreak/veilbreak/pkg/scanner"
	"github.com/veilbreak/veilbreak/pkg/serve"
	"github.com/veilbreak/veilbreak/pkg/store"
)

var (
	serveTermsPath string
	serveMode      string
	serveStorePath string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run as a streaming server for binding-layer integration",
	Long: `Run Veilbreak as a long-lived streaming server that accepts scan requests
via stdin and outputs matches via stdout using NDJSON format.

This mode is designed for host-language binding processes: the lexicon is
compiled once at startup and requests are processed until stdin closes or
SIGTERM is received.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveTermsPath, "terms", "", "Path to custom terms YAML file")
	serveCmd.Flags().StringVar(&serveMode, "mode", "whole-word", "Match mode: whole-word, substring")
	serveCmd.Flags().StringVar(&serveStorePath, "store", "", "Audit store path (SQLite); empty keeps results in memory only")
}

func runServe(cmd *cobra.Command, args []string) error {
	mode, err := matcher.ParseMode(serveMode)
	if err != nil {
		return err
	}

	terms, err := loadTerms(serveTermsPath)
	if err != nil {
		return fmt.Errorf("loading terms: %w", err)
	}

	st, err := store.New(store.Config{Path: serveStorePath})
	if err != nil {
		return fmt.Errorf("creating store: %w", err)
	}

	core, err := scanner.NewCore(scanner.Config{
		Terms: terms,
		Mode:  mode,
		Store: st,
	})
	if err != nil {
		return err
	}
	defer core.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		<-sigChan
		cancel()
	}()

	srv := serve.NewServer(core, cmd.InOrStdin(), cmd.OutOrStdout())
	return srv.Run(ctx)
}
