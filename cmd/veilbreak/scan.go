package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/veilbreak/veilbreak/pkg/lexicon"
	"github.com/veilbreak/veilbreak/pkg/matcher"
	"github.com/veilbreak/veilbreak/pkg/scanner"
	"github.com/veilbreak/veilbreak/pkg/store"
	"github.com/veilbreak/veilbreak/pkg/types"
)

var (
	scanTermsPath    string
	scanMode         string
	scanExclusive    bool
	scanOutputFormat string
	scanStorePath    string
	scanFilePath     string
	scanSource       string
	scanShowRedacted bool
)

var scanCmd = &cobra.Command{
	Use:   "scan [text]",
	Short: "Scan text for lexicon matches",
	Long: `Scan message text for disguised lexicon terms.

Text comes from the argument, from --file, or from stdin when neither
is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScan,
}

func init() {
	scanCmd.Flags().StringVar(&scanTermsPath, "terms", "", "Path to custom terms YAML file")
	scanCmd.Flags().StringVar(&scanMode, "mode", "whole-word", "Match mode: whole-word, substring")
	scanCmd.Flags().BoolVar(&scanExclusive, "exclusive", false, "Report greedy non-overlapping matches instead of all")
	scanCmd.Flags().StringVar(&scanOutputFormat, "format", "human", "Output format: human, json")
	scanCmd.Flags().StringVar(&scanStorePath, "store", "", "Audit store path (SQLite); empty keeps results in memory only")
	scanCmd.Flags().StringVar(&scanFilePath, "file", "", "Read text to scan from a file")
	scanCmd.Flags().StringVar(&scanSource, "source", "cli", "Source label recorded with the message")
	scanCmd.Flags().BoolVar(&scanShowRedacted, "redacted", false, "Print the redacted text instead of match details")
}

func runScan(cmd *cobra.Command, args []string) error {
	content, err := readScanInput(cmd, args)
	if err != nil {
		return err
	}

	mode, err := matcher.ParseMode(scanMode)
	if err != nil {
		return err
	}

	terms, err := loadTerms(scanTermsPath)
	if err != nil {
		return fmt.Errorf("loading terms: %w", err)
	}

	st, err := store.New(store.Config{Path: scanStorePath})
	if err != nil {
		return fmt.Errorf("creating store: %w", err)
	}
	defer st.Close()

	core, err := scanner.NewCore(scanner.Config{
		Terms:     terms,
		Mode:      mode,
		Exclusive: scanExclusive,
		Store:     st,
	})
	if err != nil {
		return err
	}

	result, err := core.Scan(content, scanSource)
	if err != nil {
		return err
	}

	switch scanOutputFormat {
	case "json":
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(result)
	case "human":
		return outputScanHuman(cmd, content, result)
	default:
		return fmt.Errorf("unknown output format: %s", scanOutputFormat)
	}
}

func readScanInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	if scanFilePath != "" {
		data, err := os.ReadFile(scanFilePath)
		if err != nil {
			return "", fmt.Errorf("reading file: %w", err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}

func loadTerms(path string) ([]*types.Term, error) {
	loader := lexicon.NewLoader()
	if path != "" {
		return loader.LoadTermFile(path)
	}
	return loader.LoadBuiltinTerms()
}

func outputScanHuman(cmd *cobra.Command, content string, result *scanner.ScanResult) error {
	out := cmd.OutOrStdout()

	if scanShowRedacted {
		redacted := result.Redacted
		if redacted == "" {
			redacted = content
		}
		fmt.Fprintln(out, redacted)
		return nil
	}

	termStyle := color.New(color.Bold, color.FgHiBlue)
	surfaceStyle := color.New(color.FgYellow)

	if len(result.Matches) == 0 {
		if !quiet {
			fmt.Fprintln(out, "no matches")
		}
		return nil
	}

	for _, m := range result.Matches {
		fmt.Fprintf(out, "%s  %s  canonical [%d, %d)  source bytes [%d, %d)\n",
			termStyle.Sprint(m.TermID),
			surfaceStyle.Sprintf("%q", m.Surface),
			m.Canonical.Start, m.Canonical.End,
			m.Source.Start, m.Source.End,
		)
	}
	if !quiet {
		fmt.Fprintf(out, "\n%d match(es); canonical text: %q\n", len(result.Matches), result.Canonical)
	}
	return nil
}
