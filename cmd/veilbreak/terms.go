package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/veilbreak/veilbreak/pkg/types"
)

var (
	termsPath         string
	termsOutputFormat string
)

var termsCmd = &cobra.Command{
	Use:   "terms",
	Short: "Manage lexicon terms",
	Long:  "Commands for listing and inspecting lexicon terms",
}

var termsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available terms",
	Long:  "Display all lexicon terms with their IDs and canonical forms",
	RunE:  runTermsList,
}

func init() {
	termsCmd.AddCommand(termsListCmd)
	termsListCmd.Flags().StringVar(&termsPath, "terms", "", "Path to custom terms YAML file")
	termsListCmd.Flags().StringVar(&termsOutputFormat, "format", "table", "Output format: table, json")
}

func runTermsList(cmd *cobra.Command, args []string) error {
	terms, err := loadTerms(termsPath)
	if err != nil {
		return fmt.Errorf("loading terms: %w", err)
	}

	switch termsOutputFormat {
	case "json":
		return outputTermsJSON(cmd, terms)
	case "table":
		return outputTermsTable(cmd, terms)
	default:
		return fmt.Errorf("unknown output format: %s", termsOutputFormat)
	}
}

func outputTermsJSON(cmd *cobra.Command, terms []*types.Term) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(terms)
}

func outputTermsTable(cmd *cobra.Command, terms []*types.Term) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTERM\tCANONICAL\tCATEGORIES")
	for _, t := range terms {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			t.ID, t.Term, t.Canonical, strings.Join(t.Categories, ","))
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "\n%d terms\n", len(terms))
	return nil
}
