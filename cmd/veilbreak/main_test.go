package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veilbreak/veilbreak/pkg/scanner"
	"github.com/veilbreak/veilbreak/pkg/types"
)

// executeCommand runs the root command with args and captures output.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return buf.String(), err
}

func writeTermsFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "terms.yml")
	data := []byte(`
terms:
  - id: spam.crypto
    term: free crypto
    categories: [spam]
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestVersionCommand(t *testing.T) {
	out, err := executeCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "Veilbreak v")
	assert.Contains(t, out, "Go version:")
}

func TestScanCommand_JSON(t *testing.T) {
	out, err := executeCommand(t,
		"scan", "grab ƒree ¢rypto here",
		"--terms", writeTermsFile(t),
		"--format", "json",
	)
	require.NoError(t, err)

	var result scanner.ScanResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "grab free crypto here", result.Canonical)
	require.Len(t, result.Matches, 1)
	assert.Equal(t, "spam.crypto", result.Matches[0].TermID)
}

func TestScanCommand_Redacted(t *testing.T) {
	out, err := executeCommand(t,
		"scan", "grab free crypto here",
		"--terms", writeTermsFile(t),
		"--format", "human",
		"--redacted",
	)
	require.NoError(t, err)
	assert.Equal(t, "grab *********** here\n", out)
}

func TestScanCommand_FromFile(t *testing.T) {
	input := filepath.Join(t.TempDir(), "message.txt")
	require.NoError(t, os.WriteFile(input, []byte("free crypto"), 0o644))

	out, err := executeCommand(t,
		"scan",
		"--file", input,
		"--terms", writeTermsFile(t),
		"--format", "json",
		"--redacted=false",
	)
	require.NoError(t, err)

	var result scanner.ScanResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Len(t, result.Matches, 1)
}

func TestScanCommand_StorePersists(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "audit.db")

	_, err := executeCommand(t,
		"scan", "free crypto for all",
		"--terms", writeTermsFile(t),
		"--format", "json",
		"--store", dbPath,
	)
	require.NoError(t, err)
	assert.FileExists(t, dbPath)
}

func TestScanCommand_BadMode(t *testing.T) {
	_, err := executeCommand(t,
		"scan", "whatever",
		"--mode", "fuzzy",
	)
	require.Error(t, err)

	// Restore the default for later tests.
	scanMode = "whole-word"
}

func TestTermsListCommand_JSON(t *testing.T) {
	out, err := executeCommand(t,
		"terms", "list",
		"--terms", writeTermsFile(t),
		"--format", "json",
	)
	require.NoError(t, err)

	var terms []*types.Term
	require.NoError(t, json.Unmarshal([]byte(out), &terms))
	require.Len(t, terms, 1)
	assert.Equal(t, "free crypto", terms[0].Canonical)
}

func TestTermsListCommand_Table(t *testing.T) {
	out, err := executeCommand(t,
		"terms", "list",
		"--terms", "",
		"--format", "table",
	)
	require.NoError(t, err)
	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "terms")
}
