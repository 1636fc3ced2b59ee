package lexicon

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/veilbreak/veilbreak/pkg/sentence"
	"github.com/veilbreak/veilbreak/pkg/types"
)

// Loader handles loading terms from YAML files.
type Loader struct {
	fs fs.FS // embedded filesystem for builtin terms
}

// NewLoader creates a loader backed by the embedded builtin terms.
func NewLoader() *Loader {
	return &Loader{fs: builtinTermsFS}
}

// NewLoaderWithFS creates a loader over a custom filesystem.
func NewLoaderWithFS(fsys fs.FS) *Loader {
	return &Loader{fs: fsys}
}

// LoadTerms parses terms from YAML bytes. Every loaded term gets its
// canonical form computed through the normalization pipeline, so a
// lexicon written as "frëé çryptó" still compiles to "free crypto".
func (l *Loader) LoadTerms(data []byte) ([]*types.Term, error) {
	var file yamlTermsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if len(file.Terms) == 0 {
		return nil, fmt.Errorf("no terms found in YAML")
	}

	terms := make([]*types.Term, 0, len(file.Terms))
	for _, yt := range file.Terms {
		t := convertYAMLTerm(yt)
		if err := t.Validate(); err != nil {
			return nil, err
		}
		terms = append(terms, t)
	}
	return terms, nil
}

// LoadTermFile loads terms from a YAML file path.
func (l *Loader) LoadTermFile(path string) ([]*types.Term, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return l.LoadTerms(data)
}

// LoadBuiltinTerms loads the embedded builtin term files.
func (l *Loader) LoadBuiltinTerms() ([]*types.Term, error) {
	var terms []*types.Term

	err := fs.WalkDir(l.fs, "terms", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(path) != ".yml" {
			return nil
		}

		data, err := fs.ReadFile(l.fs, path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		loaded, err := l.LoadTerms(data)
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", path, err)
		}
		terms = append(terms, loaded...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return terms, nil
}

// convertYAMLTerm converts yamlTerm to types.Term and fills in the
// canonical form when the file did not pin one.
func convertYAMLTerm(yt yamlTerm) *types.Term {
	t := &types.Term{
		ID:         yt.ID,
		Term:       yt.Term,
		Canonical:  yt.Canonical,
		Categories: yt.Categories,
	}
	if t.Canonical == "" {
		t.Canonical = sentence.New(t.Term).String()
	}
	return t
}
