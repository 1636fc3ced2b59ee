package lexicon

// yamlTerm is the intermediate struct for parsing term YAML files.
type yamlTerm struct {
	ID         string   `yaml:"id"`
	Term       string   `yaml:"term"`
	Canonical  string   `yaml:"canonical,omitempty"`
	Categories []string `yaml:"categories,omitempty"`
}

// yamlTermsFile is the top-level structure of a terms YAML file:
// a "terms" array at the top level.
type yamlTermsFile struct {
	Terms []yamlTerm `yaml:"terms"`
}
