// Package project tracks per-project scaffolding state. The ledger records
// which extensions have already been applied so the add workflow stays
// apply-at-most-once even for artifacts whose patching is order-sensitive.
package project

import (
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"
)

// LedgerFile is the state filename at the scaffolded project root.
const LedgerFile = ".t3mono.yaml"

// Ledger represents the .t3mono.yaml state file.
type Ledger struct {
	Name       string   `yaml:"name"`
	Auth       string   `yaml:"auth"`
	Extensions []string `yaml:"extensions"`
}

// Load reads and parses the ledger at the given project root. A missing
// file is not an error: projects scaffolded before the ledger existed get
// an empty one, and the first Save creates the file.
func Load(root string) (*Ledger, error) {
	data, err := os.ReadFile(filepath.Join(root, LedgerFile))
	if err != nil {
		if os.IsNotExist(err) {
			return &Ledger{}, nil
		}
		return nil, fmt.Errorf("reading %s: %w", LedgerFile, err)
	}

	var l Ledger
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", LedgerFile, err)
	}
	return &l, nil
}

// Save writes the ledger back to the project root.
func (l *Ledger) Save(root string) error {
	data, err := yaml.Marshal(l)
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", LedgerFile, err)
	}
	if err := os.WriteFile(filepath.Join(root, LedgerFile), data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", LedgerFile, err)
	}
	return nil
}

// Has reports whether the named extension is recorded as applied.
func (l *Ledger) Has(extension string) bool {
	for _, e := range l.Extensions {
		if e == extension {
			return true
		}
	}
	return false
}

// Record marks an extension as applied. Recording twice is a no-op.
func (l *Ledger) Record(extension string) {
	if !l.Has(extension) {
		l.Extensions = append(l.Extensions, extension)
	}
}
