package artifact

import (
	"fmt"
	"os"

	"github.com/Masterminds/semver/v3"
)

// ManifestFile is the dependency manifest filename at the project root. Its
// presence is how the add workflow detects an already-scaffolded project.
const ManifestFile = "package.json"

// Manifest wraps a package.json document. It operates on the generic JSON
// object so fields this tool does not know about (user-added scripts,
// engines, workspaces, ...) survive a load/save round trip untouched.
type Manifest struct {
	doc map[string]any
}

// NewManifest creates a fresh manifest with the standard skeleton: private
// ESM package at version 0.1.0 with empty script and dependency groups.
func NewManifest(name string) *Manifest {
	return &Manifest{doc: map[string]any{
		"name":            name,
		"version":         "0.1.0",
		"private":         true,
		"type":            "module",
		"scripts":         map[string]any{},
		"dependencies":    map[string]any{},
		"devDependencies": map[string]any{},
	}}
}

// LoadManifest reads and parses a package.json file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	doc, err := DecodeJSON(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &Manifest{doc: doc}, nil
}

// Save writes the manifest back with deterministic key ordering.
func (m *Manifest) Save(path string) error {
	data, err := EncodeJSON(m.doc)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// SetScript registers an npm script, replacing any existing entry.
func (m *Manifest) SetScript(name, command string) {
	if scripts, ok := m.doc["scripts"].(map[string]any); ok {
		scripts[name] = command
	}
}

// AddDependencies merges deps into the "dependencies" group, keeping any
// versions already present. Every fragment constraint must parse as a
// semver range; built-in fragments are validated here so a typo fails the
// run instead of producing a package.json npm rejects later.
func (m *Manifest) AddDependencies(deps map[string]string) error {
	return m.mergeDeps("dependencies", deps)
}

// AddDevDependencies merges deps into the "devDependencies" group with the
// same semantics as AddDependencies.
func (m *Manifest) AddDevDependencies(deps map[string]string) error {
	return m.mergeDeps("devDependencies", deps)
}

func (m *Manifest) mergeDeps(group string, deps map[string]string) error {
	fragment := make(map[string]any, len(deps))
	for name, constraint := range deps {
		if _, err := semver.NewConstraint(constraint); err != nil {
			return fmt.Errorf("dependency %s has invalid constraint %q: %w", name, constraint, err)
		}
		fragment[name] = constraint
	}
	return MergeGroup(m.doc, fragment, KeepExisting, group)
}

// Dependency returns the version constraint recorded for a package in the
// given group ("dependencies" or "devDependencies").
func (m *Manifest) Dependency(group, name string) (string, bool) {
	g, ok := m.doc[group].(map[string]any)
	if !ok {
		return "", false
	}
	v, ok := g[name].(string)
	return v, ok
}

// Name returns the package name.
func (m *Manifest) Name() string {
	name, _ := m.doc["name"].(string)
	return name
}

// Encode returns the serialized manifest without writing it.
func (m *Manifest) Encode() ([]byte, error) {
	return EncodeJSON(m.doc)
}
