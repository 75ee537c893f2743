package artifact

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/language"
)

// Bundle is a localized message bundle: namespace key → nested translations.
// One bundle file exists per supported locale (messages/en.json, ...).
type Bundle map[string]any

// LoadBundle reads and parses a message bundle file.
func LoadBundle(path string) (Bundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	doc, err := DecodeJSON(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return Bundle(doc), nil
}

// MergeNamespaces merges fragment into the bundle. Collisions are resolved
// per top-level namespace: the fragment's namespace wins wholesale, keys
// below it are not deep-merged. Namespaces of the base absent from the
// fragment are unchanged.
func (b Bundle) MergeNamespaces(fragment Bundle) {
	// Merging at the root of an existing object cannot fail.
	_ = MergeGroup(map[string]any(b), map[string]any(fragment), Overwrite)
}

// Save writes the bundle back with deterministic key ordering.
func (b Bundle) Save(path string) error {
	data, err := EncodeJSON(map[string]any(b))
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// BundleLocale derives and validates the BCP-47 locale tag from a bundle
// file name such as "messages/de.json".
func BundleLocale(path string) (language.Tag, error) {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	tag, err := language.Parse(base)
	if err != nil {
		return language.Und, fmt.Errorf("bundle %s has no valid locale tag: %w", path, err)
	}
	return tag, nil
}

// MergeBundleFile loads the bundle at path, merges the JSON fragment into it
// at namespace granularity, and writes it back. The bundle must already
// exist; base scaffolding seeds an empty bundle per locale.
func MergeBundleFile(path string, fragmentJSON []byte) error {
	if _, err := BundleLocale(path); err != nil {
		return err
	}

	base, err := LoadBundle(path)
	if err != nil {
		return err
	}

	fragment, err := DecodeJSON(fragmentJSON)
	if err != nil {
		return fmt.Errorf("parsing message fragment for %s: %w", path, err)
	}

	base.MergeNamespaces(Bundle(fragment))
	return base.Save(path)
}
