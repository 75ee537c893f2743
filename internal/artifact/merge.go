package artifact

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Strategy selects how MergeGroup treats a key present in both the base
// group and the fragment.
type Strategy int

const (
	// KeepExisting inserts only keys absent from the base group. Used for
	// dependency groups: an extension never downgrades or upgrades a
	// version the user already pinned.
	KeepExisting Strategy = iota

	// Overwrite replaces colliding keys with the fragment's value. Used for
	// message-bundle namespaces, where the fragment is authoritative for
	// the whole namespace (no deep merge below that level).
	Overwrite
)

// String returns the strategy name for error messages and logs.
func (s Strategy) String() string {
	switch s {
	case KeepExisting:
		return "keep-existing"
	case Overwrite:
		return "overwrite"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// MissingGroupError reports that the object a merge was aimed at does not
// exist in the base document. The base artifact must be well-formed before
// any extension is applied; this is a hard error, not a cue to create the
// group.
type MissingGroupError struct {
	Path string
}

func (e *MissingGroupError) Error() string {
	if e.Path == "" {
		return "artifact is not a JSON object"
	}
	return fmt.Sprintf("artifact has no %q group", e.Path)
}

// MergeGroup merges fragment into the object found at path inside doc,
// according to the given strategy. An empty path merges at the document
// root. Every path segment must already resolve to a JSON object; a missing
// or non-object segment yields *MissingGroupError.
//
// Both strategies are idempotent: merging the same fragment twice produces
// the same document as merging it once. Keys of the base group absent from
// the fragment are never touched.
func MergeGroup(doc map[string]any, fragment map[string]any, strat Strategy, path ...string) error {
	group := doc
	for i, seg := range path {
		child, ok := group[seg].(map[string]any)
		if !ok {
			return &MissingGroupError{Path: strings.Join(path[:i+1], ".")}
		}
		group = child
	}

	for key, value := range fragment {
		if _, exists := group[key]; exists && strat == KeepExisting {
			continue
		}
		group[key] = value
	}

	return nil
}

// EncodeJSON serializes a document with two-space indentation and a trailing
// newline. Go sorts map keys during marshaling, so output is deterministic
// and diff-friendly across runs.
func EncodeJSON(doc map[string]any) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding artifact: %w", err)
	}
	return append(data, '\n'), nil
}

// DecodeJSON parses raw JSON into a generic document. The top level must be
// an object.
func DecodeJSON(data []byte) (map[string]any, error) {
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing artifact: %w", err)
	}
	return doc, nil
}
