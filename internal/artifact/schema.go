package artifact

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

// Prisma schema files are a flat sequence of named blocks (generator,
// datasource, model, enum) with comments and blank lines in between. The
// scaffolder needs three edits: flip properties inside generator/datasource
// blocks, inject fields into an existing model, and append whole new blocks.
// All three work against this parsed representation and fail loudly when an
// expected block is missing, instead of string-replacing and silently doing
// nothing on a non-match.

var blockStart = regexp.MustCompile(`^(model|enum|generator|datasource|type|view)\s+(\w+)\s*\{\s*$`)

// Block is one named schema block. Body holds the verbatim lines between
// the braces, indentation included.
type Block struct {
	Kind string
	Name string
	Body []string
}

// section pairs a block with the verbatim text (comments, blank lines)
// that precedes it. A section with a nil block carries trailing text.
type section struct {
	text  []string
	block *Block
}

// Schema is a parsed Prisma schema definition.
type Schema struct {
	sections []*section
}

// BlockNotFoundError reports an edit aimed at a block the schema does not
// contain. Callers treat this as a fatal precondition failure: the base
// schema was not in the shape the extension expects.
type BlockNotFoundError struct {
	Kind string
	Name string
}

func (e *BlockNotFoundError) Error() string {
	return fmt.Sprintf("schema has no %s block named %q", e.Kind, e.Name)
}

// ParseSchema parses schema source into its block structure. Text outside
// blocks is preserved verbatim, so Render round-trips untouched files.
func ParseSchema(src string) (*Schema, error) {
	lines := strings.Split(src, "\n")
	// A trailing newline produces one empty trailing element; drop it so
	// Render can re-append a single final newline.
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}

	s := &Schema{}
	cur := &section{}

	for i := 0; i < len(lines); i++ {
		line := lines[i]
		m := blockStart.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			cur.text = append(cur.text, line)
			continue
		}

		block := &Block{Kind: m[1], Name: m[2]}
		closed := false
		for i++; i < len(lines); i++ {
			if strings.TrimSpace(lines[i]) == "}" {
				closed = true
				break
			}
			block.Body = append(block.Body, lines[i])
		}
		if !closed {
			return nil, fmt.Errorf("unterminated %s block %q", block.Kind, block.Name)
		}

		cur.block = block
		s.sections = append(s.sections, cur)
		cur = &section{}
	}

	if len(cur.text) > 0 {
		s.sections = append(s.sections, cur)
	}

	return s, nil
}

// LoadSchema reads and parses a schema file.
func LoadSchema(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	s, err := ParseSchema(string(data))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return s, nil
}

// Save renders the schema and writes it back.
func (s *Schema) Save(path string) error {
	if err := os.WriteFile(path, []byte(s.Render()), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Render reconstructs schema source from the parsed representation.
func (s *Schema) Render() string {
	var b strings.Builder
	for _, sec := range s.sections {
		for _, line := range sec.text {
			b.WriteString(line)
			b.WriteByte('\n')
		}
		if sec.block != nil {
			fmt.Fprintf(&b, "%s %s {\n", sec.block.Kind, sec.block.Name)
			for _, line := range sec.block.Body {
				b.WriteString(line)
				b.WriteByte('\n')
			}
			b.WriteString("}\n")
		}
	}
	return b.String()
}

// Block returns the named block, if present.
func (s *Schema) Block(kind, name string) (*Block, bool) {
	for _, sec := range s.sections {
		if sec.block != nil && sec.block.Kind == kind && sec.block.Name == name {
			return sec.block, true
		}
	}
	return nil, false
}

// SetProperty sets a `key = value` property inside a generator or datasource
// block, replacing the existing entry or appending a new one, and realigns
// the `=` column across the block's property lines.
func (s *Schema) SetProperty(kind, name, key, value string) error {
	block, ok := s.Block(kind, name)
	if !ok {
		return &BlockNotFoundError{Kind: kind, Name: name}
	}

	props, rest := splitProperties(block.Body)
	replaced := false
	for i := range props {
		if props[i].key == key {
			props[i].value = value
			replaced = true
		}
	}
	if !replaced {
		props = append(props, property{key: key, value: value})
	}

	width := 0
	for _, p := range props {
		if len(p.key) > width {
			width = len(p.key)
		}
	}

	body := make([]string, 0, len(props)+len(rest))
	for _, p := range props {
		body = append(body, fmt.Sprintf("  %-*s = %s", width, p.key, p.value))
	}
	body = append(body, rest...)
	block.Body = body

	return nil
}

type property struct {
	key   string
	value string
}

// splitProperties separates `key = value` lines from everything else in a
// block body. Ordering within each group is preserved.
func splitProperties(body []string) ([]property, []string) {
	var props []property
	var rest []string
	for _, line := range body {
		key, value, ok := strings.Cut(line, "=")
		key = strings.TrimSpace(key)
		if ok && key != "" && !strings.ContainsAny(key, " \t") {
			props = append(props, property{key: key, value: strings.TrimSpace(value)})
			continue
		}
		rest = append(rest, line)
	}
	return props, rest
}

// AppendToModel injects field definitions at the end of an existing model's
// body. A field whose name (first token) already appears in the model is
// skipped, so re-applying the same injection is a no-op. Returns
// *BlockNotFoundError when the model is absent.
func (s *Schema) AppendToModel(name string, fields []string) error {
	block, ok := s.Block("model", name)
	if !ok {
		return &BlockNotFoundError{Kind: "model", Name: name}
	}

	existing := make(map[string]bool)
	for _, line := range block.Body {
		if f := strings.Fields(line); len(f) > 0 {
			existing[f[0]] = true
		}
	}

	var toAdd []string
	for _, field := range fields {
		f := strings.Fields(field)
		if len(f) == 0 || existing[f[0]] {
			continue
		}
		existing[f[0]] = true
		toAdd = append(toAdd, "  "+strings.TrimSpace(field))
	}
	if len(toAdd) == 0 {
		return nil
	}

	if len(block.Body) > 0 && strings.TrimSpace(block.Body[len(block.Body)-1]) != "" {
		block.Body = append(block.Body, "")
	}
	block.Body = append(block.Body, toAdd...)

	return nil
}

// AddBlocks parses fragment as schema source and appends every block whose
// (kind, name) is not already present, together with the comment lines
// preceding it. Blocks that already exist are skipped wholesale, which makes
// fragment appension idempotent: the block name is the sentinel. Returns the
// names of the blocks actually added.
func (s *Schema) AddBlocks(fragment string) ([]string, error) {
	frag, err := ParseSchema(fragment)
	if err != nil {
		return nil, fmt.Errorf("parsing schema fragment: %w", err)
	}

	var added []string
	for _, sec := range frag.sections {
		if sec.block == nil {
			// Trailing text travels only with an addition, so re-runs do
			// not pile up banner comments.
			if len(added) > 0 {
				s.sections = append(s.sections, sec)
			}
			continue
		}
		if _, exists := s.Block(sec.block.Kind, sec.block.Name); exists {
			continue
		}
		s.sections = append(s.sections, sec)
		added = append(added, sec.block.Kind+" "+sec.block.Name)
	}

	return added, nil
}

// AppendRaw appends text verbatim to the end of the schema. This mirrors the
// historical appension behavior and is NOT idempotent: appending the same
// text twice duplicates it. Prefer AddBlocks; this exists for fragments that
// are not parseable block syntax.
func (s *Schema) AppendRaw(text string) {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	s.sections = append(s.sections, &section{text: lines})
}
