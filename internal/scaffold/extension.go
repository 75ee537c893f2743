package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/t3mono-labs/t3mono/internal/artifact"
	"github.com/t3mono-labs/t3mono/internal/project"
)

// Extension identifies an optional add-on module.
type Extension string

// The closed set of known extensions.
const (
	ExtAI      Extension = "ai"
	ExtUI      Extension = "ui"
	ExtRestate Extension = "restate"
	ExtCmd     Extension = "cmd"
)

// Extensions lists all known extensions in scaffolding order.
var Extensions = []Extension{ExtAI, ExtUI, ExtRestate, ExtCmd}

// Description returns the human-readable summary shown in prompts and help.
func (e Extension) Description() string {
	switch e {
	case ExtAI:
		return "LangChain AI agents framework"
	case ExtUI:
		return "UI component library"
	case ExtRestate:
		return "Restate durable workflow services"
	case ExtCmd:
		return "CommandIsland AI layer (chat, tables, docs, split-view)"
	default:
		return string(e)
	}
}

// UnknownExtensionError reports an extension identifier outside the closed
// set, naming the valid choices.
type UnknownExtensionError struct {
	Name string
}

func (e *UnknownExtensionError) Error() string {
	valid := make([]string, len(Extensions))
	for i, ext := range Extensions {
		valid[i] = string(ext)
	}
	return fmt.Sprintf("unknown extension %q: valid extensions are %s", e.Name, strings.Join(valid, ", "))
}

// ParseExtension validates an extension identifier from user input.
func ParseExtension(name string) (Extension, error) {
	for _, ext := range Extensions {
		if string(ext) == name {
			return ext, nil
		}
	}
	return "", &UnknownExtensionError{Name: name}
}

// HasManifest reports whether root contains a dependency manifest, the
// signal that a base project has been scaffolded there.
func HasManifest(root string) bool {
	_, err := os.Stat(filepath.Join(root, artifact.ManifestFile))
	return err == nil
}

// Apply retrofits one extension onto an existing project: it runs the
// extension's scaffolding routine, merges its dependency fragments into the
// project manifest, and records the extension in the project ledger. The
// caller is responsible for the base-project precondition (HasManifest);
// Apply enforces apply-at-most-once via the ledger.
func Apply(root string, ext Extension) error {
	ledger, err := project.Load(root)
	if err != nil {
		return err
	}
	if ledger.Has(string(ext)) {
		return fmt.Errorf("extension %q is already applied to this project", ext)
	}

	switch ext {
	case ExtAI:
		err = scaffoldAI(root)
	case ExtUI:
		err = scaffoldUI(root)
	case ExtRestate:
		err = scaffoldRestate(root)
	case ExtCmd:
		err = scaffoldCmd(root)
	default:
		return &UnknownExtensionError{Name: string(ext)}
	}
	if err != nil {
		return err
	}

	if err := mergeExtensionDeps(root, ext); err != nil {
		return err
	}

	ledger.Record(string(ext))
	return ledger.Save(root)
}

// mergeExtensionDeps merges the extension's dependency fragments into the
// existing package.json. Versions already pinned by the user are kept.
func mergeExtensionDeps(root string, ext Extension) error {
	deps, devDeps := dependencyFragments(ext)
	if len(deps) == 0 && len(devDeps) == 0 {
		return nil
	}

	manifestPath := filepath.Join(root, artifact.ManifestFile)
	m, err := artifact.LoadManifest(manifestPath)
	if err != nil {
		return err
	}
	if err := m.AddDependencies(deps); err != nil {
		return err
	}
	if err := m.AddDevDependencies(devDeps); err != nil {
		return err
	}
	return m.Save(manifestPath)
}
