package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/t3mono-labs/t3mono/internal/artifact"
	"github.com/t3mono-labs/t3mono/internal/project"
)

// Options configures a full project scaffold.
type Options struct {
	// Name is the target directory, "." for the current directory.
	Name string

	Auth AuthProvider

	AI      bool
	UI      bool
	Restate bool
	Cmd     bool

	// InitGit controls git repository initialization. Failure to init is
	// reported as a warning in the Result, never a fatal error.
	InitGit bool
}

// Enabled returns the selected extensions in scaffolding order. Cmd comes
// last: its tRPC and schema patches build on the auth wiring the base
// provides.
func (o Options) Enabled() []Extension {
	var enabled []Extension
	for _, ext := range []struct {
		on  bool
		ext Extension
	}{
		{o.AI, ExtAI},
		{o.UI, ExtUI},
		{o.Restate, ExtRestate},
		{o.Cmd, ExtCmd},
	} {
		if ext.on {
			enabled = append(enabled, ext.ext)
		}
	}
	return enabled
}

// Result reports what a Create call produced.
type Result struct {
	// Root is the absolute-or-relative path the project was written to.
	Root string

	// Steps lists the completed scaffolding stages in order, for display.
	Steps []string

	// Warnings holds non-fatal problems (git unavailable, manifest
	// validation issues). The project is complete despite them.
	Warnings []string
}

// Create scaffolds a complete project at opts.Name. An existing non-empty
// target directory is refused before anything is written; scaffolding into
// "." is allowed regardless, matching the expectation that users run it
// inside a directory they just made.
func Create(opts Options) (*Result, error) {
	root := opts.Name
	if root != "." {
		if err := ensureTargetFree(root); err != nil {
			return nil, err
		}
	}

	res := &Result{Root: root}
	step := func(s string) { res.Steps = append(res.Steps, s) }

	if err := createProjectDirs(root); err != nil {
		return nil, err
	}
	if err := scaffoldBase(root); err != nil {
		return nil, err
	}
	step("base project")

	if err := scaffoldAuth(root, opts.Auth); err != nil {
		return nil, err
	}
	step(fmt.Sprintf("auth (%s)", opts.Auth))

	enabled := opts.Enabled()
	for _, ext := range enabled {
		var err error
		switch ext {
		case ExtAI:
			err = scaffoldAI(root)
		case ExtUI:
			err = scaffoldUI(root)
		case ExtRestate:
			err = scaffoldRestate(root)
		case ExtCmd:
			err = scaffoldCmd(root)
		}
		if err != nil {
			return nil, fmt.Errorf("scaffolding %s extension: %w", ext, err)
		}
		step(string(ext) + " extension")
	}

	m, err := finalizeManifest(root, opts.Name, opts.Auth, enabled)
	if err != nil {
		return nil, err
	}
	step("dependency manifest")

	ledger := &project.Ledger{
		Name: projectName(opts.Name),
		Auth: string(opts.Auth),
	}
	for _, ext := range enabled {
		ledger.Record(string(ext))
	}
	if err := ledger.Save(root); err != nil {
		return nil, err
	}

	if opts.InitGit {
		if err := initGit(root); err != nil {
			res.Warnings = append(res.Warnings, fmt.Sprintf("skipping git init: %v", err))
		} else {
			step("git repository")
		}
	}

	if raw, err := m.Encode(); err == nil {
		if vr, err := artifact.ValidateManifest(raw); err == nil && !vr.Valid {
			for _, issue := range vr.Issues {
				res.Warnings = append(res.Warnings,
					fmt.Sprintf("%s validation: %s: %s", artifact.ManifestFile, issue.Path, issue.Message))
			}
		}
	}

	return res, nil
}

// ensureTargetFree refuses a target directory that already has contents.
func ensureTargetFree(root string) error {
	entries, err := os.ReadDir(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("inspecting %s: %w", root, err)
	}
	if len(entries) > 0 {
		abs, absErr := filepath.Abs(root)
		if absErr != nil {
			abs = root
		}
		return fmt.Errorf("directory %s already exists and is not empty", abs)
	}
	return nil
}
