package scaffold

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// writeFile writes content to root/relative, creating parent directories as
// needed. Writes are whole-file replace-or-create; there is no partial-write
// recovery.
func writeFile(root, relative, content string) error {
	full := filepath.Join(root, filepath.FromSlash(relative))

	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", relative, err)
	}
	if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", relative, err)
	}
	return nil
}

// copyTemplateTree copies an embedded template tree rooted at prefix into
// destDir, preserving relative paths.
func copyTemplateTree(prefix, destDir string) error {
	return fs.WalkDir(templateFS, prefix, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("template tree %q: %w", prefix, err)
		}
		if d.IsDir() {
			return nil
		}

		relative := strings.TrimPrefix(strings.TrimPrefix(path, prefix), "/")
		dest := filepath.Join(destDir, filepath.FromSlash(relative))

		data, err := fs.ReadFile(templateFS, path)
		if err != nil {
			return fmt.Errorf("reading template %s: %w", path, err)
		}
		if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
			return fmt.Errorf("creating directory for %s: %w", dest, err)
		}
		if err := os.WriteFile(dest, data, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", dest, err)
		}
		return nil
	})
}

// createProjectDirs creates the standard directory skeleton for a new
// project.
func createProjectDirs(root string) error {
	dirs := []string{
		"src/app/api/trpc/[trpc]",
		"src/server/api",
		"src/lib",
		"src/components",
		"prisma",
		"public",
		"messages",
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(filepath.Join(root, filepath.FromSlash(dir)), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}
	return nil
}
