package scaffold

import (
	"fmt"
	"os/exec"
)

// initGit initializes a git repository at root and writes the standard
// .gitignore. A missing git binary is reported as a warning by the caller,
// not a fatal error; the scaffolded project is usable without it.
func initGit(root string) error {
	if _, err := exec.LookPath("git"); err != nil {
		return fmt.Errorf("git not found in PATH: %w", err)
	}

	cmd := exec.Command("git", "init")
	cmd.Dir = root
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("git init failed: %w\n%s", err, string(output))
	}

	return writeFile(root, ".gitignore", gitignore)
}

const gitignore = `# Dependencies
node_modules/
.pnpm-store/

# Build outputs
.next/
out/
dist/
build/

# Environment
.env
.env.local
.env.*.local

# IDE
.idea/
.vscode/
*.swp
*.swo

# OS
.DS_Store
Thumbs.db

# Logs
*.log
npm-debug.log*
yarn-debug.log*
yarn-error.log*

# Prisma
prisma/*.db
prisma/*.db-journal

# TypeScript
*.tsbuildinfo

# Testing
coverage/
.nyc_output/
`
