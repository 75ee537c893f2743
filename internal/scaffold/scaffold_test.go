package scaffold

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/t3mono-labs/t3mono/internal/artifact"
	"github.com/t3mono-labs/t3mono/internal/project"
)

// chdir stands in for t.Chdir, which needs Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}

func TestCreateBase(t *testing.T) {
	chdir(t, t.TempDir())

	res, err := Create(Options{Name: "my-app", Auth: BetterAuth})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if len(res.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", res.Warnings)
	}

	assertExists(t, "my-app",
		"package.json",
		"tsconfig.json",
		"next.config.ts",
		"src/app/layout.tsx",
		"src/app/api/trpc/[trpc]/route.ts",
		"src/server/auth.ts",
		"src/app/api/auth/[...all]/route.ts",
		"prisma/schema.prisma",
		"messages/en.json",
		"messages/de.json",
		".env.example",
		project.LedgerFile,
	)

	// Generated manifest passes schema validation.
	result, err := artifact.ValidateManifestFile(filepath.Join("my-app", "package.json"))
	if err != nil {
		t.Fatalf("validating manifest: %v", err)
	}
	if !result.Valid {
		t.Errorf("generated package.json invalid: %+v", result.Issues)
	}

	m, err := artifact.LoadManifest(filepath.Join("my-app", "package.json"))
	if err != nil {
		t.Fatal(err)
	}
	if m.Name() != "my-app" {
		t.Errorf("package name = %q, want my-app", m.Name())
	}
	if _, ok := m.Dependency("dependencies", "better-auth"); !ok {
		t.Error("better-auth dependency missing")
	}
	if _, ok := m.Dependency("dependencies", "next-auth"); ok {
		t.Error("next-auth dependency present for better-auth project")
	}

	schema := readFile(t, "my-app", "prisma/schema.prisma")
	for _, want := range []string{"model User {", "model Session {", "model Account {", "model Verification {"} {
		if !strings.Contains(schema, want) {
			t.Errorf("schema missing %q", want)
		}
	}

	ledger, err := project.Load("my-app")
	if err != nil {
		t.Fatal(err)
	}
	if ledger.Name != "my-app" || ledger.Auth != string(BetterAuth) {
		t.Errorf("ledger = %+v", ledger)
	}
	if len(ledger.Extensions) != 0 {
		t.Errorf("ledger extensions = %v, want none", ledger.Extensions)
	}
}

func TestCreateNextAuth(t *testing.T) {
	chdir(t, t.TempDir())

	if _, err := Create(Options{Name: "na-app", Auth: NextAuth}); err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	assertExists(t, "na-app",
		"src/app/api/auth/[...nextauth]/route.ts",
		"src/components/providers/session-provider.tsx",
	)

	m, err := artifact.LoadManifest(filepath.Join("na-app", "package.json"))
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := m.Dependency("dependencies", "next-auth"); !ok {
		t.Error("next-auth dependency missing")
	}

	schema := readFile(t, "na-app", "prisma/schema.prisma")
	if !strings.Contains(schema, "model VerificationToken {") {
		t.Error("schema missing NextAuth VerificationToken model")
	}
	env := readFile(t, "na-app", ".env.example")
	if !strings.Contains(env, "NEXTAUTH_SECRET") {
		t.Error(".env.example missing NEXTAUTH_SECRET")
	}
}

func TestCreateWithAllExtensions(t *testing.T) {
	chdir(t, t.TempDir())

	res, err := Create(Options{
		Name: "full",
		Auth: BetterAuth,
		AI:   true, UI: true, Restate: true, Cmd: true,
	})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if len(res.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", res.Warnings)
	}

	assertExists(t, "full",
		"src/ai/index.ts",
		"src/ai/core/providers/index.ts",
		"src/components/ui/index.ts",
		"src/components/ui/button.tsx",
		"restate/docker-compose.yml",
		"restate/services/src/embedding.ts",
		"src/components/layout/CommandIsland.tsx",
		"src/server/api/routers/chat.ts",
		"src/server/chat/llm.ts",
	)

	// Cmd rewires tRPC for auth and patches the schema.
	trpc := readFile(t, "full", "src/server/api/trpc.ts")
	if !strings.Contains(trpc, "protectedProcedure") {
		t.Error("trpc.ts not replaced with auth-aware setup")
	}
	schema := readFile(t, "full", "prisma/schema.prisma")
	for _, want := range []string{
		`previewFeatures = ["postgresqlExtensions"]`,
		"extensions = [vector]",
		"chatThreads     ChatThread[]",
		"model ChatThread {",
		"model AIDocSession {",
		"enum ProcessingStatus {",
	} {
		if !strings.Contains(schema, want) {
			t.Errorf("schema missing %q", want)
		}
	}

	// Cmd merges its namespaces into both locale bundles.
	for _, locale := range []string{"en", "de"} {
		bundle := readFile(t, "full", "messages/"+locale+".json")
		for _, ns := range []string{`"commandIsland"`, `"tables"`, `"docs"`, `"chat"`} {
			if !strings.Contains(bundle, ns) {
				t.Errorf("%s bundle missing namespace %s", locale, ns)
			}
		}
	}

	m, err := artifact.LoadManifest(filepath.Join("full", "package.json"))
	if err != nil {
		t.Fatal(err)
	}
	for _, dep := range []string{"langchain", "next-themes", "@anthropic-ai/sdk", "@aws-sdk/client-s3"} {
		if _, ok := m.Dependency("dependencies", dep); !ok {
			t.Errorf("dependency %s missing from full project", dep)
		}
	}

	ledger, err := project.Load("full")
	if err != nil {
		t.Fatal(err)
	}
	for _, ext := range Extensions {
		if !ledger.Has(string(ext)) {
			t.Errorf("ledger missing extension %s", ext)
		}
	}
}

func TestCreateRefusesNonEmptyDir(t *testing.T) {
	chdir(t, t.TempDir())

	if err := os.MkdirAll("taken", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("taken", "keep.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Create(Options{Name: "taken", Auth: BetterAuth})
	if err == nil {
		t.Fatal("Create() succeeded into a non-empty directory")
	}
	if !strings.Contains(err.Error(), "not empty") {
		t.Errorf("error = %v, want non-empty refusal", err)
	}

	// Nothing was written.
	entries, err := os.ReadDir("taken")
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("target dir modified: %v", entries)
	}
}

func TestApply(t *testing.T) {
	chdir(t, t.TempDir())

	if _, err := Create(Options{Name: "proj", Auth: BetterAuth}); err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	t.Run("adds extension once", func(t *testing.T) {
		if err := Apply("proj", ExtAI); err != nil {
			t.Fatalf("Apply() error: %v", err)
		}
		assertExists(t, "proj", "src/ai/index.ts")

		m, err := artifact.LoadManifest(filepath.Join("proj", "package.json"))
		if err != nil {
			t.Fatal(err)
		}
		if _, ok := m.Dependency("dependencies", "langchain"); !ok {
			t.Error("langchain dependency not merged")
		}

		err = Apply("proj", ExtAI)
		if err == nil {
			t.Fatal("second Apply() succeeded, want already-applied refusal")
		}
		if !strings.Contains(err.Error(), "already applied") {
			t.Errorf("error = %v", err)
		}
	})

	t.Run("keeps user-pinned versions", func(t *testing.T) {
		path := filepath.Join("proj", "package.json")
		m, err := artifact.LoadManifest(path)
		if err != nil {
			t.Fatal(err)
		}
		if err := m.AddDependencies(map[string]string{"next-themes": "^0.1.0"}); err != nil {
			t.Fatal(err)
		}
		if err := m.Save(path); err != nil {
			t.Fatal(err)
		}

		if err := Apply("proj", ExtUI); err != nil {
			t.Fatalf("Apply() error: %v", err)
		}

		m, err = artifact.LoadManifest(path)
		if err != nil {
			t.Fatal(err)
		}
		if v, _ := m.Dependency("dependencies", "next-themes"); v != "^0.1.0" {
			t.Errorf("next-themes = %q, want user pin kept", v)
		}
	})

	t.Run("cmd patches schema and bundles", func(t *testing.T) {
		if err := Apply("proj", ExtCmd); err != nil {
			t.Fatalf("Apply() error: %v", err)
		}
		schema := readFile(t, "proj", "prisma/schema.prisma")
		if !strings.Contains(schema, "model ChatThread {") {
			t.Error("schema missing ChatThread model")
		}
		bundle := readFile(t, "proj", "messages/de.json")
		if !strings.Contains(bundle, "KI-Assistent") {
			t.Error("German bundle missing cmd translations")
		}
	})
}

func TestParseExtension(t *testing.T) {
	for _, name := range []string{"ai", "ui", "restate", "cmd"} {
		if _, err := ParseExtension(name); err != nil {
			t.Errorf("ParseExtension(%q) error: %v", name, err)
		}
	}

	_, err := ParseExtension("graphql")
	if err == nil {
		t.Fatal("ParseExtension() accepted unknown extension")
	}
	if !strings.Contains(err.Error(), "ai, ui, restate, cmd") {
		t.Errorf("error %q does not list valid extensions", err)
	}
}

func TestParseAuthProvider(t *testing.T) {
	for _, name := range []string{"better-auth", "next-auth"} {
		if _, err := ParseAuthProvider(name); err != nil {
			t.Errorf("ParseAuthProvider(%q) error: %v", name, err)
		}
	}
	if _, err := ParseAuthProvider("clerk"); err == nil {
		t.Error("ParseAuthProvider() accepted unknown provider")
	}
}

func TestProjectName(t *testing.T) {
	cases := map[string]string{
		".":            "my-app",
		"my-project":   "my-project",
		"apps/web-app": "apps-web-app",
	}
	for in, want := range cases {
		if got := projectName(in); got != want {
			t.Errorf("projectName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestHasManifest(t *testing.T) {
	dir := t.TempDir()
	if HasManifest(dir) {
		t.Error("HasManifest() true for empty dir")
	}
	if err := os.WriteFile(filepath.Join(dir, artifact.ManifestFile), []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}
	if !HasManifest(dir) {
		t.Error("HasManifest() false with package.json present")
	}
}

func assertExists(t *testing.T, root string, paths ...string) {
	t.Helper()
	for _, p := range paths {
		if _, err := os.Stat(filepath.Join(root, filepath.FromSlash(p))); err != nil {
			t.Errorf("expected file %s: %v", p, err)
		}
	}
}

func readFile(t *testing.T, root, relative string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(relative)))
	if err != nil {
		t.Fatalf("reading %s: %v", relative, err)
	}
	return string(data)
}
