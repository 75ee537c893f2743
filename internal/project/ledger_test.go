package project

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadMissingLedger(t *testing.T) {
	l, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if l.Has("ai") {
		t.Error("empty ledger reports ai as applied")
	}
}

func TestLedgerRoundTrip(t *testing.T) {
	root := t.TempDir()

	l := &Ledger{Name: "my-app", Auth: "better-auth"}
	l.Record("ui")
	l.Record("cmd")
	l.Record("ui") // recording twice is a no-op
	if err := l.Save(root); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(root, LedgerFile))
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"name: my-app", "auth: better-auth", "- ui", "- cmd"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("ledger file missing %q:\n%s", want, data)
		}
	}

	loaded, err := Load(root)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if loaded.Name != "my-app" || loaded.Auth != "better-auth" {
		t.Errorf("loaded = %+v", loaded)
	}
	if len(loaded.Extensions) != 2 {
		t.Errorf("Extensions = %v, want exactly ui and cmd", loaded.Extensions)
	}
	if !loaded.Has("ui") || !loaded.Has("cmd") || loaded.Has("restate") {
		t.Errorf("Has() results wrong for %v", loaded.Extensions)
	}
}

func TestLoadMalformedLedger(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, LedgerFile), []byte("extensions: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(root); err == nil {
		t.Error("Load() accepted malformed YAML")
	}
}
