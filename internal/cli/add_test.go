package cli

import (
	"bytes"
	"os"
	"strings"
	"testing"
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

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestAddRequiresManifest(t *testing.T) {
	chdir(t, t.TempDir())

	_, err := execute(t, "add", "ai")
	if err == nil {
		t.Fatal("add succeeded outside a scaffolded project")
	}
	if !strings.Contains(err.Error(), "no package.json found") {
		t.Errorf("error = %v, want package.json precondition", err)
	}

	// The precondition fires before any writes.
	entries, readErr := os.ReadDir(".")
	if readErr != nil {
		t.Fatal(readErr)
	}
	if len(entries) != 0 {
		t.Errorf("working directory modified: %v", entries)
	}
}

func TestAddUnknownExtension(t *testing.T) {
	chdir(t, t.TempDir())

	_, err := execute(t, "add", "graphql")
	if err == nil {
		t.Fatal("add accepted unknown extension")
	}
	if !strings.Contains(err.Error(), "valid extensions are") {
		t.Errorf("error = %v, want list of valid extensions", err)
	}
}
