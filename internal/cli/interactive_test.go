package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/t3mono-labs/t3mono/internal/scaffold"
)

func TestPromptOptions(t *testing.T) {
	t.Run("full session", func(t *testing.T) {
		// name, auth selection, then four extension toggles.
		in := strings.NewReader("blog\n2\ny\nn\n\ny\n")
		var out bytes.Buffer

		opts := scaffold.Options{Name: ".", Auth: scaffold.BetterAuth}
		if err := promptOptions(in, &out, &opts); err != nil {
			t.Fatalf("promptOptions() error: %v", err)
		}

		if opts.Name != "blog" {
			t.Errorf("Name = %q, want blog", opts.Name)
		}
		if opts.Auth != scaffold.NextAuth {
			t.Errorf("Auth = %q, want next-auth", opts.Auth)
		}
		if !opts.AI || opts.UI || opts.Restate || !opts.Cmd {
			t.Errorf("extensions = %+v, want ai and cmd only", opts)
		}

		prompts := out.String()
		for _, want := range []string{"Select auth provider:", "better-auth", "next-auth", "Extensions:"} {
			if !strings.Contains(prompts, want) {
				t.Errorf("output missing %q:\n%s", want, prompts)
			}
		}
	})

	t.Run("empty input keeps defaults", func(t *testing.T) {
		in := strings.NewReader("\n\n\n\n\n\n")
		var out bytes.Buffer

		opts := scaffold.Options{Name: ".", Auth: scaffold.BetterAuth, UI: true}
		if err := promptOptions(in, &out, &opts); err != nil {
			t.Fatalf("promptOptions() error: %v", err)
		}

		if opts.Name != "." {
			t.Errorf("Name = %q, want unchanged", opts.Name)
		}
		if opts.Auth != scaffold.BetterAuth {
			t.Errorf("Auth = %q, want default kept", opts.Auth)
		}
		if !opts.UI {
			t.Error("UI toggle lost its flag-set default")
		}
		if opts.AI || opts.Restate || opts.Cmd {
			t.Errorf("extensions = %+v, want defaults kept", opts)
		}
	})

	t.Run("named project skips the name prompt", func(t *testing.T) {
		in := strings.NewReader("1\nn\nn\nn\nn\n")
		var out bytes.Buffer

		opts := scaffold.Options{Name: "already-named", Auth: scaffold.BetterAuth}
		if err := promptOptions(in, &out, &opts); err != nil {
			t.Fatalf("promptOptions() error: %v", err)
		}
		if opts.Name != "already-named" {
			t.Errorf("Name = %q, want unchanged", opts.Name)
		}
		if strings.Contains(out.String(), "Project name") {
			t.Error("name prompt shown for a named project")
		}
	})
}

func TestSelectFromList(t *testing.T) {
	items := []string{"alpha", "beta", "gamma"}

	t.Run("picks by number", func(t *testing.T) {
		reader := bufio.NewReader(strings.NewReader("3\n"))
		idx, err := selectFromList(reader, &bytes.Buffer{}, "Pick:", items, 0)
		if err != nil {
			t.Fatalf("selectFromList() error: %v", err)
		}
		if idx != 2 {
			t.Errorf("idx = %d, want 2", idx)
		}
	})

	t.Run("empty picks default", func(t *testing.T) {
		reader := bufio.NewReader(strings.NewReader("\n"))
		idx, err := selectFromList(reader, &bytes.Buffer{}, "Pick:", items, 1)
		if err != nil {
			t.Fatalf("selectFromList() error: %v", err)
		}
		if idx != 1 {
			t.Errorf("idx = %d, want default 1", idx)
		}
	})

	t.Run("out of range fails", func(t *testing.T) {
		reader := bufio.NewReader(strings.NewReader("7\n"))
		if _, err := selectFromList(reader, &bytes.Buffer{}, "Pick:", items, 0); err == nil {
			t.Error("selectFromList() accepted out-of-range selection")
		}
	})
}

func TestConfirm(t *testing.T) {
	cases := []struct {
		input      string
		defaultYes bool
		want       bool
		wantErr    bool
	}{
		{"y\n", false, true, false},
		{"yes\n", false, true, false},
		{"N\n", true, false, false},
		{"\n", true, true, false},
		{"\n", false, false, false},
		{"maybe\n", false, false, true},
	}

	for _, tc := range cases {
		reader := bufio.NewReader(strings.NewReader(tc.input))
		got, err := confirm(reader, &bytes.Buffer{}, "Continue?", tc.defaultYes)
		if tc.wantErr {
			if err == nil {
				t.Errorf("confirm(%q) accepted invalid input", strings.TrimSpace(tc.input))
			}
			continue
		}
		if err != nil {
			t.Errorf("confirm(%q) error: %v", strings.TrimSpace(tc.input), err)
			continue
		}
		if got != tc.want {
			t.Errorf("confirm(%q, default=%v) = %v, want %v", strings.TrimSpace(tc.input), tc.defaultYes, got, tc.want)
		}
	}
}
