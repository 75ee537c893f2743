package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/t3mono-labs/t3mono/internal/scaffold"
	"github.com/t3mono-labs/t3mono/internal/ui/style"
)

// promptOptions walks the user through project options with numbered menus
// and yes/no toggles on the command's input/output streams. Flag values
// already set become the defaults, so -i composes with other flags.
func promptOptions(r io.Reader, w io.Writer, opts *scaffold.Options) error {
	reader := bufio.NewReader(r)

	if opts.Name == "." {
		fmt.Fprintf(w, "Project name [%s]: ", style.Dim.Render("current directory"))
		line, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("reading project name: %w", err)
		}
		if name := strings.TrimSpace(line); name != "" {
			opts.Name = name
		}
	}

	providers := make([]string, len(scaffold.AuthProviders))
	defaultIdx := 0
	for i, p := range scaffold.AuthProviders {
		providers[i] = string(p)
		if p == opts.Auth {
			defaultIdx = i
		}
	}
	idx, err := selectFromList(reader, w, "Select auth provider:", providers, defaultIdx)
	if err != nil {
		return err
	}
	opts.Auth = scaffold.AuthProviders[idx]

	toggles := []struct {
		ext   scaffold.Extension
		value *bool
	}{
		{scaffold.ExtAI, &opts.AI},
		{scaffold.ExtUI, &opts.UI},
		{scaffold.ExtRestate, &opts.Restate},
		{scaffold.ExtCmd, &opts.Cmd},
	}
	fmt.Fprintf(w, "\n%s\n", style.Bold.Render("Extensions:"))
	for _, t := range toggles {
		on, err := confirm(reader, w,
			fmt.Sprintf("  Include %s (%s)?", t.ext, style.Dim.Render(t.ext.Description())),
			*t.value)
		if err != nil {
			return err
		}
		*t.value = on
	}

	return nil
}

// selectFromList presents a numbered list and returns the selected index.
// Empty input picks the default.
func selectFromList(reader *bufio.Reader, w io.Writer, prompt string, items []string, defaultIdx int) (int, error) {
	fmt.Fprintf(w, "\n%s\n", prompt)
	for i, item := range items {
		marker := " "
		if i == defaultIdx {
			marker = style.Success.Render("*")
		}
		fmt.Fprintf(w, " %s %d) %s\n", marker, i+1, item)
	}
	fmt.Fprintf(w, "Enter number [1-%d, default %d]: ", len(items), defaultIdx+1)

	line, err := reader.ReadString('\n')
	if err != nil {
		return 0, fmt.Errorf("reading selection: %w", err)
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return defaultIdx, nil
	}

	num, err := strconv.Atoi(line)
	if err != nil || num < 1 || num > len(items) {
		return 0, fmt.Errorf("invalid selection %q: choose 1-%d", line, len(items))
	}
	return num - 1, nil
}

// confirm asks a yes/no question; empty input picks the default.
func confirm(reader *bufio.Reader, w io.Writer, prompt string, defaultYes bool) (bool, error) {
	hint := "y/N"
	if defaultYes {
		hint = "Y/n"
	}
	fmt.Fprintf(w, "%s [%s]: ", prompt, hint)

	line, err := reader.ReadString('\n')
	if err != nil {
		return false, fmt.Errorf("reading confirmation: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "":
		return defaultYes, nil
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return false, fmt.Errorf("invalid answer %q: enter y or n", strings.TrimSpace(line))
	}
}
