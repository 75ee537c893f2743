package cli

import (
	"fmt"
	"io"

	"github.com/t3mono-labs/t3mono/internal/scaffold"
	"github.com/t3mono-labs/t3mono/internal/ui/style"
)

// runCreate scaffolds a project and prints the progress report and next
// steps.
func runCreate(w io.Writer, opts scaffold.Options) error {
	fmt.Fprintf(w, "%s Scaffolding %s\n",
		style.Action.Render(style.Plus),
		style.Path.Render(opts.Name))

	res, err := scaffold.Create(opts)
	if err != nil {
		return err
	}

	for _, step := range res.Steps {
		fmt.Fprintf(w, "  %s %s\n", style.Success.Render(style.Check), step)
	}
	for _, warning := range res.Warnings {
		fmt.Fprintf(w, "  %s %s\n", style.Warn.Render("!"), warning)
	}

	fmt.Fprintf(w, "\n%s Project ready\n\n", style.Success.Render(style.Check))
	fmt.Fprintf(w, "%s\n", style.Bold.Render("Next steps:"))
	if opts.Name != "." {
		fmt.Fprintf(w, "  %s %s\n", style.Dot, style.Command.Render("cd "+opts.Name))
	}
	fmt.Fprintf(w, "  %s %s\n", style.Dot, style.Command.Render("pnpm install"))
	fmt.Fprintf(w, "  %s %s %s\n", style.Dot, style.Command.Render("cp .env.example .env"),
		style.Dim.Render("(then fill in DATABASE_URL)"))
	fmt.Fprintf(w, "  %s %s\n", style.Dot, style.Command.Render("pnpm prisma db push"))
	fmt.Fprintf(w, "  %s %s\n", style.Dot, style.Command.Render("pnpm dev"))

	return nil
}
