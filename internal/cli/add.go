package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/t3mono-labs/t3mono/internal/scaffold"
	"github.com/t3mono-labs/t3mono/internal/ui/style"
)

func init() {
	rootCmd.AddCommand(addCmd)
}

var addCmd = &cobra.Command{
	Use:   "add <extension>",
	Short: "Add an extension to an existing project",
	Long: `Add retrofits one extension onto a project scaffolded earlier. It must
run from the project root (where package.json lives). Dependency versions
already pinned in package.json are kept; only missing entries are added.

Extensions: ai, ui, restate, cmd.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ext, err := scaffold.ParseExtension(args[0])
		if err != nil {
			return err
		}

		// Checked before any writes so a bad invocation leaves no trace.
		if !scaffold.HasManifest(".") {
			return fmt.Errorf("no package.json found in the current directory; run inside a scaffolded project or create one first")
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "%s Adding %s extension (%s)\n",
			style.Action.Render(style.Plus),
			style.Bold.Render(string(ext)),
			style.Dim.Render(ext.Description()))

		if err := scaffold.Apply(".", ext); err != nil {
			return err
		}

		fmt.Fprintf(w, "%s Extension %s added\n\n", style.Success.Render(style.Check), ext)
		fmt.Fprintf(w, "%s\n", style.Bold.Render("Next steps:"))
		fmt.Fprintf(w, "  %s %s\n", style.Dot, style.Command.Render("pnpm install"))
		if ext == scaffold.ExtCmd {
			fmt.Fprintf(w, "  %s %s\n", style.Dot, style.Command.Render("pnpm prisma db push"))
		}
		return nil
	},
}
