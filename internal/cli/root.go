package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/t3mono-labs/t3mono/internal/branding"
	"github.com/t3mono-labs/t3mono/internal/config"
	"github.com/t3mono-labs/t3mono/internal/scaffold"
	"github.com/t3mono-labs/t3mono/internal/ui/style"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	flagAuth        string
	flagAI          bool
	flagUI          bool
	flagRestate     bool
	flagCmd         bool
	flagInteractive bool
	flagNoGit       bool
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName() + " [name]",
	Short: branding.Description(),
	Long: branding.DisplayName() + ` scaffolds a complete T3 stack web application:
Next.js, TypeScript, Tailwind CSS, tRPC, and Prisma, wired up with an
authentication provider and optional extensions (AI agents, UI components,
Restate workflows, CommandIsland).

Run with a project name to scaffold into a new directory, or with "." to
scaffold into the current one. Re-run later with "add" to retrofit an
extension onto an existing project.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
		printUpdateBanner(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		name := "."
		if len(args) == 1 {
			name = args[0]
		}

		opts := scaffold.Options{
			Name:    name,
			AI:      flagAI,
			UI:      flagUI,
			Restate: flagRestate,
			Cmd:     flagCmd,
			InitGit: !flagNoGit && !config.GetBool(config.KeySkipGit),
		}

		auth := flagAuth
		if !cmd.Flags().Changed("auth") {
			if v := config.Get(config.KeyAuth); v != "" {
				auth = v
			}
		}
		provider, err := scaffold.ParseAuthProvider(auth)
		if err != nil {
			return err
		}
		opts.Auth = provider

		if flagInteractive {
			if err := promptOptions(cmd.InOrStdin(), cmd.OutOrStdout(), &opts); err != nil {
				return err
			}
		}

		return runCreate(cmd.OutOrStdout(), opts)
	},
}

func init() {
	rootCmd.Flags().StringVar(&flagAuth, "auth", string(scaffold.BetterAuth), "Auth provider (better-auth, next-auth)")
	rootCmd.Flags().BoolVarP(&flagAI, "ai", "a", false, "Include the AI agents framework")
	rootCmd.Flags().BoolVarP(&flagUI, "ui", "u", false, "Include the UI component library")
	rootCmd.Flags().BoolVarP(&flagRestate, "restate", "r", false, "Include Restate durable workflow services")
	rootCmd.Flags().BoolVarP(&flagCmd, "cmd", "c", false, "Include the CommandIsland AI layer")
	rootCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Choose options interactively")
	rootCmd.Flags().BoolVar(&flagNoGit, "no-git", false, "Skip git repository initialization")
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", style.Error.Render(style.Cross), err)
		return err
	}
	return nil
}
