package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/t3mono-labs/t3mono/internal/config"
	"github.com/t3mono-labs/t3mono/internal/ui/style"
	"github.com/t3mono-labs/t3mono/internal/updater"
)

var updateVersion string

func init() {
	updateCmd.Flags().StringVar(&updateVersion, "version", "", "Update to a specific version instead of the latest")
	rootCmd.AddCommand(updateCmd)
}

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update the CLI to the latest release",
	RunE: func(cmd *cobra.Command, args []string) error {
		u := updater.New(buildVersion)
		w := cmd.OutOrStdout()

		var release *updater.Release
		var err error
		if updateVersion != "" {
			release, err = u.ReleaseByTag(updateVersion)
		} else {
			release, err = u.LatestRelease()
		}
		if err != nil {
			return fmt.Errorf("checking releases: %w", err)
		}

		if updateVersion == "" {
			available, err := updater.IsUpdateAvailable(buildVersion, release.Version)
			if err != nil {
				// Dev builds have no semver; updating is still allowed.
				available = true
			}
			if !available {
				fmt.Fprintf(w, "%s Already up to date (%s)\n", style.Success.Render(style.Check), buildVersion)
				return nil
			}
		}

		fmt.Fprintf(w, "%s Updating to %s\n", style.Action.Render(style.Plus), style.Bold.Render(release.Version))
		if err := u.SelfUpdate(release); err != nil {
			return err
		}

		fmt.Fprintf(w, "%s Updated to %s\n", style.Success.Render(style.Check), release.Version)
		return nil
	},
}

// printUpdateBanner surfaces a cached newer-release notice without blocking
// startup.
func printUpdateBanner(cmd *cobra.Command) {
	// Commands that manage versions print their own state.
	if name := cmd.Name(); name == "update" || name == "version" {
		return
	}
	updater.New(buildVersion).CheckAndPrintBanner(cmd.ErrOrStderr(), config.Dir())
}
