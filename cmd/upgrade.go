package cmd

import (
	"os"

	"github.com/askpdf/askpdf-cli/config"
	"github.com/askpdf/askpdf-cli/display"
	"github.com/getsavvyinc/upgrade-cli"
	"github.com/getsavvyinc/upgrade-cli/release/asset"
	"github.com/spf13/cobra"
)

const owner = "askpdf"
const repo = "askpdf-cli"

// upgradeCmd represents the upgrade command
var upgradeCmd = &cobra.Command{
	Use:   "upgrade",
	Short: "upgrade askpdf to the latest version",
	Long:  `upgrade askpdf to the latest release published on GitHub`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		executablePath, err := os.Executable()
		if err != nil {
			display.FatalErr(err)
		}
		version := config.Version()

		assetDownloader := asset.NewAssetDownloader(executablePath, asset.WithLookupArchFallback(map[string]string{
			"amd64": "x86_64",
			"386":   "i386",
		}))
		upgrader := upgrade.NewUpgrader(owner, repo, executablePath, upgrade.WithAssetDownloader(assetDownloader))

		if ok, err := upgrader.IsNewVersionAvailable(ctx, version); err != nil {
			display.Error(err)
			return
		} else if !ok {
			display.Info("askpdf is already up to date")
			return
		}

		display.Info("Upgrading askpdf...")
		if err := upgrader.Upgrade(ctx, version); err != nil {
			display.FatalErr(err)
		}
		display.Success("askpdf has been upgraded to the latest version")
	},
}

func init() {
	rootCmd.AddCommand(upgradeCmd)
}
