package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/askpdf/askpdf-cli/config"
	"github.com/askpdf/askpdf-cli/display"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change where askpdf sends requests",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the api host that will be used",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		host, err := config.ResolveAPIHost(hostFlag, config.DefaultConfigFilePath)
		if err != nil {
			display.FatalErr(err)
		}
		cmd.Println("api host:", host)
		cmd.Println("config file:", config.DefaultConfigFilePath)
	},
}

var configSetHostCmd = &cobra.Command{
	Use:     "set-host <url>",
	Short:   "Save the api host to the config file",
	Args:    cobra.ExactArgs(1),
	Example: "  askpdf config set-host http://localhost:5000",
	Run: func(cmd *cobra.Command, args []string) {
		logger := loggerFromCtx(cmd.Context()).With("command", "config set-host")

		host, err := config.NormalizeHost(args[0])
		if err != nil {
			display.FatalErr(err)
		}

		cfg, err := config.LoadFromFile()
		if err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				logger.Warn("replacing unreadable config file", "error", err)
			}
			cfg = &config.Config{}
		}
		cfg.APIHost = host

		if err := cfg.Save(); err != nil {
			display.FatalErr(fmt.Errorf("error saving config: %w", err))
		}
		display.Success("Requests will go to " + host)
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetHostCmd)
	rootCmd.AddCommand(configCmd)
}
