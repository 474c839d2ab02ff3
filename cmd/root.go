package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/askpdf/askpdf-cli/client"
	"github.com/askpdf/askpdf-cli/config"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "askpdf",
	Short: "Upload a PDF and ask questions about it from the command line",
	Long: `askpdf talks to a document question answering server.

Upload a document once, then ask as many questions about it as you like.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		if noColorFlag {
			lipgloss.SetColorProfile(termenv.Ascii)
		}

		logLevel := slog.LevelInfo
		if debugFlag {
			logLevel = slog.LevelDebug
		}
		textHandler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			AddSource: debugFlag,
			Level:     logLevel,
		})
		logger := slog.New(textHandler)
		slog.SetDefault(logger)
		cmd.SetContext(ctxWithLogger(cmd.Context(), logger))
	},
}

var (
	debugFlag   bool
	noColorFlag bool
	hostFlag    string
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&debugFlag, "debug", "d", false, "Enable debug mode")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringVar(&hostFlag, "host", "", "askpdf server url (overrides $"+config.APIHostEnv+" and the config file)")
}

// newClient builds an api client for the resolved host.
func newClient() (client.Client, error) {
	host, err := config.ResolveAPIHost(hostFlag, config.DefaultConfigFilePath)
	if err != nil {
		return nil, err
	}
	return client.New(host), nil
}
