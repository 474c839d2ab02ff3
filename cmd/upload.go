package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/askpdf/askpdf-cli/client"
	"github.com/askpdf/askpdf-cli/display"
	"github.com/askpdf/askpdf-cli/model"
	"github.com/askpdf/askpdf-cli/page"
	"github.com/spf13/cobra"
)

var uploadCmd = &cobra.Command{
	Use:   "upload <file>",
	Short: "Upload a PDF so that questions can be asked about it",
	Args:  cobra.ExactArgs(1),
	Example: `
  askpdf upload ./handbook.pdf
  askpdf --host https://qa.example.com upload report.pdf
  `,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		logger := commandLogger(ctx, "upload")

		cl, err := newClient()
		if err != nil {
			display.FatalErr(err)
		}

		file, err := model.OpenFile(args[0])
		if err != nil {
			display.FatalErr(err)
		}

		ready := page.SectionFunc(func() {
			display.Success(fmt.Sprintf("Uploaded %s. Ask away with `askpdf ask`.", file.Name))
		})

		err = runUpload(ctx, cl, file, ready, logger)
		switch {
		case err == nil:
		case errors.Is(err, page.ErrUploadFailed):
			// already logged by the flow
			os.Exit(1)
		default:
			reportRequestErr(err)
			os.Exit(1)
		}
	},
}

// runUpload submits file and shows ready on success. Any status outside
// 2xx is returned as page.ErrUploadFailed.
func runUpload(ctx context.Context, cl client.Uploader, file *model.SelectedFile, ready page.Section, logger *slog.Logger) error {
	flow := page.NewUploadFlow(cl, page.StaticFile{File: file}, ready, logger, page.WithStrictStatus())

	var submitErr error
	if err := withSpinner(ctx, "Uploading "+file.Name, func(ctx context.Context) {
		submitErr = flow.Submit(ctx)
	}); err != nil {
		return err
	}
	return submitErr
}

func init() {
	rootCmd.AddCommand(uploadCmd)
}
