package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/askpdf/askpdf-cli/client"
	"github.com/askpdf/askpdf-cli/display"
	"github.com/askpdf/askpdf-cli/page"
	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a question about the uploaded document",
	Example: `
  askpdf ask "What is the capital of France?"
  askpdf ask what does section 3 say about refunds
  askpdf ask --copy "Summarize the introduction"
  askpdf ask # interactive mode
  `,
	Long: `
  Ask a question about the most recently uploaded document.

  The answer is printed to stdout exactly as the server returned it.
  `,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		logger := commandLogger(ctx, "ask")

		copyAnswer, err := cmd.Flags().GetBool(copyFlag)
		if err != nil {
			display.FatalErr(fmt.Errorf("error parsing flags: %w", err))
		}

		cl, err := newClient()
		if err != nil {
			display.FatalErr(err)
		}

		// be defensive: users can pass questions as one string or multiple strings
		question := strings.Join(args, " ")
		if len(args) == 0 {
			if !isInteractive() {
				display.FatalErr(fmt.Errorf("no question given"))
			}
			question, err = prompt("What would you like to know?", "What is the capital of France?", nil)
			if err != nil {
				display.FatalErr(err)
			}
		}

		answer, err := runAsk(ctx, cl, question, logger)
		if err != nil {
			reportRequestErr(err)
			os.Exit(1)
		}

		display.Answer(answer)

		if copyAnswer {
			if err := clipboard.WriteAll(answer); err != nil {
				logger.Warn("could not copy answer to clipboard", "error", err)
				return
			}
			logger.Debug("answer copied to clipboard")
		}
	},
}

// runAsk sends question and returns the rendered answer.
func runAsk(ctx context.Context, cl client.Asker, question string, logger *slog.Logger) (string, error) {
	var answer string
	out := page.DisplayFunc(func(text string) { answer = text })
	flow := page.NewAskFlow(cl, page.StaticText(question), out, logger)

	var askErr error
	if err := withSpinner(ctx, "Asking", func(ctx context.Context) {
		askErr = flow.Click(ctx)
	}); err != nil {
		return "", err
	}
	return answer, askErr
}

const copyFlag = "copy"

func init() {
	askCmd.Flags().BoolP(copyFlag, "c", false, "Copy the answer to the clipboard")
	rootCmd.AddCommand(askCmd)
}
