package page

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/askpdf/askpdf-cli/client"
)

var ErrUploadFailed = errors.New("upload failed")

type UploadFlow struct {
	uploader client.Uploader
	picker   FilePicker
	section  Section
	console  *slog.Logger
	strict   bool
}

type UploadOption func(*UploadFlow)

// WithStrictStatus makes Submit return ErrUploadFailed for a non-2xx status
// in addition to logging it.
func WithStrictStatus() UploadOption {
	return func(f *UploadFlow) {
		f.strict = true
	}
}

func NewUploadFlow(uploader client.Uploader, picker FilePicker, section Section, console *slog.Logger, opts ...UploadOption) *UploadFlow {
	if console == nil {
		console = slog.Default()
	}
	f := &UploadFlow{
		uploader: uploader,
		picker:   picker,
		section:  section,
		console:  console,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Submit uploads the selected file and reveals the section on success.
//
// A rejected upload is only logged to the console. Transport errors are
// returned as is.
func (f *UploadFlow) Submit(ctx context.Context) error {
	file := f.picker.Selected()
	if file == nil {
		f.console.Debug("submitting upload without a selected file")
	}

	res, err := f.uploader.Upload(ctx, file)
	if err != nil {
		return err
	}

	if !res.OK() {
		f.console.Error("Upload failed", "status", res.StatusCode, "error", res.Status.Error)
		if f.strict {
			return fmt.Errorf("%w: status %d", ErrUploadFailed, res.StatusCode)
		}
		return nil
	}

	f.console.Debug("upload accepted", "status", res.StatusCode, "message", res.Status.Message)
	f.section.Show()
	return nil
}
