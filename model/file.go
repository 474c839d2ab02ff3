package model

import (
	"mime"
	"os"
	"path/filepath"
)

const defaultContentType = "application/octet-stream"

// SelectedFile is the file a user picked for a single upload.
type SelectedFile struct {
	Name        string
	ContentType string
	Data        []byte
}

// OpenFile reads the file at path into a SelectedFile.
// The content type is derived from the file extension.
func OpenFile(path string) (*SelectedFile, error) {
	bs, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	name := filepath.Base(path)
	return &SelectedFile{
		Name:        name,
		ContentType: contentTypeOf(name),
		Data:        bs,
	}, nil
}

func contentTypeOf(name string) string {
	if ct := mime.TypeByExtension(filepath.Ext(name)); ct != "" {
		return ct
	}
	return defaultContentType
}
