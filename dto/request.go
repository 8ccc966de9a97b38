package dto

import (
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
)

// RequiredFileCount is how many workbooks a reconciliation run needs.
const RequiredFileCount = 5

// UploadedFile is one spreadsheet byte-stream together with its filename.
type UploadedFile struct {
	Name string
	Data []byte
}

// ReconcileRequest represents the incoming request. The handler fills Files
// from the "files[]" multipart field; Validate does the checking.
type ReconcileRequest struct {
	Files []*multipart.FileHeader
}

// Validate performs basic validation on the request
func (r *ReconcileRequest) Validate() error {
	if len(r.Files) < RequiredFileCount {
		return &InputCountError{Got: len(r.Files), Want: RequiredFileCount}
	}
	for _, f := range r.Files {
		if !strings.EqualFold(filepath.Ext(f.Filename), ".xlsx") {
			return fmt.Errorf("%s: %w", f.Filename, ErrUnsupportedFile)
		}
	}
	return nil
}

// ReadFiles loads every uploaded file into memory, preserving upload order.
func (r *ReconcileRequest) ReadFiles() ([]UploadedFile, error) {
	out := make([]UploadedFile, 0, len(r.Files))
	for _, fh := range r.Files {
		f, err := fh.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open file %s: %w", fh.Filename, err)
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read file %s: %w", fh.Filename, err)
		}
		out = append(out, UploadedFile{Name: fh.Filename, Data: data})
	}
	return out, nil
}
