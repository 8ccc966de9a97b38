package utils

import (
	"strings"

	"github.com/Aashish23092/ledger-reconciliation/dto"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FindFile returns the first uploaded file whose name contains keyword.
// Matching is a raw, case-sensitive substring test and files are scanned in
// upload order.
func FindFile(files []dto.UploadedFile, keyword string) (dto.UploadedFile, error) {
	for _, f := range files {
		if strings.Contains(f.Name, keyword) {
			return f, nil
		}
	}
	return dto.UploadedFile{}, dto.NewNotFoundError(dto.NotFoundFile, keyword, "")
}

// FindSheet returns the first sheet name containing keyword (case-sensitive),
// in workbook order. scope is only used in the error message.
func FindSheet(sheets []string, keyword, scope string) (string, error) {
	for _, s := range sheets {
		if strings.Contains(s, keyword) {
			return s, nil
		}
	}
	return "", dto.NewNotFoundError(dto.NotFoundSheet, keyword, scope)
}

// FindColumn returns the first column whose normalized header contains the
// normalized keyword. Headers drift between releases (padding, suffixes), so
// this is a substring test and the first match wins even when several
// columns would match. ok is false when nothing matches; that is not an error.
func FindColumn(t *dto.Table, keyword string) (column string, ok bool) {
	if t == nil {
		return "", false
	}
	key := NormalizeHeader(keyword)
	for _, c := range t.Columns {
		if strings.Contains(NormalizeHeader(c), key) {
			return c, true
		}
	}
	return "", false
}

// NormalizeHeader trims and lower-cases a header or keyword.
func NormalizeHeader(s string) string {
	return cases.Lower(language.Und).String(strings.TrimSpace(s))
}
