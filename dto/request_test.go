package dto

import (
	"errors"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
)

func headers(names ...string) []*multipart.FileHeader {
	out := make([]*multipart.FileHeader, len(names))
	for i, n := range names {
		out[i] = &multipart.FileHeader{Filename: n}
	}
	return out
}

func TestReconcileRequestValidate(t *testing.T) {
	req := &ReconcileRequest{Files: headers("a.xlsx", "b.xlsx")}
	err := req.Validate()
	assert.True(t, errors.Is(err, ErrInputCount))
	assert.Contains(t, err.Error(), "5")

	req = &ReconcileRequest{Files: headers("a.xlsx", "b.XLSX", "c.xlsx", "d.xlsx", "e.xls")}
	assert.True(t, errors.Is(req.Validate(), ErrUnsupportedFile))

	req = &ReconcileRequest{Files: headers("a.xlsx", "b.XLSX", "c.xlsx", "d.xlsx", "e.xlsx")}
	assert.NoError(t, req.Validate())
}

func TestNotFoundErrorMessage(t *testing.T) {
	err := NewNotFoundError(NotFoundColumn, "合同", "主表")
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Contains(t, err.Error(), "合同")
	assert.Contains(t, err.Error(), "主表")

	assert.Contains(t, NewNotFoundError(NotFoundFile, "重卡数据", "").Error(), "重卡数据")
}
