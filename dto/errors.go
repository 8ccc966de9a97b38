package dto

import (
	"errors"
	"fmt"
)

// Sentinel errors matched with errors.Is.
var (
	ErrInputCount       = errors.New("not enough workbooks uploaded")
	ErrNotFound         = errors.New("not found")
	ErrUnsupportedFile  = errors.New("unsupported file type, only .xlsx is accepted")
	ErrUnreadableUpload = errors.New("uploaded workbook could not be read")
)

// InputCountError is returned when fewer workbooks than required were supplied.
// It blocks the run but is not fatal to the process.
type InputCountError struct {
	Got  int
	Want int
}

func (e *InputCountError) Error() string {
	return fmt.Sprintf("请上传所有 %d 个文件 (got %d)", e.Want, e.Got)
}

// Is implements errors.Is support
func (e *InputCountError) Is(target error) bool {
	return target == ErrInputCount
}

// NotFoundKind names what a NotFoundError failed to resolve.
type NotFoundKind string

const (
	NotFoundFile   NotFoundKind = "file"
	NotFoundSheet  NotFoundKind = "sheet"
	NotFoundColumn NotFoundKind = "column"
)

// NotFoundError aborts a run: a required file, sheet or mandatory column
// could not be resolved by keyword.
type NotFoundError struct {
	Kind    NotFoundKind
	Keyword string
	// Scope is the table or file the lookup ran against, if any.
	Scope string
}

func (e *NotFoundError) Error() string {
	switch e.Kind {
	case NotFoundFile:
		return fmt.Sprintf("未找到包含关键词「%s」的文件", e.Keyword)
	case NotFoundSheet:
		if e.Scope != "" {
			return fmt.Sprintf("未找到包含关键词「%s」的sheet (%s)", e.Keyword, e.Scope)
		}
		return fmt.Sprintf("未找到包含关键词「%s」的sheet", e.Keyword)
	default:
		if e.Scope != "" {
			return fmt.Sprintf("在%s中未能找到包含关键词 '%s' 的列，请确认列名", e.Scope, e.Keyword)
		}
		return fmt.Sprintf("未能找到包含关键词 '%s' 的列，请确认列名", e.Keyword)
	}
}

// Is implements errors.Is support
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(kind NotFoundKind, keyword, scope string) *NotFoundError {
	return &NotFoundError{Kind: kind, Keyword: keyword, Scope: scope}
}
