package service

import (
	"errors"
	"strings"
)

var (
	ErrIDRequired          = errors.New("id is required")
	ErrNotFound            = errors.New("document not found")
	ErrReaderNil           = errors.New("reader is nil")
	ErrEmptyQuery          = errors.New("search query is empty")
	ErrAttachmentsDisabled = errors.New("attachments are not available")
)

// ValidationError lists the input fields that were missing or invalid.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Fields, ", ")
}

func invalid(fields ...string) error {
	return &ValidationError{Fields: fields}
}
