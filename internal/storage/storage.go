// Package storage keeps attachment payloads in an S3-compatible object store.
// Payloads are streamed; nothing touches local disk.
package storage

import (
	"context"
	"errors"
	"io"
	"path"
	"strings"
	"time"
)

// ErrDisabled is returned by Disabled for every call.
var ErrDisabled = errors.New("object storage is not configured")

// PutObjectOptions describe an upload. Size is the exact byte count, or -1 if unknown.
type PutObjectOptions struct {
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// ObjectInfo describes a stored object.
type ObjectInfo struct {
	Key         string
	Size        int64
	ContentType string
}

// Storage is the object store used for document attachments.
type Storage interface {
	Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error)
	Delete(ctx context.Context, key string) error
	// PresignGet returns a time-limited download URL that saves as filename.
	PresignGet(ctx context.Context, key, filename string, expiry time.Duration) (string, error)
}

// AttachmentKey is the object key for an attachment of docID.
// The original file extension is kept so downloads open with the right application.
func AttachmentKey(docID, attachmentID, filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	return path.Join("documents", docID, attachmentID+ext)
}

// Disabled stands in when no object store is configured.
type Disabled struct{}

var _ Storage = Disabled{}

func (Disabled) Put(context.Context, string, io.Reader, PutObjectOptions) (ObjectInfo, error) {
	return ObjectInfo{}, ErrDisabled
}

func (Disabled) Delete(context.Context, string) error { return ErrDisabled }

func (Disabled) PresignGet(context.Context, string, string, time.Duration) (string, error) {
	return "", ErrDisabled
}
