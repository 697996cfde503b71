package handler

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// sniffLen is how many leading bytes are inspected to detect the file type.
const sniffLen = 3072

// UploadPolicy decides which files may reach the service.
type UploadPolicy struct {
	MaxBytes int64
	// Extensions are lower-case and include the dot.
	Extensions []string
	// Types are the detected MIME types accepted, without parameters.
	Types []string
}

// DefaultUploadPolicy accepts PDF, PNG, JPEG and plain text up to maxBytes.
func DefaultUploadPolicy(maxBytes int64) UploadPolicy {
	return UploadPolicy{
		MaxBytes:   maxBytes,
		Extensions: []string{".pdf", ".png", ".jpg", ".jpeg", ".txt"},
		Types:      []string{"application/pdf", "image/png", "image/jpeg", "text/plain"},
	}
}

type policyError struct {
	status  int
	code    string
	message string
}

func (e *policyError) Error() string { return e.message }

// checkSize rejects empty and oversized files before anything is read.
func (p UploadPolicy) checkSize(size int64) *policyError {
	if size <= 0 {
		return &policyError{400, "INVALID_INPUT", "file is empty"}
	}
	if p.MaxBytes > 0 && size > p.MaxBytes {
		return &policyError{413, "FILE_TOO_LARGE", fmt.Sprintf("file exceeds %d bytes", p.MaxBytes)}
	}
	return nil
}

// detect validates the extension of filename and the sniffed type of head.
// It returns the accepted MIME type to record for the document.
func (p UploadPolicy) detect(filename string, head []byte) (string, *policyError) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !slices.Contains(p.Extensions, ext) {
		return "", &policyError{415, "UNSUPPORTED_FILE_TYPE", "unsupported file extension " + quoteExt(ext)}
	}
	// Walk up the detected type's parents so e.g. text/csv is accepted as text/plain.
	for m := mimetype.Detect(head); m != nil; m = m.Parent() {
		for _, t := range p.Types {
			if m.Is(t) {
				return t, nil
			}
		}
	}
	return "", &policyError{415, "UNSUPPORTED_FILE_TYPE", "file content does not match an accepted type"}
}

func quoteExt(ext string) string {
	if ext == "" {
		return "(none)"
	}
	return ext
}
