// Package attach implements the attachment policy for transaction files:
// count/type/size validation, deterministic identifiers and storage names.
// Binary payload storage itself lives behind the persistence gateway.
package attach

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/dmitrijs2005/finkeeper/internal/common"
)

const (
	// MaxPerTransaction limits attachments per transaction.
	MaxPerTransaction = 5

	// MaxSizeBytes is 15 MiB exactly.
	MaxSizeBytes = 15 * 1024 * 1024

	maxBaseNameLen = 50
)

var allowedTypes = map[string]struct{}{
	"image/jpeg":         {},
	"image/png":          {},
	"image/gif":          {},
	"image/webp":         {},
	"application/pdf":    {},
	"application/msword": {},
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": {},
	"application/vnd.ms-excel": {},
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": {},
}

// FileMeta describes a candidate attachment before upload.
type FileMeta struct {
	Name     string
	MimeType string
	Size     int64
}

// Record is the metadata persisted for an uploaded attachment. DriveFileID
// and LocalFilename stay nil until a storage backend persists the payload.
type Record struct {
	ID            string    `json:"id"`
	Filename      string    `json:"filename"`
	MimeType      string    `json:"mimeType"`
	Size          int64     `json:"size"`
	UploadedAt    time.Time `json:"uploadedAt"`
	DriveFileID   *string   `json:"driveFileId"`
	LocalFilename *string   `json:"localFilename"`
}

// Validate applies the attachment policy checks in order: count limit,
// media type, size. The first failing check wins.
func Validate(f FileMeta, currentCount int) error {
	if currentCount >= MaxPerTransaction {
		return common.ErrAttachmentLimitReached
	}
	if _, ok := allowedTypes[f.MimeType]; !ok {
		return common.ErrAttachmentInvalidType
	}
	if f.Size > MaxSizeBytes {
		return common.ErrAttachmentTooLarge
	}
	return nil
}

// ValidateBatch validates files sequentially, counting only those that
// pass. The returned error list contains each failing error kind once, no
// matter how many files failed for the same reason.
func ValidateBatch(files []FileMeta, currentCount int) ([]FileMeta, []error) {
	valid := make([]FileMeta, 0, len(files))
	var errs []error

	count := currentCount
	for _, f := range files {
		err := Validate(f, count)
		if err == nil {
			valid = append(valid, f)
			count++
			continue
		}
		if !containsErr(errs, err) {
			errs = append(errs, err)
		}
	}
	return valid, errs
}

func containsErr(errs []error, err error) bool {
	for _, e := range errs {
		if errors.Is(e, err) {
			return true
		}
	}
	return false
}

// GenerateID returns an identifier unique within one transaction's
// attachment set, given unique indices.
func GenerateID(transactionID int64, index int) string {
	return fmt.Sprintf("att_%d_%d", transactionID, index)
}

// GenerateStorageFilename builds the name under which the payload is
// stored: the attachment id plus the sanitized original base name,
// truncated to 50 characters, with the original extension preserved.
func GenerateStorageFilename(id, originalName string) string {
	ext := sanitize(filepath.Ext(originalName))
	base := sanitize(strings.TrimSuffix(originalName, filepath.Ext(originalName)))
	if len(base) > maxBaseNameLen {
		base = base[:maxBaseNameLen]
	}
	return id + "_" + base + ext
}

func sanitize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '_', r == '-':
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NewRecord builds the metadata record for a validated file. Backend fields
// are filled in later by whichever storage persists the payload.
func NewRecord(f FileMeta, id string) Record {
	return Record{
		ID:         id,
		Filename:   f.Name,
		MimeType:   f.MimeType,
		Size:       f.Size,
		UploadedAt: time.Now().UTC(),
	}
}
