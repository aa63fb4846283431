// Package common contains shared constants and sentinel errors used across
// finkeeper components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Validation errors (user input fails a precondition; nothing mutated).
	ErrValidation = errors.New("validation error")

	// ErrLastAccount is returned when deleting the only remaining account.
	ErrLastAccount = errors.New("cannot delete the last account")

	// ErrDecryptionFailed covers both a wrong password and corrupted
	// ciphertext. The two cases are deliberately indistinguishable.
	ErrDecryptionFailed = errors.New("incorrect password or corrupted data")

	// ErrPersistence wraps any storage backend failure (disk, permission,
	// network). The in-memory vault is left untouched so saves can be retried.
	ErrPersistence = errors.New("persistence error")

	// ErrNoVault is returned by session operations before a vault is open.
	ErrNoVault = errors.New("no vault is open")

	// ErrLocked is returned when an encrypted document has not been
	// unlocked yet.
	ErrLocked = errors.New("vault is locked")

	// Attachment policy errors.
	ErrAttachmentLimitReached = errors.New("attachment limit reached")
	ErrAttachmentInvalidType  = errors.New("attachment type not allowed")
	ErrAttachmentTooLarge     = errors.New("attachment too large")
)
