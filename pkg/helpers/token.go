package helpers

import (
	"fmt"

	"github.com/google/uuid"
)

// NewVerificationToken returns an unpredictable single-use token for
// email verification links.
func NewVerificationToken() string {
	return uuid.NewString()
}

// NewStorageKey builds the object-store key for an uploaded file:
// <owner>/<uuid>_<original filename>. The random component keeps keys
// globally unique even when the same file is uploaded twice.
func NewStorageKey(owner, fileName string) string {
	return fmt.Sprintf("%s/%s_%s", owner, uuid.NewString(), fileName)
}
