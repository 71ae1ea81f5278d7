package application

import (
	"errors"

	"storefront/internal/domain/entity"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("user with email already exists")
	ErrEmailNotVerified   = errors.New("email not verified")

	ErrProductNotFound = errors.New("product not found")
	ErrSKUTaken        = errors.New("product with sku already exists")
	ErrAccessDenied    = errors.New("access denied")

	ErrImageNotFound       = errors.New("image not found")
	ErrEmptyFile           = errors.New("file is empty")
	ErrUnsupportedFileType = errors.New("unsupported file type")
)

// RequireVerified is the policy gate applied before every mutating
// operation: only accounts that completed email verification may write.
func RequireVerified(u *entity.User) error {
	if u == nil {
		return ErrInvalidCredentials
	}
	if !u.Verified {
		return ErrEmailNotVerified
	}
	return nil
}
