package entity

import (
	"time"
)

// User is the aggregate root for the account domain.
// Password holds a bcrypt hash, never the raw credential.
//
// VerificationToken and VerificationExpiry are set at registration and
// cleared the moment the account becomes verified; a verified user never
// carries either field.
type User struct {
	ID                 int64
	Email              string
	Password           string
	FirstName          string
	LastName           string
	AccountCreated     time.Time
	AccountUpdated     time.Time
	Verified           bool
	VerificationToken  *string
	VerificationExpiry *time.Time
}
