package models

import "time"

// RevokedToken is a ledger entry for a token that must no longer be
// accepted. ExpiresAt mirrors the token's own expiry claim; entries past it
// are dead weight and are swept by the prune command, never by request-path
// code.
type RevokedToken struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Token     string    `gorm:"uniqueIndex;not null" json:"-"`
	ExpiresAt time.Time `gorm:"index;not null" json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}
