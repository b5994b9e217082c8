package db_models

import (
	"time"

	"github.com/google/uuid"
)

type AccountKind string

const (
	AdminKind     AccountKind = "ADMIN"
	OrganizerKind AccountKind = "ORGANIZER"
	UserKind      AccountKind = "USER"
)

func (k AccountKind) Valid() bool {
	switch k {
	case AdminKind, OrganizerKind, UserKind:
		return true
	}
	return false
}

// AccountBase holds the identity, credential, role and reset-password state
// shared by every account kind.
type AccountBase struct {
	BaseModel
	Email                  string     `gorm:"uniqueIndex;not null"`
	PasswordHash           string     `gorm:"not null" json:"-"`
	RoleID                 uuid.UUID  `gorm:"type:uuid;not null;index"`
	Role                   *Role      `gorm:"foreignKey:RoleID"`
	ResetToken             *string    `gorm:"index" json:"-"`
	ResetTokenExpiration   *time.Time `json:"-"`
	ResetPasswordRequestID *string    `json:"-"`
}

// Account is implemented by *Admin, *Organizer and *User.
type Account interface {
	Kind() AccountKind
	Base() *AccountBase
}

// IssueResetToken replaces any previous token.
func (b *AccountBase) IssueResetToken(token string, expiration time.Time, requestID string) {
	b.ResetToken = &token
	b.ResetTokenExpiration = &expiration
	b.ResetPasswordRequestID = &requestID
}

func (b *AccountBase) ClearResetToken() {
	b.ResetToken = nil
	b.ResetTokenExpiration = nil
}

// ResetTokenExpired reports whether the current token is unusable at now.
// A token is valid strictly before its expiration.
func (b *AccountBase) ResetTokenExpired(now time.Time) bool {
	if b.ResetToken == nil || b.ResetTokenExpiration == nil {
		return true
	}
	return !now.Before(*b.ResetTokenExpiration)
}
