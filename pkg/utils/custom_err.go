package utils

import (
	"errors"
	"fmt"
)

// Error kinds. Every domain error below unwraps to exactly one of them.
var (
	ErrNotFound  = errors.New("not found")
	ErrForbidden = errors.New("forbidden")
)

var (
	ErrInvalidPage     = errors.New("invalid page parameter")
	ErrInvalidPageSize = errors.New("invalid page size parameter")
	ErrInvalidSort     = errors.New("invalid sort parameter")
	ErrDatabaseError   = errors.New("database error")
)

type kindError struct {
	kind    error
	message string
}

func (e *kindError) Error() string { return e.message }

func (e *kindError) Unwrap() error { return e.kind }

// NotFound builds an error that matches ErrNotFound.
func NotFound(message string) error {
	return &kindError{kind: ErrNotFound, message: message}
}

// Forbidden builds an error that matches ErrForbidden.
func Forbidden(message string) error {
	return &kindError{kind: ErrForbidden, message: message}
}

// DatabaseError keeps the driver error text while matching ErrDatabaseError.
func DatabaseError(err error) error {
	return fmt.Errorf("%w: %v", ErrDatabaseError, err)
}

var (
	ErrAdminNotFound       = NotFound("Admin not found.")
	ErrOrganizerNotFound   = NotFound("Organizer not found.")
	ErrUserNotFound        = NotFound("User not found.")
	ErrRoleNotFound        = NotFound("Role not found.")
	ErrPermissionNotFound  = NotFound("Permission not found.")
	ErrResetTokenNotFound  = NotFound("Reset token not found.")
	ErrEventNotFound       = NotFound("Event not found.")
	ErrEventTypeNotFound   = NotFound("Event type not found.")
	ErrEventCouponNotFound = NotFound("Event coupon not found.")
)

var (
	ErrUsernameAlreadyInUse      = Forbidden("Username already in use.")
	ErrEmailAlreadyInUse         = Forbidden("Email address already in use.")
	ErrCompanyNumberAlreadyInUse = Forbidden("Company number already in use.")
	ErrInvalidCompanyNumber      = Forbidden("Company number must contain digits.")
	ErrPasswordMustBeProvided    = Forbidden("Password must be provided.")
	ErrPasswordTooLong           = Forbidden("Password must not exceed 72 bytes.")
	ErrIncorrectOldPassword      = Forbidden("Incorrect old password.")
	ErrRoleIDNotProvided         = Forbidden("Role id not provided.")
	ErrTokenExpired              = Forbidden("Token expired.")
	ErrIncorrectPassword         = Forbidden("Incorrect password.")
	ErrIncorrectUsername         = Forbidden("Incorrect username.")
	ErrEventAlreadyExists        = Forbidden("Event already exists.")
	ErrEventTypeAlreadyExists    = Forbidden("Event type already exists.")
	ErrPermissionAlreadyExists   = Forbidden("Permission already exists.")
	ErrInvalidAvailableSeats     = Forbidden("Available seats must be between 0 and the formule quantity.")
	ErrInvalidEventDates         = Forbidden("End date must not precede start date.")
	ErrInsufficientRights        = Forbidden("Forbidden: insufficient permissions.")
)
