package service

import "errors"

// Domain errors returned by services. Handlers match them with errors.Is.
var (
	ErrAlreadySubscribed      = errors.New("already subscribed")
	ErrAdminExists            = errors.New("admin already exists")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrAccountDisabled        = errors.New("account disabled")
	ErrRegistrationRestricted = errors.New("registration restricted to superadmins")
	ErrCannotDeactivateSelf   = errors.New("cannot deactivate own account")
	ErrForbidden              = errors.New("forbidden")
	ErrWrongPassword          = errors.New("current password is incorrect")
	ErrSlugTaken              = errors.New("slug already taken")
	ErrMissingResume          = errors.New("resume is required")
	ErrQuoteUnavailable       = errors.New("quote unavailable")
	ErrEmptyMessage           = errors.New("empty chat message")
	ErrMessageTooLong         = errors.New("chat message too long")
)
