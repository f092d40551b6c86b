// Package cli implements the command-line interface.
package cli

// Error codes for structured error responses.
// These codes are stable and can be relied upon by agents.
const (
	// Config errors
	ErrConfigInvalid = "CONFIG_INVALID"
	ErrTokenMissing  = "TOKEN_MISSING"

	// Resource errors
	ErrDatabaseNotFound = "DATABASE_NOT_FOUND"
	ErrPageNotFound     = "PAGE_NOT_FOUND"
	ErrBlockNotFound    = "BLOCK_NOT_FOUND"
	ErrUserNotFound     = "USER_NOT_FOUND"

	// Service errors
	ErrAPIError    = "API_ERROR"
	ErrAuthFailed  = "AUTH_FAILED"
	ErrRateLimited = "RATE_LIMITED"

	// Filter errors
	ErrFilterInvalid    = "FILTER_INVALID"
	ErrWhereInvalid     = "WHERE_INVALID"
	ErrPropertyNotFound = "PROPERTY_NOT_FOUND"
	ErrTypeInvalid      = "TYPE_INVALID"

	// Input errors
	ErrInvalidInput    = "INVALID_INPUT"
	ErrMissingArgument = "MISSING_ARGUMENT"

	// File errors
	ErrFileReadError  = "FILE_READ_ERROR"
	ErrFileWriteError = "FILE_WRITE_ERROR"

	// General errors
	ErrInternal = "INTERNAL_ERROR"
)

// Warning codes for non-fatal issues.
const (
	WarnPropertyNotFound = "PROPERTY_NOT_FOUND"
	WarnValueInvalid     = "VALUE_INVALID"
	WarnFacetDropped     = "FACET_DROPPED"
)
