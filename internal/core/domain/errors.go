package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// Authentication Errors.

	// ErrAuthRequired indicates no usable credentials are stored and an
	// interactive authorization is needed.
	ErrAuthRequired = errors.New("authentication required")

	// ErrAuthExpired indicates the stored credentials have expired and refresh failed.
	ErrAuthExpired = errors.New("authentication expired")

	// ErrTokenRefreshFailed indicates a token refresh operation failed.
	ErrTokenRefreshFailed = errors.New("token refresh failed")

	// Filing Errors.

	// ErrLocalFileMissing indicates the local file to upload does not exist.
	// Raised before any network call is made.
	ErrLocalFileMissing = errors.New("local file missing")

	// ErrGroupNotFound indicates the group header label was not found in the
	// scanned column of the sheet.
	ErrGroupNotFound = errors.New("group header not found")

	// ErrSheetNotFound indicates no sheet with the given title exists in the
	// spreadsheet.
	ErrSheetNotFound = errors.New("sheet not found")
)
