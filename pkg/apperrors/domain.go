package apperrors

import (
	"net/http"
)

// Predefined errors and factories for the business domains. Services return
// these; handlers only translate them at the boundary.

// ErrNotFound converts a repository miss (gorm.ErrRecordNotFound and
// friends) into a 404.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// --- Accounts & auth ---

// ErrAccountLimitReached - the email already carries the maximum number of
// accounts. The API contract maps limit errors to 400, not 409.
var ErrAccountLimitReached = New(
	CodeLimitExceeded,
	"auth",
	"Account limit reached for this email",
	http.StatusBadRequest,
)

// ErrUsernameTaken - the handle is globally unique and already in use.
var ErrUsernameTaken = New(
	CodeConflict,
	"auth",
	"Username is already taken",
	http.StatusBadRequest,
)

// ErrAccountNotFound - no account matches the claimed email (or email+id pair).
var ErrAccountNotFound = New(
	CodeNotFound,
	"auth",
	"User not found",
	http.StatusNotFound,
)

// ErrInvalidOTP - the submitted code does not match the stored one.
var ErrInvalidOTP = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or code",
	http.StatusUnauthorized,
)

// ErrInvalidToken - bearer token is missing, malformed or expired.
var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

// --- Storage ---

// ErrUploadFailed wraps a storage gateway failure after every provider has
// been tried. The message carries the classified cause.
func ErrUploadFailed(err error, message string) *AppError {
	return Wrap(err, CodeUploadFailed, "storage", message, http.StatusInternalServerError)
}

// ErrCVRequired - vacancy applications must attach a CV file.
var ErrCVRequired = New(
	CodeValidationFailed,
	"validation",
	"CV file required",
	http.StatusBadRequest,
)

// --- Status transitions ---

// ErrInvalidStatusValue - submitted status is outside the allowed enum.
func ErrInvalidStatusValue(domain, status string) *AppError {
	return New(CodeInvalidStatus, domain, "Invalid status: "+status, http.StatusBadRequest)
}

// --- Notifications ---

// ErrEmailSendFailed - a critical email (the OTP itself) could not be sent.
func ErrEmailSendFailed(err error) *AppError {
	return Wrap(err, CodeExternalServiceError, "email", "Failed to send email", http.StatusInternalServerError)
}
