package auth

import "github.com/goliatone/go-errors"

const (
	TextCodeMissingFields     = "auth_missing_fields"
	TextCodeEmailExists       = "auth_email_exists"
	TextCodeIdentityNotFound  = "auth_identity_not_found"
	TextCodeBadCredentials    = "auth_bad_credentials"
	TextCodeMissingAuthHeader = "auth_missing_header"
	TextCodeBadAuthHeader     = "auth_bad_header"
	TextCodeTokenExpired      = "auth_token_expired"
	TextCodeTokenMalformed    = "auth_token_malformed"
	TextCodeRecordNotFound    = "record_not_found"
	TextCodeInvalidID         = "invalid_id"
)

// ErrMissingFields is returned when a required signup/login field is empty.
var ErrMissingFields = errors.New("required fields are missing", errors.CategoryValidation).
	WithTextCode(TextCodeMissingFields).
	WithCode(errors.CodeBadRequest)

// ErrEmailExists is returned when a user with the email already exists.
var ErrEmailExists = errors.New("a user with this email already exists", errors.CategoryConflict).
	WithTextCode(TextCodeEmailExists).
	WithCode(errors.CodeConflict)

// ErrIdentityNotFound is returned when no user matches the login email.
var ErrIdentityNotFound = errors.New("identity not found", errors.CategoryNotFound).
	WithTextCode(TextCodeIdentityNotFound).
	WithCode(errors.CodeNotFound)

// ErrMismatchedHashAndPassword is returned when a password does not match
// the stored hash.
var ErrMismatchedHashAndPassword = errors.New("invalid credentials", errors.CategoryAuth).
	WithTextCode(TextCodeBadCredentials).
	WithCode(errors.CodeUnauthorized)

// ErrMissingAuthHeader is returned when a guarded route gets no
// Authorization header.
var ErrMissingAuthHeader = errors.New("authorization header required", errors.CategoryAuth).
	WithTextCode(TextCodeMissingAuthHeader).
	WithCode(errors.CodeUnauthorized)

// ErrBadAuthHeader is returned when the Authorization header is not
// exactly "Bearer <token>".
var ErrBadAuthHeader = errors.New("authorization header format must be Bearer <token>", errors.CategoryAuth).
	WithTextCode(TextCodeBadAuthHeader).
	WithCode(errors.CodeUnauthorized)

// ErrTokenExpired is returned for tokens past their expiry.
var ErrTokenExpired = errors.New("token is expired", errors.CategoryAuth).
	WithTextCode(TextCodeTokenExpired).
	WithCode(errors.CodeUnauthorized)

// ErrTokenMalformed is returned for tokens that fail to parse or verify.
var ErrTokenMalformed = errors.New("token is malformed", errors.CategoryAuth).
	WithTextCode(TextCodeTokenMalformed).
	WithCode(errors.CodeUnauthorized)

// ErrRecordNotFound is returned when a looked-up document does not exist.
var ErrRecordNotFound = errors.New("record not found", errors.CategoryNotFound).
	WithTextCode(TextCodeRecordNotFound).
	WithCode(errors.CodeNotFound)

// ErrInvalidID is returned for ids that are not valid ObjectID hex.
var ErrInvalidID = errors.New("invalid id format", errors.CategoryBadInput).
	WithTextCode(TextCodeInvalidID).
	WithCode(errors.CodeBadRequest)

// HTTPStatus resolves the response status for an error. Rich errors carry
// an explicit code; otherwise the category decides. Anything unclassified
// is a 500.
func HTTPStatus(err error) int {
	var richErr *errors.Error
	if !errors.As(err, &richErr) {
		return 500
	}

	if richErr.Code > 0 {
		return richErr.Code
	}

	switch richErr.Category {
	case errors.CategoryValidation, errors.CategoryBadInput:
		return 400
	case errors.CategoryAuth:
		return 401
	case errors.CategoryNotFound:
		return 404
	case errors.CategoryConflict:
		return 409
	default:
		return 500
	}
}
