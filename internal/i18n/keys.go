// Package i18n provides internationalization support for the localization service.
package i18n

// Error message translation keys.
const (
	// ErrKeyInvalidRequest indicates an invalid request.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInvalidRequestBody indicates an invalid request body.
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyUnauthorized indicates missing or invalid authentication.
	ErrKeyUnauthorized = "error.unauthorized"
	// ErrKeyInvalidCredentials indicates invalid login credentials.
	ErrKeyInvalidCredentials = "error.invalid_credentials"
	// ErrKeyForbidden indicates insufficient permissions.
	ErrKeyForbidden = "error.forbidden"
	// ErrKeyNotFound indicates a resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyRateLimitExceeded indicates rate limit exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyConflict indicates a conflict with current state.
	ErrKeyConflict = "error.conflict"
	// ErrKeyInvalidToken indicates an invalid or expired JWT token.
	ErrKeyInvalidToken = "error.invalid_token"
	// ErrKeyTokenRequired indicates that a JWT token is required.
	ErrKeyTokenRequired = "error.token_required"
	// ErrKeyTranslationKeyNotFound indicates the translation key does not exist.
	ErrKeyTranslationKeyNotFound = "error.key_not_found"
	// ErrKeyTranslationExists indicates a translation already exists for the language.
	ErrKeyTranslationExists = "error.translation_exists"
	// ErrKeyUserExists indicates the user is already registered.
	ErrKeyUserExists = "error.user_exists"
	// ErrKeyValidationPagination indicates invalid pagination parameters.
	ErrKeyValidationPagination = "error.validation.pagination"
)

// Success message translation keys.
const (
	// SuccessKeyTranslationUpdated indicates a translation value was stored.
	SuccessKeyTranslationUpdated = "success.translation_updated"
	// SuccessKeyKeyDeleted indicates a translation key was removed.
	SuccessKeyKeyDeleted = "success.key_deleted"
)
