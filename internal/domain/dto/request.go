// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs decouple the HTTP layer from the domain model, providing validation
// and serialization for API communication.
package dto

// CreateTranslationKeyRequest represents the JSON request body for creating a
// translation key.
//
// @Description Request to create a translation key, optionally with initial translations
// @Example {"key": "welcome_message", "category": "greetings", "projectId": "proj-1", "initialTranslations": {"en": "Welcome"}}
type CreateTranslationKeyRequest struct {
	// Key is the translation key name. Not required to be unique by the API
	// contract; a unique (project_id, key) index rejects duplicates at the
	// storage boundary.
	Key string `json:"key" binding:"required" example:"welcome_message"`
	// Category groups related keys.
	Category string `json:"category" binding:"required" example:"greetings"`
	// Description is optional free text.
	Description string `json:"description,omitempty" example:"Shown on the landing page"`
	// ProjectID is the owning project.
	ProjectID string `json:"projectId" binding:"required" example:"proj-1"`
	// InitialTranslations maps language codes to initial values.
	InitialTranslations map[string]string `json:"initialTranslations,omitempty"`
} // @name CreateTranslationKeyRequest

// UpdateTranslationRequest represents a single translation update.
// Used as the body of the update endpoint and as bulk-update entries.
//
// @Description Request to set a translation value for a (key, language) pair
type UpdateTranslationRequest struct {
	KeyID        string `json:"key_id" binding:"required" example:"2f1e..."`
	LanguageCode string `json:"language_code" binding:"required" example:"en"`
	// Value may be blank; a blank value stores the row but leaves the
	// translation incomplete.
	Value string `json:"value" example:"Welcome"`
} // @name UpdateTranslationRequest

// CreateTranslationRequest represents the JSON request body for the
// create-only translation endpoint.
//
// @Description Request to create a translation; conflicts if one already exists for the language
type CreateTranslationRequest struct {
	KeyID        string `json:"key_id" binding:"required"`
	LanguageCode string `json:"language_code" binding:"required"`
	Value        string `json:"value"`
	// UpdatedBy overrides the attribution principal. Defaults to the
	// authenticated user, or "api_user" when auth is disabled.
	UpdatedBy string `json:"updated_by,omitempty"`
} // @name CreateTranslationRequest

// SetTranslationValueRequest represents the JSON request body of the upsert
// endpoint, where key and language arrive as path parameters.
//
// @Description New value for a translation; may be blank
type SetTranslationValueRequest struct {
	Value string `json:"value" example:"Welcome"`
} // @name SetTranslationValueRequest

// BulkUpdateRequest represents the JSON request body for bulk translation updates.
//
// @Description Batch of translation updates applied independently
type BulkUpdateRequest struct {
	Updates []UpdateTranslationRequest `json:"updates" binding:"required"`
} // @name BulkUpdateRequest

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// KeyListQuery holds the parsed query parameters of the translation-key list
// endpoint. Pagination bounds are enforced here, at the boundary, not by the
// service.
type KeyListQuery struct {
	Page                int    `form:"page,default=1"`
	Limit               int    `form:"limit,default=50"`
	Search              string `form:"search"`
	Category            string `form:"category"`
	LanguageCode        string `form:"language_code"`
	MissingTranslations bool   `form:"missing_translations"`
}

// Validate checks pagination constraints: page >= 1, 1 <= limit <= 100.
func (q *KeyListQuery) Validate() error {
	if q.Page < 1 {
		return &ValidationError{Field: "page", Message: "must be >= 1"}
	}
	if q.Limit < 1 || q.Limit > 100 {
		return &ValidationError{Field: "limit", Message: "must be between 1 and 100"}
	}
	return nil
}
