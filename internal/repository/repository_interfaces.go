// Package repository provides interfaces for repository operations.
package repository

import (
	"context"
)

// KeyRow is the join result of a translation key with its nested translation
// rows, as fetched from storage. Timestamps are ISO-8601 text; parsing into
// time values is the service's job.
type KeyRow struct {
	ID           string           `bson:"_id" json:"id"`
	Key          string           `bson:"key" json:"key"`
	Category     string           `bson:"category" json:"category"`
	Description  string           `bson:"description,omitempty" json:"description,omitempty"`
	ProjectID    string           `bson:"project_id" json:"project_id"`
	CreatedAt    string           `bson:"created_at" json:"created_at"`
	UpdatedAt    string           `bson:"updated_at" json:"updated_at"`
	Translations []TranslationRow `bson:"translations,omitempty" json:"translations,omitempty"`
}

// TranslationRow is a raw translation row keyed by (translation_key_id, language_code).
type TranslationRow struct {
	ID               string `bson:"_id" json:"id"`
	TranslationKeyID string `bson:"translation_key_id" json:"translation_key_id"`
	LanguageCode     string `bson:"language_code" json:"language_code"`
	Value            string `bson:"value" json:"value"`
	UpdatedAt        string `bson:"updated_at" json:"updated_at"`
	UpdatedBy        string `bson:"updated_by" json:"updated_by"`
}

// LanguageRow is a configured language.
type LanguageRow struct {
	Code string `bson:"code" json:"code"`
	Name string `bson:"name" json:"name"`
	Flag string `bson:"flag,omitempty" json:"flag,omitempty"`
}

// ProjectRow is the join result of a project with its language set.
type ProjectRow struct {
	ID          string        `bson:"_id" json:"id"`
	Name        string        `bson:"name" json:"name"`
	Description string        `bson:"description,omitempty" json:"description,omitempty"`
	CreatedAt   string        `bson:"created_at" json:"created_at"`
	UpdatedAt   string        `bson:"updated_at" json:"updated_at"`
	Languages   []LanguageRow `bson:"languages,omitempty" json:"languages,omitempty"`
}

// TranslationKeysRepositoryInterface defines translation key storage operations.
type TranslationKeysRepositoryInterface interface {
	// FetchKeysForProject returns the key rows of a project with nested
	// translations. Search (case-insensitive substring on key) and category
	// (exact match) are pushed down as query predicates; empty values mean
	// no filter.
	FetchKeysForProject(ctx context.Context, projectID, search, category string) ([]KeyRow, error)
	FindByID(ctx context.Context, keyID string) (*KeyRow, error)
	Insert(ctx context.Context, row *KeyRow) error
	// Delete removes the key row. Returns true only if a row was removed.
	Delete(ctx context.Context, keyID string) (bool, error)
	Count(ctx context.Context, projectID string) (int64, error)
}

// TranslationsRepositoryInterface defines translation row storage operations.
type TranslationsRepositoryInterface interface {
	InsertMany(ctx context.Context, rows []TranslationRow) error
	Exists(ctx context.Context, keyID, languageCode string) (bool, error)
	// Upsert sets the value for (keyID, languageCode), inserting a new row
	// with a generated id when none exists. Atomic per pair.
	Upsert(ctx context.Context, keyID, languageCode, value, updatedBy string) error
	DeleteForKey(ctx context.Context, keyID string) error
	// CountForLanguage counts a project's completed (non-blank) translations
	// for one language.
	CountForLanguage(ctx context.Context, projectID, languageCode string) (int64, error)
}

// ProjectsRepositoryInterface defines project storage operations.
type ProjectsRepositoryInterface interface {
	FetchAll(ctx context.Context) ([]ProjectRow, error)
	// FetchLanguageCodes returns the project's configured language codes.
	FetchLanguageCodes(ctx context.Context, projectID string) ([]string, error)
}
