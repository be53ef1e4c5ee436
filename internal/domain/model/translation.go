// Package model defines the localization domain entities.
package model

import (
	"strings"
	"time"
)

// Translation is the localized value of a translation key for one language.
type Translation struct {
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
	UpdatedBy string    `json:"updated_by"`
}

// Completed reports whether the translation counts as done.
// A translation with a blank value is not completed even though the row exists.
func (t Translation) Completed() bool {
	return strings.TrimSpace(t.Value) != ""
}

// TranslationKey is a named, categorized unit of translatable content scoped
// to one project. Translations is keyed by language code; at most one entry
// per language.
type TranslationKey struct {
	ID           string                 `json:"id"`
	Key          string                 `json:"key"`
	Category     string                 `json:"category"`
	Description  string                 `json:"description,omitempty"`
	Translations map[string]Translation `json:"translations"`
}

// HasCompletedTranslation reports whether the key has a non-blank translation
// for the given language code. An absent entry and a blank value are
// equivalent failure states.
func (k *TranslationKey) HasCompletedTranslation(languageCode string) bool {
	t, ok := k.Translations[languageCode]
	return ok && t.Completed()
}

// MissingAnyOf reports whether the key lacks a completed translation for at
// least one of the given language codes.
func (k *TranslationKey) MissingAnyOf(languageCodes []string) bool {
	for _, code := range languageCodes {
		if !k.HasCompletedTranslation(code) {
			return true
		}
	}
	return false
}

// Language is a language configured for a project.
type Language struct {
	Code string `json:"code"`
	Name string `json:"name"`
	Flag string `json:"flag,omitempty"`
}

// Project is a named collection of translation keys with a configured
// language set.
type Project struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Languages   []Language `json:"languages"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
