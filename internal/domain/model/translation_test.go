package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslationCompleted(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{"non-blank value", "Hello", true},
		{"empty value", "", false},
		{"whitespace only", "   \t", false},
		{"value with surrounding spaces", "  Hi  ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Translation{Value: tt.value}.Completed())
		})
	}
}

func TestHasCompletedTranslation(t *testing.T) {
	key := TranslationKey{
		Translations: map[string]Translation{
			"en": {Value: "Hello"},
			"de": {Value: ""},
		},
	}

	assert.True(t, key.HasCompletedTranslation("en"))
	// A stored blank row is equivalent to no row at all.
	assert.False(t, key.HasCompletedTranslation("de"))
	assert.False(t, key.HasCompletedTranslation("fr"))
}

func TestMissingAnyOf(t *testing.T) {
	key := TranslationKey{
		Translations: map[string]Translation{
			"en": {Value: "Hello"},
			"de": {Value: "Hallo"},
		},
	}

	assert.False(t, key.MissingAnyOf([]string{"en", "de"}))
	assert.True(t, key.MissingAnyOf([]string{"en", "de", "fr"}))
	// No configured languages means nothing can be missing.
	assert.False(t, key.MissingAnyOf(nil))
}
