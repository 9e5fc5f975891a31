package model

import (
	"fmt"
	"strings"

	"github.com/Veraticus/cardfinder/internal/common"
	"golang.org/x/text/language"
)

// Language is one of the display languages the catalog is written in.
type Language string

const (
	// LanguageEnglish selects English text.
	LanguageEnglish Language = "en"
	// LanguageThai selects Thai text.
	LanguageThai Language = "th"
)

// SupportedLanguages lists every language, in the order used for tag matching.
var SupportedLanguages = []Language{LanguageEnglish, LanguageThai}

var languageMatcher = language.NewMatcher([]language.Tag{language.English, language.Thai})

// Valid reports whether l is a supported language.
func (l Language) Valid() bool {
	return l == LanguageEnglish || l == LanguageThai
}

// Other returns the secondary language for bilingual matching.
func (l Language) Other() Language {
	if l == LanguageThai {
		return LanguageEnglish
	}
	return LanguageThai
}

// ParseLanguage resolves a BCP 47 tag such as "th-TH" or "en_US" to a supported language.
func ParseLanguage(s string) (Language, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("%w: empty language", common.ErrUnsupportedLanguage)
	}

	tag, err := language.Parse(strings.ReplaceAll(s, "_", "-"))
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", common.ErrUnsupportedLanguage, s, err)
	}

	_, idx, confidence := languageMatcher.Match(tag)
	if confidence == language.No {
		return "", fmt.Errorf("%w: %q", common.ErrUnsupportedLanguage, s)
	}

	return SupportedLanguages[idx], nil
}

// LocalizedText holds one logical text field in every supported language.
type LocalizedText struct {
	EN string `yaml:"en" json:"en"`
	TH string `yaml:"th" json:"th"`
}

// Get returns the text for lang, falling back to English and then to Thai.
func (t LocalizedText) Get(lang Language) string {
	if lang == LanguageThai && t.TH != "" {
		return t.TH
	}
	if t.EN != "" {
		return t.EN
	}
	return t.TH
}

// Exact returns the text for lang without any fallback.
func (t LocalizedText) Exact(lang Language) string {
	if lang == LanguageThai {
		return t.TH
	}
	return t.EN
}

// IsEmpty reports whether no language carries any text.
func (t LocalizedText) IsEmpty() bool {
	return strings.TrimSpace(t.EN) == "" && strings.TrimSpace(t.TH) == ""
}

// Map applies fn to every language variant.
func (t LocalizedText) Map(fn func(string) string) LocalizedText {
	return LocalizedText{EN: fn(t.EN), TH: fn(t.TH)}
}
