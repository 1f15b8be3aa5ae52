package domain

import "golang.org/x/text/language"

// Language is one of the two supported storefront locales.
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageArabic  Language = "ar"
)

// Toggle flips between the two supported locales. Any unknown value flips to
// English, so a corrupted persisted value self-heals on the next toggle.
func (l Language) Toggle() Language {
	if l == LanguageEnglish {
		return LanguageArabic
	}
	return LanguageEnglish
}

// Tag returns the BCP 47 tag for the locale.
func (l Language) Tag() language.Tag {
	if l == LanguageArabic {
		return language.Arabic
	}
	return language.English
}

// Direction returns the document text direction for the locale.
func (l Language) Direction() string {
	if l == LanguageArabic {
		return "rtl"
	}
	return "ltr"
}

// Theme is one of the two supported color schemes.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Toggle flips between light and dark. Unknown values flip to light, matching
// Language.Toggle's self-healing behavior.
func (t Theme) Toggle() Theme {
	if t == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}

// Class returns the document style class for the theme; empty for light.
func (t Theme) Class() string {
	if t == ThemeDark {
		return "dark"
	}
	return ""
}

// DocumentAttributes are the document-level side effects of the current
// preferences: text direction, language code, and theme class. The view layer
// applies them to the root element on every preference change.
type DocumentAttributes struct {
	Dir        string `json:"dir"`
	Lang       string `json:"lang"`
	ThemeClass string `json:"themeClass,omitempty"`
}

// Attributes derives the document attributes for a language/theme pair.
func Attributes(lang Language, theme Theme) DocumentAttributes {
	return DocumentAttributes{
		Dir:        lang.Direction(),
		Lang:       lang.Tag().String(),
		ThemeClass: theme.Class(),
	}
}
