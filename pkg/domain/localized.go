package domain

// Language identifies a supported UI locale.
type Language string

const (
	LangEN Language = "EN"
	LangDE Language = "DE"
	LangFR Language = "FR"
)

// FallbackLanguage is used when a locale map lacks the requested entry.
const FallbackLanguage = LangEN

// Localized maps a language to its translation of one text field.
type Localized map[Language]string

// Get returns the translation for lang, falling back to English and
// then to the empty string. A missing translation is never an error.
func (l Localized) Get(lang Language) string {
	if l == nil {
		return ""
	}
	if v, ok := l[lang]; ok && v != "" {
		return v
	}
	return l[FallbackLanguage]
}

// GetOr is Get with a caller-supplied placeholder for fully absent text.
func (l Localized) GetOr(lang Language, placeholder string) string {
	if v := l.Get(lang); v != "" {
		return v
	}
	return placeholder
}
