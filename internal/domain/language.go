package domain

import "github.com/anzen-app/bosai-go/pkg/errors"

// Language is one of the 16 supported language codes.
type Language string

const (
	LangJapanese     Language = "ja"
	LangEnglish      Language = "en"
	LangChinese      Language = "zh"
	LangChineseTW    Language = "zh-TW"
	LangKorean       Language = "ko"
	LangVietnamese   Language = "vi"
	LangThai         Language = "th"
	LangIndonesian   Language = "id"
	LangMalay        Language = "ms"
	LangTagalog      Language = "tl"
	LangFrench       Language = "fr"
	LangGerman       Language = "de"
	LangItalian      Language = "it"
	LangSpanish      Language = "es"
	LangNepali       Language = "ne"
	LangEasyJapanese Language = "easy_ja"
)

// SupportedLanguages lists every language the system translates into,
// in display order.
var SupportedLanguages = []Language{
	LangJapanese, LangEnglish, LangChinese, LangChineseTW, LangKorean,
	LangVietnamese, LangThai, LangIndonesian, LangMalay, LangTagalog,
	LangFrench, LangGerman, LangItalian, LangSpanish, LangNepali,
	LangEasyJapanese,
}

// LanguageNames maps codes to native display names, used by the
// /api/languages endpoint.
var LanguageNames = map[Language]string{
	LangJapanese:     "日本語",
	LangEnglish:      "English",
	LangChinese:      "简体中文",
	LangChineseTW:    "繁體中文",
	LangKorean:       "한국어",
	LangVietnamese:   "Tiếng Việt",
	LangThai:         "ภาษาไทย",
	LangIndonesian:   "Bahasa Indonesia",
	LangMalay:        "Bahasa Melayu",
	LangTagalog:      "Tagalog",
	LangFrench:       "Français",
	LangGerman:       "Deutsch",
	LangItalian:      "Italiano",
	LangSpanish:      "Español",
	LangNepali:       "नेपाली",
	LangEasyJapanese: "やさしい日本語",
}

// PromptNames maps codes to the English names used when instructing the AI
// provider which language to produce.
var PromptNames = map[Language]string{
	LangJapanese:     "Japanese",
	LangEnglish:      "English",
	LangChinese:      "Simplified Chinese",
	LangChineseTW:    "Traditional Chinese",
	LangKorean:       "Korean",
	LangVietnamese:   "Vietnamese",
	LangThai:         "Thai",
	LangIndonesian:   "Indonesian",
	LangMalay:        "Malay",
	LangTagalog:      "Tagalog",
	LangFrench:       "French",
	LangGerman:       "German",
	LangItalian:      "Italian",
	LangSpanish:      "Spanish",
	LangNepali:       "Nepali",
	LangEasyJapanese: "simple Japanese (easy Japanese for non-native readers, hiragana-heavy)",
}

// PromptName returns the English instruction name for a language.
func (l Language) PromptName() string {
	if name, ok := PromptNames[l]; ok {
		return name
	}
	return string(l)
}

// Valid reports whether l is one of the 16 supported codes.
func (l Language) Valid() bool {
	_, ok := LanguageNames[l]
	return ok
}

// ParseLanguage validates a raw code. An unsupported code is a caller bug,
// the only failure the translation API surfaces as a hard error.
func ParseLanguage(raw string) (Language, error) {
	lang := Language(raw)
	if !lang.Valid() {
		return "", errors.NewValidationError("unsupported language code", "target_lang", raw)
	}
	return lang, nil
}
