// Package phrase holds the compile-time disaster vocabulary: curated
// location names, seismic intensity labels, tsunami warning levels, the JMA
// warning-code catalog, and templated alert sentences, each bound to all 16
// supported languages at load time. It is the first (free, instantaneous)
// tier of the hybrid translator.
package phrase

import (
	"github.com/anzen-app/bosai-go/internal/domain"
)

// entry is one curated vocabulary item. Latin-script languages that have no
// explicit override share the English/romanized rendering, which matches how
// Japanese proper nouns are written in those languages.
type entry struct {
	ja     string
	en     string
	zh     string
	zhTW   string
	ko     string
	vi     string
	easyJA string
	extra  map[domain.Language]string
}

func (e entry) expand() map[domain.Language]string {
	m := map[domain.Language]string{
		domain.LangEnglish:      e.en,
		domain.LangChinese:      e.zh,
		domain.LangChineseTW:    e.zhTW,
		domain.LangKorean:       e.ko,
		domain.LangVietnamese:   e.vi,
		domain.LangEasyJapanese: e.easyJA,
		domain.LangThai:         e.en,
		domain.LangIndonesian:   e.en,
		domain.LangMalay:        e.en,
		domain.LangTagalog:      e.en,
		domain.LangFrench:       e.en,
		domain.LangGerman:       e.en,
		domain.LangItalian:      e.en,
		domain.LangSpanish:      e.en,
		domain.LangNepali:       e.en,
	}
	for lang, v := range e.extra {
		m[lang] = v
	}
	return m
}

// Table is the immutable static phrase table. Construct once with NewTable
// and share; all lookups are read-only.
type Table struct {
	locations     map[string]map[domain.Language]string
	intensities   map[string]map[domain.Language]string
	tsunami       map[string]map[domain.Language]string
	volcanoLevels map[string]map[domain.Language]string
}

func NewTable() *Table {
	t := &Table{
		locations:     make(map[string]map[domain.Language]string, len(locationEntries)),
		intensities:   make(map[string]map[domain.Language]string, len(intensityEntries)),
		tsunami:       make(map[string]map[domain.Language]string, len(tsunamiEntries)),
		volcanoLevels: make(map[string]map[domain.Language]string, len(volcanoLevelEntries)),
	}
	for _, e := range locationEntries {
		t.locations[e.ja] = e.expand()
	}
	for _, e := range intensityEntries {
		t.intensities[e.ja] = e.expand()
	}
	for _, e := range tsunamiEntries {
		t.tsunami[e.ja] = e.expand()
	}
	for _, e := range volcanoLevelEntries {
		t.volcanoLevels[e.ja] = e.expand()
	}
	return t
}

// Lookup resolves text against every static table. A miss returns ("",
// false) and is the expected common case for free-form sentences; the caller
// falls through to the next translation tier.
func (t *Table) Lookup(text string, lang domain.Language) (string, bool) {
	if v, ok := t.Location(text, lang); ok {
		return v, true
	}
	if v, ok := t.Intensity(text, lang); ok {
		return v, true
	}
	if v, ok := t.Tsunami(text, lang); ok {
		return v, true
	}
	if v, ok := t.VolcanoLevel(text, lang); ok {
		return v, true
	}
	return "", false
}

// Location resolves a curated epicenter/prefecture name. Exact match only,
// no fuzzy matching.
func (t *Table) Location(name string, lang domain.Language) (string, bool) {
	translations, ok := t.locations[name]
	if !ok {
		return "", false
	}
	v, ok := translations[lang]
	return v, ok
}

// Intensity resolves a seismic intensity label such as "5弱".
func (t *Table) Intensity(value string, lang domain.Language) (string, bool) {
	translations, ok := t.intensities[value]
	if !ok {
		return "", false
	}
	v, ok := translations[lang]
	return v, ok
}

// Tsunami resolves a tsunami warning level such as "津波警報".
func (t *Table) Tsunami(value string, lang domain.Language) (string, bool) {
	translations, ok := t.tsunami[value]
	if !ok {
		return "", false
	}
	v, ok := translations[lang]
	return v, ok
}

// VolcanoLevel resolves an eruption alert level name such as "入山規制".
func (t *Table) VolcanoLevel(value string, lang domain.Language) (string, bool) {
	translations, ok := t.volcanoLevels[value]
	if !ok {
		return "", false
	}
	v, ok := translations[lang]
	return v, ok
}

// LocationCount reports how many curated location names are registered.
func (t *Table) LocationCount() int {
	return len(t.locations)
}
