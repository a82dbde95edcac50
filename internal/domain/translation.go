package domain

import (
	"strings"
	"time"
)

// ResolutionTier identifies which strategy produced a translation.
type ResolutionTier string

const (
	TierStatic ResolutionTier = "static"
	TierCache  ResolutionTier = "cache"
	TierAI     ResolutionTier = "ai"
	// TierFallback marks the untranslated source text returned when every
	// tier failed. Never cached.
	TierFallback ResolutionTier = "fallback"
)

// TranslationKey identifies a cached translation. Equality is exact string
// match after trimming; no further normalization.
type TranslationKey struct {
	SourceText string
	Target     Language
}

func NewTranslationKey(text string, target Language) TranslationKey {
	return TranslationKey{
		SourceText: strings.TrimSpace(text),
		Target:     target,
	}
}

// TranslationEntry is the cache-owned record of one resolved translation.
type TranslationEntry struct {
	Key         TranslationKey
	Value       string
	ResolvedVia ResolutionTier
	CreatedAt   time.Time
}

// TranslatedMessage is the /api/translate response payload.
type TranslatedMessage struct {
	Original   string `json:"original"`
	Translated string `json:"translated"`
	SourceLang string `json:"source_lang"`
	TargetLang string `json:"target_lang"`
}

// WarningText is the AI-generated (or statically assembled) rendering of one
// warning in one language.
type WarningText struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Action      string `json:"action,omitempty"`
}
