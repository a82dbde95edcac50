// Package translator resolves Japanese disaster text into the supported
// languages through three tiers: the static phrase table, the durable
// translation cache, and the AI providers. Every failure degrades toward
// returning the Japanese source text; translation never blocks an alert.
package translator

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/anzen-app/bosai-go/internal/constants"
	"github.com/anzen-app/bosai-go/internal/domain"
	"github.com/anzen-app/bosai-go/internal/observability"
	"github.com/anzen-app/bosai-go/internal/phrase"
	"github.com/anzen-app/bosai-go/internal/service/ai"
	"github.com/anzen-app/bosai-go/internal/service/cache"
	"github.com/anzen-app/bosai-go/pkg/errors"
)

// AIClient is the generative tier as the translator sees it.
type AIClient interface {
	TranslateText(ctx context.Context, text string, lang domain.Language) (string, error)
	GenerateJSON(ctx context.Context, prompt string, maxTokens int, dest any) error
}

type Service struct {
	table   *phrase.Table
	cache   *cache.Service
	ai      AIClient
	metrics *observability.Metrics
	logger  *zap.Logger
}

func NewService(table *phrase.Table, cacheSvc *cache.Service, aiClient AIClient, metrics *observability.Metrics, logger *zap.Logger) *Service {
	return &Service{
		table:   table,
		cache:   cacheSvc,
		ai:      aiClient,
		metrics: metrics,
		logger:  logger,
	}
}

// Resolve translates text into lang and records how the result was
// produced. An unsupported language or oversized text is the only hard
// error; AI trouble resolves to the source text instead.
func (s *Service) Resolve(ctx context.Context, text string, lang domain.Language) (domain.TranslationEntry, error) {
	if !lang.Valid() {
		return domain.TranslationEntry{}, errors.NewValidationError("unsupported language code", "target_lang", string(lang))
	}

	key := domain.NewTranslationKey(text, lang)
	if len(key.SourceText) > constants.AIInputLimits.MaxTextLength {
		return domain.TranslationEntry{}, errors.NewValidationError("text too long", "text", len(key.SourceText))
	}

	entry := domain.TranslationEntry{
		Key:       key,
		CreatedAt: time.Now().UTC(),
	}
	if key.SourceText == "" || lang == domain.LangJapanese {
		entry.Value = key.SourceText
		entry.ResolvedVia = domain.TierStatic
		return entry, nil
	}

	start := time.Now()
	entry.Value, entry.ResolvedVia = s.resolve(ctx, key)
	s.metrics.TranslationDuration.Observe(time.Since(start).Seconds())
	s.metrics.TranslationsResolved.WithLabelValues(string(entry.ResolvedVia)).Inc()
	return entry, nil
}

// Translate is Resolve reduced to the translated text and its tier.
func (s *Service) Translate(ctx context.Context, text string, lang domain.Language) (string, domain.ResolutionTier, error) {
	entry, err := s.Resolve(ctx, text, lang)
	if err != nil {
		return "", "", err
	}
	return entry.Value, entry.ResolvedVia, nil
}

func (s *Service) resolve(ctx context.Context, key domain.TranslationKey) (string, domain.ResolutionTier) {
	if v, ok := s.table.Lookup(key.SourceText, key.Target); ok {
		return v, domain.TierStatic
	}

	if v, ok := s.cache.Get(ctx, key); ok {
		return v, domain.TierCache
	}

	translated, err := s.ai.TranslateText(ctx, key.SourceText, key.Target)
	if err != nil {
		s.logger.Warn("AI translation failed, returning source text",
			zap.String("target_lang", string(key.Target)),
			zap.Int("text_length", len(key.SourceText)),
			zap.Error(err),
		)
		return key.SourceText, domain.TierFallback
	}

	s.cache.Put(ctx, key, translated)
	return translated, domain.TierAI
}

// TranslateLocation resolves an epicenter or area name. Identical tiers to
// Translate but with an identity result on any hard error, because location
// labels decorate data that must ship regardless.
func (s *Service) TranslateLocation(ctx context.Context, name string, lang domain.Language) string {
	translated, _, err := s.Translate(ctx, name, lang)
	if err != nil {
		return name
	}
	return translated
}

// Intensity translates a seismic intensity label. Static only; unknown
// labels pass through.
func (s *Service) Intensity(value string, lang domain.Language) string {
	if lang == domain.LangJapanese {
		return value
	}
	if v, ok := s.table.Intensity(value, lang); ok {
		return v
	}
	return value
}

// TsunamiLabel translates a tsunami warning level. Static only.
func (s *Service) TsunamiLabel(value string, lang domain.Language) string {
	if lang == domain.LangJapanese {
		return value
	}
	if v, ok := s.table.Tsunami(value, lang); ok {
		return v
	}
	return value
}

// VolcanoLevel translates an eruption alert level name. Static only.
func (s *Service) VolcanoLevel(value string, lang domain.Language) string {
	if lang == domain.LangJapanese {
		return value
	}
	if v, ok := s.table.VolcanoLevel(value, lang); ok {
		return v
	}
	return value
}

// EarthquakeMessage renders the localized earthquake summary sentence.
// Location and intensity are translated before templating.
func (s *Service) EarthquakeMessage(ctx context.Context, lang domain.Language, quake domain.EarthquakeInfo) string {
	return s.table.EarthquakeMessage(lang, phrase.EarthquakeMessageParams{
		Location:       s.TranslateLocation(ctx, quake.Location, lang),
		Magnitude:      quake.Magnitude,
		Intensity:      s.Intensity(quake.MaxIntensity, lang),
		Depth:          quake.Depth,
		TsunamiWarning: quake.TsunamiWarning,
	})
}

// WarningText produces the localized name, description, and recommended
// action for one warning. Japanese is assembled statically; other languages
// go through the cache and then the AI tier. On AI failure only the name is
// translated (with its own fallback) and description/action stay empty.
func (s *Service) WarningText(ctx context.Context, warningNameJA string, lang domain.Language, areaNameJA string, severity domain.Severity) domain.WarningText {
	if lang == domain.LangJapanese {
		return domain.WarningText{
			Name:        warningNameJA,
			Description: phrase.WarningDescription(areaNameJA, warningNameJA, domain.LangJapanese),
			Action:      phrase.DefaultActionJA(severity),
		}
	}

	cacheKey := cache.MakeKey(domain.NewTranslationKey(
		fmt.Sprintf("warning:%s:%s:%s", warningNameJA, areaNameJA, severity),
		lang,
	))

	var cached domain.WarningText
	if s.cache.GetJSON(ctx, cacheKey, &cached) && cached.Name != "" {
		return cached
	}

	prompt := ai.BuildWarningTextPrompt(warningNameJA, lang, areaNameJA, severity)
	var generated domain.WarningText
	if err := s.ai.GenerateJSON(ctx, prompt, constants.AITokenLimits.WarningText, &generated); err == nil && generated.Name != "" {
		s.cache.PutJSON(ctx, cacheKey, generated)
		return generated
	} else if err != nil {
		s.logger.Warn("Warning text generation failed",
			zap.String("warning", warningNameJA),
			zap.String("target_lang", string(lang)),
			zap.Error(err),
		)
	}

	name, _, err := s.Translate(ctx, warningNameJA, lang)
	if err != nil || name == "" {
		name = warningNameJA
	}
	return domain.WarningText{Name: name}
}
