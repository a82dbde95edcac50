package translator

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/anzen-app/bosai-go/internal/constants"
	"github.com/anzen-app/bosai-go/internal/domain"
	"github.com/anzen-app/bosai-go/internal/phrase"
	"github.com/anzen-app/bosai-go/internal/service/ai"
	"github.com/anzen-app/bosai-go/internal/service/cache"
	"github.com/anzen-app/bosai-go/pkg/errors"
)

// SafetyGuide produces a localized safety guide for one disaster type.
// Guides are cached by (type, location, severity, language); on AI failure a
// basic Japanese guide is returned so the endpoint always has content.
func (s *Service) SafetyGuide(ctx context.Context, disasterType string, lang domain.Language, location string, severity domain.Severity) (domain.SafetyGuide, error) {
	if !phrase.ValidDisasterType(disasterType) {
		return domain.SafetyGuide{}, errors.NewValidationError("unknown disaster type", "disaster_type", disasterType)
	}
	if !lang.Valid() {
		return domain.SafetyGuide{}, errors.NewValidationError("unsupported language code", "lang", string(lang))
	}
	if severity == "" {
		severity = domain.SeverityMedium
	}

	cacheKey := cache.MakeKey(domain.NewTranslationKey(
		fmt.Sprintf("safety:%s:%s:%s", disasterType, location, severity),
		lang,
	))

	var guide domain.SafetyGuide
	if s.cache.GetJSON(ctx, cacheKey, &guide) && guide.Title != "" {
		guide.Cached = true
		return guide, nil
	}

	prompt := ai.BuildSafetyGuidePrompt(disasterType, lang, location, severity)
	var generated domain.SafetyGuide
	err := s.ai.GenerateJSON(ctx, prompt, constants.AITokenLimits.SafetyGuide, &generated)
	if err == nil && generated.Title != "" {
		generated.DisasterType = disasterType
		generated.Severity = severity
		generated.Location = location
		generated.Language = lang
		generated.GeneratedAt = time.Now().UTC().Format(time.RFC3339)
		s.cache.PutJSON(ctx, cacheKey, generated)
		return generated, nil
	}
	if err != nil {
		s.logger.Warn("Safety guide generation failed, using fallback",
			zap.String("disaster_type", disasterType),
			zap.String("target_lang", string(lang)),
			zap.Error(err),
		)
	}

	return fallbackSafetyGuide(disasterType, lang, location, severity), nil
}

// fallbackSafetyGuide is the static Japanese guide used when the AI tier is
// down. Life-safety basics only.
func fallbackSafetyGuide(disasterType string, lang domain.Language, location string, severity domain.Severity) domain.SafetyGuide {
	name := phrase.DisasterTypeName(disasterType, domain.LangJapanese)

	return domain.SafetyGuide{
		DisasterType: disasterType,
		Severity:     severity,
		Location:     location,
		Language:     lang,
		Title:        name + "の安全ガイド",
		Summary:      name + "が発生した場合の安全対策です。落ち着いて行動してください。",
		ImmediateActions: []string{
			"身の安全を確保してください",
			"最新の情報を確認してください",
			"必要に応じて避難してください",
		},
		PreparationTips: []string{
			"非常用持ち出し袋を準備しておきましょう",
			"避難場所を確認しておきましょう",
		},
		EvacuationInfo:    "市区町村の指示に従って避難してください",
		EmergencyContacts: "警察: 110 / 消防・救急: 119 / 海上保安庁: 118",
		AdditionalNotes:   "正確な情報は公式発表をご確認ください",
		GeneratedAt:       time.Now().UTC().Format(time.RFC3339),
	}
}
