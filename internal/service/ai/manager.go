package ai

import (
	"context"
	"regexp"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/anzen-app/bosai-go/internal/constants"
	"github.com/anzen-app/bosai-go/internal/domain"
	"github.com/anzen-app/bosai-go/internal/observability"
	"github.com/anzen-app/bosai-go/internal/util"
	"github.com/anzen-app/bosai-go/pkg/errors"
)

// ManagerConfig selects providers and call budgets. Provider is one of
// "gemini", "openai", "auto" (gemini first).
type ManagerConfig struct {
	Provider         string
	EnableFallback   bool
	GeminiAPIKey     string
	GeminiModel      string
	OpenAIAPIKey     string
	OpenAIModel      string
	TranslateTimeout time.Duration
	GenerateTimeout  time.Duration
}

// Manager routes generation calls to the configured provider order and
// guards the backends with a shared circuit breaker. Translation calls and
// document generation calls carry separate deadlines because a one-line
// translation and a full safety guide have very different budgets.
type Manager struct {
	providers        []Provider
	enableFallback   bool
	translateTimeout time.Duration
	generateTimeout  time.Duration
	circuitBreaker   *util.CircuitBreaker
	metrics          *observability.Metrics
	logger           *zap.Logger
}

func NewManager(ctx context.Context, cfg ManagerConfig, metrics *observability.Metrics, logger *zap.Logger) (*Manager, error) {
	var gemini Provider
	if cfg.GeminiAPIKey != "" {
		p, err := NewGeminiProvider(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, logger)
		if err != nil {
			return nil, err
		}
		gemini = p
	}

	var openAI Provider
	if p := NewOpenAIProvider(cfg.OpenAIAPIKey, cfg.OpenAIModel, logger); p != nil {
		openAI = p
	}

	var providers []Provider
	switch cfg.Provider {
	case "openai":
		providers = appendProviders(openAI, gemini)
	default: // "gemini" and "auto"
		providers = appendProviders(gemini, openAI)
	}
	if len(providers) == 0 {
		return nil, errors.NewProviderError("no AI provider configured", cfg.Provider, nil)
	}

	m := newManager(providers, cfg.EnableFallback, cfg.TranslateTimeout, cfg.GenerateTimeout, metrics, logger)

	names := make([]string, len(providers))
	for i, p := range providers {
		names[i] = p.Name()
	}
	logger.Info("AI manager initialized",
		zap.Strings("providers", names),
		zap.Bool("fallback", m.enableFallback),
	)
	return m, nil
}

func newManager(providers []Provider, enableFallback bool, translateTimeout, generateTimeout time.Duration, metrics *observability.Metrics, logger *zap.Logger) *Manager {
	m := &Manager{
		providers:        providers,
		enableFallback:   enableFallback && len(providers) > 1,
		translateTimeout: translateTimeout,
		generateTimeout:  generateTimeout,
		metrics:          metrics,
		logger:           logger,
	}
	m.circuitBreaker = util.NewCircuitBreaker(
		constants.CircuitBreakerConfig.FailureThreshold,
		constants.CircuitBreakerConfig.ResetTimeout,
		constants.CircuitBreakerConfig.HealthCheckInterval,
		m.healthCheckPing,
		logger,
	)
	return m
}

func appendProviders(providers ...Provider) []Provider {
	var out []Provider
	for _, p := range providers {
		if p != nil {
			out = append(out, p)
		}
	}
	return out
}

// TranslateText translates one piece of Japanese alert text. Exactly one
// round trip per provider attempt; no retries.
func (m *Manager) TranslateText(ctx context.Context, text string, lang domain.Language) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, m.translateTimeout)
	defer cancel()

	raw, provider, err := m.generate(ctx, BuildTranslatePrompt(text, lang), GenerateOptions{
		JSONMode:  true,
		MaxTokens: constants.AITokenLimits.Translate,
	})
	if err != nil {
		return "", err
	}

	var payload struct {
		Translation string `json:"translation"`
	}
	if err := DecodeJSON(raw, &payload); err != nil {
		m.logger.Warn("Translation response unusable",
			zap.String("provider", provider),
			zap.Error(err),
		)
		return "", err
	}

	translated := strings.TrimSpace(payload.Translation)
	if translated == "" {
		return "", errors.NewMalformedTranslationError("translation field empty", raw, nil)
	}
	return translated, nil
}

// GenerateJSON runs a document generation prompt and unmarshals the
// extracted JSON into dest.
func (m *Manager) GenerateJSON(ctx context.Context, prompt string, maxTokens int, dest any) error {
	ctx, cancel := context.WithTimeout(ctx, m.generateTimeout)
	defer cancel()

	raw, provider, err := m.generate(ctx, prompt, GenerateOptions{
		JSONMode:  true,
		MaxTokens: maxTokens,
	})
	if err != nil {
		return err
	}

	if err := DecodeJSON(raw, dest); err != nil {
		m.logger.Warn("Generation response unusable",
			zap.String("provider", provider),
			zap.Error(err),
		)
		return err
	}
	return nil
}

// generate tries the provider order once each. The second provider is only
// consulted when fallback is enabled.
func (m *Manager) generate(ctx context.Context, prompt string, opts GenerateOptions) (string, string, error) {
	if !m.circuitBreaker.CanExecute() {
		status := m.circuitBreaker.GetStatus()
		m.logger.Warn("AI tier skipped (circuit open)",
			zap.String("state", status.State.String()),
			zap.Int("failure_count", status.FailureCount),
		)
		return "", "", errors.NewProviderError("AI backends unavailable (circuit open)", "all", nil)
	}

	var lastErr error
	attempts := m.providers
	if !m.enableFallback {
		attempts = m.providers[:1]
	}

	for i, p := range attempts {
		text, err := p.Generate(ctx, prompt, opts)
		if err == nil {
			m.metrics.ProviderCalls.WithLabelValues(p.Name(), "success").Inc()
			m.circuitBreaker.RecordSuccess()
			if i > 0 {
				m.logger.Info("Provider fallback used", zap.String("provider", p.Name()))
			}
			return text, p.Name(), nil
		}
		lastErr = err
		m.metrics.ProviderCalls.WithLabelValues(p.Name(), "error").Inc()
		m.logger.Warn("Provider call failed",
			zap.String("provider", p.Name()),
			zap.Error(err),
		)
	}

	if m.isServiceFailure(lastErr) {
		timeout := constants.CircuitBreakerConfig.ResetTimeout
		if m.isRateLimitError(lastErr) {
			timeout = constants.CircuitBreakerConfig.RateLimitTimeout
		}
		m.circuitBreaker.RecordFailure(timeout)
	}
	return "", "", lastErr
}

func (m *Manager) healthCheckPing() bool {
	ctx, cancel := context.WithTimeout(context.Background(), constants.CircuitBreakerConfig.HealthCheckTimeout)
	defer cancel()

	for _, p := range m.providers {
		if p.Ping(ctx) {
			return true
		}
	}
	return false
}

// Healthy reports whether the AI tier is accepting calls.
func (m *Manager) Healthy() bool {
	return m.circuitBreaker.CanExecute()
}

// CircuitStatus exposes breaker state for the health endpoint.
func (m *Manager) CircuitStatus() util.CircuitBreakerStatus {
	return m.circuitBreaker.GetStatus()
}

func (m *Manager) isServiceFailure(err error) bool {
	if err == nil {
		return false
	}

	msg := err.Error()
	if strings.Contains(msg, "timeout") || strings.Contains(msg, "deadline exceeded") {
		return true
	}
	if m.isRateLimitError(err) {
		return true
	}

	if matches := embeddedStatusRegex.FindStringSubmatch(msg); len(matches) > 1 {
		if code, convErr := strconv.Atoi(matches[1]); convErr == nil {
			return code >= 500 && code < 600
		}
	}
	return statusRegex.MatchString(msg)
}

func (m *Manager) isRateLimitError(err error) bool {
	if err == nil {
		return false
	}

	msg := err.Error()
	if strings.Contains(msg, "429") || strings.Contains(msg, "Rate limit") || strings.Contains(msg, "quota") {
		return true
	}
	if matches := embeddedStatusRegex.FindStringSubmatch(msg); len(matches) > 1 {
		if code, convErr := strconv.Atoi(matches[1]); convErr == nil {
			return code == 429
		}
	}
	return false
}

var (
	statusRegex         = regexp.MustCompile(`\b(5\d{2})\b`)
	embeddedStatusRegex = regexp.MustCompile(`"code":(\d{3})`)
)
