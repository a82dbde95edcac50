// Package server exposes the alert pipeline over HTTP.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/anzen-app/bosai-go/internal/domain"
	"github.com/anzen-app/bosai-go/internal/util"
)

// Translator resolves text and generates safety guides.
type Translator interface {
	Resolve(ctx context.Context, text string, lang domain.Language) (domain.TranslationEntry, error)
	SafetyGuide(ctx context.Context, disasterType string, lang domain.Language, location string, severity domain.Severity) (domain.SafetyGuide, error)
}

// WarningSource produces the merged nationwide warning view.
type WarningSource interface {
	AggregateAll(ctx context.Context, lang domain.Language) *domain.AggregationResult
}

// AreaWarningFetcher fetches the warnings of a single forecast area.
type AreaWarningFetcher interface {
	FetchWarnings(ctx context.Context, areaCode string, lang domain.Language) ([]domain.WarningRecord, error)
}

// QuakeSource lists recent earthquake reports.
type QuakeSource interface {
	RecentEarthquakes(ctx context.Context, limit int, lang domain.Language) []domain.EarthquakeInfo
}

// TsunamiSource lists bulletins from the JMA tsunami feed.
type TsunamiSource interface {
	Recent(ctx context.Context, limit int, lang domain.Language) []domain.TsunamiInfo
	ActiveWarnings(ctx context.Context, lang domain.Language) []domain.TsunamiInfo
}

// VolcanoSource lists the volcano catalog and its eruption alerts.
type VolcanoSource interface {
	Volcanoes(ctx context.Context, lang domain.Language) []domain.VolcanoInfo
	Warnings(ctx context.Context, lang domain.Language) []domain.VolcanoWarning
}

// ShelterDirectory looks up evacuation sites.
type ShelterDirectory interface {
	Nearby(ctx context.Context, lat, lon, radiusKM float64, limit int, disasterType string, lang domain.Language) []domain.Shelter
	All(ctx context.Context, limit int, lang domain.Language) []domain.Shelter
	ByType(ctx context.Context, disasterType string, limit int, lang domain.Language) []domain.Shelter
	ByID(ctx context.Context, id string, lang domain.Language) (domain.Shelter, bool)
	DisasterTypes() map[string]string
}

// AIHealth reports whether the generative tier is accepting calls.
type AIHealth interface {
	Healthy() bool
	CircuitStatus() util.CircuitBreakerStatus
}

// Deps carries every service the HTTP layer fronts.
type Deps struct {
	Translator Translator
	Warnings   WarningSource
	Areas      AreaWarningFetcher
	Quakes     QuakeSource
	Tsunamis   TsunamiSource
	Volcanoes  VolcanoSource
	Shelters   ShelterDirectory
	AI         AIHealth
}

type Server struct {
	translator Translator
	warnings   WarningSource
	areas      AreaWarningFetcher
	quakes     QuakeSource
	tsunamis   TsunamiSource
	volcanoes  VolcanoSource
	shelters   ShelterDirectory
	ai         AIHealth
	logger     *zap.Logger
}

func NewServer(deps Deps, logger *zap.Logger) *Server {
	return &Server{
		translator: deps.Translator,
		warnings:   deps.Warnings,
		areas:      deps.Areas,
		quakes:     deps.Quakes,
		tsunamis:   deps.Tsunamis,
		volcanoes:  deps.Volcanoes,
		shelters:   deps.Shelters,
		ai:         deps.AI,
		logger:     logger,
	}
}

// Handler builds the router. Warning aggregation can take tens of seconds
// when the AI tier is involved, hence the generous request timeout.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(s.requestLogger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(60 * time.Second))

	r.Get("/health", s.handleHealth)
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	r.Route("/api", func(r chi.Router) {
		r.Get("/languages", s.handleLanguages)
		r.Post("/translate", s.handleTranslate)
		r.Get("/warnings", s.handleWarnings)
		r.Get("/warnings/special", s.handleSpecialWarnings)
		r.Get("/warnings/{areaCode}", s.handleAreaWarnings)
		r.Get("/earthquakes", s.handleEarthquakes)
		r.Get("/tsunami", s.handleTsunamis)
		r.Get("/tsunami/active", s.handleActiveTsunamis)
		r.Get("/volcanoes", s.handleVolcanoes)
		r.Get("/volcanoes/warnings", s.handleVolcanoWarnings)
		r.Get("/shelters", s.handleShelters)
		r.Get("/shelters/types", s.handleShelterTypes)
		r.Get("/shelters/{shelterID}", s.handleShelterByID)
		r.Get("/safety-guide", s.handleSafetyGuide)
	})

	return r
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info("HTTP request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("elapsed", time.Since(start)),
			zap.String("request_id", chimw.GetReqID(r.Context())),
		)
	})
}
