package server

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/anzen-app/bosai-go/internal/domain"
	"github.com/anzen-app/bosai-go/internal/service/jma"
	"github.com/anzen-app/bosai-go/internal/service/shelter"
	"github.com/anzen-app/bosai-go/pkg/errors"
)

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("Response encoding failed", zap.Error(err))
	}
}

func (s *Server) respondError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	code := "INTERNAL_ERROR"

	var alertErr *errors.AlertError
	var validationErr *errors.ValidationError
	var apiErr *errors.APIError
	switch {
	case stderrors.As(err, &validationErr):
		status = http.StatusBadRequest
		code = validationErr.Code
	case stderrors.As(err, &apiErr):
		// Upstream feed trouble is a gateway problem from the caller's view.
		status = http.StatusBadGateway
		code = apiErr.Code
	case stderrors.As(err, &alertErr):
		if alertErr.StatusCode >= 400 && alertErr.StatusCode < 600 {
			status = alertErr.StatusCode
		}
		code = alertErr.Code
	}

	s.respondJSON(w, status, map[string]errorBody{
		"error": {Code: code, Message: err.Error()},
	})
}

// langParam reads ?lang=; absence means Japanese.
func langParam(r *http.Request) (domain.Language, error) {
	raw := r.URL.Query().Get("lang")
	if raw == "" {
		return domain.LangJapanese, nil
	}
	return domain.ParseLanguage(raw)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	circuit := s.ai.CircuitStatus()
	aiHealthy := s.ai.Healthy()

	status := "ok"
	if !aiHealthy {
		// Static and cached translations still work with the AI tier down.
		status = "degraded"
	}

	s.respondJSON(w, http.StatusOK, map[string]any{
		"status": status,
		"time":   time.Now().UTC().Format(time.RFC3339),
		"ai": map[string]any{
			"healthy":       aiHealthy,
			"circuit_state": circuit.State.String(),
			"failure_count": circuit.FailureCount,
		},
	})
}

func (s *Server) handleLanguages(w http.ResponseWriter, r *http.Request) {
	type languageInfo struct {
		Code string `json:"code"`
		Name string `json:"name"`
	}

	languages := make([]languageInfo, 0, len(domain.SupportedLanguages))
	for _, lang := range domain.SupportedLanguages {
		languages = append(languages, languageInfo{
			Code: string(lang),
			Name: domain.LanguageNames[lang],
		})
	}

	s.respondJSON(w, http.StatusOK, map[string]any{
		"count":     len(languages),
		"languages": languages,
	})
}

func (s *Server) handleTranslate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text       string `json:"text"`
		TargetLang string `json:"target_lang"`
	}
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, errors.NewValidationError("invalid JSON body", "body", err.Error()))
		return
	}
	if req.Text == "" {
		s.respondError(w, errors.NewValidationError("text is required", "text", ""))
		return
	}

	lang, err := domain.ParseLanguage(req.TargetLang)
	if err != nil {
		s.respondError(w, err)
		return
	}

	entry, err := s.translator.Resolve(r.Context(), req.Text, lang)
	if err != nil {
		s.respondError(w, err)
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]any{
		"result": domain.TranslatedMessage{
			Original:   entry.Key.SourceText,
			Translated: entry.Value,
			SourceLang: string(domain.LangJapanese),
			TargetLang: string(entry.Key.Target),
		},
		"resolved_via": entry.ResolvedVia,
		"resolved_at":  entry.CreatedAt.Format(time.RFC3339),
	})
}

// handleWarnings always answers 200: per-area failures ride along in the
// errors map instead of failing the whole view.
func (s *Server) handleWarnings(w http.ResponseWriter, r *http.Request) {
	lang, err := langParam(r)
	if err != nil {
		s.respondError(w, err)
		return
	}

	result := s.warnings.AggregateAll(r.Context(), lang)
	s.respondJSON(w, http.StatusOK, map[string]any{
		"count":   len(result.Records),
		"records": result.Records,
		"errors":  result.Errors,
	})
}

func (s *Server) handleSpecialWarnings(w http.ResponseWriter, r *http.Request) {
	lang, err := langParam(r)
	if err != nil {
		s.respondError(w, err)
		return
	}

	result := s.warnings.AggregateAll(r.Context(), lang)
	records := jma.SpecialWarnings(result)
	if records == nil {
		records = []domain.WarningRecord{}
	}
	s.respondJSON(w, http.StatusOK, map[string]any{
		"count":   len(records),
		"records": records,
		"errors":  result.Errors,
	})
}

func (s *Server) handleAreaWarnings(w http.ResponseWriter, r *http.Request) {
	areaCode := chi.URLParam(r, "areaCode")
	area, ok := jma.AreaByCode(areaCode)
	if !ok {
		s.respondJSON(w, http.StatusNotFound, map[string]errorBody{
			"error": {Code: errors.CodeValidation, Message: "unknown area code: " + areaCode},
		})
		return
	}

	lang, err := langParam(r)
	if err != nil {
		s.respondError(w, err)
		return
	}

	records, err := s.areas.FetchWarnings(r.Context(), areaCode, lang)
	if err != nil {
		s.respondError(w, err)
		return
	}
	if records == nil {
		records = []domain.WarningRecord{}
	}

	s.respondJSON(w, http.StatusOK, map[string]any{
		"area_code": area.Code,
		"area_name": area.Name,
		"count":     len(records),
		"records":   records,
	})
}

func (s *Server) handleEarthquakes(w http.ResponseWriter, r *http.Request) {
	lang, err := langParam(r)
	if err != nil {
		s.respondError(w, err)
		return
	}

	limit, err := limitParam(r)
	if err != nil {
		s.respondError(w, err)
		return
	}

	quakes := s.quakes.RecentEarthquakes(r.Context(), limit, lang)
	s.respondJSON(w, http.StatusOK, map[string]any{
		"count":       len(quakes),
		"earthquakes": quakes,
	})
}

// limitParam reads ?limit=; absence means 0, letting the service pick its
// default.
func limitParam(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.NewValidationError("limit must be an integer", "limit", raw)
	}
	return limit, nil
}

func (s *Server) handleTsunamis(w http.ResponseWriter, r *http.Request) {
	lang, err := langParam(r)
	if err != nil {
		s.respondError(w, err)
		return
	}
	limit, err := limitParam(r)
	if err != nil {
		s.respondError(w, err)
		return
	}

	bulletins := s.tsunamis.Recent(r.Context(), limit, lang)
	s.respondJSON(w, http.StatusOK, map[string]any{
		"count":    len(bulletins),
		"tsunamis": bulletins,
	})
}

func (s *Server) handleActiveTsunamis(w http.ResponseWriter, r *http.Request) {
	lang, err := langParam(r)
	if err != nil {
		s.respondError(w, err)
		return
	}

	active := s.tsunamis.ActiveWarnings(r.Context(), lang)
	s.respondJSON(w, http.StatusOK, map[string]any{
		"count":    len(active),
		"tsunamis": active,
	})
}

func (s *Server) handleVolcanoes(w http.ResponseWriter, r *http.Request) {
	lang, err := langParam(r)
	if err != nil {
		s.respondError(w, err)
		return
	}

	volcanoes := s.volcanoes.Volcanoes(r.Context(), lang)
	s.respondJSON(w, http.StatusOK, map[string]any{
		"count":     len(volcanoes),
		"volcanoes": volcanoes,
	})
}

func (s *Server) handleVolcanoWarnings(w http.ResponseWriter, r *http.Request) {
	lang, err := langParam(r)
	if err != nil {
		s.respondError(w, err)
		return
	}

	warnings := s.volcanoes.Warnings(r.Context(), lang)
	if warnings == nil {
		warnings = []domain.VolcanoWarning{}
	}
	s.respondJSON(w, http.StatusOK, map[string]any{
		"count":    len(warnings),
		"warnings": warnings,
	})
}

// handleShelters serves a proximity query when coordinates are given, a
// type listing when only ?type= is given, and the full directory otherwise.
func (s *Server) handleShelters(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	lang, err := langParam(r)
	if err != nil {
		s.respondError(w, err)
		return
	}
	limit, err := limitParam(r)
	if err != nil {
		s.respondError(w, err)
		return
	}

	disasterType := query.Get("type")
	if disasterType != "" && !shelter.KnownDisasterType(disasterType) {
		s.respondError(w, errors.NewValidationError("unknown disaster type", "type", disasterType))
		return
	}

	rawLat, rawLon := query.Get("lat"), query.Get("lon")
	if rawLat == "" && rawLon == "" {
		var shelters []domain.Shelter
		if disasterType != "" {
			shelters = s.shelters.ByType(r.Context(), disasterType, limit, lang)
		} else {
			shelters = s.shelters.All(r.Context(), limit, lang)
		}
		s.respondJSON(w, http.StatusOK, map[string]any{
			"count":    len(shelters),
			"shelters": shelters,
		})
		return
	}

	lat, latErr := strconv.ParseFloat(rawLat, 64)
	lon, lonErr := strconv.ParseFloat(rawLon, 64)
	if latErr != nil || lonErr != nil {
		s.respondError(w, errors.NewValidationError("lat and lon must both be decimal degrees", "lat", rawLat+","+rawLon))
		return
	}

	radius := 0.0
	if raw := query.Get("radius_km"); raw != "" {
		radius, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			s.respondError(w, errors.NewValidationError("radius_km must be a number", "radius_km", raw))
			return
		}
	}

	shelters := s.shelters.Nearby(r.Context(), lat, lon, radius, limit, disasterType, lang)
	s.respondJSON(w, http.StatusOK, map[string]any{
		"count":    len(shelters),
		"shelters": shelters,
	})
}

func (s *Server) handleShelterTypes(w http.ResponseWriter, r *http.Request) {
	types := s.shelters.DisasterTypes()
	s.respondJSON(w, http.StatusOK, map[string]any{
		"count": len(types),
		"types": types,
	})
}

func (s *Server) handleShelterByID(w http.ResponseWriter, r *http.Request) {
	lang, err := langParam(r)
	if err != nil {
		s.respondError(w, err)
		return
	}

	id := chi.URLParam(r, "shelterID")
	found, ok := s.shelters.ByID(r.Context(), id, lang)
	if !ok {
		s.respondJSON(w, http.StatusNotFound, map[string]errorBody{
			"error": {Code: errors.CodeValidation, Message: "unknown shelter id: " + id},
		})
		return
	}
	s.respondJSON(w, http.StatusOK, found)
}

var knownSeverities = map[string]domain.Severity{
	"low":     domain.SeverityLow,
	"medium":  domain.SeverityMedium,
	"high":    domain.SeverityHigh,
	"extreme": domain.SeverityExtreme,
}

func (s *Server) handleSafetyGuide(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	disasterType := query.Get("type")
	if disasterType == "" {
		s.respondError(w, errors.NewValidationError("type is required", "type", ""))
		return
	}

	lang, err := langParam(r)
	if err != nil {
		s.respondError(w, err)
		return
	}

	severity := domain.SeverityMedium
	if raw := query.Get("severity"); raw != "" {
		sev, ok := knownSeverities[raw]
		if !ok {
			s.respondError(w, errors.NewValidationError("unknown severity", "severity", raw))
			return
		}
		severity = sev
	}

	guide, err := s.translator.SafetyGuide(r.Context(), disasterType, lang, query.Get("location"), severity)
	if err != nil {
		s.respondError(w, err)
		return
	}

	s.respondJSON(w, http.StatusOK, guide)
}
