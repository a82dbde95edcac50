// Package tsunami polls the JMA tsunami bulletin feed and localizes each
// bulletin.
package tsunami

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/anzen-app/bosai-go/internal/constants"
	"github.com/anzen-app/bosai-go/internal/domain"
	"github.com/anzen-app/bosai-go/internal/observability"
	"github.com/anzen-app/bosai-go/internal/service/translator"
	"github.com/anzen-app/bosai-go/internal/util"
)

// bulletinItem mirrors one entry of the feed's list.json response.
type bulletinItem struct {
	ID          string `json:"ctt"`
	EventID     string `json:"eid"`
	Title       string `json:"ttl"`
	TitleEN     string `json:"en_ttl"`
	ReportedAt  string `json:"rdt"`
	QuakeTime   string `json:"at"`
	Location    string `json:"anm"`
	LocationEN  string `json:"en_anm"`
	Magnitude   string `json:"mag"`
	Coordinates string `json:"cod"`
	Kind        []struct {
		Name string `json:"name"`
	} `json:"kind"`
}

type Service struct {
	httpClient *http.Client
	baseURL    string
	translator *translator.Service
	metrics    *observability.Metrics
	logger     *zap.Logger
}

func NewService(baseURL string, timeout time.Duration, tr *translator.Service, metrics *observability.Metrics, logger *zap.Logger) *Service {
	return &Service{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		translator: tr,
		metrics:    metrics,
		logger:     logger,
	}
}

// Recent returns the latest tsunami bulletins localized into lang. Feed
// trouble yields an empty list, never an error.
func (s *Service) Recent(ctx context.Context, limit int, lang domain.Language) []domain.TsunamiInfo {
	if limit <= 0 {
		limit = constants.TsunamiConfig.DefaultLimit
	}
	limit = util.Min(limit, constants.TsunamiConfig.MaxLimit)

	items, err := s.fetchList(ctx)
	if err != nil {
		s.metrics.TsunamiFetches.WithLabelValues("error").Inc()
		s.logger.Error("Tsunami feed fetch failed", zap.Error(err))
		return []domain.TsunamiInfo{}
	}
	s.metrics.TsunamiFetches.WithLabelValues("success").Inc()

	if len(items) > limit {
		items = items[:limit]
	}

	bulletins := make([]domain.TsunamiInfo, 0, len(items))
	for _, item := range items {
		bulletins = append(bulletins, s.localize(ctx, item, parseBulletin(item), lang))
	}
	return bulletins
}

// ActiveWarnings filters the latest bulletins down to the ones with a
// warning or advisory currently in force.
func (s *Service) ActiveWarnings(ctx context.Context, lang domain.Language) []domain.TsunamiInfo {
	all := s.Recent(ctx, constants.TsunamiConfig.ActiveScanLimit, lang)

	active := make([]domain.TsunamiInfo, 0, len(all))
	for _, b := range all {
		switch b.Level {
		case domain.TsunamiLevelMajorWarning, domain.TsunamiLevelWarning, domain.TsunamiLevelAdvisory:
			active = append(active, b)
		}
	}
	return active
}

func (s *Service) fetchList(ctx context.Context) ([]bulletinItem, error) {
	endpoint := s.baseURL + "/tsunami/data/list.json"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("tsunami feed returned status %d", resp.StatusCode)
	}

	var items []bulletinItem
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("tsunami feed returned invalid JSON: %w", err)
	}
	return items, nil
}

func parseBulletin(item bulletinItem) domain.TsunamiInfo {
	level := determineLevel(item)
	lat, lon, _ := parseCoordinates(item.Coordinates)

	return domain.TsunamiInfo{
		ID:             item.ID,
		EventID:        item.EventID,
		Title:          item.Title,
		ReportedAt:     item.ReportedAt,
		EarthquakeTime: item.QuakeTime,
		Location:       item.Location,
		Magnitude:      item.Magnitude,
		Latitude:       lat,
		Longitude:      lon,
		Level:          level,
		Severity:       level.Severity(),
		Message:        buildMessage(item),
	}
}

// determineLevel picks the most severe warning named in the bulletin's kind
// list. The 大津波警報 check must run first because the other labels are
// substrings of it.
func determineLevel(item bulletinItem) domain.TsunamiLevel {
	for _, kind := range item.Kind {
		switch {
		case strings.Contains(kind.Name, "大津波警報"):
			return domain.TsunamiLevelMajorWarning
		case strings.Contains(kind.Name, "津波警報"):
			return domain.TsunamiLevelWarning
		case strings.Contains(kind.Name, "津波注意報"):
			return domain.TsunamiLevelAdvisory
		}
	}
	return domain.TsunamiLevelNone
}

// parseCoordinates reads the feed's ISO 6709 style coordinate string, for
// example "+40.9+143.0-20000/". The trailing depth segment is dropped.
func parseCoordinates(raw string) (lat, lon float64, ok bool) {
	raw = strings.TrimRight(raw, "/")
	if raw == "" {
		return 0, 0, false
	}
	if idx := strings.Index(raw, "-"); idx >= 0 {
		raw = raw[:idx]
	}

	segments := strings.Split(raw, "+")
	if len(segments) < 3 {
		return 0, 0, false
	}
	lat, latErr := strconv.ParseFloat(segments[1], 64)
	lon, lonErr := strconv.ParseFloat(segments[2], 64)
	if latErr != nil || lonErr != nil {
		return 0, 0, false
	}
	return lat, lon, true
}

// buildMessage renders the Japanese bulletin sentence. Warning-grade titles
// carry the evacuation instruction, advisories the stay-away one.
func buildMessage(item bulletinItem) string {
	location := item.Location
	if location == "" {
		location = "不明"
	}
	magnitude := item.Magnitude
	if magnitude == "" {
		magnitude = "不明"
	}

	switch {
	case strings.Contains(item.Title, "大津波警報"), strings.Contains(item.Title, "津波警報"):
		return fmt.Sprintf("【%s】%sでマグニチュード%sの地震が発生しました。直ちに高台へ避難してください。", item.Title, location, magnitude)
	case strings.Contains(item.Title, "津波注意報"):
		return fmt.Sprintf("【%s】%sでマグニチュード%sの地震が発生しました。海岸から離れてください。", item.Title, location, magnitude)
	default:
		return fmt.Sprintf("【津波情報】%sでマグニチュード%sの地震が発生しました。%s", location, magnitude, item.Title)
	}
}

// localize fills the translated fields for non-Japanese targets. The feed
// carries its own English renderings for the title and epicenter name; those
// are preferred over a translation round trip.
func (s *Service) localize(ctx context.Context, item bulletinItem, info domain.TsunamiInfo, lang domain.Language) domain.TsunamiInfo {
	if lang == domain.LangJapanese || !lang.Valid() {
		return info
	}

	if lang == domain.LangEnglish && item.TitleEN != "" {
		info.TitleTranslated = item.TitleEN
	} else {
		info.TitleTranslated = s.translateSoft(ctx, info.Title, lang)
	}
	if lang == domain.LangEnglish && item.LocationEN != "" {
		info.LocationTranslated = item.LocationEN
	} else {
		info.LocationTranslated = s.translator.TranslateLocation(ctx, info.Location, lang)
	}
	info.MessageTranslated = s.translateSoft(ctx, info.Message, lang)
	return info
}

// translateSoft resolves text with an identity fallback; bulletin fields ship
// untranslated rather than blocking on translation trouble.
func (s *Service) translateSoft(ctx context.Context, text string, lang domain.Language) string {
	translated, _, err := s.translator.Translate(ctx, text, lang)
	if err != nil {
		return text
	}
	return translated
}
