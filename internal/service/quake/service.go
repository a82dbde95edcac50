// Package quake polls the P2P earthquake feed and localizes each report.
package quake

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/anzen-app/bosai-go/internal/constants"
	"github.com/anzen-app/bosai-go/internal/domain"
	"github.com/anzen-app/bosai-go/internal/observability"
	"github.com/anzen-app/bosai-go/internal/service/translator"
	"github.com/anzen-app/bosai-go/internal/util"
)

// codeEarthquake is the feed's message code for earthquake reports.
const codeEarthquake = 551

// intensityByScale maps the feed's numeric scale to JMA intensity labels.
var intensityByScale = map[int]string{
	10: "1",
	20: "2",
	30: "3",
	40: "4",
	45: "5弱",
	50: "5強",
	55: "6弱",
	60: "6強",
	70: "7",
}

// tsunamiByStatus maps the feed's tsunami field to the Japanese labels the
// static phrase table knows.
var tsunamiByStatus = map[string]string{
	"None":         "なし",
	"Unknown":      "不明",
	"Checking":     "調査中",
	"NonEffective": "若干の海面変動",
	"Watch":        "津波注意報",
	"Warning":      "津波警報",
}

// quakeItem mirrors one entry of the feed's history response.
type quakeItem struct {
	ID         string `json:"id"`
	Earthquake struct {
		Time            string `json:"time"`
		MaxScale        int    `json:"maxScale"`
		DomesticTsunami string `json:"domesticTsunami"`
		Hypocenter      struct {
			Name      string  `json:"name"`
			Magnitude float64 `json:"magnitude"`
			Depth     int     `json:"depth"`
			Latitude  float64 `json:"latitude"`
			Longitude float64 `json:"longitude"`
		} `json:"hypocenter"`
	} `json:"earthquake"`
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

// RecentEarthquakes returns the latest earthquake reports localized into
// lang. Feed trouble yields an empty list, never an error; earthquake data
// is advisory and the endpoint must stay up.
func (s *Service) RecentEarthquakes(ctx context.Context, limit int, lang domain.Language) []domain.EarthquakeInfo {
	if limit <= 0 {
		limit = constants.QuakeConfig.DefaultLimit
	}
	limit = util.Min(limit, constants.QuakeConfig.MaxLimit)

	items, err := s.fetchHistory(ctx, limit)
	if err != nil {
		s.metrics.QuakeFetches.WithLabelValues("error").Inc()
		s.logger.Error("Earthquake feed fetch failed", zap.Error(err))
		return []domain.EarthquakeInfo{}
	}
	s.metrics.QuakeFetches.WithLabelValues("success").Inc()

	quakes := make([]domain.EarthquakeInfo, 0, len(items))
	for _, item := range items {
		quakes = append(quakes, s.localize(ctx, parseQuake(item), lang))
	}
	return quakes
}

func (s *Service) fetchHistory(ctx context.Context, limit int) ([]quakeItem, error) {
	query := url.Values{}
	query.Set("codes", strconv.Itoa(codeEarthquake))
	query.Set("limit", strconv.Itoa(limit))
	endpoint := fmt.Sprintf("%s/history?%s", s.baseURL, query.Encode())

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
		return nil, fmt.Errorf("earthquake feed returned status %d", resp.StatusCode)
	}

	var items []quakeItem
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("earthquake feed returned invalid JSON: %w", err)
	}
	return items, nil
}

func parseQuake(item quakeItem) domain.EarthquakeInfo {
	eq := item.Earthquake

	intensity, ok := intensityByScale[eq.MaxScale]
	if !ok {
		intensity = "不明"
	}
	tsunami, ok := tsunamiByStatus[eq.DomesticTsunami]
	if !ok {
		tsunami = "不明"
	}
	location := eq.Hypocenter.Name
	if location == "" {
		location = "不明"
	}

	return domain.EarthquakeInfo{
		ID:             item.ID,
		Time:           eq.Time,
		Location:       location,
		Magnitude:      eq.Hypocenter.Magnitude,
		MaxIntensity:   intensity,
		Depth:          eq.Hypocenter.Depth,
		Latitude:       eq.Hypocenter.Latitude,
		Longitude:      eq.Hypocenter.Longitude,
		TsunamiWarning: tsunami,
		Source:         "気象庁",
	}
}

// localize fills the message and, for non-Japanese targets, the translated
// fields.
func (s *Service) localize(ctx context.Context, quake domain.EarthquakeInfo, lang domain.Language) domain.EarthquakeInfo {
	quake.Message = s.translator.EarthquakeMessage(ctx, domain.LangJapanese, quake)

	if lang == domain.LangJapanese || !lang.Valid() {
		return quake
	}

	quake.LocationTranslated = s.translator.TranslateLocation(ctx, quake.Location, lang)
	quake.MaxIntensityTranslated = s.translator.Intensity(quake.MaxIntensity, lang)
	quake.TsunamiWarningTranslated = s.translator.TsunamiLabel(quake.TsunamiWarning, lang)
	quake.MessageTranslated = s.translator.EarthquakeMessage(ctx, lang, quake)
	return quake
}
