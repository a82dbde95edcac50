// Package volcano reads the JMA volcano catalog and the per-volcano
// eruption alerts for the continuously monitored volcanoes.
package volcano

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"

	"github.com/anzen-app/bosai-go/internal/domain"
	"github.com/anzen-app/bosai-go/internal/observability"
	"github.com/anzen-app/bosai-go/internal/service/translator"
)

// levelInfo describes one step of the JMA 1-5 eruption alert scale.
type levelInfo struct {
	name     string
	severity domain.Severity
	action   string
}

var alertLevels = map[int]levelInfo{
	1: {"活火山であることに留意", domain.SeverityLow, "火口内立入規制"},
	2: {"火口周辺規制", domain.SeverityMedium, "火口周辺への立入規制"},
	3: {"入山規制", domain.SeverityHigh, "登山禁止・入山規制"},
	4: {"高齢者等避難", domain.SeverityHigh, "警戒が必要な居住地域での高齢者等の避難準備"},
	5: {"避難", domain.SeverityExtreme, "危険な居住地域からの避難"},
}

// monitoredVolcanoes are the continuously observed volcanoes whose alerts
// are polled individually.
var monitoredVolcanoes = []struct {
	Code int
	Name string
}{
	{314, "富士山"},
	{312, "箱根山"},
	{503, "阿蘇山"},
	{506, "桜島"},
	{507, "霧島山"},
	{502, "雲仙岳"},
	{306, "浅間山"},
	{101, "十勝岳"},
	{102, "樽前山"},
	{103, "有珠山"},
	{202, "岩手山"},
	{205, "蔵王山"},
	{301, "那須岳"},
	{302, "日光白根山"},
	{303, "草津白根山"},
	{504, "薩摩硫黄島"},
	{505, "口永良部島"},
	{601, "諏訪之瀬島"},
	{509, "新燃岳"},
	{510, "硫黄島"},
}

var monitoredCodes = func() map[int]bool {
	m := make(map[int]bool, len(monitoredVolcanoes))
	for _, v := range monitoredVolcanoes {
		m[v.Code] = true
	}
	return m
}()

// catalogItem mirrors one entry of the volcano_list.json catalog.
type catalogItem struct {
	Code           int       `json:"code"`
	NameJP         string    `json:"name_jp"`
	NameEN         string    `json:"name_en"`
	LatLon         []float64 `json:"latlon"`
	LevelOperation bool      `json:"levelOperation"`
}

// alertItem mirrors one per-volcano warning document.
type alertItem struct {
	Level          int    `json:"level"`
	ReportDatetime string `json:"reportDatetime"`
	HeadlineText   string `json:"headlineText"`
}

type Service struct {
	httpClient  *http.Client
	baseURL     string
	concurrency int
	translator  *translator.Service
	metrics     *observability.Metrics
	logger      *zap.Logger
}

// NewService expects baseURL to point at the JMA volcano root, for example
// "https://www.jma.go.jp/bosai/volcano".
func NewService(baseURL string, timeout time.Duration, concurrency int, tr *translator.Service, metrics *observability.Metrics, logger *zap.Logger) *Service {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Service{
		httpClient:  &http.Client{Timeout: timeout},
		baseURL:     baseURL,
		concurrency: concurrency,
		translator:  tr,
		metrics:     metrics,
		logger:      logger,
	}
}

// Volcanoes returns the full volcano catalog localized into lang. Feed
// trouble yields an empty list, never an error.
func (s *Service) Volcanoes(ctx context.Context, lang domain.Language) []domain.VolcanoInfo {
	var items []catalogItem
	if err := s.fetchJSON(ctx, s.baseURL+"/const/volcano_list.json", &items); err != nil {
		s.metrics.VolcanoFetches.WithLabelValues("error").Inc()
		s.logger.Error("Volcano catalog fetch failed", zap.Error(err))
		return []domain.VolcanoInfo{}
	}
	s.metrics.VolcanoFetches.WithLabelValues("success").Inc()

	volcanoes := make([]domain.VolcanoInfo, 0, len(items))
	for _, item := range items {
		info := domain.VolcanoInfo{
			Code:        item.Code,
			Name:        item.NameJP,
			IsMonitored: monitoredCodes[item.Code] || item.LevelOperation,
		}
		if len(item.LatLon) >= 2 {
			info.Latitude = item.LatLon[0]
			info.Longitude = item.LatLon[1]
		}
		if lang != domain.LangJapanese && lang.Valid() {
			if lang == domain.LangEnglish && item.NameEN != "" {
				info.NameTranslated = item.NameEN
			} else {
				info.NameTranslated = s.translator.TranslateLocation(ctx, info.Name, lang)
			}
		}
		volcanoes = append(volcanoes, info)
	}
	return volcanoes
}

// Warnings polls the alert document of every monitored volcano and returns
// the active alerts, most severe first. Per-volcano failures are skipped so
// one unreachable document never empties the view.
func (s *Service) Warnings(ctx context.Context, lang domain.Language) []domain.VolcanoWarning {
	var (
		mu       sync.Mutex
		warnings []domain.VolcanoWarning
	)

	p := pool.New().WithMaxGoroutines(s.concurrency)
	for _, volcano := range monitoredVolcanoes {
		volcano := volcano
		p.Go(func() {
			var item alertItem
			url := fmt.Sprintf("%s/data/warning/%d.json", s.baseURL, volcano.Code)
			if err := s.fetchJSON(ctx, url, &item); err != nil {
				s.metrics.VolcanoFetches.WithLabelValues("error").Inc()
				s.logger.Warn("Volcano alert fetch failed",
					zap.Int("volcano_code", volcano.Code),
					zap.String("volcano", volcano.Name),
					zap.Error(err),
				)
				return
			}
			s.metrics.VolcanoFetches.WithLabelValues("success").Inc()

			if item.Level < 1 {
				return
			}
			warning := s.localize(ctx, buildWarning(volcano.Code, volcano.Name, item), lang)

			mu.Lock()
			warnings = append(warnings, warning)
			mu.Unlock()
		})
	}
	p.Wait()

	sort.SliceStable(warnings, func(i, j int) bool {
		if warnings[i].AlertLevel != warnings[j].AlertLevel {
			return warnings[i].AlertLevel > warnings[j].AlertLevel
		}
		return warnings[i].VolcanoCode < warnings[j].VolcanoCode
	})
	return warnings
}

func buildWarning(code int, name string, item alertItem) domain.VolcanoWarning {
	level, known := alertLevels[item.Level]
	if !known {
		level = levelInfo{severity: domain.SeverityLow}
	}

	return domain.VolcanoWarning{
		VolcanoCode: code,
		VolcanoName: name,
		AlertLevel:  item.Level,
		LevelName:   level.name,
		Severity:    level.severity,
		Action:      level.action,
		IssuedAt:    item.ReportDatetime,
		Headline:    item.HeadlineText,
	}
}

func (s *Service) localize(ctx context.Context, warning domain.VolcanoWarning, lang domain.Language) domain.VolcanoWarning {
	if lang == domain.LangJapanese || !lang.Valid() {
		return warning
	}

	warning.VolcanoNameTranslated = s.translator.TranslateLocation(ctx, warning.VolcanoName, lang)
	warning.LevelNameTranslated = s.translator.VolcanoLevel(warning.LevelName, lang)
	if warning.Headline != "" {
		if translated, _, err := s.translator.Translate(ctx, warning.Headline, lang); err == nil {
			warning.HeadlineTranslated = translated
		}
	}
	return warning
}

func (s *Service) fetchJSON(ctx context.Context, url string, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("volcano feed returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("volcano feed returned invalid JSON: %w", err)
	}
	return nil
}
