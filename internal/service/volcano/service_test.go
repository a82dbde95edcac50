package volcano

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/anzen-app/bosai-go/internal/domain"
	"github.com/anzen-app/bosai-go/internal/observability"
	"github.com/anzen-app/bosai-go/internal/phrase"
	"github.com/anzen-app/bosai-go/internal/service/cache"
	"github.com/anzen-app/bosai-go/internal/service/translator"
)

const catalogFixture = `[
	{"code": 314, "name_jp": "富士山", "name_en": "Fujisan", "latlon": [35.361, 138.727], "levelOperation": true},
	{"code": 506, "name_jp": "桜島", "name_en": "Sakurajima", "latlon": [31.593, 130.657], "levelOperation": true},
	{"code": 999, "name_jp": "試験火山", "name_en": "", "latlon": [], "levelOperation": false}
]`

type noopAI struct{}

func (noopAI) TranslateText(context.Context, string, domain.Language) (string, error) {
	return "", context.Canceled
}

func (noopAI) GenerateJSON(context.Context, string, int, any) error {
	return context.Canceled
}

func newTestService(t *testing.T, baseURL string) *Service {
	t.Helper()
	tr := translator.NewService(
		phrase.NewTable(),
		cache.NewService(cache.NewMemoryStore(), zap.NewNop()),
		noopAI{},
		observability.NewMetricsForTesting(),
		zap.NewNop(),
	)
	return NewService(baseURL, 10*time.Second, 5, tr, observability.NewMetricsForTesting(), zap.NewNop())
}

// newFeedServer serves the catalog plus alert documents for Sakurajima
// (level 3) and Kuchinoerabujima (level 5); every other volcano 404s.
func newFeedServer() *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/const/volcano_list.json", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(catalogFixture))
	})
	mux.HandleFunc("/data/warning/506.json", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"level": 3, "reportDatetime": "2026-01-10T10:00:00+09:00", "headlineText": "噴火警戒レベル3に引上げ"}`))
	})
	mux.HandleFunc("/data/warning/505.json", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"level": 5, "reportDatetime": "2026-01-10T09:30:00+09:00", "headlineText": "避難が必要"}`))
	})
	mux.HandleFunc("/data/warning/314.json", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"level": 0, "reportDatetime": "", "headlineText": ""}`))
	})
	mux.HandleFunc("/", http.NotFound)
	return httptest.NewServer(mux)
}

func TestVolcanoesParsesCatalog(t *testing.T) {
	server := newFeedServer()
	defer server.Close()

	svc := newTestService(t, server.URL)
	volcanoes := svc.Volcanoes(context.Background(), domain.LangJapanese)
	if len(volcanoes) != 3 {
		t.Fatalf("volcanoes = %d, want 3", len(volcanoes))
	}

	fuji := volcanoes[0]
	if fuji.Code != 314 || fuji.Name != "富士山" || !fuji.IsMonitored {
		t.Errorf("fuji = %+v", fuji)
	}
	if fuji.Latitude != 35.361 || fuji.Longitude != 138.727 {
		t.Errorf("coordinates = %v/%v", fuji.Latitude, fuji.Longitude)
	}
	// Neither on the monitored list nor level-operated.
	if volcanoes[2].IsMonitored {
		t.Error("test volcano must not be monitored")
	}
}

func TestVolcanoesUsesCatalogEnglishNames(t *testing.T) {
	server := newFeedServer()
	defer server.Close()

	svc := newTestService(t, server.URL)
	volcanoes := svc.Volcanoes(context.Background(), domain.LangEnglish)
	if len(volcanoes) != 3 {
		t.Fatalf("volcanoes = %d, want 3", len(volcanoes))
	}
	if volcanoes[0].NameTranslated != "Fujisan" {
		t.Errorf("NameTranslated = %q, want the catalog's English name", volcanoes[0].NameTranslated)
	}
}

func TestVolcanoesFeedFailureReturnsEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	svc := newTestService(t, server.URL)
	volcanoes := svc.Volcanoes(context.Background(), domain.LangJapanese)
	if volcanoes == nil || len(volcanoes) != 0 {
		t.Fatalf("volcanoes = %v, want empty non-nil slice", volcanoes)
	}
}

func TestWarningsCollectsActiveAlerts(t *testing.T) {
	server := newFeedServer()
	defer server.Close()

	svc := newTestService(t, server.URL)
	warnings := svc.Warnings(context.Background(), domain.LangJapanese)

	// Unreachable volcanoes and level-0 documents are skipped, and the most
	// severe alert sorts first.
	if len(warnings) != 2 {
		t.Fatalf("warnings = %d, want 2", len(warnings))
	}

	w := warnings[0]
	if w.VolcanoCode != 505 || w.AlertLevel != 5 {
		t.Errorf("first warning = %+v, want Kuchinoerabujima level 5", w)
	}
	if w.LevelName != "避難" || w.Severity != domain.SeverityExtreme {
		t.Errorf("level = %q/%s", w.LevelName, w.Severity)
	}
	if w.Action != "危険な居住地域からの避難" {
		t.Errorf("Action = %q", w.Action)
	}

	w = warnings[1]
	if w.VolcanoCode != 506 || w.AlertLevel != 3 || w.Severity != domain.SeverityHigh {
		t.Errorf("second warning = %+v, want Sakurajima level 3", w)
	}
	if w.VolcanoName != "桜島" || w.Headline != "噴火警戒レベル3に引上げ" {
		t.Errorf("warning = %+v", w)
	}
}

func TestWarningsLocalizesLevelNames(t *testing.T) {
	server := newFeedServer()
	defer server.Close()

	svc := newTestService(t, server.URL)
	warnings := svc.Warnings(context.Background(), domain.LangEnglish)
	if len(warnings) != 2 {
		t.Fatalf("warnings = %d, want 2", len(warnings))
	}
	if warnings[0].LevelNameTranslated != "Evacuate" {
		t.Errorf("LevelNameTranslated = %q", warnings[0].LevelNameTranslated)
	}
	if warnings[1].LevelNameTranslated != "Do not approach the volcano" {
		t.Errorf("LevelNameTranslated = %q", warnings[1].LevelNameTranslated)
	}
}
