package jma

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/anzen-app/bosai-go/internal/domain"
	"github.com/anzen-app/bosai-go/internal/observability"
	"github.com/anzen-app/bosai-go/internal/phrase"
	"github.com/anzen-app/bosai-go/internal/service/cache"
	"github.com/anzen-app/bosai-go/internal/service/translator"
)

const warningFixture = `{
	"reportDatetime": "2026-01-10T09:00:00+09:00",
	"areaTypes": [
		{
			"areas": [
				{
					"name": "東京地方",
					"warnings": [
						{"code": "03", "status": "発表"},
						{"code": "14", "status": "解除"},
						{"code": "77", "status": "発表"}
					]
				}
			]
		}
	]
}`

type staticAI struct {
	warningJSON string
	err         error
}

func (s *staticAI) TranslateText(context.Context, string, domain.Language) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return "translated", nil
}

func (s *staticAI) GenerateJSON(_ context.Context, _ string, _ int, dest any) error {
	if s.err != nil {
		return s.err
	}
	return json.Unmarshal([]byte(s.warningJSON), dest)
}

func newTestClient(t *testing.T, baseURL string, aiClient translator.AIClient) *Client {
	t.Helper()
	table := phrase.NewTable()
	tr := translator.NewService(
		table,
		cache.NewService(cache.NewMemoryStore(), zap.NewNop()),
		aiClient,
		observability.NewMetricsForTesting(),
		zap.NewNop(),
	)
	return NewClient(baseURL, 10*time.Second, table, tr, zap.NewNop())
}

func TestFetchWarningsStaticLanguage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/warning/data/warning/130000.json") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(warningFixture))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, &staticAI{})
	records, err := client.FetchWarnings(context.Background(), "130000", domain.LangEnglish)
	if err != nil {
		t.Fatalf("FetchWarnings: %v", err)
	}

	// Cancelled status and unknown code 77 are dropped.
	if len(records) != 1 {
		t.Fatalf("records = %d, want 1", len(records))
	}

	r := records[0]
	if r.Title != "大雨警報" || r.TitleTranslated != "Heavy Rain Warning" {
		t.Errorf("titles = %q / %q", r.Title, r.TitleTranslated)
	}
	if r.Severity != domain.SeverityHigh || r.Type != domain.AlertTypeWarning {
		t.Errorf("severity/type = %s/%s", r.Severity, r.Type)
	}
	if r.Area != "Tokyo Area" {
		t.Errorf("Area = %q, want static rendering", r.Area)
	}
	if !strings.Contains(r.DescriptionTranslated, "has been issued for Tokyo Area") {
		t.Errorf("DescriptionTranslated = %q", r.DescriptionTranslated)
	}
	if !strings.Contains(r.Description, "東京地方に大雨警報") {
		t.Errorf("Description = %q", r.Description)
	}
	if r.IssuedAt != "2026-01-10T09:00:00+09:00" {
		t.Errorf("IssuedAt = %q", r.IssuedAt)
	}
}

func TestFetchWarningsAILanguage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(warningFixture))
	}))
	defer server.Close()

	aiClient := &staticAI{warningJSON: `{"name": "Avertissement de fortes pluies", "description": "De fortes pluies sont attendues.", "action": "Évitez les sorties."}`}
	client := newTestClient(t, server.URL, aiClient)

	records, err := client.FetchWarnings(context.Background(), "130000", domain.LangFrench)
	if err != nil {
		t.Fatalf("FetchWarnings: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("records = %d, want 1", len(records))
	}

	r := records[0]
	if r.TitleTranslated != "Avertissement de fortes pluies" {
		t.Errorf("TitleTranslated = %q", r.TitleTranslated)
	}
	if r.Action != "Évitez les sorties." {
		t.Errorf("Action = %q", r.Action)
	}
	if r.Title != "大雨警報" {
		t.Errorf("Title = %q, Japanese original must be kept", r.Title)
	}
}

func TestFetchWarningsAIFailureFallsBackToEnglish(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(warningFixture))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, &staticAI{err: errors.New("provider down")})

	records, err := client.FetchWarnings(context.Background(), "130000", domain.LangThai)
	if err != nil {
		t.Fatalf("FetchWarnings: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("records = %d, want 1", len(records))
	}
	if records[0].TitleTranslated != "Heavy Rain Warning" {
		t.Errorf("TitleTranslated = %q, want English fallback", records[0].TitleTranslated)
	}
}

func TestFetchWarningsUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "gateway timeout", http.StatusGatewayTimeout)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, &staticAI{})
	if _, err := client.FetchWarnings(context.Background(), "130000", domain.LangJapanese); err == nil {
		t.Fatal("expected error for non-2xx upstream status")
	}
}

func TestFetchWarningsInvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("<html>maintenance</html>"))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, &staticAI{})
	if _, err := client.FetchWarnings(context.Background(), "130000", domain.LangJapanese); err == nil {
		t.Fatal("expected error for invalid JSON body")
	}
}
