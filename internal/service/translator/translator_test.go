package translator

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/anzen-app/bosai-go/internal/domain"
	"github.com/anzen-app/bosai-go/internal/observability"
	"github.com/anzen-app/bosai-go/internal/phrase"
	"github.com/anzen-app/bosai-go/internal/service/cache"
	"github.com/anzen-app/bosai-go/pkg/errors"
)

type fakeAI struct {
	translateResp  string
	translateErr   error
	translateCalls int

	jsonResp  string
	jsonErr   error
	jsonCalls int
}

func (f *fakeAI) TranslateText(_ context.Context, _ string, _ domain.Language) (string, error) {
	f.translateCalls++
	if f.translateErr != nil {
		return "", f.translateErr
	}
	return f.translateResp, nil
}

func (f *fakeAI) GenerateJSON(_ context.Context, _ string, _ int, dest any) error {
	f.jsonCalls++
	if f.jsonErr != nil {
		return f.jsonErr
	}
	return json.Unmarshal([]byte(f.jsonResp), dest)
}

func newTestService(t *testing.T, aiClient AIClient) (*Service, *cache.MemoryStore) {
	t.Helper()
	store := cache.NewMemoryStore()
	svc := NewService(
		phrase.NewTable(),
		cache.NewService(store, zap.NewNop()),
		aiClient,
		observability.NewMetricsForTesting(),
		zap.NewNop(),
	)
	return svc, store
}

func TestTranslateJapaneseIsIdentity(t *testing.T) {
	aiClient := &fakeAI{}
	svc, _ := newTestService(t, aiClient)

	got, tier, err := svc.Translate(context.Background(), "大雨警報", domain.LangJapanese)
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if got != "大雨警報" || tier != domain.TierStatic {
		t.Errorf("got (%q, %s)", got, tier)
	}
	if aiClient.translateCalls != 0 {
		t.Error("identity translation must not call the AI tier")
	}
}

func TestTranslateInvalidLanguage(t *testing.T) {
	svc, _ := newTestService(t, &fakeAI{})

	_, _, err := svc.Translate(context.Background(), "text", domain.Language("xx"))
	var validation *errors.ValidationError
	if !stderrors.As(err, &validation) {
		t.Fatalf("error = %v, want ValidationError", err)
	}
}

func TestTranslateRejectsOversizedText(t *testing.T) {
	svc, _ := newTestService(t, &fakeAI{})

	_, _, err := svc.Translate(context.Background(), strings.Repeat("あ", 2000), domain.LangEnglish)
	if err == nil {
		t.Fatal("expected validation error for oversized text")
	}
}

func TestTranslateStaticTierShortCircuits(t *testing.T) {
	aiClient := &fakeAI{}
	svc, store := newTestService(t, aiClient)

	got, tier, err := svc.Translate(context.Background(), "津波警報", domain.LangEnglish)
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if got != "Tsunami Warning" || tier != domain.TierStatic {
		t.Errorf("got (%q, %s), want static hit", got, tier)
	}
	if aiClient.translateCalls != 0 {
		t.Error("static hit must not reach the AI tier")
	}
	if store.Len() != 0 {
		t.Error("static hits must not be written to the cache")
	}
}

func TestTranslateAITierCachesWriteThrough(t *testing.T) {
	aiClient := &fakeAI{translateResp: "Please evacuate to higher ground"}
	svc, store := newTestService(t, aiClient)
	ctx := context.Background()

	got, tier, err := svc.Translate(ctx, "高台に避難してください", domain.LangEnglish)
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if got != "Please evacuate to higher ground" || tier != domain.TierAI {
		t.Errorf("got (%q, %s), want AI tier", got, tier)
	}
	if aiClient.translateCalls != 1 {
		t.Errorf("AI calls = %d, want exactly 1", aiClient.translateCalls)
	}
	if store.Len() != 1 {
		t.Fatalf("cache entries = %d, want the write-through entry", store.Len())
	}

	// Second call resolves from cache without another AI round trip.
	got, tier, err = svc.Translate(ctx, "高台に避難してください", domain.LangEnglish)
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if got != "Please evacuate to higher ground" || tier != domain.TierCache {
		t.Errorf("second call = (%q, %s), want cache hit", got, tier)
	}
	if aiClient.translateCalls != 1 {
		t.Errorf("AI calls after cache hit = %d, want still 1", aiClient.translateCalls)
	}
}

func TestResolveRecordsKeyAndTier(t *testing.T) {
	aiClient := &fakeAI{translateResp: "Evacuation order"}
	svc, _ := newTestService(t, aiClient)

	entry, err := svc.Resolve(context.Background(), "  避難指示 \n", domain.LangEnglish)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if entry.Key.SourceText != "避難指示" || entry.Key.Target != domain.LangEnglish {
		t.Errorf("Key = %+v, want trimmed source text", entry.Key)
	}
	if entry.Value != "Evacuation order" || entry.ResolvedVia != domain.TierAI {
		t.Errorf("entry = (%q, %s), want AI tier", entry.Value, entry.ResolvedVia)
	}
	if entry.CreatedAt.IsZero() {
		t.Error("CreatedAt must be set")
	}

	// The trimmed key must produce a cache hit for the padded request.
	entry, err = svc.Resolve(context.Background(), "避難指示", domain.LangEnglish)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if entry.ResolvedVia != domain.TierCache {
		t.Errorf("second resolve via %s, want cache", entry.ResolvedVia)
	}
}

func TestTranslateFailsOpenToSourceText(t *testing.T) {
	aiClient := &fakeAI{translateErr: stderrors.New("provider down")}
	svc, store := newTestService(t, aiClient)

	got, tier, err := svc.Translate(context.Background(), "土砂災害に警戒してください", domain.LangKorean)
	if err != nil {
		t.Fatalf("Translate must not surface AI errors, got %v", err)
	}
	if got != "土砂災害に警戒してください" || tier != domain.TierFallback {
		t.Errorf("got (%q, %s), want fallback to source", got, tier)
	}
	if store.Len() != 0 {
		t.Error("fallback results must never be cached")
	}
}

func TestTranslateLocationNeverFails(t *testing.T) {
	svc, _ := newTestService(t, &fakeAI{translateErr: stderrors.New("down")})

	if got := svc.TranslateLocation(context.Background(), "謎の地名", domain.LangEnglish); got != "謎の地名" {
		t.Errorf("got %q, want identity", got)
	}
	if got := svc.TranslateLocation(context.Background(), "東京都", domain.LangEnglish); got != "Tokyo" {
		t.Errorf("got %q, want static hit", got)
	}
}

func TestEarthquakeMessage(t *testing.T) {
	svc, _ := newTestService(t, &fakeAI{})

	msg := svc.EarthquakeMessage(context.Background(), domain.LangEnglish, domain.EarthquakeInfo{
		Location:       "石川県能登地方",
		Magnitude:      7.6,
		MaxIntensity:   "7",
		Depth:          16,
		TsunamiWarning: "大津波警報",
	})
	for _, want := range []string{"Noto Region, Ishikawa Prefecture", "Intensity 7", "Major Tsunami Warning"} {
		if !strings.Contains(msg, want) {
			t.Errorf("message %q missing %q", msg, want)
		}
	}
}

func TestWarningTextJapaneseIsStatic(t *testing.T) {
	aiClient := &fakeAI{}
	svc, _ := newTestService(t, aiClient)

	got := svc.WarningText(context.Background(), "大雨警報", domain.LangJapanese, "東京都", domain.SeverityHigh)
	if got.Name != "大雨警報" {
		t.Errorf("Name = %q", got.Name)
	}
	if !strings.Contains(got.Description, "東京都に大雨警報") {
		t.Errorf("Description = %q", got.Description)
	}
	if got.Action == "" {
		t.Error("Japanese warning text must include a default action")
	}
	if aiClient.jsonCalls != 0 {
		t.Error("Japanese path must not call the AI tier")
	}
}

func TestWarningTextGeneratedAndCached(t *testing.T) {
	aiClient := &fakeAI{jsonResp: `{"name": "Avertissement de fortes pluies", "description": "desc", "action": "act"}`}
	svc, _ := newTestService(t, aiClient)
	ctx := context.Background()

	got := svc.WarningText(ctx, "大雨警報", domain.LangFrench, "東京都", domain.SeverityHigh)
	if got.Name != "Avertissement de fortes pluies" || got.Action != "act" {
		t.Errorf("got %+v", got)
	}
	if aiClient.jsonCalls != 1 {
		t.Fatalf("jsonCalls = %d, want 1", aiClient.jsonCalls)
	}

	// Second request is served from the cache.
	got = svc.WarningText(ctx, "大雨警報", domain.LangFrench, "東京都", domain.SeverityHigh)
	if got.Name != "Avertissement de fortes pluies" {
		t.Errorf("cached result = %+v", got)
	}
	if aiClient.jsonCalls != 1 {
		t.Errorf("jsonCalls after cache hit = %d, want still 1", aiClient.jsonCalls)
	}
}

func TestWarningTextFallsBackToNameOnly(t *testing.T) {
	aiClient := &fakeAI{
		jsonErr:      stderrors.New("provider down"),
		translateErr: stderrors.New("provider down"),
	}
	svc, _ := newTestService(t, aiClient)

	got := svc.WarningText(context.Background(), "大雨警報", domain.LangFrench, "東京都", domain.SeverityHigh)
	if got.Name != "大雨警報" {
		t.Errorf("Name = %q, want Japanese source", got.Name)
	}
	if got.Description != "" || got.Action != "" {
		t.Errorf("fallback must be name-only, got %+v", got)
	}
}

func TestSafetyGuideGeneratedThenCached(t *testing.T) {
	aiClient := &fakeAI{jsonResp: `{
		"title": "Guía de seguridad contra terremotos",
		"summary": "s",
		"immediate_actions": ["a1", "a2"],
		"preparation_tips": ["t1"],
		"evacuation_info": "e",
		"emergency_contacts": "Police 110",
		"additional_notes": "n"
	}`}
	svc, _ := newTestService(t, aiClient)
	ctx := context.Background()

	guide, err := svc.SafetyGuide(ctx, "earthquake", domain.LangSpanish, "Tokyo", domain.SeverityHigh)
	if err != nil {
		t.Fatalf("SafetyGuide: %v", err)
	}
	if guide.Title != "Guía de seguridad contra terremotos" || guide.Cached {
		t.Errorf("guide = %+v", guide)
	}
	if guide.DisasterType != "earthquake" || guide.Language != domain.LangSpanish {
		t.Errorf("metadata not filled: %+v", guide)
	}

	again, err := svc.SafetyGuide(ctx, "earthquake", domain.LangSpanish, "Tokyo", domain.SeverityHigh)
	if err != nil {
		t.Fatalf("SafetyGuide: %v", err)
	}
	if !again.Cached {
		t.Error("second call should be served from cache")
	}
	if aiClient.jsonCalls != 1 {
		t.Errorf("jsonCalls = %d, want 1", aiClient.jsonCalls)
	}
}

func TestSafetyGuideFallbackOnAIFailure(t *testing.T) {
	svc, _ := newTestService(t, &fakeAI{jsonErr: stderrors.New("down")})

	guide, err := svc.SafetyGuide(context.Background(), "tsunami", domain.LangEnglish, "", domain.SeverityExtreme)
	if err != nil {
		t.Fatalf("SafetyGuide: %v", err)
	}
	if !strings.Contains(guide.Title, "津波") {
		t.Errorf("fallback guide should be the Japanese basic guide, got %q", guide.Title)
	}
	if len(guide.ImmediateActions) == 0 || guide.EmergencyContacts == "" {
		t.Errorf("fallback guide incomplete: %+v", guide)
	}
}

func TestSafetyGuideRejectsUnknownDisasterType(t *testing.T) {
	svc, _ := newTestService(t, &fakeAI{})

	if _, err := svc.SafetyGuide(context.Background(), "meteor", domain.LangEnglish, "", domain.SeverityLow); err == nil {
		t.Fatal("expected validation error")
	}
}
