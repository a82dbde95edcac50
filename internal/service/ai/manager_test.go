package ai

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/anzen-app/bosai-go/internal/domain"
	"github.com/anzen-app/bosai-go/internal/observability"
	"github.com/anzen-app/bosai-go/pkg/errors"
)

type fakeProvider struct {
	name     string
	response string
	err      error
	calls    int
}

func (f *fakeProvider) Name() string { return f.name }

func (f *fakeProvider) Generate(context.Context, string, GenerateOptions) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func (f *fakeProvider) Ping(context.Context) bool { return f.err == nil }

func testManager(t *testing.T, fallback bool, providers ...Provider) *Manager {
	t.Helper()
	return newManager(providers, fallback, 15*time.Second, 30*time.Second, observability.NewMetricsForTesting(), zap.NewNop())
}

func TestTranslateTextHappyPath(t *testing.T) {
	primary := &fakeProvider{name: "gemini", response: `{"translation": "Tsunami Warning"}`}
	m := testManager(t, true, primary)

	got, err := m.TranslateText(context.Background(), "津波警報", domain.LangEnglish)
	if err != nil {
		t.Fatalf("TranslateText: %v", err)
	}
	if got != "Tsunami Warning" {
		t.Errorf("got %q", got)
	}
	if primary.calls != 1 {
		t.Errorf("provider calls = %d, want exactly 1", primary.calls)
	}
}

func TestTranslateTextFencedResponse(t *testing.T) {
	primary := &fakeProvider{name: "gemini", response: "```json\n{\"translation\": \"쓰나미 경보\"}\n```"}
	m := testManager(t, true, primary)

	got, err := m.TranslateText(context.Background(), "津波警報", domain.LangKorean)
	if err != nil {
		t.Fatalf("TranslateText: %v", err)
	}
	if got != "쓰나미 경보" {
		t.Errorf("got %q", got)
	}
}

func TestTranslateTextFallsBackToSecondProvider(t *testing.T) {
	primary := &fakeProvider{name: "gemini", err: stderrors.New("503 overloaded")}
	secondary := &fakeProvider{name: "openai", response: `{"translation": "Alerte au tsunami"}`}
	m := testManager(t, true, primary, secondary)

	got, err := m.TranslateText(context.Background(), "津波警報", domain.LangFrench)
	if err != nil {
		t.Fatalf("TranslateText: %v", err)
	}
	if got != "Alerte au tsunami" {
		t.Errorf("got %q", got)
	}
	if primary.calls != 1 || secondary.calls != 1 {
		t.Errorf("calls = %d/%d, want 1/1", primary.calls, secondary.calls)
	}
}

func TestTranslateTextFallbackDisabled(t *testing.T) {
	primary := &fakeProvider{name: "gemini", err: stderrors.New("boom")}
	secondary := &fakeProvider{name: "openai", response: `{"translation": "x"}`}
	m := testManager(t, false, primary, secondary)

	if _, err := m.TranslateText(context.Background(), "text", domain.LangEnglish); err == nil {
		t.Fatal("expected error with fallback disabled")
	}
	if secondary.calls != 0 {
		t.Errorf("secondary was consulted %d times with fallback disabled", secondary.calls)
	}
}

func TestTranslateTextMalformedResponse(t *testing.T) {
	primary := &fakeProvider{name: "gemini", response: "I cannot translate that."}
	m := testManager(t, true, primary)

	_, err := m.TranslateText(context.Background(), "text", domain.LangEnglish)
	var malformed *errors.MalformedTranslationError
	if !stderrors.As(err, &malformed) {
		t.Fatalf("error = %v, want MalformedTranslationError", err)
	}
}

func TestTranslateTextEmptyTranslationField(t *testing.T) {
	primary := &fakeProvider{name: "gemini", response: `{"translation": "  "}`}
	m := testManager(t, true, primary)

	if _, err := m.TranslateText(context.Background(), "text", domain.LangEnglish); err == nil {
		t.Fatal("expected error for blank translation field")
	}
}

func TestCircuitOpensAfterRepeatedServiceFailures(t *testing.T) {
	primary := &fakeProvider{name: "gemini", err: stderrors.New("503 service unavailable")}
	m := testManager(t, false, primary)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := m.TranslateText(ctx, "text", domain.LangEnglish); err == nil {
			t.Fatal("expected failure")
		}
	}

	if m.Healthy() {
		t.Fatal("circuit should be open after threshold failures")
	}

	// While open, calls are rejected without touching the provider.
	before := primary.calls
	if _, err := m.TranslateText(ctx, "text", domain.LangEnglish); err == nil {
		t.Fatal("expected rejection while circuit open")
	}
	if primary.calls != before {
		t.Errorf("provider called while circuit open")
	}
}

func TestClientErrorsDoNotTripCircuit(t *testing.T) {
	primary := &fakeProvider{name: "gemini", err: stderrors.New("400 invalid request")}
	m := testManager(t, false, primary)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, _ = m.TranslateText(ctx, "text", domain.LangEnglish)
	}
	if !m.Healthy() {
		t.Fatal("client errors must not open the circuit")
	}
}

func TestGenerateJSON(t *testing.T) {
	primary := &fakeProvider{name: "gemini", response: `{"name": "Heavy Rain Warning", "description": "d", "action": "a"}`}
	m := testManager(t, true, primary)

	var out domain.WarningText
	err := m.GenerateJSON(context.Background(), "prompt", 500, &out)
	if err != nil {
		t.Fatalf("GenerateJSON: %v", err)
	}
	if out.Name != "Heavy Rain Warning" || out.Action != "a" {
		t.Errorf("out = %+v", out)
	}
}

func TestIsRateLimitError(t *testing.T) {
	m := testManager(t, false, &fakeProvider{name: "gemini"})

	if !m.isRateLimitError(stderrors.New("429 Too Many Requests")) {
		t.Error("429 should be a rate limit error")
	}
	if !m.isRateLimitError(stderrors.New(`googleapi error: {"code":429, "message": "quota"}`)) {
		t.Error("embedded 429 code should be a rate limit error")
	}
	if m.isRateLimitError(stderrors.New("404 not found")) {
		t.Error("404 is not a rate limit error")
	}
}
