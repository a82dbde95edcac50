package shelter

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/anzen-app/bosai-go/internal/domain"
	"github.com/anzen-app/bosai-go/internal/observability"
	"github.com/anzen-app/bosai-go/internal/phrase"
	"github.com/anzen-app/bosai-go/internal/service/cache"
	"github.com/anzen-app/bosai-go/internal/service/translator"
)

type noopAI struct{}

func (noopAI) TranslateText(context.Context, string, domain.Language) (string, error) {
	return "", context.Canceled
}

func (noopAI) GenerateJSON(context.Context, string, int, any) error {
	return context.Canceled
}

func newTestService(t *testing.T, dataFile string) *Service {
	t.Helper()
	tr := translator.NewService(
		phrase.NewTable(),
		cache.NewService(cache.NewMemoryStore(), zap.NewNop()),
		noopAI{},
		observability.NewMetricsForTesting(),
		zap.NewNop(),
	)
	return NewService(dataFile, tr, zap.NewNop())
}

func TestMissingDataFileFallsBackToBuiltIn(t *testing.T) {
	svc := newTestService(t, filepath.Join(t.TempDir(), "absent.json"))

	all := svc.All(context.Background(), 0, domain.LangJapanese)
	if len(all) != 5 {
		t.Fatalf("shelters = %d, want the 5 built-in sites", len(all))
	}
	if all[0].ID != "tokyo_001" {
		t.Errorf("first shelter = %q", all[0].ID)
	}
}

func TestLoadsDataFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shelters.json")
	data := `[{"id": "osaka_001", "name": "大阪城公園", "address": "大阪府大阪市中央区", "latitude": 34.687, "longitude": 135.526, "types": ["earthquake"], "is_open": true}]`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	svc := newTestService(t, path)
	all := svc.All(context.Background(), 0, domain.LangJapanese)
	if len(all) != 1 || all[0].ID != "osaka_001" {
		t.Fatalf("shelters = %+v, want the configured file's entry", all)
	}
}

func TestCorruptDataFileFallsBackToBuiltIn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shelters.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	svc := newTestService(t, path)
	if got := len(svc.All(context.Background(), 0, domain.LangJapanese)); got != 5 {
		t.Fatalf("shelters = %d, want built-in set", got)
	}
}

func TestNearbySortsByDistance(t *testing.T) {
	svc := newTestService(t, "")

	// From the Tokyo Metropolitan Government building. Ueno Park sits about
	// 8km away and must fall outside the 5km radius.
	got := svc.Nearby(context.Background(), 35.6896, 139.6917, 5, 0, "", domain.LangJapanese)
	if len(got) != 4 {
		t.Fatalf("shelters = %d, want 4 within 5km", len(got))
	}
	wantOrder := []string{"tokyo_001", "tokyo_002", "tokyo_003", "tokyo_004"}
	for i, want := range wantOrder {
		if got[i].ID != want {
			t.Errorf("order[%d] = %q, want %q", i, got[i].ID, want)
		}
	}
	if got[0].DistanceKM != 0 {
		t.Errorf("distance to self = %v, want 0", got[0].DistanceKM)
	}
	if got[1].DistanceKM <= 0 || got[1].DistanceKM > 1 {
		t.Errorf("distance = %v, want a few hundred meters", got[1].DistanceKM)
	}
}

func TestNearbyFiltersByDisasterType(t *testing.T) {
	svc := newTestService(t, "")

	got := svc.Nearby(context.Background(), 35.6896, 139.6917, 5, 0, "flood", domain.LangJapanese)
	if len(got) != 1 || got[0].ID != "tokyo_004" {
		t.Fatalf("shelters = %+v, want only the flood site", got)
	}
}

func TestNearbyHonorsLimit(t *testing.T) {
	svc := newTestService(t, "")

	got := svc.Nearby(context.Background(), 35.6896, 139.6917, 50, 2, "", domain.LangJapanese)
	if len(got) != 2 {
		t.Fatalf("shelters = %d, want limit of 2", len(got))
	}
	if got[0].ID != "tokyo_001" || got[1].ID != "tokyo_002" {
		t.Errorf("order = %q / %q, want the two closest", got[0].ID, got[1].ID)
	}
}

func TestByType(t *testing.T) {
	svc := newTestService(t, "")

	if got := svc.ByType(context.Background(), "fire", 0, domain.LangJapanese); len(got) != 4 {
		t.Errorf("fire shelters = %d, want 4", len(got))
	}
	if got := svc.ByType(context.Background(), "tsunami", 0, domain.LangJapanese); len(got) != 0 {
		t.Errorf("tsunami shelters = %d, want 0", len(got))
	}
}

func TestByID(t *testing.T) {
	svc := newTestService(t, "")

	shelter, ok := svc.ByID(context.Background(), "tokyo_003", domain.LangJapanese)
	if !ok || shelter.Name != "代々木公園" {
		t.Fatalf("ByID = (%+v, %v)", shelter, ok)
	}
	if _, ok := svc.ByID(context.Background(), "nowhere", domain.LangJapanese); ok {
		t.Error("unexpected hit for unknown id")
	}
}

func TestLocalizeTranslatesName(t *testing.T) {
	svc := newTestService(t, "")

	// 東京都庁 is not in the static table and the AI tier is down, so the
	// name falls back to Japanese; the field must still be filled.
	shelter, ok := svc.ByID(context.Background(), "tokyo_001", domain.LangEnglish)
	if !ok {
		t.Fatal("shelter not found")
	}
	if shelter.NameTranslated == "" {
		t.Error("NameTranslated must be filled for non-Japanese targets")
	}
}

func TestKnownDisasterType(t *testing.T) {
	for _, code := range []string{"flood", "earthquake", "volcano", "inland_flood"} {
		if !KnownDisasterType(code) {
			t.Errorf("KnownDisasterType(%q) = false", code)
		}
	}
	if KnownDisasterType("meteor") {
		t.Error("unknown code accepted")
	}
}

func TestHaversineKM(t *testing.T) {
	// Tokyo Station to Shin-Osaka Station is roughly 400km.
	d := haversineKM(35.6812, 139.7671, 34.7338, 135.5002)
	if math.Abs(d-400) > 15 {
		t.Errorf("distance = %vkm, want about 400km", d)
	}
}
