package phrase

import (
	"strings"
	"testing"

	"github.com/anzen-app/bosai-go/internal/domain"
)

func TestTableLookup(t *testing.T) {
	table := NewTable()

	tests := []struct {
		name string
		text string
		lang domain.Language
		want string
		ok   bool
	}{
		{"prefecture to english", "東京都", domain.LangEnglish, "Tokyo", true},
		{"prefecture to korean", "大阪府", domain.LangKorean, "오사카부", true},
		{"epicenter region", "石川県能登地方", domain.LangEnglish, "Noto Region, Ishikawa Prefecture", true},
		{"intensity five lower", "5弱", domain.LangEnglish, "Intensity 5 Lower", true},
		{"intensity five upper", "5強", domain.LangEnglish, "Intensity 5 Upper", true},
		{"tsunami warning", "津波警報", domain.LangEnglish, "Tsunami Warning", true},
		{"tsunami warning french override", "津波警報", domain.LangFrench, "Alerte au tsunami", true},
		{"free form sentence misses", "沿岸部から離れてください", domain.LangEnglish, "", false},
		{"unknown location misses", "存在しない県", domain.LangKorean, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := table.Lookup(tt.text, tt.lang)
			if ok != tt.ok {
				t.Fatalf("Lookup(%q, %s) ok = %v, want %v", tt.text, tt.lang, ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("Lookup(%q, %s) = %q, want %q", tt.text, tt.lang, got, tt.want)
			}
		})
	}
}

func TestTableCoversAllPrefectures(t *testing.T) {
	table := NewTable()
	if table.LocationCount() < 47 {
		t.Fatalf("location table has %d entries, want at least 47", table.LocationCount())
	}

	// Every curated location must resolve in every supported language so the
	// static tier never half-covers a name.
	for ja := range table.locations {
		for _, lang := range domain.SupportedLanguages {
			if lang == domain.LangJapanese {
				continue
			}
			if v, ok := table.Location(ja, lang); !ok || v == "" {
				t.Errorf("location %q missing %s rendering", ja, lang)
			}
		}
	}
}

func TestLatinScriptLanguagesShareRomanizedNames(t *testing.T) {
	table := NewTable()
	en, _ := table.Location("北海道", domain.LangEnglish)
	for _, lang := range []domain.Language{domain.LangFrench, domain.LangGerman, domain.LangIndonesian, domain.LangTagalog} {
		got, ok := table.Location("北海道", lang)
		if !ok || got != en {
			t.Errorf("Location(北海道, %s) = %q, want %q", lang, got, en)
		}
	}
}

func TestWarningCatalog(t *testing.T) {
	if !KnownWarningCode("33") {
		t.Fatal("code 33 should be known")
	}
	if KnownWarningCode("99") {
		t.Fatal("code 99 should be unknown")
	}

	if got := WarningName("33", domain.LangEnglish); got != "Heavy Rain Emergency Warning" {
		t.Errorf("WarningName(33, en) = %q", got)
	}
	// Languages outside the catalog fall back to English.
	if got := WarningName("33", domain.LangFrench); got != "Heavy Rain Emergency Warning" {
		t.Errorf("WarningName(33, fr) = %q, want English fallback", got)
	}
	if got := WarningName("99", domain.LangEnglish); got != "" {
		t.Errorf("WarningName(99, en) = %q, want empty", got)
	}

	if got := WarningSeverity("33"); got != domain.SeverityExtreme {
		t.Errorf("WarningSeverity(33) = %s, want extreme", got)
	}
	if got := WarningSeverity("14"); got != domain.SeverityMedium {
		t.Errorf("WarningSeverity(14) = %s, want medium", got)
	}
	if got := WarningSeverity("99"); got != domain.SeverityMedium {
		t.Errorf("WarningSeverity(99) = %s, want medium default", got)
	}
}

func TestWarningDescription(t *testing.T) {
	got := WarningDescription("Tokyo", "Heavy Rain Warning", domain.LangEnglish)
	want := "Heavy Rain Warning has been issued for Tokyo."
	if got != want {
		t.Errorf("WarningDescription = %q, want %q", got, want)
	}

	got = WarningDescription("東京都", "大雨警報", domain.LangJapanese)
	want = "東京都に大雨警報が発表されています。"
	if got != want {
		t.Errorf("WarningDescription ja = %q, want %q", got, want)
	}

	// No static template: English sentence with translated tokens.
	got = WarningDescription("Tokio", "Starkregen-Warnung", domain.LangGerman)
	if !strings.Contains(got, "has been issued for Tokio") {
		t.Errorf("WarningDescription de = %q, want English template", got)
	}
}

func TestEarthquakeMessage(t *testing.T) {
	table := NewTable()

	msg := table.EarthquakeMessage(domain.LangEnglish, EarthquakeMessageParams{
		Location:       "Noto Region, Ishikawa Prefecture",
		Magnitude:      7.6,
		Intensity:      "Intensity 7",
		Depth:          16,
		TsunamiWarning: "大津波警報",
	})
	for _, want := range []string{"Magnitude 7.6", "Intensity 7", "16km", "Major Tsunami Warning"} {
		if !strings.Contains(msg, want) {
			t.Errorf("message %q missing %q", msg, want)
		}
	}

	msg = table.EarthquakeMessage(domain.LangEnglish, EarthquakeMessageParams{
		Location:       "Miyagi Offshore",
		Magnitude:      4.0,
		Intensity:      "Intensity 3",
		Depth:          60,
		TsunamiWarning: "なし",
	})
	if !strings.Contains(msg, "no tsunami risk") {
		t.Errorf("message %q should carry the no-tsunami sentence", msg)
	}
	if !strings.Contains(msg, "Magnitude 4,") {
		t.Errorf("message %q should render magnitude without trailing zero", msg)
	}

	msg = table.EarthquakeMessage(domain.LangJapanese, EarthquakeMessageParams{
		Location:       "宮城県沖",
		Magnitude:      5.2,
		Intensity:      "4",
		Depth:          50,
		TsunamiWarning: "津波注意報",
	})
	if !strings.Contains(msg, "津波注意報") || !strings.Contains(msg, "宮城県沖") {
		t.Errorf("japanese message %q missing source labels", msg)
	}
}

func TestDisasterTypeName(t *testing.T) {
	if got := DisasterTypeName("earthquake", domain.LangJapanese); got != "地震" {
		t.Errorf("DisasterTypeName(earthquake, ja) = %q", got)
	}
	if got := DisasterTypeName("earthquake", domain.LangFrench); got != "Earthquake" {
		t.Errorf("DisasterTypeName(earthquake, fr) = %q, want English fallback", got)
	}
	if got := DisasterTypeName("meteor", domain.LangEnglish); got != "meteor" {
		t.Errorf("DisasterTypeName(meteor, en) = %q, want identity", got)
	}
}
