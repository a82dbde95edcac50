// Package shelter serves the evacuation site directory. The directory is
// loaded once from a JSON file at startup; when the file is missing or
// unreadable a built-in set of central Tokyo sites keeps the endpoint
// serviceable.
package shelter

import (
	"context"
	"encoding/json"
	"math"
	"os"
	"sort"

	"go.uber.org/zap"

	"github.com/anzen-app/bosai-go/internal/constants"
	"github.com/anzen-app/bosai-go/internal/domain"
	"github.com/anzen-app/bosai-go/internal/service/translator"
	"github.com/anzen-app/bosai-go/internal/util"
)

const earthRadiusKM = 6371

// disasterTypes maps the shelter type codes to their Japanese designations
// as used by the GSI shelter dataset.
var disasterTypes = map[string]string{
	"flood":        "洪水",
	"landslide":    "崖崩れ、土石流及び地滑り",
	"storm_surge":  "高潮",
	"earthquake":   "地震",
	"tsunami":      "津波",
	"fire":         "大規模な火事",
	"inland_flood": "内水氾濫",
	"volcano":      "火山現象",
}

type Service struct {
	shelters   []domain.Shelter
	translator *translator.Service
	logger     *zap.Logger
}

func NewService(dataFile string, tr *translator.Service, logger *zap.Logger) *Service {
	return &Service{
		shelters:   loadShelters(dataFile, logger),
		translator: tr,
		logger:     logger,
	}
}

func loadShelters(dataFile string, logger *zap.Logger) []domain.Shelter {
	if dataFile == "" {
		return sampleShelters()
	}

	data, err := os.ReadFile(dataFile)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("Shelter data file unreadable, using built-in set",
				zap.String("path", dataFile),
				zap.Error(err),
			)
		}
		return sampleShelters()
	}

	var shelters []domain.Shelter
	if err := json.Unmarshal(data, &shelters); err != nil {
		logger.Warn("Shelter data file corrupt, using built-in set",
			zap.String("path", dataFile),
			zap.Error(err),
		)
		return sampleShelters()
	}

	logger.Info("Shelter directory loaded",
		zap.String("path", dataFile),
		zap.Int("shelters", len(shelters)),
	)
	return shelters
}

// DisasterTypes returns the supported shelter type codes with their
// Japanese designations.
func (s *Service) DisasterTypes() map[string]string {
	return disasterTypes
}

// KnownDisasterType reports whether a type code can be filtered on.
func KnownDisasterType(disasterType string) bool {
	_, ok := disasterTypes[disasterType]
	return ok
}

// Nearby returns the shelters within radiusKM of a point, closest first,
// optionally filtered to one disaster type.
func (s *Service) Nearby(ctx context.Context, lat, lon, radiusKM float64, limit int, disasterType string, lang domain.Language) []domain.Shelter {
	if radiusKM <= 0 {
		radiusKM = constants.ShelterConfig.DefaultRadiusKM
	}
	limit = clampLimit(limit)

	matches := make([]domain.Shelter, 0, limit)
	for _, shelter := range s.shelters {
		distance := haversineKM(lat, lon, shelter.Latitude, shelter.Longitude)
		if distance > radiusKM {
			continue
		}
		if disasterType != "" && !shelter.SupportsType(disasterType) {
			continue
		}
		shelter.DistanceKM = math.Round(distance*100) / 100
		matches = append(matches, shelter)
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].DistanceKM < matches[j].DistanceKM
	})
	if len(matches) > limit {
		matches = matches[:limit]
	}
	return s.localizeAll(ctx, matches, lang)
}

// All returns the directory in load order.
func (s *Service) All(ctx context.Context, limit int, lang domain.Language) []domain.Shelter {
	limit = clampLimit(limit)

	out := s.shelters
	if len(out) > limit {
		out = out[:limit]
	}
	return s.localizeAll(ctx, append([]domain.Shelter(nil), out...), lang)
}

// ByType returns the shelters designated for one disaster type.
func (s *Service) ByType(ctx context.Context, disasterType string, limit int, lang domain.Language) []domain.Shelter {
	limit = clampLimit(limit)

	matches := make([]domain.Shelter, 0, limit)
	for _, shelter := range s.shelters {
		if !shelter.SupportsType(disasterType) {
			continue
		}
		matches = append(matches, shelter)
		if len(matches) == limit {
			break
		}
	}
	return s.localizeAll(ctx, matches, lang)
}

// ByID looks up a single shelter.
func (s *Service) ByID(ctx context.Context, id string, lang domain.Language) (domain.Shelter, bool) {
	for _, shelter := range s.shelters {
		if shelter.ID == id {
			return s.localize(ctx, shelter, lang), true
		}
	}
	return domain.Shelter{}, false
}

func clampLimit(limit int) int {
	if limit <= 0 {
		limit = constants.ShelterConfig.DefaultLimit
	}
	return util.Min(limit, constants.ShelterConfig.MaxLimit)
}

func (s *Service) localizeAll(ctx context.Context, shelters []domain.Shelter, lang domain.Language) []domain.Shelter {
	for i := range shelters {
		shelters[i] = s.localize(ctx, shelters[i], lang)
	}
	return shelters
}

func (s *Service) localize(ctx context.Context, shelter domain.Shelter, lang domain.Language) domain.Shelter {
	if lang == domain.LangJapanese || !lang.Valid() {
		return shelter
	}
	shelter.NameTranslated = s.translator.TranslateLocation(ctx, shelter.Name, lang)
	return shelter
}

// haversineKM is the great-circle distance between two points.
func haversineKM(lat1, lon1, lat2, lon2 float64) float64 {
	lat1Rad := lat1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	deltaLat := (lat2 - lat1) * math.Pi / 180
	deltaLon := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(deltaLon/2)*math.Sin(deltaLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKM * c
}

// sampleShelters is the built-in central Tokyo set used until a real GSI
// dataset is configured.
func sampleShelters() []domain.Shelter {
	return []domain.Shelter{
		{
			ID:         "tokyo_001",
			Name:       "東京都庁",
			Address:    "東京都新宿区西新宿2-8-1",
			Latitude:   35.6896,
			Longitude:  139.6917,
			Capacity:   5000,
			Facilities: []string{"バリアフリー", "駐車場"},
			Types:      []string{"earthquake", "fire"},
			IsOpen:     true,
		},
		{
			ID:         "tokyo_002",
			Name:       "新宿中央公園",
			Address:    "東京都新宿区西新宿2-11",
			Latitude:   35.6909,
			Longitude:  139.6892,
			Capacity:   10000,
			Facilities: []string{"広域避難場所"},
			Types:      []string{"earthquake", "fire"},
			IsOpen:     true,
		},
		{
			ID:         "tokyo_003",
			Name:       "代々木公園",
			Address:    "東京都渋谷区代々木神園町2-1",
			Latitude:   35.6715,
			Longitude:  139.6949,
			Capacity:   20000,
			Facilities: []string{"広域避難場所", "駐車場"},
			Types:      []string{"earthquake", "fire"},
			IsOpen:     true,
		},
		{
			ID:         "tokyo_004",
			Name:       "渋谷区役所",
			Address:    "東京都渋谷区宇田川町1-1",
			Latitude:   35.6641,
			Longitude:  139.6979,
			Capacity:   2000,
			Facilities: []string{"バリアフリー"},
			Types:      []string{"earthquake", "flood"},
			IsOpen:     true,
		},
		{
			ID:         "tokyo_005",
			Name:       "上野公園",
			Address:    "東京都台東区上野公園5-20",
			Latitude:   35.7146,
			Longitude:  139.7732,
			Capacity:   15000,
			Facilities: []string{"広域避難場所", "バリアフリー"},
			Types:      []string{"earthquake", "fire"},
			IsOpen:     true,
		},
	}
}
