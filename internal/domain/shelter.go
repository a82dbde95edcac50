package domain

// Shelter is one evacuation site from the shelter directory. DistanceKM is
// only set on proximity queries.
type Shelter struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	NameTranslated string   `json:"name_translated,omitempty"`
	Address        string   `json:"address"`
	Latitude       float64  `json:"latitude"`
	Longitude      float64  `json:"longitude"`
	Capacity       int      `json:"capacity,omitempty"`
	Facilities     []string `json:"facilities,omitempty"`
	Types          []string `json:"types"`
	IsOpen         bool     `json:"is_open"`
	DistanceKM     float64  `json:"distance_km,omitempty"`
}

// SupportsType reports whether the shelter is designated for a disaster
// type code such as "earthquake" or "flood".
func (s Shelter) SupportsType(disasterType string) bool {
	for _, t := range s.Types {
		if t == disasterType {
			return true
		}
	}
	return false
}
