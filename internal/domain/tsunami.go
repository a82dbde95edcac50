package domain

// TsunamiLevel classifies a tsunami bulletin by its most severe active kind.
type TsunamiLevel string

const (
	TsunamiLevelMajorWarning TsunamiLevel = "major_warning"
	TsunamiLevelWarning      TsunamiLevel = "warning"
	TsunamiLevelAdvisory     TsunamiLevel = "advisory"
	TsunamiLevelForecast     TsunamiLevel = "forecast"
	TsunamiLevelNone         TsunamiLevel = "none"
)

// Severity maps a bulletin level onto the shared severity scale.
func (l TsunamiLevel) Severity() Severity {
	switch l {
	case TsunamiLevelMajorWarning:
		return SeverityExtreme
	case TsunamiLevelWarning:
		return SeverityHigh
	case TsunamiLevelAdvisory:
		return SeverityMedium
	default:
		return SeverityLow
	}
}

// TsunamiInfo is one bulletin from the JMA tsunami feed, with optional
// translated fields filled by the hybrid translator.
type TsunamiInfo struct {
	ID                 string       `json:"id"`
	EventID            string       `json:"event_id"`
	Title              string       `json:"title"`
	TitleTranslated    string       `json:"title_translated,omitempty"`
	ReportedAt         string       `json:"reported_at"`
	EarthquakeTime     string       `json:"earthquake_time,omitempty"`
	Location           string       `json:"location"`
	LocationTranslated string       `json:"location_translated,omitempty"`
	Magnitude          string       `json:"magnitude,omitempty"`
	Latitude           float64      `json:"latitude,omitempty"`
	Longitude          float64      `json:"longitude,omitempty"`
	Level              TsunamiLevel `json:"level"`
	Severity           Severity     `json:"severity"`
	Message            string       `json:"message"`
	MessageTranslated  string       `json:"message_translated,omitempty"`
}
