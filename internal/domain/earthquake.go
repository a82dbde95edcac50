package domain

// EarthquakeInfo is one earthquake report from the P2P quake feed, with
// optional translated fields filled by the hybrid translator.
type EarthquakeInfo struct {
	ID                       string  `json:"id"`
	Time                     string  `json:"time"`
	Location                 string  `json:"location"`
	LocationTranslated       string  `json:"location_translated,omitempty"`
	Magnitude                float64 `json:"magnitude"`
	MaxIntensity             string  `json:"max_intensity"`
	MaxIntensityTranslated   string  `json:"max_intensity_translated,omitempty"`
	Depth                    int     `json:"depth"`
	Latitude                 float64 `json:"latitude"`
	Longitude                float64 `json:"longitude"`
	TsunamiWarning           string  `json:"tsunami_warning"`
	TsunamiWarningTranslated string  `json:"tsunami_warning_translated,omitempty"`
	Message                  string  `json:"message"`
	MessageTranslated        string  `json:"message_translated,omitempty"`
	Source                   string  `json:"source"`
}
