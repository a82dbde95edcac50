package domain

// VolcanoInfo is one volcano from the JMA volcano catalog.
type VolcanoInfo struct {
	Code           int     `json:"code"`
	Name           string  `json:"name"`
	NameTranslated string  `json:"name_translated,omitempty"`
	Latitude       float64 `json:"latitude,omitempty"`
	Longitude      float64 `json:"longitude,omitempty"`
	IsMonitored    bool    `json:"is_monitored"`
}

// VolcanoWarning is the current eruption alert for one monitored volcano.
// AlertLevel follows the JMA 1-5 eruption alert scale.
type VolcanoWarning struct {
	VolcanoCode           int      `json:"volcano_code"`
	VolcanoName           string   `json:"volcano_name"`
	VolcanoNameTranslated string   `json:"volcano_name_translated,omitempty"`
	AlertLevel            int      `json:"alert_level"`
	LevelName             string   `json:"level_name"`
	LevelNameTranslated   string   `json:"level_name_translated,omitempty"`
	Severity              Severity `json:"severity"`
	Action                string   `json:"action,omitempty"`
	IssuedAt              string   `json:"issued_at"`
	Headline              string   `json:"headline,omitempty"`
	HeadlineTranslated    string   `json:"headline_translated,omitempty"`
}
