package domain

// Severity of a warning, ordered extreme > high > medium > low.
type Severity string

const (
	SeverityLow     Severity = "low"
	SeverityMedium  Severity = "medium"
	SeverityHigh    Severity = "high"
	SeverityExtreme Severity = "extreme"
)

var severityRank = map[Severity]int{
	SeverityLow:     0,
	SeverityMedium:  1,
	SeverityHigh:    2,
	SeverityExtreme: 3,
}

// Rank returns the ordering weight of s; unknown severities rank lowest.
func (s Severity) Rank() int {
	return severityRank[s]
}

// AlertType is derived from severity for display grouping.
type AlertType string

const (
	AlertTypeWatch          AlertType = "watch"
	AlertTypeAdvisory       AlertType = "advisory"
	AlertTypeWarning        AlertType = "warning"
	AlertTypeSpecialWarning AlertType = "special_warning"
)

// AlertTypeFor maps a severity to its display alert type.
func AlertTypeFor(severity Severity) AlertType {
	switch severity {
	case SeverityExtreme:
		return AlertTypeSpecialWarning
	case SeverityHigh:
		return AlertTypeWarning
	case SeverityMedium:
		return AlertTypeAdvisory
	default:
		return AlertTypeWatch
	}
}

// WarningRecord is one active warning or advisory for one area, as produced
// by the per-prefecture upstream fetch.
type WarningRecord struct {
	ID                    string    `json:"id"`
	AreaCode              string    `json:"area_code"`
	Type                  AlertType `json:"type"`
	Title                 string    `json:"title"`
	TitleTranslated       string    `json:"title_translated,omitempty"`
	Description           string    `json:"description"`
	DescriptionTranslated string    `json:"description_translated,omitempty"`
	Area                  string    `json:"area"`
	IssuedAt              string    `json:"issued_at"`
	ExpiresAt             string    `json:"expires_at,omitempty"`
	Severity              Severity  `json:"severity"`
	Action                string    `json:"action,omitempty"`
}

// AggregationResult carries the merged nationwide warnings plus per-area
// fetch failures. Created fresh per aggregation call, never persisted.
type AggregationResult struct {
	Records []WarningRecord   `json:"records"`
	Errors  map[string]string `json:"errors"`
}
