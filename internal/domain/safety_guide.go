package domain

// SafetyGuide is an AI-generated, language-specific action guide for one
// disaster type.
type SafetyGuide struct {
	DisasterType      string   `json:"disaster_type"`
	Severity          Severity `json:"severity"`
	Location          string   `json:"location,omitempty"`
	Language          Language `json:"language"`
	Title             string   `json:"title"`
	Summary           string   `json:"summary"`
	ImmediateActions  []string `json:"immediate_actions"`
	PreparationTips   []string `json:"preparation_tips"`
	EvacuationInfo    string   `json:"evacuation_info,omitempty"`
	EmergencyContacts string   `json:"emergency_contacts,omitempty"`
	AdditionalNotes   string   `json:"additional_notes,omitempty"`
	GeneratedAt       string   `json:"generated_at"`
	Cached            bool     `json:"cached"`
}
