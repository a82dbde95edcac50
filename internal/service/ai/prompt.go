package ai

import (
	"fmt"

	"github.com/anzen-app/bosai-go/internal/domain"
)

// severityContext phrases severity for the model so translated warnings keep
// their urgency.
func severityContext(severity domain.Severity) string {
	switch severity {
	case domain.SeverityLow:
		return "minor advisory"
	case domain.SeverityMedium:
		return "advisory requiring attention"
	case domain.SeverityHigh:
		return "serious warning requiring caution"
	case domain.SeverityExtreme:
		return "emergency warning requiring immediate action"
	default:
		return "advisory"
	}
}

// BuildTranslatePrompt asks for a single translation wrapped in a JSON
// object. The disaster framing keeps the model from softening alert wording.
func BuildTranslatePrompt(text string, lang domain.Language) string {
	return fmt.Sprintf(`Translate this Japanese disaster alert text to %s.
The text is part of an emergency notification; preserve the severity and urgency of the wording exactly. Do not add, soften, or editorialize.
For "Easy Japanese" use simple hiragana and basic vocabulary with spaces between words.

Return ONLY a JSON object with this exact shape (no markdown, no explanation):
{"translation": "the translated text"}

Text:
%s`, lang.PromptName(), text)
}

// BuildWarningTextPrompt asks for the full localized warning text block:
// name, one-sentence description, and a recommended action.
func BuildWarningTextPrompt(warningNameJA string, lang domain.Language, areaName string, severity domain.Severity) string {
	area := areaName
	if area == "" {
		area = "general"
	}
	areaClause := ""
	if areaName != "" {
		areaClause = " for " + areaName
	}

	return fmt.Sprintf(`Translate and generate disaster warning information in %s.

Japanese warning name: %s
Severity level: %s
Area: %s

Return ONLY a JSON object with these exact keys (no markdown, no explanation):
{
  "name": "translated warning name",
  "description": "brief explanation of this warning type%s (1 sentence)",
  "action": "recommended immediate action for people in affected area (1-2 sentences)"
}

Important:
- Keep translations accurate and culturally appropriate
- For "Easy Japanese", use simple hiragana and basic vocabulary
- Action should be practical and specific to this warning type`,
		lang.PromptName(), warningNameJA, severityContext(severity), area, areaClause)
}

// BuildSafetyGuidePrompt asks for a structured safety guide document.
func BuildSafetyGuidePrompt(disasterType string, lang domain.Language, location string, severity domain.Severity) string {
	var severityDesc string
	switch severity {
	case domain.SeverityLow:
		severityDesc = "minor risk, general awareness needed"
	case domain.SeverityHigh:
		severityDesc = "serious risk, immediate precautions needed"
	case domain.SeverityExtreme:
		severityDesc = "life-threatening emergency, immediate action required"
	default:
		severityDesc = "moderate risk, caution advised"
	}

	locationClause := ""
	if location != "" {
		locationClause = " in " + location
	}

	target := lang.PromptName()
	return fmt.Sprintf(`Generate a comprehensive safety guide for %s%s in %s.

Severity level: %s

Return ONLY a JSON object with these exact keys (no markdown, no explanation):
{
  "title": "Safety guide title in %s",
  "summary": "Brief 1-2 sentence summary of what to do",
  "immediate_actions": ["action 1", "action 2", "action 3", "action 4", "action 5"],
  "preparation_tips": ["tip 1", "tip 2", "tip 3"],
  "evacuation_info": "Information about when and where to evacuate",
  "emergency_contacts": "Emergency numbers and resources (use Japan numbers: Police 110, Fire/Ambulance 119, Coast Guard 118)",
  "additional_notes": "Any additional important information"
}

Important guidelines:
- All text must be in %s
- For "Easy Japanese", use simple hiragana and basic vocabulary with spaces between words
- immediate_actions should be specific, actionable steps in order of priority
- Include Japan-specific emergency information
- Be culturally appropriate and practical
- Focus on life-saving information first`,
		disasterType, locationClause, target, severityDesc, target, target)
}
