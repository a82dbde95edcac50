package phrase

import "github.com/anzen-app/bosai-go/internal/domain"

// warningInfo is the catalog row for one JMA warning/advisory code.
type warningInfo struct {
	names    map[domain.Language]string
	severity domain.Severity
}

// StaticWarningLanguages are the languages the warning catalog covers
// directly; every other language is produced by the AI tier.
var StaticWarningLanguages = map[domain.Language]bool{
	domain.LangJapanese:     true,
	domain.LangEnglish:      true,
	domain.LangChinese:      true,
	domain.LangKorean:       true,
	domain.LangVietnamese:   true,
	domain.LangEasyJapanese: true,
}

func warnNames(ja, en, zh, ko, vi, easy string) map[domain.Language]string {
	return map[domain.Language]string{
		domain.LangJapanese:     ja,
		domain.LangEnglish:      en,
		domain.LangChinese:      zh,
		domain.LangKorean:       ko,
		domain.LangVietnamese:   vi,
		domain.LangEasyJapanese: easy,
	}
}

// warningCodes maps JMA warning codes to names and severity.
var warningCodes = map[string]warningInfo{
	"02": {warnNames("暴風雪警報", "Blizzard Warning", "暴风雪警报", "폭풍설 경보", "Cảnh báo bão tuyết", "ふぶき けいほう"), domain.SeverityHigh},
	"03": {warnNames("大雨警報", "Heavy Rain Warning", "大雨警报", "호우 경보", "Cảnh báo mưa lớn", "おおあめ けいほう"), domain.SeverityHigh},
	"04": {warnNames("洪水警報", "Flood Warning", "洪水警报", "홍수 경보", "Cảnh báo lũ lụt", "こうずい けいほう"), domain.SeverityHigh},
	"05": {warnNames("暴風警報", "Storm Warning", "暴风警报", "폭풍 경보", "Cảnh báo bão", "ぼうふう けいほう"), domain.SeverityHigh},
	"06": {warnNames("大雪警報", "Heavy Snow Warning", "大雪警报", "대설 경보", "Cảnh báo tuyết lớn", "おおゆき けいほう"), domain.SeverityHigh},
	"07": {warnNames("波浪警報", "High Waves Warning", "海浪警报", "파랑 경보", "Cảnh báo sóng lớn", "なみ けいほう"), domain.SeverityHigh},
	"08": {warnNames("高潮警報", "Storm Surge Warning", "风暴潮警报", "해일 경보", "Cảnh báo triều cường", "たかしお けいほう"), domain.SeverityHigh},
	"10": {warnNames("大雨注意報", "Heavy Rain Advisory", "大雨注意报", "호우 주의보", "Chú ý mưa lớn", "おおあめ ちゅういほう"), domain.SeverityMedium},
	"12": {warnNames("大雪注意報", "Heavy Snow Advisory", "大雪注意报", "대설 주의보", "Chú ý tuyết lớn", "おおゆき ちゅういほう"), domain.SeverityMedium},
	"13": {warnNames("風雪注意報", "Wind Snow Advisory", "风雪注意报", "풍설 주의보", "Chú ý gió tuyết", "ふうせつ ちゅういほう"), domain.SeverityMedium},
	"14": {warnNames("雷注意報", "Thunder Advisory", "雷电注意报", "뇌우 주의보", "Chú ý sấm sét", "かみなり ちゅういほう"), domain.SeverityMedium},
	"15": {warnNames("強風注意報", "Strong Wind Advisory", "强风注意报", "강풍 주의보", "Chú ý gió mạnh", "つよいかぜ ちゅういほう"), domain.SeverityMedium},
	"16": {warnNames("波浪注意報", "High Waves Advisory", "海浪注意报", "파랑 주의보", "Chú ý sóng lớn", "なみ ちゅういほう"), domain.SeverityMedium},
	"17": {warnNames("融雪注意報", "Snowmelt Advisory", "融雪注意报", "융설 주의보", "Chú ý tan tuyết", "ゆきどけ ちゅういほう"), domain.SeverityMedium},
	"18": {warnNames("洪水注意報", "Flood Advisory", "洪水注意报", "홍수 주의보", "Chú ý lũ lụt", "こうずい ちゅういほう"), domain.SeverityMedium},
	"19": {warnNames("高潮注意報", "Storm Surge Advisory", "风暴潮注意报", "해일 주의보", "Chú ý triều cường", "たかしお ちゅういほう"), domain.SeverityMedium},
	"20": {warnNames("濃霧注意報", "Dense Fog Advisory", "浓雾注意报", "짙은 안개 주의보", "Chú ý sương mù dày", "きり ちゅういほう"), domain.SeverityLow},
	"21": {warnNames("乾燥注意報", "Dry Air Advisory", "干燥注意报", "건조 주의보", "Chú ý không khí khô", "かんそう ちゅういほう"), domain.SeverityLow},
	"22": {warnNames("なだれ注意報", "Avalanche Advisory", "雪崩注意报", "눈사태 주의보", "Chú ý lở tuyết", "なだれ ちゅういほう"), domain.SeverityMedium},
	"23": {warnNames("低温注意報", "Low Temperature Advisory", "低温注意报", "저온 주의보", "Chú ý nhiệt độ thấp", "さむさ ちゅういほう"), domain.SeverityLow},
	"24": {warnNames("霜注意報", "Frost Advisory", "霜冻注意报", "서리 주의보", "Chú ý sương giá", "しも ちゅういほう"), domain.SeverityLow},
	"25": {warnNames("着氷注意報", "Icing Advisory", "结冰注意报", "착빙 주의보", "Chú ý đóng băng", "こおり ちゅういほう"), domain.SeverityLow},
	"26": {warnNames("着雪注意報", "Snow Accretion Advisory", "积雪注意报", "착설 주의보", "Chú ý tuyết bám", "ゆき ちゅういほう"), domain.SeverityLow},
	"32": {warnNames("暴風雪特別警報", "Blizzard Emergency Warning", "暴风雪特别警报", "폭풍설 특별 경보", "Cảnh báo khẩn cấp bão tuyết", "ふぶき とくべつけいほう"), domain.SeverityExtreme},
	"33": {warnNames("大雨特別警報", "Heavy Rain Emergency Warning", "大雨特别警报", "호우 특별 경보", "Cảnh báo khẩn cấp mưa lớn", "おおあめ とくべつけいほう"), domain.SeverityExtreme},
	"35": {warnNames("暴風特別警報", "Storm Emergency Warning", "暴风特别警报", "폭풍 특별 경보", "Cảnh báo khẩn cấp bão", "ぼうふう とくべつけいほう"), domain.SeverityExtreme},
	"36": {warnNames("大雪特別警報", "Heavy Snow Emergency Warning", "大雪特别警报", "대설 특별 경보", "Cảnh báo khẩn cấp tuyết lớn", "おおゆき とくべつけいほう"), domain.SeverityExtreme},
	"37": {warnNames("波浪特別警報", "High Waves Emergency Warning", "海浪特别警报", "파랑 특별 경보", "Cảnh báo khẩn cấp sóng lớn", "なみ とくべつけいほう"), domain.SeverityExtreme},
	"38": {warnNames("高潮特別警報", "Storm Surge Emergency Warning", "风暴潮特别警报", "해일 특별 경보", "Cảnh báo khẩn cấp triều cường", "たかしお とくべつけいほう"), domain.SeverityExtreme},
}

// KnownWarningCode reports whether code is in the catalog.
func KnownWarningCode(code string) bool {
	_, ok := warningCodes[code]
	return ok
}

// WarningName returns the warning name for a code in the given language,
// falling back to English, then Japanese.
func WarningName(code string, lang domain.Language) string {
	info, ok := warningCodes[code]
	if !ok {
		return ""
	}
	if name, ok := info.names[lang]; ok {
		return name
	}
	if name, ok := info.names[domain.LangEnglish]; ok {
		return name
	}
	return info.names[domain.LangJapanese]
}

// WarningSeverity returns the catalog severity for a code; medium if unknown.
func WarningSeverity(code string) domain.Severity {
	if info, ok := warningCodes[code]; ok {
		return info.severity
	}
	return domain.SeverityMedium
}

// descriptionTemplates renders "warning W has been issued for area A" in the
// statically supported languages.
var descriptionTemplates = map[domain.Language]string{
	domain.LangJapanese:     "{area}に{warning}が発表されています。",
	domain.LangEnglish:      "{warning} has been issued for {area}.",
	domain.LangChinese:      "{area}发布了{warning}。",
	domain.LangKorean:       "{area}에 {warning}이(가) 발령되었습니다.",
	domain.LangVietnamese:   "{warning} đã được ban hành cho {area}.",
	domain.LangEasyJapanese: "{area}に {warning}が でています。",
}

// WarningDescription builds the one-line description for a warning in the
// given language. Languages without a static template use the English form.
func WarningDescription(area, warning string, lang domain.Language) string {
	template, ok := descriptionTemplates[lang]
	if !ok {
		template = descriptionTemplates[domain.LangEnglish]
	}
	return replacePlaceholders(template, map[string]string{
		"area":    area,
		"warning": warning,
	})
}
