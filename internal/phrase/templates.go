package phrase

import (
	"fmt"
	"strings"

	"github.com/anzen-app/bosai-go/internal/domain"
)

func replacePlaceholders(template string, vars map[string]string) string {
	pairs := make([]string, 0, len(vars)*2)
	for key, value := range vars {
		pairs = append(pairs, "{"+key+"}", value)
	}
	return strings.NewReplacer(pairs...).Replace(template)
}

// EarthquakeMessageParams feeds the earthquake message template.
type EarthquakeMessageParams struct {
	Location       string
	Magnitude      float64
	Intensity      string
	Depth          int
	TsunamiWarning string // Japanese label from the quake feed
}

var earthquakeTemplates = map[domain.Language]string{
	domain.LangJapanese:     "【地震情報】{location}で地震が発生しました。マグニチュード{magnitude}、最大震度{intensity}。震源の深さ約{depth}km。{tsunami_info}",
	domain.LangEnglish:      "[Earthquake] An earthquake occurred in {location}. Magnitude {magnitude}, Maximum intensity {intensity}. Depth: {depth}km. {tsunami_info}",
	domain.LangChinese:      "【地震信息】{location}发生地震。震级{magnitude}，最大震度{intensity}。震源深度约{depth}公里。{tsunami_info}",
	domain.LangChineseTW:    "【地震資訊】{location}發生地震。規模{magnitude}，最大震度{intensity}。震源深度約{depth}公里。{tsunami_info}",
	domain.LangKorean:       "【지진정보】{location}에서 지진이 발생했습니다. 규모 {magnitude}, 최대진도 {intensity}. 진원 깊이 약 {depth}km. {tsunami_info}",
	domain.LangVietnamese:   "[Động đất] Động đất xảy ra tại {location}. Cường độ {magnitude}, Cường độ tối đa {intensity}. Độ sâu: {depth}km. {tsunami_info}",
	domain.LangThai:         "[แผ่นดินไหว] เกิดแผ่นดินไหวที่ {location} ขนาด {magnitude} ความรุนแรงสูงสุด {intensity} ความลึก: {depth} กม. {tsunami_info}",
	domain.LangIndonesian:   "[Gempa] Gempa bumi terjadi di {location}. Magnitudo {magnitude}, Intensitas maksimum {intensity}. Kedalaman: {depth}km. {tsunami_info}",
	domain.LangMalay:        "[Gempa Bumi] Gempa bumi berlaku di {location}. Magnitud {magnitude}, Keamatan maksimum {intensity}. Kedalaman: {depth}km. {tsunami_info}",
	domain.LangTagalog:      "[Lindol] Nagkaroon ng lindol sa {location}. Magnitude {magnitude}, Pinakamataas na intensity {intensity}. Lalim: {depth}km. {tsunami_info}",
	domain.LangFrench:       "[Séisme] Un séisme s'est produit à {location}. Magnitude {magnitude}, Intensité maximale {intensity}. Profondeur: {depth}km. {tsunami_info}",
	domain.LangGerman:       "[Erdbeben] Ein Erdbeben ereignete sich in {location}. Magnitude {magnitude}, Maximale Intensität {intensity}. Tiefe: {depth}km. {tsunami_info}",
	domain.LangItalian:      "[Terremoto] Si è verificato un terremoto a {location}. Magnitudo {magnitude}, Intensità massima {intensity}. Profondità: {depth}km. {tsunami_info}",
	domain.LangSpanish:      "[Terremoto] Ocurrió un terremoto en {location}. Magnitud {magnitude}, Intensidad máxima {intensity}. Profundidad: {depth}km. {tsunami_info}",
	domain.LangNepali:       "[भूकम्प] {location} मा भूकम्प आयो। म्याग्निच्युड {magnitude}, अधिकतम तीव्रता {intensity}। गहिराई: {depth} किमी। {tsunami_info}",
	domain.LangEasyJapanese: "【じしん】{location}で じしんが ありました。つよさは {intensity} です。ふかさは {depth}キロメートル。{tsunami_info}",
}

type tsunamiInfoTemplate struct {
	safe    string
	warning string
}

var tsunamiInfoTemplates = map[domain.Language]tsunamiInfoTemplate{
	domain.LangJapanese:     {"この地震による津波の心配はありません。", "津波情報: {warning}。"},
	domain.LangEnglish:      {"There is no tsunami risk from this earthquake.", "Tsunami information: {warning}."},
	domain.LangChinese:      {"此次地震没有海啸风险。", "海啸信息：{warning}。"},
	domain.LangChineseTW:    {"此次地震沒有海嘯風險。", "海嘯資訊：{warning}。"},
	domain.LangKorean:       {"이 지진으로 인한 쓰나미 위험은 없습니다.", "쓰나미 정보: {warning}."},
	domain.LangVietnamese:   {"Không có nguy cơ sóng thần từ trận động đất này.", "Thông tin sóng thần: {warning}."},
	domain.LangThai:         {"ไม่มีความเสี่ยงจากสึนามิจากแผ่นดินไหวครั้งนี้", "ข้อมูลสึนามิ: {warning}"},
	domain.LangIndonesian:   {"Tidak ada risiko tsunami dari gempa ini.", "Informasi tsunami: {warning}."},
	domain.LangMalay:        {"Tiada risiko tsunami daripada gempa bumi ini.", "Maklumat tsunami: {warning}."},
	domain.LangTagalog:      {"Walang panganib ng tsunami mula sa lindol na ito.", "Impormasyon tungkol sa tsunami: {warning}."},
	domain.LangFrench:       {"Il n'y a pas de risque de tsunami suite à ce séisme.", "Information tsunami: {warning}."},
	domain.LangGerman:       {"Es besteht keine Tsunami-Gefahr durch dieses Erdbeben.", "Tsunami-Information: {warning}."},
	domain.LangItalian:      {"Non c'è rischio di tsunami da questo terremoto.", "Informazioni tsunami: {warning}."},
	domain.LangSpanish:      {"No hay riesgo de tsunami por este terremoto.", "Información de tsunami: {warning}."},
	domain.LangNepali:       {"यस भूकम्पबाट सुनामीको जोखिम छैन।", "सुनामी जानकारी: {warning}।"},
	domain.LangEasyJapanese: {"この じしんで つなみの しんぱいは ありません。", "つなみ じょうほう: {warning}。"},
}

// EarthquakeMessage expands the per-language earthquake sentence template.
// The location and intensity are expected to already be in the target
// language; the tsunami label is resolved against the static table here.
func (t *Table) EarthquakeMessage(lang domain.Language, p EarthquakeMessageParams) string {
	template, ok := earthquakeTemplates[lang]
	if !ok {
		template = earthquakeTemplates[domain.LangEnglish]
	}
	info, ok := tsunamiInfoTemplates[lang]
	if !ok {
		info = tsunamiInfoTemplates[domain.LangEnglish]
	}

	var tsunamiInfo string
	if p.TsunamiWarning == "なし" || p.TsunamiWarning == "None" || p.TsunamiWarning == "" {
		tsunamiInfo = info.safe
	} else {
		label := p.TsunamiWarning
		if lang != domain.LangJapanese {
			if translated, ok := t.Tsunami(p.TsunamiWarning, lang); ok {
				label = translated
			}
		}
		tsunamiInfo = replacePlaceholders(info.warning, map[string]string{"warning": label})
	}

	return replacePlaceholders(template, map[string]string{
		"location":     p.Location,
		"magnitude":    strings.TrimSuffix(strings.TrimSuffix(fmt.Sprintf("%.1f", p.Magnitude), "0"), "."),
		"intensity":    p.Intensity,
		"depth":        fmt.Sprintf("%d", p.Depth),
		"tsunami_info": tsunamiInfo,
	})
}

// DefaultActionJA is the Japanese recommended action for a severity level,
// used when warning text is assembled without the AI tier.
func DefaultActionJA(severity domain.Severity) string {
	switch severity {
	case domain.SeverityLow:
		return "最新の情報に注意してください。"
	case domain.SeverityHigh:
		return "屋外での活動を控え、安全な場所で待機してください。"
	case domain.SeverityExtreme:
		return "直ちに安全な場所へ避難してください。命を守る行動を取ってください。"
	default:
		return "今後の情報に注意し、必要に応じて安全な場所へ移動してください。"
	}
}

// DisasterTypeName translates a disaster type identifier for display.
var disasterTypeNames = map[string]map[domain.Language]string{
	"earthquake": {domain.LangJapanese: "地震", domain.LangEnglish: "Earthquake", domain.LangEasyJapanese: "じしん"},
	"tsunami":    {domain.LangJapanese: "津波", domain.LangEnglish: "Tsunami", domain.LangEasyJapanese: "つなみ"},
	"flood":      {domain.LangJapanese: "洪水", domain.LangEnglish: "Flood", domain.LangEasyJapanese: "こうずい"},
	"typhoon":    {domain.LangJapanese: "台風", domain.LangEnglish: "Typhoon", domain.LangEasyJapanese: "たいふう"},
	"volcano":    {domain.LangJapanese: "火山", domain.LangEnglish: "Volcano", domain.LangEasyJapanese: "かざん"},
	"landslide":  {domain.LangJapanese: "土砂災害", domain.LangEnglish: "Landslide", domain.LangEasyJapanese: "どしゃさいがい"},
}

func DisasterTypeName(disasterType string, lang domain.Language) string {
	if names, ok := disasterTypeNames[disasterType]; ok {
		if name, ok := names[lang]; ok {
			return name
		}
		if name, ok := names[domain.LangEnglish]; ok {
			return name
		}
	}
	return disasterType
}

// ValidDisasterType reports whether the safety guide knows this type.
func ValidDisasterType(disasterType string) bool {
	_, ok := disasterTypeNames[disasterType]
	return ok
}
