package phrase

import "github.com/anzen-app/bosai-go/internal/domain"

// Tsunami warning levels as labeled by the quake feed, plus the "no tsunami"
// states. French/German/Italian/Spanish get their own renderings because
// these labels are full phrases rather than proper nouns.
var tsunamiEntries = []entry{
	{
		ja: "大津波警報", en: "Major Tsunami Warning", zh: "大海啸警报", zhTW: "大海嘯警報",
		ko: "대형 쓰나미 경보", vi: "Cảnh báo sóng thần lớn", easyJA: "おおつなみ けいほう",
		extra: map[domain.Language]string{
			domain.LangFrench:  "Alerte majeure au tsunami",
			domain.LangGerman:  "Große Tsunami-Warnung",
			domain.LangItalian: "Allerta tsunami maggiore",
			domain.LangSpanish: "Alerta de tsunami mayor",
		},
	},
	{
		ja: "津波警報", en: "Tsunami Warning", zh: "海啸警报", zhTW: "海嘯警報",
		ko: "쓰나미 경보", vi: "Cảnh báo sóng thần", easyJA: "つなみ けいほう",
		extra: map[domain.Language]string{
			domain.LangFrench:  "Alerte au tsunami",
			domain.LangGerman:  "Tsunami-Warnung",
			domain.LangItalian: "Allerta tsunami",
			domain.LangSpanish: "Alerta de tsunami",
		},
	},
	{
		ja: "津波注意報", en: "Tsunami Advisory", zh: "海啸注意报", zhTW: "海嘯注意報",
		ko: "쓰나미 주의보", vi: "Chú ý sóng thần", easyJA: "つなみ ちゅういほう",
		extra: map[domain.Language]string{
			domain.LangFrench:  "Avis de tsunami",
			domain.LangGerman:  "Tsunami-Hinweis",
			domain.LangItalian: "Avviso tsunami",
			domain.LangSpanish: "Aviso de tsunami",
		},
	},
	{
		ja: "若干の海面変動", en: "Slight sea level change", zh: "轻微海面变动", zhTW: "輕微海面變動",
		ko: "약간의 해수면 변동", vi: "Thay đổi mực nước biển nhẹ", easyJA: "すこし うみの たかさが かわります",
	},
	{
		ja: "調査中", en: "Under investigation", zh: "调查中", zhTW: "調查中",
		ko: "조사 중", vi: "Đang điều tra", easyJA: "しらべています",
	},
	{
		ja: "なし", en: "None", zh: "无", zhTW: "無",
		ko: "없음", vi: "Không có", easyJA: "ありません",
	},
	{
		ja: "不明", en: "Unknown", zh: "不明", zhTW: "不明",
		ko: "불명", vi: "Không rõ", easyJA: "わかりません",
	},
}
