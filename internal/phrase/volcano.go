package phrase

// JMA eruption alert level names, keyed by the Japanese label the volcano
// feed reports. English renderings follow the JMA's own translations.
var volcanoLevelEntries = []entry{
	{
		ja: "活火山であることに留意", en: "Potential for increased activity", zh: "注意活火山", zhTW: "注意活火山",
		ko: "활화산 유의", vi: "Lưu ý núi lửa đang hoạt động", easyJA: "かざんに ちゅうい してください",
	},
	{
		ja: "火口周辺規制", en: "Do not approach the crater", zh: "火山口周边管制", zhTW: "火山口周邊管制",
		ko: "화구 주변 규제", vi: "Hạn chế khu vực quanh miệng núi lửa", easyJA: "かこうの ちかくに いかないでください",
	},
	{
		ja: "入山規制", en: "Do not approach the volcano", zh: "限制入山", zhTW: "限制入山",
		ko: "입산 규제", vi: "Cấm lên núi", easyJA: "やまに はいらないでください",
	},
	{
		ja: "高齢者等避難", en: "Evacuation of the elderly", zh: "老年人等避难", zhTW: "高齡者等避難",
		ko: "고령자 등 대피", vi: "Người cao tuổi sơ tán", easyJA: "おとしよりは にげてください",
	},
	{
		ja: "避難", en: "Evacuate", zh: "避难", zhTW: "避難",
		ko: "대피", vi: "Sơ tán", easyJA: "にげてください",
	},
}
