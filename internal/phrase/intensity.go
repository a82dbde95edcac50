package phrase

// JMA seismic intensity scale labels. Keys are the bare intensity values as
// reported by the quake feed.
var intensityEntries = []entry{
	{ja: "1", en: "Intensity 1", zh: "震度1", zhTW: "震度1", ko: "진도 1", vi: "Cường độ 1", easyJA: "しんど 1"},
	{ja: "2", en: "Intensity 2", zh: "震度2", zhTW: "震度2", ko: "진도 2", vi: "Cường độ 2", easyJA: "しんど 2"},
	{ja: "3", en: "Intensity 3", zh: "震度3", zhTW: "震度3", ko: "진도 3", vi: "Cường độ 3", easyJA: "しんど 3"},
	{ja: "4", en: "Intensity 4", zh: "震度4", zhTW: "震度4", ko: "진도 4", vi: "Cường độ 4", easyJA: "しんど 4"},
	{ja: "5弱", en: "Intensity 5 Lower", zh: "震度5弱", zhTW: "震度5弱", ko: "진도 5약", vi: "Cường độ 5 yếu", easyJA: "しんど 5じゃく"},
	{ja: "5強", en: "Intensity 5 Upper", zh: "震度5强", zhTW: "震度5強", ko: "진도 5강", vi: "Cường độ 5 mạnh", easyJA: "しんど 5きょう"},
	{ja: "6弱", en: "Intensity 6 Lower", zh: "震度6弱", zhTW: "震度6弱", ko: "진도 6약", vi: "Cường độ 6 yếu", easyJA: "しんど 6じゃく"},
	{ja: "6強", en: "Intensity 6 Upper", zh: "震度6强", zhTW: "震度6強", ko: "진도 6강", vi: "Cường độ 6 mạnh", easyJA: "しんど 6きょう"},
	{ja: "7", en: "Intensity 7", zh: "震度7", zhTW: "震度7", ko: "진도 7", vi: "Cường độ 7", easyJA: "しんど 7"},
	{ja: "不明", en: "Unknown", zh: "不明", zhTW: "不明", ko: "불명", vi: "Không rõ", easyJA: "わかりません"},
}
