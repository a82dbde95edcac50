package jma

// Area is one prefecture-level forecast area in the warning feed.
type Area struct {
	Code string
	Name string // Japanese prefecture name
}

// Areas lists the 47 prefecture forecast areas, north to south. Hokkaido is
// represented by its Ishikari region code, which is how the upstream feed
// partitions it. Kagoshima's code carries the 460100 suffix for the same
// reason.
var Areas = []Area{
	{"016000", "北海道"},
	{"020000", "青森県"},
	{"030000", "岩手県"},
	{"040000", "宮城県"},
	{"050000", "秋田県"},
	{"060000", "山形県"},
	{"070000", "福島県"},
	{"080000", "茨城県"},
	{"090000", "栃木県"},
	{"100000", "群馬県"},
	{"110000", "埼玉県"},
	{"120000", "千葉県"},
	{"130000", "東京都"},
	{"140000", "神奈川県"},
	{"150000", "新潟県"},
	{"160000", "富山県"},
	{"170000", "石川県"},
	{"180000", "福井県"},
	{"190000", "山梨県"},
	{"200000", "長野県"},
	{"210000", "岐阜県"},
	{"220000", "静岡県"},
	{"230000", "愛知県"},
	{"240000", "三重県"},
	{"250000", "滋賀県"},
	{"260000", "京都府"},
	{"270000", "大阪府"},
	{"280000", "兵庫県"},
	{"290000", "奈良県"},
	{"300000", "和歌山県"},
	{"310000", "鳥取県"},
	{"320000", "島根県"},
	{"330000", "岡山県"},
	{"340000", "広島県"},
	{"350000", "山口県"},
	{"360000", "徳島県"},
	{"370000", "香川県"},
	{"380000", "愛媛県"},
	{"390000", "高知県"},
	{"400000", "福岡県"},
	{"410000", "佐賀県"},
	{"420000", "長崎県"},
	{"430000", "熊本県"},
	{"440000", "大分県"},
	{"450000", "宮崎県"},
	{"460100", "鹿児島県"},
	{"470000", "沖縄県"},
}

var areaByCode = func() map[string]Area {
	m := make(map[string]Area, len(Areas))
	for _, a := range Areas {
		m[a.Code] = a
	}
	return m
}()

// AreaByCode looks up a forecast area by its code.
func AreaByCode(code string) (Area, bool) {
	a, ok := areaByCode[code]
	return a, ok
}
