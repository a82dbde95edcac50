package phrase

// Curated location table: the 47 prefectures plus the epicenter region names
// that appear most often in quake reports. Exact-match only; anything outside
// this list goes through the cache/AI tiers.
var locationEntries = []entry{
	// Prefectures
	{ja: "北海道", en: "Hokkaido", zh: "北海道", zhTW: "北海道", ko: "홋카이도", vi: "Hokkaido", easyJA: "ほっかいどう"},
	{ja: "青森県", en: "Aomori Prefecture", zh: "青森县", zhTW: "青森縣", ko: "아오모리현", vi: "Tỉnh Aomori", easyJA: "あおもりけん"},
	{ja: "岩手県", en: "Iwate Prefecture", zh: "岩手县", zhTW: "岩手縣", ko: "이와테현", vi: "Tỉnh Iwate", easyJA: "いわてけん"},
	{ja: "宮城県", en: "Miyagi Prefecture", zh: "宫城县", zhTW: "宮城縣", ko: "미야기현", vi: "Tỉnh Miyagi", easyJA: "みやぎけん"},
	{ja: "秋田県", en: "Akita Prefecture", zh: "秋田县", zhTW: "秋田縣", ko: "아키타현", vi: "Tỉnh Akita", easyJA: "あきたけん"},
	{ja: "山形県", en: "Yamagata Prefecture", zh: "山形县", zhTW: "山形縣", ko: "야마가타현", vi: "Tỉnh Yamagata", easyJA: "やまがたけん"},
	{ja: "福島県", en: "Fukushima Prefecture", zh: "福岛县", zhTW: "福島縣", ko: "후쿠시마현", vi: "Tỉnh Fukushima", easyJA: "ふくしまけん"},
	{ja: "茨城県", en: "Ibaraki Prefecture", zh: "茨城县", zhTW: "茨城縣", ko: "이바라키현", vi: "Tỉnh Ibaraki", easyJA: "いばらきけん"},
	{ja: "栃木県", en: "Tochigi Prefecture", zh: "枥木县", zhTW: "櫪木縣", ko: "도치기현", vi: "Tỉnh Tochigi", easyJA: "とちぎけん"},
	{ja: "群馬県", en: "Gunma Prefecture", zh: "群马县", zhTW: "群馬縣", ko: "군마현", vi: "Tỉnh Gunma", easyJA: "ぐんまけん"},
	{ja: "埼玉県", en: "Saitama Prefecture", zh: "埼玉县", zhTW: "埼玉縣", ko: "사이타마현", vi: "Tỉnh Saitama", easyJA: "さいたまけん"},
	{ja: "千葉県", en: "Chiba Prefecture", zh: "千叶县", zhTW: "千葉縣", ko: "지바현", vi: "Tỉnh Chiba", easyJA: "ちばけん"},
	{ja: "東京都", en: "Tokyo", zh: "东京都", zhTW: "東京都", ko: "도쿄도", vi: "Tokyo", easyJA: "とうきょうと"},
	{ja: "神奈川県", en: "Kanagawa Prefecture", zh: "神奈川县", zhTW: "神奈川縣", ko: "가나가와현", vi: "Tỉnh Kanagawa", easyJA: "かながわけん"},
	{ja: "新潟県", en: "Niigata Prefecture", zh: "新潟县", zhTW: "新潟縣", ko: "니가타현", vi: "Tỉnh Niigata", easyJA: "にいがたけん"},
	{ja: "富山県", en: "Toyama Prefecture", zh: "富山县", zhTW: "富山縣", ko: "도야마현", vi: "Tỉnh Toyama", easyJA: "とやまけん"},
	{ja: "石川県", en: "Ishikawa Prefecture", zh: "石川县", zhTW: "石川縣", ko: "이시카와현", vi: "Tỉnh Ishikawa", easyJA: "いしかわけん"},
	{ja: "福井県", en: "Fukui Prefecture", zh: "福井县", zhTW: "福井縣", ko: "후쿠이현", vi: "Tỉnh Fukui", easyJA: "ふくいけん"},
	{ja: "山梨県", en: "Yamanashi Prefecture", zh: "山梨县", zhTW: "山梨縣", ko: "야마나시현", vi: "Tỉnh Yamanashi", easyJA: "やまなしけん"},
	{ja: "長野県", en: "Nagano Prefecture", zh: "长野县", zhTW: "長野縣", ko: "나가노현", vi: "Tỉnh Nagano", easyJA: "ながのけん"},
	{ja: "岐阜県", en: "Gifu Prefecture", zh: "岐阜县", zhTW: "岐阜縣", ko: "기후현", vi: "Tỉnh Gifu", easyJA: "ぎふけん"},
	{ja: "静岡県", en: "Shizuoka Prefecture", zh: "静冈县", zhTW: "靜岡縣", ko: "시즈오카현", vi: "Tỉnh Shizuoka", easyJA: "しずおかけん"},
	{ja: "愛知県", en: "Aichi Prefecture", zh: "爱知县", zhTW: "愛知縣", ko: "아이치현", vi: "Tỉnh Aichi", easyJA: "あいちけん"},
	{ja: "三重県", en: "Mie Prefecture", zh: "三重县", zhTW: "三重縣", ko: "미에현", vi: "Tỉnh Mie", easyJA: "みえけん"},
	{ja: "滋賀県", en: "Shiga Prefecture", zh: "滋贺县", zhTW: "滋賀縣", ko: "시가현", vi: "Tỉnh Shiga", easyJA: "しがけん"},
	{ja: "京都府", en: "Kyoto Prefecture", zh: "京都府", zhTW: "京都府", ko: "교토부", vi: "Phủ Kyoto", easyJA: "きょうとふ"},
	{ja: "大阪府", en: "Osaka Prefecture", zh: "大阪府", zhTW: "大阪府", ko: "오사카부", vi: "Phủ Osaka", easyJA: "おおさかふ"},
	{ja: "兵庫県", en: "Hyogo Prefecture", zh: "兵库县", zhTW: "兵庫縣", ko: "효고현", vi: "Tỉnh Hyogo", easyJA: "ひょうごけん"},
	{ja: "奈良県", en: "Nara Prefecture", zh: "奈良县", zhTW: "奈良縣", ko: "나라현", vi: "Tỉnh Nara", easyJA: "ならけん"},
	{ja: "和歌山県", en: "Wakayama Prefecture", zh: "和歌山县", zhTW: "和歌山縣", ko: "와카야마현", vi: "Tỉnh Wakayama", easyJA: "わかやまけん"},
	{ja: "鳥取県", en: "Tottori Prefecture", zh: "鸟取县", zhTW: "鳥取縣", ko: "돗토리현", vi: "Tỉnh Tottori", easyJA: "とっとりけん"},
	{ja: "島根県", en: "Shimane Prefecture", zh: "岛根县", zhTW: "島根縣", ko: "시마네현", vi: "Tỉnh Shimane", easyJA: "しまねけん"},
	{ja: "岡山県", en: "Okayama Prefecture", zh: "冈山县", zhTW: "岡山縣", ko: "오카야마현", vi: "Tỉnh Okayama", easyJA: "おかやまけん"},
	{ja: "広島県", en: "Hiroshima Prefecture", zh: "广岛县", zhTW: "廣島縣", ko: "히로시마현", vi: "Tỉnh Hiroshima", easyJA: "ひろしまけん"},
	{ja: "山口県", en: "Yamaguchi Prefecture", zh: "山口县", zhTW: "山口縣", ko: "야마구치현", vi: "Tỉnh Yamaguchi", easyJA: "やまぐちけん"},
	{ja: "徳島県", en: "Tokushima Prefecture", zh: "德岛县", zhTW: "德島縣", ko: "도쿠시마현", vi: "Tỉnh Tokushima", easyJA: "とくしまけん"},
	{ja: "香川県", en: "Kagawa Prefecture", zh: "香川县", zhTW: "香川縣", ko: "가가와현", vi: "Tỉnh Kagawa", easyJA: "かがわけん"},
	{ja: "愛媛県", en: "Ehime Prefecture", zh: "爱媛县", zhTW: "愛媛縣", ko: "에히메현", vi: "Tỉnh Ehime", easyJA: "えひめけん"},
	{ja: "高知県", en: "Kochi Prefecture", zh: "高知县", zhTW: "高知縣", ko: "고치현", vi: "Tỉnh Kochi", easyJA: "こうちけん"},
	{ja: "福岡県", en: "Fukuoka Prefecture", zh: "福冈县", zhTW: "福岡縣", ko: "후쿠오카현", vi: "Tỉnh Fukuoka", easyJA: "ふくおかけん"},
	{ja: "佐賀県", en: "Saga Prefecture", zh: "佐贺县", zhTW: "佐賀縣", ko: "사가현", vi: "Tỉnh Saga", easyJA: "さがけん"},
	{ja: "長崎県", en: "Nagasaki Prefecture", zh: "长崎县", zhTW: "長崎縣", ko: "나가사키현", vi: "Tỉnh Nagasaki", easyJA: "ながさきけん"},
	{ja: "熊本県", en: "Kumamoto Prefecture", zh: "熊本县", zhTW: "熊本縣", ko: "구마모토현", vi: "Tỉnh Kumamoto", easyJA: "くまもとけん"},
	{ja: "大分県", en: "Oita Prefecture", zh: "大分县", zhTW: "大分縣", ko: "오이타현", vi: "Tỉnh Oita", easyJA: "おおいたけん"},
	{ja: "宮崎県", en: "Miyazaki Prefecture", zh: "宫崎县", zhTW: "宮崎縣", ko: "미야자키현", vi: "Tỉnh Miyazaki", easyJA: "みやざきけん"},
	{ja: "鹿児島県", en: "Kagoshima Prefecture", zh: "鹿儿岛县", zhTW: "鹿兒島縣", ko: "가고시마현", vi: "Tỉnh Kagoshima", easyJA: "かごしまけん"},
	{ja: "沖縄県", en: "Okinawa Prefecture", zh: "冲绳县", zhTW: "沖繩縣", ko: "오키나와현", vi: "Tỉnh Okinawa", easyJA: "おきなわけん"},

	// Frequent epicenter region names
	{ja: "石川県能登地方", en: "Noto Region, Ishikawa Prefecture", zh: "石川县能登地区", zhTW: "石川縣能登地區", ko: "이시카와현 노토 지방", vi: "Vùng Noto, tỉnh Ishikawa", easyJA: "いしかわけん のとちほう"},
	{ja: "能登半島沖", en: "Off Noto Peninsula", zh: "能登半岛近海", zhTW: "能登半島近海", ko: "노토반도 앞바다", vi: "Ngoài khơi bán đảo Noto", easyJA: "のとはんとうの うみ"},
	{ja: "宮城県沖", en: "Off Miyagi Prefecture", zh: "宫城县近海", zhTW: "宮城縣近海", ko: "미야기현 앞바다", vi: "Ngoài khơi tỉnh Miyagi", easyJA: "みやぎけんの うみ"},
	{ja: "福島県沖", en: "Off Fukushima Prefecture", zh: "福岛县近海", zhTW: "福島縣近海", ko: "후쿠시마현 앞바다", vi: "Ngoài khơi tỉnh Fukushima", easyJA: "ふくしまけんの うみ"},
	{ja: "茨城県沖", en: "Off Ibaraki Prefecture", zh: "茨城县近海", zhTW: "茨城縣近海", ko: "이바라키현 앞바다", vi: "Ngoài khơi tỉnh Ibaraki", easyJA: "いばらきけんの うみ"},
	{ja: "茨城県南部", en: "Southern Ibaraki Prefecture", zh: "茨城县南部", zhTW: "茨城縣南部", ko: "이바라키현 남부", vi: "Nam tỉnh Ibaraki", easyJA: "いばらきけんの みなみ"},
	{ja: "千葉県東方沖", en: "Off Eastern Chiba Prefecture", zh: "千叶县东方近海", zhTW: "千葉縣東方近海", ko: "지바현 동쪽 앞바다", vi: "Ngoài khơi phía đông tỉnh Chiba", easyJA: "ちばけんの ひがしの うみ"},
	{ja: "千葉県北西部", en: "Northwestern Chiba Prefecture", zh: "千叶县西北部", zhTW: "千葉縣西北部", ko: "지바현 북서부", vi: "Tây bắc tỉnh Chiba", easyJA: "ちばけんの きたにし"},
	{ja: "東京湾", en: "Tokyo Bay", zh: "东京湾", zhTW: "東京灣", ko: "도쿄만", vi: "Vịnh Tokyo", easyJA: "とうきょうわん"},
	{ja: "相模湾", en: "Sagami Bay", zh: "相模湾", zhTW: "相模灣", ko: "사가미만", vi: "Vịnh Sagami", easyJA: "さがみわん"},
	{ja: "伊豆大島近海", en: "Near Izu Oshima Island", zh: "伊豆大岛近海", zhTW: "伊豆大島近海", ko: "이즈오시마 근해", vi: "Gần đảo Izu Oshima", easyJA: "いずおおしまの ちかくの うみ"},
	{ja: "伊豆諸島北部", en: "Northern Izu Islands", zh: "伊豆诸岛北部", zhTW: "伊豆諸島北部", ko: "이즈 제도 북부", vi: "Bắc quần đảo Izu", easyJA: "いずしょとう きたぶ"},
	{ja: "伊豆諸島南部", en: "Southern Izu Islands", zh: "伊豆诸岛南部", zhTW: "伊豆諸島南部", ko: "이즈 제도 남부", vi: "Nam quần đảo Izu", easyJA: "いずしょとう みなみぶ"},
	{ja: "小笠原諸島", en: "Ogasawara Islands", zh: "小笠原诸岛", zhTW: "小笠原諸島", ko: "오가사와라 제도", vi: "Quần đảo Ogasawara", easyJA: "おがさわらしょとう"},
	{ja: "熊本県熊本地方", en: "Kumamoto Region, Kumamoto Prefecture", zh: "熊本县熊本地区", zhTW: "熊本縣熊本地區", ko: "구마모토현 구마모토 지방", vi: "Vùng Kumamoto, tỉnh Kumamoto", easyJA: "くまもとけん くまもとちほう"},
	{ja: "大阪府北部", en: "Northern Osaka Prefecture", zh: "大阪府北部", zhTW: "大阪府北部", ko: "오사카부 북부", vi: "Bắc phủ Osaka", easyJA: "おおさかふの きた"},
	{ja: "北海道胆振地方中東部", en: "Central-Eastern Iburi Region, Hokkaido", zh: "北海道胆振地区中东部", zhTW: "北海道膽振地區中東部", ko: "홋카이도 이부리 지방 중동부", vi: "Trung đông vùng Iburi, Hokkaido", easyJA: "ほっかいどう いぶりちほう"},
	{ja: "青森県東方沖", en: "Off Eastern Aomori Prefecture", zh: "青森县东方近海", zhTW: "青森縣東方近海", ko: "아오모리현 동쪽 앞바다", vi: "Ngoài khơi phía đông tỉnh Aomori", easyJA: "あおもりけんの ひがしの うみ"},
	{ja: "岩手県沖", en: "Off Iwate Prefecture", zh: "岩手县近海", zhTW: "岩手縣近海", ko: "이와테현 앞바다", vi: "Ngoài khơi tỉnh Iwate", easyJA: "いわてけんの うみ"},
	{ja: "三陸沖", en: "Off Sanriku", zh: "三陆近海", zhTW: "三陸近海", ko: "산리쿠 앞바다", vi: "Ngoài khơi Sanriku", easyJA: "さんりくの うみ"},
	{ja: "長野県北部", en: "Northern Nagano Prefecture", zh: "长野县北部", zhTW: "長野縣北部", ko: "나가노현 북부", vi: "Bắc tỉnh Nagano", easyJA: "ながのけんの きた"},
	{ja: "岐阜県飛騨地方", en: "Hida Region, Gifu Prefecture", zh: "岐阜县飞驒地区", zhTW: "岐阜縣飛驒地區", ko: "기후현 히다 지방", vi: "Vùng Hida, tỉnh Gifu", easyJA: "ぎふけん ひだちほう"},
	{ja: "和歌山県北部", en: "Northern Wakayama Prefecture", zh: "和歌山县北部", zhTW: "和歌山縣北部", ko: "와카야마현 북부", vi: "Bắc tỉnh Wakayama", easyJA: "わかやまけんの きた"},
	{ja: "鳥取県中部", en: "Central Tottori Prefecture", zh: "鸟取县中部", zhTW: "鳥取縣中部", ko: "돗토리현 중부", vi: "Trung tỉnh Tottori", easyJA: "とっとりけんの まんなか"},
	{ja: "日向灘", en: "Hyuganada Sea", zh: "日向滩", zhTW: "日向灘", ko: "휴가나다", vi: "Biển Hyuganada", easyJA: "ひゅうがなだ"},
	{ja: "豊後水道", en: "Bungo Channel", zh: "丰后水道", zhTW: "豐後水道", ko: "분고 수도", vi: "Eo biển Bungo", easyJA: "ぶんごすいどう"},
	{ja: "紀伊水道", en: "Kii Channel", zh: "纪伊水道", zhTW: "紀伊水道", ko: "기이 수도", vi: "Eo biển Kii", easyJA: "きいすいどう"},
	{ja: "駿河湾", en: "Suruga Bay", zh: "骏河湾", zhTW: "駿河灣", ko: "스루가만", vi: "Vịnh Suruga", easyJA: "するがわん"},
	{ja: "東京地方", en: "Tokyo Area", zh: "东京地区", zhTW: "東京地區", ko: "도쿄 지역", vi: "Khu vực Tokyo", easyJA: "とうきょう"},
}
