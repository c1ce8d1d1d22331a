package countries

import "github.com/sig-0/policyrates/storage/types"

// The tracked countries / currency areas, keyed by the Korean display
// names the downstream dashboard renders
var (
	US          types.Country = "미국"
	SouthKorea  types.Country = "한국"
	Japan       types.Country = "일본"
	Eurozone    types.Country = "유로존"
	UK          types.Country = "영국"
	China       types.Country = "중국"
	Canada      types.Country = "캐나다"
	Australia   types.Country = "호주"
	NewZealand  types.Country = "뉴질랜드"
	Switzerland types.Country = "스위스"
	Sweden      types.Country = "스웨덴"
	Norway      types.Country = "노르웨이"
	India       types.Country = "인도"
	Brazil      types.Country = "브라질"
	Mexico      types.Country = "멕시코"
	Turkey      types.Country = "터키"
	SouthAfrica types.Country = "남아프리카"
	Russia      types.Country = "러시아"
	Singapore   types.Country = "싱가포르"
	HongKong    types.Country = "홍콩"
)

// DefaultFlag is the glyph used for countries missing a flag mapping
const DefaultFlag = "🌍"

// DefaultList returns the fixed country list, in publication order
func DefaultList() []types.Country {
	return []types.Country{
		US, SouthKorea, Japan, Eurozone, UK,
		China, Canada, Australia, NewZealand, Switzerland,
		Sweden, Norway, India, Brazil, Mexico,
		Turkey, SouthAfrica, Russia, Singapore, HongKong,
	}
}

// Flags returns the country -> flag glyph display mapping
func Flags() map[types.Country]string {
	return map[types.Country]string{
		US:          "🇺🇸",
		SouthKorea:  "🇰🇷",
		Japan:       "🇯🇵",
		Eurozone:    "🇪🇺",
		UK:          "🇬🇧",
		China:       "🇨🇳",
		Canada:      "🇨🇦",
		Australia:   "🇦🇺",
		NewZealand:  "🇳🇿",
		Switzerland: "🇨🇭",
		Sweden:      "🇸🇪",
		Norway:      "🇳🇴",
		India:       "🇮🇳",
		Brazil:      "🇧🇷",
		Mexico:      "🇲🇽",
		Turkey:      "🇹🇷",
		SouthAfrica: "🇿🇦",
		Russia:      "🇷🇺",
		Singapore:   "🇸🇬",
		HongKong:    "🇭🇰",
	}
}

// Currencies returns the country -> ISO 4217 currency code mapping
func Currencies() map[types.Country]string {
	return map[types.Country]string{
		US:          "USD",
		SouthKorea:  "KRW",
		Japan:       "JPY",
		Eurozone:    "EUR",
		UK:          "GBP",
		China:       "CNY",
		Canada:      "CAD",
		Australia:   "AUD",
		NewZealand:  "NZD",
		Switzerland: "CHF",
		Sweden:      "SEK",
		Norway:      "NOK",
		India:       "INR",
		Brazil:      "BRL",
		Mexico:      "MXN",
		Turkey:      "TRY",
		SouthAfrica: "ZAR",
		Russia:      "RUB",
		Singapore:   "SGD",
		HongKong:    "HKD",
	}
}
