package geo

import (
	"strings"

	"wayfare/utils"

	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

// cityCodes maps common city names to their 3-letter location codes.
// Lookups are case-insensitive.
var cityCodes = map[string]string{
	"amsterdam":      "AMS",
	"athens":         "ATH",
	"bangkok":        "BKK",
	"barcelona":      "BCN",
	"berlin":         "BER",
	"bordeaux":       "BOD",
	"boston":         "BOS",
	"brussels":       "BRU",
	"budapest":       "BUD",
	"buenos aires":   "EZE",
	"cairo":          "CAI",
	"cape town":      "CPT",
	"chicago":        "ORD",
	"copenhagen":     "CPH",
	"dubai":          "DXB",
	"dublin":         "DUB",
	"frankfurt":      "FRA",
	"hong kong":      "HKG",
	"istanbul":       "IST",
	"lisbon":         "LIS",
	"london":         "LON",
	"los angeles":    "LAX",
	"madrid":         "MAD",
	"marrakech":      "RAK",
	"melbourne":      "MEL",
	"mexico city":    "MEX",
	"miami":          "MIA",
	"milan":          "MIL",
	"montreal":       "YUL",
	"munich":         "MUC",
	"new york":       "NYC",
	"nice":           "NCE",
	"osaka":          "OSA",
	"paris":          "PAR",
	"prague":         "PRG",
	"rio de janeiro": "RIO",
	"rome":           "ROM",
	"san francisco":  "SFO",
	"seattle":        "SEA",
	"seoul":          "SEL",
	"singapore":      "SIN",
	"sydney":         "SYD",
	"tokyo":          "TYO",
	"toronto":        "YTO",
	"vancouver":      "YVR",
	"venice":         "VCE",
	"vienna":         "VIE",
	"zurich":         "ZRH",
}

// fallbackCodes caches naive codes derived for cities missing from the static
// table, so repeated lookups of the same unseen name stay consistent within
// the process.
var fallbackCodes = gocache.New(gocache.NoExpiration, gocache.NoExpiration)

// ResolveLocationCode resolves a free-text city name to a 3-letter location
// code. Unknown names fall back to the first three letters of the normalized
// name, upper-cased. It never fails; an empty input yields an empty string.
func ResolveLocationCode(name string) string {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if normalized == "" {
		return ""
	}

	if code, ok := cityCodes[normalized]; ok {
		return code
	}
	if cached, ok := fallbackCodes.Get(normalized); ok {
		return cached.(string)
	}

	compact := strings.ReplaceAll(normalized, " ", "")
	if len(compact) > 3 {
		compact = compact[:3]
	}
	code := strings.ToUpper(compact)

	utils.GetLogger().Warn("Unknown city, using naive location code",
		zap.String("city", name),
		zap.String("code", code),
	)
	fallbackCodes.Set(normalized, code, gocache.NoExpiration)
	return code
}
