package amadeus

// airlineNames maps IATA carrier codes to display names.
var airlineNames = map[string]string{
	"AA": "American Airlines",
	"AF": "Air France",
	"AZ": "ITA Airways",
	"BA": "British Airways",
	"DL": "Delta Air Lines",
	"EK": "Emirates",
	"EY": "Etihad Airways",
	"FR": "Ryanair",
	"IB": "Iberia",
	"JL": "Japan Airlines",
	"KL": "KLM",
	"LH": "Lufthansa",
	"LX": "Swiss International Air Lines",
	"NH": "ANA",
	"OS": "Austrian Airlines",
	"QR": "Qatar Airways",
	"SQ": "Singapore Airlines",
	"TK": "Turkish Airlines",
	"U2": "EasyJet",
	"UA": "United Airlines",
	"VY": "Vueling",
	"W6": "Wizz Air",
}

// AirlineName returns the display name for an IATA carrier code. Unknown
// codes are labeled generically; an empty code means the carrier could not
// be identified.
func AirlineName(code string) string {
	if name, ok := airlineNames[code]; ok {
		return name
	}
	if code != "" {
		return code + " Airlines"
	}
	return ""
}

// airportToCity maps airport codes to the city codes the hotel APIs expect.
var airportToCity = map[string]string{
	"CDG": "PAR", "ORY": "PAR",
	"LHR": "LON", "LGW": "LON", "STN": "LON",
	"JFK": "NYC", "LGA": "NYC", "EWR": "NYC",
	"NRT": "TYO", "HND": "TYO",
	"FCO": "ROM", "CIA": "ROM",
	"MXP": "MIL", "LIN": "MIL",
	"EZE": "BUE",
	"ORD": "CHI",
}

// AirportToCity resolves an airport code to its city code, falling back to
// the input when no mapping exists.
func AirportToCity(airport string) string {
	if city, ok := airportToCity[airport]; ok {
		return city
	}
	return airport
}
