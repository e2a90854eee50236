package amadeus

import (
	"fmt"
	"hash/fnv"
	"math/rand"
	"time"

	"wayfare/models"
)

// mockSeed derives a stable seed from the query parameters so identical
// inputs always produce identical synthetic data.
func mockSeed(parts ...string) int64 {
	h := fnv.New64a()
	for _, p := range parts {
		h.Write([]byte(p))
		h.Write([]byte{0})
	}
	return int64(h.Sum64())
}

// isoDuration renders minutes as an ISO-8601 duration (PT7H30M), matching
// the live API's wire form.
func isoDuration(minutes int) string {
	hours := minutes / 60
	mins := minutes % 60
	switch {
	case hours > 0 && mins > 0:
		return fmt.Sprintf("PT%dH%dM", hours, mins)
	case hours > 0:
		return fmt.Sprintf("PT%dH", hours)
	default:
		return fmt.Sprintf("PT%dM", mins)
	}
}

type mockCarrier struct {
	code     string
	priceMod float64
	stops    int
}

// Five carriers across price tiers; two of them route via a connection.
var mockCarriers = []mockCarrier{
	{"TK", 1.00, 0},
	{"LH", 1.15, 0},
	{"EK", 1.30, 0},
	{"W6", 0.65, 1},
	{"U2", 0.80, 1},
}

var mockConnections = []string{"IST", "FRA", "AMS", "DXB"}

// MockFlights generates five synthetic flight offers for the query. Output
// is fully determined by the query fields.
func MockFlights(q FlightQuery) []models.FlightOffer {
	r := rand.New(rand.NewSource(mockSeed("flights", q.Origin, q.Destination, q.DepartureDate, q.ReturnDate)))

	basePrice := 180 + float64(r.Intn(400))
	baseMinutes := 120 + r.Intn(420)

	depDate, err := time.Parse("2006-01-02", q.DepartureDate)
	if err != nil {
		depDate = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	}

	offers := make([]models.FlightOffer, 0, len(mockCarriers))
	for i, carrier := range mockCarriers {
		price := basePrice * carrier.priceMod
		price = float64(int(price/5) * 5)

		minutes := baseMinutes
		if carrier.stops > 0 {
			minutes += 90
		}

		dep := time.Date(depDate.Year(), depDate.Month(), depDate.Day(), 6+i*3, 0, 0, 0, time.UTC)
		arr := dep.Add(time.Duration(minutes) * time.Minute)

		var segments []models.FlightSegment
		if carrier.stops == 0 {
			segments = []models.FlightSegment{{
				DepartureAirport: q.Origin,
				DepartureTime:    dep.Format(time.RFC3339),
				ArrivalAirport:   q.Destination,
				ArrivalTime:      arr.Format(time.RFC3339),
				Carrier:          carrier.code,
				FlightNumber:     fmt.Sprintf("%s%d", carrier.code, 100+i*37),
				Duration:         isoDuration(minutes),
			}}
		} else {
			hub := mockConnections[i%len(mockConnections)]
			firstLeg := minutes / 2
			layover := 75
			midArr := dep.Add(time.Duration(firstLeg) * time.Minute)
			midDep := midArr.Add(time.Duration(layover) * time.Minute)
			segments = []models.FlightSegment{
				{
					DepartureAirport: q.Origin,
					DepartureTime:    dep.Format(time.RFC3339),
					ArrivalAirport:   hub,
					ArrivalTime:      midArr.Format(time.RFC3339),
					Carrier:          carrier.code,
					FlightNumber:     fmt.Sprintf("%s%d", carrier.code, 100+i*37),
					Duration:         isoDuration(firstLeg),
				},
				{
					DepartureAirport: hub,
					DepartureTime:    midDep.Format(time.RFC3339),
					ArrivalAirport:   q.Destination,
					ArrivalTime:      arr.Add(time.Duration(layover) * time.Minute).Format(time.RFC3339),
					Carrier:          carrier.code,
					FlightNumber:     fmt.Sprintf("%s%d", carrier.code, 200+i*41),
					Duration:         isoDuration(minutes - firstLeg),
				},
			}
			minutes += layover
		}

		offers = append(offers, models.FlightOffer{
			ID:          fmt.Sprintf("mock-%s-%s-%d", q.Origin, q.Destination, i+1),
			Price:       price,
			Currency:    "USD",
			Airline:     AirlineName(carrier.code),
			AirlineCode: carrier.code,
			Stops:       carrier.stops,
			Duration:    isoDuration(minutes),
			Segments:    segments,
			ReturnTrip:  q.ReturnDate != "",
		})
	}
	return offers
}

var mockHotelTiers = []struct {
	name     string
	area     string
	priceMod float64
	rating   float64
}{
	{"Grand Plaza Hotel", "City Center", 1.60, 4.7},
	{"Harborview Suites", "Waterfront", 1.25, 4.5},
	{"The Boutique Residence", "Arts District", 1.00, 4.4},
	{"Central Station Inn", "Old Town", 0.70, 4.1},
	{"Budget Stay Express", "Near Airport", 0.45, 3.8},
}

// MockHotels generates five synthetic hotel offers, nightly priced, fully
// determined by the query fields.
func MockHotels(q HotelQuery) []models.HotelOffer {
	r := rand.New(rand.NewSource(mockSeed("hotels", q.CityCode, q.CheckInDate, q.CheckOutDate)))

	baseNightly := 80 + float64(r.Intn(120))
	hotels := make([]models.HotelOffer, 0, len(mockHotelTiers))
	for i, tier := range mockHotelTiers {
		nightly := baseNightly * tier.priceMod
		nightly = float64(int(nightly/5) * 5)

		hotels = append(hotels, models.HotelOffer{
			ID:           fmt.Sprintf("mock-%s-%d", q.CityCode, i+1),
			Name:         tier.name,
			Address:      fmt.Sprintf("%s, %s", tier.area, q.CityCode),
			Location:     q.CityCode,
			NightlyPrice: nightly,
			Currency:     "USD",
			Rating:       tier.rating,
			Amenities:    []string{"wifi", "breakfast"},
		})
	}
	return hotels
}
