package amadeus

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"wayfare/models"
	"wayfare/utils"
)

// SearchFlights returns normalized flight offers for the given query. Missing
// required fields fail fast with a ValidationError before any network call;
// upstream failures fall back to deterministic mock offers.
func (c *Client) SearchFlights(ctx context.Context, q FlightQuery) ([]models.FlightOffer, error) {
	if q.Origin == "" {
		return nil, models.NewValidationError("origin", "origin location code is required")
	}
	if q.Destination == "" {
		return nil, models.NewValidationError("destination", "destination location code is required")
	}
	if q.DepartureDate == "" {
		return nil, models.NewValidationError("departureDate", "departure date is required")
	}
	if q.Adults <= 0 {
		q.Adults = 1
	}

	offers := utils.WithFallback("amadeus-flights",
		func() ([]models.FlightOffer, error) { return c.searchFlightsLive(ctx, q) },
		func() []models.FlightOffer { return MockFlights(q) },
	)
	return offers, nil
}

func (c *Client) searchFlightsLive(ctx context.Context, q FlightQuery) ([]models.FlightOffer, error) {
	if !c.Configured() {
		return nil, fmt.Errorf("amadeus credentials not configured")
	}

	path := fmt.Sprintf(
		"/v2/shopping/flight-offers?originLocationCode=%s&destinationLocationCode=%s&departureDate=%s&adults=%d&max=10&currencyCode=USD",
		url.QueryEscape(q.Origin),
		url.QueryEscape(q.Destination),
		url.QueryEscape(q.DepartureDate),
		q.Adults,
	)
	if q.ReturnDate != "" {
		path += "&returnDate=" + url.QueryEscape(q.ReturnDate)
	}
	if q.CabinClass != "" {
		path += "&travelClass=" + url.QueryEscape(q.CabinClass)
	}
	if q.NonStop {
		path += "&nonStop=true"
	}

	body, err := c.doRequest(ctx, "GET", path)
	if err != nil {
		return nil, fmt.Errorf("flight search failed: %w", err)
	}
	return parseFlightOffers(body)
}

type amadeusSegment struct {
	Departure struct {
		IataCode string `json:"iataCode"`
		At       string `json:"at"`
	} `json:"departure"`
	Arrival struct {
		IataCode string `json:"iataCode"`
		At       string `json:"at"`
	} `json:"arrival"`
	CarrierCode string `json:"carrierCode"`
	Number      string `json:"number"`
	Duration    string `json:"duration"`
}

type amadeusFlightOffersResponse struct {
	Data []struct {
		ID    string `json:"id"`
		Price struct {
			GrandTotal string `json:"grandTotal"`
			Currency   string `json:"currency"`
		} `json:"price"`
		Itineraries []struct {
			Duration string           `json:"duration"`
			Segments []amadeusSegment `json:"segments"`
		} `json:"itineraries"`
		ValidatingAirlineCodes []string `json:"validatingAirlineCodes"`
	} `json:"data"`
}

func parseFlightOffers(data []byte) ([]models.FlightOffer, error) {
	var resp amadeusFlightOffersResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse flight offers: %w", err)
	}

	offers := make([]models.FlightOffer, 0, len(resp.Data))
	for _, raw := range resp.Data {
		if len(raw.Itineraries) == 0 {
			continue
		}
		price := parsePrice(raw.Price.GrandTotal)
		if price <= 0 {
			continue
		}

		outbound := raw.Itineraries[0]
		airlineCode := ""
		if len(outbound.Segments) > 0 {
			airlineCode = outbound.Segments[0].CarrierCode
		} else if len(raw.ValidatingAirlineCodes) > 0 {
			airlineCode = raw.ValidatingAirlineCodes[0]
		}

		segments := make([]models.FlightSegment, 0, len(outbound.Segments))
		for _, s := range outbound.Segments {
			segments = append(segments, models.FlightSegment{
				DepartureAirport: s.Departure.IataCode,
				DepartureTime:    s.Departure.At,
				ArrivalAirport:   s.Arrival.IataCode,
				ArrivalTime:      s.Arrival.At,
				Carrier:          s.CarrierCode,
				FlightNumber:     s.CarrierCode + s.Number,
				Duration:         s.Duration,
			})
		}

		stops := len(outbound.Segments) - 1
		if stops < 0 {
			stops = 0
		}

		offers = append(offers, models.FlightOffer{
			ID:          raw.ID,
			Price:       price,
			Currency:    raw.Price.Currency,
			Airline:     AirlineName(airlineCode),
			AirlineCode: airlineCode,
			Stops:       stops,
			Duration:    outbound.Duration,
			Segments:    segments,
			ReturnTrip:  len(raw.Itineraries) > 1,
		})
	}
	return offers, nil
}

// parsePrice coerces an upstream price that may arrive as a numeric string.
func parsePrice(s string) float64 {
	var price float64
	fmt.Sscanf(s, "%f", &price)
	return price
}
