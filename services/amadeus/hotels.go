package amadeus

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"wayfare/models"
	"wayfare/utils"
)

// SearchHotels returns normalized hotel offers, priced per night. Missing
// required fields fail fast with a ValidationError; upstream failures fall
// back to deterministic mock offers.
func (c *Client) SearchHotels(ctx context.Context, q HotelQuery) ([]models.HotelOffer, error) {
	if q.CityCode == "" {
		return nil, models.NewValidationError("cityCode", "destination city code is required")
	}
	if q.CheckInDate == "" {
		return nil, models.NewValidationError("checkInDate", "check-in date is required")
	}
	if q.CheckOutDate == "" {
		q.CheckOutDate = defaultCheckOut(q.CheckInDate)
	}
	if q.Adults <= 0 {
		q.Adults = 1
	}
	if q.Rooms <= 0 {
		q.Rooms = 1
	}

	offers := utils.WithFallback("amadeus-hotels",
		func() ([]models.HotelOffer, error) { return c.searchHotelsLive(ctx, q) },
		func() []models.HotelOffer { return MockHotels(q) },
	)
	return offers, nil
}

// defaultCheckOut assumes a three-night stay when no check-out was given.
func defaultCheckOut(checkIn string) string {
	t, err := time.Parse("2006-01-02", checkIn)
	if err != nil {
		return checkIn
	}
	return t.AddDate(0, 0, 3).Format("2006-01-02")
}

// stayNights computes the stay length used to convert a stay total to a
// nightly rate. Unparseable dates count as one night.
func stayNights(checkIn, checkOut string) int {
	in, err1 := time.Parse("2006-01-02", checkIn)
	out, err2 := time.Parse("2006-01-02", checkOut)
	if err1 != nil || err2 != nil {
		return 1
	}
	nights := int(out.Sub(in).Hours() / 24)
	if nights < 1 {
		return 1
	}
	return nights
}

func (c *Client) searchHotelsLive(ctx context.Context, q HotelQuery) ([]models.HotelOffer, error) {
	if !c.Configured() {
		return nil, fmt.Errorf("amadeus credentials not configured")
	}

	hotelIDs, err := c.getHotelIDsByCity(ctx, q.CityCode)
	if err != nil {
		return nil, fmt.Errorf("hotel list failed: %w", err)
	}
	if len(hotelIDs) == 0 {
		return nil, fmt.Errorf("no hotels found for city %s", q.CityCode)
	}
	// Cap the ID list to stay under the offers endpoint's limits.
	if len(hotelIDs) > 20 {
		hotelIDs = hotelIDs[:20]
	}
	return c.getHotelOffers(ctx, hotelIDs, q)
}

type amadeusHotelListResponse struct {
	Data []struct {
		HotelID string `json:"hotelId"`
		Name    string `json:"name"`
	} `json:"data"`
}

func (c *Client) getHotelIDsByCity(ctx context.Context, cityCode string) ([]string, error) {
	// The hotel APIs key on city codes, not airport codes.
	path := fmt.Sprintf("/v1/reference-data/locations/hotels/by-city?cityCode=%s&radius=5&radiusUnit=KM&hotelSource=ALL",
		url.QueryEscape(AirportToCity(cityCode)))

	body, err := c.doRequest(ctx, "GET", path)
	if err != nil {
		return nil, err
	}

	var resp amadeusHotelListResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse hotel list: %w", err)
	}

	ids := make([]string, 0, len(resp.Data))
	for _, h := range resp.Data {
		ids = append(ids, h.HotelID)
	}
	return ids, nil
}

type amadeusHotelOffersResponse struct {
	Data []struct {
		Hotel struct {
			HotelID  string `json:"hotelId"`
			Name     string `json:"name"`
			CityCode string `json:"cityCode"`
			Address  struct {
				Lines    []string `json:"lines"`
				CityName string   `json:"cityName"`
			} `json:"address"`
			Rating string `json:"rating"`
		} `json:"hotel"`
		Available bool `json:"available"`
		Offers    []struct {
			Price struct {
				Total    string `json:"total"`
				Currency string `json:"currency"`
			} `json:"price"`
		} `json:"offers"`
	} `json:"data"`
}

func (c *Client) getHotelOffers(ctx context.Context, hotelIDs []string, q HotelQuery) ([]models.HotelOffer, error) {
	path := fmt.Sprintf("/v3/shopping/hotel-offers?hotelIds=%s&checkInDate=%s&checkOutDate=%s&adults=%d&roomQuantity=%d&currency=USD&bestRateOnly=true",
		url.QueryEscape(strings.Join(hotelIDs, ",")),
		url.QueryEscape(q.CheckInDate),
		url.QueryEscape(q.CheckOutDate),
		q.Adults,
		q.Rooms,
	)

	body, err := c.doRequest(ctx, "GET", path)
	if err != nil {
		return nil, fmt.Errorf("hotel offers failed: %w", err)
	}

	var resp amadeusHotelOffersResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse hotel offers: %w", err)
	}

	nights := stayNights(q.CheckInDate, q.CheckOutDate)
	hotels := make([]models.HotelOffer, 0, len(resp.Data))
	for _, item := range resp.Data {
		if !item.Available || len(item.Offers) == 0 {
			continue
		}
		total := parsePrice(item.Offers[0].Price.Total)
		if total <= 0 {
			continue
		}

		location := item.Hotel.Address.CityName
		if location == "" {
			location = item.Hotel.CityCode
		}

		hotels = append(hotels, models.HotelOffer{
			ID:           item.Hotel.HotelID,
			Name:         item.Hotel.Name,
			Address:      strings.Join(item.Hotel.Address.Lines, ", "),
			Location:     location,
			NightlyPrice: roundPrice(total / float64(nights)),
			Currency:     item.Offers[0].Price.Currency,
			Rating:       parseRating(item.Hotel.Rating),
		})
	}
	return hotels, nil
}

// parseRating coerces the upstream star rating, defaulting to the documented
// neutral 4.0 when absent or out of range.
func parseRating(s string) float64 {
	if s == "" {
		return 4.0
	}
	var r float64
	fmt.Sscanf(s, "%f", &r)
	if r <= 0 {
		return 4.0
	}
	if r > 5 {
		r = 5
	}
	return r
}

func roundPrice(p float64) float64 {
	return float64(int(p*100+0.5)) / 100
}
