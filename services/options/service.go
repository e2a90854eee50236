// File: services/options/service.go
package options

import (
	"context"
	"fmt"
	"sync"

	"wayfare/models"
	"wayfare/services/amadeus"
	"wayfare/services/geo"
	"wayfare/services/images"
	"wayfare/utils"

	"go.uber.org/zap"
)

// GenerateOptions fetches full flight, hotel and activity results
// concurrently and maps them into one unified option list: flights first,
// then hotels, then activities, each in adapter order with a type-prefixed
// unique id. Validation is the orchestrator's job; partial input degrades
// gracefully here (a missing return date simply means a one-way search).
func (s *DefaultService) GenerateOptions(ctx context.Context, prefs models.TravelPreferences) ([]models.TravelOption, error) {
	originCode := prefs.OriginCode
	if originCode == "" {
		originCode = geo.ResolveLocationCode(prefs.Origin)
	}
	destCode := prefs.DestinationCode
	if destCode == "" {
		destCode = geo.ResolveLocationCode(prefs.Destination)
	}

	var (
		wg         sync.WaitGroup
		flights    []models.FlightOffer
		hotels     []models.HotelOffer
		activities []models.ActivitySuggestion
	)
	wg.Add(3)
	go func() {
		defer wg.Done()
		offers, err := s.Flights.SearchFlights(ctx, amadeus.FlightQuery{
			Origin:        originCode,
			Destination:   destCode,
			DepartureDate: prefs.Dates.Departure,
			ReturnDate:    prefs.Dates.Return,
			Adults:        prefs.Travelers,
			CabinClass:    prefs.Flights.Class,
			NonStop:       prefs.Flights.Direct != nil && *prefs.Flights.Direct,
		})
		if err != nil {
			utils.GetLogger().Warn("Option generation: flight search skipped", zap.Error(err))
			return
		}
		flights = offers
	}()
	go func() {
		defer wg.Done()
		offers, err := s.Hotels.SearchHotels(ctx, amadeus.HotelQuery{
			CityCode:     destCode,
			CheckInDate:  prefs.Dates.Departure,
			CheckOutDate: prefs.Dates.Return,
			Adults:       prefs.Travelers,
		})
		if err != nil {
			utils.GetLogger().Warn("Option generation: hotel search skipped", zap.Error(err))
			return
		}
		hotels = offers
	}()
	go func() {
		defer wg.Done()
		activities = s.AI.SuggestActivities(ctx, prefs)
	}()
	wg.Wait()

	imageSrcs := s.resolveActivityImages(ctx, prefs.Destination, activities)

	result := make([]models.TravelOption, 0, len(flights)+len(hotels)+len(activities))
	for i, offer := range flights {
		result = append(result, mapFlight(offer, prefs, i))
	}
	for i, offer := range hotels {
		result = append(result, mapHotel(offer, prefs.Destination, i))
	}
	for i, activity := range activities {
		result = append(result, mapActivity(activity, imageSrcs[i], i))
	}
	return result, nil
}

// resolveActivityImages issues one image search per activity and joins the
// results. A failed lookup falls back to the suggestion's own image URL, or
// a deterministic placeholder; it never aborts the activity.
func (s *DefaultService) resolveActivityImages(ctx context.Context, destination string, activities []models.ActivitySuggestion) []string {
	srcs := make([]string, len(activities))

	var wg sync.WaitGroup
	for i, activity := range activities {
		wg.Add(1)
		go func(i int, activity models.ActivitySuggestion) {
			defer wg.Done()

			query := fmt.Sprintf("%s %s", activity.Name, destination)
			results, err := s.Images.SearchImages(ctx, query, 1)
			if err == nil && len(results) > 0 && results[0].URLs["regular"] != "" {
				srcs[i] = results[0].URLs["regular"]
				return
			}
			if err != nil {
				utils.GetLogger().Warn("Image search failed, using placeholder",
					zap.String("activity", activity.Name), zap.Error(err))
			}
			if activity.ImageURL != "" {
				srcs[i] = activity.ImageURL
				return
			}
			srcs[i] = images.PlaceholderURL(destination, activity.Name)
		}(i, activity)
	}
	wg.Wait()
	return srcs
}

func mapFlight(offer models.FlightOffer, prefs models.TravelPreferences, idx int) models.TravelOption {
	stops := stopsLabel(offer.Stops)
	duration := humanizeISODuration(offer.Duration)
	tripType := tripTypeLabel(prefs.Dates.Return)

	departureTime := ""
	if len(offer.Segments) > 0 {
		departureTime = offer.Segments[0].DepartureTime
	}

	origin := prefs.OriginCode
	if origin == "" {
		origin = prefs.Origin
	}
	destination := prefs.DestinationCode
	if destination == "" {
		destination = prefs.Destination
	}

	return models.TravelOption{
		ID:          fmt.Sprintf("flight-%d", idx+1),
		Title:       fmt.Sprintf("%s · %s", offer.Airline, stops),
		Description: fmt.Sprintf("%s flight from %s to %s, %s", tripType, origin, destination, duration),
		ImageSrc:    images.PlaceholderURL(prefs.Destination, "flight "+offer.Airline),
		Type:        models.OptionFlight,
		Price:       offer.Price,
		Time:        departureTime,
		Duration:    duration,
		Location:    fmt.Sprintf("%s → %s", origin, destination),
		Details: models.FlightOptionDetails{
			Segments: offer.Segments,
			Stops:    stops,
			TripType: tripType,
			Cabin:    prefs.Flights.Class,
		},
	}
}

func mapHotel(offer models.HotelOffer, destination string, idx int) models.TravelOption {
	return models.TravelOption{
		ID:          fmt.Sprintf("hotel-%d", idx+1),
		Title:       offer.Name,
		Description: fmt.Sprintf("$%.0f per night · %s", offer.NightlyPrice, offer.Location),
		ImageSrc:    images.PlaceholderURL(destination, offer.Name),
		Type:        models.OptionHotel,
		Price:       offer.NightlyPrice,
		Rating:      offer.Rating,
		Location:    offer.Location,
		Details: models.HotelOptionDetails{
			Address:   offer.Address,
			Amenities: offer.Amenities,
		},
	}
}

func mapActivity(activity models.ActivitySuggestion, imageSrc string, idx int) models.TravelOption {
	return models.TravelOption{
		ID:          fmt.Sprintf("activity-%d", idx+1),
		Title:       activity.Name,
		Description: activity.Description,
		ImageSrc:    imageSrc,
		Type:        models.OptionActivity,
		Price:       activity.Price,
		Rating:      activity.Rating,
		Details: models.ActivityOptionDetails{
			Brief:    activity.Brief,
			Category: activity.Category,
		},
	}
}
