// Package places resolves free-text addresses through the Google Places
// API. The resolver is advisory: provider failures degrade to empty
// results and never block a form submission.
package places

import (
	"context"
	"fmt"
	"time"

	"googlemaps.github.io/maps"

	"therapy-paws/internal/common/config"
	"therapy-paws/internal/models"
)

// Resolver provides address suggestions and structured address details.
type Resolver interface {
	Autocomplete(ctx context.Context, query, country string) ([]models.AddressSuggestion, error)
	Details(ctx context.Context, placeID string) (*models.StructuredAddress, error)
}

type googleResolver struct {
	client      *maps.Client
	countryBias string
	timeout     time.Duration
}

func NewGoogleResolver(cfg config.PlacesConfig) (Resolver, error) {
	client, err := maps.NewClient(maps.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create places client: %w", err)
	}

	return &googleResolver{
		client:      client,
		countryBias: cfg.CountryBias,
		timeout:     time.Duration(cfg.Timeout) * time.Millisecond,
	}, nil
}

func (r *googleResolver) Autocomplete(ctx context.Context, query, country string) ([]models.AddressSuggestion, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	if country == "" {
		country = r.countryBias
	}

	req := &maps.PlaceAutocompleteRequest{
		Input: query,
		Types: maps.AutocompletePlaceTypeAddress,
	}
	if country != "" {
		req.Components = map[maps.Component][]string{
			maps.ComponentCountry: {country},
		}
	}

	resp, err := r.client.PlaceAutocomplete(ctx, req)
	if err != nil {
		return nil, err
	}

	suggestions := make([]models.AddressSuggestion, 0, len(resp.Predictions))
	for _, p := range resp.Predictions {
		suggestions = append(suggestions, models.AddressSuggestion{
			PlaceID:     p.PlaceID,
			Description: p.Description,
		})
	}
	return suggestions, nil
}

func (r *googleResolver) Details(ctx context.Context, placeID string) (*models.StructuredAddress, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	resp, err := r.client.PlaceDetails(ctx, &maps.PlaceDetailsRequest{
		PlaceID: placeID,
		Fields: []maps.PlaceDetailsFieldMask{
			maps.PlaceDetailsFieldMaskAddressComponent,
			maps.PlaceDetailsFieldMaskGeometryLocation,
			maps.PlaceDetailsFieldMaskPlaceID,
		},
	})
	if err != nil {
		return nil, err
	}

	addr := &models.StructuredAddress{PlaceID: resp.PlaceID}

	var streetNumber, route string
	for _, comp := range resp.AddressComponents {
		for _, t := range comp.Types {
			switch t {
			case "street_number":
				streetNumber = comp.LongName
			case "route":
				route = comp.LongName
			case "subpremise":
				addr.StreetLine2 = comp.LongName
			case "locality", "postal_town":
				addr.City = comp.LongName
			case "administrative_area_level_1":
				addr.State = comp.ShortName
			case "postal_code":
				addr.PostalCode = comp.LongName
			case "country":
				addr.Country = comp.ShortName
			}
		}
	}

	if streetNumber != "" && route != "" {
		addr.StreetLine1 = streetNumber + " " + route
	} else if route != "" {
		addr.StreetLine1 = route
	}

	lat := resp.Geometry.Location.Lat
	lng := resp.Geometry.Location.Lng
	if lat != 0 || lng != 0 {
		addr.Lat = &lat
		addr.Lng = &lng
	}

	return addr, nil
}
