// internal/handlers/places/address-lookup/service.go
package addresslookup

import (
	"context"
	"strings"

	"therapy-paws/internal/common/errors"
	"therapy-paws/internal/common/logger"
	"therapy-paws/internal/common/places"
	"therapy-paws/internal/models"
)

type Service struct {
	logger   logger.Logger
	resolver places.Resolver
}

func NewService(resolver places.Resolver, log logger.Logger) *Service {
	return &Service{
		logger:   log,
		resolver: resolver,
	}
}

// Autocomplete is advisory: short queries and provider failures both come
// back as an empty suggestion list so the caller's form keeps working.
func (s *Service) Autocomplete(ctx context.Context, query, country string) *AutocompleteOutput {
	query = strings.TrimSpace(query)
	if len(query) < MinQueryLength {
		return &AutocompleteOutput{Suggestions: []models.AddressSuggestion{}}
	}

	suggestions, err := s.resolver.Autocomplete(ctx, query, country)
	if err != nil {
		s.logger.Warn("address autocomplete degraded", map[string]interface{}{
			"error": err.Error(),
		})
		return &AutocompleteOutput{Suggestions: []models.AddressSuggestion{}}
	}
	if suggestions == nil {
		suggestions = []models.AddressSuggestion{}
	}

	return &AutocompleteOutput{Suggestions: suggestions}
}

// Details resolves a selected suggestion into a structured address. Unlike
// autocomplete this is a direct lookup, so provider failures surface.
func (s *Service) Details(ctx context.Context, placeID string) (*DetailsOutput, error) {
	if placeID == "" {
		return nil, errors.NewValidationFailedError("placeId is required")
	}

	address, err := s.resolver.Details(ctx, placeID)
	if err != nil {
		return nil, errors.NewAddressLookupFailedError(err)
	}

	return &DetailsOutput{Address: address}, nil
}
