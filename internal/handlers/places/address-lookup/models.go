// internal/handlers/places/address-lookup/models.go
package addresslookup

import "therapy-paws/internal/models"

// Free-text queries shorter than this return no suggestions.
const MinQueryLength = 3

type AutocompleteOutput struct {
	Suggestions []models.AddressSuggestion `json:"suggestions"`
}

type DetailsOutput struct {
	Address *models.StructuredAddress `json:"address"`
}
