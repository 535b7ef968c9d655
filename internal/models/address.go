// internal/models/address.go
package models

// StructuredAddress is the normalized address shape produced by the
// autocomplete flow and stored alongside free-text locations.
type StructuredAddress struct {
	StreetLine1 string   `json:"street_line1"`
	StreetLine2 string   `json:"street_line2,omitempty"`
	City        string   `json:"city"`
	State       string   `json:"state"`
	PostalCode  string   `json:"postal_code"`
	Country     string   `json:"country"`
	Lat         *float64 `json:"lat,omitempty"`
	Lng         *float64 `json:"lng,omitempty"`
	PlaceID     string   `json:"place_id,omitempty"`
}

// AddressSuggestion is one autocomplete candidate, ordered by provider
// relevance.
type AddressSuggestion struct {
	PlaceID     string `json:"placeId"`
	Description string `json:"description"`
}
