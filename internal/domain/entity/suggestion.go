package entity

// PlaceSuggestion is a transient autocomplete result.
type PlaceSuggestion struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	// PlaceID is the provider's opaque handle used to resolve the suggestion.
	PlaceID string `json:"place_id"`
}

// DisplayText is what the search field shows once a suggestion is picked.
func (s PlaceSuggestion) DisplayText() string {
	if s.Subtitle == "" {
		return s.Title
	}

	return s.Title + " " + s.Subtitle
}
