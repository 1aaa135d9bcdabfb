package usecase

import (
	"context"

	"keepposted/internal/domain/entity"
	"keepposted/internal/usecase/session"
)

// SuggestionsOutput is the current suggestion set of a session.
type SuggestionsOutput struct {
	Generation  uint64                   `json:"generation"`
	Query       string                   `json:"query"`
	Pending     bool                     `json:"pending"`
	Suggestions []entity.PlaceSuggestion `json:"suggestions"`
}

// SelectLocationOutput is the coordinate and viewport for a picked suggestion.
type SelectLocationOutput struct {
	Coordinate  entity.Coordinate `json:"coordinate"`
	Viewport    entity.Viewport   `json:"viewport"`
	DisplayText string            `json:"display_text"`
}

// SearchUsecase turns free text into suggestions and suggestions into coordinates.
type SearchUsecase interface {
	// Search supersedes any in-flight query and returns the new generation.
	// Blank text clears the suggestions without calling the provider.
	Search(ctx context.Context, sess *session.Session, queryText string) uint64

	// Suggestions returns the latest applied suggestions.
	Suggestions(ctx context.Context, sess *session.Session) *SuggestionsOutput

	// Await blocks until the given generation resolves or is superseded, or ctx ends.
	Await(ctx context.Context, sess *session.Session, generation uint64) *SuggestionsOutput

	// SelectLocation resolves a suggestion. It returns nil when nothing matches.
	SelectLocation(ctx context.Context, sess *session.Session, suggestion entity.PlaceSuggestion) *SelectLocationOutput
}
