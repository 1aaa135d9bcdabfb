package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"keepposted/config"
	deliverycontext "keepposted/internal/delivery/context"
	"keepposted/internal/domain/entity"
	"keepposted/internal/domain/service"
	"keepposted/internal/usecase"
	"keepposted/internal/usecase/session"

	"go.uber.org/fx"
)

const searchTrackerKey = "search.tracker"

// searchTracker holds one session's suggestion state.
// Generations only grow; a response is applied only when its generation is still the latest.
type searchTracker struct {
	mu          sync.Mutex
	generation  uint64
	resolved    uint64
	query       string
	suggestions []entity.PlaceSuggestion
	changed     chan struct{}
}

func newSearchTracker() *searchTracker {
	return &searchTracker{changed: make(chan struct{})}
}

// next starts a new generation. Must be called with mu held.
func (t *searchTracker) next(query string) uint64 {
	t.generation++
	t.query = query
	t.notify()

	return t.generation
}

// notify wakes every waiter. Must be called with mu held.
func (t *searchTracker) notify() {
	close(t.changed)
	t.changed = make(chan struct{})
}

// apply stores the results of generation gen and reports whether they were current.
func (t *searchTracker) apply(gen uint64, suggestions []entity.PlaceSuggestion) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if gen != t.generation {
		return false
	}
	t.suggestions = suggestions
	t.resolved = gen
	t.notify()

	return true
}

// fail marks gen resolved without touching the current suggestions.
func (t *searchTracker) fail(gen uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if gen != t.generation {
		return
	}
	t.resolved = gen
	t.notify()
}

// done reports whether gen resolved or was superseded. Must be called with mu held.
func (t *searchTracker) done(gen uint64) bool {
	return gen < t.generation || t.resolved >= gen
}

// output copies the current state. Must be called with mu held.
func (t *searchTracker) output() *usecase.SuggestionsOutput {
	suggestions := make([]entity.PlaceSuggestion, len(t.suggestions))
	copy(suggestions, t.suggestions)

	return &usecase.SuggestionsOutput{
		Generation:  t.generation,
		Query:       t.query,
		Pending:     t.resolved < t.generation,
		Suggestions: suggestions,
	}
}

// Close wakes any waiter so it can observe the final state.
func (t *searchTracker) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.notify()
}

// searchService implements the SearchUsecase interface.
type searchService struct {
	places       service.PlaceSearchProvider
	background   *Background
	viewportSpan float64
	logger       *slog.Logger
}

// SearchServiceParams holds dependencies for SearchService, injected by Fx.
type SearchServiceParams struct {
	fx.In

	Places     service.PlaceSearchProvider
	Background *Background
	Config     *config.Config
	Logger     *slog.Logger
}

// NewSearchService is the constructor for searchService.
func NewSearchService(params SearchServiceParams) usecase.SearchUsecase {
	return &searchService{
		places:       params.Places,
		background:   params.Background,
		viewportSpan: params.Config.Maps.ViewportSpan,
		logger:       params.Logger,
	}
}

func (srv *searchService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *searchService) tracker(sess *session.Session) *searchTracker {
	return session.Component(sess, searchTrackerKey, newSearchTracker)
}

// Search issues an autocomplete request for the trimmed text.
// Blank text clears the suggestions and supersedes any request in flight.
func (srv *searchService) Search(ctx context.Context, sess *session.Session, queryText string) uint64 {
	trimmed := strings.TrimSpace(queryText)
	tracker := srv.tracker(sess)

	tracker.mu.Lock()
	gen := tracker.next(trimmed)
	if trimmed == "" {
		tracker.suggestions = nil
		tracker.resolved = gen
		tracker.mu.Unlock()

		return gen
	}
	tracker.mu.Unlock()

	srv.background.Go(ctx, func(ctx context.Context) {
		suggestions, err := srv.places.Autocomplete(ctx, trimmed)
		if err != nil {
			srv.log(ctx).Warn("Autocomplete failed", slog.String("query", trimmed), slog.Any("error", err))
			tracker.fail(gen)

			return
		}

		if !tracker.apply(gen, suggestions) {
			srv.log(ctx).Debug("Dropping stale suggestions", slog.Uint64("generation", gen))
		}
	})

	return gen
}

// Suggestions returns the latest applied suggestions.
func (srv *searchService) Suggestions(_ context.Context, sess *session.Session) *usecase.SuggestionsOutput {
	tracker := srv.tracker(sess)

	tracker.mu.Lock()
	defer tracker.mu.Unlock()

	return tracker.output()
}

// Await blocks until generation resolves or is superseded, or ctx ends.
func (srv *searchService) Await(ctx context.Context, sess *session.Session, generation uint64) *usecase.SuggestionsOutput {
	tracker := srv.tracker(sess)

	for {
		tracker.mu.Lock()
		if tracker.done(generation) || sess.Closed() {
			out := tracker.output()
			tracker.mu.Unlock()

			return out
		}
		changed := tracker.changed
		tracker.mu.Unlock()

		select {
		case <-changed:
		case <-ctx.Done():
			return srv.Suggestions(ctx, sess)
		}
	}
}

// SelectLocation resolves a suggestion to the first matching coordinate.
// Lookup failures and empty results both yield nil with no selection change.
func (srv *searchService) SelectLocation(ctx context.Context, sess *session.Session, suggestion entity.PlaceSuggestion) *usecase.SelectLocationOutput {
	coordinates, err := srv.places.Lookup(ctx, suggestion)
	if err != nil {
		srv.log(ctx).Warn("Place lookup failed", slog.String("title", suggestion.Title), slog.Any("error", err))

		return nil
	}
	if len(coordinates) == 0 {
		srv.log(ctx).Info("No place matches suggestion", slog.String("title", suggestion.Title))

		return nil
	}

	coordinate := coordinates[0]
	sess.SetSelectedCoordinate(coordinate)

	return &usecase.SelectLocationOutput{
		Coordinate:  coordinate,
		Viewport:    entity.NewViewport(coordinate, srv.viewportSpan),
		DisplayText: suggestion.DisplayText(),
	}
}
