package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"keepposted/internal/delivery/api/middleware"
	"keepposted/internal/delivery/api/response"
	"keepposted/internal/domain/entity"
	domainerrors "keepposted/internal/domain/errors"
	"keepposted/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SearchHandlerParams holds dependencies for SearchHandler, injected by Fx.
type SearchHandlerParams struct {
	fx.In

	SearchUC usecase.SearchUsecase
	Logger   *slog.Logger
}

// SearchHandler serves location search.
type SearchHandler struct {
	searchUC usecase.SearchUsecase
	logger   *slog.Logger
}

// NewSearchHandler is the constructor for SearchHandler.
func NewSearchHandler(params SearchHandlerParams) *SearchHandler {
	return &SearchHandler{
		searchUC: params.SearchUC,
		logger:   params.Logger,
	}
}

// SearchRequest is the body of a search keystroke.
type SearchRequest struct {
	Query string `json:"query"`
	// Wait holds the response until this query's suggestions resolve or are superseded.
	Wait bool `json:"wait"`
}

// Search starts a query. Without wait it returns the generation immediately.
func (h *SearchHandler) Search(c echo.Context) error {
	sess, ok := middleware.GetSession(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthorized)
	}

	var req SearchRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid search input")
	}

	ctx := c.Request().Context()
	generation := h.searchUC.Search(ctx, sess, req.Query)

	// A blank query resolves immediately to an empty set.
	query := strings.TrimSpace(req.Query)
	if query == "" {
		return response.Success(c, http.StatusOK, h.searchUC.Suggestions(ctx, sess))
	}
	if !req.Wait {
		return response.Success(c, http.StatusAccepted, &usecase.SuggestionsOutput{
			Generation: generation,
			Query:      query,
			Pending:    true,
		})
	}

	return response.Success(c, http.StatusOK, h.searchUC.Await(ctx, sess, generation))
}

// Suggestions returns the current suggestions, or waits for ?generation= to resolve.
func (h *SearchHandler) Suggestions(c echo.Context) error {
	sess, ok := middleware.GetSession(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthorized)
	}

	ctx := c.Request().Context()
	raw := c.QueryParam("generation")
	if raw == "" {
		return response.Success(c, http.StatusOK, h.searchUC.Suggestions(ctx, sess))
	}

	generation, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_GENERATION", "generation must be a non-negative integer")
	}

	return response.Success(c, http.StatusOK, h.searchUC.Await(ctx, sess, generation))
}

// SelectLocation resolves a picked suggestion. No match returns null data.
func (h *SearchHandler) SelectLocation(c echo.Context) error {
	sess, ok := middleware.GetSession(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthorized)
	}

	var suggestion entity.PlaceSuggestion
	if err := c.Bind(&suggestion); err != nil {
		return response.BindingError(c, "Invalid suggestion")
	}

	return response.Success(c, http.StatusOK, h.searchUC.SelectLocation(c.Request().Context(), sess, suggestion))
}
