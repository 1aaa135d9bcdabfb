package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"keepposted/internal/delivery/api/middleware"
	"keepposted/internal/delivery/api/response"
	deliverycontext "keepposted/internal/delivery/context"
	"keepposted/internal/domain/entity"
	domainerrors "keepposted/internal/domain/errors"
	"keepposted/internal/usecase"
	"keepposted/internal/usecase/session"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const placesEvent = "places"

// SavedPlaceHandlerParams holds dependencies for SavedPlaceHandler, injected by Fx.
type SavedPlaceHandlerParams struct {
	fx.In

	PlaceUC usecase.SavedPlaceUsecase
	Logger  *slog.Logger
}

// SavedPlaceHandler serves the saved-places map screen.
type SavedPlaceHandler struct {
	placeUC usecase.SavedPlaceUsecase
	logger  *slog.Logger
}

// NewSavedPlaceHandler is the constructor for SavedPlaceHandler.
func NewSavedPlaceHandler(params SavedPlaceHandlerParams) *SavedPlaceHandler {
	return &SavedPlaceHandler{
		placeUC: params.PlaceUC,
		logger:  params.Logger,
	}
}

// FocusResponse is the close-up region around a saved place.
type FocusResponse struct {
	Viewport  entity.Viewport   `json:"viewport"`
	Southwest entity.Coordinate `json:"southwest"`
	Northeast entity.Coordinate `json:"northeast"`
}

// session binds the live list to the signed-in user before any read.
func (h *SavedPlaceHandler) session(c echo.Context) (*session.Session, bool) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		return nil, false
	}
	h.placeUC.Initialize(c.Request().Context(), sess, sess.UserID())

	return sess, true
}

// ListPlaces returns the latest list, newest first.
func (h *SavedPlaceHandler) ListPlaces(c echo.Context) error {
	sess, ok := h.session(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthorized)
	}

	return response.Success(c, http.StatusOK, h.placeUC.Places(c.Request().Context(), sess))
}

// StreamPlaces pushes every new list as a server-sent event until the client disconnects.
func (h *SavedPlaceHandler) StreamPlaces(c echo.Context) error {
	sess, ok := h.session(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthorized)
	}

	ctx := c.Request().Context()
	updates, cancel := h.placeUC.Subscribe(ctx, sess)
	defer cancel()

	w := c.Response()
	w.Header().Set(echo.HeaderContentType, "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	w.Flush()

	for {
		select {
		case <-ctx.Done():
			return nil
		case places, open := <-updates:
			if !open {
				return nil
			}
			if err := writeEvent(w, placesEvent, places); err != nil {
				deliverycontext.GetLoggerOrDefault(ctx, h.logger).Debug("Places stream ended", slog.Any("error", err))

				return nil
			}
		}
	}
}

func writeEvent(w *echo.Response, event string, data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return errors.Wrap(err, "marshal event")
	}
	if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, payload); err != nil {
		return errors.Wrap(err, "write event")
	}
	w.Flush()

	return nil
}

// CreatePlace adds a place. The write completes in the background.
func (h *SavedPlaceHandler) CreatePlace(c echo.Context) error {
	sess, ok := h.session(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthorized)
	}

	var input usecase.CreatePlaceInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid place input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.placeUC.Create(c.Request().Context(), sess, &input); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusAccepted)
}

// PinPlace drops a named pin at the visible map centre.
func (h *SavedPlaceHandler) PinPlace(c echo.Context) error {
	sess, ok := h.session(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthorized)
	}

	var input usecase.PinPlaceInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid pin input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.placeUC.PinAtCenter(c.Request().Context(), sess, &input); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusAccepted)
}

// FocusPlace returns a close-up viewport around a saved place.
func (h *SavedPlaceHandler) FocusPlace(c echo.Context) error {
	sess, ok := h.session(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthorized)
	}

	viewport, err := h.placeUC.Focus(c.Request().Context(), sess, c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	bound := viewport.Bound()

	return response.Success(c, http.StatusOK, FocusResponse{
		Viewport:  *viewport,
		Southwest: entity.CoordinateFromPoint(bound.Min),
		Northeast: entity.CoordinateFromPoint(bound.Max),
	})
}
