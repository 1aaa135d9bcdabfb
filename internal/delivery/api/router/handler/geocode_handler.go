package handler

import (
	"log/slog"
	"net/http"

	"keepposted/internal/delivery/api/middleware"
	"keepposted/internal/delivery/api/response"
	"keepposted/internal/domain/entity"
	domainerrors "keepposted/internal/domain/errors"
	"keepposted/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// GeocodeHandlerParams holds dependencies for GeocodeHandler, injected by Fx.
type GeocodeHandlerParams struct {
	fx.In

	GeocodeUC usecase.GeocodeUsecase
	Logger    *slog.Logger
}

// GeocodeHandler serves coordinate labels.
type GeocodeHandler struct {
	geocodeUC usecase.GeocodeUsecase
	logger    *slog.Logger
}

// NewGeocodeHandler is the constructor for GeocodeHandler.
func NewGeocodeHandler(params GeocodeHandlerParams) *GeocodeHandler {
	return &GeocodeHandler{
		geocodeUC: params.GeocodeUC,
		logger:    params.Logger,
	}
}

// ReverseGeocodeRequest carries the coordinate to label.
type ReverseGeocodeRequest struct {
	Coordinate entity.Coordinate `json:"coordinate"`
}

// ReverseGeocodeResponse is the label of a coordinate.
type ReverseGeocodeResponse struct {
	Label string `json:"label"`
}

// ReverseGeocode labels a coordinate as "{city}, {state}" or "Current Location".
func (h *GeocodeHandler) ReverseGeocode(c echo.Context) error {
	sess, ok := middleware.GetSession(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthorized)
	}

	var req ReverseGeocodeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid coordinate")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	label, err := h.geocodeUC.ReverseGeocode(c.Request().Context(), sess, req.Coordinate)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ReverseGeocodeResponse{Label: label})
}
