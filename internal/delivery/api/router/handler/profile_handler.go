package handler

import (
	"log/slog"
	"net/http"

	"keepposted/internal/delivery/api/middleware"
	"keepposted/internal/delivery/api/response"
	domainerrors "keepposted/internal/domain/errors"
	"keepposted/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	Logger    *slog.Logger
}

// ProfileHandler serves the profile, home location and activity log.
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler.
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		profileUC: params.ProfileUC,
		logger:    params.Logger,
	}
}

// GetProfile returns the session's profile view.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	sess, ok := middleware.GetSession(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthorized)
	}

	return response.Success(c, http.StatusOK, h.profileUC.GetProfile(c.Request().Context(), sess))
}

// SaveLocation stores a named home location.
func (h *ProfileHandler) SaveLocation(c echo.Context) error {
	sess, ok := middleware.GetSession(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthorized)
	}

	var input usecase.SaveLocationInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid location input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.profileUC.SaveLocation(c.Request().Context(), sess, &input))
}

// ConfirmLocation saves the selected coordinate, or the supplied map centre, as home.
func (h *ProfileHandler) ConfirmLocation(c echo.Context) error {
	sess, ok := middleware.GetSession(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthorized)
	}

	var input usecase.ConfirmLocationInput
	if c.Request().ContentLength != 0 {
		if err := c.Bind(&input); err != nil {
			return response.BindingError(c, "Invalid confirm input")
		}
		if err := c.Validate(&input); err != nil {
			return errors.WithStack(err)
		}
	}

	output, err := h.profileUC.ConfirmHomeLocation(c.Request().Context(), sess, &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, output)
}

// ActivityLog lists the session's activity entries newest first.
func (h *ProfileHandler) ActivityLog(c echo.Context) error {
	sess, ok := middleware.GetSession(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthorized)
	}

	return response.Success(c, http.StatusOK, h.profileUC.ActivityLog(c.Request().Context(), sess))
}
