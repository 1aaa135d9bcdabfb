package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"keepposted/internal/delivery/api/middleware"
	"keepposted/internal/delivery/api/response"
	"keepposted/internal/domain/entity"
	domainerrors "keepposted/internal/domain/errors"
	"keepposted/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DeviceLocationHandlerParams holds dependencies for DeviceLocationHandler, injected by Fx.
type DeviceLocationHandlerParams struct {
	fx.In

	DeviceLocationUC usecase.DeviceLocationUsecase
	Logger           *slog.Logger
}

// DeviceLocationHandler serves the permission and current-location flow.
type DeviceLocationHandler struct {
	deviceLocationUC usecase.DeviceLocationUsecase
	logger           *slog.Logger
}

// NewDeviceLocationHandler is the constructor for DeviceLocationHandler.
func NewDeviceLocationHandler(params DeviceLocationHandlerParams) *DeviceLocationHandler {
	return &DeviceLocationHandler{
		deviceLocationUC: params.DeviceLocationUC,
		logger:           params.Logger,
	}
}

// PermissionRequest reports the platform authorization status.
type PermissionRequest struct {
	Status entity.LocationAuthorization `json:"status" validate:"required"`
}

// RequestLocation asks for authorization or a fix. The body may carry radio signals.
func (h *DeviceLocationHandler) RequestLocation(c echo.Context) error {
	sess, ok := middleware.GetSession(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthorized)
	}

	var signals *entity.LocationSignals
	if c.Request().ContentLength != 0 {
		signals = &entity.LocationSignals{}
		if err := c.Bind(signals); err != nil {
			return response.BindingError(c, "Invalid location signals")
		}
	}

	output := h.deviceLocationUC.RequestCurrentLocation(c.Request().Context(), sess, signals)

	return response.Success(c, http.StatusAccepted, output)
}

// UpdatePermission records a new authorization status.
func (h *DeviceLocationHandler) UpdatePermission(c echo.Context) error {
	sess, ok := middleware.GetSession(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthorized)
	}

	var req PermissionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid permission input")
	}
	if !req.Status.IsValid() {
		return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails("unknown status "+string(req.Status)))
	}

	output := h.deviceLocationUC.AuthorizationChanged(c.Request().Context(), sess, req.Status)

	return response.Success(c, http.StatusOK, output)
}

// CurrentLocation returns the coordinate slot; ?wait=true waits for a pending fix.
func (h *DeviceLocationHandler) CurrentLocation(c echo.Context) error {
	sess, ok := middleware.GetSession(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthorized)
	}

	wait, _ := strconv.ParseBool(c.QueryParam("wait"))

	return response.Success(c, http.StatusOK, h.deviceLocationUC.CurrentLocation(c.Request().Context(), sess, wait))
}
