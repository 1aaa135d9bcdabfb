package handler

import (
	"log/slog"
	"net/http"

	"keepposted/internal/delivery/api/middleware"
	"keepposted/internal/delivery/api/response"
	domainerrors "keepposted/internal/domain/errors"
	"keepposted/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HeaderContactsToken carries the user's delegated contacts access token.
const HeaderContactsToken = "X-Contacts-Token"

// PostcardHandlerParams holds dependencies for PostcardHandler, injected by Fx.
type PostcardHandlerParams struct {
	fx.In

	PostcardUC usecase.PostcardUsecase
	Logger     *slog.Logger
}

// PostcardHandler serves the postcard composer.
type PostcardHandler struct {
	postcardUC usecase.PostcardUsecase
	logger     *slog.Logger
}

// NewPostcardHandler is the constructor for PostcardHandler.
func NewPostcardHandler(params PostcardHandlerParams) *PostcardHandler {
	return &PostcardHandler{
		postcardUC: params.PostcardUC,
		logger:     params.Logger,
	}
}

// Templates lists the postcard templates, default first.
func (h *PostcardHandler) Templates(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.postcardUC.Templates())
}

// Preview renders the composer state.
func (h *PostcardHandler) Preview(c echo.Context) error {
	sess, ok := middleware.GetSession(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthorized)
	}

	var input usecase.PostcardInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid postcard input")
	}

	postcard, err := h.postcardUC.Preview(c.Request().Context(), sess, &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, postcard)
}

// Send records a sent postcard in the activity log.
func (h *PostcardHandler) Send(c echo.Context) error {
	sess, ok := middleware.GetSession(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthorized)
	}

	var input usecase.PostcardInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid postcard input")
	}

	entry, err := h.postcardUC.Send(c.Request().Context(), sess, &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, entry)
}

// Contacts lists the user's contacts using the delegated token header.
func (h *PostcardHandler) Contacts(c echo.Context) error {
	output, err := h.postcardUC.Contacts(c.Request().Context(), c.Request().Header.Get(HeaderContactsToken))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, output)
}
