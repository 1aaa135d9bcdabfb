package identity

import (
	"strings"

	domainerrors "keepposted/internal/domain/errors"

	"firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"google.golang.org/api/googleapi"
)

// toolkitMessages maps Identity Toolkit error codes to the provider's user-facing text.
var toolkitMessages = map[string]*domainerrors.BaseError{
	"EMAIL_EXISTS":                domainerrors.ErrUserAlreadyExists.WithMessage("The email address is already in use by another account."),
	"EMAIL_NOT_FOUND":             domainerrors.ErrInvalidCredentials.WithMessage("There is no user record corresponding to this identifier. The user may have been deleted."),
	"INVALID_PASSWORD":            domainerrors.ErrInvalidCredentials.WithMessage("The password is invalid or the user does not have a password."),
	"INVALID_LOGIN_CREDENTIALS":   domainerrors.ErrInvalidCredentials.WithMessage("The supplied auth credential is incorrect, malformed or has expired."),
	"INVALID_EMAIL":               domainerrors.ErrIdentityFailed.WithMessage("The email address is badly formatted."),
	"USER_DISABLED":               domainerrors.ErrIdentityFailed.WithMessage("The user account has been disabled by an administrator."),
	"TOO_MANY_ATTEMPTS_TRY_LATER": domainerrors.ErrIdentityFailed.WithMessage("We have blocked all requests from this device due to unusual activity. Try again later."),
	"INVALID_IDP_RESPONSE":        domainerrors.ErrOAuthTokenInvalid.WithMessage("The supplied auth credential is malformed or has expired."),
	"WEAK_PASSWORD":               domainerrors.ErrIdentityFailed.WithMessage("The password must be 6 characters long or more."),
}

// mapToolkitError converts an Identity Toolkit failure into an identity error carrying the provider's text.
func mapToolkitError(err error) error {
	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) {
		return domainerrors.ErrIdentityUnavailable.WithDetails(err.Error())
	}

	code := toolkitCode(apiErr.Message)
	if mapped, ok := toolkitMessages[code]; ok {
		return mapped
	}

	if apiErr.Code >= 500 {
		return domainerrors.ErrIdentityUnavailable.WithDetails(apiErr.Message)
	}

	return domainerrors.ErrIdentityFailed.WithMessage(apiErr.Message)
}

// toolkitCode extracts "WEAK_PASSWORD" from "WEAK_PASSWORD : Password should be at least 6 characters".
func toolkitCode(message string) string {
	code, _, _ := strings.Cut(message, ":")

	return strings.TrimSpace(code)
}

// mapAdminError converts an admin SDK failure into an identity error.
func mapAdminError(err error) error {
	switch {
	case auth.IsEmailAlreadyExists(err):
		return toolkitMessages["EMAIL_EXISTS"]
	case auth.IsUserNotFound(err):
		return domainerrors.ErrIdentityFailed.WithMessage("There is no user record corresponding to this identifier.")
	default:
		return domainerrors.ErrIdentityFailed.WithMessage(err.Error())
	}
}
