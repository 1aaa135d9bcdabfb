package service

import (
	"context"

	"keepposted/internal/domain/entity"
)

// ContactsStore enumerates the contacts the user has granted access to.
type ContactsStore interface {
	// ListContacts returns every contact readable with the delegated access token.
	// Returns errors.ErrContactsAccessDenied when the token does not grant access.
	ListContacts(ctx context.Context, accessToken string) ([]entity.Contact, error)
}
