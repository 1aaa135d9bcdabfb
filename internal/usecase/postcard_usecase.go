package usecase

import (
	"context"

	"keepposted/internal/domain/entity"
	"keepposted/internal/usecase/session"
)

// PostcardInput is the composer state.
type PostcardInput struct {
	TemplateID int    `json:"template_id"`
	Message    string `json:"message"`
	ToName     string `json:"to_name"`
}

// ContactsOutput is the contact picker state.
type ContactsOutput struct {
	AccessDenied bool             `json:"access_denied"`
	Contacts     []entity.Contact `json:"contacts"`
}

// PostcardUsecase backs the postcard composer.
type PostcardUsecase interface {
	// Templates returns the static catalogue, default first.
	Templates() []entity.PostcardTemplate

	// Preview renders the postcard with placeholders for missing fields.
	Preview(ctx context.Context, sess *session.Session, input *PostcardInput) (*entity.Postcard, error)

	// Send records the postcard as an activity entry. Postcards are not stored.
	Send(ctx context.Context, sess *session.Session, input *PostcardInput) (*entity.ActivityEntry, error)

	// Contacts lists the user's contacts sorted by given name.
	Contacts(ctx context.Context, accessToken string) (*ContactsOutput, error)
}
