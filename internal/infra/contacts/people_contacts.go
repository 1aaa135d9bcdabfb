// Package contacts reads the user's contacts from the Google People API.
package contacts

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"keepposted/config"
	"keepposted/internal/domain/entity"
	domainerrors "keepposted/internal/domain/errors"
	"keepposted/internal/domain/service"
	"keepposted/internal/infra/metrics"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/oauth2"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	people "google.golang.org/api/people/v1"
)

const (
	ownerResource = "people/me"
	personFields  = "names,phoneNumbers"
)

type serviceFactory func(ctx context.Context, accessToken string) (*people.Service, error)

type peopleContacts struct {
	newService serviceFactory
	pageSize   int64
	metrics    *metrics.ProviderMetrics
	logger     *slog.Logger
}

// Params holds dependencies for the contacts store, injected by Fx.
type Params struct {
	fx.In

	Config  *config.Config
	Metrics *metrics.ProviderMetrics
	Logger  *slog.Logger
}

// NewPeopleContacts creates a contacts store that reads connections with the caller's delegated token.
func NewPeopleContacts(params Params) service.ContactsStore {
	return &peopleContacts{
		newService: func(ctx context.Context, accessToken string) (*people.Service, error) {
			ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})

			return people.NewService(ctx, option.WithTokenSource(ts))
		},
		pageSize: params.Config.Contacts.PageSize,
		metrics:  params.Metrics,
		logger:   params.Logger,
	}
}

// ListContacts pages through every connection of the token owner.
func (s *peopleContacts) ListContacts(ctx context.Context, accessToken string) (_ []entity.Contact, err error) {
	start := time.Now()
	defer func() { s.metrics.Observe("contacts.list", start, err) }()

	if accessToken == "" {
		return nil, domainerrors.ErrContactsAccessDenied
	}

	svc, err := s.newService(ctx, accessToken)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create people service")
	}

	contacts := []entity.Contact{}
	err = svc.People.Connections.List(ownerResource).
		PersonFields(personFields).
		PageSize(s.pageSize).
		Pages(ctx, func(resp *people.ListConnectionsResponse) error {
			for _, person := range resp.Connections {
				if contact, ok := toContact(person); ok {
					contacts = append(contacts, contact)
				}
			}

			return nil
		})
	if err != nil {
		return nil, mapPeopleError(err)
	}

	s.logger.Debug("Contacts listed", slog.Int("count", len(contacts)))

	return contacts, nil
}

// toContact drops connections without any name.
func toContact(person *people.Person) (entity.Contact, bool) {
	if person == nil || len(person.Names) == 0 {
		return entity.Contact{}, false
	}

	name := person.Names[0]
	contact := entity.Contact{
		GivenName:  name.GivenName,
		FamilyName: name.FamilyName,
	}
	if contact.GivenName == "" && contact.FamilyName == "" {
		contact.GivenName = name.DisplayName
	}
	if contact.DisplayName() == "" {
		return entity.Contact{}, false
	}

	for _, phone := range person.PhoneNumbers {
		if phone == nil || phone.Value == "" {
			continue
		}
		contact.PhoneNumbers = append(contact.PhoneNumbers, phone.Value)
	}

	return contact, true
}

func mapPeopleError(err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusUnauthorized, http.StatusForbidden:
			return domainerrors.ErrContactsAccessDenied
		}
	}

	return errors.Wrap(err, "failed to list contacts")
}

// Module provides the contacts store.
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewPeopleContacts),
)
