package impl

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"

	deliverycontext "keepposted/internal/delivery/context"
	"keepposted/internal/domain/entity"
	domainerrors "keepposted/internal/domain/errors"
	"keepposted/internal/domain/service"
	"keepposted/internal/usecase"
	"keepposted/internal/usecase/session"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	messagePlaceholder   = "Your message will appear here..."
	recipientPlaceholder = "Recipient"
)

// postcardService implements the PostcardUsecase interface.
type postcardService struct {
	contacts   service.ContactsStore
	publisher  service.EventPublisher
	background *Background
	now        func() time.Time
	logger     *slog.Logger
}

// PostcardServiceParams holds dependencies for PostcardService, injected by Fx.
type PostcardServiceParams struct {
	fx.In

	Contacts   service.ContactsStore
	Publisher  service.EventPublisher
	Background *Background
	Logger     *slog.Logger
}

// NewPostcardService is the constructor for postcardService.
func NewPostcardService(params PostcardServiceParams) usecase.PostcardUsecase {
	return &postcardService{
		contacts:   params.Contacts,
		publisher:  params.Publisher,
		background: params.Background,
		now:        time.Now,
		logger:     params.Logger,
	}
}

func (srv *postcardService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Templates returns the static catalogue.
func (srv *postcardService) Templates() []entity.PostcardTemplate {
	out := make([]entity.PostcardTemplate, len(entity.PostcardTemplates))
	copy(out, entity.PostcardTemplates)

	return out
}

// Preview renders the postcard, substituting placeholders for blank fields.
func (srv *postcardService) Preview(_ context.Context, sess *session.Session, input *usecase.PostcardInput) (*entity.Postcard, error) {
	template, ok := entity.FindPostcardTemplate(input.TemplateID)
	if !ok {
		return nil, domainerrors.ErrTemplateNotFound
	}

	message := input.Message
	if strings.TrimSpace(message) == "" {
		message = messagePlaceholder
	}
	toName := input.ToName
	if strings.TrimSpace(toName) == "" {
		toName = recipientPlaceholder
	}

	return &entity.Postcard{
		Template: template,
		Message:  message,
		ToName:   toName,
		FromName: sess.SenderName(),
	}, nil
}

// Send logs the postcard to the session's activity feed and publishes the entry.
// Nothing about the postcard itself is stored.
func (srv *postcardService) Send(ctx context.Context, sess *session.Session, input *usecase.PostcardInput) (*entity.ActivityEntry, error) {
	if _, ok := entity.FindPostcardTemplate(input.TemplateID); !ok {
		return nil, domainerrors.ErrTemplateNotFound
	}
	if strings.TrimSpace(input.ToName) == "" {
		return nil, domainerrors.ErrRecipientRequired
	}
	if strings.TrimSpace(input.Message) == "" {
		return nil, domainerrors.ErrMessageRequired
	}

	entry := sess.AddActivity("Postcard Sent to "+input.ToName, srv.now())
	srv.log(ctx).Info("Postcard sent",
		slog.String("session_id", sess.ID()),
		slog.String("activity_id", entry.ID.String()),
	)

	event := &service.ActivityEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		ActivityID: entry.ID.String(),
		UserID:     sess.UserID(),
		Title:      entry.Title,
		Timestamp:  entry.Timestamp,
	}
	srv.background.Go(ctx, func(ctx context.Context) {
		if err := srv.publisher.PublishActivityEvent(ctx, event); err != nil {
			srv.log(ctx).Warn("Failed to publish activity event", slog.String("activity_id", event.ActivityID), slog.Any("error", err))
		}
	})

	return &entry, nil
}

// Contacts lists contacts sorted by given name. A denied store yields an empty list, not an error.
func (srv *postcardService) Contacts(ctx context.Context, accessToken string) (*usecase.ContactsOutput, error) {
	contacts, err := srv.contacts.ListContacts(ctx, accessToken)
	if err != nil {
		if errors.Is(err, domainerrors.ErrContactsAccessDenied) {
			srv.log(ctx).Info("Contacts access denied")

			return &usecase.ContactsOutput{AccessDenied: true, Contacts: []entity.Contact{}}, nil
		}

		return nil, errors.Wrap(err, "failed to list contacts")
	}

	if contacts == nil {
		contacts = []entity.Contact{}
	}
	sort.SliceStable(contacts, func(i, j int) bool {
		return contacts[i].GivenName < contacts[j].GivenName
	})

	return &usecase.ContactsOutput{Contacts: contacts}, nil
}
