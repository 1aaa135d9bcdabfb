package impl

import (
	"context"
	"encoding/json"
	"testing"

	deliverycontext "keepposted/internal/delivery/context"
	"keepposted/internal/domain/entity"
	domainerrors "keepposted/internal/domain/errors"
	"keepposted/internal/domain/service"
	mockSvc "keepposted/internal/mocks/service"
	"keepposted/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestPostcardService(t *testing.T) (usecase.PostcardUsecase, *mockSvc.MockContactsStore, *mockSvc.MockEventPublisher, *Background) {
	contacts := mockSvc.NewMockContactsStore(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	bg := NewBackground()

	svc := NewPostcardService(PostcardServiceParams{
		Contacts:   contacts,
		Publisher:  publisher,
		Background: bg,
		Logger:     newDiscardLogger(),
	})

	return svc, contacts, publisher, bg
}

func TestPostcardService_Templates(t *testing.T) {
	svc, _, _, _ := createTestPostcardService(t)

	templates := svc.Templates()
	require.Len(t, templates, 4)
	assert.Equal(t, "Classic Blue", templates[0].Name)

	templates[0].Name = "changed"
	assert.Equal(t, "Classic Blue", svc.Templates()[0].Name)
}

func TestPostcardService_Preview(t *testing.T) {
	tests := []struct {
		name     string
		fullName string
		input    usecase.PostcardInput
		want     entity.Postcard
	}{
		{
			name:  "placeholders with email sender",
			input: usecase.PostcardInput{},
			want: entity.Postcard{
				Template: entity.PostcardTemplates[0],
				Message:  "Your message will appear here...",
				ToName:   "Recipient",
				FromName: "uid-ada@example.com",
			},
		},
		{
			name:     "filled in",
			fullName: "Ada Lovelace",
			input:    usecase.PostcardInput{TemplateID: 3, Message: "Wish you were here", ToName: "Bob"},
			want: entity.Postcard{
				Template: entity.PostcardTemplates[2],
				Message:  "Wish you were here",
				ToName:   "Bob",
				FromName: "Ada Lovelace",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _, _ := createTestPostcardService(t)
			_, sess := newTestSession(t, "uid-ada")
			sess.SetFullName(tt.fullName)

			got, err := svc.Preview(context.Background(), sess, &tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestPostcardService_Preview_UnknownTemplate(t *testing.T) {
	svc, _, _, _ := createTestPostcardService(t)
	_, sess := newTestSession(t, "uid-ada")

	_, err := svc.Preview(context.Background(), sess, &usecase.PostcardInput{TemplateID: 42})
	assert.ErrorIs(t, err, domainerrors.ErrTemplateNotFound)
}

func TestPostcardService_Send_LogsActivityAndPublishes(t *testing.T) {
	svc, _, publisher, bg := createTestPostcardService(t)
	_, sess := newTestSession(t, "uid-ada")
	ctx := deliverycontext.WithRequestID(context.Background(), "req-1")

	var published *service.ActivityEvent
	publisher.EXPECT().PublishActivityEvent(mock.Anything, mock.AnythingOfType("*service.ActivityEvent")).
		Run(func(_ context.Context, event *service.ActivityEvent) { published = event }).
		Return(nil)

	entry, err := svc.Send(ctx, sess, &usecase.PostcardInput{TemplateID: 2, Message: "Hello!", ToName: "Bob"})
	require.NoError(t, err)
	waitBackground(t, bg)

	assert.Equal(t, "Postcard Sent to Bob", entry.Title)

	activities := sess.Activities()
	require.Len(t, activities, 1)
	assert.Equal(t, entry.ID, activities[0].ID)

	require.NotNil(t, published)
	assert.Equal(t, "req-1", published.RequestID)
	assert.Equal(t, "uid-ada", published.UserID)
	assert.Equal(t, entry.ID.String(), published.ActivityID)
	assert.Equal(t, "Postcard Sent to Bob", published.Title)
}

func TestPostcardService_Send_PublishFailureIsNotReturned(t *testing.T) {
	svc, _, publisher, bg := createTestPostcardService(t)
	_, sess := newTestSession(t, "uid-ada")

	publisher.EXPECT().PublishActivityEvent(mock.Anything, mock.Anything).Return(errors.New("topic missing"))

	_, err := svc.Send(context.Background(), sess, &usecase.PostcardInput{Message: "Hi", ToName: "Carol"})
	require.NoError(t, err)
	waitBackground(t, bg)

	assert.Len(t, sess.Activities(), 1)
}

func TestPostcardService_Send_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input usecase.PostcardInput
		want  error
	}{
		{name: "no recipient", input: usecase.PostcardInput{Message: "Hi"}, want: domainerrors.ErrRecipientRequired},
		{name: "blank recipient", input: usecase.PostcardInput{Message: "Hi", ToName: "  "}, want: domainerrors.ErrRecipientRequired},
		{name: "no message", input: usecase.PostcardInput{ToName: "Bob"}, want: domainerrors.ErrMessageRequired},
		{name: "unknown template", input: usecase.PostcardInput{TemplateID: 9, Message: "Hi", ToName: "Bob"}, want: domainerrors.ErrTemplateNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _, _ := createTestPostcardService(t)
			_, sess := newTestSession(t, "uid-ada")

			entry, err := svc.Send(context.Background(), sess, &tt.input)

			assert.Nil(t, entry)
			assert.ErrorIs(t, err, tt.want)
			assert.Empty(t, sess.Activities())
		})
	}
}

func TestPostcardService_Contacts(t *testing.T) {
	ctx := context.Background()

	t.Run("sorted by given name", func(t *testing.T) {
		svc, contacts, _, _ := createTestPostcardService(t)

		contacts.EXPECT().ListContacts(ctx, "access").Return([]entity.Contact{
			{GivenName: "Zoe", FamilyName: "Adams"},
			{GivenName: "Bob", FamilyName: "Smith"},
			{GivenName: "Alice", FamilyName: "Jones"},
		}, nil)

		out, err := svc.Contacts(ctx, "access")
		require.NoError(t, err)

		assert.False(t, out.AccessDenied)
		require.Len(t, out.Contacts, 3)
		assert.Equal(t, "Alice", out.Contacts[0].GivenName)
		assert.Equal(t, "Bob", out.Contacts[1].GivenName)
		assert.Equal(t, "Zoe", out.Contacts[2].GivenName)
	})

	t.Run("access denied yields empty list", func(t *testing.T) {
		svc, contacts, _, _ := createTestPostcardService(t)

		contacts.EXPECT().ListContacts(ctx, "access").Return(nil, domainerrors.ErrContactsAccessDenied)

		out, err := svc.Contacts(ctx, "access")
		require.NoError(t, err)

		assert.True(t, out.AccessDenied)
		assert.NotNil(t, out.Contacts)
		assert.Empty(t, out.Contacts)
	})

	t.Run("no contacts encodes as an empty list", func(t *testing.T) {
		svc, contacts, _, _ := createTestPostcardService(t)

		contacts.EXPECT().ListContacts(ctx, "access").Return(nil, nil)

		out, err := svc.Contacts(ctx, "access")
		require.NoError(t, err)

		assert.False(t, out.AccessDenied)
		assert.NotNil(t, out.Contacts)

		encoded, err := json.Marshal(out)
		require.NoError(t, err)
		assert.JSONEq(t, `{"access_denied":false,"contacts":[]}`, string(encoded))
	})

	t.Run("other failures are returned", func(t *testing.T) {
		svc, contacts, _, _ := createTestPostcardService(t)

		contacts.EXPECT().ListContacts(ctx, "access").Return(nil, errors.New("boom"))

		out, err := svc.Contacts(ctx, "access")
		assert.Nil(t, out)
		assert.Error(t, err)
	})
}
