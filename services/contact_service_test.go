package services

import (
	"log/slog"
	"testing"

	"chat-xml/domain"
	"chat-xml/errors"
	"chat-xml/mocks"
	"chat-xml/storage"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestContactService_AddContact(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := mocks.NewMockIUserRepository(ctrl)
	contacts := mocks.NewMockIContactRepository(ctrl)
	messages := mocks.NewMockIMessageRepository(ctrl)
	svc := NewContactService(inlineTransactor{}, users, contacts, messages, slog.Default())
	alice := domain.User{ID: "alice", Name: "Alice"}
	bob := domain.User{ID: "bob", Name: "Bob"}

	t.Run("should create the edge and its reverse", func(t *testing.T) {
		req := require.New(t)
		var created []domain.Contact

		users.EXPECT().FindByIDIn(gomock.Any(), "alice").Return(alice, nil).Times(1)
		users.EXPECT().FindByIDIn(gomock.Any(), "bob").Return(bob, nil).Times(1)
		contacts.EXPECT().FindEdgeIn(gomock.Any(), "alice", "bob").Return(domain.Contact{}, errors.ErrContactNotFound).Times(1)
		contacts.EXPECT().FindEdgeIn(gomock.Any(), "bob", "alice").Return(domain.Contact{}, errors.ErrContactNotFound).Times(1)
		contacts.EXPECT().
			CreateIn(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ *storage.Tx, c domain.Contact) error {
				created = append(created, c)
				return nil
			}).
			Times(2)

		contact, err := svc.AddContact(AddContactCommand{ID: "c1", UserID: "alice", ContactUserID: "bob"})

		req.NoError(err)
		req.Equal(domain.Contact{ID: "c1", Name: "Bob", UserID: "alice", ContactUserID: "bob"}, contact)
		req.Len(created, 2)
		req.Equal(contact, created[0])
		req.Equal("Alice", created[1].Name)
		req.Equal("bob", created[1].UserID)
		req.Equal("alice", created[1].ContactUserID)
		req.NotEmpty(created[1].ID)
	})

	t.Run("should refuse a contact with oneself", func(t *testing.T) {
		req := require.New(t)

		_, err := svc.AddContact(AddContactCommand{Name: "Me", UserID: "alice", ContactUserID: "alice"})

		req.ErrorIs(err, errors.ErrSelfContact)
		req.ErrorIs(err, errors.ErrValidation)
	})

	t.Run("should refuse an edge that already exists", func(t *testing.T) {
		req := require.New(t)
		users.EXPECT().FindByIDIn(gomock.Any(), "alice").Return(alice, nil).Times(1)
		users.EXPECT().FindByIDIn(gomock.Any(), "bob").Return(bob, nil).Times(1)
		contacts.EXPECT().FindEdgeIn(gomock.Any(), "alice", "bob").Return(domain.Contact{ID: "c1"}, nil).Times(1)

		_, err := svc.AddContact(AddContactCommand{Name: "Bob", UserID: "alice", ContactUserID: "bob"})

		req.ErrorIs(err, errors.ErrContactAlreadyExists)
	})

	t.Run("should report an unknown target", func(t *testing.T) {
		req := require.New(t)
		users.EXPECT().FindByIDIn(gomock.Any(), "alice").Return(alice, nil).Times(1)
		users.EXPECT().FindByIDIn(gomock.Any(), "zoe").Return(domain.User{}, errors.ErrUserNotFound).Times(1)

		_, err := svc.AddContact(AddContactCommand{Name: "Zoe", UserID: "alice", ContactUserID: "zoe"})

		req.ErrorIs(err, errors.ErrUserNotFound)
		req.Contains(err.Error(), "zoe")
	})
}

func TestContactService_RemoveContact(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := mocks.NewMockIUserRepository(ctrl)
	contacts := mocks.NewMockIContactRepository(ctrl)
	messages := mocks.NewMockIMessageRepository(ctrl)
	svc := NewContactService(inlineTransactor{}, users, contacts, messages, slog.Default())

	t.Run("should delete both edges and the conversation", func(t *testing.T) {
		req := require.New(t)
		contacts.EXPECT().FindBetweenIn(gomock.Any(), "alice", "bob").Return([]domain.Contact{
			{ID: "c1", UserID: "alice", ContactUserID: "bob"},
			{ID: "c2", UserID: "bob", ContactUserID: "alice"},
		}, nil).Times(1)
		contacts.EXPECT().DeleteIn(gomock.Any(), "c1").Return(nil).Times(1)
		contacts.EXPECT().DeleteIn(gomock.Any(), "c2").Return(nil).Times(1)
		messages.EXPECT().DeleteConversationIn(gomock.Any(), "alice", "bob").Return(3, nil).Times(1)

		removed, err := svc.RemoveContact("alice", "bob")

		req.NoError(err)
		req.Equal(3, removed)
	})

	t.Run("should report a pair that is not connected", func(t *testing.T) {
		req := require.New(t)
		contacts.EXPECT().FindBetweenIn(gomock.Any(), "alice", "carol").Return(nil, nil).Times(1)

		_, err := svc.RemoveContact("alice", "carol")

		req.ErrorIs(err, errors.ErrContactNotFound)
	})
}
