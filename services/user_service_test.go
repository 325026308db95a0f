package services

import (
	"log/slog"
	"testing"

	"chat-xml/domain"
	"chat-xml/errors"
	"chat-xml/mocks"
	"chat-xml/storage"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// inlineTransactor hands a nil transaction to the callback; mocked repositories
// never look at it.
type inlineTransactor struct{}

func (inlineTransactor) Update(fn func(tx *storage.Tx) error) error { return fn(nil) }
func (inlineTransactor) View(fn func(v *storage.View) error) error  { return fn(nil) }

func TestUserService_RegisterUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockIUserRepository(ctrl)
	svc := NewUserService(inlineTransactor{}, mockRepo, slog.Default())

	t.Run("should register successfully when input is valid", func(t *testing.T) {
		req := require.New(t)
		expected := domain.User{ID: "alice", Name: "Alice", Email: "alice@example.com", Status: domain.UserActive}

		mockRepo.EXPECT().ExistsIn(gomock.Any(), "alice").Return(false).Times(1)
		mockRepo.EXPECT().
			FindByEmailIn(gomock.Any(), "alice@example.com").
			Return(domain.User{}, errors.ErrUserNotFound).
			Times(1)
		mockRepo.EXPECT().CreateIn(gomock.Any(), expected).Return(nil).Times(1)

		user, err := svc.RegisterUser(RegisterUserCommand{ID: "alice", Name: " Alice ", Email: "alice@example.com"})

		req.NoError(err)
		req.Equal(expected, user)
	})

	t.Run("should store an empty settings map as no settings", func(t *testing.T) {
		req := require.New(t)
		expected := domain.User{ID: "dora", Name: "Dora", Email: "dora@example.com", Status: domain.UserActive}

		mockRepo.EXPECT().ExistsIn(gomock.Any(), "dora").Return(false).Times(1)
		mockRepo.EXPECT().
			FindByEmailIn(gomock.Any(), "dora@example.com").
			Return(domain.User{}, errors.ErrUserNotFound).
			Times(1)
		mockRepo.EXPECT().CreateIn(gomock.Any(), expected).Return(nil).Times(1)

		user, err := svc.RegisterUser(RegisterUserCommand{ID: "dora", Name: "Dora", Email: "dora@example.com",
			Settings: map[string]string{}})

		req.NoError(err)
		req.Nil(user.Settings)
	})

	t.Run("should fail when fields break the rules", func(t *testing.T) {
		req := require.New(t)

		// Repository should NEVER be called
		mockRepo.EXPECT().CreateIn(gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.RegisterUser(RegisterUserCommand{ID: "bob", Name: "B", Email: "not-an-email"})
		req.ErrorIs(err, errors.ErrInvalidUser)
		req.ErrorIs(err, errors.ErrValidation)
		req.Contains(err.Error(), "name fails min=2")
		req.Contains(err.Error(), "email fails email")

		_, err = svc.RegisterUser(RegisterUserCommand{ID: "bob", Name: "Bob", Email: "bob@example.com", Status: "sleeping"})
		req.ErrorIs(err, errors.ErrInvalidUser)
	})

	t.Run("should fail when the id is taken", func(t *testing.T) {
		req := require.New(t)
		mockRepo.EXPECT().ExistsIn(gomock.Any(), "alice").Return(true).Times(1)

		_, err := svc.RegisterUser(RegisterUserCommand{ID: "alice", Name: "Alice", Email: "alice2@example.com"})

		req.ErrorIs(err, errors.ErrUserAlreadyExists)
	})

	t.Run("should fail when the email is registered to someone else", func(t *testing.T) {
		req := require.New(t)
		mockRepo.EXPECT().ExistsIn(gomock.Any(), "bob").Return(false).Times(1)
		mockRepo.EXPECT().
			FindByEmailIn(gomock.Any(), "alice@example.com").
			Return(domain.User{ID: "alice"}, nil).
			Times(1)

		_, err := svc.RegisterUser(RegisterUserCommand{ID: "bob", Name: "Bob", Email: "alice@example.com"})

		req.ErrorIs(err, errors.ErrEmailAlreadyExists)
		req.ErrorIs(err, errors.ErrConflict)
	})
}

func TestUserService_UpdateUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockIUserRepository(ctrl)
	svc := NewUserService(inlineTransactor{}, mockRepo, slog.Default())
	stored := domain.User{ID: "alice", Name: "Alice", Email: "alice@example.com", Status: domain.UserActive,
		Settings: map[string]string{"theme": "dark"}}

	t.Run("should only touch the supplied fields", func(t *testing.T) {
		req := require.New(t)
		expected := stored
		expected.Name = "Alicia"

		mockRepo.EXPECT().FindByIDIn(gomock.Any(), "alice").Return(stored, nil).Times(1)
		mockRepo.EXPECT().UpdateIn(gomock.Any(), expected).Return(nil).Times(1)

		user, err := svc.UpdateUser("alice", UpdateUserCommand{Name: lo.ToPtr("Alicia")})

		req.NoError(err)
		req.Equal(expected, user)
	})

	t.Run("should accept keeping its own email", func(t *testing.T) {
		req := require.New(t)
		mockRepo.EXPECT().FindByIDIn(gomock.Any(), "alice").Return(stored, nil).Times(1)
		mockRepo.EXPECT().FindByEmailIn(gomock.Any(), "alice@example.com").Return(stored, nil).Times(1)
		mockRepo.EXPECT().UpdateIn(gomock.Any(), stored).Return(nil).Times(1)

		_, err := svc.UpdateUser("alice", UpdateUserCommand{Email: lo.ToPtr("alice@example.com")})

		req.NoError(err)
	})

	t.Run("should refuse an email owned by another user", func(t *testing.T) {
		req := require.New(t)
		mockRepo.EXPECT().FindByIDIn(gomock.Any(), "alice").Return(stored, nil).Times(1)
		mockRepo.EXPECT().FindByEmailIn(gomock.Any(), "bob@example.com").Return(domain.User{ID: "bob"}, nil).Times(1)
		mockRepo.EXPECT().UpdateIn(gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.UpdateUser("alice", UpdateUserCommand{Email: lo.ToPtr("bob@example.com")})

		req.ErrorIs(err, errors.ErrEmailAlreadyExists)
	})

	t.Run("should refuse an unknown status", func(t *testing.T) {
		req := require.New(t)
		mockRepo.EXPECT().FindByIDIn(gomock.Any(), "alice").Return(stored, nil).Times(1)

		_, err := svc.SetStatus("alice", "sleeping")

		req.ErrorIs(err, errors.ErrInvalidUser)
	})

	t.Run("should report a missing user", func(t *testing.T) {
		req := require.New(t)
		mockRepo.EXPECT().FindByIDIn(gomock.Any(), "ghost").Return(domain.User{}, errors.ErrUserNotFound).Times(1)

		_, err := svc.UpdateUser("ghost", UpdateUserCommand{Name: lo.ToPtr("Ghost")})

		req.ErrorIs(err, errors.ErrNotFound)
	})
}

func TestUserService_UpdateSettings(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockIUserRepository(ctrl)
	svc := NewUserService(inlineTransactor{}, mockRepo, slog.Default())
	stored := domain.User{ID: "alice", Name: "Alice", Email: "alice@example.com", Status: domain.UserActive,
		Settings: map[string]string{"theme": "dark", "lang": "fr"}}

	t.Run("should merge and drop emptied keys", func(t *testing.T) {
		req := require.New(t)
		expected := stored
		expected.Settings = map[string]string{"theme": "light", "sound": "on"}

		mockRepo.EXPECT().FindByIDIn(gomock.Any(), "alice").Return(stored, nil).Times(1)
		mockRepo.EXPECT().UpdateIn(gomock.Any(), expected).Return(nil).Times(1)

		user, err := svc.UpdateSettings("alice", map[string]string{"theme": "light", "sound": "on", "lang": ""})

		req.NoError(err)
		req.Equal(expected.Settings, user.Settings)
	})

	t.Run("should refuse keys and values XML cannot carry", func(t *testing.T) {
		req := require.New(t)
		mockRepo.EXPECT().FindByIDIn(gomock.Any(), "alice").Return(stored, nil).Times(2)

		_, err := svc.UpdateSettings("alice", map[string]string{"k\x01": "v"})
		req.ErrorIs(err, errors.ErrInvalidUser)

		_, err = svc.UpdateSettings("alice", map[string]string{"theme": "\xff"})
		req.ErrorIs(err, errors.ErrInvalidUser)
	})

	t.Run("should leave no settings at all once every key is emptied", func(t *testing.T) {
		req := require.New(t)
		expected := stored
		expected.Settings = nil

		mockRepo.EXPECT().FindByIDIn(gomock.Any(), "alice").Return(stored, nil).Times(1)
		mockRepo.EXPECT().UpdateIn(gomock.Any(), expected).Return(nil).Times(1)

		user, err := svc.UpdateSettings("alice", map[string]string{"theme": "", "lang": ""})

		req.NoError(err)
		req.Nil(user.Settings)
	})
}
