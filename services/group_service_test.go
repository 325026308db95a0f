package services

import (
	"log/slog"
	"strings"
	"testing"

	"chat-xml/domain"
	"chat-xml/errors"
	"chat-xml/mocks"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGroupService_RemoveMember(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := mocks.NewMockIUserRepository(ctrl)
	groups := mocks.NewMockIGroupRepository(ctrl)
	messages := mocks.NewMockIMessageRepository(ctrl)
	svc := NewGroupService(inlineTransactor{}, users, groups, messages, slog.Default())

	stored := func() domain.Group {
		return domain.Group{ID: "g1", Name: "Team", Members: map[string]domain.Role{
			"alice": domain.RoleAdmin,
			"bob":   domain.RoleMember,
		}}
	}

	t.Run("should let an admin remove a member", func(t *testing.T) {
		req := require.New(t)
		expected := domain.Group{ID: "g1", Name: "Team", Members: map[string]domain.Role{"alice": domain.RoleAdmin}}

		groups.EXPECT().FindByIDIn(gomock.Any(), "g1").Return(stored(), nil).Times(1)
		groups.EXPECT().UpdateIn(gomock.Any(), expected).Return(nil).Times(1)

		group, err := svc.RemoveMember("g1", "alice", "bob")

		req.NoError(err)
		req.Equal(expected, group)
	})

	t.Run("should let a member leave on their own", func(t *testing.T) {
		req := require.New(t)
		groups.EXPECT().FindByIDIn(gomock.Any(), "g1").Return(stored(), nil).Times(1)
		groups.EXPECT().UpdateIn(gomock.Any(), gomock.Any()).Return(nil).Times(1)

		group, err := svc.RemoveMember("g1", "bob", "bob")

		req.NoError(err)
		req.False(group.IsMember("bob"))
	})

	t.Run("should refuse a member removing someone else", func(t *testing.T) {
		req := require.New(t)
		groups.EXPECT().FindByIDIn(gomock.Any(), "g1").Return(stored(), nil).Times(1)

		_, err := svc.RemoveMember("g1", "bob", "alice")

		req.ErrorIs(err, errors.ErrNotGroupAdmin)
	})

	t.Run("should keep the last admin while members remain", func(t *testing.T) {
		req := require.New(t)
		groups.EXPECT().FindByIDIn(gomock.Any(), "g1").Return(stored(), nil).Times(1)

		_, err := svc.RemoveMember("g1", "alice", "alice")

		req.ErrorIs(err, errors.ErrLastGroupAdmin)
		req.ErrorIs(err, errors.ErrIntegrity)
	})

	t.Run("should keep the last member", func(t *testing.T) {
		req := require.New(t)
		solo := domain.NewGroup("g1", "Solo", "", "alice")
		groups.EXPECT().FindByIDIn(gomock.Any(), "g1").Return(solo, nil).Times(1)

		_, err := svc.RemoveMember("g1", "alice", "alice")

		req.ErrorIs(err, errors.ErrLastGroupMember)
	})
}

func TestGroupService_AddMember(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := mocks.NewMockIUserRepository(ctrl)
	groups := mocks.NewMockIGroupRepository(ctrl)
	messages := mocks.NewMockIMessageRepository(ctrl)
	svc := NewGroupService(inlineTransactor{}, users, groups, messages, slog.Default())

	t.Run("should add a member with the default role", func(t *testing.T) {
		req := require.New(t)
		groups.EXPECT().FindByIDIn(gomock.Any(), "g1").Return(domain.NewGroup("g1", "Team", "", "alice"), nil).Times(1)
		users.EXPECT().ExistsIn(gomock.Any(), "bob").Return(true).Times(1)
		groups.EXPECT().UpdateIn(gomock.Any(), gomock.Any()).Return(nil).Times(1)

		group, err := svc.AddMember("g1", "alice", "bob", "")

		req.NoError(err)
		req.Equal(domain.RoleMember, group.Members["bob"])
	})

	t.Run("should refuse a non admin actor", func(t *testing.T) {
		req := require.New(t)
		group := domain.NewGroup("g1", "Team", "", "alice")
		group.Members["bob"] = domain.RoleMember
		groups.EXPECT().FindByIDIn(gomock.Any(), "g1").Return(group, nil).Times(1)

		_, err := svc.AddMember("g1", "bob", "carol", domain.RoleMember)

		req.ErrorIs(err, errors.ErrNotGroupAdmin)
	})

	t.Run("should refuse an unknown role before touching the store", func(t *testing.T) {
		req := require.New(t)

		_, err := svc.AddMember("g1", "alice", "bob", "owner")

		req.ErrorIs(err, errors.ErrInvalidGroup)
	})

	t.Run("should refuse a missing user", func(t *testing.T) {
		req := require.New(t)
		groups.EXPECT().FindByIDIn(gomock.Any(), "g1").Return(domain.NewGroup("g1", "Team", "", "alice"), nil).Times(1)
		users.EXPECT().ExistsIn(gomock.Any(), "ghost").Return(false).Times(1)

		_, err := svc.AddMember("g1", "alice", "ghost", domain.RoleMember)

		req.ErrorIs(err, errors.ErrUserNotFound)
	})
}

func TestGroupService_UpdateGroup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := mocks.NewMockIUserRepository(ctrl)
	groups := mocks.NewMockIGroupRepository(ctrl)
	messages := mocks.NewMockIMessageRepository(ctrl)
	svc := NewGroupService(inlineTransactor{}, users, groups, messages, slog.Default())

	t.Run("should apply the creation rules to the new name and description", func(t *testing.T) {
		req := require.New(t)

		_, err := svc.UpdateGroup("g1", "alice", strings.Repeat("n", 101), "")
		req.ErrorIs(err, errors.ErrInvalidGroup)
		req.Contains(err.Error(), "name fails max=100")

		_, err = svc.UpdateGroup("g1", "alice", "Team", strings.Repeat("d", 501))
		req.ErrorIs(err, errors.ErrInvalidGroup)
		req.Contains(err.Error(), "description fails max=500")

		_, err = svc.UpdateGroup("g1", "alice", "   ", "")
		req.ErrorIs(err, errors.ErrInvalidGroup)
	})

	t.Run("should rename when the actor is an admin", func(t *testing.T) {
		req := require.New(t)
		expected := domain.NewGroup("g1", "Crew", "weekly sync", "alice")

		groups.EXPECT().FindByIDIn(gomock.Any(), "g1").Return(domain.NewGroup("g1", "Team", "", "alice"), nil).Times(1)
		groups.EXPECT().UpdateIn(gomock.Any(), expected).Return(nil).Times(1)

		group, err := svc.UpdateGroup("g1", "alice", " Crew ", " weekly sync ")

		req.NoError(err)
		req.Equal(expected, group)
	})
}
