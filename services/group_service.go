package services

import (
	"fmt"
	"log/slog"
	"strings"

	"chat-xml/domain"
	"chat-xml/errors"
	"chat-xml/repositories"
	"chat-xml/storage"
)

type IGroupService interface {
	CreateGroup(cmd CreateGroupCommand) (domain.Group, error)
	GetGroup(id string) (domain.Group, error)
	ListGroupsForUser(userID string) ([]domain.Group, error)
	AddMember(groupID, actorID, userID string, role domain.Role) (domain.Group, error)
	RemoveMember(groupID, actorID, userID string) (domain.Group, error)
	UpdateGroup(groupID, actorID, name, description string) (domain.Group, error)
	DeleteGroup(groupID, actorID string) (int, error)
}

type CreateGroupCommand struct {
	ID          string
	Name        string `validate:"required,max=100"`
	Description string `validate:"max=500"`
	CreatorID   string `validate:"required"`
}

// groupFields carries the rules shared by creation and later edits.
type groupFields struct {
	Name        string `validate:"required,max=100"`
	Description string `validate:"max=500"`
}

type GroupService struct {
	transactor Transactor
	users      repositories.IUserRepository
	groups     repositories.IGroupRepository
	messages   repositories.IMessageRepository
	log        *slog.Logger
}

func NewGroupService(
	transactor Transactor,
	users repositories.IUserRepository,
	groups repositories.IGroupRepository,
	messages repositories.IMessageRepository,
	log *slog.Logger,
) *GroupService {
	return &GroupService{transactor: transactor, users: users, groups: groups, messages: messages, log: log}
}

// CreateGroup stores the group with its creator as sole admin.
func (s *GroupService) CreateGroup(cmd CreateGroupCommand) (domain.Group, error) {
	cmd.Name = strings.TrimSpace(cmd.Name)
	cmd.Description = strings.TrimSpace(cmd.Description)
	if err := check(errors.ErrInvalidGroup, cmd); err != nil {
		return domain.Group{}, err
	}

	group := domain.NewGroup(orNewID(cmd.ID), cmd.Name, cmd.Description, cmd.CreatorID)
	err := s.transactor.Update(func(tx *storage.Tx) error {
		if !s.users.ExistsIn(tx, cmd.CreatorID) {
			return fmt.Errorf("%w: %s", errors.ErrUserNotFound, cmd.CreatorID)
		}
		return s.groups.CreateIn(tx, group)
	})
	if err != nil {
		return domain.Group{}, err
	}
	s.log.Info("Group created", "group_id", group.ID, "creator_id", cmd.CreatorID)
	return group, nil
}

func (s *GroupService) GetGroup(id string) (domain.Group, error) {
	return s.groups.FindByID(id)
}

func (s *GroupService) ListGroupsForUser(userID string) ([]domain.Group, error) {
	return s.groups.FindByMember(userID)
}

// AddMember lets an admin add an existing user. An empty role means member.
func (s *GroupService) AddMember(groupID, actorID, userID string, role domain.Role) (domain.Group, error) {
	if role == "" {
		role = domain.RoleMember
	}
	if !role.Valid() {
		return domain.Group{}, fmt.Errorf("%w: unknown role %q", errors.ErrInvalidGroup, role)
	}
	return s.mutate(groupID, func(tx *storage.Tx, group *domain.Group) error {
		if !group.IsAdmin(actorID) {
			return errors.ErrNotGroupAdmin
		}
		if !s.users.ExistsIn(tx, userID) {
			return fmt.Errorf("%w: %s", errors.ErrUserNotFound, userID)
		}
		if group.IsMember(userID) {
			return errors.ErrMemberAlreadyInGroup
		}
		group.Members[userID] = role
		return nil
	})
}

// RemoveMember is allowed to admins and to the member leaving. The last member
// cannot leave, and the last admin cannot leave while others remain.
func (s *GroupService) RemoveMember(groupID, actorID, userID string) (domain.Group, error) {
	return s.mutate(groupID, func(_ *storage.Tx, group *domain.Group) error {
		if !group.IsMember(userID) {
			return errors.ErrMemberNotFound
		}
		if actorID != userID && !group.IsAdmin(actorID) {
			return errors.ErrNotGroupAdmin
		}
		if len(group.Members) == 1 {
			return errors.ErrLastGroupMember
		}
		if group.IsAdmin(userID) && len(group.Admins()) == 1 {
			return errors.ErrLastGroupAdmin
		}
		delete(group.Members, userID)
		return nil
	})
}

func (s *GroupService) UpdateGroup(groupID, actorID, name, description string) (domain.Group, error) {
	fields := groupFields{Name: strings.TrimSpace(name), Description: strings.TrimSpace(description)}
	if err := check(errors.ErrInvalidGroup, fields); err != nil {
		return domain.Group{}, err
	}
	return s.mutate(groupID, func(_ *storage.Tx, group *domain.Group) error {
		if !group.IsAdmin(actorID) {
			return errors.ErrNotGroupAdmin
		}
		group.Name = fields.Name
		group.Description = fields.Description
		return nil
	})
}

// DeleteGroup removes the group and its messages. It returns how many messages
// went with it.
func (s *GroupService) DeleteGroup(groupID, actorID string) (int, error) {
	var removed int
	err := s.transactor.Update(func(tx *storage.Tx) error {
		group, err := s.groups.FindByIDIn(tx, groupID)
		if err != nil {
			return err
		}
		if !group.IsAdmin(actorID) {
			return errors.ErrNotGroupAdmin
		}
		if err := s.groups.DeleteIn(tx, groupID); err != nil {
			return err
		}
		removed, err = s.messages.DeleteByGroupIn(tx, groupID)
		return err
	})
	if err != nil {
		return 0, err
	}
	s.log.Info("Group deleted", "group_id", groupID, "messages_removed", removed)
	return removed, nil
}

func (s *GroupService) mutate(groupID string, change func(tx *storage.Tx, group *domain.Group) error) (domain.Group, error) {
	var updated domain.Group
	err := s.transactor.Update(func(tx *storage.Tx) error {
		group, err := s.groups.FindByIDIn(tx, groupID)
		if err != nil {
			return err
		}
		if group.Members == nil {
			group.Members = make(map[string]domain.Role)
		}
		if err := change(tx, &group); err != nil {
			return err
		}
		updated = group
		return s.groups.UpdateIn(tx, group)
	})
	if err != nil {
		return domain.Group{}, err
	}
	return updated, nil
}
