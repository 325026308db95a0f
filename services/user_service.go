package services

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"strings"

	"chat-xml/domain"
	"chat-xml/errors"
	"chat-xml/repositories"
	"chat-xml/schema"
	"chat-xml/storage"
)

type IUserService interface {
	RegisterUser(cmd RegisterUserCommand) (domain.User, error)
	GetUser(id string) (domain.User, error)
	GetUserByEmail(email string) (domain.User, error)
	ListUsers() ([]domain.User, error)
	UpdateUser(id string, cmd UpdateUserCommand) (domain.User, error)
	UpdateSettings(id string, changes map[string]string) (domain.User, error)
	SetStatus(id string, status domain.UserStatus) (domain.User, error)
	DeleteUser(id string) error
}

type RegisterUserCommand struct {
	ID       string            `validate:"required"`
	Name     string            `validate:"required,min=2,max=100"`
	Email    string            `validate:"required,email"`
	Status   domain.UserStatus `validate:"omitempty,oneof=active inactive away busy"`
	Settings map[string]string
}

// UpdateUserCommand is a partial update: nil fields are left untouched.
type UpdateUserCommand struct {
	Name   *string
	Email  *string
	Status *domain.UserStatus
}

// userFields is what every stored user must satisfy.
type userFields struct {
	Name   string            `validate:"required,min=2,max=100"`
	Email  string            `validate:"required,email"`
	Status domain.UserStatus `validate:"required,oneof=active inactive away busy"`
}

type UserService struct {
	transactor Transactor
	users      repositories.IUserRepository
	log        *slog.Logger
}

func NewUserService(transactor Transactor, users repositories.IUserRepository, log *slog.Logger) *UserService {
	return &UserService{transactor: transactor, users: users, log: log}
}

func (s *UserService) RegisterUser(cmd RegisterUserCommand) (domain.User, error) {
	cmd.Name = strings.TrimSpace(cmd.Name)
	cmd.Email = strings.TrimSpace(cmd.Email)
	if err := check(errors.ErrInvalidUser, cmd); err != nil {
		return domain.User{}, err
	}
	if cmd.Status == "" {
		cmd.Status = domain.UserActive
	}
	user := domain.User{
		ID:       cmd.ID,
		Name:     cmd.Name,
		Email:    cmd.Email,
		Status:   cmd.Status,
		Settings: withoutEmptyValues(cmd.Settings),
	}

	err := s.transactor.Update(func(tx *storage.Tx) error {
		if s.users.ExistsIn(tx, user.ID) {
			return errors.ErrUserAlreadyExists
		}
		if err := s.ensureEmailFree(tx, user.Email, ""); err != nil {
			return err
		}
		return s.users.CreateIn(tx, user)
	})
	if err != nil {
		return domain.User{}, err
	}
	s.log.Info("User registered", "user_id", user.ID)
	return user, nil
}

func (s *UserService) GetUser(id string) (domain.User, error) {
	return s.users.FindByID(id)
}

func (s *UserService) GetUserByEmail(email string) (domain.User, error) {
	return s.users.FindByEmail(strings.TrimSpace(email))
}

func (s *UserService) ListUsers() ([]domain.User, error) {
	return s.users.FindAll()
}

func (s *UserService) UpdateUser(id string, cmd UpdateUserCommand) (domain.User, error) {
	var updated domain.User
	err := s.transactor.Update(func(tx *storage.Tx) error {
		user, err := s.users.FindByIDIn(tx, id)
		if err != nil {
			return err
		}
		if cmd.Name != nil {
			user.Name = strings.TrimSpace(*cmd.Name)
		}
		if cmd.Email != nil {
			user.Email = strings.TrimSpace(*cmd.Email)
		}
		if cmd.Status != nil {
			user.Status = *cmd.Status
		}
		if err := check(errors.ErrInvalidUser, userFields{Name: user.Name, Email: user.Email, Status: user.Status}); err != nil {
			return err
		}
		if cmd.Email != nil {
			if err := s.ensureEmailFree(tx, user.Email, user.ID); err != nil {
				return err
			}
		}
		updated = user
		return s.users.UpdateIn(tx, user)
	})
	if err != nil {
		return domain.User{}, err
	}
	return updated, nil
}

// UpdateSettings merges changes into the user's settings. An empty value removes
// the key.
func (s *UserService) UpdateSettings(id string, changes map[string]string) (domain.User, error) {
	var updated domain.User
	err := s.transactor.Update(func(tx *storage.Tx) error {
		user, err := s.users.FindByIDIn(tx, id)
		if err != nil {
			return err
		}
		merged := make(map[string]string, len(user.Settings)+len(changes))
		for k, v := range user.Settings {
			merged[k] = v
		}
		for k, v := range changes {
			if strings.TrimSpace(k) == "" {
				return fmt.Errorf("%w: setting key is empty", errors.ErrInvalidUser)
			}
			if !schema.ValidText(k) || !schema.ValidText(v) {
				return fmt.Errorf("%w: setting %q holds characters that cannot be stored in XML", errors.ErrInvalidUser, k)
			}
			merged[k] = v
		}
		user.Settings = withoutEmptyValues(merged)
		updated = user
		return s.users.UpdateIn(tx, user)
	})
	if err != nil {
		return domain.User{}, err
	}
	return updated, nil
}

func (s *UserService) SetStatus(id string, status domain.UserStatus) (domain.User, error) {
	return s.UpdateUser(id, UpdateUserCommand{Status: &status})
}

// DeleteUser does not cascade. Messages and contacts pointing at the user stay
// and show up in the integrity report.
func (s *UserService) DeleteUser(id string) error {
	if err := s.users.Delete(id); err != nil {
		return err
	}
	s.log.Info("User deleted", "user_id", id)
	return nil
}

func (s *UserService) ensureEmailFree(reader storage.Reader, email, selfID string) error {
	owner, err := s.users.FindByEmailIn(reader, email)
	switch {
	case stderrors.Is(err, errors.ErrUserNotFound):
		return nil
	case err != nil:
		return err
	case owner.ID != selfID:
		return errors.ErrEmailAlreadyExists
	default:
		return nil
	}
}

// withoutEmptyValues returns nil rather than an empty map so the settings
// container is omitted.
func withoutEmptyValues(settings map[string]string) map[string]string {
	var out map[string]string
	for k, v := range settings {
		if v == "" {
			continue
		}
		if out == nil {
			out = make(map[string]string)
		}
		out[k] = v
	}
	return out
}
