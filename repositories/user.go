//go:generate go run go.uber.org/mock/mockgen -source=user.go -destination=../mocks/mock_user_repository.go -package=mocks
package repositories

import (
	"sort"
	"strings"

	"chat-xml/domain"
	"chat-xml/errors"
	"chat-xml/schema"
	"chat-xml/storage"

	"github.com/samber/lo"
)

type IUserRepository interface {
	Create(user domain.User) error
	CreateIn(tx *storage.Tx, user domain.User) error
	FindByID(id string) (domain.User, error)
	FindByIDIn(reader storage.Reader, id string) (domain.User, error)
	FindAll() ([]domain.User, error)
	FindAllIn(reader storage.Reader) ([]domain.User, error)
	FindByEmail(email string) (domain.User, error)
	FindByEmailIn(reader storage.Reader, email string) (domain.User, error)
	Update(user domain.User) error
	UpdateIn(tx *storage.Tx, user domain.User) error
	Delete(id string) error
	Exists(id string) (bool, error)
	ExistsIn(reader storage.Reader, id string) bool
}

type UserRepository struct {
	Repository[domain.User]
}

func NewUserRepository(store *storage.Store) *UserRepository {
	return &UserRepository{
		Repository: NewRepository[domain.User](store, storage.Users, userCodec{},
			errors.ErrUserNotFound, errors.ErrUserAlreadyExists),
	}
}

// FindByEmail compares addresses case-insensitively.
func (r *UserRepository) FindByEmail(email string) (domain.User, error) {
	var user domain.User
	err := r.store.View(func(v *storage.View) error {
		var err error
		user, err = r.FindByEmailIn(v, email)
		return err
	})
	return user, err
}

func (r *UserRepository) FindByEmailIn(reader storage.Reader, email string) (domain.User, error) {
	users, err := r.FindAllIn(reader)
	if err != nil {
		return domain.User{}, err
	}
	user, ok := lo.Find(users, func(u domain.User) bool {
		return strings.EqualFold(u.Email, email)
	})
	if !ok {
		return domain.User{}, errors.ErrUserNotFound
	}
	return user, nil
}

type userCodec struct{}

func (userCodec) ID(u domain.User) string { return u.ID }

func (userCodec) Encode(u domain.User) storage.Node {
	keys := lo.Keys(u.Settings)
	sort.Strings(keys)
	settings := lo.Map(keys, func(key string, _ int) storage.Node {
		return storage.NewNode(schema.SettingTag).
			WithAttr(schema.KeyAttr, key).
			WithText(u.Settings[key])
	})
	return storage.NewNode(schema.UserTag).
		WithAttr(schema.IDAttr, u.ID).
		WithField("name", u.Name).
		WithField("email", u.Email).
		WithField("status", string(u.Status)).
		WithContainer(schema.SettingsTag, settings...)
}

// Decode leaves Settings nil when the user has none.
func (userCodec) Decode(n storage.Node) (domain.User, error) {
	user := domain.User{
		ID:     n.ID(),
		Name:   n.Field("name"),
		Email:  n.Field("email"),
		Status: domain.UserStatus(n.Field("status")),
	}
	if settings, ok := n.Child(schema.SettingsTag); ok {
		user.Settings = make(map[string]string)
		for _, s := range settings.ChildrenNamed(schema.SettingTag) {
			user.Settings[s.Attr(schema.KeyAttr)] = s.Text
		}
	}
	return user, nil
}
