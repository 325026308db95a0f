//go:generate go run go.uber.org/mock/mockgen -source=contact.go -destination=../mocks/mock_contact_repository.go -package=mocks
package repositories

import (
	"chat-xml/domain"
	"chat-xml/errors"
	"chat-xml/schema"
	"chat-xml/storage"

	"github.com/samber/lo"
)

type IContactRepository interface {
	Create(contact domain.Contact) error
	CreateIn(tx *storage.Tx, contact domain.Contact) error
	FindByID(id string) (domain.Contact, error)
	FindByIDIn(reader storage.Reader, id string) (domain.Contact, error)
	FindAll() ([]domain.Contact, error)
	FindAllIn(reader storage.Reader) ([]domain.Contact, error)
	FindByUserID(userID string) ([]domain.Contact, error)
	FindEdgeIn(reader storage.Reader, userID, contactUserID string) (domain.Contact, error)
	FindBetweenIn(reader storage.Reader, a, b string) ([]domain.Contact, error)
	Update(contact domain.Contact) error
	UpdateIn(tx *storage.Tx, contact domain.Contact) error
	Delete(id string) error
	DeleteIn(tx *storage.Tx, id string) error
	Exists(id string) (bool, error)
}

type ContactRepository struct {
	Repository[domain.Contact]
}

func NewContactRepository(store *storage.Store) *ContactRepository {
	return &ContactRepository{
		Repository: NewRepository[domain.Contact](store, storage.Contacts, contactCodec{},
			errors.ErrContactNotFound, errors.ErrContactAlreadyExists),
	}
}

// FindByUserID returns the edges owned by userID.
func (r *ContactRepository) FindByUserID(userID string) ([]domain.Contact, error) {
	contacts, err := r.FindAll()
	if err != nil {
		return nil, err
	}
	return lo.Filter(contacts, func(c domain.Contact, _ int) bool {
		return c.UserID == userID
	}), nil
}

// FindEdgeIn returns the directed edge userID -> contactUserID.
func (r *ContactRepository) FindEdgeIn(reader storage.Reader, userID, contactUserID string) (domain.Contact, error) {
	contacts, err := r.FindAllIn(reader)
	if err != nil {
		return domain.Contact{}, err
	}
	edge, ok := lo.Find(contacts, func(c domain.Contact) bool {
		return c.UserID == userID && c.ContactUserID == contactUserID
	})
	if !ok {
		return domain.Contact{}, errors.ErrContactNotFound
	}
	return edge, nil
}

// FindBetweenIn returns the edges linking a and b in either direction.
func (r *ContactRepository) FindBetweenIn(reader storage.Reader, a, b string) ([]domain.Contact, error) {
	contacts, err := r.FindAllIn(reader)
	if err != nil {
		return nil, err
	}
	return lo.Filter(contacts, func(c domain.Contact, _ int) bool {
		return c.Connects(a, b)
	}), nil
}

type contactCodec struct{}

func (contactCodec) ID(c domain.Contact) string { return c.ID }

func (contactCodec) Encode(c domain.Contact) storage.Node {
	return storage.NewNode(schema.ContactTag).
		WithAttr(schema.IDAttr, c.ID).
		WithField("name", c.Name).
		WithField("user_id", c.UserID).
		WithField("contact_user_id", c.ContactUserID)
}

func (contactCodec) Decode(n storage.Node) (domain.Contact, error) {
	return domain.Contact{
		ID:            n.ID(),
		Name:          n.Field("name"),
		UserID:        n.Field("user_id"),
		ContactUserID: n.Field("contact_user_id"),
	}, nil
}
