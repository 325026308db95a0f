package services

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"strings"

	"chat-xml/domain"
	"chat-xml/errors"
	"chat-xml/repositories"
	"chat-xml/storage"

	"github.com/google/uuid"
)

type IContactService interface {
	AddContact(cmd AddContactCommand) (domain.Contact, error)
	ListContacts(userID string) ([]domain.Contact, error)
	GetContact(id string) (domain.Contact, error)
	AreConnected(a, b string) (bool, error)
	RenameContact(id, ownerID, name string) (domain.Contact, error)
	RemoveContact(ownerID, contactUserID string) (int, error)
}

// AddContactCommand creates the edge UserID -> ContactUserID. ID and Name are
// optional: a uuid and the target's display name are used when empty.
type AddContactCommand struct {
	ID            string
	Name          string `validate:"max=100"`
	UserID        string `validate:"required"`
	ContactUserID string `validate:"required"`
}

// ConversationDeleter removes the private messages between two users inside a
// running transaction.
type ConversationDeleter interface {
	DeleteConversationIn(tx *storage.Tx, a, b string) (int, error)
}

type ContactService struct {
	transactor    Transactor
	users         repositories.IUserRepository
	contacts      repositories.IContactRepository
	conversations ConversationDeleter
	log           *slog.Logger
}

func NewContactService(
	transactor Transactor,
	users repositories.IUserRepository,
	contacts repositories.IContactRepository,
	conversations ConversationDeleter,
	log *slog.Logger,
) *ContactService {
	return &ContactService{
		transactor:    transactor,
		users:         users,
		contacts:      contacts,
		conversations: conversations,
		log:           log,
	}
}

// AddContact stores the requested edge and its reverse in one transaction, so
// both users see each other. A reverse edge left over from older data is kept.
func (s *ContactService) AddContact(cmd AddContactCommand) (domain.Contact, error) {
	cmd.Name = strings.TrimSpace(cmd.Name)
	if err := check(errors.ErrInvalidContact, cmd); err != nil {
		return domain.Contact{}, err
	}
	if cmd.UserID == cmd.ContactUserID {
		return domain.Contact{}, errors.ErrSelfContact
	}

	var forward domain.Contact
	err := s.transactor.Update(func(tx *storage.Tx) error {
		owner, err := s.users.FindByIDIn(tx, cmd.UserID)
		if err != nil {
			return fmt.Errorf("%w: %s", err, cmd.UserID)
		}
		target, err := s.users.FindByIDIn(tx, cmd.ContactUserID)
		if err != nil {
			return fmt.Errorf("%w: %s", err, cmd.ContactUserID)
		}

		_, err = s.contacts.FindEdgeIn(tx, owner.ID, target.ID)
		switch {
		case err == nil:
			return errors.ErrContactAlreadyExists
		case !stderrors.Is(err, errors.ErrContactNotFound):
			return err
		}

		forward = domain.Contact{
			ID:            orNewID(cmd.ID),
			Name:          cmd.Name,
			UserID:        owner.ID,
			ContactUserID: target.ID,
		}
		if forward.Name == "" {
			forward.Name = target.Name
		}
		if err := s.contacts.CreateIn(tx, forward); err != nil {
			return err
		}

		_, err = s.contacts.FindEdgeIn(tx, target.ID, owner.ID)
		switch {
		case err == nil:
			return nil
		case !stderrors.Is(err, errors.ErrContactNotFound):
			return err
		}
		return s.contacts.CreateIn(tx, forward.Reverse(uuid.NewString(), owner.Name))
	})
	if err != nil {
		return domain.Contact{}, err
	}
	s.log.Info("Contact added", "user_id", forward.UserID, "contact_user_id", forward.ContactUserID)
	return forward, nil
}

func (s *ContactService) ListContacts(userID string) ([]domain.Contact, error) {
	return s.contacts.FindByUserID(userID)
}

func (s *ContactService) GetContact(id string) (domain.Contact, error) {
	return s.contacts.FindByID(id)
}

// AreConnected reports whether an edge links a and b in either direction.
func (s *ContactService) AreConnected(a, b string) (bool, error) {
	var connected bool
	err := s.transactor.View(func(v *storage.View) error {
		edges, err := s.contacts.FindBetweenIn(v, a, b)
		connected = len(edges) > 0
		return err
	})
	return connected, err
}

// RenameContact changes the display name an owner gave to one of their contacts.
func (s *ContactService) RenameContact(id, ownerID, name string) (domain.Contact, error) {
	name = strings.TrimSpace(name)
	if name == "" || len([]rune(name)) > 100 {
		return domain.Contact{}, fmt.Errorf("%w: name must hold 1 to 100 characters", errors.ErrInvalidContact)
	}
	var renamed domain.Contact
	err := s.transactor.Update(func(tx *storage.Tx) error {
		contact, err := s.contacts.FindByIDIn(tx, id)
		if err != nil {
			return err
		}
		if contact.UserID != ownerID {
			return errors.ErrContactNotFound
		}
		contact.Name = name
		renamed = contact
		return s.contacts.UpdateIn(tx, contact)
	})
	if err != nil {
		return domain.Contact{}, err
	}
	return renamed, nil
}

// RemoveContact deletes the edges between the pair, both directions, and every
// private message they exchanged. It returns how many messages were removed.
func (s *ContactService) RemoveContact(ownerID, contactUserID string) (int, error) {
	var removed int
	err := s.transactor.Update(func(tx *storage.Tx) error {
		edges, err := s.contacts.FindBetweenIn(tx, ownerID, contactUserID)
		if err != nil {
			return err
		}
		if len(edges) == 0 {
			return errors.ErrContactNotFound
		}
		for _, edge := range edges {
			if err := s.contacts.DeleteIn(tx, edge.ID); err != nil {
				return err
			}
		}
		removed, err = s.conversations.DeleteConversationIn(tx, ownerID, contactUserID)
		return err
	})
	if err != nil {
		return 0, err
	}
	s.log.Info("Contact removed", "user_id", ownerID, "contact_user_id", contactUserID, "messages_removed", removed)
	return removed, nil
}

func orNewID(id string) string {
	if id = strings.TrimSpace(id); id != "" {
		return id
	}
	return uuid.NewString()
}
