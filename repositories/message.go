//go:generate go run go.uber.org/mock/mockgen -source=message.go -destination=../mocks/mock_message_repository.go -package=mocks
package repositories

import (
	"fmt"
	"time"

	"chat-xml/domain"
	"chat-xml/errors"
	"chat-xml/schema"
	"chat-xml/storage"

	"github.com/samber/lo"
)

type IMessageRepository interface {
	Create(message domain.Message) error
	CreateIn(tx *storage.Tx, message domain.Message) error
	FindByID(id string) (domain.Message, error)
	FindByIDIn(reader storage.Reader, id string) (domain.Message, error)
	FindAll() ([]domain.Message, error)
	FindAllIn(reader storage.Reader) ([]domain.Message, error)
	FindConversation(a, b string) ([]domain.Message, error)
	FindByGroup(groupID string) ([]domain.Message, error)
	FindBySender(userID string) ([]domain.Message, error)
	Update(message domain.Message) error
	UpdateIn(tx *storage.Tx, message domain.Message) error
	Delete(id string) error
	DeleteIn(tx *storage.Tx, id string) error
	DeleteConversationIn(tx *storage.Tx, a, b string) (int, error)
	DeleteByGroupIn(tx *storage.Tx, groupID string) (int, error)
	Exists(id string) (bool, error)
}

type MessageRepository struct {
	Repository[domain.Message]
}

func NewMessageRepository(store *storage.Store) *MessageRepository {
	return &MessageRepository{
		Repository: NewRepository[domain.Message](store, storage.Messages, messageCodec{},
			errors.ErrMessageNotFound, errors.ErrAlreadyExists),
	}
}

// FindConversation returns private messages exchanged between a and b, in document
// order. Callers sort by timestamp.
func (r *MessageRepository) FindConversation(a, b string) ([]domain.Message, error) {
	return r.filter(func(m domain.Message) bool { return m.Involves(a, b) })
}

func (r *MessageRepository) FindByGroup(groupID string) ([]domain.Message, error) {
	return r.filter(func(m domain.Message) bool { return m.IsGroup() && m.ToGroup == groupID })
}

func (r *MessageRepository) FindBySender(userID string) ([]domain.Message, error) {
	return r.filter(func(m domain.Message) bool { return m.FromUser == userID })
}

// DeleteConversationIn removes every private message between a and b, both ways.
func (r *MessageRepository) DeleteConversationIn(tx *storage.Tx, a, b string) (int, error) {
	return r.DeleteWhereIn(tx, func(m domain.Message) bool { return m.Involves(a, b) })
}

func (r *MessageRepository) DeleteByGroupIn(tx *storage.Tx, groupID string) (int, error) {
	return r.DeleteWhereIn(tx, func(m domain.Message) bool { return m.ToGroup == groupID })
}

func (r *MessageRepository) filter(keep func(domain.Message) bool) ([]domain.Message, error) {
	messages, err := r.FindAll()
	if err != nil {
		return nil, err
	}
	return lo.Filter(messages, func(m domain.Message, _ int) bool { return keep(m) }), nil
}

type messageCodec struct{}

func (messageCodec) ID(m domain.Message) string { return m.ID }

func (messageCodec) Encode(m domain.Message) storage.Node {
	return storage.NewNode(schema.MessageTag).
		WithAttr(schema.IDAttr, m.ID).
		WithField("content", m.Content).
		WithField("type", string(m.Type)).
		WithField("timestamp", m.Timestamp.UTC().Format(time.RFC3339Nano)).
		WithField("status", string(m.Status)).
		WithField("from_user", m.FromUser).
		WithOptionalField("to_user", m.ToUser).
		WithOptionalField("to_group", m.ToGroup)
}

func (messageCodec) Decode(n storage.Node) (domain.Message, error) {
	at, err := time.Parse(time.RFC3339Nano, n.Field("timestamp"))
	if err != nil {
		return domain.Message{}, fmt.Errorf("timestamp: %w", err)
	}
	return domain.Message{
		ID:        n.ID(),
		Content:   n.Field("content"),
		FromUser:  n.Field("from_user"),
		ToUser:    n.Field("to_user"),
		ToGroup:   n.Field("to_group"),
		Type:      domain.MessageType(n.Field("type")),
		Status:    domain.MessageStatus(n.Field("status")),
		Timestamp: at.UTC(),
	}, nil
}
