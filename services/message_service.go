package services

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"chat-xml/domain"
	"chat-xml/errors"
	"chat-xml/repositories"
	"chat-xml/schema"
	"chat-xml/search"
	"chat-xml/storage"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

const DefaultMaxContentLength = 1000

type IMessageService interface {
	SendPrivateMessage(from, to, content string, msgType domain.MessageType) (domain.Message, error)
	SendGroupMessage(from, groupID, content string, msgType domain.MessageType) (domain.Message, error)
	GetConversation(a, b string) ([]domain.Message, error)
	GetGroupMessages(groupID, userID string) ([]domain.Message, error)
	MarkAsRead(messageID, userID string) (domain.Message, error)
	DeleteMessage(messageID, userID string) error
	DeleteConversationIn(tx *storage.Tx, a, b string) (int, error)
	ValidateDataIntegrity() (IntegrityReport, error)
	SearchMessages(userID, query string, limit int) ([]domain.Message, error)
}

// Censor masks forbidden words in message content.
type Censor interface {
	Censor(content string) (string, []string)
}

type MessageService struct {
	transactor       Transactor
	users            repositories.IUserRepository
	contacts         repositories.IContactRepository
	groups           repositories.IGroupRepository
	messages         repositories.IMessageRepository
	censor           Censor
	maxContentLength int
	searchLimit      int
	now              func() time.Time
	log              *slog.Logger
}

// NewMessageService wires the message rules. censor may be nil to store content
// as sent; a non positive maxContentLength or searchLimit falls back to defaults.
func NewMessageService(
	transactor Transactor,
	users repositories.IUserRepository,
	contacts repositories.IContactRepository,
	groups repositories.IGroupRepository,
	messages repositories.IMessageRepository,
	censor Censor,
	maxContentLength int,
	searchLimit int,
	log *slog.Logger,
) *MessageService {
	if maxContentLength <= 0 {
		maxContentLength = DefaultMaxContentLength
	}
	if searchLimit <= 0 {
		searchLimit = search.DefaultLimit
	}
	return &MessageService{
		transactor:       transactor,
		users:            users,
		contacts:         contacts,
		groups:           groups,
		messages:         messages,
		censor:           censor,
		maxContentLength: maxContentLength,
		searchLimit:      searchLimit,
		now:              time.Now,
		log:              log,
	}
}

// SendPrivateMessage needs both users and an edge from sender to recipient.
func (s *MessageService) SendPrivateMessage(from, to, content string, msgType domain.MessageType) (domain.Message, error) {
	var message domain.Message
	err := s.transactor.Update(func(tx *storage.Tx) error {
		if !s.users.ExistsIn(tx, from) {
			return fmt.Errorf("%w: %s", errors.ErrSenderNotFound, from)
		}
		if !s.users.ExistsIn(tx, to) {
			return fmt.Errorf("%w: %s", errors.ErrRecipientNotFound, to)
		}
		if _, err := s.contacts.FindEdgeIn(tx, from, to); err != nil {
			if stderrors.Is(err, errors.ErrContactNotFound) {
				return fmt.Errorf("%w: %s -> %s", errors.ErrMissingContact, from, to)
			}
			return err
		}
		var err error
		message, err = s.newMessage(from, content, msgType)
		if err != nil {
			return err
		}
		message.ToUser = to
		return s.messages.CreateIn(tx, message)
	})
	if err != nil {
		return domain.Message{}, err
	}
	s.log.Debug("Private message sent", "message_id", message.ID, "from", from, "to", to)
	return message, nil
}

// SendGroupMessage needs the sender to be a current member of the group.
func (s *MessageService) SendGroupMessage(from, groupID, content string, msgType domain.MessageType) (domain.Message, error) {
	var message domain.Message
	err := s.transactor.Update(func(tx *storage.Tx) error {
		if !s.users.ExistsIn(tx, from) {
			return fmt.Errorf("%w: %s", errors.ErrSenderNotFound, from)
		}
		group, err := s.groups.FindByIDIn(tx, groupID)
		if err != nil {
			return err
		}
		if !group.IsMember(from) {
			return fmt.Errorf("%w: %s in %s", errors.ErrNotGroupMember, from, groupID)
		}
		message, err = s.newMessage(from, content, msgType)
		if err != nil {
			return err
		}
		message.ToGroup = groupID
		return s.messages.CreateIn(tx, message)
	})
	if err != nil {
		return domain.Message{}, err
	}
	s.log.Debug("Group message sent", "message_id", message.ID, "from", from, "group_id", groupID)
	return message, nil
}

// GetConversation returns the private messages between a and b, oldest first.
// Messages whose sender or recipient no longer exists are left out.
func (s *MessageService) GetConversation(a, b string) ([]domain.Message, error) {
	var conversation []domain.Message
	err := s.transactor.View(func(v *storage.View) error {
		edges, err := s.contacts.FindBetweenIn(v, a, b)
		if err != nil {
			return err
		}
		if len(edges) == 0 {
			return fmt.Errorf("%w: %s <-> %s", errors.ErrMissingContact, a, b)
		}
		all, err := s.messages.FindAllIn(v)
		if err != nil {
			return err
		}
		conversation = lo.Filter(all, func(m domain.Message, _ int) bool {
			return m.IsPrivate() && m.Involves(a, b) &&
				s.users.ExistsIn(v, m.FromUser) && s.users.ExistsIn(v, m.ToUser)
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	sortByTimestamp(conversation)
	return conversation, nil
}

func (s *MessageService) GetGroupMessages(groupID, userID string) ([]domain.Message, error) {
	var messages []domain.Message
	err := s.transactor.View(func(v *storage.View) error {
		group, err := s.groups.FindByIDIn(v, groupID)
		if err != nil {
			return err
		}
		if !group.IsMember(userID) {
			return fmt.Errorf("%w: %s in %s", errors.ErrNotGroupMember, userID, groupID)
		}
		all, err := s.messages.FindAllIn(v)
		if err != nil {
			return err
		}
		messages = lo.Filter(all, func(m domain.Message, _ int) bool {
			return m.ToGroup == groupID
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	sortByTimestamp(messages)
	return messages, nil
}

// MarkAsRead moves a message from sent to read. Only the recipient, or a member
// of the recipient group other than the sender, may do it.
func (s *MessageService) MarkAsRead(messageID, userID string) (domain.Message, error) {
	var updated domain.Message
	err := s.transactor.Update(func(tx *storage.Tx) error {
		message, err := s.messages.FindByIDIn(tx, messageID)
		if err != nil {
			return err
		}
		addressed, err := s.isAddressee(tx, message, userID)
		if err != nil {
			return err
		}
		if !addressed {
			return errors.ErrNotAddressee
		}
		if !message.Status.CanTransitionTo(domain.StatusRead) {
			return fmt.Errorf("%w: %s -> %s", errors.ErrInvalidStatusTransition, message.Status, domain.StatusRead)
		}
		message.Status = domain.StatusRead
		updated = message
		return s.messages.UpdateIn(tx, message)
	})
	if err != nil {
		return domain.Message{}, err
	}
	return updated, nil
}

func (s *MessageService) isAddressee(reader storage.Reader, message domain.Message, userID string) (bool, error) {
	if message.IsPrivate() {
		return message.ToUser == userID, nil
	}
	if message.FromUser == userID {
		return false, nil
	}
	group, err := s.groups.FindByIDIn(reader, message.ToGroup)
	if stderrors.Is(err, errors.ErrGroupNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return group.IsMember(userID), nil
}

func (s *MessageService) DeleteMessage(messageID, userID string) error {
	return s.transactor.Update(func(tx *storage.Tx) error {
		message, err := s.messages.FindByIDIn(tx, messageID)
		if err != nil {
			return err
		}
		if message.FromUser != userID {
			return errors.ErrNotSender
		}
		return s.messages.DeleteIn(tx, messageID)
	})
}

// DeleteConversationIn removes every private message between a and b, both
// ways, inside tx.
func (s *MessageService) DeleteConversationIn(tx *storage.Tx, a, b string) (int, error) {
	removed, err := s.messages.DeleteConversationIn(tx, a, b)
	if err != nil {
		return 0, err
	}
	s.log.Debug("Conversation deleted", "user_a", a, "user_b", b, "messages_removed", removed)
	return removed, nil
}

// SearchMessages runs a full-text search over the messages userID can read:
// conversations with current contacts and groups they belong to.
func (s *MessageService) SearchMessages(userID, query string, limit int) ([]domain.Message, error) {
	q := search.ParseQuery(query)
	if q.Empty() {
		return nil, errors.ErrEmptyQuery
	}
	switch {
	case limit > 0:
		q.Limit = limit
	case q.Limit == search.DefaultLimit:
		q.Limit = s.searchLimit
	}

	var visible []domain.Message
	err := s.transactor.View(func(v *storage.View) error {
		if !s.users.ExistsIn(v, userID) {
			return fmt.Errorf("%w: %s", errors.ErrUserNotFound, userID)
		}
		var err error
		visible, err = s.visibleTo(v, userID)
		return err
	})
	if err != nil {
		return nil, err
	}

	index, err := search.NewIndex(visible, s.log)
	if err != nil {
		return nil, err
	}
	defer func() { _ = index.Close() }()

	ids, err := index.Search(context.Background(), q)
	if err != nil {
		return nil, err
	}
	byID := lo.KeyBy(visible, func(m domain.Message) string { return m.ID })
	return lo.FilterMap(ids, func(id string, _ int) (domain.Message, bool) {
		m, ok := byID[id]
		return m, ok
	}), nil
}

func (s *MessageService) visibleTo(reader storage.Reader, userID string) ([]domain.Message, error) {
	contacts, err := s.contacts.FindAllIn(reader)
	if err != nil {
		return nil, err
	}
	groups, err := s.groups.FindAllIn(reader)
	if err != nil {
		return nil, err
	}
	all, err := s.messages.FindAllIn(reader)
	if err != nil {
		return nil, err
	}

	peers := make(map[string]bool)
	for _, c := range contacts {
		switch userID {
		case c.UserID:
			peers[c.ContactUserID] = true
		case c.ContactUserID:
			peers[c.UserID] = true
		}
	}
	memberOf := make(map[string]bool)
	for _, g := range groups {
		if g.IsMember(userID) {
			memberOf[g.ID] = true
		}
	}

	return lo.Filter(all, func(m domain.Message, _ int) bool {
		if m.IsGroup() {
			return memberOf[m.ToGroup]
		}
		switch userID {
		case m.FromUser:
			return peers[m.ToUser]
		case m.ToUser:
			return peers[m.FromUser]
		}
		return false
	}), nil
}

// newMessage checks and moderates the content and stamps a new sent message.
func (s *MessageService) newMessage(from, content string, msgType domain.MessageType) (domain.Message, error) {
	if strings.TrimSpace(content) == "" {
		return domain.Message{}, errors.ErrEmptyContent
	}
	if !schema.ValidText(content) {
		return domain.Message{}, errors.ErrUnstorableContent
	}
	if n := utf8.RuneCountInString(content); n > s.maxContentLength {
		return domain.Message{}, fmt.Errorf("%w: %d characters, limit is %d", errors.ErrContentTooLong, n, s.maxContentLength)
	}
	if msgType == "" {
		msgType = domain.TypeText
	}
	if !msgType.Valid() {
		return domain.Message{}, fmt.Errorf("%w: %q", errors.ErrInvalidMessageType, msgType)
	}
	if s.censor != nil && msgType == domain.TypeText {
		var words []string
		content, words = s.censor.Censor(content)
		if len(words) > 0 {
			s.log.Info("Message content censored", "from", from, "words", len(words))
		}
	}
	return domain.Message{
		ID:        uuid.NewString(),
		Content:   content,
		FromUser:  from,
		Type:      msgType,
		Status:    domain.StatusSent,
		Timestamp: s.now().UTC().Round(0),
	}, nil
}

func sortByTimestamp(messages []domain.Message) {
	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].Timestamp.Before(messages[j].Timestamp)
	})
}
