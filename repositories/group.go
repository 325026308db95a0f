//go:generate go run go.uber.org/mock/mockgen -source=group.go -destination=../mocks/mock_group_repository.go -package=mocks
package repositories

import (
	"chat-xml/domain"
	"chat-xml/errors"
	"chat-xml/schema"
	"chat-xml/storage"

	"github.com/samber/lo"
)

type IGroupRepository interface {
	Create(group domain.Group) error
	CreateIn(tx *storage.Tx, group domain.Group) error
	FindByID(id string) (domain.Group, error)
	FindByIDIn(reader storage.Reader, id string) (domain.Group, error)
	FindAll() ([]domain.Group, error)
	FindAllIn(reader storage.Reader) ([]domain.Group, error)
	FindByMember(userID string) ([]domain.Group, error)
	Update(group domain.Group) error
	UpdateIn(tx *storage.Tx, group domain.Group) error
	Delete(id string) error
	DeleteIn(tx *storage.Tx, id string) error
	Exists(id string) (bool, error)
}

type GroupRepository struct {
	Repository[domain.Group]
}

func NewGroupRepository(store *storage.Store) *GroupRepository {
	return &GroupRepository{
		Repository: NewRepository[domain.Group](store, storage.Groups, groupCodec{},
			errors.ErrGroupNotFound, errors.ErrGroupAlreadyExists),
	}
}

func (r *GroupRepository) FindByMember(userID string) ([]domain.Group, error) {
	groups, err := r.FindAll()
	if err != nil {
		return nil, err
	}
	return lo.Filter(groups, func(g domain.Group, _ int) bool {
		return g.IsMember(userID)
	}), nil
}

type groupCodec struct{}

func (groupCodec) ID(g domain.Group) string { return g.ID }

func (groupCodec) Encode(g domain.Group) storage.Node {
	members := lo.Map(g.MemberIDs(), func(userID string, _ int) storage.Node {
		return storage.NewNode(schema.MemberTag).
			WithAttr(schema.UserIDAttr, userID).
			WithAttr(schema.RoleAttr, string(g.Members[userID]))
	})
	return storage.NewNode(schema.GroupTag).
		WithAttr(schema.IDAttr, g.ID).
		WithField("name", g.Name).
		WithOptionalField("description", g.Description).
		WithContainer(schema.MembersTag, members...)
}

// Decode leaves Members nil when the element has no members container.
func (groupCodec) Decode(n storage.Node) (domain.Group, error) {
	group := domain.Group{
		ID:          n.ID(),
		Name:        n.Field("name"),
		Description: n.Field("description"),
	}
	if members, ok := n.Child(schema.MembersTag); ok {
		group.Members = make(map[string]domain.Role)
		for _, m := range members.ChildrenNamed(schema.MemberTag) {
			group.Members[m.Attr(schema.UserIDAttr)] = domain.Role(m.Attr(schema.RoleAttr))
		}
	}
	return group, nil
}
