package domain

import "sort"

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleMember
}

// Group members map a user id to its role. A persisted group always has at least
// one member.
type Group struct {
	ID          string
	Name        string
	Description string
	Members     map[string]Role
}

func NewGroup(id, name, description, creatorID string) Group {
	return Group{
		ID:          id,
		Name:        name,
		Description: description,
		Members:     map[string]Role{creatorID: RoleAdmin},
	}
}

func (g Group) IsMember(userID string) bool {
	_, ok := g.Members[userID]
	return ok
}

func (g Group) IsAdmin(userID string) bool {
	return g.Members[userID] == RoleAdmin
}

func (g Group) Admins() []string {
	var admins []string
	for id, role := range g.Members {
		if role == RoleAdmin {
			admins = append(admins, id)
		}
	}
	sort.Strings(admins)
	return admins
}

// MemberIDs returns member ids sorted, so encodings are stable.
func (g Group) MemberIDs() []string {
	ids := make([]string, 0, len(g.Members))
	for id := range g.Members {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
