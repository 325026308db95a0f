package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewGroup_Makes_The_Creator_Admin(t *testing.T) {
	req := require.New(t)

	g := NewGroup("g1", "Team", "", "alice")

	req.True(g.IsMember("alice"))
	req.True(g.IsAdmin("alice"))
	req.Equal([]string{"alice"}, g.Admins())
}

func TestGroup_Members(t *testing.T) {
	req := require.New(t)
	g := Group{ID: "g1", Members: map[string]Role{
		"carol": RoleMember,
		"alice": RoleAdmin,
		"bob":   RoleAdmin,
	}}

	req.Equal([]string{"alice", "bob", "carol"}, g.MemberIDs())
	req.Equal([]string{"alice", "bob"}, g.Admins())
	req.True(g.IsMember("carol"))
	req.False(g.IsAdmin("carol"))
	req.False(g.IsMember("dave"))
	req.False(g.IsAdmin("dave"))
}

func TestRole_Valid(t *testing.T) {
	req := require.New(t)
	req.True(RoleAdmin.Valid())
	req.True(RoleMember.Valid())
	req.False(Role("owner").Valid())
}

func TestContact_Connects_And_Reverse(t *testing.T) {
	req := require.New(t)
	c := Contact{ID: "c1", Name: "Bob", UserID: "alice", ContactUserID: "bob"}

	req.True(c.Connects("alice", "bob"))
	req.True(c.Connects("bob", "alice"))
	req.False(c.Connects("alice", "carol"))

	r := c.Reverse("c2", "Alice")
	req.Equal(Contact{ID: "c2", Name: "Alice", UserID: "bob", ContactUserID: "alice"}, r)
}
