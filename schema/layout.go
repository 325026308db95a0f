// Package schema holds the shape of the data document and the rules it must satisfy
// before any write is accepted.
package schema

// Namespace every element of the data document belongs to.
const Namespace = "http://whatsapp.clone/data"

const (
	RootTag = "data"
	IDAttr  = "id"

	UsersTag    = "users"
	UserTag     = "user"
	ContactsTag = "contacts"
	ContactTag  = "contact"
	GroupsTag   = "groups"
	GroupTag    = "group"
	MessagesTag = "messages"
	MessageTag  = "message"

	SettingsTag = "settings"
	SettingTag  = "setting"
	KeyAttr     = "key"

	MembersTag = "members"
	MemberTag  = "member"
	UserIDAttr = "user_id"
	RoleAttr   = "role"
)

// Section is a top-level container and the tag of the elements it holds.
type Section struct {
	Container string
	Element   string
}

// Sections in document order. Each appears exactly once under the root.
var Sections = []Section{
	{Container: UsersTag, Element: UserTag},
	{Container: ContactsTag, Element: ContactTag},
	{Container: GroupsTag, Element: GroupTag},
	{Container: MessagesTag, Element: MessageTag},
}

// allowedChildren lists the child elements each entity may carry, at most once each.
var allowedChildren = map[string][]string{
	UserTag:    {"name", "email", "status", SettingsTag},
	ContactTag: {"name", "user_id", "contact_user_id"},
	GroupTag:   {"name", "description", MembersTag},
	MessageTag: {"content", "type", "timestamp", "status", "from_user", "to_user", "to_group"},
}

// repeated lists optional containers and the single element kind they may repeat.
var repeated = map[string]string{
	SettingsTag: SettingTag,
	MembersTag:  MemberTag,
}
