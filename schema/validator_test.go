package schema

import (
	stderrors "errors"
	"testing"

	"chat-xml/errors"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/require"
)

const header = `<?xml version="1.0" encoding="UTF-8"?>`

func parse(t *testing.T, body string) *etree.Document {
	t.Helper()
	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromString(header+body))
	return doc
}

func wrap(users, contacts, groups, messages string) string {
	return `<data xmlns="http://whatsapp.clone/data">` +
		`<users>` + users + `</users>` +
		`<contacts>` + contacts + `</contacts>` +
		`<groups>` + groups + `</groups>` +
		`<messages>` + messages + `</messages>` +
		`</data>`
}

func TestValidator_Accepts_Valid_Documents(t *testing.T) {
	v := NewValidator()

	t.Run("should accept the empty skeleton", func(t *testing.T) {
		ok, violations := v.Validate(parse(t, wrap("", "", "", "")))
		require.True(t, ok)
		require.Empty(t, violations)
	})

	t.Run("should accept a fully populated document", func(t *testing.T) {
		doc := parse(t, wrap(
			`<user id="alice"><name>Alice</name><email>alice@example.com</email><status>active</status>`+
				`<settings><setting key="theme">dark</setting></settings></user>`+
				`<user id="bob"><name>Bob</name><email>bob@example.com</email><status>away</status></user>`,
			`<contact id="c1"><name>Bob</name><user_id>alice</user_id><contact_user_id>bob</contact_user_id></contact>`,
			`<group id="g1"><name>Team</name><members><member user_id="alice" role="admin"/></members></group>`,
			`<message id="m1"><content>hi</content><type>text</type><timestamp>2024-05-01T10:00:00.123Z</timestamp>`+
				`<status>sent</status><from_user>alice</from_user><to_user>bob</to_user></message>`+
				`<message id="m2"><content>yo</content><type>text</type><timestamp>2024-05-01T10:00:00+02:00</timestamp>`+
				`<status>read</status><from_user>alice</from_user><to_group>g1</to_group></message>`,
		))
		require.NoError(t, v.Check(doc))
	})

	t.Run("should accept prefixed elements bound to the data namespace", func(t *testing.T) {
		doc := parse(t, `<d:data xmlns:d="http://whatsapp.clone/data"><d:users/><d:contacts/><d:groups/><d:messages/></d:data>`)
		require.NoError(t, v.Check(doc))
	})
}

func TestValidator_Rejects_Invalid_Documents(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name      string
		body      string
		violation string
	}{
		{
			name:      "wrong namespace",
			body:      `<data xmlns="http://example.com/other"><users/><contacts/><groups/><messages/></data>`,
			violation: "root element must be data in namespace http://whatsapp.clone/data, got {http://example.com/other}data",
		},
		{
			name:      "missing container",
			body:      `<data xmlns="http://whatsapp.clone/data"><users/><contacts/><groups/></data>`,
			violation: "missing required child element messages under data",
		},
		{
			name:      "missing user email",
			body:      wrap(`<user id="u1"><name>Alice</name><status>active</status></user>`, "", "", ""),
			violation: "user[id=u1]: missing required child element email",
		},
		{
			name:      "missing id attribute",
			body:      wrap("", `<contact><name>B</name><user_id>a</user_id><contact_user_id>b</contact_user_id></contact>`, "", ""),
			violation: "contact[id=]: missing required attribute id",
		},
		{
			name:      "empty settings container",
			body:      wrap(`<user id="u1"><name>Alice</name><email>a@b.c</email><status>active</status><settings/></user>`, "", "", ""),
			violation: "user[id=u1]: empty container is not allowed, at least 1 setting element required",
		},
		{
			name:      "empty members container",
			body:      wrap("", "", `<group id="g1"><name>Team</name><members></members></group>`, ""),
			violation: "group[id=g1]: empty container is not allowed, at least 1 member element required",
		},
		{
			name:      "unknown role",
			body:      wrap("", "", `<group id="g1"><name>Team</name><members><member user_id="a" role="owner"/></members></group>`, ""),
			violation: `group[id=g1]: role must be one of [admin member], got "owner"`,
		},
		{
			name:      "duplicate member",
			body:      wrap("", "", `<group id="g1"><name>Team</name><members><member user_id="a" role="admin"/><member user_id="a" role="member"/></members></group>`, ""),
			violation: "group[id=g1]: member elements must have unique user_id",
		},
		{
			name:      "duplicate ids",
			body:      wrap(`<user id="u1"><name>A</name><email>a@b.c</email><status>active</status></user><user id="u1"><name>B</name><email>b@b.c</email><status>active</status></user>`, "", "", ""),
			violation: "user[id=u1]: duplicate id within users",
		},
		{
			name: "message with both recipients",
			body: wrap("", "", "", `<message id="m1"><content>hi</content><type>text</type><timestamp>2024-05-01T10:00:00Z</timestamp>`+
				`<status>sent</status><from_user>a</from_user><to_user>b</to_user><to_group>g</to_group></message>`),
			violation: "message[id=m1]: exactly one of to_user or to_group is required",
		},
		{
			name: "message without recipient",
			body: wrap("", "", "", `<message id="m1"><content>hi</content><type>text</type><timestamp>2024-05-01T10:00:00Z</timestamp>`+
				`<status>sent</status><from_user>a</from_user></message>`),
			violation: "message[id=m1]: exactly one of to_user or to_group is required",
		},
		{
			name: "bad timestamp",
			body: wrap("", "", "", `<message id="m1"><content>hi</content><type>text</type><timestamp>yesterday</timestamp>`+
				`<status>sent</status><from_user>a</from_user><to_user>b</to_user></message>`),
			violation: `message[id=m1]: timestamp must be an RFC 3339 timestamp, got "yesterday"`,
		},
		{
			name:      "unexpected child",
			body:      wrap("", `<contact id="c1"><name>B</name><user_id>a</user_id><contact_user_id>b</contact_user_id><note>x</note></contact>`, "", ""),
			violation: "contact[id=c1]: unexpected child element note",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			ok, violations := v.Validate(parse(t, tt.body))
			req.False(ok)
			req.Contains(violations, tt.violation)

			err := v.Check(parse(t, tt.body))
			req.ErrorIs(err, errors.ErrValidation)
			var schemaErr *errors.SchemaError
			req.True(stderrors.As(err, &schemaErr))
			req.Equal(violations, schemaErr.Violations)
		})
	}
}

func TestValidator_Rejects_Text_XML_Cannot_Carry(t *testing.T) {
	v := NewValidator()
	valid := wrap(
		`<user id="u1"><name>Alice</name><email>a@b.c</email><status>active</status>`+
			`<settings><setting key="theme">dark</setting></settings></user>`,
		"", "",
		`<message id="m1"><content>hi</content><type>text</type><timestamp>2024-05-01T10:00:00Z</timestamp>`+
			`<status>sent</status><from_user>u1</from_user><to_user>u1</to_user></message>`,
	)

	tests := []struct {
		name      string
		mutate    func(doc *etree.Document)
		violation string
	}{
		{
			name: "invalid utf-8 in content",
			mutate: func(doc *etree.Document) {
				doc.FindElement("//message/content").SetText("ok\xffbad")
			},
			violation: "message[id=m1]: content holds characters that cannot be stored in XML",
		},
		{
			name: "control character in content",
			mutate: func(doc *etree.Document) {
				doc.FindElement("//message/content").SetText("ctl\x01x")
			},
			violation: "message[id=m1]: content holds characters that cannot be stored in XML",
		},
		{
			name: "control character in a setting key",
			mutate: func(doc *etree.Document) {
				doc.FindElement("//setting").CreateAttr("key", "k\x01")
			},
			violation: "user[id=u1]: key holds characters that cannot be stored in XML",
		},
		{
			name: "control character in a setting value",
			mutate: func(doc *etree.Document) {
				doc.FindElement("//setting").SetText("dark\x1b")
			},
			violation: "user[id=u1]: value holds characters that cannot be stored in XML",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			doc := parse(t, valid)
			req.NoError(v.Check(doc))

			tt.mutate(doc)

			ok, violations := v.Validate(doc)
			req.False(ok)
			req.Contains(violations, tt.violation)
			req.ErrorIs(v.Check(doc), errors.ErrValidation)
		})
	}

	t.Run("should keep tabs, newlines and non latin text", func(t *testing.T) {
		req := require.New(t)
		doc := parse(t, valid)
		doc.FindElement("//message/content").SetText("line one\n\tline two, 日本語 😀")
		req.NoError(v.Check(doc))
	})
}

func TestValidText(t *testing.T) {
	req := require.New(t)
	req.True(ValidText(""))
	req.True(ValidText("héllo\r\n"))
	req.True(ValidText("\U0001F600"))
	req.False(ValidText("\xff"))
	req.False(ValidText("\x00"))
	req.False(ValidText("\x1f"))
	req.False(ValidText("\uFFFE"))
}

func TestValidator_Never_Mutates_The_Document(t *testing.T) {
	req := require.New(t)
	doc := parse(t, wrap(`<user id="u1"><name>A</name><status>active</status></user>`, "", "", ""))
	before, err := doc.WriteToString()
	req.NoError(err)

	NewValidator().Validate(doc)

	after, err := doc.WriteToString()
	req.NoError(err)
	req.Equal(before, after)
}

func TestDefinition_Matches_Published_Schema(t *testing.T) {
	req := require.New(t)
	def, err := LoadDefinition("../schemas/chat.xsd")
	req.NoError(err)
	req.Equal(Namespace, def.TargetNamespace)
	req.Equal(RootTag, def.Root)
	req.Equal([]string{UsersTag, ContactsTag, GroupsTag, MessagesTag}, def.Containers)
	req.NoError(def.Matches())

	def.TargetNamespace = "urn:other"
	req.Error(def.Matches())
}
