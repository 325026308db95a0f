package schema

import "github.com/beevik/etree"

// Records are the typed view of an entity element the rules run against.
// Field names reported in violations come from the xml tags; ",attr" marks attributes.

type userRecord struct {
	ID       string          `xml:"id,attr" validate:"required,xmltext"`
	Name     string          `xml:"name" validate:"required,xmltext"`
	Email    string          `xml:"email" validate:"required,xmltext"`
	Status   string          `xml:"status" validate:"required,oneof=active inactive away busy"`
	Settings *settingsRecord `xml:"settings"`
}

type settingsRecord struct {
	Entries []settingRecord `xml:"setting" validate:"min=1,unique=Key,dive"`
}

type settingRecord struct {
	Key   string `xml:"key,attr" validate:"required,xmltext"`
	Value string `xml:"value" validate:"xmltext"`
}

type contactRecord struct {
	ID            string `xml:"id,attr" validate:"required,xmltext"`
	Name          string `xml:"name" validate:"required,xmltext"`
	UserID        string `xml:"user_id" validate:"required,xmltext"`
	ContactUserID string `xml:"contact_user_id" validate:"required,xmltext"`
}

type groupRecord struct {
	ID          string         `xml:"id,attr" validate:"required,xmltext"`
	Name        string         `xml:"name" validate:"required,xmltext"`
	Description string         `xml:"description" validate:"xmltext"`
	Members     *membersRecord `xml:"members"`
}

type membersRecord struct {
	Entries []memberRecord `xml:"member" validate:"min=1,unique=UserID,dive"`
}

type memberRecord struct {
	UserID string `xml:"user_id,attr" validate:"required,xmltext"`
	Role   string `xml:"role,attr" validate:"required,oneof=admin member"`
}

type messageRecord struct {
	ID        string `xml:"id,attr" validate:"required,xmltext"`
	Content   string `xml:"content" validate:"required,xmltext"`
	Type      string `xml:"type" validate:"required,oneof=text file image audio video"`
	Timestamp string `xml:"timestamp" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	Status    string `xml:"status" validate:"required,oneof=sent read"`
	FromUser  string `xml:"from_user" validate:"required,xmltext"`
	ToUser    string `xml:"to_user" validate:"required_without=ToGroup,excluded_with=ToGroup,xmltext"`
	ToGroup   string `xml:"to_group" validate:"required_without=ToUser,excluded_with=ToUser,xmltext"`
}

func decodeRecord(el *etree.Element) any {
	switch el.Tag {
	case UserTag:
		r := userRecord{
			ID:     el.SelectAttrValue(IDAttr, ""),
			Name:   childText(el, "name"),
			Email:  childText(el, "email"),
			Status: childText(el, "status"),
		}
		if settings := child(el, SettingsTag); settings != nil {
			r.Settings = &settingsRecord{}
			for _, s := range children(settings) {
				r.Settings.Entries = append(r.Settings.Entries, settingRecord{
					Key:   s.SelectAttrValue(KeyAttr, ""),
					Value: s.Text(),
				})
			}
		}
		return r
	case ContactTag:
		return contactRecord{
			ID:            el.SelectAttrValue(IDAttr, ""),
			Name:          childText(el, "name"),
			UserID:        childText(el, "user_id"),
			ContactUserID: childText(el, "contact_user_id"),
		}
	case GroupTag:
		r := groupRecord{
			ID:          el.SelectAttrValue(IDAttr, ""),
			Name:        childText(el, "name"),
			Description: childText(el, "description"),
		}
		if members := child(el, MembersTag); members != nil {
			r.Members = &membersRecord{}
			for _, m := range children(members) {
				r.Members.Entries = append(r.Members.Entries, memberRecord{
					UserID: m.SelectAttrValue(UserIDAttr, ""),
					Role:   m.SelectAttrValue(RoleAttr, ""),
				})
			}
		}
		return r
	case MessageTag:
		return messageRecord{
			ID:        el.SelectAttrValue(IDAttr, ""),
			Content:   childText(el, "content"),
			Type:      childText(el, "type"),
			Timestamp: childText(el, "timestamp"),
			Status:    childText(el, "status"),
			FromUser:  childText(el, "from_user"),
			ToUser:    childText(el, "to_user"),
			ToGroup:   childText(el, "to_group"),
		}
	}
	return nil
}

// children returns the child elements of el that live in the data namespace.
func children(el *etree.Element) []*etree.Element {
	var out []*etree.Element
	for _, c := range el.ChildElements() {
		if c.NamespaceURI() == Namespace {
			out = append(out, c)
		}
	}
	return out
}

func child(el *etree.Element, tag string) *etree.Element {
	for _, c := range children(el) {
		if c.Tag == tag {
			return c
		}
	}
	return nil
}

func childText(el *etree.Element, tag string) string {
	if c := child(el, tag); c != nil {
		return c.Text()
	}
	return ""
}
