package services

import (
	"chat-xml/domain"
	"chat-xml/storage"
)

// IntegrityReport lists the ids of messages breaking a cross-entity rule.
// A message can appear in more than one list.
type IntegrityReport struct {
	Checked          int
	MissingSender    []string
	MissingRecipient []string
	MissingGroup     []string
	MissingContact   []string
	SenderNotInGroup []string
}

func (r IntegrityReport) Issues() int {
	return len(r.MissingSender) + len(r.MissingRecipient) + len(r.MissingGroup) +
		len(r.MissingContact) + len(r.SenderNotInGroup)
}

func (r IntegrityReport) Clean() bool {
	return r.Issues() == 0
}

// ValidateDataIntegrity scans every message against users, contacts and groups.
// It never writes.
func (s *MessageService) ValidateDataIntegrity() (IntegrityReport, error) {
	var report IntegrityReport
	err := s.transactor.View(func(v *storage.View) error {
		messages, err := s.messages.FindAllIn(v)
		if err != nil {
			return err
		}
		contacts, err := s.contacts.FindAllIn(v)
		if err != nil {
			return err
		}
		groups, err := s.groups.FindAllIn(v)
		if err != nil {
			return err
		}
		byGroup := make(map[string]domain.Group, len(groups))
		for _, g := range groups {
			byGroup[g.ID] = g
		}
		connected := func(a, b string) bool {
			for _, c := range contacts {
				if c.Connects(a, b) {
					return true
				}
			}
			return false
		}

		report.Checked = len(messages)
		for _, m := range messages {
			senderExists := s.users.ExistsIn(v, m.FromUser)
			if !senderExists {
				report.MissingSender = append(report.MissingSender, m.ID)
			}
			if m.IsPrivate() {
				switch {
				case !s.users.ExistsIn(v, m.ToUser):
					report.MissingRecipient = append(report.MissingRecipient, m.ID)
				case senderExists && !connected(m.FromUser, m.ToUser):
					report.MissingContact = append(report.MissingContact, m.ID)
				}
				continue
			}
			group, ok := byGroup[m.ToGroup]
			switch {
			case !ok:
				report.MissingGroup = append(report.MissingGroup, m.ID)
			case !group.IsMember(m.FromUser):
				report.SenderNotInGroup = append(report.SenderNotInGroup, m.ID)
			}
		}
		return nil
	})
	if err != nil {
		return IntegrityReport{}, err
	}
	if !report.Clean() {
		s.log.Warn("Integrity issues found", "checked", report.Checked, "issues", report.Issues())
	}
	return report, nil
}
