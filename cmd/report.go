package main

import (
	"fmt"
	"io"
	"strings"

	"chat-xml/services"
	"chat-xml/storage"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

type inventory struct {
	users    int
	contacts int
	groups   int
}

func takeInventory(store *storage.Store) (inventory, error) {
	var inv inventory
	err := store.View(func(v *storage.View) error {
		inv = inventory{
			users:    v.Count(storage.Users),
			contacts: v.Count(storage.Contacts),
			groups:   v.Count(storage.Groups),
		}
		return nil
	})
	return inv, err
}

func printReport(w io.Writer, inv inventory, report services.IntegrityReport) {
	_, _ = fmt.Fprintf(w, "users=%d contacts=%d groups=%d messages=%d\n\n",
		inv.users, inv.contacts, inv.groups, report.Checked)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Check", "Messages", "IDs"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	rows := []struct {
		check string
		ids   []string
	}{
		{"missing sender", report.MissingSender},
		{"missing recipient", report.MissingRecipient},
		{"missing group", report.MissingGroup},
		{"missing contact", report.MissingContact},
		{"sender not in group", report.SenderNotInGroup},
	}
	for _, row := range rows {
		table.Append([]string{row.check, fmt.Sprint(len(row.ids)), shortIDs(row.ids)})
	}
	table.Render()

	summary := fmt.Sprintf(" %d issue(s) in %d message(s) ", report.Issues(), report.Checked)
	if report.Clean() {
		summary = color.New(color.BgBlack, color.FgGreen).Render(summary)
	} else {
		summary = color.New(color.BgBlack, color.FgRed).Render(summary)
	}
	_, _ = fmt.Fprintln(w, "\n"+summary)
}

// shortIDs keeps the table readable when uuids pile up.
func shortIDs(ids []string) string {
	const maxShown = 5
	shown := lo.Map(lo.Slice(ids, 0, maxShown), func(id string, _ int) string {
		if len(id) > 8 {
			return id[:8]
		}
		return id
	})
	out := strings.Join(shown, " ")
	if len(ids) > maxShown {
		out += fmt.Sprintf(" (+%d)", len(ids)-maxShown)
	}
	return out
}
