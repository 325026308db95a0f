package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"chat-xml/schema"
	"chat-xml/storage"

	"github.com/kelseyhightower/envconfig"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

type inspectConfig struct {
	DataFilepath string `envconfig:"DATA_FILEPATH" default:"data/chat.xml"`
	Kind         string `envconfig:"INSPECT_KIND" default:"users"`
}

var kinds = map[string]storage.Kind{
	schema.UsersTag:    storage.Users,
	schema.ContactsTag: storage.Contacts,
	schema.GroupsTag:   storage.Groups,
	schema.MessagesTag: storage.Messages,
}

func main() {
	var config inspectConfig
	if err := envconfig.Process("", &config); err != nil {
		log.Fatal("Config error: ", err)
	}
	path := flag.String("file", config.DataFilepath, "Path to the XML data file")
	kindName := flag.String("kind", config.Kind, "One of users, contacts, groups, messages")
	flag.Parse()

	kind, ok := kinds[*kindName]
	if !ok {
		log.Fatalf("Unknown kind %q", *kindName)
	}
	// Inspecting must never create a skeleton file.
	if _, err := os.Stat(*path); err != nil {
		log.Fatal("Data file not readable: ", err)
	}

	store, err := storage.Open(*path, schema.NewValidator(), logs.GetLoggerFromLevel(slog.LevelWarn))
	if err != nil {
		log.Fatal("Error while opening data file: ", err)
	}
	nodes, err := store.All(kind)
	if err != nil {
		log.Fatal(err)
	}

	columns := columnsOf(nodes)
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader(append([]string{"ID"}, columns...))
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	for _, n := range nodes {
		row := []string{n.ID()}
		for _, column := range columns {
			row = append(row, cell(n, column))
		}
		table.Append(row)
	}
	table.Render()
	fmt.Printf("\n%d %s\n", len(nodes), *kindName)
}

// columnsOf lists the child element names in order of first appearance.
func columnsOf(nodes []storage.Node) []string {
	var columns []string
	for _, n := range nodes {
		for _, c := range n.Children {
			columns = append(columns, c.Tag)
		}
	}
	return lo.Uniq(columns)
}

// cell prints a leaf as its text and a container as key=value pairs.
func cell(n storage.Node, column string) string {
	child, ok := n.Child(column)
	if !ok {
		return ""
	}
	if len(child.Children) == 0 {
		return child.Text
	}
	return strings.Join(lo.Map(child.Children, func(entry storage.Node, _ int) string {
		switch {
		case entry.Attr(schema.KeyAttr) != "":
			return entry.Attr(schema.KeyAttr) + "=" + entry.Text
		case entry.Attr(schema.UserIDAttr) != "":
			return entry.Attr(schema.UserIDAttr) + "=" + entry.Attr(schema.RoleAttr)
		default:
			return entry.Tag
		}
	}), " ")
}
