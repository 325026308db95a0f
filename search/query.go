package search

import (
	"strconv"
	"strings"
)

const DefaultLimit = 10

// Query is a parsed search request. Free words become Terms; flags narrow the
// result set.
type Query struct {
	RawInput string
	Terms    string
	From     string
	Type     string
	Limit    int
}

// ParseQuery reads command-line style input.
// Example: "invoice march --from alice --type file --limit 5"
func ParseQuery(input string) Query {
	query := Query{RawInput: input, Limit: DefaultLimit}

	parts := strings.Fields(input)
	var textTerms []string
	for i := 0; i < len(parts); i++ {
		part := parts[i]
		if strings.HasPrefix(part, "--") && i+1 < len(parts) {
			val := parts[i+1]
			switch strings.TrimPrefix(part, "--") {
			case "from":
				query.From = val
			case "type":
				query.Type = val
			case "limit":
				if n, err := strconv.Atoi(val); err == nil && n > 0 {
					query.Limit = n
				}
			}
			i++
			continue
		}
		textTerms = append(textTerms, part)
	}

	query.Terms = strings.Join(textTerms, " ")
	return query
}

func (q Query) Empty() bool {
	return strings.TrimSpace(q.Terms) == ""
}
