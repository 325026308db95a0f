package search

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseQuery(t *testing.T) {
	t.Run("should split terms from flags", func(t *testing.T) {
		req := require.New(t)
		q := ParseQuery("invoice march --from alice --type file --limit 5")
		req.Equal("invoice march", q.Terms)
		req.Equal("alice", q.From)
		req.Equal("file", q.Type)
		req.Equal(5, q.Limit)
		req.False(q.Empty())
	})

	t.Run("should keep the default limit on a bad value", func(t *testing.T) {
		req := require.New(t)
		q := ParseQuery("lunch --limit many")
		req.Equal("lunch", q.Terms)
		req.Equal(DefaultLimit, q.Limit)
	})

	t.Run("should report a query made only of flags as empty", func(t *testing.T) {
		req := require.New(t)
		req.True(ParseQuery("--from bob").Empty())
		req.True(ParseQuery("   ").Empty())
	})
}
