package search

import (
	"context"
	"fmt"
	"log/slog"

	"chat-xml/domain"

	"github.com/blugelabs/bluge"
	"github.com/blugelabs/bluge/analysis/analyzer"
)

const (
	contentField = "content"
	fromField    = "from"
	typeField    = "type"
	idField      = "_id"
)

// Index is a throwaway in-memory full-text index over a set of messages.
// It is built for one search and closed right after.
type Index struct {
	writer *bluge.Writer
	log    *slog.Logger
}

func NewIndex(messages []domain.Message, log *slog.Logger) (*Index, error) {
	writer, err := bluge.OpenWriter(bluge.InMemoryOnlyConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to open bluge writer: %w", err)
	}

	standard := analyzer.NewStandardAnalyzer()
	batch := bluge.NewBatch()
	for _, m := range messages {
		doc := bluge.NewDocument(m.ID).
			AddField(bluge.NewTextField(contentField, m.Content).WithAnalyzer(standard)).
			AddField(bluge.NewKeywordField(fromField, m.FromUser)).
			AddField(bluge.NewKeywordField(typeField, string(m.Type)))
		batch.Update(doc.ID(), doc)
	}
	if err := writer.Batch(batch); err != nil {
		_ = writer.Close()
		return nil, fmt.Errorf("failed to index messages: %w", err)
	}
	log.Debug("Messages indexed", "count", len(messages))
	return &Index{writer: writer, log: log}, nil
}

// Search returns the ids of matching messages, best match first.
func (i *Index) Search(ctx context.Context, q Query) ([]string, error) {
	reader, err := i.writer.Reader()
	if err != nil {
		return nil, err
	}
	defer func() { _ = reader.Close() }()

	query := bluge.NewBooleanQuery().
		AddMust(bluge.NewMatchQuery(q.Terms).
			SetField(contentField).
			SetAnalyzer(analyzer.NewStandardAnalyzer()))
	if q.From != "" {
		query.AddMust(bluge.NewTermQuery(q.From).SetField(fromField))
	}
	if q.Type != "" {
		query.AddMust(bluge.NewTermQuery(q.Type).SetField(typeField))
	}

	limit := q.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	matches, err := reader.Search(ctx, bluge.NewTopNSearch(limit, query))
	if err != nil {
		return nil, err
	}

	var ids []string
	match, err := matches.Next()
	for err == nil && match != nil {
		visitErr := match.VisitStoredFields(func(field string, value []byte) bool {
			if field == idField {
				ids = append(ids, string(value))
			}
			return true
		})
		if visitErr != nil {
			return nil, visitErr
		}
		match, err = matches.Next()
	}
	if err != nil {
		return nil, err
	}
	i.log.Debug("Search done", "terms", q.Terms, "hits", len(ids))
	return ids, nil
}

func (i *Index) Close() error {
	return i.writer.Close()
}
