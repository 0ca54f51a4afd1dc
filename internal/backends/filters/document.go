package filters

import (
	"fmt"

	"github.com/zhulik/namefilter/internal/core"
	"github.com/zhulik/namefilter/pkg/codec"
	"github.com/zhulik/namefilter/pkg/filter"
)

// Document is the persisted form of all filters.
type Document struct {
	Version int                       `yaml:"version"`
	Filters map[string]*filter.Filter `yaml:"filters"`
}

func newDocument() Document {
	return Document{
		Version: core.DocumentVersion,
		Filters: map[string]*filter.Filter{},
	}
}

// decodeDocument parses and validates a stored document. Empty content is a
// new, empty document.
func decodeDocument(content []byte) (Document, error) {
	if len(content) == 0 {
		return newDocument(), nil
	}

	doc, err := codec.Unmarshal[Document](codec.FormatYAML, content)
	if err != nil {
		return Document{}, fmt.Errorf("failed to unmarshal filter document: %w", err)
	}

	if doc.Version != core.DocumentVersion {
		return Document{}, fmt.Errorf("%w: filter document version mismatch: expected %d, got %d",
			core.ErrConfigVersionMismatch, core.DocumentVersion, doc.Version)
	}

	if doc.Filters == nil {
		doc.Filters = map[string]*filter.Filter{}
	}

	for id, f := range doc.Filters {
		if f == nil {
			return Document{}, fmt.Errorf("%w: filter %s is empty", filter.ErrInvalidFilter, id)
		}

		if f.ID == "" {
			f.ID = id
		}

		if f.ID != id {
			return Document{}, fmt.Errorf("%w: filter stored as %s has Id %s", filter.ErrInvalidFilter, id, f.ID)
		}

		if err := f.Validate(); err != nil {
			return Document{}, fmt.Errorf("filter %s: %w", id, err)
		}
	}

	return doc, nil
}

func encodeDocument(doc Document) ([]byte, error) {
	return codec.Marshal(codec.FormatYAML, doc)
}
