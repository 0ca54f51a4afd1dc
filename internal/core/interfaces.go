package core

import (
	"context"

	"github.com/zhulik/namefilter/pkg/filter"
	"github.com/zhulik/namefilter/pkg/wld"
)

// DocumentMapFunc receives the current document content, empty if the document
// does not exist yet, and returns the content to store.
type DocumentMapFunc func(ctx context.Context, content []byte) ([]byte, error)

//go:generate go tool mockery
type Locker interface {
	Lock(ctx context.Context, key string) (context.Context, context.CancelFunc, error)
}

type PatternMatcher interface {
	PatternMatches(mode wld.Mode, subject, pattern string) (bool, error)
}

// DocumentStore persists the filter document as raw bytes.
type DocumentStore interface {
	// Load returns the document and its revision. A missing document is
	// returned as empty content with an empty revision.
	Load(ctx context.Context) ([]byte, string, error)
	// Revision returns the current revision without reading the document.
	Revision(ctx context.Context) (string, error)
	// Update atomically replaces the document with the result of fn.
	Update(ctx context.Context, fn DocumentMapFunc) error
}

type FilterBackend interface {
	GetFilters(ctx context.Context) ([]string, error)
	GetFilterByID(ctx context.Context, id string) (*filter.Filter, error)
	CreateFilter(ctx context.Context, f *filter.Filter) error
	UpdateFilter(ctx context.Context, f *filter.Filter) error
	DeleteFilter(ctx context.Context, id string) error
}
