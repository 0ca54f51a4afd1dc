package filters

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/zhulik/namefilter/internal/core"
	"github.com/zhulik/namefilter/pkg/filter"
)

const maxReloadErrors = 3

// Backend serves filters from an in-memory index of the stored document and
// writes changes through the store.
type Backend struct {
	Config *core.Config
	Store  core.DocumentStore
	Logger *slog.Logger

	revision    string
	filtersByID map[string]*filter.Filter

	rwLock sync.RWMutex
}

func (b *Backend) Init(ctx context.Context) error {
	err := b.Store.Update(ctx, func(_ context.Context, content []byte) ([]byte, error) {
		if len(content) == 0 {
			return encodeDocument(newDocument())
		}

		if _, err := decodeDocument(content); err != nil {
			return nil, err
		}

		return content, nil
	})
	if err != nil {
		return err
	}

	return b.reload(ctx)
}

func (b *Backend) GetFilters(_ context.Context) ([]string, error) {
	b.rwLock.RLock()
	defer b.rwLock.RUnlock()

	ids := slices.AppendSeq(make([]string, 0, len(b.filtersByID)), maps.Keys(b.filtersByID))
	slices.Sort(ids)

	return ids, nil
}

func (b *Backend) GetFilterByID(_ context.Context, id string) (*filter.Filter, error) {
	b.rwLock.RLock()
	defer b.rwLock.RUnlock()

	f, ok := b.filtersByID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", core.ErrFilterNotFound, id)
	}

	return f.Clone(), nil
}

func (b *Backend) CreateFilter(ctx context.Context, newFilter *filter.Filter) error {
	if err := validate(newFilter); err != nil {
		return err
	}

	return b.readWriteDocument(ctx, func(doc *Document) error {
		if _, ok := doc.Filters[newFilter.ID]; ok {
			return fmt.Errorf("%w: %s", core.ErrFilterAlreadyExists, newFilter.ID)
		}

		doc.Filters[newFilter.ID] = newFilter

		return nil
	})
}

func (b *Backend) UpdateFilter(ctx context.Context, updatedFilter *filter.Filter) error {
	if err := validate(updatedFilter); err != nil {
		return err
	}

	return b.readWriteDocument(ctx, func(doc *Document) error {
		if _, ok := doc.Filters[updatedFilter.ID]; !ok {
			return fmt.Errorf("%w: %s", core.ErrFilterNotFound, updatedFilter.ID)
		}

		doc.Filters[updatedFilter.ID] = updatedFilter

		return nil
	})
}

func (b *Backend) DeleteFilter(ctx context.Context, id string) error {
	return b.readWriteDocument(ctx, func(doc *Document) error {
		if _, ok := doc.Filters[id]; !ok {
			return fmt.Errorf("%w: %s", core.ErrFilterNotFound, id)
		}

		delete(doc.Filters, id)

		return nil
	})
}

// Run polls the store and reloads the index when the document changes.
func (b *Backend) Run(ctx context.Context) error {
	ticker := time.NewTicker(b.Config.FilterBackendPollInterval)
	defer ticker.Stop()

	errorsCount := 0

	var allErrors error

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			err := b.checkAndReload(ctx)
			if err == nil {
				errorsCount = 0
				allErrors = nil

				continue
			}

			errorsCount++
			allErrors = errors.Join(allErrors, err)
			b.Logger.Error("failed to check and reload filters", "error", err)

			if errorsCount > maxReloadErrors {
				return fmt.Errorf("failed to check and reload filters after %d attempts: %w", maxReloadErrors, allErrors)
			}
		}
	}
}

func validate(f *filter.Filter) error {
	if f == nil {
		return fmt.Errorf("%w: empty filter", filter.ErrInvalidFilter)
	}

	if err := core.ValidateFilterID(f.ID); err != nil {
		return err
	}

	return f.Validate()
}

func (b *Backend) readWriteDocument(ctx context.Context, op func(*Document) error) error {
	err := b.Store.Update(ctx, func(_ context.Context, content []byte) ([]byte, error) {
		doc, err := decodeDocument(content)
		if err != nil {
			return nil, err
		}

		if err := op(&doc); err != nil {
			return nil, err
		}

		return encodeDocument(doc)
	})
	if err != nil {
		return err
	}

	return b.reload(ctx)
}

func (b *Backend) checkAndReload(ctx context.Context) error {
	revision, err := b.Store.Revision(ctx)
	if err != nil {
		return err
	}

	b.rwLock.RLock()
	changed := revision != b.revision
	b.rwLock.RUnlock()

	if !changed {
		return nil
	}

	b.Logger.Info("filter document changed, reloading", "revision", revision)

	return b.reload(ctx)
}

func (b *Backend) reload(ctx context.Context) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	content, revision, err := b.Store.Load(ctx)
	if err != nil {
		return err
	}

	doc, err := decodeDocument(content)
	if err != nil {
		return err
	}

	b.rwLock.Lock()
	defer b.rwLock.Unlock()

	b.filtersByID = doc.Filters
	b.revision = revision

	return nil
}
