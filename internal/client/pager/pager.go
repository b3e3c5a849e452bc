// Package pager accumulates page-numbered lists: refresh replaces, load-more
// appends. It refuses duplicate page requests and discards answers that
// arrive after the list moved on to another identity.
package pager

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/medfinder/internal/client/models"
)

// ErrSuperseded is returned when a page arrived after a Reset or Refresh
// made it irrelevant. The result was dropped.
var ErrSuperseded = errors.New("page result superseded")

// FetchFunc loads one 1-indexed page.
type FetchFunc[T any] func(ctx context.Context, page int) (models.Page[T], error)

type Pager[T any] struct {
	group *Group

	mu         sync.Mutex
	identity   string
	fetch      FetchFunc[T]
	generation uint64
	items      []T
	page       int
	total      int
	hasMore    bool
	err        error

	// nextID numbers requests. refreshID and appendID are the requests
	// whose results are still wanted, 0 when none is.
	nextID          uint64
	refreshID       uint64
	refreshIdentity string
	appendID        uint64
}

// New returns an empty pager for identity. group may be shared between
// pagers; nil gives the pager its own.
func New[T any](identity string, fetch FetchFunc[T], group *Group) *Pager[T] {
	if group == nil {
		group = NewGroup()
	}
	return &Pager[T]{group: group, identity: identity, fetch: fetch}
}

// Reset switches the pager to a new identity, forgets the accumulated items
// and loads page 1. When page 1 of that identity is already loading for
// this pager, the pending request is kept and Reset reports false.
func (p *Pager[T]) Reset(ctx context.Context, identity string, fetch FetchFunc[T]) (bool, error) {
	p.mu.Lock()
	p.identity, p.fetch = identity, fetch
	p.generation++
	p.items, p.page, p.total, p.hasMore, p.err = nil, 0, 0, false, nil
	p.appendID = 0
	if p.refreshID != 0 && p.refreshIdentity == identity {
		p.mu.Unlock()
		return false, nil
	}
	p.mu.Unlock()

	return p.Refresh(ctx)
}

// Refresh reloads page 1 and replaces the items. It reports whether a
// request was made; false means page 1 was already loading.
func (p *Pager[T]) Refresh(ctx context.Context) (bool, error) {
	return p.load(ctx, true)
}

// LoadMore fetches the next page and appends it. Without HasMore, while
// that page is already loading, or while page 1 is being reloaded, it makes
// no request and returns false.
func (p *Pager[T]) LoadMore(ctx context.Context) (bool, error) {
	return p.load(ctx, false)
}

func (p *Pager[T]) refreshing() bool {
	return p.refreshID != 0 && p.refreshIdentity == p.identity
}

func (p *Pager[T]) load(ctx context.Context, replace bool) (bool, error) {
	p.mu.Lock()
	page := 1
	if !replace {
		if !p.hasMore || p.refreshing() {
			p.mu.Unlock()
			return false, nil
		}
		page = p.page + 1
	}

	key := Key{Resource: p.identity, Page: page}
	done, ok := p.group.TryStart(key)
	if !ok {
		p.mu.Unlock()
		return false, nil
	}
	defer done()

	p.nextID++
	id := p.nextID
	if replace {
		// A page being appended belongs to the list this refresh replaces.
		p.generation++
		p.appendID = 0
		p.refreshID, p.refreshIdentity = id, key.Resource
	} else {
		p.appendID = id
	}
	gen, fetch := p.generation, p.fetch
	p.mu.Unlock()

	result, err := fetch(ctx, page)

	p.mu.Lock()
	defer p.mu.Unlock()

	if replace {
		if p.refreshID != id {
			return true, ErrSuperseded
		}
		p.refreshID = 0
		if p.identity != key.Resource {
			return true, ErrSuperseded
		}
	} else {
		if p.appendID != id {
			return true, ErrSuperseded
		}
		p.appendID = 0
		if gen != p.generation || p.page != page-1 {
			return true, ErrSuperseded
		}
	}

	if err != nil {
		p.err = err
		return true, err
	}

	if replace {
		p.items = append([]T(nil), result.Items...)
	} else {
		p.items = append(p.items, result.Items...)
	}
	p.page = page
	p.total = result.Total
	p.hasMore = len(result.Items) > 0 && page < result.TotalPages
	p.err = nil
	return true, nil
}

// Items returns a copy of the accumulated items.
func (p *Pager[T]) Items() []T {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]T(nil), p.items...)
}

func (p *Pager[T]) HasMore() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.hasMore
}

func (p *Pager[T]) Loading() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.refreshing() || p.appendID != 0
}

// Page is the last page loaded, 0 before the first load.
func (p *Pager[T]) Page() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.page
}

// Total is the backend's total count from the last page.
func (p *Pager[T]) Total() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.total
}

// Err is the error of the last completed load, nil after a success.
func (p *Pager[T]) Err() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.err
}

// Identity is the resource the pager currently lists.
func (p *Pager[T]) Identity() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.identity
}
