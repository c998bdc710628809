// Package browse owns the paginated result browsing state: filters, sort,
// current page, and the derived page-number window. It is the portal's
// answer to out-of-order responses: a request generation counter ensures
// the most recent request wins even when an older one resolves later.
package browse

import (
	"context"
	"net/url"
	"sync"

	"github.com/rimedu/resultats-portal-api/internal/models"
	"github.com/rimedu/resultats-portal-api/internal/search"
	appErrors "github.com/rimedu/resultats-portal-api/pkg/errors"
)

// State is the browser lifecycle state.
type State string

const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
	StateSuccess State = "success"
	StateError   State = "error"
)

// Searcher is the gateway slice the browser needs.
type Searcher interface {
	SearchResults(ctx context.Context, params url.Values) (*models.ResultPage, error)
}

// Snapshot is an immutable view of browser state handed to observers.
type Snapshot struct {
	State      State
	Results    []models.ExamResult
	Total      int
	Page       int
	Size       int
	TotalPages int
	HasNext    bool
	HasPrev    bool
	Window     []int
	Err        error
}

// Browser drives paginated searches. All mutations funnel through issue,
// which bumps the request generation; a resolving fetch only lands if its
// generation is still the newest.
type Browser struct {
	mu       sync.Mutex
	gateway  Searcher
	ctx      context.Context
	size     int
	onChange func(Snapshot)

	gen     uint64
	filters search.Filters
	sort    SortOrder

	state      State
	results    []models.ExamResult
	total      int
	page       int
	totalPages int
	hasNext    bool
	hasPrev    bool
	err        error
}

// New builds an idle browser. onChange (optional) fires after every
// terminal transition, outside the browser lock.
func New(ctx context.Context, gateway Searcher, size int, onChange func(Snapshot)) *Browser {
	if size <= 0 {
		size = search.DefaultPageSize
	}
	return &Browser{
		gateway:  gateway,
		ctx:      ctx,
		size:     size,
		onChange: onChange,
		state:    StateIdle,
		page:     1,
	}
}

// Snapshot returns the current state.
func (b *Browser) Snapshot() Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.snapshotLocked()
}

// SetFilters replaces the filter set, resets to page 1 and re-issues.
// A filter set without a discriminating criterion never reaches the
// gateway: the browser surfaces a local validation error instead.
func (b *Browser) SetFilters(filters search.Filters) {
	b.mu.Lock()
	b.filters = filters
	b.page = 1
	if !filters.HasCriterion() {
		b.gen++
		b.state = StateError
		b.err = appErrors.ErrMissingCriterion
		b.results = nil
		snapshot := b.snapshotLocked()
		b.mu.Unlock()
		b.notify(snapshot)
		return
	}
	b.issueLocked()
	b.mu.Unlock()
}

// SetSort changes the local sort pass and re-issues the current page.
func (b *Browser) SetSort(order SortOrder) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sort = order
	if !b.filters.HasCriterion() {
		return
	}
	b.issueLocked()
}

// NextPage advances one page. It is a no-op unless the server confirmed a
// next page exists; local arithmetic never outruns the server.
func (b *Browser) NextPage() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.state != StateSuccess || !b.hasNext {
		return false
	}
	b.page++
	b.issueLocked()
	return true
}

// PrevPage steps one page back, guarded by the server's has_prev.
func (b *Browser) PrevPage() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.state != StateSuccess || !b.hasPrev {
		return false
	}
	b.page--
	b.issueLocked()
	return true
}

// GoToPage jumps to an arbitrary page (clamped to 1..totalPages when the
// total is known) and re-issues.
func (b *Browser) GoToPage(page int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if page < 1 {
		page = 1
	}
	if b.totalPages > 0 && page > b.totalPages {
		page = b.totalPages
	}
	if !b.filters.HasCriterion() {
		return
	}
	b.page = page
	b.issueLocked()
}

func (b *Browser) issueLocked() {
	b.gen++
	gen := b.gen
	b.state = StateLoading
	b.err = nil
	params := search.BuildParams(b.filters, b.page, b.size)
	go b.fetch(gen, params)
}

func (b *Browser) fetch(gen uint64, params url.Values) {
	page, err := b.gateway.SearchResults(b.ctx, params)

	b.mu.Lock()
	if gen != b.gen {
		// A newer request superseded this one; drop the stale response.
		b.mu.Unlock()
		return
	}

	if err != nil {
		b.state = StateError
		b.err = err
		b.results = nil
	} else {
		b.state = StateSuccess
		results := make([]models.ExamResult, len(page.Results))
		copy(results, page.Results)
		ApplySort(results, b.sort)
		b.results = results
		b.total = page.Total
		b.page = page.Page
		b.totalPages = page.TotalPages
		b.hasNext = page.HasNext
		b.hasPrev = page.HasPrev
	}
	snapshot := b.snapshotLocked()
	b.mu.Unlock()

	b.notify(snapshot)
}

func (b *Browser) snapshotLocked() Snapshot {
	return Snapshot{
		State:      b.state,
		Results:    b.results,
		Total:      b.total,
		Page:       b.page,
		Size:       b.size,
		TotalPages: b.totalPages,
		HasNext:    b.hasNext,
		HasPrev:    b.hasPrev,
		Window:     PageWindow(b.page, b.totalPages),
		Err:        b.err,
	}
}

func (b *Browser) notify(snapshot Snapshot) {
	if b.onChange != nil {
		b.onChange(snapshot)
	}
}
