package crud

import (
	"context"
	"errors"
	"sync"
)

// State is the lifecycle of a list controller's current fetch.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateLoaded
	StateErrored
)

// String returns the lowercase state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateErrored:
		return "errored"
	default:
		return "unknown"
	}
}

// ErrNoPendingDelete is returned by ConfirmDelete when no deletion was
// requested or the request was already consumed.
var ErrNoPendingDelete = errors.New("crud: no pending delete")

// ListController presents a filterable, sortable, paginated view of one
// entity collection. It owns one live Query and the most recently fetched
// Page, both replaced wholesale on every successful fetch.
//
// Every fetch is tagged with a monotonically increasing sequence number and
// a response is discarded when a newer fetch has been issued since, so only
// the response to the most recently issued request is ever applied even
// when network responses arrive out of order.
type ListController[T Record] struct {
	mu       sync.Mutex
	collab   Collaborator[T]
	notifier Notifier

	query  Query
	page   Page[T]
	state  State
	loaded bool

	issued  uint64
	applied uint64

	pendingDelete string
	onEdit        func(T)
}

// ListOption configures a ListController.
type ListOption[T Record] func(*ListController[T])

// WithNotifier sets the notification channel for fetch and delete outcomes.
func WithNotifier[T Record](n Notifier) ListOption[T] {
	return func(c *ListController[T]) { c.notifier = n }
}

// WithOnEdit sets the hook receiving records handed over by RequestEdit,
// normally the Load method of the paired FormController.
func WithOnEdit[T Record](fn func(T)) ListOption[T] {
	return func(c *ListController[T]) { c.onEdit = fn }
}

// WithInitialQuery seeds the controller's query, typically restored from
// the address string via ParseValues.
func WithInitialQuery[T Record](q Query) ListOption[T] {
	return func(c *ListController[T]) { c.query = q.Normalize() }
}

// NewListController creates a controller over the given collaborator.
// Panics if collab is nil.
func NewListController[T Record](collab Collaborator[T], opts ...ListOption[T]) *ListController[T] {
	if collab == nil {
		panic("crud.NewListController: collaborator must not be nil")
	}
	c := &ListController[T]{
		collab:   collab,
		notifier: nopNotifier{},
		query:    DefaultQuery(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.notifier == nil {
		c.notifier = nopNotifier{}
	}
	return c
}

// Query returns the current query.
func (c *ListController[T]) Query() Query {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.query
}

// Page returns the most recently applied page.
func (c *ListController[T]) Page() Page[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page
}

// State returns the controller state.
func (c *ListController[T]) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// HasLoaded reports whether at least one page has ever been applied. While
// false, callers show a full-pane loading indicator instead of a table.
func (c *ListController[T]) HasLoaded() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loaded
}

// AppliedSequence returns the sequence number of the fetch whose response
// is currently displayed. It trails the issue counter whenever a response
// was discarded as stale.
func (c *ListController[T]) AppliedSequence() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.applied
}

// Window returns the pagination window for the current page.
func (c *ListController[T]) Window() []PageItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Window(c.page.LastPage, c.page.CurrentPage)
}

// SetQuery merges a partial update into the current query. Changing any
// filter field resets the page to 1. The caller is expected to follow up
// with Fetch; merging and fetching are deliberately separate so rapid
// refinements can coalesce into one request.
func (c *ListController[T]) SetQuery(u QueryUpdate) Query {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.query = c.query.Apply(u)
	return c.query
}

// Fetch issues a read for the current query and applies the resulting page.
// On failure the previously displayed page is retained and the error is
// surfaced via the notifier. Stale responses, those for which a newer
// fetch has been issued, are discarded without touching any state.
func (c *ListController[T]) Fetch(ctx context.Context) error {
	c.mu.Lock()
	c.issued++
	seq := c.issued
	q := c.query
	c.state = StateLoading
	c.mu.Unlock()

	page, err := c.collab.List(ctx, q)

	c.mu.Lock()
	defer c.mu.Unlock()

	if seq < c.issued {
		// A newer fetch was issued while this one was in flight.
		return nil
	}

	if err != nil {
		c.state = StateErrored
		c.notifier.Error("failed to load data", err)
		return err
	}

	c.page = page
	c.applied = seq
	c.state = StateLoaded
	c.loaded = true
	return nil
}

// RequestEdit hands the record to the paired form controller. The
// create/edit distinction is made there by presence of the record.
func (c *ListController[T]) RequestEdit(record T) {
	c.mu.Lock()
	fn := c.onEdit
	c.mu.Unlock()
	if fn != nil {
		fn(record)
	}
}

// RequestDelete opens a confirmation step for the identified record. The
// remote delete is not performed until ConfirmDelete.
func (c *ListController[T]) RequestDelete(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pendingDelete = id
}

// PendingDelete returns the identity awaiting confirmation, or "".
func (c *ListController[T]) PendingDelete() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pendingDelete
}

// CancelDelete abandons the pending confirmation.
func (c *ListController[T]) CancelDelete() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pendingDelete = ""
}

// ConfirmDelete performs the remote delete for the pending identity,
// exactly once per confirmation, and refetches on success. The deleted row
// is never removed optimistically: removal can shift subsequent pages, so
// the server stays the source of truth for page contents.
func (c *ListController[T]) ConfirmDelete(ctx context.Context) error {
	c.mu.Lock()
	id := c.pendingDelete
	c.pendingDelete = ""
	c.mu.Unlock()

	if id == "" {
		return ErrNoPendingDelete
	}

	if err := c.collab.Remove(ctx, id); err != nil {
		c.notifier.Error("delete failed", err)
		return err
	}

	c.notifier.Success("deleted", id)
	return c.Fetch(ctx)
}
