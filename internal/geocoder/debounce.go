package geocoder

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/tmarchal/footprints/backend/internal/domain"
)

// DebounceDelay is the minimum quiescence between the last keystroke and the
// lookup it triggers.
const DebounceDelay = 300 * time.Millisecond

// minQueryLen is the shortest query worth sending to the geocoder; anything
// shorter immediately clears the candidate list.
const minQueryLen = 2

// LookupFunc is the geocoder call a Debouncer issues once input settles.
type LookupFunc func(ctx context.Context, query string) ([]domain.Candidate, error)

// ApplyFunc receives the candidates for the query that produced them.
// It is only ever called for the most recent query.
type ApplyFunc func(query string, candidates []domain.Candidate)

// Debouncer serializes a stream of keystrokes into geocoder lookups:
// a lookup is issued only after DebounceDelay of quiescence, and a stale
// in-flight lookup whose result arrives after a newer query was typed is
// cancelled and its result discarded (last-query-wins).
//
// Lookup failures degrade to an empty candidate list.
type Debouncer struct {
	lookup LookupFunc
	apply  ApplyFunc
	delay  time.Duration

	mu     sync.Mutex
	seq    uint64 // incremented on every Update; identifies the newest query
	timer  *time.Timer
	cancel context.CancelFunc // cancels the in-flight lookup, if any
}

// NewDebouncer constructs a Debouncer with the standard delay.
func NewDebouncer(lookup LookupFunc, apply ApplyFunc) *Debouncer {
	return newDebouncer(lookup, apply, DebounceDelay)
}

func newDebouncer(lookup LookupFunc, apply ApplyFunc, delay time.Duration) *Debouncer {
	return &Debouncer{lookup: lookup, apply: apply, delay: delay}
}

// Update registers a new query. Any pending or in-flight lookup for an older
// query is superseded. Queries shorter than two characters clear the
// candidate list without touching the geocoder.
func (d *Debouncer) Update(query string) {
	query = strings.TrimSpace(query)

	d.mu.Lock()
	d.seq++
	seq := d.seq
	d.supersedeLocked()

	if len(query) < minQueryLen {
		d.mu.Unlock()
		d.apply(query, []domain.Candidate{})
		return
	}

	d.timer = time.AfterFunc(d.delay, func() { d.fire(seq, query) })
	d.mu.Unlock()
}

// Stop cancels any pending or in-flight lookup.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seq++
	d.supersedeLocked()
}

// supersedeLocked tears down the pending timer and the in-flight lookup.
// Must be called with d.mu held.
func (d *Debouncer) supersedeLocked() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
}

// fire runs after the quiescence window. It re-checks that its query is still
// the newest before issuing the lookup, and again before applying the result.
func (d *Debouncer) fire(seq uint64, query string) {
	d.mu.Lock()
	if seq != d.seq {
		d.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	d.cancel = cancel
	d.mu.Unlock()

	candidates, err := d.lookup(ctx, query)
	if err != nil {
		candidates = []domain.Candidate{}
	}

	d.mu.Lock()
	if seq != d.seq {
		// A newer query arrived while the lookup was in flight.
		d.mu.Unlock()
		return
	}
	d.cancel = nil
	d.mu.Unlock()

	d.apply(query, candidates)
}
