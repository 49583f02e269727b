// Package changefeed fans table-level "something changed" signals out to
// subscribers. Signals carry no payload; subscribers re-fetch the data they
// care about.
package changefeed

import (
	"context"
	"errors"
	"sync"
	"time"
)

// Table names a watched database table.
type Table string

const (
	TableJob        Table = "job"
	TableUserJobs   Table = "user_jobs"
	TableProfiles   Table = "profiles"
	TablePunishment Table = "punishment"
)

// Valid reports whether the table is one of the watched tables.
func (t Table) Valid() bool {
	switch t {
	case TableJob, TableUserJobs, TableProfiles, TablePunishment:
		return true
	default:
		return false
	}
}

// Tables returns all watched tables.
func Tables() []Table {
	return []Table{TableJob, TableUserJobs, TableProfiles, TablePunishment}
}

// ErrWaiterRequired indicates a notifier cannot be constructed without a waiter.
var ErrWaiterRequired = errors.New("notifier waiter is required")

// Waiter blocks until the table changes or the context ends.
type Waiter interface {
	WaitForChange(ctx context.Context, table Table) error
}

// Notifier manages subscriptions for table change notifications.
type Notifier interface {
	Subscribe(table Table) (func(), <-chan struct{})
	StopAll()
}

// NotifierOptions configure the behaviour of the default notifier implementation.
type NotifierOptions struct {
	Waiter     Waiter
	WaitWindow time.Duration
	Backoff    time.Duration
}

// DefaultNotifier runs one listener goroutine per table with at least one
// subscriber and broadcasts coalesced signals to buffered channels.
type DefaultNotifier struct {
	waiter     Waiter
	waitWindow time.Duration
	backoff    time.Duration

	mu        sync.Mutex
	subs      map[Table]map[chan struct{}]struct{}
	listeners map[Table]context.CancelFunc
}

// NewNotifier constructs the default notifier implementation.
func NewNotifier(opts NotifierOptions) (*DefaultNotifier, error) {
	if opts.Waiter == nil {
		return nil, ErrWaiterRequired
	}

	waitWindow := opts.WaitWindow
	if waitWindow <= 0 {
		waitWindow = time.Minute
	}

	backoff := opts.Backoff
	if backoff <= 0 {
		backoff = 250 * time.Millisecond
	}

	return &DefaultNotifier{
		waiter:     opts.Waiter,
		waitWindow: waitWindow,
		backoff:    backoff,
		subs:       make(map[Table]map[chan struct{}]struct{}),
		listeners:  make(map[Table]context.CancelFunc),
	}, nil
}

// Subscribe registers interest in a table. The returned channel carries
// coalesced change signals; the returned function unsubscribes.
func (n *DefaultNotifier) Subscribe(table Table) (func(), <-chan struct{}) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if _, ok := n.listeners[table]; !ok {
		ctx, cancel := context.WithCancel(context.Background())
		n.listeners[table] = cancel
		go n.listenLoop(ctx, table)
	}

	ch := make(chan struct{}, 1)
	if n.subs[table] == nil {
		n.subs[table] = make(map[chan struct{}]struct{})
	}
	n.subs[table][ch] = struct{}{}

	unsub := func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		subscribers := n.subs[table]
		if subscribers == nil {
			return
		}
		if _, ok := subscribers[ch]; !ok {
			return
		}
		delete(subscribers, ch)
		drainAndClose(ch)
		if len(subscribers) == 0 {
			n.stopListener(table)
			delete(n.subs, table)
		}
	}

	return unsub, ch
}

// StopAll cancels every listener and closes every subscriber channel.
func (n *DefaultNotifier) StopAll() {
	n.mu.Lock()
	defer n.mu.Unlock()

	for table, cancel := range n.listeners {
		cancel()
		delete(n.listeners, table)
	}
	for table, subscribers := range n.subs {
		for ch := range subscribers {
			drainAndClose(ch)
		}
		delete(n.subs, table)
	}
}

func (n *DefaultNotifier) stopListener(table Table) {
	cancel, ok := n.listeners[table]
	if !ok {
		return
	}
	cancel()
	delete(n.listeners, table)
}

func (n *DefaultNotifier) listenLoop(ctx context.Context, table Table) {
	for ctx.Err() == nil {
		waitCtx, cancel := context.WithTimeout(ctx, n.waitWindow)
		err := n.waiter.WaitForChange(waitCtx, table)
		cancel()

		n.broadcast(table)

		if err != nil && ctx.Err() == nil {
			timer := time.NewTimer(n.backoff)
			select {
			case <-ctx.Done():
				if !timer.Stop() {
					<-timer.C
				}
				return
			case <-timer.C:
			}
		}
	}
}

func (n *DefaultNotifier) broadcast(table Table) {
	n.mu.Lock()
	defer n.mu.Unlock()

	for ch := range n.subs[table] {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// drainAndClose removes any buffered notifications before closing the channel
// so receivers observe a closed channel immediately.
func drainAndClose(ch chan struct{}) {
	for {
		select {
		case <-ch:
		default:
			close(ch)
			return
		}
	}
}

var _ Notifier = (*DefaultNotifier)(nil)
