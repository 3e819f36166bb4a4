package queue

import (
	"context"
	"errors"
	"hash/fnv"
	"strconv"
	"sync"

	"github.com/rs/zerolog"

	"github.com/campulse/campulse-api/internal/core/ports"
	"github.com/campulse/campulse-api/internal/pkg/metrics"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

var (
	// ErrQueueFull is returned by Enqueue when the owner's worker has no room left.
	ErrQueueFull = errors.New("bookmark queue full")
	// ErrDispatcherClosed is returned by Enqueue once Shutdown has begun.
	ErrDispatcherClosed = errors.New("bookmark dispatcher closed")
)

// BookmarkToggler is the part of the opportunity service the workers call.
type BookmarkToggler interface {
	ToggleBookmark(ctx context.Context, cmd ports.BookmarkCommand) (bool, error)
}

// Dispatcher routes bookmark toggles to a fixed set of workers, hashing on the
// owner id so that one owner's toggles are applied in the order received.
// Every accepted toggle is applied before Shutdown returns.
type Dispatcher struct {
	workers []chan ports.BookmarkCommand
	service BookmarkToggler
	log     zerolog.Logger
	wg      sync.WaitGroup

	mu     sync.RWMutex
	closed bool
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service BookmarkToggler, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.BookmarkCommand, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.BookmarkCommand, channelBuffer)
	}
	return d
}

// Start launches the worker goroutines. Toggles run with ctx's values but
// not its cancellation; workers exit only after Shutdown closes their queue.
func (d *Dispatcher) Start(ctx context.Context) {
	ctx = context.WithoutCancel(ctx)
	for i, ch := range d.workers {
		d.wg.Add(1)
		go d.runWorker(ctx, i, ch)
	}
}

// Shutdown stops accepting toggles and waits for the queued ones to be
// applied, or for ctx to end.
func (d *Dispatcher) Shutdown(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		for _, ch := range d.workers {
			close(ch)
		}
	}
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Enqueue hands cmd to the worker responsible for its owner without blocking.
func (d *Dispatcher) Enqueue(cmd ports.BookmarkCommand) error {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		return ErrDispatcherClosed
	}

	idx := d.shardIndex(cmd.OwnerID)
	select {
	case d.workers[idx] <- cmd:
		metrics.BookmarkQueueDepth.WithLabelValues(strconv.Itoa(idx)).Inc()
		return nil
	default:
		return ErrQueueFull
	}
}

func (d *Dispatcher) shardIndex(ownerID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(ownerID))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.BookmarkCommand) {
	defer d.wg.Done()
	depth := metrics.BookmarkQueueDepth.WithLabelValues(strconv.Itoa(id))
	for cmd := range ch {
		depth.Dec()
		if _, err := d.service.ToggleBookmark(ctx, cmd); err != nil {
			d.log.Error().Err(err).
				Str("owner_id", cmd.OwnerID).
				Str("opportunity_id", cmd.OpportunityID).
				Int("worker_id", id).
				Msg("bookmark toggle failed")
		}
	}
}
