package persist

import (
	"context"
	"log"
	"sync"

	"parking-lot-backend/internal/model"
	"parking-lot-backend/internal/store"
)

// Writer persists domain snapshots in the background. Handlers dispatch a
// fresh snapshot after every successful mutation; because each snapshot is
// the complete state, queued snapshots coalesce and only the latest one is
// written. A failed write is logged and never rolled back into the domain:
// the in-memory state stays authoritative, it is just not yet durable.
type Writer struct {
	mu     sync.Mutex
	latest *model.Snapshot
	kick   chan struct{}
	store  store.Store
}

// NewWriter creates a writer backed by the given store.
func NewWriter(st store.Store) *Writer {
	return &Writer{
		kick:  make(chan struct{}, 1),
		store: st,
	}
}

// Dispatch queues a snapshot for persistence, replacing any snapshot still
// waiting. It never blocks the caller.
func (w *Writer) Dispatch(snap model.Snapshot) {
	w.mu.Lock()
	w.latest = &snap
	w.mu.Unlock()

	select {
	case w.kick <- struct{}{}:
	default:
	}
}

// Run processes queued snapshots until the context is cancelled.
func (w *Writer) Run(ctx context.Context) {
	log.Println("Snapshot writer started")
	for {
		select {
		case <-ctx.Done():
			log.Println("Snapshot writer shutting down")
			return
		case <-w.kick:
			w.writePending(ctx)
		}
	}
}

// Flush synchronously persists the pending snapshot, if any. Called on
// shutdown so the last mutation is not lost.
func (w *Writer) Flush(ctx context.Context) error {
	snap := w.takePending()
	if snap == nil {
		return nil
	}
	return w.store.Save(ctx, *snap)
}

func (w *Writer) writePending(ctx context.Context) {
	snap := w.takePending()
	if snap == nil {
		return
	}
	if err := w.store.Save(ctx, *snap); err != nil {
		log.Printf("Snapshot save failed, in-memory state remains authoritative: %v", err)
	}
}

func (w *Writer) takePending() *model.Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()
	snap := w.latest
	w.latest = nil
	return snap
}
