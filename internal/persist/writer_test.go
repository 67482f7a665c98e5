package persist

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parking-lot-backend/internal/model"
)

// recordingStore is a Store stub that records every saved snapshot.
type recordingStore struct {
	mu    sync.Mutex
	saved []model.Snapshot
	err   error
}

func (r *recordingStore) Save(_ context.Context, snap model.Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.saved = append(r.saved, snap)
	return nil
}

func (r *recordingStore) Load(context.Context) (model.Snapshot, bool, error) {
	return model.Snapshot{}, false, nil
}

func (r *recordingStore) snapshots() []model.Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Snapshot, len(r.saved))
	copy(out, r.saved)
	return out
}

func snapWithRate(rate float64) model.Snapshot {
	return model.Snapshot{Settings: model.Settings{ID: 1, SlotCount: 3, HourlyRate: rate}}
}

func TestWriter_DispatchCoalesces(t *testing.T) {
	st := &recordingStore{}
	w := NewWriter(st)

	// Queue three snapshots before the worker runs: only the newest matters.
	w.Dispatch(snapWithRate(1))
	w.Dispatch(snapWithRate(2))
	w.Dispatch(snapWithRate(3))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	assert.Eventually(t, func() bool {
		saved := st.snapshots()
		return len(saved) == 1 && saved[0].Settings.HourlyRate == 3
	}, 2*time.Second, 10*time.Millisecond, "only the latest queued snapshot is written")
}

func TestWriter_FlushWritesPending(t *testing.T) {
	st := &recordingStore{}
	w := NewWriter(st)

	w.Dispatch(snapWithRate(7))
	require.NoError(t, w.Flush(context.Background()))

	saved := st.snapshots()
	require.Len(t, saved, 1)
	assert.Equal(t, 7.0, saved[0].Settings.HourlyRate)

	// Nothing pending afterwards.
	require.NoError(t, w.Flush(context.Background()))
	assert.Len(t, st.snapshots(), 1)
}

func TestWriter_SaveFailureIsNotFatal(t *testing.T) {
	st := &recordingStore{err: errors.New("disk full")}
	w := NewWriter(st)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	w.Dispatch(snapWithRate(1))

	// The writer keeps running and accepts later snapshots.
	time.Sleep(50 * time.Millisecond)
	st.mu.Lock()
	st.err = nil
	st.mu.Unlock()

	w.Dispatch(snapWithRate(2))
	assert.Eventually(t, func() bool {
		saved := st.snapshots()
		return len(saved) == 1 && saved[0].Settings.HourlyRate == 2
	}, 2*time.Second, 10*time.Millisecond)
}
