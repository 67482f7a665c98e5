package monitor

import (
	"context"
	"log"
	"time"

	"github.com/patrickmn/go-cache"

	"parking-lot-backend/internal/parking"
)

// LiveSessionsKey is the cache key under which the refreshed view is stored.
const LiveSessionsKey = "live_sessions"

// LiveSession is the display view of an active session with its elapsed
// duration formatted for rendering. It carries no state of its own.
type LiveSession struct {
	VehicleID string    `json:"vehicleId"`
	SlotID    int       `json:"slotId"`
	EntryTime time.Time `json:"entryTime"`
	Elapsed   string    `json:"elapsed"`
}

// Service periodically recomputes the elapsed durations of all active
// sessions into a cache. The refresh is read-only: it never touches the
// stored domain state.
type Service struct {
	engine   *parking.Engine
	cache    *cache.Cache
	interval time.Duration
}

// NewService creates a monitor refreshing every interval.
func NewService(engine *parking.Engine, c *cache.Cache, interval time.Duration) *Service {
	if interval <= 0 {
		interval = time.Second
	}
	return &Service{engine: engine, cache: c, interval: interval}
}

// Run refreshes the live view in a loop until the context is cancelled.
func (s *Service) Run(ctx context.Context) {
	log.Println("Starting session monitor...")

	s.RefreshOnce(time.Now().UTC())

	timer := time.NewTimer(s.interval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Session monitor shutting down.")
			return
		case <-timer.C:
			s.RefreshOnce(time.Now().UTC())
			timer.Reset(s.interval)
		}
	}
}

// RefreshOnce computes the live view as of now and stores it in the cache.
func (s *Service) RefreshOnce(now time.Time) []LiveSession {
	sessions := s.engine.ActiveSessions()
	view := make([]LiveSession, len(sessions))
	for i, sess := range sessions {
		view[i] = LiveSession{
			VehicleID: sess.VehicleID,
			SlotID:    sess.SlotID,
			EntryTime: sess.EntryTime,
			Elapsed:   parking.FormatDuration(now.Sub(sess.EntryTime)),
		}
	}
	s.cache.Set(LiveSessionsKey, view, cache.DefaultExpiration)
	return view
}

// LiveSessions reads the last refreshed view from the cache.
func LiveSessions(c *cache.Cache) ([]LiveSession, bool) {
	v, found := c.Get(LiveSessionsKey)
	if !found {
		return nil, false
	}
	view, ok := v.([]LiveSession)
	return view, ok
}
