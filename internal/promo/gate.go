// Package promo drives the daily promotional popup. The gate fires the popup
// automatically at most once per local calendar date, after a configurable
// delay from arming. Gating compares calendar-date strings, not elapsed time:
// a popup may legally fire at 23:59 and again shortly after midnight.
package promo

import (
	"context"
	"sync"
	"time"

	"github.com/tradespark/tradespark-api/pkg/logger"
	"github.com/tradespark/tradespark-api/pkg/metrics"
	"go.uber.org/zap"
)

// LastShownKey is the storage key holding the date the popup last auto-fired
const LastShownKey = "popup-last-shown-date"

const dateLayout = "2006-01-02"

// Storage is a durable string map, the gate's only persistent collaborator
type Storage interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// scheduleFunc schedules fn after d and returns a cancel function reporting
// whether the timer was stopped before firing
type scheduleFunc func(d time.Duration, fn func()) (cancel func() bool)

// Gate decides whether the popup is visible. Visibility is in-memory only;
// the last-shown date persists in Storage.
type Gate struct {
	storage  Storage
	now      func() time.Time
	schedule scheduleFunc

	mu      sync.Mutex
	visible bool
	cancel  func() bool
}

// NewGate creates a gate backed by real timers. now defaults to time.Now.
func NewGate(storage Storage, now func() time.Time) *Gate {
	return newGate(storage, now, func(d time.Duration, fn func()) func() bool {
		t := time.AfterFunc(d, fn)
		return t.Stop
	})
}

func newGate(storage Storage, now func() time.Time, schedule scheduleFunc) *Gate {
	if now == nil {
		now = time.Now
	}
	return &Gate{
		storage:  storage,
		now:      now,
		schedule: schedule,
	}
}

// Arm schedules the automatic popup for this session. If storage already
// records today's date the gate is satisfied and no timer is set. A storage
// read failure is treated as "not shown today" (fail open). Re-arming
// replaces any pending timer.
func (g *Gate) Arm(ctx context.Context, delay time.Duration) {
	today := g.now().Format(dateLayout)

	last, err := g.storage.Get(ctx, LastShownKey)
	if err != nil {
		logger.Warn("Popup gate storage read failed, arming anyway", zap.Error(err))
		last = ""
	}
	if last == today {
		logger.Debug("Popup already shown today, gate satisfied", zap.String("date", today))
		return
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.cancel != nil {
		g.cancel()
	}
	g.cancel = g.schedule(delay, func() { g.fire(today) })
}

// fire makes the popup visible and records the date. A storage write failure
// must not block the visible transition; the gate may then re-fire on the
// next session.
func (g *Gate) fire(date string) {
	g.mu.Lock()
	g.visible = true
	g.cancel = nil
	g.mu.Unlock()

	metrics.PopupImpressions.Inc()

	if err := g.storage.Set(context.Background(), LastShownKey, date); err != nil {
		logger.Warn("Popup gate storage write failed", zap.Error(err), zap.String("date", date))
	}
}

// Disarm cancels any pending timer. A disarmed gate neither shows the popup
// nor writes storage.
func (g *Gate) Disarm() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.cancel != nil {
		g.cancel()
		g.cancel = nil
	}
}

// Open makes the popup visible immediately. Manual overrides bypass the
// daily gate and never touch storage.
func (g *Gate) Open() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.visible = true
}

// Close hides the popup. Does not touch storage.
func (g *Gate) Close() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.visible = false
}

// Visible reports whether the popup is currently presented
func (g *Gate) Visible() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.visible
}
