package poller

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/preston-bernstein/sleeper-league-service/internal/logging"
	"github.com/preston-bernstein/sleeper-league-service/internal/metrics"
)

const defaultInterval = 6 * time.Hour

// Refresher reloads the player dictionary for one sport and reports how many players it holds.
// Warm may satisfy the load from an existing fresh copy; Refresh always goes upstream.
type Refresher interface {
	Warm(ctx context.Context, sport string) (int, error)
	Refresh(ctx context.Context, sport string) (int, error)
}

// Poller keeps player dictionaries warm by refreshing each configured sport on an interval.
type Poller struct {
	refresher Refresher
	sports    []string
	logger    *slog.Logger
	metrics   *metrics.Recorder
	interval  time.Duration
	now       func() time.Time

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the poller loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsReady reports whether the poller has had a recent success and is not failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// New constructs a Poller with sane defaults.
func New(refresher Refresher, sports []string, logger *slog.Logger, recorder *metrics.Recorder, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Poller{
		refresher: refresher,
		sports:    append([]string(nil), sports...),
		logger:    logger,
		metrics:   recorder,
		interval:  interval,
		now:       time.Now,
		done:      make(chan struct{}),
	}
}

// Start begins polling until the context is cancelled or Stop is called.
func (p *Poller) Start(ctx context.Context) {
	p.startMu.Lock()
	if p.started {
		p.startMu.Unlock()
		return
	}
	p.started = true
	p.startMu.Unlock()

	p.ticker = time.NewTicker(p.interval)

	go func() {
		p.logInfo("poller started", slog.Int64(logging.FieldDurationMS, p.interval.Milliseconds()))
		// Boot warm-up reuses fresh cached copies; ticks force a refetch.
		p.warmOnce(ctx)

		for {
			select {
			case <-ctx.Done():
				p.stopTicker()
				p.logInfo("poller stopped")
				return
			case <-p.done:
				p.stopTicker()
				p.logInfo("poller stopped")
				return
			case <-p.ticker.C:
				p.refreshOnce(ctx)
			}
		}
	}()
}

// Stop halts the polling loop.
func (p *Poller) Stop(ctx context.Context) error {
	_ = ctx
	p.stopOnce.Do(func() {
		close(p.done)
		p.stopTicker()
	})
	return nil
}

// warmOnce loads every sport, preferring fresh cached copies.
func (p *Poller) warmOnce(ctx context.Context) {
	p.cycle(ctx, "poller warmed player dictionaries", p.refresher.Warm)
}

// refreshOnce refetches every sport from upstream.
func (p *Poller) refreshOnce(ctx context.Context) {
	p.cycle(ctx, "poller refreshed player dictionaries", p.refresher.Refresh)
}

// cycle runs load for every sport. The cycle fails if any sport fails; the others still load.
func (p *Poller) cycle(ctx context.Context, doneMsg string, load func(context.Context, string) (int, error)) {
	start := p.now()
	p.recordAttempt(start)

	var errs []error
	total := 0
	for _, sport := range p.sports {
		n, err := load(ctx, sport)
		if err != nil {
			p.logError("player dictionary refresh failed", err, slog.String(logging.FieldSport, sport))
			errs = append(errs, err)
			continue
		}
		total += n
	}
	err := errors.Join(errs...)

	elapsed := p.now().Sub(start)
	p.metrics.RecordPollerCycle(elapsed, err)
	if err != nil {
		p.recordFailure(err, start)
		return
	}
	p.recordSuccess(start)
	p.logInfo(doneMsg,
		logging.FieldCount, total,
		logging.FieldDurationMS, elapsed.Milliseconds(),
	)
}

func (p *Poller) stopTicker() {
	if p.ticker != nil {
		p.ticker.Stop()
	}
}

func (p *Poller) logInfo(msg string, args ...any) {
	logging.Info(p.logger, msg, args...)
}

func (p *Poller) logError(msg string, err error, attrs ...any) {
	logging.Error(p.logger, msg, err, attrs...)
}

func (p *Poller) recordAttempt(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.LastAttempt = at
}

func (p *Poller) recordSuccess(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures = 0
	p.status.LastError = ""
	p.status.LastSuccess = at
}

func (p *Poller) recordFailure(err error, at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures++
	if err != nil {
		p.status.LastError = err.Error()
	}
	p.status.LastAttempt = at
}

// Status returns a snapshot of the poller's recent health.
func (p *Poller) Status() Status {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	return p.status
}

// Sports returns the sports this poller keeps warm.
func (p *Poller) Sports() []string {
	return append([]string(nil), p.sports...)
}
