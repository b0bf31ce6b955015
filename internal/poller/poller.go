// Package poller drives the refresh loop: fetch the match list, replay the
// rating engine over it and publish the result.
package poller

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"tt-league-service/internal/domain"
	"tt-league-service/internal/elo"
	"tt-league-service/internal/logging"
	"tt-league-service/internal/metrics"
	"tt-league-service/internal/providers"
	"tt-league-service/internal/snapshots"
	"tt-league-service/internal/store"
)

const defaultInterval = 5 * time.Minute

// SnapshotWriter persists match list snapshots to disk.
type SnapshotWriter interface {
	WriteMatches(matches []domain.Match) error
}

// Poller fetches matches on an interval, replays the engine and swaps the
// fresh result into the store.
type Poller struct {
	provider providers.MatchProvider
	target   *store.MemoryStore
	writer   SnapshotWriter
	warmFrom snapshots.Store
	logger   *slog.Logger
	metrics  *metrics.Recorder
	interval time.Duration

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
func New(provider providers.MatchProvider, target *store.MemoryStore, writer SnapshotWriter, warmFrom snapshots.Store, logger *slog.Logger, recorder *metrics.Recorder, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Poller{
		provider: provider,
		target:   target,
		writer:   writer,
		warmFrom: warmFrom,
		logger:   logger,
		metrics:  recorder,
		interval: interval,
		done:     make(chan struct{}),
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
		logging.Info(p.logger, "poller started", slog.Int64(logging.FieldDurationMS, p.interval.Milliseconds()))
		p.warmFromSnapshot()
		p.fetchOnce(ctx)

		for {
			select {
			case <-ctx.Done():
				p.stopTicker()
				logging.Info(p.logger, "poller stopped")
				return
			case <-p.done:
				p.stopTicker()
				logging.Info(p.logger, "poller stopped")
				return
			case <-p.ticker.C:
				p.fetchOnce(ctx)
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

// Refresh runs one fetch/replay cycle outside the schedule (admin refresh).
func (p *Poller) Refresh(ctx context.Context) error {
	return p.fetchOnce(ctx)
}

// warmFromSnapshot replays the last persisted match list so the service can
// answer before the first upstream fetch succeeds. The warm result does not
// count as a poll success; readiness still waits for a live fetch.
func (p *Poller) warmFromSnapshot() {
	if p.warmFrom == nil {
		return
	}
	matches, err := p.warmFrom.LoadMatches()
	if err != nil {
		return
	}
	result, err := elo.Process(matches, elo.Options{})
	if err != nil {
		logging.Warn(p.logger, "snapshot replay failed", "error", err)
		return
	}
	p.target.SetResult(result, matches)
	logging.Info(p.logger, "warmed from snapshot", logging.FieldCount, len(matches))
}

func (p *Poller) fetchOnce(ctx context.Context) error {
	start := time.Now()
	p.recordAttempt(start)

	matches, err := p.provider.FetchMatches(ctx)
	if err == nil {
		var result *elo.Result
		replayStart := time.Now()
		result, err = elo.Process(matches, elo.Options{})
		if err == nil {
			p.metrics.RecordReplay(time.Since(replayStart), len(matches), len(result.Players))
			p.target.SetResult(result, matches)
			if p.writer != nil {
				if writeErr := p.writer.WriteMatches(matches); writeErr != nil {
					logging.Error(p.logger, "snapshot write failed", writeErr)
				}
			}
		}
	}

	p.metrics.RecordPollerCycle(time.Since(start), err)
	if err != nil {
		logging.Error(p.logger, "poller refresh failed", err,
			slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()))
		p.recordFailure(err, start)
		return err
	}

	p.recordSuccess(start)
	logging.Info(p.logger, "poller refreshed standings",
		logging.FieldCount, len(matches),
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
	return nil
}

func (p *Poller) stopTicker() {
	if p.ticker != nil {
		p.ticker.Stop()
	}
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

// Provider exposes the underlying provider (primarily for cleanup in callers).
func (p *Poller) Provider() providers.MatchProvider {
	return p.provider
}
