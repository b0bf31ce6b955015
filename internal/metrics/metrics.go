package metrics

import (
	"sync"
	"time"
)

type providerStats struct {
	calls           int
	errors          int
	rateLimitHits   int
	lastRetryAfter  time.Duration
	lastCallLatency time.Duration
}

type replayStats struct {
	replays     int
	lastMatches int
	lastPlayers int
	lastLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about provider calls and
// engine replays. It is nil-safe so tests and optional wiring can pass nil.
type Recorder struct {
	mu     sync.Mutex
	stats  map[string]*providerStats
	replay replayStats
	otel   *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*providerStats),
		otel:  otel,
	}
}

// RecordProviderAttempt increments counters for a provider call and stores the last observed latency.
func (r *Recorder) RecordProviderAttempt(provider string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	stats := r.ensureStats(provider)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	if r.otel != nil {
		r.otel.recordProviderAttempt(provider, duration, err)
	}
}

// RecordRateLimit tracks that a provider response hit a rate limit and stores the last Retry-After.
func (r *Recorder) RecordRateLimit(provider string, retryAfter time.Duration) {
	if r == nil {
		return
	}

	stats := r.ensureStats(provider)
	stats.rateLimitHits++
	if retryAfter > 0 {
		stats.lastRetryAfter = retryAfter
	}
	if r.otel != nil {
		r.otel.recordRateLimit(provider, retryAfter)
	}
}

// RecordReplay tracks one full engine replay: how long it took and how much
// data it covered.
func (r *Recorder) RecordReplay(duration time.Duration, matches, players int) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.replay.replays++
	r.replay.lastMatches = matches
	r.replay.lastPlayers = players
	r.replay.lastLatency = duration
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordReplay(duration, matches, players)
	}
}

// RecordPollerCycle tracks poller cycles and errors.
func (r *Recorder) RecordPollerCycle(duration time.Duration, err error) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordPoller(duration, err)
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// ProviderCalls returns the total attempts recorded for a provider.
func (r *Recorder) ProviderCalls(provider string) int {
	return r.Snapshot(provider).Calls
}

// ProviderErrors returns the total failed attempts recorded for a provider.
func (r *Recorder) ProviderErrors(provider string) int {
	return r.Snapshot(provider).Errors
}

// RateLimitHits returns the number of rate limit events seen for a provider.
func (r *Recorder) RateLimitHits(provider string) int {
	return r.Snapshot(provider).RateLimitHits
}

// Replays returns the total engine replays recorded.
func (r *Recorder) Replays() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.replay.replays
}

// Snapshot returns a copy of the current stats for the provider.
type Snapshot struct {
	Calls           int
	Errors          int
	RateLimitHits   int
	LastRetryAfter  time.Duration
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(provider string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	stats := r.snapshot(provider)
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		RateLimitHits:   stats.rateLimitHits,
		LastRetryAfter:  stats.lastRetryAfter,
		LastCallLatency: stats.lastCallLatency,
	}
}

func (r *Recorder) ensureStats(provider string) *providerStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[provider]
	if !ok {
		stats = &providerStats{}
		r.stats[provider] = stats
	}
	return stats
}

func (r *Recorder) snapshot(provider string) providerStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	if stats, ok := r.stats[provider]; ok && stats != nil {
		return *stats
	}
	return providerStats{}
}
