package stats

import (
	"sync"
	"time"
)

// Tracker accumulates process-wide counters for analysis requests and
// provider calls. Exposed as JSON through the health server's /metrics
// endpoint.
type Tracker struct {
	mu sync.RWMutex

	requestsReceived  int
	analysesCompleted int
	failuresByStage   map[string]int
	providerCalls     int
	providerFailures  int
	providerDuration  time.Duration
	lastAnalysisAt    time.Time
	startedAt         time.Time
}

// Metrics is a point-in-time snapshot of the tracker.
type Metrics struct {
	UptimeSeconds     int64          `json:"uptime_seconds"`
	RequestsReceived  int            `json:"requests_received"`
	AnalysesCompleted int            `json:"analyses_completed"`
	FailuresByStage   map[string]int `json:"failures_by_stage"`
	ProviderCalls     int            `json:"provider_calls"`
	ProviderFailures  int            `json:"provider_failures"`
	AvgProviderCallMs float64        `json:"avg_provider_call_ms"`
	LastAnalysisAt    string         `json:"last_analysis_at,omitempty"`
}

var globalTracker = &Tracker{
	failuresByStage: make(map[string]int),
	startedAt:       time.Now(),
}

// GetTracker returns the process-wide tracker.
func GetTracker() *Tracker {
	return globalTracker
}

// RecordRequest counts an incoming analysis request.
func (t *Tracker) RecordRequest() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.requestsReceived++
}

// RecordSuccess counts a completed analysis.
func (t *Tracker) RecordSuccess() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.analysesCompleted++
	t.lastAnalysisAt = time.Now()
}

// RecordFailure counts a pipeline failure at the named stage.
func (t *Tracker) RecordFailure(stage string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.failuresByStage[stage]++
}

// RecordProviderCall counts one provider HTTP round-trip.
func (t *Tracker) RecordProviderCall(duration time.Duration, success bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.providerCalls++
	t.providerDuration += duration
	if !success {
		t.providerFailures++
	}
}

// GetMetrics returns a snapshot safe to serialize.
func (t *Tracker) GetMetrics() Metrics {
	t.mu.RLock()
	defer t.mu.RUnlock()

	byStage := make(map[string]int, len(t.failuresByStage))
	for stage, n := range t.failuresByStage {
		byStage[stage] = n
	}

	m := Metrics{
		UptimeSeconds:     int64(time.Since(t.startedAt).Seconds()),
		RequestsReceived:  t.requestsReceived,
		AnalysesCompleted: t.analysesCompleted,
		FailuresByStage:   byStage,
		ProviderCalls:     t.providerCalls,
		ProviderFailures:  t.providerFailures,
	}
	if t.providerCalls > 0 {
		m.AvgProviderCallMs = float64(t.providerDuration.Milliseconds()) / float64(t.providerCalls)
	}
	if !t.lastAnalysisAt.IsZero() {
		m.LastAnalysisAt = t.lastAnalysisAt.UTC().Format(time.RFC3339)
	}
	return m
}
