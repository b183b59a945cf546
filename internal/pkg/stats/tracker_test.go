package stats

import (
	"testing"
	"time"
)

func TestTracker_Counters(t *testing.T) {
	tracker := &Tracker{
		failuresByStage: make(map[string]int),
		startedAt:       time.Now(),
	}

	tracker.RecordRequest()
	tracker.RecordRequest()
	tracker.RecordSuccess()
	tracker.RecordFailure("resolve_fixture")
	tracker.RecordFailure("resolve_fixture")
	tracker.RecordFailure("extract_odds")
	tracker.RecordProviderCall(100*time.Millisecond, true)
	tracker.RecordProviderCall(300*time.Millisecond, false)

	m := tracker.GetMetrics()

	if m.RequestsReceived != 2 {
		t.Errorf("requests = %d, want 2", m.RequestsReceived)
	}
	if m.AnalysesCompleted != 1 {
		t.Errorf("completed = %d, want 1", m.AnalysesCompleted)
	}
	if m.FailuresByStage["resolve_fixture"] != 2 || m.FailuresByStage["extract_odds"] != 1 {
		t.Errorf("failures by stage = %v", m.FailuresByStage)
	}
	if m.ProviderCalls != 2 || m.ProviderFailures != 1 {
		t.Errorf("provider calls = %d failures = %d", m.ProviderCalls, m.ProviderFailures)
	}
	if m.AvgProviderCallMs != 200 {
		t.Errorf("avg provider call = %v, want 200", m.AvgProviderCallMs)
	}
	if m.LastAnalysisAt == "" {
		t.Error("last_analysis_at should be set after a success")
	}
}

func TestTracker_SnapshotIsCopy(t *testing.T) {
	tracker := &Tracker{
		failuresByStage: make(map[string]int),
		startedAt:       time.Now(),
	}
	tracker.RecordFailure("input")

	m := tracker.GetMetrics()
	m.FailuresByStage["input"] = 99

	if got := tracker.GetMetrics().FailuresByStage["input"]; got != 1 {
		t.Errorf("mutating a snapshot leaked into the tracker: %d", got)
	}
}
