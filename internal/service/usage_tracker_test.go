package service

import (
	"math"
	"sync"
	"testing"

	"smartdna/internal/domain"
)

func TestUsageTrackerEmptySnapshot(t *testing.T) {
	stats := NewUsageTracker(testRegistry()).Snapshot()
	if stats.TotalRequests != 0 || stats.TotalCost != 0 || stats.AverageCostPerRequest != 0 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	if stats.MostUsedProvider != domain.ProviderNone {
		t.Fatalf("expected none, got %s", stats.MostUsedProvider)
	}
	if len(stats.ProviderUsage) != len(domain.Providers) {
		t.Fatalf("every provider should start at zero: %v", stats.ProviderUsage)
	}
}

func TestUsageTrackerCost(t *testing.T) {
	tracker := NewUsageTracker(testRegistry())
	// 4000 caracteres = 1000 tokens de entrada y de salida
	tracker.Record(domain.ProviderOpenAI, 4000, 4000)
	stats := tracker.Snapshot()
	if math.Abs(stats.TotalCost-0.04) > 1e-9 {
		t.Fatalf("expected cost 0.04, got %v", stats.TotalCost)
	}
	if stats.MostUsedProvider != domain.ProviderOpenAI {
		t.Fatalf("expected openai, got %s", stats.MostUsedProvider)
	}
}

func TestUsageTrackerMostUsedTieBreak(t *testing.T) {
	tracker := NewUsageTracker(testRegistry())
	tracker.Record(domain.ProviderGemini, 10, 10)
	tracker.Record(domain.ProviderAnthropic, 10, 10)
	if got := tracker.Snapshot().MostUsedProvider; got != domain.ProviderAnthropic {
		t.Fatalf("tie should favor enumeration order, got %s", got)
	}
}

func TestUsageTrackerConcurrentRecord(t *testing.T) {
	tracker := NewUsageTracker(testRegistry())
	const workers = 32
	const perWorker = 50

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			id := domain.Providers[w%len(domain.Providers)]
			for i := 0; i < perWorker; i++ {
				tracker.Record(id, 400, 400)
			}
		}(w)
	}
	wg.Wait()

	stats := tracker.Snapshot()
	if stats.TotalRequests != workers*perWorker {
		t.Fatalf("expected %d requests, got %d", workers*perWorker, stats.TotalRequests)
	}
	sum := 0
	for _, n := range stats.ProviderUsage {
		sum += n
	}
	if sum != stats.TotalRequests {
		t.Fatalf("provider usage %d does not add up to %d", sum, stats.TotalRequests)
	}
}

func TestUsageTrackerSnapshotIsCopy(t *testing.T) {
	tracker := NewUsageTracker(testRegistry())
	tracker.Record(domain.ProviderGroq, 4, 4)
	stats := tracker.Snapshot()
	stats.ProviderUsage[domain.ProviderGroq] = 100
	if got := tracker.Snapshot().ProviderUsage[domain.ProviderGroq]; got != 1 {
		t.Fatalf("snapshot mutation leaked into tracker: %d", got)
	}
}
