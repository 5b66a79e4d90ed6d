package service

import (
	"reflect"
	"testing"
	"time"

	"smartdna/internal/domain"
)

func assessedSubject(completedAt time.Time, scores map[domain.Hub]float64) domain.AccessSubject {
	return domain.AccessSubject{
		UserID:                "u1",
		AssessmentCompleted:   true,
		AssessmentCompletedAt: &completedAt,
		HubAlignments:         scores,
	}
}

func newTestAccessControl(now time.Time) *AccessControl {
	ac := NewAccessControl(60, 365, nil)
	ac.now = func() time.Time { return now }
	return ac
}

func TestCheckAccessAssessmentRequired(t *testing.T) {
	ac := newTestAccessControl(time.Now())
	for _, hub := range append([]domain.Hub{""}, domain.Hubs...) {
		d := ac.CheckAccess(domain.AccessSubject{UserID: "u1"}, hub)
		if d.Access || d.Reason != domain.ReasonDNAAssessmentRequired || d.Action != "/assessment/start" {
			t.Fatalf("hub %q: unexpected decision %+v", hub, d)
		}
	}
}

func TestCheckAccessSuperAdmin(t *testing.T) {
	ac := newTestAccessControl(time.Now())
	for _, hub := range domain.Hubs {
		d := ac.CheckAccess(domain.AccessSubject{UserID: "superadmin", SuperAdmin: true}, hub)
		if !d.Access || d.Reason != domain.ReasonSuperAdmin {
			t.Fatalf("hub %s: unexpected decision %+v", hub, d)
		}
		if d.HubScore == nil || *d.HubScore != 99 {
			t.Fatalf("hub %s: expected hub score 99, got %v", hub, d.HubScore)
		}
		for _, h := range domain.Hubs {
			if d.HubScores[h] != 99 {
				t.Fatalf("expected 99 for every hub, got %v", d.HubScores)
			}
		}
	}
	if d := ac.CheckAccess(domain.AccessSubject{SuperAdmin: true}, ""); d.HubScore != nil {
		t.Fatalf("no hub requested should leave hub score empty")
	}
}

func TestCheckAccessExpired(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	ac := newTestAccessControl(now)
	d := ac.CheckAccess(assessedSubject(now.AddDate(0, 0, -400), map[domain.Hub]float64{domain.HubHR: 90}), domain.HubHR)
	if d.Access || d.Reason != domain.ReasonDNAExpired || d.Action != "/assessment/refresh" {
		t.Fatalf("unexpected decision %+v", d)
	}
	if d.Message != "Your DNA profile is 400 days old. Please refresh your assessment." {
		t.Fatalf("unexpected message %q", d.Message)
	}

	d = ac.CheckAccess(assessedSubject(now.AddDate(0, 0, -365), map[domain.Hub]float64{domain.HubHR: 90}), domain.HubHR)
	if !d.Access {
		t.Fatalf("exactly at validity should still be valid: %+v", d)
	}
}

func TestCheckAccessLowAlignment(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	ac := newTestAccessControl(now)
	scores := map[domain.Hub]float64{
		domain.HubHR:        45.5,
		domain.HubFinance:   70,
		domain.HubTech:      30,
		domain.HubMarketing: 60,
	}
	d := ac.CheckAccess(assessedSubject(now.AddDate(0, 0, -10), scores), domain.HubHR)
	if d.Access || d.Reason != domain.ReasonLowHubAlignment {
		t.Fatalf("unexpected decision %+v", d)
	}
	if d.HubScore == nil || *d.HubScore != 45.5 {
		t.Fatalf("expected hub score 45.5, got %v", d.HubScore)
	}
	if d.Message != "Your DNA alignment with hrhub is 45.5%. Minimum 60% required." {
		t.Fatalf("unexpected message %q", d.Message)
	}
	want := []domain.Hub{domain.HubFinance, domain.HubMarketing}
	if !reflect.DeepEqual(d.RecommendedHubs, want) {
		t.Fatalf("expected %v, got %v", want, d.RecommendedHubs)
	}

	// hub sin puntaje cuenta como 0
	d = ac.CheckAccess(assessedSubject(now, scores), domain.HubOmni)
	if d.Access || d.HubScore == nil || *d.HubScore != 0 {
		t.Fatalf("missing hub should deny with score 0: %+v", d)
	}
}

func TestCheckAccessValid(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	ac := newTestAccessControl(now)
	scores := map[domain.Hub]float64{domain.HubSales: 75}
	d := ac.CheckAccess(assessedSubject(now.AddDate(0, 0, -65), scores), domain.HubSales)
	if !d.Access || d.Reason != domain.ReasonDNAValid {
		t.Fatalf("unexpected decision %+v", d)
	}
	if d.DaysRemaining != 300 {
		t.Fatalf("expected 300 days remaining, got %d", d.DaysRemaining)
	}
	if d.HubScores[domain.HubSales] != 75 {
		t.Fatalf("expected hub scores copy, got %v", d.HubScores)
	}

	d = ac.CheckAccess(assessedSubject(now, nil), "")
	if !d.Access {
		t.Fatalf("no hub requested skips the alignment check: %+v", d)
	}
}
