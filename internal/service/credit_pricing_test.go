package service

import (
	"testing"

	"smartdna/internal/domain"
)

func TestContentCredits(t *testing.T) {
	scores := map[domain.Hub]float64{
		domain.HubHR:        95,
		domain.HubFinance:   80,
		domain.HubTech:      60,
		domain.HubSales:     40,
		domain.HubMarketing: 50,
	}
	subject := domain.AccessSubject{UserID: "u1", AssessmentCompleted: true, HubAlignments: scores}
	cases := []struct {
		hub         domain.Hub
		contentType string
		want        int
	}{
		{domain.HubHR, "document", 16},
		{domain.HubFinance, "document", 18},
		{domain.HubTech, "document", 20},
		{domain.HubSales, "document", 24},
		{domain.HubMarketing, "document", 20},
		{domain.HubOmni, "document", 20},
		{domain.HubHR, "text", 4},
		{domain.HubSales, "email", 8},
		{domain.HubTech, "podcast", 10},
		{domain.HubFinance, "image", 22},
	}
	for _, tc := range cases {
		if got := ContentCredits(subject, tc.hub, tc.contentType); got != tc.want {
			t.Fatalf("%s/%s: expected %d, got %d", tc.hub, tc.contentType, tc.want, got)
		}
	}
}

func TestContentCreditsSuperAdminPaysBase(t *testing.T) {
	admin := SuperAdminUser().AccessSubject()
	if got := ContentCredits(admin, domain.HubHR, "image"); got != 25 {
		t.Fatalf("expected base price 25, got %d", got)
	}
}
