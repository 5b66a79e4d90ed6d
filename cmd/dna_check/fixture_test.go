package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"smartdna/internal/domain"
)

func writeFixture(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixture.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestLoadFixtureTestdata(t *testing.T) {
	f, err := LoadFixture("testdata/acme.yaml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if f.Company != "Acme" {
		t.Fatalf("company = %q", f.Company)
	}
	transcripts := f.Transcripts()
	if len(transcripts) != 5 {
		t.Fatalf("expected 5 transcripts, got %d", len(transcripts))
	}
	for i, tr := range transcripts {
		if tr.Round != i+1 || tr.Content == "" {
			t.Fatalf("unexpected transcript %d: %+v", i, tr)
		}
	}
	if f.Expect == nil || f.Expect.MinHubScores["omnihub"] != 30 {
		t.Fatalf("expectations not parsed: %+v", f.Expect)
	}
}

func TestLoadFixtureRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"no company": "rounds:\n  - round: 1\n    transcript: hi\n",
		"no rounds":  "company: Acme\n",
		"bad hub":    "company: Acme\nrounds:\n  - round: 1\n    transcript: hi\nexpect:\n  min_hub_scores:\n    nohub: 10\n",
		"bad yaml":   "company: [\n",
	}
	for name, body := range cases {
		if _, err := LoadFixture(writeFixture(t, body)); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
	if _, err := LoadFixture(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestExpectationCheck(t *testing.T) {
	profile := domain.DNAProfile{
		LeadershipStyle: domain.LeadershipResultsDriver,
		HubAlignments:   map[domain.Hub]float64{domain.HubSales: 80, domain.HubHR: 40},
	}

	var nilExpect *Expectation
	if got := nilExpect.Check(profile); got != nil {
		t.Fatalf("nil expectation should pass, got %v", got)
	}

	pass := &Expectation{LeadershipStyle: "results driver", MinHubScores: map[string]float64{"saleshub": 75}}
	if got := pass.Check(profile); len(got) != 0 {
		t.Fatalf("expected no failures, got %v", got)
	}

	fail := &Expectation{LeadershipStyle: "Servant Leader", MinHubScores: map[string]float64{"hrhub": 60, "finhub": 1}}
	got := fail.Check(profile)
	if len(got) != 3 {
		t.Fatalf("expected 3 failures, got %v", got)
	}
	if !strings.HasPrefix(got[0], "hub finhub") || !strings.HasPrefix(got[2], "leadership style") {
		t.Fatalf("failures not sorted: %v", got)
	}
}

func TestAnalyzeCommandTestdata(t *testing.T) {
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs([]string{"analyze", "-f", "testdata/acme.yaml"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("analyze: %v (stderr %q)", err, errOut.String())
	}
	text := out.String()
	if !strings.HasPrefix(text, "Acme is led by a ") {
		t.Fatalf("unexpected summary: %q", text)
	}
	for _, hub := range domain.Hubs {
		if !strings.Contains(text, string(hub)) {
			t.Fatalf("report missing hub %s", hub)
		}
	}
}
