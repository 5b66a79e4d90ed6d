package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"smartdna/internal/service"
)

var (
	analyzeFile   string
	analyzeJSON   bool
	analyzeJitter bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the DNA engine over a transcript fixture and print the report",
	RunE: func(cmd *cobra.Command, _ []string) error {
		fixture, err := LoadFixture(analyzeFile)
		if err != nil {
			return err
		}

		var jitter service.JitterSource = service.NoJitter{}
		if analyzeJitter {
			jitter = service.RandomJitter{}
		}
		engine := service.NewDNAEngine(jitter, logger)
		profile, err := engine.Analyze("cli", fixture.Company, fixture.Transcripts())
		if err != nil {
			return eris.Wrap(err, "analyze fixture")
		}
		report := service.BuildDNAReport(profile)

		out := cmd.OutOrStdout()
		if analyzeJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			if err := enc.Encode(map[string]any{"dna_profile": profile, "report": report}); err != nil {
				return eris.Wrap(err, "encode report")
			}
		} else {
			printReport(out, report)
		}

		if failures := fixture.Expect.Check(profile); len(failures) > 0 {
			for _, f := range failures {
				fmt.Fprintf(cmd.ErrOrStderr(), "FAIL %s\n", f)
			}
			return eris.Errorf("%d expectation(s) failed", len(failures))
		}
		return nil
	},
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeFile, "file", "f", "", "YAML transcript fixture")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "print profile and report as JSON")
	analyzeCmd.Flags().BoolVar(&analyzeJitter, "jitter", false, "apply random jitter to hub scores")
	_ = analyzeCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(analyzeCmd)
}

func printReport(w io.Writer, r service.DNAReport) {
	fmt.Fprintf(w, "%s\n\n", r.ExecutiveSummary)
	fmt.Fprintf(w, "Leadership:    %s\n", r.LeadershipProfile.Style)
	fmt.Fprintf(w, "Communication: %s\n", r.LeadershipProfile.Communication)
	fmt.Fprintf(w, "Decisions:     %s\n", r.LeadershipProfile.DecisionMaking)
	fmt.Fprintf(w, "Culture:       %s\n", r.LeadershipProfile.CulturalEmphasis)
	fmt.Fprintf(w, "Core values:   %s\n\n", strings.Join(r.CoreValues, ", "))

	fmt.Fprintln(w, "Rounds:")
	for _, s := range r.AssessmentScores {
		fmt.Fprintf(w, "  %-28s %5.1f\n", s.Name, s.Score)
	}
	fmt.Fprintln(w, "\nHubs:")
	for _, h := range r.HubRecommendations {
		fmt.Fprintf(w, "  %-14s %5.1f  %-8s %s\n", h.Hub, h.Score, h.Status, h.Recommendation)
	}
}
