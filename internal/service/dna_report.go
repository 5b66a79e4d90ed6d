package service

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"smartdna/internal/domain"
)

type LeadershipProfile struct {
	Style            string `json:"style"`
	Communication    string `json:"communication"`
	DecisionMaking   string `json:"decision_making"`
	CulturalEmphasis string `json:"cultural_emphasis"`
}

type AssessmentScore struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

type HubRecommendation struct {
	Hub            domain.Hub `json:"hub"`
	Score          float64    `json:"score"`
	Status         string     `json:"status"`
	Recommendation string     `json:"recommendation"`
}

// DNAReport es la vista legible de un perfil.
type DNAReport struct {
	ExecutiveSummary   string              `json:"executive_summary"`
	LeadershipProfile  LeadershipProfile   `json:"leadership_profile"`
	CoreValues         []string            `json:"core_values"`
	AssessmentScores   []AssessmentScore   `json:"assessment_scores"`
	HubRecommendations []HubRecommendation `json:"hub_recommendations"`
	ContentTips        []string            `json:"content_generation_tips"`
	AssessmentDate     time.Time           `json:"assessment_date"`
}

// BuildDNAReport arma el reporte a partir del perfil.
func BuildDNAReport(p domain.DNAProfile) DNAReport {
	return DNAReport{
		ExecutiveSummary: fmt.Sprintf("%s is led by a %s with %s communication style.",
			p.CompanyName, p.LeadershipStyle, p.CommunicationTone),
		LeadershipProfile: LeadershipProfile{
			Style:            string(p.LeadershipStyle),
			Communication:    string(p.CommunicationTone),
			DecisionMaking:   p.DecisionMaking,
			CulturalEmphasis: p.CulturalEmphasis,
		},
		CoreValues: p.CoreValues,
		AssessmentScores: []AssessmentScore{
			{Name: "Vision & Strategy", Score: p.RoundScores.Vision},
			{Name: "Problem Solving", Score: p.RoundScores.ProblemSolving},
			{Name: "Team & Culture", Score: p.RoundScores.TeamCulture},
			{Name: "Innovation", Score: p.RoundScores.Innovation},
			{Name: "Impact & Purpose", Score: p.RoundScores.Impact},
		},
		HubRecommendations: HubRecommendations(p.HubAlignments),
		ContentTips:        ContentTips(p),
		AssessmentDate:     p.AssessedAt,
	}
}

// HubRecommendations ordena los hubs por puntaje descendente; los empates
// respetan el orden de enumeracion.
func HubRecommendations(alignments map[domain.Hub]float64) []HubRecommendation {
	out := make([]HubRecommendation, 0, len(alignments))
	for _, h := range domain.Hubs {
		score, ok := alignments[h]
		if !ok {
			continue
		}
		status, rec := recommendationFor(score)
		out = append(out, HubRecommendation{Hub: h, Score: score, Status: status, Recommendation: rec})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}

func recommendationFor(score float64) (string, string) {
	switch {
	case score >= 80:
		return "Excellent Match", "Primary focus area - leverage heavily"
	case score >= 60:
		return "Good Match", "Regular usage recommended"
	case score >= 40:
		return "Moderate Match", "Use with guidance"
	default:
		return "Low Match", "Consider delegating or minimal use"
	}
}

// ContentTips sugiere como escribir segun estilo, tono y los dos primeros valores.
func ContentTips(p domain.DNAProfile) []string {
	var tips []string
	switch p.LeadershipStyle {
	case domain.LeadershipVisionaryInnovator:
		tips = append(tips, "Focus on future-oriented content with bold visions")
	case domain.LeadershipAnalyticalStrategist:
		tips = append(tips, "Include data, metrics, and logical frameworks")
	case domain.LeadershipCollaborativeBuilder:
		tips = append(tips, "Emphasize teamwork, inclusion, and collective success")
	}

	tone := string(p.CommunicationTone)
	if strings.Contains(tone, "Inspiring") {
		tips = append(tips, "Use motivational language and aspirational themes")
	} else if strings.Contains(tone, "Data-driven") {
		tips = append(tips, "Support claims with facts and evidence")
	}

	for i, v := range p.CoreValues {
		if i == 2 {
			break
		}
		tips = append(tips, "Regularly reinforce your commitment to "+v)
	}
	return tips
}
