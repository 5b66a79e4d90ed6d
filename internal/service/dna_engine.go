package service

import (
	"math/rand/v2"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"smartdna/internal/domain"
)

// JitterSource aporta el ruido que se suma a cada alineacion de hub.
type JitterSource interface {
	Jitter() float64
}

// NoJitter vuelve deterministas las alineaciones.
type NoJitter struct{}

func (NoJitter) Jitter() float64 { return 0 }

// RandomJitter devuelve ruido uniforme en [-5,5].
type RandomJitter struct{}

func (RandomJitter) Jitter() float64 {
	return rand.Float64()*2*hubJitterAmplitude - hubJitterAmplitude
}

// DNAEngine convierte las cinco transcripciones en un perfil DNA.
// No guarda estado entre llamadas; es seguro para uso concurrente si el
// JitterSource lo es.
type DNAEngine struct {
	jitter JitterSource
	now    func() time.Time
	logger *zap.Logger
}

func NewDNAEngine(jitter JitterSource, logger *zap.Logger) *DNAEngine {
	if jitter == nil {
		jitter = NoJitter{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DNAEngine{
		jitter: jitter,
		now:    func() time.Time { return time.Now().UTC() },
		logger: logger,
	}
}

// Analyze valida las transcripciones y construye el perfil completo.
func (e *DNAEngine) Analyze(userID, companyName string, transcripts []domain.Transcript) (domain.DNAProfile, error) {
	ordered, err := orderTranscripts(transcripts)
	if err != nil {
		return domain.DNAProfile{}, err
	}

	rounds := make([]domain.RoundResult, 0, len(ordered))
	for _, tr := range ordered {
		rounds = append(rounds, AnalyzeRound(tr.Round, tr.Content))
	}

	traits := AggregateTraits(rounds)
	scores := domain.RoundScores{
		Vision:         rounds[0].Score,
		ProblemSolving: rounds[1].Score,
		TeamCulture:    rounds[2].Score,
		Innovation:     rounds[3].Score,
		Impact:         rounds[4].Score,
	}

	profile := domain.DNAProfile{
		ID:                uuid.NewString(),
		UserID:            userID,
		CompanyName:       companyName,
		AssessedAt:        e.now(),
		LeadershipStyle:   LeadershipStyleFor(traits),
		CommunicationTone: CommunicationToneFor(traits),
		DecisionMaking:    DecisionStyleFor(traits),
		CoreValues:        CoreValues(rounds),
		CulturalEmphasis:  CulturalEmphasisFor(traits),
		RoundScores:       scores,
		HubAlignments:     HubAlignments(traits, scores, e.jitter),
		Traits:            traits,
	}

	e.logger.Info("dna profile computed",
		zap.String("user_id", userID),
		zap.String("leadership_style", string(profile.LeadershipStyle)),
		zap.Strings("core_values", profile.CoreValues),
	)
	return profile, nil
}

// orderTranscripts exige exactamente una transcripcion por ronda 1..5 y las
// devuelve ordenadas por ronda.
func orderTranscripts(transcripts []domain.Transcript) ([]domain.Transcript, error) {
	if len(transcripts) != domain.AssessmentRounds {
		return nil, &ValidationError{Field: "transcripts", Reason: "exactly 5 rounds are required"}
	}
	ordered := make([]domain.Transcript, domain.AssessmentRounds)
	seen := make([]bool, domain.AssessmentRounds)
	for _, tr := range transcripts {
		if tr.Round < 1 || tr.Round > domain.AssessmentRounds {
			return nil, &ValidationError{Field: "round_number", Reason: "must be between 1 and 5"}
		}
		if seen[tr.Round-1] {
			return nil, &ValidationError{Field: "round_number", Reason: "duplicated round"}
		}
		seen[tr.Round-1] = true
		ordered[tr.Round-1] = tr
	}
	return ordered, nil
}

// AnalyzeRound puntua una ronda con sus sets de palabras clave.
func AnalyzeRound(round int, transcript string) domain.RoundResult {
	sets := RoundKeywordSets(round)
	traits := ScoreTraits(transcript, sets)
	score := sumScores(traits, sets) * roundScoreMultiple
	if score > roundScoreCap {
		score = roundScoreCap
	}
	return domain.RoundResult{
		Round:     round,
		Traits:    traits,
		Score:     score,
		WordCount: len(strings.Fields(transcript)),
	}
}

// AggregateTraits combina las rondas en orden con promedio corrido y luego
// deriva los rasgos compuestos.
func AggregateTraits(rounds []domain.RoundResult) domain.TraitVector {
	all := make(domain.TraitVector)
	for _, r := range rounds {
		all.Merge(r.Traits)
	}
	all[domain.TraitLeadership] = (all.Value(domain.TraitVisionary) + all.Value(domain.TraitStrategic)) / 2
	all[domain.TraitCommunication] = (all.Value(domain.TraitInspiring) + all.Value(domain.TraitEmpathetic)) / 2
	all[domain.TraitInnovation] = (all.Value(domain.TraitInnovative) + all.Value(domain.TraitCreative)) / 2
	all[domain.TraitTeamBuilding] = (all.Value(domain.TraitCollaborative) + all.Value(domain.TraitInclusive)) / 2
	return all
}

func LeadershipStyleFor(traits domain.TraitVector) domain.LeadershipStyle {
	best := leadershipPairs[0]
	bestScore := traits.Value(best.A) + traits.Value(best.B)
	for _, p := range leadershipPairs[1:] {
		if s := traits.Value(p.A) + traits.Value(p.B); s > bestScore {
			best, bestScore = p, s
		}
	}
	return best.Style
}

func CommunicationToneFor(traits domain.TraitVector) domain.CommunicationTone {
	for _, rule := range toneLadder {
		if traits.Value(rule.Trait) > toneThreshold {
			return rule.Tone
		}
	}
	return domain.ToneSupportiveEmpowering
}

func DecisionStyleFor(traits domain.TraitVector) string {
	for _, rule := range decisionLadder {
		if traits.Value(rule.Trait) > toneThreshold {
			return rule.Label
		}
	}
	return defaultDecisionStyle
}

func CulturalEmphasisFor(traits domain.TraitVector) string {
	var parts []string
	for _, rule := range culturalRules {
		if traits.Value(rule.Trait) > culturalThreshold {
			parts = append(parts, rule.Label)
		}
	}
	if len(parts) == 0 {
		return defaultCulturalEmphasis
	}
	return strings.Join(parts, " and ")
}

// CoreValues acumula aportes por ronda y devuelve los 4 mejores; los empates
// conservan el orden del vocabulario.
func CoreValues(rounds []domain.RoundResult) []string {
	scores := make(map[string]float64, len(CoreValueVocabulary))
	for _, r := range rounds {
		for _, c := range coreValueContributions {
			for _, t := range c.Traits {
				scores[c.Value] += r.Traits.Value(t)
			}
		}
	}

	ranked := make([]string, len(CoreValueVocabulary))
	copy(ranked, CoreValueVocabulary)
	sort.SliceStable(ranked, func(i, j int) bool {
		return scores[ranked[i]] > scores[ranked[j]]
	})
	return ranked[:coreValueCount]
}

// HubAlignments calcula la alineacion 0.6*rasgos + 0.4*rondas + ruido por
// hub, acotada a [30,99].
func HubAlignments(traits domain.TraitVector, scores domain.RoundScores, jitter JitterSource) map[domain.Hub]float64 {
	if jitter == nil {
		jitter = NoJitter{}
	}
	out := make(map[domain.Hub]float64, len(hubTable))
	for _, hw := range hubTable {
		traitScore := 0.0
		for _, tw := range hw.Traits {
			val, ok := traits.Get(tw.Trait)
			if !ok {
				val = hubTraitDefault
			}
			traitScore += val * tw.Weight * 100
		}
		roundScore := 0.0
		for _, rw := range hw.Rounds {
			roundScore += scores.ByKind(rw.Kind) * rw.Weight
		}
		final := traitScore*hubTraitShare + roundScore*hubRoundShare + jitter.Jitter()
		out[hw.Hub] = clamp(final, hubScoreMin, hubScoreMax)
	}
	return out
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
