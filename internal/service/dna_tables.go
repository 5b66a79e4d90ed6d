package service

import "smartdna/internal/domain"

// roundKeywordSets indexado por numero de ronda - 1.
var roundKeywordSets = [domain.AssessmentRounds][]TraitKeywords{
	{
		{Trait: domain.TraitVisionary, Keywords: []string{"vision", "future", "transform", "revolutionary"}},
		{Trait: domain.TraitStrategic, Keywords: []string{"strategy", "plan", "goal", "objective"}},
		{Trait: domain.TraitInspiring, Keywords: []string{"inspire", "motivate", "passion", "believe"}},
	},
	{
		{Trait: domain.TraitAnalytical, Keywords: []string{"analyze", "data", "metrics", "measure"}},
		{Trait: domain.TraitCreative, Keywords: []string{"innovative", "creative", "unique", "different"}},
		{Trait: domain.TraitSystematic, Keywords: []string{"process", "system", "framework", "method"}},
	},
	{
		{Trait: domain.TraitCollaborative, Keywords: []string{"team", "together", "collaborate", "we"}},
		{Trait: domain.TraitEmpathetic, Keywords: []string{"understand", "support", "care", "wellbeing"}},
		{Trait: domain.TraitInclusive, Keywords: []string{"diverse", "inclusive", "everyone", "belong"}},
	},
	{
		{Trait: domain.TraitInnovative, Keywords: []string{"innovate", "disrupt", "new", "cutting-edge"}},
		{Trait: domain.TraitGrowthOriented, Keywords: []string{"grow", "scale", "expand", "increase"}},
		{Trait: domain.TraitRiskTaking, Keywords: []string{"risk", "bold", "experiment", "try"}},
	},
	{
		{Trait: domain.TraitImpactDriven, Keywords: []string{"impact", "difference", "change", "matter"}},
		{Trait: domain.TraitPurposeOriented, Keywords: []string{"purpose", "meaning", "why", "mission"}},
		{Trait: domain.TraitLegacyFocused, Keywords: []string{"legacy", "lasting", "future", "generation"}},
	},
}

// RoundKeywordSets devuelve los sets de palabras de una ronda (1..5).
func RoundKeywordSets(round int) []TraitKeywords {
	if round < 1 || round > domain.AssessmentRounds {
		return nil
	}
	return roundKeywordSets[round-1]
}

type traitWeight struct {
	Trait  domain.TraitID
	Weight float64
}

type roundWeight struct {
	Kind   domain.RoundKind
	Weight float64
}

type hubWeights struct {
	Hub    domain.Hub
	Traits []traitWeight
	Rounds []roundWeight
}

// hubTable en orden de enumeracion de hubs. Los rasgos que ninguna ronda mide
// toman el valor por defecto al calcular la alineacion.
var hubTable = []hubWeights{
	{
		Hub: domain.HubHR,
		Traits: []traitWeight{
			{domain.TraitEmpathy, 0.25},
			{domain.TraitCommunication, 0.20},
			{domain.TraitTeamBuilding, 0.20},
			{domain.TraitFairness, 0.15},
			{domain.TraitMentoring, 0.10},
			{domain.TraitConflictResolution, 0.10},
		},
		Rounds: []roundWeight{
			{domain.RoundVision, 0.15},
			{domain.RoundProblemSolving, 0.10},
			{domain.RoundTeamCulture, 0.40},
			{domain.RoundInnovation, 0.15},
			{domain.RoundImpact, 0.20},
		},
	},
	{
		Hub: domain.HubFinance,
		Traits: []traitWeight{
			{domain.TraitAnalytical, 0.30},
			{domain.TraitDetailOriented, 0.25},
			{domain.TraitRiskManagement, 0.20},
			{domain.TraitStrategicPlanning, 0.15},
			{domain.TraitDecisionMaking, 0.10},
		},
		Rounds: []roundWeight{
			{domain.RoundVision, 0.20},
			{domain.RoundProblemSolving, 0.35},
			{domain.RoundTeamCulture, 0.10},
			{domain.RoundInnovation, 0.20},
			{domain.RoundImpact, 0.15},
		},
	},
	{
		Hub: domain.HubTech,
		Traits: []traitWeight{
			{domain.TraitInnovation, 0.25},
			{domain.TraitTechnicalAptitude, 0.20},
			{domain.TraitProblemSolving, 0.20},
			{domain.TraitSystematicThinking, 0.15},
			{domain.TraitQualityFocus, 0.10},
			{domain.TraitContinuousLearning, 0.10},
		},
		Rounds: []roundWeight{
			{domain.RoundVision, 0.15},
			{domain.RoundProblemSolving, 0.30},
			{domain.RoundTeamCulture, 0.10},
			{domain.RoundInnovation, 0.35},
			{domain.RoundImpact, 0.10},
		},
	},
	{
		Hub: domain.HubSales,
		Traits: []traitWeight{
			{domain.TraitPersuasion, 0.25},
			{domain.TraitRelationshipBuilding, 0.20},
			{domain.TraitGoalOrientation, 0.20},
			{domain.TraitResilience, 0.15},
			{domain.TraitCompetitiveSpirit, 0.10},
			{domain.TraitNegotiation, 0.10},
		},
		Rounds: []roundWeight{
			{domain.RoundVision, 0.25},
			{domain.RoundProblemSolving, 0.20},
			{domain.RoundTeamCulture, 0.20},
			{domain.RoundInnovation, 0.15},
			{domain.RoundImpact, 0.20},
		},
	},
	{
		Hub: domain.HubMarketing,
		Traits: []traitWeight{
			{domain.TraitCreativity, 0.25},
			{domain.TraitCommunication, 0.20},
			{domain.TraitMarketAwareness, 0.15},
			{domain.TraitBrandThinking, 0.15},
			{domain.TraitStorytelling, 0.15},
			{domain.TraitDataInterpretation, 0.10},
		},
		Rounds: []roundWeight{
			{domain.RoundVision, 0.30},
			{domain.RoundProblemSolving, 0.15},
			{domain.RoundTeamCulture, 0.15},
			{domain.RoundInnovation, 0.25},
			{domain.RoundImpact, 0.15},
		},
	},
	{
		Hub: domain.HubOmni,
		Traits: []traitWeight{
			{domain.TraitStrategicVision, 0.20},
			{domain.TraitAdaptability, 0.20},
			{domain.TraitCrossFunctional, 0.20},
			{domain.TraitLeadership, 0.20},
			{domain.TraitSystemsThinking, 0.10},
			{domain.TraitChangeManagement, 0.10},
		},
		Rounds: []roundWeight{
			{domain.RoundVision, 0.25},
			{domain.RoundProblemSolving, 0.20},
			{domain.RoundTeamCulture, 0.20},
			{domain.RoundInnovation, 0.20},
			{domain.RoundImpact, 0.15},
		},
	},
}

type leadershipPair struct {
	Style domain.LeadershipStyle
	A, B  domain.TraitID
}

// leadershipPairs en orden de enumeracion; el primero gana los empates.
var leadershipPairs = []leadershipPair{
	{domain.LeadershipVisionaryInnovator, domain.TraitVisionary, domain.TraitInnovative},
	{domain.LeadershipAnalyticalStrategist, domain.TraitAnalytical, domain.TraitStrategic},
	{domain.LeadershipCollaborativeBuilder, domain.TraitCollaborative, domain.TraitTeamBuilding},
	{domain.LeadershipResultsDriver, domain.TraitGrowthOriented, domain.TraitImpactDriven},
	{domain.LeadershipTransformationalLeader, domain.TraitInspiring, domain.TraitVisionary},
	{domain.LeadershipServantLeader, domain.TraitEmpathetic, domain.TraitPurposeOriented},
}

type toneRule struct {
	Trait domain.TraitID
	Tone  domain.CommunicationTone
}

var toneLadder = []toneRule{
	{domain.TraitInspiring, domain.ToneInspiringForward},
	{domain.TraitAnalytical, domain.ToneDataDrivenPrecise},
	{domain.TraitEmpathetic, domain.ToneWarmInclusive},
	{domain.TraitImpactDriven, domain.ToneDirectAction},
	{domain.TraitVisionary, domain.ToneVisionaryPassionate},
}

type labelRule struct {
	Trait domain.TraitID
	Label string
}

var decisionLadder = []labelRule{
	{domain.TraitAnalytical, "Data-driven with systematic analysis"},
	{domain.TraitCollaborative, "Consensus-building with team input"},
	{domain.TraitVisionary, "Intuitive with long-term vision"},
}

const defaultDecisionStyle = "Balanced approach with stakeholder consideration"

var culturalRules = []labelRule{
	{domain.TraitInnovative, "Innovation-driven"},
	{domain.TraitCollaborative, "Team-oriented"},
	{domain.TraitGrowthOriented, "Growth-focused"},
	{domain.TraitEmpathetic, "People-first"},
	{domain.TraitImpactDriven, "Purpose-driven"},
}

const defaultCulturalEmphasis = "Balanced and adaptive"

// CoreValueVocabulary es el vocabulario fijo de valores, en orden de enumeracion.
var CoreValueVocabulary = []string{
	"Innovation", "Excellence", "Integrity", "Collaboration", "Growth",
	"Impact", "Empathy", "Transparency", "Agility", "Sustainability",
}

type valueContribution struct {
	Value  string
	Traits []domain.TraitID
}

var coreValueContributions = []valueContribution{
	{"Innovation", []domain.TraitID{domain.TraitInnovative, domain.TraitCreative}},
	{"Excellence", []domain.TraitID{domain.TraitSystematic, domain.TraitAnalytical}},
	{"Collaboration", []domain.TraitID{domain.TraitCollaborative, domain.TraitInclusive}},
	{"Growth", []domain.TraitID{domain.TraitGrowthOriented, domain.TraitVisionary}},
	{"Impact", []domain.TraitID{domain.TraitImpactDriven, domain.TraitPurposeOriented}},
	{"Empathy", []domain.TraitID{domain.TraitEmpathetic}},
}

const (
	toneThreshold      = 0.7
	culturalThreshold  = 0.6
	coreValueCount     = 4
	hubTraitDefault    = 0.5
	hubTraitShare      = 0.6
	hubRoundShare      = 0.4
	hubScoreMin        = 30.0
	hubScoreMax        = 99.0
	hubJitterAmplitude = 5.0
	roundScoreMultiple = 10.0
	roundScoreCap      = 100.0
)
