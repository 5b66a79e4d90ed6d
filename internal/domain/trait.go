package domain

// TraitID identifica un rasgo de personalidad. El conjunto es cerrado.
type TraitID string

// Rasgos medidos por las rondas de la evaluacion (3 por ronda).
const (
	TraitVisionary       TraitID = "visionary"
	TraitStrategic       TraitID = "strategic"
	TraitInspiring       TraitID = "inspiring"
	TraitAnalytical      TraitID = "analytical"
	TraitCreative        TraitID = "creative"
	TraitSystematic      TraitID = "systematic"
	TraitCollaborative   TraitID = "collaborative"
	TraitEmpathetic      TraitID = "empathetic"
	TraitInclusive       TraitID = "inclusive"
	TraitInnovative      TraitID = "innovative"
	TraitGrowthOriented  TraitID = "growth_oriented"
	TraitRiskTaking      TraitID = "risk_taking"
	TraitImpactDriven    TraitID = "impact_driven"
	TraitPurposeOriented TraitID = "purpose_oriented"
	TraitLegacyFocused   TraitID = "legacy_focused"
)

// Rasgos compuestos, derivados una sola vez del vector ya combinado.
const (
	TraitLeadership    TraitID = "leadership"
	TraitCommunication TraitID = "communication"
	TraitInnovation    TraitID = "innovation"
	TraitTeamBuilding  TraitID = "team_building"
)

// Rasgos que solo aparecen en los mapas de hubs. Ninguna ronda los mide,
// asi que en la alineacion siempre toman el valor por defecto.
const (
	TraitEmpathy              TraitID = "empathy"
	TraitFairness             TraitID = "fairness"
	TraitMentoring            TraitID = "mentoring"
	TraitConflictResolution   TraitID = "conflict_resolution"
	TraitDetailOriented       TraitID = "detail_oriented"
	TraitRiskManagement       TraitID = "risk_management"
	TraitStrategicPlanning    TraitID = "strategic_planning"
	TraitDecisionMaking       TraitID = "decision_making"
	TraitTechnicalAptitude    TraitID = "technical_aptitude"
	TraitProblemSolving       TraitID = "problem_solving"
	TraitSystematicThinking   TraitID = "systematic_thinking"
	TraitQualityFocus         TraitID = "quality_focus"
	TraitContinuousLearning   TraitID = "continuous_learning"
	TraitPersuasion           TraitID = "persuasion"
	TraitRelationshipBuilding TraitID = "relationship_building"
	TraitGoalOrientation      TraitID = "goal_orientation"
	TraitResilience           TraitID = "resilience"
	TraitCompetitiveSpirit    TraitID = "competitive_spirit"
	TraitNegotiation          TraitID = "negotiation"
	TraitCreativity           TraitID = "creativity"
	TraitMarketAwareness      TraitID = "market_awareness"
	TraitBrandThinking        TraitID = "brand_thinking"
	TraitStorytelling         TraitID = "storytelling"
	TraitDataInterpretation   TraitID = "data_interpretation"
	TraitStrategicVision      TraitID = "strategic_vision"
	TraitAdaptability         TraitID = "adaptability"
	TraitCrossFunctional      TraitID = "cross_functional"
	TraitSystemsThinking      TraitID = "systems_thinking"
	TraitChangeManagement     TraitID = "change_management"
)

// ProfileTraits es el orden fijo de los rasgos que forman el embedding del perfil.
var ProfileTraits = []TraitID{
	TraitVisionary, TraitStrategic, TraitInspiring,
	TraitAnalytical, TraitCreative, TraitSystematic,
	TraitCollaborative, TraitEmpathetic, TraitInclusive,
	TraitInnovative, TraitGrowthOriented, TraitRiskTaking,
	TraitImpactDriven, TraitPurposeOriented, TraitLegacyFocused,
	TraitLeadership, TraitCommunication, TraitInnovation, TraitTeamBuilding,
}

// TraitVector mapea rasgos a intensidades normalizadas en [0,1].
type TraitVector map[TraitID]float64

// Get devuelve el valor del rasgo y si estaba presente.
func (v TraitVector) Get(id TraitID) (float64, bool) {
	val, ok := v[id]
	return val, ok
}

// Value devuelve el valor del rasgo o 0 si no existe.
func (v TraitVector) Value(id TraitID) float64 {
	return v[id]
}

// Merge combina otro vector sobre este con promedio corrido: si el rasgo ya
// existe se reemplaza por la media entre el valor previo y el nuevo.
func (v TraitVector) Merge(other TraitVector) {
	for id, val := range other {
		if prev, ok := v[id]; ok {
			v[id] = (prev + val) / 2
			continue
		}
		v[id] = val
	}
}

// Clone devuelve una copia independiente.
func (v TraitVector) Clone() TraitVector {
	out := make(TraitVector, len(v))
	for id, val := range v {
		out[id] = val
	}
	return out
}

// Embedding proyecta el vector sobre ProfileTraits (ausentes = 0).
func (v TraitVector) Embedding() []float32 {
	out := make([]float32, len(ProfileTraits))
	for i, id := range ProfileTraits {
		out[i] = float32(v[id])
	}
	return out
}
