package domain

import "time"

// AssessmentRounds es la cantidad fija de rondas de una evaluacion.
const AssessmentRounds = 5

// LeadershipStyle es una de las 6 categorias fijas de liderazgo.
type LeadershipStyle string

const (
	LeadershipVisionaryInnovator     LeadershipStyle = "Visionary Innovator"
	LeadershipAnalyticalStrategist   LeadershipStyle = "Analytical Strategist"
	LeadershipCollaborativeBuilder   LeadershipStyle = "Collaborative Builder"
	LeadershipResultsDriver          LeadershipStyle = "Results Driver"
	LeadershipTransformationalLeader LeadershipStyle = "Transformational Leader"
	LeadershipServantLeader          LeadershipStyle = "Servant Leader"
)

// CommunicationTone es uno de los 6 tonos fijos de comunicacion.
type CommunicationTone string

const (
	ToneInspiringForward     CommunicationTone = "Inspiring and Forward-thinking"
	ToneDataDrivenPrecise    CommunicationTone = "Data-driven and Precise"
	ToneWarmInclusive        CommunicationTone = "Warm and Inclusive"
	ToneDirectAction         CommunicationTone = "Direct and Action-oriented"
	ToneVisionaryPassionate  CommunicationTone = "Visionary and Passionate"
	ToneSupportiveEmpowering CommunicationTone = "Supportive and Empowering"
)

// Hub es uno de los seis dominios funcionales.
type Hub string

const (
	HubHR        Hub = "hrhub"
	HubFinance   Hub = "finhub"
	HubTech      Hub = "techhub"
	HubSales     Hub = "saleshub"
	HubMarketing Hub = "marketinghub"
	HubOmni      Hub = "omnihub"
)

// Hubs en orden de enumeracion.
var Hubs = []Hub{HubHR, HubFinance, HubTech, HubSales, HubMarketing, HubOmni}

// ParseHub valida un identificador de hub.
func ParseHub(s string) (Hub, bool) {
	for _, h := range Hubs {
		if string(h) == s {
			return h, true
		}
	}
	return "", false
}

// RoundKind nombra el tema de cada ronda.
type RoundKind string

const (
	RoundVision         RoundKind = "vision"
	RoundProblemSolving RoundKind = "problem_solving"
	RoundTeamCulture    RoundKind = "team_culture"
	RoundInnovation     RoundKind = "innovation"
	RoundImpact         RoundKind = "impact"
)

// RoundKinds indexado por numero de ronda - 1.
var RoundKinds = []RoundKind{RoundVision, RoundProblemSolving, RoundTeamCulture, RoundInnovation, RoundImpact}

// Transcript es la transcripcion de una ronda tal como llega del cliente.
type Transcript struct {
	Round   int    `json:"round_number"`
	Content string `json:"transcript"`
}

// RoundResult es el resultado inmutable del analisis de una ronda.
type RoundResult struct {
	Round     int         `json:"round"`
	Traits    TraitVector `json:"traits"`
	Score     float64     `json:"score"`
	WordCount int         `json:"transcript_length"`
}

// RoundScores guarda el puntaje (0-100) de cada una de las cinco rondas.
type RoundScores struct {
	Vision         float64 `json:"vision"`
	ProblemSolving float64 `json:"problem_solving"`
	TeamCulture    float64 `json:"team_culture"`
	Innovation     float64 `json:"innovation"`
	Impact         float64 `json:"impact"`
}

// ByKind devuelve el puntaje de la ronda indicada.
func (s RoundScores) ByKind(kind RoundKind) float64 {
	switch kind {
	case RoundVision:
		return s.Vision
	case RoundProblemSolving:
		return s.ProblemSolving
	case RoundTeamCulture:
		return s.TeamCulture
	case RoundInnovation:
		return s.Innovation
	case RoundImpact:
		return s.Impact
	default:
		return 0
	}
}

// DNAProfile es el perfil CorePersonaDNA resultante de una evaluacion completa.
type DNAProfile struct {
	ID                string            `json:"id"`
	UserID            string            `json:"user_id"`
	CompanyName       string            `json:"company_name"`
	AssessedAt        time.Time         `json:"assessment_date"`
	LeadershipStyle   LeadershipStyle   `json:"leadership_style"`
	CommunicationTone CommunicationTone `json:"communication_tone"`
	DecisionMaking    string            `json:"decision_making"`
	CoreValues        []string          `json:"core_values"`
	CulturalEmphasis  string            `json:"cultural_emphasis"`
	RoundScores       RoundScores       `json:"round_scores"`
	HubAlignments     map[Hub]float64   `json:"hub_alignments"`
	Traits            TraitVector       `json:"personality_traits"`
}

// Context extrae el contexto DNA que consume el generador.
func (p DNAProfile) Context() DNAContext {
	values := make([]string, len(p.CoreValues))
	copy(values, p.CoreValues)
	return DNAContext{
		LeadershipStyle:   string(p.LeadershipStyle),
		CommunicationTone: string(p.CommunicationTone),
		CoreValues:        values,
		DecisionMaking:    p.DecisionMaking,
		CulturalEmphasis:  p.CulturalEmphasis,
	}
}

// DNAContext es la vista del perfil que se inyecta en los prompts.
type DNAContext struct {
	LeadershipStyle   string   `json:"leadership_style,omitempty"`
	CommunicationTone string   `json:"communication_tone,omitempty"`
	CoreValues        []string `json:"core_values,omitempty"`
	DecisionMaking    string   `json:"decision_making,omitempty"`
	CulturalEmphasis  string   `json:"cultural_emphasis,omitempty"`
}
