package domain

// HubInfo describe un hub para el catalogo publico.
type HubInfo struct {
	ID          Hub      `json:"id"`
	Name        string   `json:"name"`
	Icon        string   `json:"icon"`
	Color       string   `json:"color"`
	Description string   `json:"description"`
	Templates   []string `json:"templates"`
}

// HubCatalog en orden de enumeracion.
var HubCatalog = []HubInfo{
	{
		ID: HubHR, Name: "HRHub", Icon: "👥", Color: "#6366F1",
		Description: "Human Resources & Talent Management",
		Templates:   []string{"Job Description", "Interview Questions", "Onboarding Plan", "Performance Review", "Employee Handbook", "Training Material", "HR Policy"},
	},
	{
		ID: HubFinance, Name: "FinHub", Icon: "💰", Color: "#F59E0B",
		Description: "Finance & Business Operations",
		Templates:   []string{"Financial Report", "Budget Proposal", "Invoice Template", "Expense Report", "Financial Analysis", "Investment Proposal", "Cash Flow Statement"},
	},
	{
		ID: HubTech, Name: "TechHub", Icon: "⚙️", Color: "#10B981",
		Description: "Engineering, Manufacturing, Pharma, Heavy Industries",
		Templates:   []string{"Technical Documentation", "SOP Document", "Product Specification", "Test Report", "Technical Proposal", "System Architecture", "API Documentation"},
	},
	{
		ID: HubSales, Name: "SalesHub", Icon: "📈", Color: "#EC4899",
		Description: "Sales Strategy & Revenue Growth",
		Templates:   []string{"Sales Pitch", "Proposal Template", "Cold Email", "Follow-up Email", "Sales Report", "Quote Template", "Contract Template"},
	},
	{
		ID: HubMarketing, Name: "MarketingHub", Icon: "🎯", Color: "#3B82F6",
		Description: "Marketing & Brand Development",
		Templates:   []string{"Social Media Post", "Blog Article", "Email Campaign", "Press Release", "Marketing Plan", "Content Calendar", "Brand Guidelines"},
	},
	{
		ID: HubOmni, Name: "OmniHub", Icon: "🔄", Color: "#8B5CF6",
		Description: "Cross-functional Operations",
		Templates:   []string{"Company Announcement", "Meeting Agenda", "Project Brief", "Executive Summary", "Business Plan", "Strategy Document", "Quarterly Report"},
	},
}

// FindHubInfo busca un hub del catalogo por id.
func FindHubInfo(id string) (HubInfo, bool) {
	for _, h := range HubCatalog {
		if string(h.ID) == id {
			return h, true
		}
	}
	return HubInfo{}, false
}

// AssessmentRound describe las preguntas de una ronda.
type AssessmentRound struct {
	Round     int      `json:"round"`
	Title     string   `json:"title"`
	Duration  int      `json:"duration"`
	Questions []string `json:"questions"`
}

var AssessmentCatalog = []AssessmentRound{
	{Round: 1, Title: "Vision & Mission", Duration: 30, Questions: []string{"Tell us about your company's vision", "What problem are you solving?", "What makes your solution unique?"}},
	{Round: 2, Title: "Leadership Style", Duration: 30, Questions: []string{"Describe your leadership approach", "How do you handle difficult decisions?", "How do you motivate your team?"}},
	{Round: 3, Title: "Decision Making", Duration: 30, Questions: []string{"Walk us through a major decision", "How do you evaluate risks?", "How do you handle uncertainty?"}},
	{Round: 4, Title: "Communication", Duration: 30, Questions: []string{"How do you communicate vision?", "How do you handle conflicts?", "How do you ensure alignment?"}},
	{Round: 5, Title: "Innovation & Growth", Duration: 30, Questions: []string{"How do you foster innovation?", "What's your growth strategy?", "How do you adapt to change?"}},
}

// DemoPersonas son perfiles de demostracion disponibles para el superadmin.
var DemoPersonas = map[string]DNAContext{
	"visionary": {
		LeadershipStyle:   string(LeadershipVisionaryInnovator),
		CommunicationTone: string(ToneInspiringForward),
		CoreValues:        []string{"Innovation", "Excellence", "Growth", "Impact"},
		DecisionMaking:    "Intuitive with long-term vision",
		CulturalEmphasis:  "Innovation-driven and Growth-focused",
	},
	"analytical": {
		LeadershipStyle:   string(LeadershipAnalyticalStrategist),
		CommunicationTone: string(ToneDataDrivenPrecise),
		CoreValues:        []string{"Excellence", "Integrity", "Efficiency", "Transparency"},
		DecisionMaking:    "Data-driven with systematic analysis",
		CulturalEmphasis:  "Performance-driven and Process-oriented",
	},
	"collaborative": {
		LeadershipStyle:   string(LeadershipCollaborativeBuilder),
		CommunicationTone: string(ToneWarmInclusive),
		CoreValues:        []string{"Collaboration", "Empathy", "Integrity", "Growth"},
		DecisionMaking:    "Consensus-building with team input",
		CulturalEmphasis:  "Team-oriented and People-first",
	},
}
