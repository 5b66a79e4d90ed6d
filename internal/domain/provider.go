package domain

// ProviderID identifica un proveedor de generacion.
type ProviderID string

const (
	ProviderDeepInfra ProviderID = "deepinfra"
	ProviderOpenAI    ProviderID = "openai"
	ProviderAnthropic ProviderID = "anthropic"
	ProviderGroq      ProviderID = "groq"
	ProviderGemini    ProviderID = "gemini"

	// ProviderNone marca un resultado sin proveedor (servicio no disponible).
	ProviderNone ProviderID = "none"
)

// Providers en orden de enumeracion; define desempates en estadisticas.
var Providers = []ProviderID{ProviderDeepInfra, ProviderOpenAI, ProviderAnthropic, ProviderGroq, ProviderGemini}

// FallbackOrder recorre proveedores del mas barato al mas caro.
var FallbackOrder = []ProviderID{ProviderDeepInfra, ProviderGroq, ProviderGemini, ProviderOpenAI, ProviderAnthropic}

// TaskCategory clasifica un pedido de generacion para el ruteo.
type TaskCategory string

const (
	TaskSimple      TaskCategory = "simple"
	TaskCreative    TaskCategory = "creative"
	TaskTechnical   TaskCategory = "technical"
	TaskAnalysis    TaskCategory = "analysis"
	TaskTranslation TaskCategory = "translation"
	TaskImage       TaskCategory = "image"
)

// ParseTaskCategory acepta las categorias conocidas; el resto cae en simple.
func ParseTaskCategory(s string) TaskCategory {
	switch TaskCategory(s) {
	case TaskSimple, TaskCreative, TaskTechnical, TaskAnalysis, TaskTranslation, TaskImage:
		return TaskCategory(s)
	default:
		return TaskSimple
	}
}

// ProviderConfig es la configuracion estatica de un proveedor.
type ProviderConfig struct {
	ID              ProviderID `json:"name"`
	Model           string     `json:"model"`
	APIKey          string     `json:"-"`
	BaseURL         string     `json:"base_url"`
	CostPer1KInput  float64    `json:"cost_per_1k_input"`
	CostPer1KOutput float64    `json:"cost_per_1k_output"`
	MaxTokens       int        `json:"max_tokens"`
	SupportsImages  bool       `json:"supports_images"`
	ImageModel      string     `json:"image_model,omitempty"`
}

// Available indica si hay credencial; sin ella el proveedor no es seleccionable.
func (c ProviderConfig) Available() bool {
	return c.APIKey != ""
}

// Cost calcula el costo para los contadores de tokens dados.
func (c ProviderConfig) Cost(inputTokens, outputTokens float64) float64 {
	return inputTokens*c.CostPer1KInput/1000 + outputTokens*c.CostPer1KOutput/1000
}

// ProviderStatus es la vista de introspeccion de un proveedor.
type ProviderStatus struct {
	Name            ProviderID `json:"name"`
	Model           string     `json:"model"`
	Available       bool       `json:"available"`
	CostPer1KTokens float64    `json:"cost_per_1k_tokens"`
	SupportsImages  bool       `json:"supports_images"`
}
