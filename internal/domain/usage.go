package domain

// UsageStats es una foto de solo lectura de los contadores de uso.
type UsageStats struct {
	TotalRequests         int                `json:"total_requests"`
	TotalCost             float64            `json:"total_cost"`
	ProviderUsage         map[ProviderID]int `json:"provider_usage"`
	AverageCostPerRequest float64            `json:"average_cost_per_request"`
	MostUsedProvider      ProviderID         `json:"most_used_provider"`
}
