package service

import (
	"sync"

	"smartdna/internal/domain"
)

// charsPerToken es la heuristica fija de estimacion de tokens.
const charsPerToken = 4.0

// UsageTracker acumula pedidos y costo por proveedor. Es el unico estado
// mutable compartido entre pedidos concurrentes.
type UsageTracker struct {
	mu        sync.Mutex
	providers ProviderDirectory
	total     int
	cost      float64
	usage     map[domain.ProviderID]int
}

func NewUsageTracker(providers ProviderDirectory) *UsageTracker {
	usage := make(map[domain.ProviderID]int, len(domain.Providers))
	for _, id := range domain.Providers {
		usage[id] = 0
	}
	return &UsageTracker{providers: providers, usage: usage}
}

// Record registra un exito estimando tokens como longitud/4.
func (t *UsageTracker) Record(provider domain.ProviderID, inputLen, outputLen int) {
	cost := 0.0
	if t.providers != nil {
		if cfg, ok := t.providers.Get(provider); ok {
			cost = cfg.Cost(float64(inputLen)/charsPerToken, float64(outputLen)/charsPerToken)
		}
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.total++
	t.usage[provider]++
	t.cost += cost
}

// Snapshot devuelve una copia con las metricas derivadas.
func (t *UsageTracker) Snapshot() domain.UsageStats {
	t.mu.Lock()
	defer t.mu.Unlock()

	usage := make(map[domain.ProviderID]int, len(t.usage))
	for id, n := range t.usage {
		usage[id] = n
	}

	stats := domain.UsageStats{
		TotalRequests:    t.total,
		TotalCost:        t.cost,
		ProviderUsage:    usage,
		MostUsedProvider: domain.ProviderNone,
	}
	if t.total == 0 {
		return stats
	}
	stats.AverageCostPerRequest = t.cost / float64(t.total)

	best := -1
	for _, id := range domain.Providers {
		if usage[id] > best {
			best = usage[id]
			stats.MostUsedProvider = id
		}
	}
	return stats
}
