package llm

import (
	"smartdna/internal/domain"
)

// Registry es el catalogo estatico de proveedores. Se construye una vez al
// arrancar y no se modifica; es seguro para lectura concurrente sin locks.
type Registry struct {
	ordered []domain.ProviderConfig
	byID    map[domain.ProviderID]domain.ProviderConfig
}

// NewRegistry construye el catalogo preservando el orden recibido.
func NewRegistry(configs []domain.ProviderConfig) *Registry {
	r := &Registry{
		ordered: make([]domain.ProviderConfig, 0, len(configs)),
		byID:    make(map[domain.ProviderID]domain.ProviderConfig, len(configs)),
	}
	for _, cfg := range configs {
		if _, dup := r.byID[cfg.ID]; dup {
			continue
		}
		r.ordered = append(r.ordered, cfg)
		r.byID[cfg.ID] = cfg
	}
	return r
}

// Get devuelve la configuracion de un proveedor.
func (r *Registry) Get(id domain.ProviderID) (domain.ProviderConfig, bool) {
	cfg, ok := r.byID[id]
	return cfg, ok
}

// Available indica si el proveedor existe y tiene credencial.
func (r *Registry) Available(id domain.ProviderID) bool {
	cfg, ok := r.byID[id]
	return ok && cfg.Available()
}

// ImageProvider devuelve el primer proveedor con soporte de imagenes.
func (r *Registry) ImageProvider() domain.ProviderID {
	for _, cfg := range r.ordered {
		if cfg.SupportsImages {
			return cfg.ID
		}
	}
	return domain.ProviderOpenAI
}

// List devuelve una copia de las configuraciones en orden.
func (r *Registry) List() []domain.ProviderConfig {
	out := make([]domain.ProviderConfig, len(r.ordered))
	copy(out, r.ordered)
	return out
}

// Status lista todos los proveedores, incluidos los que no tienen credencial.
func (r *Registry) Status() []domain.ProviderStatus {
	out := make([]domain.ProviderStatus, 0, len(r.ordered))
	for _, cfg := range r.ordered {
		out = append(out, domain.ProviderStatus{
			Name:            cfg.ID,
			Model:           cfg.Model,
			Available:       cfg.Available(),
			CostPer1KTokens: (cfg.CostPer1KInput + cfg.CostPer1KOutput) / 2,
			SupportsImages:  cfg.SupportsImages,
		})
	}
	return out
}
