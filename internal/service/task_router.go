package service

import "smartdna/internal/domain"

// ProviderDirectory es la vista de solo lectura del registro de proveedores.
type ProviderDirectory interface {
	Get(id domain.ProviderID) (domain.ProviderConfig, bool)
	Available(id domain.ProviderID) bool
	ImageProvider() domain.ProviderID
	Status() []domain.ProviderStatus
}

// TaskRouter elige el proveedor primario con una tabla fija; no hace I/O.
type TaskRouter struct {
	providers ProviderDirectory
}

func NewTaskRouter(providers ProviderDirectory) *TaskRouter {
	return &TaskRouter{providers: providers}
}

// Select evalua la tabla de arriba hacia abajo. Las imagenes siempre van al
// proveedor de imagenes aunque no tenga credencial; eso se chequea al llamar.
func (r *TaskRouter) Select(category domain.TaskCategory, requiresImage bool) domain.ProviderID {
	if requiresImage || category == domain.TaskImage {
		return r.providers.ImageProvider()
	}
	switch category {
	case domain.TaskTechnical:
		return r.prefer(domain.ProviderAnthropic)
	case domain.TaskCreative:
		return r.prefer(domain.ProviderOpenAI)
	case domain.TaskSimple:
		return r.prefer(domain.ProviderGroq, domain.ProviderGemini)
	default:
		return domain.ProviderDeepInfra
	}
}

func (r *TaskRouter) prefer(candidates ...domain.ProviderID) domain.ProviderID {
	for _, id := range candidates {
		if r.providers.Available(id) {
			return id
		}
	}
	return domain.ProviderDeepInfra
}

// TaskCategoryForHub deriva la categoria cuando el pedido solo trae el hub.
func TaskCategoryForHub(hub domain.Hub) domain.TaskCategory {
	switch hub {
	case domain.HubTech:
		return domain.TaskTechnical
	case domain.HubMarketing, domain.HubSales:
		return domain.TaskCreative
	default:
		return domain.TaskSimple
	}
}
