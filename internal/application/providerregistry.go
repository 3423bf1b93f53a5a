package application

import (
	"sync"

	"github.com/ericfisherdev/nichescript/internal/domain/model"
	"github.com/ericfisherdev/nichescript/internal/domain/port/driven"
)

// ProviderRegistry maps provider IDs to their adapters. Entries can be swapped
// at runtime, so a reconfigured adapter takes effect without a restart.
type ProviderRegistry struct {
	mu        sync.RWMutex
	providers map[model.ProviderID]driven.AIProvider
}

// NewProviderRegistry creates an empty registry.
func NewProviderRegistry() *ProviderRegistry {
	return &ProviderRegistry{providers: make(map[model.ProviderID]driven.AIProvider)}
}

// Get returns the adapter for id and whether one is registered.
func (r *ProviderRegistry) Get(id model.ProviderID) (driven.AIProvider, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.providers[id]
	return p, ok
}

// Replace registers p for id, replacing any previous adapter. A nil p removes
// the entry.
func (r *ProviderRegistry) Replace(id model.ProviderID, p driven.AIProvider) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p == nil {
		delete(r.providers, id)
		return
	}
	r.providers[id] = p
}

// Registered returns the known providers that have an adapter, in display order.
func (r *ProviderRegistry) Registered() []model.ProviderID {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []model.ProviderID
	for _, id := range model.Providers() {
		if _, ok := r.providers[id]; ok {
			out = append(out, id)
		}
	}
	return out
}
