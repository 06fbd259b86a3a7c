// Package persona manages the catalog of interviewer personas and the
// per-turn policy that picks which persona speaks next.
package persona

import (
	"sync"

	"github.com/google/uuid"

	"github.com/jparkk0517/NLP-team-project/internal/types"
)

// Registry is the process-wide persona catalog. Personas are registered
// and removed whole; there is no in-place mutation.
type Registry struct {
	mu       sync.RWMutex
	personas []types.Persona
}

// NewRegistry creates an empty persona registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register creates a persona from the request and stores it, returning the
// stored persona including its generated id.
func (r *Registry) Register(req types.CreatePersonaRequest) types.Persona {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := types.Persona{
		ID:                 uuid.NewString()[:8],
		RoleType:           req.RoleType,
		Name:               req.Name,
		Interests:          append([]string(nil), req.Interests...),
		CommunicationStyle: req.CommunicationStyle,
	}
	r.personas = append(r.personas, p)
	return p
}

// Remove deletes the persona with the given id. It returns false when no
// such persona exists; removal of an absent id is not an error.
func (r *Registry) Remove(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.personas {
		if p.ID == id {
			r.personas = append(r.personas[:i], r.personas[i+1:]...)
			return true
		}
	}
	return false
}

// Get returns the persona with the given id.
func (r *Registry) Get(id string) (types.Persona, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.personas {
		if p.ID == id {
			return p, true
		}
	}
	return types.Persona{}, false
}

// List returns all personas in registration order.
func (r *Registry) List() []types.Persona {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]types.Persona, len(r.personas))
	copy(out, r.personas)
	return out
}

// Len returns the number of registered personas.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.personas)
}
