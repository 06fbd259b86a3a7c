package persona

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jparkk0517/NLP-team-project/internal/types"
)

func TestRegistry_RegisterAndGet(t *testing.T) {
	registry := NewRegistry()

	p := registry.Register(types.CreatePersonaRequest{
		RoleType:           types.RoleDeveloper,
		Name:               "CTO",
		Interests:          []string{"issue resolution", "lessons learned"},
		CommunicationStyle: "rational, no wasted words",
	})
	require.NotEmpty(t, p.ID)

	got, ok := registry.Get(p.ID)
	require.True(t, ok)
	assert.Equal(t, "CTO", got.Name)
	assert.Equal(t, types.RoleDeveloper, got.RoleType)
}

func TestRegistry_ListOrder(t *testing.T) {
	registry := NewRegistry()

	registry.Register(types.CreatePersonaRequest{RoleType: types.RoleOther, Name: "Recruiter"})
	registry.Register(types.CreatePersonaRequest{RoleType: types.RoleDeveloper, Name: "CTO"})
	registry.Register(types.CreatePersonaRequest{RoleType: types.RoleDesigner, Name: "Design Lead"})

	list := registry.List()
	require.Len(t, list, 3)
	assert.Equal(t, "Recruiter", list[0].Name)
	assert.Equal(t, "CTO", list[1].Name)
	assert.Equal(t, "Design Lead", list[2].Name)
}

func TestRegistry_Remove(t *testing.T) {
	registry := NewRegistry()

	p := registry.Register(types.CreatePersonaRequest{RoleType: types.RoleOther, Name: "Recruiter"})
	assert.True(t, registry.Remove(p.ID))
	assert.Equal(t, 0, registry.Len())

	_, ok := registry.Get(p.ID)
	assert.False(t, ok)
}

func TestRegistry_Remove_AbsentIsNoop(t *testing.T) {
	registry := NewRegistry()
	registry.Register(types.CreatePersonaRequest{RoleType: types.RoleOther, Name: "Recruiter"})

	assert.False(t, registry.Remove("missing"))
	assert.Equal(t, 1, registry.Len(), "catalog must be unchanged")
}

func TestRegistry_ListIsACopy(t *testing.T) {
	registry := NewRegistry()
	registry.Register(types.CreatePersonaRequest{RoleType: types.RoleOther, Name: "Recruiter"})

	list := registry.List()
	list[0].Name = "mutated"

	fresh := registry.List()
	assert.Equal(t, "Recruiter", fresh[0].Name)
}
