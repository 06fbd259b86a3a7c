package types

import "github.com/go-playground/validator/v10"

// RoleType is the professional role an interviewer persona plays on the panel.
type RoleType string

// RoleType constants define the supported interviewer roles.
const (
	RoleDeveloper      RoleType = "developer"
	RoleDesigner       RoleType = "designer"
	RoleProductManager RoleType = "product_manager"
	RoleOther          RoleType = "other"
)

// Persona is a named interviewer profile used to color generated questions
// and evaluations. Personas are never mutated in place; a change is modeled
// as delete plus re-create.
type Persona struct {
	ID                 string   `json:"id"`
	RoleType           RoleType `json:"type"`
	Name               string   `json:"name"`
	Interests          []string `json:"interests,omitempty"`
	CommunicationStyle string   `json:"communication_style,omitempty"`
}

// CreatePersonaRequest represents the request to register a new interviewer persona.
type CreatePersonaRequest struct {
	RoleType           RoleType `json:"type" validate:"required,oneof=developer designer product_manager other"`
	Name               string   `json:"name" validate:"required,min=1"`
	Interests          []string `json:"interests,omitempty"`
	CommunicationStyle string   `json:"communication_style,omitempty"`
}

// Validate validates the CreatePersonaRequest using the validator.
func (r *CreatePersonaRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
