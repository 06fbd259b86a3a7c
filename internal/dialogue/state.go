package dialogue

import (
	"github.com/jparkk0517/NLP-team-project/internal/classify"
	"github.com/jparkk0517/NLP-team-project/internal/types"
)

// State carries everything one graph traversal needs. Each traversal gets
// its own State; nothing here is shared across concurrent turns.
type State struct {
	// Inputs.
	Input           string
	DeclaredLabel   classify.Label // overrides the classifier when non-empty
	ParentID        string         // optional explicit question reference
	Resume          string
	JD              string
	SuppliedContext string

	// Filled by the fan-out stages before routing.
	Label          classify.Label
	Persona        *types.Persona
	CompanyContext string

	// Log snapshot taken at traversal start.
	History      string
	LastQuestion types.Turn
	HasQuestion  bool
}

// Result is what one traversal produces. The caller owns appending it to
// the conversation log; the graph itself never writes the log, which is
// what keeps a failed traversal from leaving partial turns behind.
type Result struct {
	Stage   Stage
	Label   classify.Label
	Persona *types.Persona

	// Content is the final user-facing text of the routed stage.
	Content string

	// Category and ParentID describe the agent turn to append. Category
	// is empty for fallback output, which is returned but not logged.
	Category types.Category
	ParentID string

	// LogUserTurn is set when the utterance itself belongs in the log
	// (an applicant answer), with the question it responds to.
	LogUserTurn      bool
	UserTurnParentID string

	// Assessment is set by the Evaluate stage.
	Assessment *types.Assessment
}
