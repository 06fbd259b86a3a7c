// Package engine is the single boundary callers use to drive an
// interview session: submitting turns, reading history, managing
// personas, reranking model answers, and producing the overall
// assessment.
package engine

import (
	"context"
	"log"

	"github.com/google/uuid"

	"github.com/jparkk0517/NLP-team-project/internal/classify"
	"github.com/jparkk0517/NLP-team-project/internal/dialogue"
	"github.com/jparkk0517/NLP-team-project/internal/history"
	"github.com/jparkk0517/NLP-team-project/internal/persona"
	"github.com/jparkk0517/NLP-team-project/internal/ranking"
	"github.com/jparkk0517/NLP-team-project/internal/types"
)

// Store is the optional persistence collaborator. All writes through it
// are best-effort: a persistence failure is logged, never surfaced.
type Store interface {
	SaveTurn(ctx context.Context, sessionID string, turn types.Turn) error
	SavePersona(ctx context.Context, p types.Persona) error
	DeletePersona(ctx context.Context, id string) error
}

// Options configures an Engine.
type Options struct {
	Resume        string
	JD            string
	SessionID     string
	RerankEnabled bool // rerank model answers during turn submission
	Store         Store
}

// Engine owns the session state: the conversation log, the persona
// registry, and the candidate documents every prompt is grounded in.
type Engine struct {
	graph    *dialogue.Graph
	log      *history.Log
	registry *persona.Registry
	ranker   *ranking.Ranker

	resume        string
	jd            string
	sessionID     string
	rerankEnabled bool
	store         Store
}

// New creates an Engine over the shared log and registry.
func New(graph *dialogue.Graph, conversationLog *history.Log, registry *persona.Registry, ranker *ranking.Ranker, opts Options) *Engine {
	sessionID := opts.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	return &Engine{
		graph:         graph,
		log:           conversationLog,
		registry:      registry,
		ranker:        ranker,
		resume:        opts.Resume,
		jd:            opts.JD,
		sessionID:     sessionID,
		rerankEnabled: opts.RerankEnabled,
		store:         opts.Store,
	}
}

// SubmitTurnRequest is one applicant utterance entering the engine.
type SubmitTurnRequest struct {
	Utterance        string `json:"content" validate:"required,min=1"`
	DeclaredCategory string `json:"type,omitempty"`
	ParentID         string `json:"related_chatting_id,omitempty"`
}

// SubmitTurnResult is the outcome of one turn: the reply text, which
// stage produced it, and the full updated log.
type SubmitTurnResult struct {
	Reply string
	Stage dialogue.Stage
	Log   []types.Turn
}

// SubmitTurn runs one graph traversal for the utterance and appends the
// resulting turn(s). Nothing is appended until the traversal has fully
// succeeded, so a failed turn leaves the log exactly as it was.
func (e *Engine) SubmitTurn(ctx context.Context, req SubmitTurnRequest) (*SubmitTurnResult, error) {
	st := &dialogue.State{
		Input:         req.Utterance,
		DeclaredLabel: classify.Label(req.DeclaredCategory),
		ParentID:      req.ParentID,
		Resume:        e.resume,
		JD:            e.jd,
	}

	res, err := e.graph.Run(ctx, st)
	if err != nil {
		return nil, err
	}

	reply := res.Content

	// Rerank happens before any append so that a hard comparison
	// failure cannot leave a half-recorded turn.
	var reranked string
	var rerankParent string
	if e.rerankEnabled && res.Category == types.CategoryModelAnswer && e.ranker != nil {
		question := e.questionContent(res.ParentID)
		best, _, err := e.ranker.Rerank(ctx, question, res.Content, e.candidateFunc(st))
		if err != nil {
			return nil, err
		}
		reranked = best
		rerankParent = res.ParentID
		reply = best
	}

	if res.LogUserTurn {
		e.append(ctx, types.CategoryAnswer, types.SpeakerUser, req.Utterance, res.UserTurnParentID, nil)
	}
	if res.Category != "" {
		e.append(ctx, res.Category, types.SpeakerAgent, res.Content, res.ParentID, res.Persona)
	}
	if reranked != "" {
		e.append(ctx, types.CategoryRerankedModelAnswer, types.SpeakerAgent, reranked, rerankParent, res.Persona)
	}

	return &SubmitTurnResult{
		Reply: reply,
		Stage: res.Stage,
		Log:   e.log.All(),
	}, nil
}

// InitialQuestion ensures the log opens with a generated greeting
// question. It is a no-op when the log already has content.
func (e *Engine) InitialQuestion(ctx context.Context) ([]types.Turn, error) {
	if e.log.Len() > 0 {
		return e.log.All(), nil
	}

	question, err := e.graph.InitialQuestion(ctx, e.resume, e.jd)
	if err != nil {
		return nil, err
	}
	e.append(ctx, types.CategoryQuestion, types.SpeakerAgent, question, "", nil)
	return e.log.All(), nil
}

// Assessment produces the overall four-score assessment of the answers
// given so far.
func (e *Engine) Assessment(ctx context.Context) (*types.Assessment, error) {
	return e.graph.OverallAssessment(ctx, e.resume, e.jd)
}

// History returns the log, optionally filtered by category.
func (e *Engine) History(categories ...types.Category) []types.Turn {
	return e.log.All(categories...)
}

// Personas returns the registered personas in registration order.
func (e *Engine) Personas() []types.Persona {
	return e.registry.List()
}

// RegisterPersona validates and registers a new interviewer persona.
func (e *Engine) RegisterPersona(ctx context.Context, req types.CreatePersonaRequest) (types.Persona, error) {
	if err := req.Validate(); err != nil {
		return types.Persona{}, err
	}

	p := e.registry.Register(req)
	if e.store != nil {
		if err := e.store.SavePersona(ctx, p); err != nil {
			log.Printf("engine: failed to persist persona %s: %v", p.ID, err)
		}
	}
	return p, nil
}

// RemovePersona removes a persona by id. An unknown id is a distinct
// not-found failure; the catalog is left untouched.
func (e *Engine) RemovePersona(ctx context.Context, id string) error {
	if !e.registry.Remove(id) {
		return &ErrPersonaNotFound{ID: id}
	}
	if e.store != nil {
		if err := e.store.DeletePersona(ctx, id); err != nil {
			log.Printf("engine: failed to delete persisted persona %s: %v", id, err)
		}
	}
	return nil
}

// RerankResult carries the winning candidate and its comparison record.
type RerankResult struct {
	Answer     string                  `json:"answer"`
	Comparison *types.ComparisonResult `json:"comparison"`
	TurnID     string                  `json:"turn_id"`
}

// RerankModelAnswer generates fresh candidates for the question's
// existing model answer and appends the winner as a
// reranked_model_answer turn.
func (e *Engine) RerankModelAnswer(ctx context.Context, questionID string) (*RerankResult, error) {
	question, ok := e.log.ByID(questionID)
	if !ok || question.Category != types.CategoryQuestion {
		return nil, &ErrTurnNotFound{ID: questionID}
	}

	original, ok := e.log.Child(questionID, types.CategoryModelAnswer)
	if !ok {
		return nil, &ErrNoModelAnswer{QuestionID: questionID}
	}

	st := &dialogue.State{
		Resume:         e.resume,
		JD:             e.jd,
		CompanyContext: e.graph.ResolveCompany(ctx, e.jd),
	}

	best, comparison, err := e.ranker.Rerank(ctx, question.Content, original.Content, e.candidateFunc(st))
	if err != nil {
		return nil, err
	}

	turnID := e.append(ctx, types.CategoryRerankedModelAnswer, types.SpeakerAgent, best, questionID, original.PersonaSnapshot)

	return &RerankResult{Answer: best, Comparison: comparison, TurnID: turnID}, nil
}

// candidateFunc adapts the model-answer chain to the ranker's generator
// contract, holding the traversal state fixed across candidates.
func (e *Engine) candidateFunc(st *dialogue.State) ranking.CandidateFunc {
	return func(ctx context.Context, question string) (string, error) {
		return e.graph.ComposeModelAnswer(ctx, question, st)
	}
}

// append writes a turn to the log and mirrors it to the store when one
// is configured.
func (e *Engine) append(ctx context.Context, category types.Category, speaker types.Speaker, content, parentID string, snapshot *types.Persona) string {
	id := e.log.Append(category, speaker, content, parentID, snapshot)
	if e.store != nil {
		if turn, ok := e.log.ByID(id); ok {
			if err := e.store.SaveTurn(ctx, e.sessionID, turn); err != nil {
				log.Printf("engine: failed to persist turn %s: %v", id, err)
			}
		}
	}
	return id
}

func (e *Engine) questionContent(id string) string {
	if turn, ok := e.log.ByID(id); ok {
		return turn.Content
	}
	return ""
}
