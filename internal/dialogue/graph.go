package dialogue

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/jparkk0517/NLP-team-project/internal/classify"
	"github.com/jparkk0517/NLP-team-project/internal/history"
	"github.com/jparkk0517/NLP-team-project/internal/llm"
	"github.com/jparkk0517/NLP-team-project/internal/persona"
	"github.com/jparkk0517/NLP-team-project/internal/types"
)

// ContextResolver resolves company context for a job description. It
// never fails; a total miss is the empty string.
type ContextResolver interface {
	Resolve(ctx context.Context, jd, supplied string) string
}

// Graph wires the traversal collaborators together. One Graph serves all
// turns; per-turn data lives in State.
type Graph struct {
	classifier classify.Classifier
	selector   persona.Selector
	registry   *persona.Registry
	resolver   ContextResolver
	client     llm.Client
	log        *history.Log
}

// NewGraph creates a dialogue graph over the shared log and registry.
func NewGraph(classifier classify.Classifier, selector persona.Selector, registry *persona.Registry, resolver ContextResolver, client llm.Client, conversationLog *history.Log) *Graph {
	return &Graph{
		classifier: classifier,
		selector:   selector,
		registry:   registry,
		resolver:   resolver,
		client:     client,
		log:        conversationLog,
	}
}

// Run executes one traversal: snapshot the log, fan out classification,
// persona assignment, and context resolution, join, route, and run the
// routed stage. The log is read but never written here.
func (g *Graph) Run(ctx context.Context, st *State) (*Result, error) {
	st.History = g.log.RenderText()
	if q, ok := g.log.Latest(types.CategoryQuestion); ok {
		st.LastQuestion = q
		st.HasQuestion = true
	}

	// The three fan-out stages have no data dependency on each other.
	// They all degrade to defaults instead of failing, so the errgroup
	// serves purely as the barrier join.
	grp, gctx := errgroup.WithContext(ctx)
	grp.Go(func() error {
		st.Label = g.classifyInput(gctx, st)
		return nil
	})
	grp.Go(func() error {
		st.Persona = g.assignPersona(gctx, st)
		return nil
	})
	grp.Go(func() error {
		st.CompanyContext = g.resolveContext(gctx, st)
		return nil
	})
	_ = grp.Wait()

	return g.dispatch(ctx, st, RouteFor(st.Label))
}

// classifyInput returns the declared label when the caller supplied one,
// otherwise asks the classifier. Failures coerce to LabelOther so the
// turn still produces a response.
func (g *Graph) classifyInput(ctx context.Context, st *State) classify.Label {
	if st.DeclaredLabel != "" {
		return classify.Normalize(string(st.DeclaredLabel))
	}

	label, err := g.classifier.Classify(ctx, st.Input, st.History)
	if err != nil {
		log.Printf("dialogue: classification failed, routing to fallback: %v", err)
		return classify.LabelOther
	}
	return label
}

// assignPersona selects a persona for this turn. Selection failure or an
// empty catalog means no persona, never an error.
func (g *Graph) assignPersona(ctx context.Context, st *State) *types.Persona {
	input := persona.SelectionInput{
		Resume:       st.Resume,
		JD:           st.JD,
		Utterance:    st.Input,
		LastQuestion: st.LastQuestion.Content,
	}

	id, err := g.selector.Select(ctx, input, g.registry.List())
	if err != nil {
		log.Printf("dialogue: persona selection failed, proceeding without persona: %v", err)
		return nil
	}
	if id == persona.NoPersona {
		return nil
	}

	p, ok := g.registry.Get(id)
	if !ok {
		return nil
	}
	return &p
}

func (g *Graph) resolveContext(ctx context.Context, st *State) string {
	if g.resolver == nil {
		return st.SuppliedContext
	}
	return g.resolver.Resolve(ctx, st.JD, st.SuppliedContext)
}

// ResolveCompany resolves company context for a job description with no
// pre-supplied text. Callers outside a traversal (reranking, the overall
// assessment) use this to build prompt context.
func (g *Graph) ResolveCompany(ctx context.Context, jd string) string {
	if g.resolver == nil {
		return ""
	}
	return g.resolver.Resolve(ctx, jd, "")
}

func (g *Graph) dispatch(ctx context.Context, st *State, stage Stage) (*Result, error) {
	res := &Result{
		Stage:   stage,
		Label:   st.Label,
		Persona: st.Persona,
	}

	switch stage {
	case StageGenerateQuestion:
		content, err := g.generateQuestion(ctx, st)
		if err != nil {
			return nil, err
		}
		res.Content = content
		res.Category = types.CategoryQuestion

	case StageGenerateFollowup:
		content, err := g.generateFollowup(ctx, st)
		if err != nil {
			return nil, err
		}
		res.Content = content
		res.Category = types.CategoryQuestion
		res.ParentID = g.questionRef(st).ID

	case StageEvaluate:
		if err := g.evaluate(ctx, st, res); err != nil {
			return nil, err
		}

	case StageGenerateModelAnswer:
		content, err := g.generateModelAnswer(ctx, st)
		if err != nil {
			return nil, err
		}
		res.Content = content
		res.Category = types.CategoryModelAnswer
		res.ParentID = g.questionRef(st).ID

	case StageFallback:
		content, err := g.fallback(ctx, st)
		if err != nil {
			return nil, err
		}
		res.Content = content
		// Fallback output is conversational filler, not part of the
		// interview record; Category stays empty.

	default:
		return nil, fmt.Errorf("unreachable stage %q", stage)
	}

	return res, nil
}

// questionRef resolves which question turn the current input refers to:
// the explicitly given parent when it names a question, otherwise the
// most recent question.
func (g *Graph) questionRef(st *State) types.Turn {
	if st.ParentID != "" {
		if turn, ok := g.log.ByID(st.ParentID); ok && turn.Category == types.CategoryQuestion {
			return turn
		}
	}
	if st.HasQuestion {
		return st.LastQuestion
	}
	return types.Turn{}
}
