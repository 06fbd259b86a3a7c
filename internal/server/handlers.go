package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/jparkk0517/NLP-team-project/internal/engine"
	"github.com/jparkk0517/NLP-team-project/internal/types"
)

// ChatRequest represents the request body for POST /chat
type ChatRequest struct {
	Content  string `json:"content"`
	Type     string `json:"type,omitempty"`
	ParentID string `json:"related_chatting_id,omitempty"`
}

// ChatResponse represents the response for POST /chat
type ChatResponse struct {
	Reply string       `json:"reply"`
	Stage string       `json:"stage"`
	Log   []types.Turn `json:"log"`
}

// handleChat submits one applicant utterance
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.Content == "" {
		s.errorResponse(w, http.StatusBadRequest, "content is required")
		return
	}
	// A declared type the classifier does not recognize is normalized to
	// the catch-all label inside the graph, so no validation is needed here.
	res, err := s.engine.SubmitTurn(r.Context(), engine.SubmitTurnRequest{
		Utterance:        req.Content,
		DeclaredCategory: req.Type,
		ParentID:         req.ParentID,
	})
	if err != nil {
		log.Printf("chat turn failed: %v", err)
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, ChatResponse{
		Reply: res.Reply,
		Stage: string(res.Stage),
		Log:   res.Log,
	})
}

// handleChatHistory returns the conversation, generating the opening
// question first when the log is still empty.
func (s *Server) handleChatHistory(w http.ResponseWriter, r *http.Request) {
	turns, err := s.engine.InitialQuestion(r.Context())
	if err != nil {
		log.Printf("initial question failed: %v", err)
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, turns)
}

// handleAssessment returns the overall candidate assessment
func (s *Server) handleAssessment(w http.ResponseWriter, r *http.Request) {
	assessment, err := s.engine.Assessment(r.Context())
	if err != nil {
		log.Printf("assessment failed: %v", err)
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, assessment)
}

// handleListPersonas returns the persona catalog
func (s *Server) handleListPersonas(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.engine.Personas())
}

// handleCreatePersona registers a new interviewer persona
func (s *Server) handleCreatePersona(w http.ResponseWriter, r *http.Request) {
	var req types.CreatePersonaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	p, err := s.engine.RegisterPersona(r.Context(), req)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusCreated, p)
}

// handleDeletePersona removes a persona by id
func (s *Server) handleDeletePersona(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := s.engine.RemovePersona(r.Context(), id); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"deleted": id})
}

// handleRerank reranks the model answer of a question
func (s *Server) handleRerank(w http.ResponseWriter, r *http.Request) {
	questionID := r.PathValue("question_id")

	res, err := s.engine.RerankModelAnswer(r.Context(), questionID)
	if err != nil {
		log.Printf("rerank failed for %s: %v", questionID, err)
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, res)
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
