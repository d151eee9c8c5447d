package httpapi

import (
	"net/http"
	"time"

	"github.com/alexanderramin/homedash/internal/domain"
	"github.com/alexanderramin/homedash/internal/service"
)

type TodoSessionHandler struct {
	sessions service.TodoSessionService
}

func NewTodoSessionHandler(sessions service.TodoSessionService) *TodoSessionHandler {
	return &TodoSessionHandler{sessions: sessions}
}

type todoSessionResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toTodoSessionResponse(s *domain.TodoSession) todoSessionResponse {
	return todoSessionResponse{
		ID:        s.ID,
		Title:     s.Title,
		Content:   s.Content,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func (h *TodoSessionHandler) List(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.sessions.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	out := make([]todoSessionResponse, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, toTodoSessionResponse(s))
	}
	writeJSON(w, http.StatusOK, out)
}

type createTodoSessionRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (h *TodoSessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createTodoSessionRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	s, err := h.sessions.Create(r.Context(), service.CreateTodoSessionInput{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toTodoSessionResponse(s))
}

func (h *TodoSessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	s, err := h.sessions.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toTodoSessionResponse(s))
}

type updateTodoSessionRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

func (h *TodoSessionHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateTodoSessionRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	s, err := h.sessions.Update(r.Context(), r.PathValue("id"), service.UpdateTodoSessionInput{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toTodoSessionResponse(s))
}

func (h *TodoSessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.sessions.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	if !deleted {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "session not found"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
