package httpapi

import (
	"net/http"
	"time"

	"github.com/alexanderramin/homedash/internal/domain"
	"github.com/alexanderramin/homedash/internal/service"
)

type TodoHandler struct {
	todos service.TodoService
}

func NewTodoHandler(todos service.TodoService) *TodoHandler {
	return &TodoHandler{todos: todos}
}

type todoResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	Completed   bool      `json:"completed"`
	Order       int       `json:"order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toTodoResponse(t *domain.Todo) todoResponse {
	return todoResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
		Order:       t.OrderIndex,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func (h *TodoHandler) List(w http.ResponseWriter, r *http.Request) {
	todos, err := h.todos.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	out := make([]todoResponse, 0, len(todos))
	for _, t := range todos {
		out = append(out, toTodoResponse(t))
	}
	writeJSON(w, http.StatusOK, out)
}

type createTodoRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
}

func (h *TodoHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createTodoRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	t, err := h.todos.Create(r.Context(), service.CreateTodoInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toTodoResponse(t))
}

func (h *TodoHandler) Get(w http.ResponseWriter, r *http.Request) {
	t, err := h.todos.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toTodoResponse(t))
}

type updateTodoRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
	Order       *int    `json:"order"`
}

func (h *TodoHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateTodoRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	t, err := h.todos.Update(r.Context(), r.PathValue("id"), service.UpdateTodoInput{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
		Order:       req.Order,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toTodoResponse(t))
}

func (h *TodoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.todos.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	if !deleted {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "todo not found"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

type todoReorderRequest struct {
	TodoOrders []orderUpdate `json:"todoOrders"`
}

func (h *TodoHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	var req todoReorderRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	orders, ok := toOrderUpdates(w, req.TodoOrders)
	if !ok {
		return
	}
	if err := h.todos.Reorder(r.Context(), orders); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
