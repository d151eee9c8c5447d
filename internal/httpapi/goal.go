package httpapi

import (
	"net/http"
	"time"

	"github.com/alexanderramin/homedash/internal/domain"
	"github.com/alexanderramin/homedash/internal/service"
)

type GoalHandler struct {
	goals service.GoalService
}

func NewGoalHandler(goals service.GoalService) *GoalHandler {
	return &GoalHandler{goals: goals}
}

type goalResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	TargetDate  *string   `json:"target_date,omitempty"`
	Amount      *string   `json:"amount,omitempty"`
	Progress    string    `json:"progress"`
	Priority    *string   `json:"priority,omitempty"`
	Order       int       `json:"order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toGoalResponse(g *domain.Goal) goalResponse {
	resp := goalResponse{
		ID:          g.ID,
		Title:       g.Title,
		Description: g.Description,
		TargetDate:  g.TargetDate,
		Amount:      g.Amount,
		Progress:    g.Progress,
		Order:       g.OrderIndex,
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}
	if g.Priority != nil {
		p := string(*g.Priority)
		resp.Priority = &p
	}
	return resp
}

func (h *GoalHandler) List(w http.ResponseWriter, r *http.Request) {
	goals, err := h.goals.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	out := make([]goalResponse, 0, len(goals))
	for _, g := range goals {
		out = append(out, toGoalResponse(g))
	}
	writeJSON(w, http.StatusOK, out)
}

type createGoalRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	TargetDate  *string `json:"target_date"`
	Amount      *string `json:"amount"`
	Progress    *string `json:"progress"`
	Priority    *string `json:"priority"`
}

func (h *GoalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createGoalRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	g, err := h.goals.Create(r.Context(), service.CreateGoalInput{
		Title:       req.Title,
		Description: req.Description,
		TargetDate:  req.TargetDate,
		Amount:      req.Amount,
		Progress:    req.Progress,
		Priority:    req.Priority,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toGoalResponse(g))
}

func (h *GoalHandler) Get(w http.ResponseWriter, r *http.Request) {
	g, err := h.goals.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toGoalResponse(g))
}

type updateGoalRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	TargetDate  *string `json:"target_date"`
	Amount      *string `json:"amount"`
	Progress    *string `json:"progress"`
	Priority    *string `json:"priority"`
	Order       *int    `json:"order"`
}

func (h *GoalHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateGoalRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	g, err := h.goals.Update(r.Context(), r.PathValue("id"), service.UpdateGoalInput{
		Title:       req.Title,
		Description: req.Description,
		TargetDate:  req.TargetDate,
		Amount:      req.Amount,
		Progress:    req.Progress,
		Priority:    req.Priority,
		Order:       req.Order,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toGoalResponse(g))
}

func (h *GoalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.goals.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	if !deleted {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "goal not found"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

type goalReorderRequest struct {
	GoalOrders []orderUpdate `json:"goalOrders"`
}

func (h *GoalHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	var req goalReorderRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	orders, ok := toOrderUpdates(w, req.GoalOrders)
	if !ok {
		return
	}
	if err := h.goals.Reorder(r.Context(), orders); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
