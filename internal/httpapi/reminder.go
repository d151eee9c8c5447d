package httpapi

import (
	"net/http"
	"time"

	"github.com/alexanderramin/homedash/internal/domain"
	"github.com/alexanderramin/homedash/internal/service"
)

type ReminderHandler struct {
	reminders service.ReminderService
}

func NewReminderHandler(reminders service.ReminderService) *ReminderHandler {
	return &ReminderHandler{reminders: reminders}
}

type reminderResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	DueDate   string    `json:"due_date"`
	Order     int       `json:"order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toReminderResponse(rem *domain.Reminder) reminderResponse {
	return reminderResponse{
		ID:        rem.ID,
		Title:     rem.Title,
		DueDate:   rem.DueDate,
		Order:     rem.OrderIndex,
		CreatedAt: rem.CreatedAt,
		UpdatedAt: rem.UpdatedAt,
	}
}

func (h *ReminderHandler) List(w http.ResponseWriter, r *http.Request) {
	reminders, err := h.reminders.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	out := make([]reminderResponse, 0, len(reminders))
	for _, rem := range reminders {
		out = append(out, toReminderResponse(rem))
	}
	writeJSON(w, http.StatusOK, out)
}

type createReminderRequest struct {
	Title   string `json:"title"`
	DueDate string `json:"due_date"`
}

func (h *ReminderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createReminderRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	rem, err := h.reminders.Create(r.Context(), service.CreateReminderInput{
		Title:   req.Title,
		DueDate: req.DueDate,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toReminderResponse(rem))
}

func (h *ReminderHandler) Get(w http.ResponseWriter, r *http.Request) {
	rem, err := h.reminders.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toReminderResponse(rem))
}

type updateReminderRequest struct {
	Title   *string `json:"title"`
	DueDate *string `json:"due_date"`
	Order   *int    `json:"order"`
}

func (h *ReminderHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateReminderRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	rem, err := h.reminders.Update(r.Context(), r.PathValue("id"), service.UpdateReminderInput{
		Title:   req.Title,
		DueDate: req.DueDate,
		Order:   req.Order,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toReminderResponse(rem))
}

func (h *ReminderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.reminders.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	if !deleted {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "reminder not found"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

type reminderReorderRequest struct {
	ReminderOrders []orderUpdate `json:"reminderOrders"`
}

func (h *ReminderHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	var req reminderReorderRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	orders, ok := toOrderUpdates(w, req.ReminderOrders)
	if !ok {
		return
	}
	if err := h.reminders.Reorder(r.Context(), orders); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
