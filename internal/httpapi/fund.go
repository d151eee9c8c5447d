package httpapi

import (
	"net/http"
	"time"

	"github.com/alexanderramin/homedash/internal/domain"
	"github.com/alexanderramin/homedash/internal/service"
)

type FundHandler struct {
	funds service.FundService
}

func NewFundHandler(funds service.FundService) *FundHandler {
	return &FundHandler{funds: funds}
}

type fundResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Price     string    `json:"price"`
	Order     int       `json:"order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toFundResponse(f *domain.Fund) fundResponse {
	return fundResponse{
		ID:        f.ID,
		Title:     f.Title,
		Price:     f.Price,
		Order:     f.OrderIndex,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}

func (h *FundHandler) List(w http.ResponseWriter, r *http.Request) {
	funds, err := h.funds.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	out := make([]fundResponse, 0, len(funds))
	for _, f := range funds {
		out = append(out, toFundResponse(f))
	}
	writeJSON(w, http.StatusOK, out)
}

type createFundRequest struct {
	Title string `json:"title"`
	Price string `json:"price"`
}

func (h *FundHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createFundRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	f, err := h.funds.Create(r.Context(), service.CreateFundInput{
		Title: req.Title,
		Price: req.Price,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toFundResponse(f))
}

func (h *FundHandler) Get(w http.ResponseWriter, r *http.Request) {
	f, err := h.funds.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toFundResponse(f))
}

type updateFundRequest struct {
	Title *string `json:"title"`
	Price *string `json:"price"`
	Order *int    `json:"order"`
}

func (h *FundHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateFundRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	f, err := h.funds.Update(r.Context(), r.PathValue("id"), service.UpdateFundInput{
		Title: req.Title,
		Price: req.Price,
		Order: req.Order,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toFundResponse(f))
}

func (h *FundHandler) Delete(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.funds.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	if !deleted {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "fund not found"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

type fundReorderRequest struct {
	FundOrders []orderUpdate `json:"fundOrders"`
}

func (h *FundHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	var req fundReorderRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	orders, ok := toOrderUpdates(w, req.FundOrders)
	if !ok {
		return
	}
	if err := h.funds.Reorder(r.Context(), orders); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
