package httpapi

import (
	"net/http"

	"github.com/alexanderramin/homedash/internal/service"
)

type SavedMoneyHandler struct {
	savedMoney service.SavedMoneyService
}

func NewSavedMoneyHandler(savedMoney service.SavedMoneyService) *SavedMoneyHandler {
	return &SavedMoneyHandler{savedMoney: savedMoney}
}

type savedMoneyResponse struct {
	Amount string `json:"amount"`
}

func (h *SavedMoneyHandler) Get(w http.ResponseWriter, r *http.Request) {
	amount, err := h.savedMoney.Get(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, savedMoneyResponse{Amount: amount})
}

type setSavedMoneyRequest struct {
	Amount string `json:"amount"`
}

func (h *SavedMoneyHandler) Set(w http.ResponseWriter, r *http.Request) {
	var req setSavedMoneyRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	amount, err := h.savedMoney.Set(r.Context(), req.Amount)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, savedMoneyResponse{Amount: amount})
}
