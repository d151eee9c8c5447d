package httpapi

import (
	"net/http"
	"time"

	"github.com/alexanderramin/homedash/internal/domain"
	"github.com/alexanderramin/homedash/internal/service"
)

// BookmarkHandler serves the bookmark tree endpoints.
type BookmarkHandler struct {
	bookmarks service.BookmarkService
}

func NewBookmarkHandler(bookmarks service.BookmarkService) *BookmarkHandler {
	return &BookmarkHandler{bookmarks: bookmarks}
}

type bookmarkResponse struct {
	ID          string              `json:"id"`
	Title       string              `json:"title"`
	URL         *string             `json:"url,omitempty"`
	Description *string             `json:"description,omitempty"`
	ParentID    *string             `json:"parent_id,omitempty"`
	Icon        *string             `json:"icon,omitempty"`
	Color       *string             `json:"color,omitempty"`
	Order       int                 `json:"order"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
	Children    []*bookmarkResponse `json:"children"`
}

func toBookmarkResponse(b *domain.Bookmark) *bookmarkResponse {
	resp := &bookmarkResponse{
		ID:          b.ID,
		Title:       b.Title,
		URL:         b.URL,
		Description: b.Description,
		ParentID:    b.ParentID,
		Icon:        b.Icon,
		Color:       b.Color,
		Order:       b.OrderIndex,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
		Children:    make([]*bookmarkResponse, 0, len(b.Children)),
	}
	for _, c := range b.Children {
		resp.Children = append(resp.Children, toBookmarkResponse(c))
	}
	return resp
}

// GetAll returns the assembled forest.
func (h *BookmarkHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	forest, err := h.bookmarks.Tree(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	out := make([]*bookmarkResponse, 0, len(forest))
	for _, root := range forest {
		out = append(out, toBookmarkResponse(root))
	}
	writeJSON(w, http.StatusOK, out)
}

type createBookmarkRequest struct {
	Title       string  `json:"title"`
	URL         *string `json:"url"`
	Description *string `json:"description"`
	ParentID    *string `json:"parent_id"`
	Icon        *string `json:"icon"`
	Color       *string `json:"color"`
}

func (h *BookmarkHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createBookmarkRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	b, err := h.bookmarks.Create(r.Context(), service.CreateBookmarkInput{
		Title:       req.Title,
		URL:         req.URL,
		Description: req.Description,
		ParentID:    req.ParentID,
		Icon:        req.Icon,
		Color:       req.Color,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toBookmarkResponse(b))
}

func (h *BookmarkHandler) Get(w http.ResponseWriter, r *http.Request) {
	b, err := h.bookmarks.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toBookmarkResponse(b))
}

type updateBookmarkRequest struct {
	Title       *string `json:"title"`
	URL         *string `json:"url"`
	Description *string `json:"description"`
	ParentID    *string `json:"parent_id"`
	Icon        *string `json:"icon"`
	Color       *string `json:"color"`
	Order       *int    `json:"order"`
}

func (h *BookmarkHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateBookmarkRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	b, err := h.bookmarks.Update(r.Context(), r.PathValue("id"), service.UpdateBookmarkInput{
		Title:       req.Title,
		URL:         req.URL,
		Description: req.Description,
		ParentID:    req.ParentID,
		Icon:        req.Icon,
		Color:       req.Color,
		Order:       req.Order,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toBookmarkResponse(b))
}

func (h *BookmarkHandler) Delete(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.bookmarks.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	if !deleted {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "bookmark not found"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

type moveBookmarkRequest struct {
	SourceID    string  `json:"sourceId"`
	TargetID    *string `json:"targetId"`
	NewParentID *string `json:"newParentId"`
	InsertIndex int     `json:"insertIndex"`
}

// Move reparents a bookmark. The client has two ways to say "root": an
// explicit null newParentId with no targetId, or an empty-string targetId
// from the drag layer dropping onto the background.
func (h *BookmarkHandler) Move(w http.ResponseWriter, r *http.Request) {
	var req moveBookmarkRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.SourceID == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "sourceId is required"})
		return
	}

	newParent := req.NewParentID
	if newParent == nil {
		newParent = req.TargetID
	}
	if req.TargetID != nil && *req.TargetID == "" {
		newParent = nil
	}

	if err := h.bookmarks.Move(r.Context(), req.SourceID, newParent, req.InsertIndex); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

type reorderRequest struct {
	BookmarkOrders []orderUpdate `json:"bookmarkOrders"`
}

type orderUpdate struct {
	ID    string `json:"id"`
	Order *int   `json:"order"`
}

func (h *BookmarkHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	var req reorderRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	orders, ok := toOrderUpdates(w, req.BookmarkOrders)
	if !ok {
		return
	}
	if err := h.bookmarks.Reorder(r.Context(), orders); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

type parentOptionResponse struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Depth int    `json:"depth"`
}

func (h *BookmarkHandler) ParentOptions(w http.ResponseWriter, r *http.Request) {
	options, err := h.bookmarks.ParentOptions(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	out := make([]parentOptionResponse, 0, len(options))
	for _, o := range options {
		out = append(out, parentOptionResponse{ID: o.ID, Title: o.Title, Depth: o.Depth})
	}
	writeJSON(w, http.StatusOK, out)
}

// toOrderUpdates validates a bulk reorder payload: every entry needs an id
// and an integer order.
func toOrderUpdates(w http.ResponseWriter, items []orderUpdate) ([]service.OrderUpdate, bool) {
	orders := make([]service.OrderUpdate, 0, len(items))
	for _, item := range items {
		if item.ID == "" || item.Order == nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "each item must have id and order"})
			return nil, false
		}
		orders = append(orders, service.OrderUpdate{ID: item.ID, Order: *item.Order})
	}
	return orders, true
}
