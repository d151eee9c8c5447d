package httpapi

import (
	"net/http"

	"github.com/rs/zerolog"
)

// Handlers bundles every resource handler the router mounts.
type Handlers struct {
	Bookmarks    *BookmarkHandler
	Todos        *TodoHandler
	Reminders    *ReminderHandler
	Goals        *GoalHandler
	Funds        *FundHandler
	SavedMoney   *SavedMoneyHandler
	TodoSessions *TodoSessionHandler
}

// NewRouter mounts the API routes and wraps them with request logging.
func NewRouter(logger zerolog.Logger, h Handlers) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	mux.HandleFunc("GET /api/bookmarks", h.Bookmarks.GetAll)
	mux.HandleFunc("POST /api/bookmarks", h.Bookmarks.Create)
	mux.HandleFunc("POST /api/bookmarks/move", h.Bookmarks.Move)
	mux.HandleFunc("POST /api/bookmarks/reorder", h.Bookmarks.Reorder)
	mux.HandleFunc("GET /api/bookmarks/parents", h.Bookmarks.ParentOptions)
	mux.HandleFunc("GET /api/bookmarks/{id}", h.Bookmarks.Get)
	mux.HandleFunc("PUT /api/bookmarks/{id}", h.Bookmarks.Update)
	mux.HandleFunc("DELETE /api/bookmarks/{id}", h.Bookmarks.Delete)

	mux.HandleFunc("GET /api/todos", h.Todos.List)
	mux.HandleFunc("POST /api/todos", h.Todos.Create)
	mux.HandleFunc("POST /api/todos/reorder", h.Todos.Reorder)
	mux.HandleFunc("GET /api/todos/{id}", h.Todos.Get)
	mux.HandleFunc("PUT /api/todos/{id}", h.Todos.Update)
	mux.HandleFunc("DELETE /api/todos/{id}", h.Todos.Delete)

	mux.HandleFunc("GET /api/reminders", h.Reminders.List)
	mux.HandleFunc("POST /api/reminders", h.Reminders.Create)
	mux.HandleFunc("POST /api/reminders/reorder", h.Reminders.Reorder)
	mux.HandleFunc("GET /api/reminders/{id}", h.Reminders.Get)
	mux.HandleFunc("PUT /api/reminders/{id}", h.Reminders.Update)
	mux.HandleFunc("DELETE /api/reminders/{id}", h.Reminders.Delete)

	mux.HandleFunc("GET /api/goals", h.Goals.List)
	mux.HandleFunc("POST /api/goals", h.Goals.Create)
	mux.HandleFunc("POST /api/goals/reorder", h.Goals.Reorder)
	mux.HandleFunc("GET /api/goals/{id}", h.Goals.Get)
	mux.HandleFunc("PUT /api/goals/{id}", h.Goals.Update)
	mux.HandleFunc("DELETE /api/goals/{id}", h.Goals.Delete)

	mux.HandleFunc("GET /api/funds", h.Funds.List)
	mux.HandleFunc("POST /api/funds", h.Funds.Create)
	mux.HandleFunc("POST /api/funds/reorder", h.Funds.Reorder)
	mux.HandleFunc("GET /api/funds/{id}", h.Funds.Get)
	mux.HandleFunc("PUT /api/funds/{id}", h.Funds.Update)
	mux.HandleFunc("DELETE /api/funds/{id}", h.Funds.Delete)

	mux.HandleFunc("GET /api/saved-money", h.SavedMoney.Get)
	mux.HandleFunc("POST /api/saved-money", h.SavedMoney.Set)

	mux.HandleFunc("GET /api/todo-sessions", h.TodoSessions.List)
	mux.HandleFunc("POST /api/todo-sessions", h.TodoSessions.Create)
	mux.HandleFunc("GET /api/todo-sessions/{id}", h.TodoSessions.Get)
	mux.HandleFunc("PUT /api/todo-sessions/{id}", h.TodoSessions.Update)
	mux.HandleFunc("DELETE /api/todo-sessions/{id}", h.TodoSessions.Delete)

	return RequestLogger(logger)(mux)
}
