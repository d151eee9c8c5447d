package httpapi

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthz(t *testing.T) {
	srv := newTestServer(t)

	resp, data := doJSON(t, http.MethodGet, srv.URL+"/healthz", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.Unmarshal(data, &body))
	assert.Equal(t, "ok", body["status"])
}

func TestTodoAPI_CRUDAndReorder(t *testing.T) {
	srv := newTestServer(t)

	resp, data := doJSON(t, http.MethodPost, srv.URL+"/api/todos", map[string]any{"title": "first"})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(data))
	var first todoResponse
	require.NoError(t, json.Unmarshal(data, &first))
	assert.Equal(t, 1, first.Order)

	resp, data = doJSON(t, http.MethodPost, srv.URL+"/api/todos", map[string]any{"title": "second"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var second todoResponse
	require.NoError(t, json.Unmarshal(data, &second))

	resp, _ = doJSON(t, http.MethodPut, srv.URL+"/api/todos/"+first.ID, map[string]any{"completed": true})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodPost, srv.URL+"/api/todos/reorder", map[string]any{
		"todoOrders": []map[string]any{
			{"id": first.ID, "order": 2},
			{"id": second.ID, "order": 1},
		},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, data = doJSON(t, http.MethodGet, srv.URL+"/api/todos", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var todos []todoResponse
	require.NoError(t, json.Unmarshal(data, &todos))
	require.Len(t, todos, 2)
	assert.Equal(t, "second", todos[0].Title)
	assert.Equal(t, "first", todos[1].Title)
	assert.True(t, todos[1].Completed)

	resp, _ = doJSON(t, http.MethodDelete, srv.URL+"/api/todos/"+first.ID, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestReminderAPI_BadDueDateIs400(t *testing.T) {
	srv := newTestServer(t)

	resp, _ := doJSON(t, http.MethodPost, srv.URL+"/api/reminders", map[string]any{
		"title":    "dentist",
		"due_date": "next week",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGoalAPI_CreateWithPriority(t *testing.T) {
	srv := newTestServer(t)

	resp, data := doJSON(t, http.MethodPost, srv.URL+"/api/goals", map[string]any{
		"title":    "Vacation",
		"amount":   "3,000",
		"priority": "medium",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(data))

	var g goalResponse
	require.NoError(t, json.Unmarshal(data, &g))
	require.NotNil(t, g.Priority)
	assert.Equal(t, "medium", *g.Priority)
	assert.Equal(t, "0", g.Progress)
}

func TestFundAPI_BadPriceIs400(t *testing.T) {
	srv := newTestServer(t)

	resp, _ := doJSON(t, http.MethodPost, srv.URL+"/api/funds", map[string]any{
		"title": "lens",
		"price": "$900",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSavedMoneyAPI_DefaultThenSet(t *testing.T) {
	srv := newTestServer(t)

	resp, data := doJSON(t, http.MethodGet, srv.URL+"/api/saved-money", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body savedMoneyResponse
	require.NoError(t, json.Unmarshal(data, &body))
	assert.Equal(t, "0", body.Amount)

	resp, data = doJSON(t, http.MethodPost, srv.URL+"/api/saved-money", map[string]any{"amount": "7,500"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(data, &body))
	assert.Equal(t, "7,500", body.Amount)
}

func TestTodoSessionAPI_DefaultTitle(t *testing.T) {
	srv := newTestServer(t)

	resp, data := doJSON(t, http.MethodPost, srv.URL+"/api/todo-sessions", map[string]any{
		"content": "scratch notes",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var s todoSessionResponse
	require.NoError(t, json.Unmarshal(data, &s))
	assert.Equal(t, "Untitled Session", s.Title)
	assert.Equal(t, "scratch notes", s.Content)
}
