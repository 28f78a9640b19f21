package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskdash/internal/model"
)

func newTestClient(srv *httptest.Server, token string) *Client {
	c := New(srv.URL, token)
	c.HTTP = srv.Client()
	return c
}

func TestListTasks_SendsBearerAndOrdering(t *testing.T) {
	var gotAuth, gotOrdering string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotOrdering = r.URL.Query().Get("ordering")
		_ = json.NewEncoder(w).Encode([]model.Task{
			{ID: 1, Title: "first", DueDate: "2026-09-01", Status: model.StatusPending},
			{ID: 2, Title: "second", DueDate: "2026-09-02", Status: model.StatusCompleted},
		})
	}))
	defer srv.Close()

	tasks, err := newTestClient(srv, "tok-123").ListTasks(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.Equal(t, "due_date", gotOrdering)
	require.Len(t, tasks, 2)
	assert.Equal(t, "first", tasks[0].Title)
}

func TestAuthedCall_401InvokesHookAndReturnsErrUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := newTestClient(srv, "stale")
	hookCalls := 0
	c.OnUnauthorized = func() { hookCalls++ }

	_, err := c.ListTasks(context.Background())
	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, 1, hookCalls)
}

func TestCreateTask_ValidationErrorSurfacesFieldMessages(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"title": ["This field is required."]}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv, "tok").CreateTask(context.Background(), model.TaskFields{})
	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, []string{"This field is required."}, valErr.Fields["title"])
	assert.Equal(t, "title: This field is required.", valErr.Error())
}

func TestCreateTask_Accepts201(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/tasks/", r.URL.Path)
		var fields model.TaskFields
		require.NoError(t, json.NewDecoder(r.Body).Decode(&fields))
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(model.Task{ID: 5, Title: fields.Title, Status: fields.Status})
	}))
	defer srv.Close()

	created, err := newTestClient(srv, "tok").CreateTask(context.Background(), model.TaskFields{
		Title:  "new task",
		Status: model.StatusPending,
	})
	require.NoError(t, err)
	assert.Equal(t, 5, created.ID)
	assert.Equal(t, "new task", created.Title)
}

func TestUpdateTask_PutsFullPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/tasks/9/", r.URL.Path)
		var fields model.TaskFields
		require.NoError(t, json.NewDecoder(r.Body).Decode(&fields))
		assert.Equal(t, model.StatusCompleted, fields.Status)
		_ = json.NewEncoder(w).Encode(model.Task{ID: 9, Title: fields.Title, Status: fields.Status})
	}))
	defer srv.Close()

	updated, err := newTestClient(srv, "tok").UpdateTask(context.Background(), 9, model.TaskFields{
		Title:  "renamed",
		Status: model.StatusCompleted,
	})
	require.NoError(t, err)
	assert.Equal(t, 9, updated.ID)
}

func TestDeleteTask_Accepts204(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/tasks/3/", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	require.NoError(t, newTestClient(srv, "tok").DeleteTask(context.Background(), 3))
}

func TestMarkComplete_PostsToActionEndpoint(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/tasks/4/mark_complete/", r.URL.Path)
		_ = json.NewEncoder(w).Encode(model.Task{ID: 4, Status: model.StatusCompleted})
	}))
	defer srv.Close()

	task, err := newTestClient(srv, "tok").MarkComplete(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, model.StatusCompleted, task.Status)
}

func TestLogin_UnauthenticatedAndNoHookOnBadCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Empty(t, r.Header.Get("Authorization"))
		if r.URL.Path != "/users/login/" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		var creds map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		if creds["password"] != "correct" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"detail": "No active account found with the given credentials"}`))
			return
		}
		_ = json.NewEncoder(w).Encode(Credentials{Access: "a", Refresh: "r", Username: creds["username"]})
	}))
	defer srv.Close()

	c := newTestClient(srv, "")
	hookCalls := 0
	c.OnUnauthorized = func() { hookCalls++ }

	_, err := c.Login(context.Background(), "alice", "wrong")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, 0, hookCalls, "bad credentials must not trigger the forced-logout hook")

	creds, err := c.Login(context.Background(), "alice", "correct")
	require.NoError(t, err)
	assert.Equal(t, "alice", creds.Username)
	assert.Equal(t, "a", creds.Access)
}

func TestDecodeError_AcceptsBothFieldShapes(t *testing.T) {
	err := decodeError(http.StatusBadRequest, []byte(`{"due_date": "Date has wrong format.", "title": ["Too long.", "No tabs."]}`))
	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, []string{"Date has wrong format."}, valErr.Fields["due_date"])
	assert.Equal(t, []string{"Too long.", "No tabs."}, valErr.Fields["title"])
	assert.Equal(t, "due_date: Date has wrong format.\ntitle: Too long.; No tabs.", valErr.Error())
}

func TestDecodeError_FallsBackToStatusError(t *testing.T) {
	err := decodeError(http.StatusInternalServerError, []byte("<html>oops</html>"))
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusInternalServerError, statusErr.Code)

	var valErr *ValidationError
	assert.False(t, errors.As(err, &valErr))
}
