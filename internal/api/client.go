package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"taskdash/internal/model"
)

const DefaultBaseURL = "http://localhost:8000/api"

// Client wraps every remote call with the credential header and uniform JSON
// content typing. One attempt per call: no retries, no backoff. A 401 response
// invokes OnUnauthorized exactly once per call and surfaces ErrUnauthorized,
// so callers never touch a response that isn't there.
type Client struct {
	BaseURL string
	Token   string
	HTTP    *http.Client

	// OnUnauthorized is the hook the session guard installs: clear the stored
	// session so the next invocation lands on the login surface.
	OnUnauthorized func()
}

func New(baseURL, token string) *Client {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Token:   token,
		HTTP:    &http.Client{Timeout: 30 * time.Second},
	}
}

// Credentials is the login response payload.
type Credentials struct {
	Access   string `json:"access"`
	Refresh  string `json:"refresh"`
	Username string `json:"username"`
}

// Login exchanges a username/password for tokens. It is the one unauthed call;
// a 401 here means bad credentials, not an expired session, so the logout hook
// is not invoked.
func (c *Client) Login(ctx context.Context, username, password string) (Credentials, error) {
	body, code, err := c.roundTrip(ctx, http.MethodPost, "/users/login/", map[string]string{
		"username": username,
		"password": password,
	}, false)
	if err != nil {
		return Credentials{}, err
	}
	if code != http.StatusOK {
		return Credentials{}, decodeError(code, body)
	}
	var creds Credentials
	if err := json.Unmarshal(body, &creds); err != nil {
		return Credentials{}, fmt.Errorf("login: decode response: %w", err)
	}
	return creds, nil
}

// ListTasks fetches the full task collection, ordered by due date on the
// server. The caller replaces its collection wholesale with the result.
func (c *Client) ListTasks(ctx context.Context) ([]model.Task, error) {
	body, code, err := c.roundTrip(ctx, http.MethodGet, "/tasks/?ordering=due_date", nil, true)
	if err != nil {
		return nil, err
	}
	if code != http.StatusOK {
		return nil, decodeError(code, body)
	}
	var tasks []model.Task
	if err := json.Unmarshal(body, &tasks); err != nil {
		return nil, fmt.Errorf("list tasks: decode response: %w", err)
	}
	return tasks, nil
}

func (c *Client) CreateTask(ctx context.Context, fields model.TaskFields) (model.Task, error) {
	return c.taskCall(ctx, http.MethodPost, "/tasks/", fields, http.StatusCreated, http.StatusOK)
}

func (c *Client) UpdateTask(ctx context.Context, id int, fields model.TaskFields) (model.Task, error) {
	return c.taskCall(ctx, http.MethodPut, fmt.Sprintf("/tasks/%d/", id), fields, http.StatusOK)
}

func (c *Client) DeleteTask(ctx context.Context, id int) error {
	body, code, err := c.roundTrip(ctx, http.MethodDelete, fmt.Sprintf("/tasks/%d/", id), nil, true)
	if err != nil {
		return err
	}
	if code != http.StatusNoContent && code != http.StatusOK {
		return decodeError(code, body)
	}
	return nil
}

func (c *Client) MarkComplete(ctx context.Context, id int) (model.Task, error) {
	return c.taskCall(ctx, http.MethodPost, fmt.Sprintf("/tasks/%d/mark_complete/", id), nil, http.StatusOK)
}

func (c *Client) MarkPending(ctx context.Context, id int) (model.Task, error) {
	return c.taskCall(ctx, http.MethodPost, fmt.Sprintf("/tasks/%d/mark_pending/", id), nil, http.StatusOK)
}

func (c *Client) taskCall(ctx context.Context, method, endpoint string, payload any, okCodes ...int) (model.Task, error) {
	body, code, err := c.roundTrip(ctx, method, endpoint, payload, true)
	if err != nil {
		return model.Task{}, err
	}
	ok := false
	for _, want := range okCodes {
		if code == want {
			ok = true
			break
		}
	}
	if !ok {
		return model.Task{}, decodeError(code, body)
	}
	var t model.Task
	if err := json.Unmarshal(body, &t); err != nil {
		return model.Task{}, fmt.Errorf("%s %s: decode response: %w", method, endpoint, err)
	}
	return t, nil
}

func (c *Client) roundTrip(ctx context.Context, method, endpoint string, payload any, authed bool) ([]byte, int, error) {
	target, err := c.resolve(endpoint)
	if err != nil {
		return nil, 0, err
	}

	var reqBody io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, 0, err
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reqBody)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	if authed && c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("%s %s: %w", method, endpoint, err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	if authed && resp.StatusCode == http.StatusUnauthorized {
		if c.OnUnauthorized != nil {
			c.OnUnauthorized()
		}
		return nil, resp.StatusCode, ErrUnauthorized
	}
	return body, resp.StatusCode, nil
}

func (c *Client) resolve(endpoint string) (string, error) {
	u, err := url.Parse(c.BaseURL + endpoint)
	if err != nil {
		return "", fmt.Errorf("resolve endpoint %q: %w", endpoint, err)
	}
	return u.String(), nil
}
