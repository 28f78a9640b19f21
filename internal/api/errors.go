package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnauthorized is the tagged "credential rejected" outcome. The client has
// already cleared the stored session by the time a caller sees it; the only
// valid reaction is to send the user back to `taskdash login`.
var ErrUnauthorized = errors.New("session rejected by server; run `taskdash login`")

// StatusError is a non-success response without a structured error body.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	body := strings.TrimSpace(e.Body)
	if body == "" {
		return fmt.Sprintf("api: unexpected status %d", e.Code)
	}
	return fmt.Sprintf("api: unexpected status %d: %s", e.Code, body)
}

// ValidationError carries field-level messages from a rejected create/update,
// e.g. {"title": ["This field is required."]}. It is user-correctable: the
// editor shows it inline and stays open.
type ValidationError struct {
	Fields map[string][]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "api: validation failed"
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("%s: %s", k, strings.Join(e.Fields[k], "; ")))
	}
	return strings.Join(lines, "\n")
}

// decodeError turns a non-success response into the most specific error it
// can. Bodies shaped like {"field": "msg"} or {"field": ["msg", ...]} become
// a ValidationError; anything else is a plain StatusError.
func decodeError(code int, body []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err == nil && len(raw) > 0 {
		fields := map[string][]string{}
		ok := true
		for k, v := range raw {
			var one string
			if err := json.Unmarshal(v, &one); err == nil {
				fields[k] = []string{one}
				continue
			}
			var many []string
			if err := json.Unmarshal(v, &many); err == nil {
				fields[k] = many
				continue
			}
			ok = false
			break
		}
		if ok {
			return &ValidationError{Fields: fields}
		}
	}
	return &StatusError{Code: code, Body: string(body)}
}
