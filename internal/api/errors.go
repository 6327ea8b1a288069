package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNetwork marks failures where no response was received from the backend.
var ErrNetwork = errors.New("backend unreachable")

// NetworkError wraps a transport failure for a single request.
type NetworkError struct {
	Method string
	Path   string
	Err    error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.Path, e.Err)
}

// Unwrap exposes both ErrNetwork and the underlying cause to errors.Is.
func (e *NetworkError) Unwrap() []error { return []error{ErrNetwork, e.Err} }

// Error is a non-2xx response from the backend.  Message holds the most
// useful human readable text found in the body; Fields holds field level
// validation messages keyed by field name.
type Error struct {
	Status  int
	Message string
	Fields  map[string][]string
	Body    []byte
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend status %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("backend status %d", e.Status)
}

// Field returns the first message reported for name, or "".
func (e *Error) Field(name string) string {
	if msgs := e.Fields[name]; len(msgs) > 0 {
		return msgs[0]
	}
	return ""
}

// newError builds an Error from a response body.  Bodies that are not JSON
// objects keep an empty Message so callers fall back to a generic text.
func newError(status int, body []byte) *Error {
	e := &Error{Status: status, Body: body, Fields: map[string][]string{}}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return e
	}
	for _, key := range []string{"error", "detail", "message"} {
		if msg := messages(raw[key]); len(msg) > 0 {
			e.Message = msg[0]
			break
		}
	}
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		switch k {
		case "error", "detail", "message", "code":
			continue
		}
		if msgs := messages(raw[k]); len(msgs) > 0 {
			e.Fields[k] = msgs
		}
	}
	if e.Message == "" {
		if nfe := e.Fields["non_field_errors"]; len(nfe) > 0 {
			e.Message = nfe[0]
		}
	}
	return e
}

// messages accepts either a string or a list of strings.
func messages(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		s = strings.TrimSpace(s)
		if s == "" {
			return nil
		}
		return []string{s}
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		out := list[:0]
		for _, m := range list {
			if m = strings.TrimSpace(m); m != "" {
				out = append(out, m)
			}
		}
		return out
	}
	return nil
}

// Message returns the backend-provided message carried by err, or fallback
// when err is not a backend error or carries no message.
func Message(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
