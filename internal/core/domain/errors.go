package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrSessionExpired covers every rejected bearer token outside of the login
// exchange. There is no refresh flow: expiry is terminal for the session.
var ErrSessionExpired = errors.New("session expired or invalid")

var ErrForbidden = errors.New("access forbidden")
var ErrNotFound = errors.New("resource not found")
var ErrNotAuthenticated = errors.New("not authenticated")

// RequestError is any other network or server failure. Operations that hit
// one are abandoned; there are no automatic retries.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("request failed with status %d", e.Status)
	}
	return fmt.Sprintf("request failed with status %d: %s", e.Status, e.Message)
}

// ValidationError reports client-side schema violations per field. It blocks
// submission before anything is dispatched.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	msgs := make([]string, 0, len(keys))
	for _, k := range keys {
		msgs = append(msgs, k+": "+e.Fields[k])
	}
	return strings.Join(msgs, "; ")
}
