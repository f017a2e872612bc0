package entities

import (
	"errors"
	"strings"
)

var ErrNotFound = errors.New("not found")

// ValidationError collects every problem found in a request body.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string { return strings.Join(e.Errors, "; ") }

func (e *ValidationError) Add(msg string) { e.Errors = append(e.Errors, msg) }

// OrNil returns e when it holds at least one message.
func (e *ValidationError) OrNil() error {
	if len(e.Errors) == 0 {
		return nil
	}
	return e
}
