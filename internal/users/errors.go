package users

import (
	"errors"
	"strings"
)

var (
	// ErrNotFound is returned when no record matches a well-formed id.
	ErrNotFound = errors.New("user not found")

	// ErrInvalidID is returned when an id cannot be parsed as an ObjectID.
	ErrInvalidID = errors.New("invalid user ID format")
)

// FieldError names a single violated field rule.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every violated field rule for a submitted record.
// It is always recoverable and never partially applied.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages(), ", ")
}

// Messages returns the human-readable message for each violated field.
func (e *ValidationError) Messages() []string {
	out := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		out = append(out, f.Message)
	}
	return out
}
