package validation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ndewijer/TradeLog-Backend/internal/apperrors"
)

// Error collects field-specific validation messages.
type Error struct {
	Fields map[string]string
}

// NewError returns an Error with a single field message.
func NewError(field, msg string) *Error {
	return &Error{Fields: map[string]string{field: msg}}
}

func (e *Error) Error() string {
	return strings.Join(e.Messages(), "; ")
}

// Messages returns the field messages as "field: message", sorted by field.
func (e *Error) Messages() []string {
	fields := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	msgs := make([]string, 0, len(fields))
	for _, field := range fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", field, e.Fields[field]))
	}
	return msgs
}

// Unwrap makes every validation Error match apperrors.ErrValidation.
func (e *Error) Unwrap() error {
	return apperrors.ErrValidation
}
