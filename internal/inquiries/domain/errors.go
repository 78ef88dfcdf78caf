package domain

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrNotFound       = errors.New("inquiry not found")
	ErrInvalidInquiry = errors.New("invalid inquiry")
	ErrRateLimited    = errors.New("too many inquiries, try again later")
	ErrDuplicate      = errors.New("inquiry already exists")
)

// ValidationError carries one message per offending field.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "invalid inquiry: " + strings.Join(parts, ", ")
}

// Unwrap lets callers match validation failures with errors.Is(err, ErrInvalidInquiry).
func (e *ValidationError) Unwrap() error {
	return ErrInvalidInquiry
}
