package validation

import (
	"fmt"
	"strings"
)

// Error carries per-field validation messages keyed by the JSON field path,
// e.g. "items[0].totalValueBrl". Handlers map it to a 400 response.
type Error struct {
	Fields map[string]string
}

func (e *Error) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", field, msg))
	}
	return strings.Join(msgs, "; ")
}
