package gateway

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationError is a 4xx rejection with a structured field-error body, the
// shape the backend emits for form submissions (e.g. registration). It is
// surfaced verbatim to the initiating screen and never retried.
type ValidationError struct {
	Status int
	Detail string
	Fields map[string][]string
}

func (e *ValidationError) addField(field string, messages ...string) {
	if e.Fields == nil {
		e.Fields = make(map[string][]string)
	}
	e.Fields[field] = append(e.Fields[field], messages...)
}

// Message renders the consolidated form message shown inline on the screen
// that submitted the request.
func (e *ValidationError) Message() string {
	if len(e.Fields) == 0 {
		if e.Detail != "" {
			return e.Detail
		}
		return fmt.Sprintf("request rejected (status %d)", e.Status)
	}

	fields := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, strings.Join(e.Fields[field], ", ")))
	}
	return strings.Join(parts, "; ")
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation rejected (%d): %s", e.Status, e.Message())
}
