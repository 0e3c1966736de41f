package domain

import (
	"fmt"
	"strings"
	"time"
)

// Validation messages surfaced to clients.
const (
	msgTitleRequired      = "Field 'title' is required and must be a string."
	msgDescriptionString  = "Field 'description' must be a string."
	msgDueDateFormat      = "Invalid 'due_date'. Use ISO 8601 format, e.g. '2025-01-01T10:00:00'"
	allowedStatusFormat   = "Invalid status '%v'. Allowed: [%s]"
	allowedPriorityFormat = "Invalid priority '%v'. Allowed: [%s]"
)

// dueDateLayouts are the accepted due date formats, tried in order.
var dueDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// TaskPatch is the normalized output of payload validation: an explicit
// optional-field record holding only the fields that were present and valid.
// A nil pointer means the field was absent from the payload. ClearDueDate
// marks the distinct "due_date was an empty string" case, which clears the
// due date rather than leaving it unchanged.
type TaskPatch struct {
	Title        *string
	Description  *string
	Status       *Status
	Priority     *Priority
	DueDate      *time.Time
	ClearDueDate bool
}

// ApplyTo merges the patch into an existing task, changing only the fields
// that were present in the payload.
func (p *TaskPatch) ApplyTo(t *Task) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = p.Description
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.ClearDueDate {
		t.DueDate = nil
	} else if p.DueDate != nil {
		t.DueDate = p.DueDate
	}
}

// ParseTaskPatch validates an untyped task payload and produces a TaskPatch
// containing only the fields that were present and valid. When partial is
// false the title is mandatory (creation); when true any subset of fields is
// acceptable (update). Validation stops at the first violation. Fields set
// to JSON null are treated as absent. No defaulting happens here: the
// creation path applies defaults via NewTask.
func ParseTaskPatch(fields map[string]any, partial bool) (*TaskPatch, error) {
	patch := &TaskPatch{}

	title, hasTitle := fields["title"]
	if title == nil {
		hasTitle = false
	}
	if !partial && !hasTitle {
		return nil, NewValidationError("title", msgTitleRequired)
	}
	if hasTitle {
		s, ok := title.(string)
		if !ok {
			return nil, NewValidationError("title", msgTitleRequired)
		}
		s = strings.TrimSpace(s)
		if s == "" {
			// A task title may never become empty, on update either.
			return nil, NewValidationError("title", msgTitleRequired)
		}
		patch.Title = &s
	}

	if desc, ok := fields["description"]; ok && desc != nil {
		s, ok := desc.(string)
		if !ok {
			return nil, NewValidationError("description", msgDescriptionString)
		}
		s = strings.TrimSpace(s)
		patch.Description = &s
	}

	if status, ok := fields["status"]; ok && status != nil {
		s, isString := status.(string)
		if !isString || !Status(s).Valid() {
			return nil, NewValidationError("status", fmt.Sprintf(
				allowedStatusFormat, status, strings.Join(statusValues, ", ")))
		}
		v := Status(s)
		patch.Status = &v
	}

	if priority, ok := fields["priority"]; ok && priority != nil {
		s, isString := priority.(string)
		if !isString || !Priority(s).Valid() {
			return nil, NewValidationError("priority", fmt.Sprintf(
				allowedPriorityFormat, priority, strings.Join(priorityValues, ", ")))
		}
		v := Priority(s)
		patch.Priority = &v
	}

	if due, ok := fields["due_date"]; ok && due != nil {
		s, isString := due.(string)
		if !isString {
			return nil, NewValidationError("due_date", msgDueDateFormat)
		}
		if s == "" {
			// An explicit empty string clears the due date. Distinct from
			// the field being omitted, which leaves it unchanged.
			patch.ClearDueDate = true
		} else {
			parsed, err := parseDueDate(s)
			if err != nil {
				return nil, NewValidationError("due_date", msgDueDateFormat)
			}
			patch.DueDate = &parsed
		}
	}

	return patch, nil
}

// parseDueDate parses an ISO 8601 date-time, accepting RFC 3339, the
// zone-less date-time form, and a bare date. Zone-less values are read as UTC.
func parseDueDate(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range dueDateLayouts {
		t, err := time.ParseInLocation(layout, s, time.UTC)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
