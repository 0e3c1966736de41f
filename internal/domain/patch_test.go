package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseTaskPatch_TitleRules verifies the title handling for both the
// creation (partial=false) and update (partial=true) paths.
func TestParseTaskPatch_TitleRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		fields    map[string]any
		partial   bool
		wantErr   string
		wantTitle string
	}{
		{
			name:    "missing_title_on_create_fails",
			fields:  map[string]any{},
			partial: false,
			wantErr: "Field 'title' is required and must be a string.",
		},
		{
			name:    "null_title_on_create_fails",
			fields:  map[string]any{"title": nil},
			partial: false,
			wantErr: "Field 'title' is required and must be a string.",
		},
		{
			name:    "empty_title_on_create_fails",
			fields:  map[string]any{"title": ""},
			partial: false,
			wantErr: "Field 'title' is required and must be a string.",
		},
		{
			name:    "whitespace_title_fails",
			fields:  map[string]any{"title": "   "},
			partial: false,
			wantErr: "Field 'title' is required and must be a string.",
		},
		{
			name:    "non_string_title_fails",
			fields:  map[string]any{"title": 42.0},
			partial: false,
			wantErr: "Field 'title' is required and must be a string.",
		},
		{
			name:      "title_is_trimmed",
			fields:    map[string]any{"title": "  Write spec  "},
			partial:   false,
			wantTitle: "Write spec",
		},
		{
			name:    "missing_title_on_update_is_fine",
			fields:  map[string]any{},
			partial: true,
		},
		{
			name:    "empty_title_on_update_still_fails",
			fields:  map[string]any{"title": " "},
			partial: true,
			wantErr: "Field 'title' is required and must be a string.",
		},
		{
			name:      "title_on_update_is_trimmed",
			fields:    map[string]any{"title": " Rename "},
			partial:   true,
			wantTitle: "Rename",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			patch, err := ParseTaskPatch(tc.fields, tc.partial)

			if tc.wantErr != "" {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrValidation)
				assert.Equal(t, tc.wantErr, err.Error())
				assert.Nil(t, patch)
				return
			}

			require.NoError(t, err)
			if tc.wantTitle == "" {
				assert.Nil(t, patch.Title)
			} else {
				require.NotNil(t, patch.Title)
				assert.Equal(t, tc.wantTitle, *patch.Title)
			}
		})
	}
}

// TestParseTaskPatch_EnumRules verifies that status and priority are only
// ever accepted as members of their allowed sets, and that the failure
// message names both the invalid value and the allowed values.
func TestParseTaskPatch_EnumRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		fields  map[string]any
		wantErr string
	}{
		{
			name:    "invalid_status_names_value_and_set",
			fields:  map[string]any{"status": "blocked"},
			wantErr: "Invalid status 'blocked'. Allowed: [done, in_progress, todo]",
		},
		{
			name:    "non_string_status_fails",
			fields:  map[string]any{"status": 3.0},
			wantErr: "Invalid status '3'. Allowed: [done, in_progress, todo]",
		},
		{
			name:    "invalid_priority_names_value_and_set",
			fields:  map[string]any{"priority": "urgent"},
			wantErr: "Invalid priority 'urgent'. Allowed: [high, low, medium]",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			patch, err := ParseTaskPatch(tc.fields, true)

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)
			assert.Equal(t, tc.wantErr, err.Error())
			assert.Nil(t, patch)
		})
	}

	t.Run("all_valid_members_accepted", func(t *testing.T) {
		t.Parallel()

		for _, status := range []string{"todo", "in_progress", "done"} {
			patch, err := ParseTaskPatch(map[string]any{"status": status}, true)
			require.NoError(t, err)
			require.NotNil(t, patch.Status)
			assert.Equal(t, Status(status), *patch.Status)
		}

		for _, priority := range []string{"low", "medium", "high"} {
			patch, err := ParseTaskPatch(map[string]any{"priority": priority}, true)
			require.NoError(t, err)
			require.NotNil(t, patch.Priority)
			assert.Equal(t, Priority(priority), *patch.Priority)
		}
	})
}

// TestParseTaskPatch_DueDateRules verifies due date normalization: empty
// string clears, valid ISO 8601 parses, anything else fails.
func TestParseTaskPatch_DueDateRules(t *testing.T) {
	t.Parallel()

	t.Run("empty_string_clears_due_date", func(t *testing.T) {
		t.Parallel()

		patch, err := ParseTaskPatch(map[string]any{"due_date": ""}, true)

		require.NoError(t, err)
		assert.True(t, patch.ClearDueDate)
		assert.Nil(t, patch.DueDate)
	})

	t.Run("rfc3339_value_parses", func(t *testing.T) {
		t.Parallel()

		patch, err := ParseTaskPatch(map[string]any{"due_date": "2025-06-01T10:00:00Z"}, true)

		require.NoError(t, err)
		require.NotNil(t, patch.DueDate)
		assert.Equal(t, time.Date(2025, time.June, 1, 10, 0, 0, 0, time.UTC), *patch.DueDate)
		assert.False(t, patch.ClearDueDate)
	})

	t.Run("zoneless_value_parses_as_utc", func(t *testing.T) {
		t.Parallel()

		patch, err := ParseTaskPatch(map[string]any{"due_date": "2025-01-01T10:00:00"}, true)

		require.NoError(t, err)
		require.NotNil(t, patch.DueDate)
		assert.Equal(t, time.Date(2025, time.January, 1, 10, 0, 0, 0, time.UTC), *patch.DueDate)
	})

	t.Run("bare_date_parses", func(t *testing.T) {
		t.Parallel()

		patch, err := ParseTaskPatch(map[string]any{"due_date": "2025-03-15"}, true)

		require.NoError(t, err)
		require.NotNil(t, patch.DueDate)
		assert.Equal(t, time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC), *patch.DueDate)
	})

	t.Run("garbage_value_fails", func(t *testing.T) {
		t.Parallel()

		patch, err := ParseTaskPatch(map[string]any{"due_date": "next tuesday"}, true)

		require.Error(t, err)
		assert.Equal(t,
			"Invalid 'due_date'. Use ISO 8601 format, e.g. '2025-01-01T10:00:00'",
			err.Error())
		assert.Nil(t, patch)
	})

	t.Run("non_string_value_fails", func(t *testing.T) {
		t.Parallel()

		_, err := ParseTaskPatch(map[string]any{"due_date": 1735689600.0}, true)

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrValidation)
	})
}

// TestParseTaskPatch_DescriptionRules verifies description trimming and the
// presence semantics: null counts as absent, empty string is a valid value.
func TestParseTaskPatch_DescriptionRules(t *testing.T) {
	t.Parallel()

	t.Run("description_is_trimmed", func(t *testing.T) {
		t.Parallel()

		patch, err := ParseTaskPatch(map[string]any{
			"title":       "t",
			"description": "  some detail  ",
		}, false)

		require.NoError(t, err)
		require.NotNil(t, patch.Description)
		assert.Equal(t, "some detail", *patch.Description)
	})

	t.Run("empty_description_is_kept", func(t *testing.T) {
		t.Parallel()

		patch, err := ParseTaskPatch(map[string]any{"description": ""}, true)

		require.NoError(t, err)
		require.NotNil(t, patch.Description)
		assert.Equal(t, "", *patch.Description)
	})

	t.Run("null_description_counts_as_absent", func(t *testing.T) {
		t.Parallel()

		patch, err := ParseTaskPatch(map[string]any{"description": nil}, true)

		require.NoError(t, err)
		assert.Nil(t, patch.Description)
	})

	t.Run("non_string_description_fails", func(t *testing.T) {
		t.Parallel()

		_, err := ParseTaskPatch(map[string]any{"description": 1.0}, true)

		require.Error(t, err)
		assert.Equal(t, "Field 'description' must be a string.", err.Error())
	})
}

// TestParseTaskPatch_NoDefaulting verifies that the validator never invents
// fields: absent input fields stay absent in the patch.
func TestParseTaskPatch_NoDefaulting(t *testing.T) {
	t.Parallel()

	patch, err := ParseTaskPatch(map[string]any{"title": "only a title"}, false)

	require.NoError(t, err)
	assert.Nil(t, patch.Status)
	assert.Nil(t, patch.Priority)
	assert.Nil(t, patch.Description)
	assert.Nil(t, patch.DueDate)
	assert.False(t, patch.ClearDueDate)
}

// TestTaskPatch_ApplyTo verifies the explicit merge: only present fields
// change, ClearDueDate removes the due date, an empty patch is a no-op.
func TestTaskPatch_ApplyTo(t *testing.T) {
	t.Parallel()

	desc := "original"
	due := time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC)

	base := func() *Task {
		return &Task{
			ID:          7,
			Title:       "original title",
			Description: &desc,
			Status:      StatusInProgress,
			Priority:    PriorityHigh,
			DueDate:     &due,
			CreatedAt:   time.Date(2025, time.April, 1, 12, 0, 0, 0, time.UTC),
		}
	}

	t.Run("empty_patch_changes_nothing", func(t *testing.T) {
		t.Parallel()

		task := base()
		(&TaskPatch{}).ApplyTo(task)

		assert.Equal(t, base(), task)
	})

	t.Run("only_present_fields_change", func(t *testing.T) {
		t.Parallel()

		task := base()
		status := StatusDone
		(&TaskPatch{Status: &status}).ApplyTo(task)

		assert.Equal(t, StatusDone, task.Status)
		assert.Equal(t, "original title", task.Title)
		assert.Equal(t, PriorityHigh, task.Priority)
		require.NotNil(t, task.DueDate)
		assert.Equal(t, due, *task.DueDate)
	})

	t.Run("clear_due_date_removes_it", func(t *testing.T) {
		t.Parallel()

		task := base()
		(&TaskPatch{ClearDueDate: true}).ApplyTo(task)

		assert.Nil(t, task.DueDate)
	})
}
