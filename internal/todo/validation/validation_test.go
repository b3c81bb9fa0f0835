package validation_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/aussiebroadwan/todo/internal/todo/validation"
	"github.com/stretchr/testify/require"
)

type createInput struct {
	Title       string  `json:"title" validate:"required,min=1,max=100"`
	Description string  `json:"description" validate:"max=500"`
	Status      string  `json:"status" validate:"omitempty,oneof=pending in-progress completed"`
	DueDate     *string `json:"dueDate" validate:"omitempty,calendar"`
}

type patchInput struct {
	Title       *string `json:"title" validate:"omitnil,min=1,max=100"`
	IsCompleted *bool   `json:"isCompleted"`
}

func ptr[T any](v T) *T { return &v }

func requireFields(t *testing.T, err error) []validation.FieldError {
	t.Helper()
	var verr *validation.Error
	require.True(t, errors.As(err, &verr), "expected *validation.Error, got %v", err)
	return verr.Fields
}

func TestStruct(t *testing.T) {
	v := validation.New()

	t.Run("valid input passes", func(t *testing.T) {
		require.NoError(t, v.Struct(createInput{Title: "Buy milk", Status: "pending", DueDate: ptr("2026-12-24")}))
	})

	t.Run("reports every failure in field order", func(t *testing.T) {
		long := make([]byte, 501)
		for i := range long {
			long[i] = 'x'
		}
		fields := requireFields(t, v.Struct(createInput{
			Description: string(long),
			Status:      "done",
			DueDate:     ptr("next tuesday"),
		}))

		require.Equal(t, []validation.FieldError{
			{Field: "title", Message: "title is required"},
			{Field: "description", Message: "must be at most 500 characters"},
			{Field: "status", Message: "must be one of: pending, in-progress, completed"},
			{Field: "dueDate", Message: "must be a valid date"},
		}, fields)
	})

	t.Run("empty optional date is skipped", func(t *testing.T) {
		require.NoError(t, v.Struct(createInput{Title: "x", DueDate: ptr("")}))
	})

	t.Run("nil pointers are not validated", func(t *testing.T) {
		require.NoError(t, v.Struct(patchInput{}))
	})

	t.Run("present but empty title fails", func(t *testing.T) {
		fields := requireFields(t, v.Struct(patchInput{Title: ptr("")}))
		require.Equal(t, []validation.FieldError{{Field: "title", Message: "title cannot be empty"}}, fields)
	})
}

func TestParseDate(t *testing.T) {
	cases := []struct {
		in   string
		want time.Time
	}{
		{"2026-03-01", time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)},
		{"2026-03-01T10:30:00Z", time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC)},
		{"2026-03-01T10:30:00+10:00", time.Date(2026, 3, 1, 0, 30, 0, 0, time.UTC)},
		{"2026-03-01T10:30:00.123Z", time.Date(2026, 3, 1, 10, 30, 0, 123000000, time.UTC)},
		{"2026-03-01T10:30:00", time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC)},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := validation.ParseDate(tc.in)
			require.NoError(t, err)
			require.True(t, tc.want.Equal(got), "got %s", got)
		})
	}

	for _, bad := range []string{"", "2026-13-01", "yesterday", "01/03/2026"} {
		_, err := validation.ParseDate(bad)
		require.Error(t, err, bad)
	}
}

func TestFromJSON(t *testing.T) {
	var in patchInput
	err := json.Unmarshal([]byte(`{"isCompleted":"yes"}`), &in)
	require.Error(t, err)

	verr, ok := validation.FromJSON(err)
	require.True(t, ok)
	require.Equal(t, []validation.FieldError{{Field: "isCompleted", Message: "must be a boolean"}}, verr.Fields)

	_, ok = validation.FromJSON(errors.New("unexpected EOF"))
	require.False(t, ok)
}
