package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "todolist/internal/errors"
)

func TestDeleteCommand_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes by full ID and re-lists", func(t *testing.T) {
		app, mock, out := setupTestAppWithMockAPI(t)
		id := mock.mustCreate(t, "Delete me", "Soon gone", false)
		mock.mustCreate(t, "Keep me", "Stays", false)

		require.NoError(t, NewDeleteCommand(app).Execute(ctx, []string{id}))

		assert.NotContains(t, mock.tasks, id)
		assert.Contains(t, out.String(), "Deleted task task0001: Delete me\n\n")
		assert.Contains(t, out.String(), "task0002 [ ] Keep me")
		assert.Contains(t, out.String(), "1 task, 0 completed")
	})

	t.Run("deletes by unique prefix", func(t *testing.T) {
		app, mock, _ := setupTestAppWithMockAPI(t)
		mock.mustCreate(t, "First", "One", false)
		second := mock.mustCreate(t, "Second", "Two", false)

		require.NoError(t, NewDeleteCommand(app).Execute(ctx, []string{"task0002"}))
		assert.NotContains(t, mock.tasks, second)
		assert.Len(t, mock.tasks, 1)
	})

	t.Run("ambiguous prefix deletes nothing", func(t *testing.T) {
		app, mock, _ := setupTestAppWithMockAPI(t)
		mock.mustCreate(t, "First", "One", false)
		mock.mustCreate(t, "Second", "Two", false)

		err := NewDeleteCommand(app).Execute(ctx, []string{"task"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "prefix matches more than one task")
		assert.Len(t, mock.tasks, 2)
	})

	t.Run("unknown ID", func(t *testing.T) {
		app, _, out := setupTestAppWithMockAPI(t)

		err := NewDeleteCommand(app).Execute(ctx, []string{"nope"})
		require.Error(t, err)
		assert.Equal(t, "failed to delete task: task not found: nope", err.Error())
		assert.Empty(t, out.String())
	})

	t.Run("requires exactly one argument", func(t *testing.T) {
		app, _, _ := setupTestAppWithMockAPI(t)

		for _, args := range [][]string{{}, {"a", "b"}} {
			err := NewDeleteCommand(app).Execute(ctx, args)
			assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeInvalidInput))
		}
	})
}
