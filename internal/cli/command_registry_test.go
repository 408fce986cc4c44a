package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCommandRegistry(t *testing.T) {
	app, _, _ := setupTestAppWithMockAPI(t)

	registry := NewCommandRegistry(app)

	assert.NotNil(t, registry)
	assert.Equal(t, []string{"add", "delete", "edit", "list", "seed", "toggle"}, registry.Names())
}

func TestCommandRegistry_Execute(t *testing.T) {
	app, mock, _ := setupTestAppWithMockAPI(t)
	registry := NewCommandRegistry(app)
	ctx := context.Background()

	t.Run("executes add command", func(t *testing.T) {
		err := registry.Execute(ctx, "add", []string{"Test Task", "Body"})
		require.NoError(t, err)
		require.Len(t, mock.order, 1)
		assert.Equal(t, "Test Task", mock.tasks[mock.order[0]].Name)
	})

	t.Run("executes toggle command", func(t *testing.T) {
		err := registry.Execute(ctx, "toggle", []string{"task0001"})
		require.NoError(t, err)
		assert.True(t, mock.tasks[mock.order[0]].IsCompleted)
	})

	t.Run("executes list command", func(t *testing.T) {
		assert.NoError(t, registry.Execute(ctx, "list", []string{}))
	})

	t.Run("executes delete command", func(t *testing.T) {
		require.NoError(t, registry.Execute(ctx, "delete", []string{"task0001"}))
		assert.Empty(t, mock.tasks)
	})

	t.Run("handles unknown command", func(t *testing.T) {
		err := registry.Execute(ctx, "unknown", []string{})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "unknown command")
	})

	t.Run("handles empty command", func(t *testing.T) {
		err := registry.Execute(ctx, "", []string{})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "unknown command")
	})
}

func TestCommandRegistry_GetUsage(t *testing.T) {
	app, _, _ := setupTestAppWithMockAPI(t)

	usage := NewCommandRegistry(app).GetUsage()

	for _, name := range []string{"list", "add", "edit", "delete", "toggle", "seed"} {
		assert.Contains(t, usage, name)
	}
}

type recordingCommand struct {
	args []string
}

func (c *recordingCommand) Execute(ctx context.Context, args []string) error {
	c.args = args
	return nil
}

func TestCommandRegistry_Register(t *testing.T) {
	app, _, _ := setupTestAppWithMockAPI(t)
	registry := NewCommandRegistry(app)
	custom := &recordingCommand{}

	registry.Register("custom", custom)
	require.NoError(t, registry.Execute(context.Background(), "custom", []string{"x", "y"}))

	assert.Equal(t, []string{"x", "y"}, custom.args)
	assert.Contains(t, registry.Names(), "custom")
}
