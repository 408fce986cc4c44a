package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"todolist/internal/api"
	"todolist/internal/config"
)

// Run starts the interactive list and blocks until the user quits or ctx is done.
func Run(ctx context.Context, a api.API, cfg *config.Config) error {
	program := tea.NewProgram(
		NewModel(ctx, a, cfg),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("interactive list failed: %w", err)
	}
	return nil
}
