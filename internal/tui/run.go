package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the interactive browser and blocks until the user quits or ctx
// is canceled. It returns the searches committed during the session.
func Run(ctx context.Context, opts ...Option) ([]string, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Recorder != nil {
		defer cfg.Recorder.Close()
	}

	p := tea.NewProgram(newModel(cfg), tea.WithAltScreen(), tea.WithContext(ctx))

	final, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("TUI error: %w", err)
	}

	if m, ok := final.(Model); ok {
		return m.History(), nil
	}
	return nil, nil
}
