package tui

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

// DebugLogEnv names the environment variable that, when set, receives the
// bubbletea debug log.
const DebugLogEnv = "DIRVIEW_DEBUG_LOG"

// Run starts the browser on the alternate screen and blocks until the user
// quits or ctx is canceled.
func Run(ctx context.Context, m *Model) error {
	if path := os.Getenv(DebugLogEnv); path != "" {
		f, err := tea.LogToFile(path, "dirview")
		if err != nil {
			return fmt.Errorf("failed to open debug log: %w", err)
		}
		defer func() {
			_ = f.Close() // Best-effort cleanup
		}()
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("browser failed: %w", err)
	}
	return nil
}
