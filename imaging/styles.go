package imaging

import "github.com/charmbracelet/lipgloss"

// Local styles for messages printed from inside workers
var (
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))
)
