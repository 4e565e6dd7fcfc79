package render

import "github.com/charmbracelet/lipgloss"

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170"))

	BranchStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	TypeStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("75")).Bold(true)
	IDStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	CaptionStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	ValueStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	DisabledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true)

	FrameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1)
)
