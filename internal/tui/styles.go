package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle       = lipgloss.NewStyle().Padding(1, 2)
	titleStyle     = lipgloss.NewStyle().Bold(true)
	helpStyle      = lipgloss.NewStyle().Faint(true)
	labelStyle     = lipgloss.NewStyle().Bold(true)
	focusedStyle   = lipgloss.NewStyle().Bold(true).Underline(true)
	tooltipStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).Faint(true)
	infoMsgStyle   = lipgloss.NewStyle()
	successStyle   = lipgloss.NewStyle().Bold(true)
	errorMsgStyle  = lipgloss.NewStyle().Bold(true)
	warningStyle   = lipgloss.NewStyle().Italic(true)
	fadedMsgStyle  = lipgloss.NewStyle().Faint(true)
	passphraseBox  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
	incompatibleBx = lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).Padding(1, 2).Bold(true)
)
