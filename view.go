package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	minWidth  = 64
	minHeight = 24
)

// View renders the UI (required by tea.Model interface).
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	if m.width < minWidth || m.height < minHeight {
		return helpStyle.Render(
			fmt.Sprintf(
				"Terminal too small (%dx%d). Resize to at least %dx%d.",
				m.width,
				m.height,
				minWidth,
				minHeight,
			),
		)
	}

	contentWidth := m.width - 4
	stacked := m.width < 90
	leftWidth := contentWidth / 2
	rightWidth := contentWidth - leftWidth

	if stacked {
		leftWidth = contentWidth
		rightWidth = contentWidth
	}

	const (
		inputHeight    = 1
		quoteHeight    = 9
		scheduleHeight = 7
		historyHeight  = 2
	)

	appHeader := m.renderAppHeader(m.width - 2)
	inputPanel := m.renderInputPanel(leftWidth, inputHeight)
	quotePanel := m.renderQuotePanel(leftWidth, quoteHeight)
	historyPanel := m.renderHistoryPanel(m.width-2, historyHeight)
	helpBar := m.renderHelpBar()

	leftColumn := lipgloss.JoinVertical(
		lipgloss.Left,
		inputPanel,
		quotePanel,
	)

	var mainArea string
	switch {
	case !stacked:
		schedulePanel := m.renderSchedulePanel(rightWidth, lipgloss.Height(leftColumn)-2)
		mainArea = lipgloss.JoinHorizontal(
			lipgloss.Top,
			leftColumn,
			schedulePanel,
		)
	case m.height >= minHeight+scheduleHeight+2:
		mainArea = lipgloss.JoinVertical(
			lipgloss.Left,
			leftColumn,
			m.renderSchedulePanel(rightWidth, scheduleHeight),
		)
	default:
		// Not enough rows to stack the schedule under the quote.
		mainArea = leftColumn
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		appHeader,
		mainArea,
		historyPanel,
		helpBar,
	)
}

func (m Model) renderAppHeader(contentWidth int) string {
	title := renderGradientText("T M F e e C a l c", gradientFrom, gradientTo)
	subtitle := mutedStyle.Render(m.schedule.Marketplace + " Listing Price Calculator")
	separator := renderGradientText(strings.Repeat("━", max(8, contentWidth)), gradientFrom, gradientTo)
	return lipgloss.JoinVertical(lipgloss.Left, title+" "+subtitle, separator)
}
