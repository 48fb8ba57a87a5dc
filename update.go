package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/matthewhartstonge/TMFeeCalc/types"
)

// Update handles messages and updates the model (required by tea.Model interface).
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case exportResultMsg:
		if msg.Err != nil {
			m.err = msg.Err
			m.notice = ""
			m.log.WithError(msg.Err).Error("export failed")
			return m, nil
		}
		m.err = nil
		m.notice = "Exported " + msg.Path
		m.log.WithField("path", msg.Path).Info("exported quotes")
		return m, nil

	case focusFlashTickMsg:
		if msg.gen != m.focusFlash.Gen || !m.focusFlash.Active {
			return m, nil
		}
		if m.focusFlash.Ticks <= 1 {
			m.focusFlash.Ticks = 0
			m.focusFlash.Active = false
			return m, nil
		}
		m.focusFlash.Ticks--
		gen := m.focusFlash.Gen
		return m, tea.Tick(80*time.Millisecond, func(time.Time) tea.Msg {
			return focusFlashTickMsg{gen: gen}
		})

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	typing := m.focusedPanel == panelInput

	// Let the text input accept literal letters. Global letter keys apply elsewhere.
	if !typing {
		switch {
		case key.Matches(msg, m.keys.ToggleAnim):
			m = m.toggleReduceMotion()
			return m, nil
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.ExportCSV):
			return m.startExport("csv", ExportCSV)
		case key.Matches(msg, m.keys.ExportJSON):
			return m.startExport("json", ExportJSON)
		}
	}

	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Tab):
		return m.changeFocus((m.focusedPanel + 1) % panelCount)

	case key.Matches(msg, m.keys.ShiftTab):
		prevPanel := m.focusedPanel - 1
		if prevPanel < 0 {
			prevPanel = panelCount - 1
		}
		return m.changeFocus(prevPanel)

	case key.Matches(msg, m.keys.Input) && !typing:
		return m.changeFocus(panelInput)

	case key.Matches(msg, m.keys.Escape):
		return m.changeFocus(panelQuote)
	}

	switch m.focusedPanel {
	case panelInput:
		return m.handleInputKeys(msg)
	case panelHistory:
		return m.handleHistoryKeys(msg)
	}

	return m, nil
}

func (m Model) handleInputKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Enter) {
		m = m.recalculate()
		if m.hasQuote {
			m = m.saveQuote()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.netInput, cmd = m.netInput.Update(msg)
	m = m.recalculate()
	return m, cmd
}

func (m Model) handleHistoryKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.HistNext) {
		if m.historyIndex < len(m.history)-1 {
			m.historyIndex++
		}
		return m, nil
	}

	if key.Matches(msg, m.keys.HistPrev) {
		if m.historyIndex > 0 {
			m.historyIndex--
		}
		return m, nil
	}

	if key.Matches(msg, m.keys.Enter) {
		if len(m.history) > 0 && m.historyIndex < len(m.history) {
			entry := m.history[m.historyIndex]
			m.netInput.SetValue(types.FormatAmount(entry.Result.NetTarget))
			m = m.recalculate()
			return m.changeFocus(panelQuote)
		}
	}

	return m, nil
}

// recalculate prices the current input. Empty input clears the quote.
func (m Model) recalculate() Model {
	raw := strings.TrimSpace(m.netInput.Value())
	if raw == "" {
		m.hasQuote = false
		m.err = nil
		return m
	}

	net, err := types.ParseAmount(raw)
	if err != nil {
		m.hasQuote = false
		m.err = err
		return m
	}

	result, err := m.engine.Compute(net)
	if err != nil {
		m.hasQuote = false
		m.err = err
		m.log.WithError(err).Warn("rejected net target")
		return m
	}

	m.quote = result
	m.hasQuote = true
	m.err = nil
	m.log.WithFields(quoteFields(result)).Debug("computed quote")
	return m
}

func (m Model) saveQuote() Model {
	m.history = addQuoteToHistory(m.history, QuoteEntry{Result: m.quote, Timestamp: m.now()})
	m.historyIndex = 0
	m.notice = fmt.Sprintf("Saved quote for %s", types.FormatMoney(m.quote.NetTarget))
	return m
}

func (m Model) startExport(ext string, write func(string, []QuoteEntry) error) (tea.Model, tea.Cmd) {
	if len(m.history) == 0 {
		m.notice = "Nothing to export; press enter to save a quote first."
		return m, nil
	}
	path := BuildExportPath(m.exportDir, m.schedule.Marketplace, ext, m.now())
	return m, exportCmd(path, m.history, write)
}

func (m Model) toggleReduceMotion() Model {
	m.reduceMotion = !m.reduceMotion
	if !m.reduceMotion {
		return m
	}

	m.focusFlash.Gen++
	m.focusFlash.Active = false
	m.focusFlash.Ticks = 0
	return m
}

// updateFocus manages focus state for the text input.
func (m Model) updateFocus() Model {
	if m.focusedPanel == panelInput {
		m.netInput.Focus()
	} else {
		m.netInput.Blur()
	}
	return m
}

func (m Model) changeFocus(newPanel int) (tea.Model, tea.Cmd) {
	if m.focusedPanel == newPanel {
		m = m.updateFocus()
		return m, nil
	}

	m.focusedPanel = newPanel
	m = m.updateFocus()
	m.focusFlash.Gen++
	if m.reduceMotion {
		m.focusFlash.Ticks = 0
		m.focusFlash.Active = false
		return m, nil
	}
	m.focusFlash.Ticks = 3
	m.focusFlash.Active = true
	gen := m.focusFlash.Gen

	return m, tea.Tick(80*time.Millisecond, func(time.Time) tea.Msg {
		return focusFlashTickMsg{gen: gen}
	})
}
