package main

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matthewhartstonge/TMFeeCalc/engine"
	"github.com/matthewhartstonge/TMFeeCalc/types"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	m := NewModel(engine.NewDefault(), discardLogger(), Config{ExportDir: t.TempDir()})
	m.width = 120
	m.height = 32
	m.now = func() time.Time { return time.Date(2026, 2, 15, 12, 0, 0, 0, time.UTC) }
	return m
}

func sendKey(t *testing.T, m Model, msg tea.KeyMsg) Model {
	t.Helper()
	updated, _ := m.Update(msg)
	um, ok := updated.(Model)
	if !ok {
		t.Fatalf("expected model type %T, got %T", m, updated)
	}
	return um
}

func typeString(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		m = sendKey(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestTypingNetTargetUpdatesQuote(t *testing.T) {
	m := newTestModel(t)
	m = typeString(t, m, "100")

	if got := m.netInput.Value(); got != "100" {
		t.Fatalf("expected input %q, got %q", "100", got)
	}
	if !m.hasQuote {
		t.Fatal("expected quote after typing an amount")
	}
	if m.quote.BracketLabel != "Low fee" {
		t.Fatalf("expected Low fee bracket, got %q", m.quote.BracketLabel)
	}
	if got := types.FormatAmount(m.quote.GrossListingPrice); got != "108.58" {
		t.Fatalf("expected list price 108.58, got %s", got)
	}
}

func TestBackspaceToEmptyClearsQuote(t *testing.T) {
	m := newTestModel(t)
	m = typeString(t, m, "5")
	m = sendKey(t, m, tea.KeyMsg{Type: tea.KeyBackspace})

	if m.hasQuote {
		t.Fatal("expected empty input to clear the quote")
	}
	if m.err != nil {
		t.Fatalf("expected no error for empty input, got %v", m.err)
	}
}

func TestNegativeInputSurfacesInvalidInputError(t *testing.T) {
	m := newTestModel(t)
	m = typeString(t, m, "-1")

	if m.hasQuote {
		t.Fatal("expected no quote for negative input")
	}
	if !errors.Is(m.err, engine.ErrInvalidInput) {
		t.Fatalf("expected invalid input error, got %v", m.err)
	}
}

func TestLetterKeysTypeIntoInputInsteadOfQuitting(t *testing.T) {
	m := newTestModel(t)
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	um := updated.(Model)

	if cmd != nil {
		if _, quit := cmd().(tea.QuitMsg); quit {
			t.Fatal("expected q to be typed into the input, not quit")
		}
	}
	if got := um.netInput.Value(); got != "q" {
		t.Fatalf("expected input to contain typed q, got %q", got)
	}
	if um.err == nil {
		t.Fatal("expected parse error for non-numeric input")
	}
}

func TestQuitOutsideInput(t *testing.T) {
	m := newTestModel(t)
	m.focusedPanel = panelQuote
	m = m.updateFocus()

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected tea.QuitMsg from q outside the input")
	}
}

func TestEnterSavesQuoteToHistory(t *testing.T) {
	m := newTestModel(t)
	m = typeString(t, m, "250")
	m = sendKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if len(m.history) != 1 {
		t.Fatalf("expected one saved quote, got %d", len(m.history))
	}
	if m.history[0].Result.NetTarget != 250 {
		t.Fatalf("expected saved net target 250, got %v", m.history[0].Result.NetTarget)
	}
	if m.history[0].Result.BracketLabel != "Medium fee" {
		t.Fatalf("expected Medium fee, got %q", m.history[0].Result.BracketLabel)
	}
	if !strings.Contains(m.notice, "$250.00") {
		t.Fatalf("expected saved notice, got %q", m.notice)
	}

	m = sendKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if len(m.history) != 1 {
		t.Fatalf("expected duplicate quote to be deduplicated, got %d entries", len(m.history))
	}
}

func TestTabCyclesPanels(t *testing.T) {
	m := newTestModel(t)
	want := []int{panelQuote, panelSchedule, panelHistory, panelInput}
	for _, panel := range want {
		m = sendKey(t, m, tea.KeyMsg{Type: tea.KeyTab})
		if m.focusedPanel != panel {
			t.Fatalf("expected panel %d, got %d", panel, m.focusedPanel)
		}
	}

	m = sendKey(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.focusedPanel != panelHistory {
		t.Fatalf("expected shift+tab to wrap to history, got %d", m.focusedPanel)
	}
	if m.netInput.Focused() {
		t.Fatal("expected input to blur outside the input panel")
	}

	m = sendKey(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	if m.focusedPanel != panelInput || !m.netInput.Focused() {
		t.Fatal("expected / to focus the input")
	}
}

func TestHistoryEnterReplaysSelectedQuote(t *testing.T) {
	m := newTestModel(t)
	for _, amount := range []string{"100", "2000"} {
		m.netInput.SetValue(amount)
		m = m.recalculate()
		m = m.saveQuote()
	}
	m.netInput.SetValue("")
	m = m.recalculate()

	m.focusedPanel = panelHistory
	m = m.updateFocus()
	m = sendKey(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	if m.historyIndex != 1 {
		t.Fatalf("expected history index 1, got %d", m.historyIndex)
	}

	m = sendKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if got := m.netInput.Value(); got != "100.00" {
		t.Fatalf("expected replayed amount %q, got %q", "100.00", got)
	}
	if !m.hasQuote || m.quote.BracketLabel != "Low fee" {
		t.Fatalf("expected replayed Low fee quote, got %+v", m.quote)
	}
	if m.focusedPanel != panelQuote {
		t.Fatalf("expected focus to move to quote panel, got %d", m.focusedPanel)
	}
}

func TestExportWithoutHistoryShowsNotice(t *testing.T) {
	m := newTestModel(t)
	m.focusedPanel = panelQuote
	m = m.updateFocus()

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'e'}})
	if cmd != nil {
		t.Fatal("expected no export command without saved quotes")
	}
	if !strings.Contains(updated.(Model).notice, "Nothing to export") {
		t.Fatalf("unexpected notice %q", updated.(Model).notice)
	}
}

func TestExportKeyWritesHistory(t *testing.T) {
	m := newTestModel(t)
	m.netInput.SetValue("100")
	m = m.recalculate()
	m = m.saveQuote()
	m.focusedPanel = panelQuote
	m = m.updateFocus()

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	if cmd == nil {
		t.Fatal("expected export command")
	}
	msg, ok := cmd().(exportResultMsg)
	if !ok {
		t.Fatal("expected exportResultMsg from export command")
	}
	if msg.Err != nil {
		t.Fatalf("export failed: %v", msg.Err)
	}
	if filepath.Ext(msg.Path) != ".json" || filepath.Dir(msg.Path) != m.exportDir {
		t.Fatalf("unexpected export path %q", msg.Path)
	}

	updated, _ := m.Update(msg)
	if !strings.Contains(updated.(Model).notice, msg.Path) {
		t.Fatalf("expected export notice, got %q", updated.(Model).notice)
	}
}

func TestToggleReduceMotionStopsFocusFlash(t *testing.T) {
	m := newTestModel(t)
	updated, cmd := m.changeFocus(panelQuote)
	m = updated.(Model)
	if cmd == nil || !m.focusFlash.Active {
		t.Fatal("expected focus flash to start")
	}

	m = sendKey(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'m'}})
	if !m.reduceMotion || m.focusFlash.Active {
		t.Fatal("expected reduce motion to stop focus flash")
	}

	updated, cmd = m.changeFocus(panelSchedule)
	if cmd != nil || updated.(Model).focusFlash.Active {
		t.Fatal("expected no focus flash with reduced motion")
	}
}

func TestFocusFlashTickIgnoresStaleGeneration(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.changeFocus(panelQuote)
	m = updated.(Model)

	updated, cmd := m.Update(focusFlashTickMsg{gen: m.focusFlash.Gen - 1})
	if cmd != nil || updated.(Model).focusFlash.Ticks != m.focusFlash.Ticks {
		t.Fatal("expected stale tick to be ignored")
	}

	updated, cmd = m.Update(focusFlashTickMsg{gen: m.focusFlash.Gen})
	if cmd == nil || updated.(Model).focusFlash.Ticks != m.focusFlash.Ticks-1 {
		t.Fatal("expected current tick to count down")
	}
}
