package main

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/matthewhartstonge/TMFeeCalc/engine"
	"github.com/matthewhartstonge/TMFeeCalc/types"
)

// Panel focus states
const (
	panelInput = iota
	panelQuote
	panelSchedule
	panelHistory
	panelCount
)

// FocusFlash groups focus highlight animation state.
type FocusFlash struct {
	Ticks  int
	Gen    int
	Active bool
}

// Model represents the application state.
type Model struct {
	// Terminal dimensions
	width  int
	height int

	// Shared components
	keys keyMap
	help help.Model

	// Focus management
	focusedPanel int

	// Net target input
	netInput textinput.Model

	// Pricing
	engine   *engine.Engine
	schedule types.FeeSchedule
	quote    types.CalculationResult
	hasQuote bool

	// Session history
	history      []QuoteEntry
	historyIndex int

	// State
	err          error
	notice       string
	reduceMotion bool
	exportDir    string

	log *logrus.Logger
	now func() time.Time

	// Animations
	focusFlash FocusFlash
}

// NewModel creates a new application model with initial state.
func NewModel(eng *engine.Engine, log *logrus.Logger, cfg Config) Model {
	ni := textinput.New()
	ni.Focus()
	ni.Prompt = "$ "
	ni.Placeholder = "amount you want to receive"
	ni.CharLimit = 16
	ni.Width = 28

	hp := help.New()
	hp.ShortSeparator = "  "
	hp.FullSeparator = "   "
	hp.Styles.ShortKey = keyStyle
	hp.Styles.ShortDesc = keyDescStyle
	hp.Styles.ShortSeparator = separatorStyle
	hp.Styles.Ellipsis = separatorStyle
	hp.Styles.FullKey = keyStyle
	hp.Styles.FullDesc = keyDescStyle
	hp.Styles.FullSeparator = separatorStyle

	return Model{
		keys:         defaultKeyMap(),
		help:         hp,
		focusedPanel: panelInput,
		netInput:     ni,
		engine:       eng,
		schedule:     eng.Schedule(),
		history:      []QuoteEntry{},
		reduceMotion: cfg.ReduceMotion,
		exportDir:    cfg.ExportDir,
		log:          log,
		now:          time.Now,
	}
}

// Init initializes the model (required by tea.Model interface).
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

type exportResultMsg struct {
	Path string
	Err  error
}

type focusFlashTickMsg struct {
	gen int
}
