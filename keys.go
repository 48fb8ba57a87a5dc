package main

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit       key.Binding
	ForceQuit  key.Binding
	Tab        key.Binding
	ShiftTab   key.Binding
	ToggleAnim key.Binding
	Input      key.Binding
	Escape     key.Binding
	Enter      key.Binding
	HistNext   key.Binding
	HistPrev   key.Binding
	ExportCSV  key.Binding
	ExportJSON key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "force quit"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next panel"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev panel"),
		),
		ToggleAnim: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "motion"),
		),
		Input: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "amount"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "quote"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "save/replay"),
		),
		HistNext: key.NewBinding(
			key.WithKeys("j", "right"),
			key.WithHelp("j/right", "next history"),
		),
		HistPrev: key.NewBinding(
			key.WithKeys("k", "left"),
			key.WithHelp("k/left", "prev history"),
		),
		ExportCSV: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "export csv"),
		),
		ExportJSON: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "export json"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Input, k.Enter, k.Tab, k.ExportCSV, k.ToggleAnim, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Input, k.Enter, k.Escape},
		{k.HistNext, k.HistPrev},
		{k.Tab, k.ShiftTab, k.ToggleAnim},
		{k.ExportCSV, k.ExportJSON, k.Quit, k.ForceQuit},
	}
}
