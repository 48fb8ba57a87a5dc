package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Palette. The accent pair follows the marketplace's navy and gold.
var (
	colorPrimary      = lipgloss.AdaptiveColor{Light: "#1F3A93", Dark: "#5B7BE0"}
	colorAccent       = lipgloss.AdaptiveColor{Light: "#B98900", Dark: "#FFC933"}
	colorSuccess      = lipgloss.AdaptiveColor{Light: "#12B76A", Dark: "#73F59F"}
	colorWarning      = lipgloss.AdaptiveColor{Light: "#DC6803", Dark: "#F79009"}
	colorDanger       = lipgloss.AdaptiveColor{Light: "#D92D20", Dark: "#F97066"}
	colorMuted        = lipgloss.AdaptiveColor{Light: "#98A2B3", Dark: "#667085"}
	colorText         = lipgloss.AdaptiveColor{Light: "#1D2939", Dark: "#F2F4F7"}
	colorBorder       = lipgloss.AdaptiveColor{Light: "#D0D5DD", Dark: "#475467"}
	colorBorderActive = colorPrimary
	colorSubtle       = lipgloss.AdaptiveColor{Light: "#EAECF0", Dark: "#344054"}
)

const (
	gradientFrom = "#5B7BE0"
	gradientTo   = "#FFC933"
)

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Foreground(colorText).
			Padding(0, 1)

	activePanelStyle = panelStyle.
				Border(lipgloss.ThickBorder()).
				BorderForeground(colorBorderActive)

	titleStyle       = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)
	activeTitleStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	iconStyle        = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
)

var (
	textStyle      = lipgloss.NewStyle().Foreground(colorText)
	mutedStyle     = lipgloss.NewStyle().Foreground(colorMuted)
	successStyle   = lipgloss.NewStyle().Foreground(colorSuccess)
	warningStyle   = lipgloss.NewStyle().Foreground(colorWarning)
	dangerStyle    = lipgloss.NewStyle().Foreground(colorDanger)
	labelStyle     = lipgloss.NewStyle().Foreground(colorMuted)
	valueStyle     = lipgloss.NewStyle().Foreground(colorText).Bold(true)
	separatorStyle = lipgloss.NewStyle().Foreground(colorSubtle)

	// List prices are what the seller types into the listing form.
	priceStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)

	keyStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorSubtle).
			Bold(true).
			Padding(0, 1)
	keyDescStyle = mutedStyle

	emptyStyle      = mutedStyle.Italic(true)
	scrollInfoStyle = mutedStyle.Italic(true)

	historyItemStyle     = textStyle
	historySelectedStyle = lipgloss.NewStyle().
				Foreground(colorText).
				Background(colorPrimary).
				Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Bold(true).
			BorderBottom(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(colorBorder)

	helpStyle = mutedStyle.MarginTop(1)
)

var (
	selectedBracketStyle = lipgloss.NewStyle().
				Foreground(colorText).
				Background(colorPrimary).
				Bold(true)

	clampedBracketStyle = selectedBracketStyle.Background(colorWarning)
)

// bracketRowStyle highlights the bracket the current quote falls in.
// A clamped quote is drawn in the warning colour.
func bracketRowStyle(selected, clamped bool) lipgloss.Style {
	switch {
	case selected && clamped:
		return clampedBracketStyle
	case selected:
		return selectedBracketStyle
	default:
		return textStyle
	}
}

func renderGradientText(text, colorA, colorB string) string {
	runes := []rune(text)
	switch len(runes) {
	case 0:
		return ""
	case 1:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(colorA)).Render(text)
	}

	var b strings.Builder
	last := float64(len(runes) - 1)
	for i, r := range runes {
		c := blendHex(colorA, colorB, float64(i)/last)
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(c)).Render(string(r)))
	}
	return b.String()
}

// blendHex mixes two hex colours in HSV space. An unparsable input is
// returned unchanged.
func blendHex(colorA, colorB string, t float64) string {
	t = min(1, max(0, t))

	from, err := colorful.Hex(colorA)
	if err != nil {
		return colorA
	}
	to, err := colorful.Hex(colorB)
	if err != nil {
		return colorB
	}
	return from.BlendHsv(to, t).Clamped().Hex()
}

type panelFrame struct {
	box         lipgloss.Style
	title       lipgloss.Style
	border      lipgloss.TerminalColor
	left, right string
	rule        string
}

func framePanel(active, flash bool) panelFrame {
	if !active {
		return panelFrame{panelStyle, titleStyle, colorBorder, "╭─", "╮", "─"}
	}
	f := panelFrame{activePanelStyle, activeTitleStyle, colorBorderActive, "┏━", "┓", "━"}
	if flash {
		f.border = colorAccent
	}
	return f
}

// renderPanel draws a bordered box whose top edge carries "icon label".
// The rendered panel is width+2 cells wide.
func renderPanel(icon, label, content string, width, height int, active, flashActive bool) string {
	width = max(4, width)
	height = max(1, height)
	f := framePanel(active, flashActive)

	title := panelTitle(strings.TrimSpace(icon), label, f.title, width-2)
	edge := lipgloss.NewStyle().Foreground(f.border)
	rule := strings.Repeat(f.rule, max(0, width-lipgloss.Width(title)-1))
	top := edge.Render(f.left) + title + edge.Render(rule+f.right)

	body := f.box.
		BorderForeground(f.border).
		Width(width).
		Height(height).
		BorderTop(false).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, top, body)
}

// panelTitle fits the icon and label into limit cells, shortening the label
// first and dropping it entirely before the icon.
func panelTitle(icon, label string, s lipgloss.Style, limit int) string {
	if limit < 1 {
		return ""
	}
	if icon == "" {
		return fitTitle(label, s, limit)
	}

	iconWidth := lipgloss.Width(icon)
	if iconWidth+1 >= limit {
		return iconStyle.Render(truncate(icon, limit))
	}

	prefix := iconStyle.Render(icon) + " "
	for n := limit - iconWidth - 1; n > 0; n-- {
		title := prefix + s.Render(truncate(label, n))
		if lipgloss.Width(title) <= limit {
			return title
		}
	}
	return iconStyle.Render(icon)
}

func fitTitle(raw string, s lipgloss.Style, limit int) string {
	for n := limit; n > 0; n-- {
		styled := s.Render(truncate(raw, n))
		if lipgloss.Width(styled) <= limit {
			return styled
		}
	}
	return s.Render("…")
}
