package main

import (
	"math"
	"strings"
)

// renderRateBar draws rate as a share of maxRate. Rates above maxRate, which
// only happen when a fee floor dominates, fill the bar in the warning colour.
func renderRateBar(rate, maxRate float64, width int) string {
	if width <= 0 {
		return ""
	}
	if maxRate <= 0 {
		return strings.Repeat("░", width)
	}

	ratio := rate / maxRate
	over := ratio > 1
	if over {
		ratio = 1
	}
	if ratio < 0 {
		ratio = 0
	}
	filled := int(math.Round(ratio * float64(width)))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	if over {
		return warningStyle.Render(bar)
	}
	return successStyle.Render(bar)
}

func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max == 1 {
		return "…"
	}
	return string(runes[:max-1]) + "…"
}

// labelValue renders a fixed-width muted label followed by a value.
func labelValue(label string, width int, value string) string {
	return labelStyle.Render(padRight(label, width)) + " " + value
}

func padRight(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}
