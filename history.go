package main

import (
	"fmt"
	"time"

	"github.com/matthewhartstonge/TMFeeCalc/types"
)

const historyMaxEntries = 20

// QuoteEntry stores one saved quote for the current session.
type QuoteEntry struct {
	Result    types.CalculationResult `json:"result"`
	Timestamp time.Time               `json:"timestamp"`
}

// addQuoteToHistory puts entry first, dropping an older quote for the same
// net target, and caps the list at historyMaxEntries.
func addQuoteToHistory(history []QuoteEntry, entry QuoteEntry) []QuoteEntry {
	out := make([]QuoteEntry, 0, min(len(history)+1, historyMaxEntries))
	out = append(out, entry)

	key := types.FormatAmount(entry.Result.NetTarget)
	for _, h := range history {
		if types.FormatAmount(h.Result.NetTarget) == key {
			continue
		}
		out = append(out, h)
		if len(out) == historyMaxEntries {
			break
		}
	}
	return out
}

func formatRelativeTime(ts, now time.Time) string {
	if ts.IsZero() {
		return ""
	}

	if now.Before(ts) {
		return "just now"
	}

	d := now.Sub(ts)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 30*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	default:
		return ts.Format("2006-01-02")
	}
}
