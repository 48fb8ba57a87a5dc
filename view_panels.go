package main

import (
	"fmt"
	"strings"

	"github.com/matthewhartstonge/TMFeeCalc/types"
)

const quoteLabelWidth = 14

func (m Model) renderInputPanel(width, height int) string {
	active := m.focusedPanel == panelInput
	flashActive := active && m.focusFlash.Active

	content := m.netInput.View()
	return renderPanel("$", "Net Target", content, width, height, active, flashActive)
}

func (m Model) renderQuotePanel(width, height int) string {
	active := m.focusedPanel == panelQuote
	flashActive := active && m.focusFlash.Active

	if !m.hasQuote {
		content := emptyStyle.Render("~ Enter the amount you want to receive ~") + "\n" +
			keyStyle.Render("/") + keyDescStyle.Render(" amount")
		return renderPanel("=", "Quote", content, width, height, active, flashActive)
	}

	q := m.quote
	s := m.schedule

	bracket := valueStyle.Render(q.BracketLabel)
	switch q.Clamp {
	case types.ClampFloor:
		bracket += " " + warningStyle.Render("(minimum fee)")
	case types.ClampCeiling:
		bracket += " " + warningStyle.Render("(maximum fee)")
	}

	barWidth := max(6, min(16, width/4))
	lines := []string{
		labelValue("Bracket:", quoteLabelWidth, bracket),
		labelValue("List price:", quoteLabelWidth, priceStyle.Render(types.FormatMoney(q.GrossListingPrice))),
		labelValue("Success fee:", quoteLabelWidth, fmt.Sprintf("%s %s %s",
			valueStyle.Render(types.FormatMoney(q.SuccessFee)),
			mutedStyle.Render(fmt.Sprintf("(%.1f%%)", q.EffectiveRate()*100)),
			renderRateBar(q.EffectiveRate(), m.maxBracketRate(), barWidth),
		)),
		labelValue("You receive:", quoteLabelWidth, successStyle.Render(types.FormatMoney(q.Net()))),
		separatorStyle.Render(strings.Repeat("╌", max(12, width-8))),
		labelValue(s.Processor.Label+" price:", quoteLabelWidth, fmt.Sprintf("%s  %s",
			priceStyle.Render(types.FormatMoney(q.ProcessorGrossPrice)),
			mutedStyle.Render("fee "+types.FormatMoney(q.ProcessorFee)),
		)),
		labelValue("Total fees:", quoteLabelWidth, valueStyle.Render(types.FormatMoney(q.TotalFees))),
		labelValue(s.Merchant.Label+" price:", quoteLabelWidth, fmt.Sprintf("%s  %s",
			priceStyle.Render(types.FormatMoney(q.MerchantGrossPrice)),
			mutedStyle.Render("fee "+types.FormatMoney(q.MerchantFee)),
		)),
	}

	content := strings.Join(lines, "\n")
	return renderPanel("=", "Quote", content, width, height, active, flashActive)
}

func (m Model) renderSchedulePanel(width, height int) string {
	active := m.focusedPanel == panelSchedule
	flashActive := active && m.focusFlash.Active
	s := m.schedule

	const (
		colLabel = 11
		colRange = 14
		colRate  = 6
	)

	header := fmt.Sprintf("%-*s %-*s %*s  %s", colLabel, "Bracket", colRange, "Sale price", colRate, "Rate", "Fee")
	lines := []string{headerStyle.Render(header)}

	for i, b := range s.Brackets {
		row := fmt.Sprintf("%-*s %-*s %*s  %s",
			colLabel, truncate(b.Label, colLabel),
			colRange, bracketRange(s, i),
			colRate, types.FormatPercent(b.Rate),
			bracketFeeTerms(b),
		)
		selected := m.hasQuote && m.quote.BracketIndex == i
		clamped := selected && m.quote.Clamp != types.ClampNone
		lines = append(lines, bracketRowStyle(selected, clamped).Render(truncate(row, max(1, width-2))))
	}

	lines = append(lines,
		separatorStyle.Render(strings.Repeat("╌", max(12, width-8))),
		scrollInfoStyle.Render(fmt.Sprintf("%s %s on top", s.Processor.Label, formatFlatFee(s.Processor))),
		scrollInfoStyle.Render(fmt.Sprintf("%s %s instead", s.Merchant.Label, formatFlatFee(s.Merchant))),
	)

	content := strings.Join(lines, "\n")
	return renderPanel("%", "Fee Schedule", content, width, height, active, flashActive)
}

func (m Model) renderHistoryPanel(width, height int) string {
	active := m.focusedPanel == panelHistory
	flashActive := active && m.focusFlash.Active

	if len(m.history) == 0 {
		content := mutedStyle.Render("No saved quotes")
		return renderPanel(">", "History", content, width, height, active, flashActive)
	}

	const maxItems = 4
	start := 0
	if len(m.history) > maxItems && m.historyIndex >= maxItems {
		start = m.historyIndex - maxItems + 1
	}
	if start+maxItems > len(m.history) {
		start = len(m.history) - maxItems
	}
	if start < 0 {
		start = 0
	}

	now := m.now()
	end := min(len(m.history), start+maxItems)
	items := m.history[start:end]
	rendered := make([]string, len(items))
	for i, item := range items {
		label := fmt.Sprintf("%s→%s", types.FormatMoney(item.Result.NetTarget), types.FormatMoney(item.Result.GrossListingPrice))
		if ago := formatRelativeTime(item.Timestamp, now); ago != "" {
			label += " " + ago
		}
		label = truncate(label, 28)
		selected := start+i == m.historyIndex
		if selected {
			marker := "> " + label
			if active {
				rendered[i] = historySelectedStyle.Render(marker)
			} else {
				rendered[i] = activeTitleStyle.Render(marker)
			}
			continue
		}
		rendered[i] = historyItemStyle.Render(label)
	}

	content := labelStyle.Render("Saved:") + " " + strings.Join(rendered, separatorStyle.Render(" › "))
	return renderPanel(">", "History", content, width, height, active, flashActive)
}

func (m Model) renderHelpBar() string {
	helpModel := m.help
	helpModel.Width = max(0, m.width-2)
	help := helpModel.View(m.keys)

	if m.notice != "" {
		help = successStyle.Render(m.notice) + "  " + help
	}
	if m.err != nil {
		errLine := dangerStyle.Render(fmt.Sprintf("Error: %v", m.err))
		return helpStyle.Render(errLine + "\n" + help)
	}

	return helpStyle.Render(help)
}

func (m Model) maxBracketRate() float64 {
	maxRate := 0.0
	for _, b := range m.schedule.Brackets {
		maxRate = max(maxRate, b.Rate)
	}
	return maxRate
}

func bracketRange(s types.FeeSchedule, i int) string {
	b := s.Brackets[i]
	if b.Unbounded() {
		return "over " + types.FormatMoney(s.BaseThreshold(i))
	}
	return "to " + types.FormatMoney(b.UpperBound)
}

func bracketFeeTerms(b types.FeeBracket) string {
	var parts []string
	if b.BaseCharge > 0 {
		parts = append(parts, "+"+types.FormatMoney(b.BaseCharge))
	}
	if b.Floor > 0 {
		parts = append(parts, "min "+types.FormatMoney(b.Floor))
	}
	if b.Ceiling > 0 {
		parts = append(parts, "max "+types.FormatMoney(b.Ceiling))
	}
	return strings.Join(parts, " ")
}

func formatFlatFee(f types.FlatFeeFormula) string {
	if f.Flat > 0 {
		return types.FormatPercent(f.Rate) + " + " + types.FormatMoney(f.Flat)
	}
	return types.FormatPercent(f.Rate)
}
