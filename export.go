package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matthewhartstonge/TMFeeCalc/types"
)

var exportCSVHeader = []string{
	"net_target",
	"bracket",
	"list_price",
	"success_fee",
	"processor_list_price",
	"processor_fee",
	"merchant_list_price",
	"total_fees",
	"timestamp",
}

func ExportCSV(path string, entries []QuoteEntry) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv export: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)

	if err := w.Write(exportCSVHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, entry := range entries {
		r := entry.Result
		row := []string{
			types.FormatAmount(r.NetTarget),
			r.BracketLabel,
			types.FormatAmount(r.GrossListingPrice),
			types.FormatAmount(r.SuccessFee),
			types.FormatAmount(r.ProcessorGrossPrice),
			types.FormatAmount(r.ProcessorFee),
			types.FormatAmount(r.MerchantGrossPrice),
			types.FormatAmount(r.TotalFees),
			entry.Timestamp.UTC().Format(time.RFC3339),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv export: %w", err)
	}
	return nil
}

func ExportJSON(path string, entries []QuoteEntry) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create json export: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(entries); err != nil {
		return fmt.Errorf("encode json export: %w", err)
	}
	return nil
}

func BuildExportPath(dir, marketplace, ext string, now time.Time) string {
	sanitized := sanitizeFilename(marketplace)
	if sanitized == "" {
		sanitized = "listing"
	}
	if ext == "" {
		ext = "csv"
	}
	name := fmt.Sprintf("%s-quotes-%s.%s", sanitized, now.Format("20060102-150405"), ext)
	return filepath.Join(dir, name)
}

func sanitizeFilename(name string) string {
	trimmed := strings.TrimSpace(strings.ToLower(name))
	if trimmed == "" {
		return ""
	}

	var b strings.Builder
	prevDash := false
	for _, r := range trimmed {
		isAlphaNum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if isAlphaNum {
			b.WriteRune(r)
			prevDash = false
			continue
		}
		if !prevDash {
			b.WriteByte('-')
			prevDash = true
		}
	}
	out := strings.Trim(b.String(), "-")
	if len(out) > 40 {
		out = strings.Trim(out[:40], "-")
	}
	return out
}

// exportCmd writes the session history off the UI goroutine.
func exportCmd(path string, entries []QuoteEntry, write func(string, []QuoteEntry) error) tea.Cmd {
	snapshot := make([]QuoteEntry, len(entries))
	copy(snapshot, entries)
	return func() tea.Msg {
		if err := write(path, snapshot); err != nil {
			return exportResultMsg{Err: err}
		}
		return exportResultMsg{Path: path}
	}
}
