package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/matthewhartstonge/TMFeeCalc/engine"
	"github.com/matthewhartstonge/TMFeeCalc/types"
)

const reportWidth = 40

// Exit codes for plain mode.
const (
	exitOK           = 0
	exitConfig       = 1
	exitInvalidInput = 2
)

// writeReport prints a quote in the fixed-width plain text layout.
func writeReport(w io.Writer, r types.CalculationResult, s types.FeeSchedule) error {
	lines := []struct {
		label string
		value float64
	}{
		{label: s.Marketplace + " List Price:", value: r.GrossListingPrice},
		{label: s.Processor.Label + " List Price:", value: r.ProcessorGrossPrice},
		{label: s.Merchant.Label + " List Price:", value: r.MerchantGrossPrice},
		{label: s.Marketplace + " Success Fee:", value: r.SuccessFee},
		{label: s.Marketplace + " " + s.Processor.Label + " Fee:", value: r.ProcessorFee},
		{label: s.Marketplace + " Total Fees:", value: r.TotalFees},
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You will be put on the '%s' structure\n", r.BracketLabel)
	for _, line := range lines {
		pad := max(1, reportWidth-len(line.label)-1)
		fmt.Fprintf(&b, "%s %*s\n", line.label, pad, types.FormatAmount(line.value))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// runPlain prices one amount from args, or from a prompt on in, and prints
// the report. It returns the process exit code.
func runPlain(args []string, in io.Reader, out, errOut io.Writer, eng *engine.Engine, log *logrus.Logger) int {
	schedule := eng.Schedule()

	raw := ""
	if len(args) > 0 {
		raw = args[0]
	} else {
		fmt.Fprintf(out, "Please enter the price wanted for a general item on %s: $", schedule.Marketplace)
		line, err := bufio.NewReader(in).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			fmt.Fprintf(errOut, "Error reading input: %v\n", err)
			return exitInvalidInput
		}
		raw = line
	}

	net, err := types.ParseAmount(raw)
	if err != nil {
		log.WithError(err).Warn("rejected amount")
		fmt.Fprintf(errOut, "Error: %v\n", err)
		return exitInvalidInput
	}

	result, err := eng.Compute(net)
	if err != nil {
		log.WithError(err).Warn("rejected net target")
		fmt.Fprintf(errOut, "Error: %v\n", err)
		return exitInvalidInput
	}
	log.WithFields(quoteFields(result)).Debug("computed quote")

	if err := writeReport(out, result, schedule); err != nil {
		fmt.Fprintf(errOut, "Error writing report: %v\n", err)
		return exitConfig
	}
	return exitOK
}
