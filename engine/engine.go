// Package engine inverts a tiered marketplace success-fee schedule: given the
// net proceeds a seller wants, it finds the listing price that leaves exactly
// that amount once the fee is taken.
package engine

import (
	"math"

	"github.com/matthewhartstonge/TMFeeCalc/types"
)

// Engine prices listings against one immutable fee schedule. It holds no
// other state and is safe for concurrent use.
type Engine struct {
	schedule types.FeeSchedule
}

// New validates schedule and returns an engine that owns a copy of it.
func New(schedule types.FeeSchedule) (*Engine, error) {
	if err := schedule.Validate(); err != nil {
		return nil, err
	}
	return &Engine{schedule: schedule.Clone()}, nil
}

// NewDefault returns an engine using the default TradeMe schedule.
func NewDefault() *Engine {
	return &Engine{schedule: types.DefaultFeeSchedule()}
}

// Schedule returns a copy of the engine's fee schedule.
func (e *Engine) Schedule() types.FeeSchedule {
	return e.schedule.Clone()
}

// Classify returns the index and descriptor of the bracket net falls into.
func (e *Engine) Classify(net float64) (int, types.FeeBracket) {
	last := len(e.schedule.Brackets) - 1
	for i, b := range e.schedule.Brackets[:last] {
		if net < b.NetThreshold() {
			return i, b
		}
	}
	return last, e.schedule.Brackets[last]
}

// Compute returns the listing prices and fees needed to net netTarget.
func (e *Engine) Compute(netTarget float64) (types.CalculationResult, error) {
	if math.IsNaN(netTarget) || math.IsInf(netTarget, 0) {
		return types.CalculationResult{}, &InvalidInputError{Value: netTarget, Reason: "must be a finite number"}
	}
	if netTarget < 0 {
		return types.CalculationResult{}, &InvalidInputError{Value: netTarget, Reason: "must not be negative"}
	}

	idx, bracket := e.Classify(netTarget)
	gross, fee, clamp := solve(netTarget, bracket, e.schedule.BaseThreshold(idx))

	processorGross := e.schedule.Processor.GrossUp(gross)
	processorFee := processorGross - gross
	merchantGross := e.schedule.Merchant.GrossUp(netTarget)

	return types.CalculationResult{
		BracketLabel:        bracket.Label,
		BracketIndex:        idx,
		Clamp:               clamp,
		NetTarget:           netTarget,
		GrossListingPrice:   gross,
		SuccessFee:          fee,
		ProcessorGrossPrice: processorGross,
		ProcessorFee:        processorFee,
		MerchantGrossPrice:  merchantGross,
		MerchantFee:         merchantGross - netTarget,
		TotalFees:           fee + processorFee,
	}, nil
}

// solve inverts the bracket formula, then applies its fee bounds. The bound
// check must follow the algebraic solve: a bound replaces the percentage
// relation with gross = net + fee.
func solve(net float64, b types.FeeBracket, threshold float64) (gross, fee float64, clamp types.Clamp) {
	gross = threshold + (net+b.BaseCharge-threshold)/(1-b.Rate)
	fee = b.BaseCharge + (gross-threshold)*b.Rate

	switch {
	case b.Floor > 0 && fee <= b.Floor:
		fee = b.Floor
		clamp = types.ClampFloor
	case b.Ceiling > 0 && fee >= b.Ceiling:
		fee = b.Ceiling
		clamp = types.ClampCeiling
	default:
		return gross, fee, types.ClampNone
	}
	return net + fee, fee, clamp
}
