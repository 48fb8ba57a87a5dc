package types

// Clamp records which fee bound, if any, overrode the bracket formula.
type Clamp string

const (
	ClampNone    Clamp = ""
	ClampFloor   Clamp = "floor"
	ClampCeiling Clamp = "ceiling"
)

// CalculationResult is the priced outcome for one net target.
type CalculationResult struct {
	BracketLabel string  `json:"bracket"`
	BracketIndex int     `json:"bracket_index"`
	Clamp        Clamp   `json:"clamp,omitempty"`
	NetTarget    float64 `json:"net_target"`

	GrossListingPrice float64 `json:"list_price"`
	SuccessFee        float64 `json:"success_fee"`

	ProcessorGrossPrice float64 `json:"processor_list_price"`
	ProcessorFee        float64 `json:"processor_fee"`

	// Merchant pricing is an alternative quote, not part of TotalFees.
	MerchantGrossPrice float64 `json:"merchant_list_price"`
	MerchantFee        float64 `json:"merchant_fee"`

	TotalFees float64 `json:"total_fees"`
}

// Net returns the proceeds left after the success fee.
func (r CalculationResult) Net() float64 {
	return r.GrossListingPrice - r.SuccessFee
}

// EffectiveRate returns the success fee as a fraction of the list price.
func (r CalculationResult) EffectiveRate() float64 {
	if r.GrossListingPrice <= 0 {
		return 0
	}
	return r.SuccessFee / r.GrossListingPrice
}
