package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
)

// FeeBracket is one tier of a marketplace success-fee schedule.
//
// UpperBound is the gross price at which the next bracket starts. Zero marks
// the last, unbounded bracket. Floor and Ceiling are absolute fee bounds and
// are ignored when zero.
type FeeBracket struct {
	Label      string  `json:"label" validate:"required"`
	UpperBound float64 `json:"upper_bound" validate:"gte=0"`
	Rate       float64 `json:"rate" validate:"gt=0,lt=1"`
	BaseCharge float64 `json:"base_charge" validate:"gte=0"`
	Floor      float64 `json:"floor,omitempty" validate:"gte=0"`
	Ceiling    float64 `json:"ceiling,omitempty" validate:"gte=0"`
}

// Unbounded reports whether the bracket has no upper bound.
func (b FeeBracket) Unbounded() bool {
	return b.UpperBound == 0
}

// NetThreshold returns the net proceeds a seller would receive when listing
// exactly at UpperBound under this bracket's own rate. Net targets below it
// are classified into this bracket.
func (b FeeBracket) NetThreshold() float64 {
	return b.UpperBound * (1 - b.Rate)
}

// FlatFeeFormula is a non-tiered percentage plus flat fee.
type FlatFeeFormula struct {
	Label string  `json:"label" validate:"required"`
	Rate  float64 `json:"rate" validate:"gte=0,lt=1"`
	Flat  float64 `json:"flat,omitempty" validate:"gte=0"`
}

// GrossUp returns the price needed so that amount remains after the fee.
func (f FlatFeeFormula) GrossUp(amount float64) float64 {
	return amount/(1-f.Rate) + f.Flat
}

// FeeSchedule holds everything needed to price a listing.
type FeeSchedule struct {
	Marketplace string         `json:"marketplace" validate:"required"`
	Brackets    []FeeBracket   `json:"brackets" validate:"required,min=1,dive"`
	Processor   FlatFeeFormula `json:"processor"`
	Merchant    FlatFeeFormula `json:"merchant"`
}

var scheduleValidate = validator.New()

// DefaultFeeSchedule returns the TradeMe general item schedule.
func DefaultFeeSchedule() FeeSchedule {
	return FeeSchedule{
		Marketplace: "TradeMe",
		Brackets: []FeeBracket{
			// Up to $200: 7.9% of sale price, 50c minimum
			{Label: "Low fee", UpperBound: 200, Rate: 0.079, Floor: 0.50},
			// $200 - $1500: $15.80 + 4.9% of sale price over $200
			{Label: "Medium fee", UpperBound: 1500, Rate: 0.049, BaseCharge: 15.80},
			// Over $1500: $79.50 + 1.9% of sale price over $1500, max $149
			{Label: "High fee", Rate: 0.019, BaseCharge: 79.50, Ceiling: 149},
		},
		Processor: FlatFeeFormula{Label: "PayNow", Rate: 0.0195},
		Merchant:  FlatFeeFormula{Label: "PayPal", Rate: 0.0345, Flat: 0.45},
	}
}

// Clone returns a deep copy of the schedule.
func (s FeeSchedule) Clone() FeeSchedule {
	out := s
	out.Brackets = make([]FeeBracket, len(s.Brackets))
	copy(out.Brackets, s.Brackets)
	return out
}

// BaseThreshold returns the gross price the base charge of bracket i is
// measured from: the previous bracket's upper bound, or zero.
func (s FeeSchedule) BaseThreshold(i int) float64 {
	if i <= 0 || i > len(s.Brackets) {
		return 0
	}
	return s.Brackets[i-1].UpperBound
}

// Validate checks field ranges and bracket ordering.
func (s FeeSchedule) Validate() error {
	if err := scheduleValidate.Struct(s); err != nil {
		return fmt.Errorf("validate fee schedule: %w", err)
	}

	prev := 0.0
	last := len(s.Brackets) - 1
	for i, b := range s.Brackets {
		if i == last {
			if !b.Unbounded() {
				return fmt.Errorf("validate fee schedule: last bracket %q must be unbounded", b.Label)
			}
			break
		}
		if b.Unbounded() {
			return fmt.Errorf("validate fee schedule: bracket %q is unbounded but not last", b.Label)
		}
		if b.UpperBound <= prev {
			return fmt.Errorf("validate fee schedule: bracket %q upper bound %.2f is not above %.2f", b.Label, b.UpperBound, prev)
		}
		prev = b.UpperBound
	}
	return nil
}

// DecodeFeeSchedule reads a JSON schedule and validates it.
func DecodeFeeSchedule(r io.Reader) (FeeSchedule, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var s FeeSchedule
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return FeeSchedule{}, fmt.Errorf("decode fee schedule: empty input")
		}
		return FeeSchedule{}, fmt.Errorf("decode fee schedule: %w", err)
	}
	if err := s.Validate(); err != nil {
		return FeeSchedule{}, err
	}
	return s, nil
}

// LoadFeeSchedule reads a JSON schedule file.
func LoadFeeSchedule(path string) (FeeSchedule, error) {
	f, err := os.Open(path)
	if err != nil {
		return FeeSchedule{}, fmt.Errorf("open fee schedule: %w", err)
	}
	defer f.Close()

	return DecodeFeeSchedule(f)
}
