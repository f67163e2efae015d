package domain

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"private-tips/pkg/apperror"
)

// AmountScale converts a decimal tip amount into the 32-bit integer that is
// encrypted (two decimal places are kept).
const AmountScale = 100

// TipRequest is the raw input of a single tip submission.
type TipRequest struct {
	Amount      float64
	FromAddress string
	ToAddress   string
	KolID       string
}

// Validate checks the request without touching encryption or the network.
func (r TipRequest) Validate() error {
	var missing []string
	if r.Amount == 0 {
		missing = append(missing, "amount")
	}
	if r.FromAddress == "" {
		missing = append(missing, "from")
	}
	if r.ToAddress == "" {
		missing = append(missing, "to")
	}
	if len(missing) > 0 {
		return apperror.ErrMissingFields(strings.Join(missing, ", "))
	}
	if _, err := ScaleAmount(r.Amount); err != nil {
		return err
	}
	if !IsAddress(r.FromAddress) {
		return apperror.ErrInvalidAddress("from", r.FromAddress)
	}
	if !IsAddress(r.ToAddress) {
		return apperror.ErrInvalidAddress("to", r.ToAddress)
	}
	return nil
}

// ScaledAmount returns the amount as the integer that gets encrypted.
func (r TipRequest) ScaledAmount() (uint32, error) {
	return ScaleAmount(r.Amount)
}

// ScaleAmount returns round(amount * AmountScale). Non-positive, non-finite
// and out-of-range amounts, and amounts that round to zero, are invalid.
func ScaleAmount(amount float64) (uint32, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return 0, apperror.ErrInvalidAmount()
	}
	scaled := math.Round(amount * AmountScale)
	if scaled < 1 || scaled > math.MaxUint32 {
		return 0, apperror.ErrInvalidAmount()
	}
	return uint32(scaled), nil
}

var weiPerEther = new(big.Rat).SetInt(big.NewInt(1_000_000_000_000_000_000))

// EtherToWei converts a decimal ether amount into wei. Digits beyond the 18th
// decimal place are truncated.
func EtherToWei(amount float64) (*big.Int, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}
	r, ok := new(big.Rat).SetString(strconv.FormatFloat(amount, 'f', -1, 64))
	if !ok {
		return nil, apperror.ErrInvalidAmount()
	}
	r.Mul(r, weiPerEther)
	wei := new(big.Int).Quo(r.Num(), r.Denom())
	if wei.Sign() <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}
	return wei, nil
}
