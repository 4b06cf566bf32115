package entities

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// PixDiscount is the optional early-payment discount configured on a
// boleto. Used flips exactly once, when a PIX settlement consumes the
// discount.

type PixDiscount struct {
	Enabled        bool            `json:"enabled"`
	Used           bool            `json:"used"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	MinAmount      decimal.Decimal `json:"min_amount"`
}

// Validate checks the creation-time invariants against the boleto
// amount: the discount must stay below the amount and the discounted
// value must not fall under the minimum payable amount.
func (p PixDiscount) Validate(amount decimal.Decimal) error {
	if !p.Enabled {
		return nil
	}
	if !p.DiscountAmount.IsPositive() {
		return fmt.Errorf("pix discount amount must be positive, got %s", p.DiscountAmount)
	}
	if p.DiscountAmount.GreaterThanOrEqual(amount) {
		return fmt.Errorf("pix discount %s must be lower than amount %s", p.DiscountAmount, amount)
	}
	if amount.Sub(p.DiscountAmount).LessThan(MinBoletoAmount) {
		return fmt.Errorf("amount %s minus pix discount %s falls under the minimum %s", amount, p.DiscountAmount, MinBoletoAmount)
	}
	if p.MinAmount.IsNegative() {
		return fmt.Errorf("pix discount min amount must not be negative, got %s", p.MinAmount)
	}
	return nil
}

// PixQuote is the outcome of evaluating the PIX discount policy for a
// boleto snapshot. Reason is always populated, for audit display.
type PixQuote struct {
	Eligible        bool            `json:"eligible"`
	PayableAmount   decimal.Decimal `json:"payable_amount"`
	AppliedDiscount decimal.Decimal `json:"applied_discount"`
	Clamped         bool            `json:"clamped"`
	Reason          string          `json:"reason"`
}

// EvaluatePixDiscount applies the discount policy to the boleto as it
// stands on the given day. Pure: no I/O, no mutation.
//
// When the discounted value would fall under MinBoletoAmount the
// payable amount clamps to the minimum and AppliedDiscount reports the
// effective discount, not the configured one.
func (b Boleto) EvaluatePixDiscount(today time.Time) PixQuote {
	full := PixQuote{PayableAmount: b.Amount, AppliedDiscount: decimal.Zero}

	switch {
	case b.Status != BoletoStatusPendente:
		full.Reason = fmt.Sprintf("boleto is %s, PIX discount applies only while pending", b.Status)
		return full
	case !b.Pix.Enabled:
		full.Reason = "PIX discount is not enabled for this boleto"
		return full
	case b.Pix.Used:
		full.Reason = "PIX discount was already used"
		return full
	case dateOnly(today).After(dateOnly(b.DueDate)):
		full.Reason = fmt.Sprintf("boleto due date %s has passed", b.DueDate.Format("2006-01-02"))
		return full
	case b.Pix.MinAmount.IsPositive() && b.Amount.LessThan(b.Pix.MinAmount):
		full.Reason = fmt.Sprintf("amount %s is below the PIX discount minimum %s", b.Amount, b.Pix.MinAmount)
		return full
	}

	payable := b.Amount.Sub(b.Pix.DiscountAmount)
	applied := b.Pix.DiscountAmount
	clamped := false
	if payable.LessThan(MinBoletoAmount) {
		payable = MinBoletoAmount
		applied = b.Amount.Sub(MinBoletoAmount)
		clamped = true
	}

	reason := fmt.Sprintf("PIX discount of %s applies, payable %s", applied, payable)
	if clamped {
		reason = fmt.Sprintf("PIX discount clamped to %s so the payable amount stays at the minimum %s", applied, MinBoletoAmount)
	}

	return PixQuote{
		Eligible:        true,
		PayableAmount:   payable,
		AppliedDiscount: applied,
		Clamped:         clamped,
		Reason:          reason,
	}
}
