package billingcode

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// 44-digit billing code layout (all positions zero-based):
//
//	issuer(0-2) currency(3) dv(4) factor(5-8) amount(9-18) free(19-43)
//
// The overall check digit at position 4 is computed over the other 43
// digits. The layout reproduces the legacy "simplified" encoding
// byte-for-byte so previously issued codes remain verifiable; it is not
// a claim of conformance to any national banking standard.

const (
	// CurrencyReal is the fixed currency digit for BRL.
	CurrencyReal = "9"

	CodeLength      = 44
	issuerWidth     = 3
	amountWidth     = 10
	freeFieldWidth  = 25
	checkDigitIndex = 4

	factorStart = 5
	amountStart = 9
	freeStart   = 19
)

var (
	ErrInvalidAmount    = errors.New("amount must be positive and fit ten digits of minor units")
	ErrInvalidFreeField = errors.New("free field contains non-digit characters")
	ErrInvalidIssuer    = errors.New("issuer id must be exactly three digits")
	ErrInvalidCodeLength = errors.New("billing code must be exactly 44 digits")
	ErrCheckDigitMismatch = errors.New("billing code check digit mismatch")
)

// Encode assembles the 44-digit billing code. Pure: same inputs always
// produce the same code, so a lost formatted line can be regenerated
// from the stored fields.
func Encode(issuerID string, dueDate time.Time, amount decimal.Decimal, freeField string) (string, error) {
	if len(issuerID) != issuerWidth || !isDigits(issuerID) {
		return "", ErrInvalidIssuer
	}
	minor, err := amountMinorUnits(amount)
	if err != nil {
		return "", err
	}
	factor, err := DateFactorString(dueDate)
	if err != nil {
		return "", err
	}
	free, err := normalizeFreeField(freeField)
	if err != nil {
		return "", err
	}

	body := issuerID + CurrencyReal + factor + fmt.Sprintf("%0*d", amountWidth, minor) + free
	dv := CheckDigit(body)

	code := body[:issuerWidth+1] + strconv.Itoa(dv) + body[issuerWidth+1:]
	return code, nil
}

// Decoded carries the fields parsed back out of a billing code.
type Decoded struct {
	IssuerID   string
	Currency   string
	CheckDigit int
	DateFactor int
	Amount     decimal.Decimal
	FreeField  string
}

// Decode parses a billing code and verifies its overall check digit.
// Needed for validation and round-trip tests, not normal operation.
func Decode(code string) (Decoded, error) {
	if len(code) != CodeLength || !isDigits(code) {
		return Decoded{}, ErrInvalidCodeLength
	}

	dv := int(code[checkDigitIndex] - '0')
	if CheckDigit(code[:checkDigitIndex]+code[checkDigitIndex+1:]) != dv {
		return Decoded{}, ErrCheckDigitMismatch
	}

	factor, _ := strconv.Atoi(code[factorStart:amountStart])
	minor, _ := strconv.ParseInt(code[amountStart:freeStart], 10, 64)

	return Decoded{
		IssuerID:   code[:issuerWidth],
		Currency:   string(code[issuerWidth]),
		CheckDigit: dv,
		DateFactor: factor,
		Amount:     decimal.New(minor, -2),
		FreeField:  code[freeStart:],
	}, nil
}

// DueDate resolves the decoded factor against a reference date.
func (d Decoded) DueDate(reference time.Time) time.Time {
	return DateFromFactor(d.DateFactor, reference)
}

func amountMinorUnits(amount decimal.Decimal) (int64, error) {
	if !amount.IsPositive() {
		return 0, ErrInvalidAmount
	}
	minor := amount.Shift(2)
	if !minor.IsInteger() {
		return 0, ErrInvalidAmount
	}
	v := minor.IntPart()
	if v <= 0 || v >= 1e10 {
		return 0, ErrInvalidAmount
	}
	return v, nil
}

func normalizeFreeField(freeField string) (string, error) {
	f := strings.TrimSpace(freeField)
	if !isDigits(f) {
		return "", ErrInvalidFreeField
	}
	if len(f) > freeFieldWidth {
		f = f[len(f)-freeFieldWidth:]
	}
	return strings.Repeat("0", freeFieldWidth-len(f)) + f, nil
}
