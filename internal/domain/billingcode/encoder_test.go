package billingcode

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	t.Run("reference scenario", func(t *testing.T) {
		code, err := Encode("001", date(2025, time.March, 10), decimal.RequireFromString("150.00"), "0000000001000000000000000")
		require.NoError(t, err)
		assert.Len(t, code, CodeLength)
		assert.Equal(t, "00198001600000150000000000001000000000000000", code)
	})

	t.Run("deterministic", func(t *testing.T) {
		due := date(2026, time.June, 15)
		amount := decimal.RequireFromString("1234.56")
		a, err := Encode("237", due, amount, "123")
		require.NoError(t, err)
		b, err := Encode("237", due, amount, "123")
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})

	t.Run("check digit position", func(t *testing.T) {
		code, err := Encode("341", date(2027, time.January, 2), decimal.RequireFromString("99.90"), "20270102000017")
		require.NoError(t, err)
		require.Len(t, code, CodeLength)
		dv := int(code[4] - '0')
		assert.Equal(t, CheckDigit(code[:4]+code[5:]), dv)
	})

	t.Run("short free field is left padded", func(t *testing.T) {
		code, err := Encode("001", date(2026, time.June, 15), decimal.NewFromInt(50), "42")
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(code, strings.Repeat("0", 23)+"42"))
	})

	t.Run("long free field keeps rightmost digits", func(t *testing.T) {
		code, err := Encode("001", date(2026, time.June, 15), decimal.NewFromInt(50), strings.Repeat("9", 20)+"1234567890")
		require.NoError(t, err)
		assert.Equal(t, strings.Repeat("9", 15)+"1234567890", code[19:])
	})
}

func TestEncodeValidation(t *testing.T) {
	due := date(2026, time.June, 15)

	tests := []struct {
		name      string
		issuer    string
		amount    decimal.Decimal
		freeField string
		expected  error
	}{
		{"issuer too short", "12", decimal.NewFromInt(100), "1", ErrInvalidIssuer},
		{"issuer too long", "1234", decimal.NewFromInt(100), "1", ErrInvalidIssuer},
		{"issuer non digit", "12a", decimal.NewFromInt(100), "1", ErrInvalidIssuer},
		{"zero amount", "001", decimal.Zero, "1", ErrInvalidAmount},
		{"negative amount", "001", decimal.NewFromInt(-5), "1", ErrInvalidAmount},
		{"sub-cent amount", "001", decimal.RequireFromString("10.001"), "1", ErrInvalidAmount},
		{"amount overflows ten digits", "001", decimal.New(1, 8), "1", ErrInvalidAmount},
		{"free field non digit", "001", decimal.NewFromInt(100), "12x4", ErrInvalidFreeField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Encode(tt.issuer, due, tt.amount, tt.freeField)
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestDecode(t *testing.T) {
	due := date(2025, time.March, 10)
	amount := decimal.RequireFromString("150.00")
	code, err := Encode("001", due, amount, "0000000001000000000000000")
	require.NoError(t, err)

	dec, err := Decode(code)
	require.NoError(t, err)
	assert.Equal(t, "001", dec.IssuerID)
	assert.Equal(t, CurrencyReal, dec.Currency)
	assert.Equal(t, 16, dec.DateFactor)
	assert.True(t, amount.Equal(dec.Amount), "amount %s", dec.Amount)
	assert.Equal(t, "0000000001000000000000000", dec.FreeField)
	assert.Equal(t, due, dec.DueDate(date(2025, time.February, 1)))
}

func TestDecodeRejectsBadInput(t *testing.T) {
	t.Run("wrong length", func(t *testing.T) {
		_, err := Decode("123")
		assert.ErrorIs(t, err, ErrInvalidCodeLength)
	})

	t.Run("non digit", func(t *testing.T) {
		_, err := Decode(strings.Repeat("1", 43) + "x")
		assert.ErrorIs(t, err, ErrInvalidCodeLength)
	})

	t.Run("tampered digit breaks check", func(t *testing.T) {
		code, err := Encode("001", date(2025, time.March, 10), decimal.NewFromInt(150), "1")
		require.NoError(t, err)
		tampered := code[:10] + flip(code[10]) + code[11:]
		_, err = Decode(tampered)
		assert.ErrorIs(t, err, ErrCheckDigitMismatch)
	})
}

// flip swaps a digit for a different one without leaving 0-9.
func flip(b byte) string {
	if b == '9' {
		return "0"
	}
	return string(b + 1)
}
