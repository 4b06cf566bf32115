package billingcode

import (
	"strconv"
	"strings"
)

// FormatLinhaDigitavel renders a 44-digit billing code as the human
// typeable line: five space-separated groups, the first three carrying
// their own Módulo 10 check digit and a period after the fifth digit,
// the fourth being the overall check digit copied verbatim, the fifth
// the date factor plus amount.
//
// Partition of the code (zero-based):
//
//	group 1: code[0:4]  + code[19:24] + DV  -> "AAAAA.AAAAA"
//	group 2: code[24:34]             + DV   -> "BBBBB.BBBBBB"
//	group 3: code[34:44]             + DV   -> "CCCCC.CCCCCC"
//	group 4: code[4]                        -> "D"
//	group 5: code[5:19]                     -> "EEEEEEEEEEEEEE"
func FormatLinhaDigitavel(code string) (string, error) {
	if len(code) != CodeLength || !isDigits(code) {
		return "", ErrInvalidCodeLength
	}

	g1 := code[0:4] + code[19:24]
	g2 := code[24:34]
	g3 := code[34:44]

	parts := []string{
		dotted(g1 + strconv.Itoa(CheckDigit(g1))),
		dotted(g2 + strconv.Itoa(CheckDigit(g2))),
		dotted(g3 + strconv.Itoa(CheckDigit(g3))),
		string(code[checkDigitIndex]),
		code[factorStart:freeStart],
	}
	return strings.Join(parts, " "), nil
}

// dotted inserts the intra-group period after the fifth digit.
func dotted(group string) string {
	return group[:5] + "." + group[5:]
}
