package chain

import "strings"

// balanceDecimals is the PAS token precision.
const balanceDecimals = 12

// FormatBalance turns a raw integer balance string into a decimal PAS
// amount, e.g. "1500000000000" -> "1.500000000000 PAS".
func FormatBalance(raw string) string {
	if raw == "" {
		return "0"
	}
	padded := raw
	if len(padded) < balanceDecimals+1 {
		padded = strings.Repeat("0", balanceDecimals+1-len(padded)) + padded
	}
	integer := padded[:len(padded)-balanceDecimals]
	fraction := padded[len(padded)-balanceDecimals:]
	return integer + "." + fraction + " PAS"
}
