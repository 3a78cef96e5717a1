package format

import "strings"

// Zip keeps the first five digits, left-padded with zeros.
func Zip(zip string) string {
	if zip == "" {
		return ""
	}
	d := digits(zip)
	if len(d) > 5 {
		d = d[:5]
	}
	return strings.Repeat("0", 5-len(d)) + d
}
