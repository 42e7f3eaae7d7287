package utils

import "strings"

// NormalizeSymbol trims whitespace and a leading "$" cashtag and upper-cases
// the result. Exchange suffixes (".NS", "-USD", "=X") and index carets are
// left alone.
func NormalizeSymbol(symbol string) string {
	s := strings.TrimSpace(symbol)
	s = strings.TrimPrefix(s, "$")
	return strings.ToUpper(s)
}
