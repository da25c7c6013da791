package match

import (
	"strings"
	"unicode"
)

// Fold reduces an identifier so that spellings of the same name compare
// equal: "OrderID", "order_id", "order-id" and "orderId" all fold to
// "orderid".
func Fold(s string) string {
	return strings.Join(Tokens(s), "")
}

// Tokens splits an identifier into lowercase words at separators and
// case changes:
//   - "OrderID" -> ["order", "id"]
//   - "hire_date" -> ["hire", "date"]
//   - "XMLParser" -> ["xml", "parser"]
func Tokens(s string) []string {
	var (
		tokens  []string
		current strings.Builder
	)

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, strings.ToLower(current.String()))
			current.Reset()
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if isSeparator(r) {
			flush()
			continue
		}

		if i > 0 && startsToken(runes, i) {
			flush()
		}

		current.WriteRune(r)
	}

	flush()

	return tokens
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' ' || r == '.'
}

// startsToken reports a lower to upper case change, or the last capital of
// an acronym followed by a lowercase letter.
func startsToken(runes []rune, i int) bool {
	r, prev := runes[i], runes[i-1]

	if !unicode.IsUpper(r) {
		return false
	}

	if !unicode.IsUpper(prev) {
		return !isSeparator(prev)
	}

	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}

// Same reports whether a and b fold to the same identifier.
func Same(a, b string) bool {
	return Fold(a) == Fold(b)
}
