package flow

import "strings"

// NormalizePhone strips everything except digits and a leading "+", then
// accepts 9 to 15 digits, prepending "+" when missing. Country-code
// correctness is deliberately not checked: bare national numbers like
// "90 123 45 67" must pass.
func NormalizePhone(raw string) (string, bool) {
	var b strings.Builder
	for i, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
			continue
		}
		if r == '+' && i == 0 {
			b.WriteRune(r)
		}
	}
	p := b.String()
	digits := strings.TrimPrefix(p, "+")
	if len(digits) < 9 || len(digits) > 15 {
		return "", false
	}
	if !strings.HasPrefix(p, "+") {
		p = "+" + p
	}
	return p, true
}
