package catalog

import (
	"regexp"
	"strings"
)

// maxNotesLen mirrors the TEXT column bound on supplier notes.
const maxNotesLen = 65535

// maxDecimal is the largest value a decimal(8,2) column can hold.
const maxDecimal = 999999.99

var (
	reEmail = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	rePhone = regexp.MustCompile(`^\+?[0-9 ()-]{5,30}$`)
)

func validName(s string) bool {
	return strings.TrimSpace(s) != ""
}

func validEmail(s string) bool {
	return reEmail.MatchString(strings.TrimSpace(s))
}

func validPhone(s string) bool {
	return rePhone.MatchString(strings.TrimSpace(s))
}

func validPrice(v float64) bool {
	return v >= 0 && v <= maxDecimal
}
