package constants

// OptionKeys is the canonical option key order. No other keys ever appear.
var OptionKeys = []string{"A", "B", "C", "D"}

// DigitToOptionKey maps numeric option/answer markers to their letter keys.
var DigitToOptionKey = map[string]string{
	"1": "A",
	"2": "B",
	"3": "C",
	"4": "D",
}

// IsOptionKey reports whether s is one of the four canonical keys.
func IsOptionKey(s string) bool {
	switch s {
	case "A", "B", "C", "D":
		return true
	}
	return false
}
