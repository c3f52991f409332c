package timer

import "fmt"

// FormatHMS renders seconds as HH:MM:SS. Fractional seconds are truncated
// and negative inputs clamp to zero. Hours widen past two digits rather
// than wrap.
func FormatHMS(seconds float64) string {
	total := int(seconds)
	if total < 0 {
		total = 0
	}
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
