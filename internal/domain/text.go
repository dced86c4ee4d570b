package domain

import "strings"

// CoalesceStr returns the first value that is not blank, as given. Used for
// display fallbacks such as a missing location or weather description.
func CoalesceStr(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
