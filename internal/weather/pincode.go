package weather

import (
	"regexp"
	"strings"
)

var pincodePattern = regexp.MustCompile(`^[1-9][0-9]{5}$`)

// NormalizePincode trims the input and checks it is a valid Indian pincode.
func NormalizePincode(pincode string) (string, error) {
	pin := strings.TrimSpace(pincode)
	if !pincodePattern.MatchString(pin) {
		return "", ErrInvalidPincode
	}
	return pin, nil
}
