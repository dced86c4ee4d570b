package cli

import (
	"errors"

	"github.com/alexanderramin/aura/internal/contract"
)

// ErrorMessage returns the text to show the user for err. Use-case errors
// carry a message meant for display; anything else is shown in full.
func ErrorMessage(err error) string {
	var ce *contract.Error
	if errors.As(err, &ce) {
		return ce.Message
	}
	return err.Error()
}
