package utils

import (
	"fmt"
	"strings"
	"time"
)

// GenerateBookingReference builds a booking reference number of the form
// BK-<unix-ms>-<random hex>. The random suffix keeps references unique even
// when bookings are created concurrently within the same millisecond.
func GenerateBookingReference() (string, error) {
	suffix, err := GenerateSecureRandomString(3)
	if err != nil {
		return "", fmt.Errorf("failed to generate booking reference: %w", err)
	}
	return fmt.Sprintf("BK-%d-%s", time.Now().UnixMilli(), strings.ToUpper(suffix)), nil
}
