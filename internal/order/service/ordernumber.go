package service

import (
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// RandomToken returns an 8-character uppercase hex token drawn from a fresh
// random UUID.
func RandomToken() string {
	u := uuid.New()
	return strings.ToUpper(hex.EncodeToString(u[:4]))
}

// FormatOrderNumber builds the public order number: ORD-<UTC date>-<token>.
func FormatOrderNumber(at time.Time, token string) string {
	return fmt.Sprintf("ORD-%s-%s", at.UTC().Format("20060102"), token)
}
