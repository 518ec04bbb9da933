package tool

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

func GenerateUUIDV7() string {
	return uuid.Must(uuid.NewV7()).String()
}

// ShortToken returns the first 8 hex characters of a random UUID.
func ShortToken() string {
	return uuid.NewString()[:8]
}

// LocalOrderID builds a locally generated order reference, used as the
// shipping fallback identifier and as the provider receipt placeholder.
// Format: PREFIX_<8 hex>_<epoch millis>.
func LocalOrderID(prefix string) string {
	return fmt.Sprintf("%s_%s_%d", prefix, ShortToken(), time.Now().UnixMilli())
}
