package tool

import (
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestGenerateUUIDV7(t *testing.T) {
	id := GenerateUUIDV7()
	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	require.Equal(t, uuid.Version(7), parsed.Version())
}

func TestLocalOrderID(t *testing.T) {
	pattern := regexp.MustCompile(`^ORD_[0-9a-f]{8}_\d+$`)
	a := LocalOrderID("ORD")
	b := LocalOrderID("ORD")
	require.Regexp(t, pattern, a)
	require.Regexp(t, pattern, b)
	require.NotEqual(t, a, b)
}
