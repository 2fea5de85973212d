package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateBookingReference(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		ref := GenerateBookingReference()
		assert.Len(t, ref, 10)
		assert.Equal(t, "BK", ref[:2])
		for _, r := range ref[2:] {
			assert.True(t, (r >= '0' && r <= '9') || (r >= 'A' && r <= 'F'),
				"reference %s contains unexpected character %c", ref, r)
		}
		assert.False(t, seen[ref], "references must not repeat")
		seen[ref] = true
	}
}

func TestGenerateTransactionID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		id := GenerateTransactionID()
		assert.Len(t, id, 15)
		assert.Equal(t, "TXN", id[:3])
		for _, r := range id[3:] {
			assert.True(t, (r >= '0' && r <= '9') || (r >= 'A' && r <= 'F'),
				"id %s contains unexpected character %c", id, r)
		}
		assert.False(t, seen[id], "transaction ids must not repeat")
		seen[id] = true
	}
}
