package payments

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimulatedGateway_ExtremeRates(t *testing.T) {
	always := NewSimulatedGateway(1.0)
	never := NewSimulatedGateway(0.0)

	for i := 0; i < 100; i++ {
		assert.True(t, always.Process(100, "CREDIT_CARD"))
		assert.False(t, never.Process(100, "CREDIT_CARD"))
	}
}

func TestStubGateway(t *testing.T) {
	assert.True(t, StubGateway{Succeed: true}.Process(50, "UPI"))
	assert.False(t, StubGateway{Succeed: false}.Process(50, "UPI"))
}
