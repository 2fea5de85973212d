package payments

import (
	"math/rand"
	"sync"
)

// PaymentGateway abstracts the charge attempt so settlement logic can be
// exercised deterministically in tests.
type PaymentGateway interface {
	Process(amount float64, method string) bool
}

// Gateway is the gateway used by the payment handlers. Replaced with a stub
// in tests.
var Gateway PaymentGateway = NewSimulatedGateway(0.95)

// SimulatedGateway approves charges with a fixed success rate. There is no
// real acquirer behind this system.
type SimulatedGateway struct {
	SuccessRate float64

	mu  sync.Mutex
	rng *rand.Rand
}

func NewSimulatedGateway(successRate float64) *SimulatedGateway {
	return &SimulatedGateway{
		SuccessRate: successRate,
		rng:         rand.New(rand.NewSource(rand.Int63())),
	}
}

func (g *SimulatedGateway) Process(amount float64, method string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rng.Float64() < g.SuccessRate
}

// StubGateway always answers the same way.
type StubGateway struct {
	Succeed bool
}

func (g StubGateway) Process(amount float64, method string) bool {
	return g.Succeed
}
