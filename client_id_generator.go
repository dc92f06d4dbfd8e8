package sv2svc

import "sync/atomic"

// clientIDGenerator hands out monotonically increasing, never-repeating
// client ids starting at 1, matching spec.md §3's client-id invariant.
// Grounded in goPool's atomic.Uint32 counters (sv2_conn.go's
// nextChannelID/nextWireJobID, GoVault's Server.nextEN1).
type clientIDGenerator struct {
	next atomic.Uint32
}

func newClientIDGenerator() *clientIDGenerator {
	return &clientIDGenerator{}
}

func (g *clientIDGenerator) Next() uint32 {
	return g.next.Add(1)
}
