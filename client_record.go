package sv2svc

import (
	"sync"
	"sync/atomic"
	"time"
)

// ClientRecord is the per-connection bookkeeping the server half keeps for
// one accepted client (spec.md §3 "Client record"). connection is guarded
// by its own RWMutex since it is written exactly once (by the SetupConnection
// negotiator) but read concurrently by many dispatcher calls.
type ClientRecord struct {
	ID uint32
	IO FramedMessageIo

	connMu     sync.RWMutex
	connection *ConnectionDetails

	lastMessageUnixNano atomic.Int64

	shutdownOnce sync.Once
}

func newClientRecord(id uint32, io FramedMessageIo) *ClientRecord {
	c := &ClientRecord{ID: id, IO: io}
	c.touch()
	return c
}

// touch records that a message was just received from this client.
func (c *ClientRecord) touch() {
	c.lastMessageUnixNano.Store(time.Now().UnixNano())
}

// LastMessageTime returns the last time a frame was received from this
// client.
func (c *ClientRecord) LastMessageTime() time.Time {
	return time.Unix(0, c.lastMessageUnixNano.Load())
}

// IsInactive reports whether this client has been silent for at least
// limit.
func (c *ClientRecord) IsInactive(limit time.Duration) bool {
	return time.Since(c.LastMessageTime()) >= limit
}

// Connection returns the negotiated connection details, or nil before
// SetupConnection has succeeded.
func (c *ClientRecord) Connection() *ConnectionDetails {
	c.connMu.RLock()
	defer c.connMu.RUnlock()
	return c.connection
}

// setConnection commits the negotiated connection details. It is a
// programming error to call this more than once per record; the setup
// negotiator is the only caller and only does so on its success path.
func (c *ClientRecord) setConnection(details ConnectionDetails) {
	c.connMu.Lock()
	defer c.connMu.Unlock()
	c.connection = &details
}

// shutdown closes this client's IO exactly once, satisfying spec.md §3
// invariant (c).
func (c *ClientRecord) shutdown() {
	c.shutdownOnce.Do(func() {
		if c.IO != nil {
			c.IO.Shutdown()
		}
	})
}
