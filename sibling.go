package sv2svc

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// siblingChannelCapacity bounds each direction of a sibling pair (spec.md
// §4.5). Delivery is not guaranteed: a send on a full channel fails with
// FailedToSendRequestToSibling rather than blocking the caller.
const siblingChannelCapacity = 64

// SiblingServerServiceIo is the server-side half of an in-process duplex
// channel pairing a co-located ClientService and ServerService (spec.md
// §4.5). It is built by newSiblingIOPair and passed to NewServerService.
type SiblingServerServiceIo struct {
	id   uuid.UUID
	out  chan RequestToClient
	in   chan RequestToServer
	once sync.Once
	done chan struct{}
}

// SiblingClientServiceIo is the client-side half of the same pair.
type SiblingClientServiceIo struct {
	id   uuid.UUID
	out  chan RequestToServer
	in   chan RequestToClient
	once sync.Once
	done chan struct{}
}

// newSiblingIOPair builds a connected pair: requests sent on one half's
// Send arrive on the other half's Recv. The pair shares a correlation id,
// tagged with google/uuid purely for log correlation between the two
// services sharing this process.
func newSiblingIOPair() (*SiblingClientServiceIo, *SiblingServerServiceIo) {
	id := uuid.New()
	toServer := make(chan RequestToServer, siblingChannelCapacity)
	toClient := make(chan RequestToClient, siblingChannelCapacity)
	done := make(chan struct{})

	client := &SiblingClientServiceIo{id: id, out: toServer, in: toClient, done: done}
	server := &SiblingServerServiceIo{id: id, out: toClient, in: toServer, done: done}
	return client, server
}

func (s *SiblingServerServiceIo) ID() uuid.UUID { return s.id }

// Send forwards a request to the paired client service. It never blocks:
// a full channel is reported as an error instead.
func (s *SiblingServerServiceIo) Send(req RequestToClient) error {
	select {
	case s.out <- req:
		return nil
	default:
		return fmt.Errorf("sv2svc: sibling %s: %w", s.id, ErrFailedToSendToSiblingClient)
	}
}

// Recv blocks until a request arrives from the paired client service, the
// pair is shut down, or doneCh closes.
func (s *SiblingServerServiceIo) Recv(doneCh <-chan struct{}) (RequestToServer, bool) {
	select {
	case req, ok := <-s.in:
		return req, ok
	case <-s.done:
		return nil, false
	case <-doneCh:
		return nil, false
	}
}

func (s *SiblingServerServiceIo) Shutdown() {
	s.once.Do(func() { close(s.done) })
}

func (c *SiblingClientServiceIo) ID() uuid.UUID { return c.id }

func (c *SiblingClientServiceIo) Send(req RequestToServer) error {
	select {
	case c.out <- req:
		return nil
	default:
		return fmt.Errorf("sv2svc: sibling %s: %w", c.id, ErrFailedToSendToSiblingServer)
	}
}

func (c *SiblingClientServiceIo) Recv(doneCh <-chan struct{}) (RequestToClient, bool) {
	select {
	case req, ok := <-c.in:
		return req, ok
	case <-c.done:
		return nil, false
	case <-doneCh:
		return nil, false
	}
}

func (c *SiblingClientServiceIo) Shutdown() {
	c.once.Do(func() { close(c.done) })
}
