// Package sv2svc implements the service-layer core of the Stratum V2
// protocol family: a request dispatcher, connection lifecycle manager,
// SetupConnection negotiator, and sibling IO, shared by a Server Service
// and a Client Service.
//
// Concrete subprotocol business logic, the Noise-encrypted wire transport,
// and the Sv2 binary codec are treated as external collaborators; this
// package defines the trait-shaped contracts for them plus a minimal
// concrete stand-in (see frame.go, transport.go, *_messages.go) so the
// module is self-contained and testable without an upstream codec crate.
package sv2svc
