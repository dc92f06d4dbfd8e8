package sv2svc

import "go.uber.org/zap"

// newNopLogger returns a logger that discards everything, used when a
// caller constructs a service without supplying one of its own.
func newNopLogger() *zap.Logger {
	return zap.NewNop()
}
