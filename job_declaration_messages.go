package sv2svc

// Job Declaration messages are a minimal placeholder set. The server
// dispatcher routes AllocateMiningJobToken and DeclareMiningJob to the
// JobDeclarationServerHandler; codec.go assigns no message type to any of
// these structs, so they cannot be sent or received over a FramedMessageIo.

type AllocateMiningJobToken struct {
	UserIdentifier string
	RequestID      uint32
}

type AllocateMiningJobTokenSuccess struct {
	RequestID     uint32
	MiningJobToken []byte
}

type DeclareMiningJob struct {
	RequestID        uint32
	MiningJobToken   []byte
	Version          uint32
	CoinbasePrefix   []byte
	CoinbaseSuffix   []byte
}

type DeclareMiningJobSuccess struct {
	RequestID uint32
}

type DeclareMiningJobError struct {
	RequestID uint32
	ErrorCode string
}
