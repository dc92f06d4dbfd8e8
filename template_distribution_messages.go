package sv2svc

// Template Distribution subprotocol messages, grounded in
// original_source/examples/template-distribution-client/src/handler.rs.

type NewTemplate struct {
	TemplateID      uint64
	FutureTemplate   bool
	Version          uint32
	CoinbaseTxVersion uint32
	CoinbasePrefix   []byte
	CoinbaseTxInputSequence uint32
	CoinbaseTxValueRemaining uint64
	CoinbaseTxOutputsCount  uint32
	CoinbaseTxOutputs      []byte
	CoinbaseTxLocktime     uint32
	MerklePath             [][32]byte
}

type SetNewPrevHash struct {
	TemplateID uint64
	PrevHash   [32]byte
	Header timestamp
	NBits      uint32
	Target     [32]byte
}

// timestamp is an alias of uint32 (the same type, not a distinct one) used
// so the Header field above reads naturally; it is a Unix second count.
type timestamp = uint32

type RequestTransactionData struct {
	TemplateID uint64
}

type RequestTransactionDataSuccess struct {
	TemplateID       uint64
	ExcessData       []byte
	TransactionList  [][]byte
}

type RequestTransactionDataError struct {
	TemplateID uint64
	ErrorCode  string
}

type SubmitSolution struct {
	TemplateID  uint64
	Version     uint32
	NTime       uint32
	Nonce       uint32
	CoinbaseTx  []byte
}

type CoinbaseOutputConstraints struct {
	CoinbaseOutputMaxAdditionalSize uint32
	CoinbaseOutputMaxAdditionalSigops uint16
}
