package sv2svc

// Mining subprotocol messages. Field sets are trimmed to what the
// dispatcher and handler contracts in this core need to route and log
// traffic; exact bit-level wire layout is the concern of the external
// codec this core assumes (see frame.go for the minimal stand-in used by
// tests).

// --- client-to-server (request-shaped) ---

type OpenStandardMiningChannel struct {
	RequestID    uint32
	UserIdentity string
	NominalHashrate float32
	MaxTarget    [32]byte
}

type OpenExtendedMiningChannel struct {
	RequestID         uint32
	UserIdentity      string
	NominalHashrate   float32
	MaxTarget         [32]byte
	MinExtranonceSize uint16
}

type UpdateChannel struct {
	ChannelID       uint32
	NominalHashrate float32
	MaximumTarget   [32]byte
}

type SubmitSharesStandard struct {
	ChannelID      uint32
	SequenceNumber uint32
	JobID          uint32
	Nonce          uint32
	NTime          uint32
	Version        uint32
}

type SubmitSharesExtended struct {
	ChannelID      uint32
	SequenceNumber uint32
	JobID          uint32
	Nonce          uint32
	NTime          uint32
	Version        uint32
	Extranonce     []byte
}

type SetCustomMiningJob struct {
	ChannelID       uint32
	RequestID       uint32
	Token           []byte
	Version         uint32
	PrevHash        [32]byte
	MinNTime        uint32
	NBits           uint32
	CoinbaseTxPrefix []byte
	CoinbaseTxSuffix []byte
	MerklePath       [][32]byte
}

type CloseChannel struct {
	ChannelID uint32
	Reason    string
}

// --- server-to-client only (must be rejected if received at the server) ---

type OpenStandardMiningChannelSuccess struct {
	RequestID      uint32
	ChannelID      uint32
	Target         [32]byte
	ExtranoncePrefix []byte
	GroupChannelID uint32
}

type OpenExtendedMiningChannelSuccess struct {
	RequestID      uint32
	ChannelID      uint32
	Target         [32]byte
	ExtranonceSize uint16
	ExtranoncePrefix []byte
	GroupChannelID uint32
}

type OpenMiningChannelError struct {
	RequestID uint32
	ErrorCode string
}

type UpdateChannelError struct {
	ChannelID uint32
	ErrorCode string
}

type NewMiningJob struct {
	ChannelID  uint32
	JobID      uint32
	MinNTime   *uint32
	Version    uint32
	MerkleRoot [32]byte
}

type NewExtendedMiningJob struct {
	ChannelID        uint32
	JobID            uint32
	MinNTime         *uint32
	Version          uint32
	VersionRollingAllowed bool
	MerklePath       [][32]byte
	CoinbaseTxPrefix []byte
	CoinbaseTxSuffix []byte
}

type SetNewPrevHashMining struct {
	ChannelID uint32
	JobID     uint32
	PrevHash  [32]byte
	MinNTime  uint32
	NBits     uint32
}

type SetTarget struct {
	ChannelID     uint32
	MaximumTarget [32]byte
}

type SetGroupChannel struct {
	GroupChannelID uint32
	ChannelIDs     []uint32
}

type SetExtranoncePrefix struct {
	ChannelID        uint32
	ExtranoncePrefix []byte
}

type SubmitSharesSuccess struct {
	ChannelID               uint32
	LastSequenceNumber      uint32
	NewSubmitsAcceptedCount uint32
	NewSharesSum            uint64
}

type SubmitSharesError struct {
	ChannelID      uint32
	SequenceNumber uint32
	ErrorCode      string
}

type SetCustomMiningJobSuccess struct {
	ChannelID   uint32
	RequestID   uint32
	JobID       uint32
}

type SetCustomMiningJobError struct {
	ChannelID uint32
	RequestID uint32
	ErrorCode string
}
