package sv2svc

import (
	"encoding/binary"
	"fmt"
	"io"
)

// frameHeaderLen mirrors goPool's stratumV2FrameHeaderLen: a 2-byte
// extension/type word, a 1-byte reserved/ext-bit, and a 3-byte little
// endian payload length, for a 6-byte header. This is a minimal stand-in
// for the real Sv2 frame header; the upstream codec this core assumes is
// the canonical source of truth for wire-exact framing.
const frameHeaderLen = 6

// messageType identifies which Go struct a frame's payload decodes into.
// A real Sv2 codec assigns these per the protocol spec; this core only
// needs internally-consistent ids to round-trip through FramedMessageIo
// implementations and tests.
type messageType uint16

const (
	msgTypeSetupConnection messageType = iota + 1
	msgTypeSetupConnectionSuccess
	msgTypeSetupConnectionError

	msgTypeOpenStandardMiningChannel
	msgTypeOpenExtendedMiningChannel
	msgTypeUpdateChannel
	msgTypeSubmitSharesStandard
	msgTypeSubmitSharesExtended
	msgTypeSetCustomMiningJob
	msgTypeCloseChannel

	msgTypeOpenStandardMiningChannelSuccess
	msgTypeOpenExtendedMiningChannelSuccess
	msgTypeOpenMiningChannelError
	msgTypeUpdateChannelError
	msgTypeNewMiningJob
	msgTypeNewExtendedMiningJob
	msgTypeSetNewPrevHashMining
	msgTypeSetTarget
	msgTypeSetGroupChannel
	msgTypeSetExtranoncePrefix
	msgTypeSubmitSharesSuccess
	msgTypeSubmitSharesError
	msgTypeSetCustomMiningJobSuccess
	msgTypeSetCustomMiningJobError

	msgTypeNewTemplate
	msgTypeSetNewPrevHashTemplateDistribution
	msgTypeRequestTransactionData
	msgTypeRequestTransactionDataSuccess
	msgTypeRequestTransactionDataError
	msgTypeSubmitSolution
	msgTypeCoinbaseOutputConstraints
)

// encodeFrame wraps an already-serialized payload with the frame header.
func encodeFrame(mt messageType, payload []byte) []byte {
	out := make([]byte, frameHeaderLen+len(payload))
	binary.LittleEndian.PutUint16(out[0:2], uint16(mt))
	out[2] = 0 // reserved / extension bit, unused by this stand-in
	putUint24LE(out[3:6], uint32(len(payload)))
	copy(out[frameHeaderLen:], payload)
	return out
}

// readFrame reads one length-prefixed frame from r, grounded in goPool's
// readOneStratumV2FrameFromReader.
func readFrame(r io.Reader) (messageType, []byte, error) {
	var hdr [frameHeaderLen]byte
	n, err := io.ReadFull(r, hdr[:])
	if err != nil {
		if (err == io.EOF || err == io.ErrUnexpectedEOF) && n == 0 {
			return 0, nil, io.EOF
		}
		return 0, nil, err
	}
	mt := messageType(binary.LittleEndian.Uint16(hdr[0:2]))
	payloadLen := readUint24LE(hdr[3:6])
	payload := make([]byte, payloadLen)
	if payloadLen > 0 {
		if _, err := io.ReadFull(r, payload); err != nil {
			return 0, nil, err
		}
	}
	return mt, payload, nil
}

func putUint24LE(b []byte, v uint32) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
}

func readUint24LE(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16
}

// ErrUnknownMessageType is returned by the minimal codec when it receives a
// message type id it doesn't recognize.
type ErrUnknownMessageType struct {
	Type messageType
}

func (e *ErrUnknownMessageType) Error() string {
	return fmt.Sprintf("sv2svc: unknown message type %d", e.Type)
}
