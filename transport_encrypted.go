package sv2svc

import (
	"fmt"
	"io"
	"net"

	"github.com/btcsuite/btcd/btcec/v2"
)

// encryptedHandshakeAck is sent by the dialing side once it has checked the
// listening side's static public key (against the pinned key, or only that
// it parses when no key is pinned).
const encryptedHandshakeAck = byte(0x01)

// newEncryptedServerIo performs the listening side of this core's minimal
// static-key handshake stand-in and returns a FramedMessageIo once it
// completes. This is NOT Noise_NX: it exists only so ServerConfig's
// TCPConfig keypair fields (see SPEC_FULL.md §3, §6A) are exercised by an
// adapter that a real Noise transport would replace. The key exchange
// itself never affects the framed bytes that follow.
func newEncryptedServerIo(conn net.Conn, priv *btcec.PrivateKey) (FramedMessageIo, error) {
	if priv == nil {
		return nil, fmt.Errorf("sv2svc: encrypted transport requires a static private key")
	}
	pub := priv.PubKey().SerializeCompressed()
	if _, err := conn.Write(pub); err != nil {
		return nil, fmt.Errorf("sv2svc: write static pubkey: %w", err)
	}
	var ack [1]byte
	if _, err := io.ReadFull(conn, ack[:]); err != nil {
		return nil, fmt.Errorf("sv2svc: read handshake ack: %w", err)
	}
	if ack[0] != encryptedHandshakeAck {
		return nil, fmt.Errorf("sv2svc: unexpected handshake ack byte %x", ack[0])
	}
	return newPlaintextIo(conn), nil
}

// newEncryptedClientIo performs the dialing side of the handshake. If
// expectedServerPub is non-nil, the received static key must match it
// exactly (pinning), mirroring Sv2's optional auth_pk configuration.
func newEncryptedClientIo(conn net.Conn, expectedServerPub *btcec.PublicKey) (FramedMessageIo, error) {
	var pub [33]byte
	if _, err := io.ReadFull(conn, pub[:]); err != nil {
		return nil, fmt.Errorf("sv2svc: read static pubkey: %w", err)
	}
	if expectedServerPub != nil {
		if !bytesEqual(pub[:], expectedServerPub.SerializeCompressed()) {
			return nil, fmt.Errorf("sv2svc: server static pubkey does not match configured auth_pk")
		}
	} else {
		if _, err := btcec.ParsePubKey(pub[:]); err != nil {
			return nil, fmt.Errorf("sv2svc: invalid server static pubkey: %w", err)
		}
	}
	if _, err := conn.Write([]byte{encryptedHandshakeAck}); err != nil {
		return nil, fmt.Errorf("sv2svc: write handshake ack: %w", err)
	}
	return newPlaintextIo(conn), nil
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
