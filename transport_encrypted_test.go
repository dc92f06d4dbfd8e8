package sv2svc

import (
	"net"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/stretchr/testify/require"
)

func TestEncryptedTransport_HandshakeAndRoundTrip(t *testing.T) {
	priv, err := btcec.NewPrivateKey()
	require.NoError(t, err)

	serverConn, clientConn := net.Pipe()

	type handshakeResult struct {
		io  FramedMessageIo
		err error
	}
	serverCh := make(chan handshakeResult, 1)
	go func() {
		io, err := newEncryptedServerIo(serverConn, priv)
		serverCh <- handshakeResult{io, err}
	}()

	clientIO, err := newEncryptedClientIo(clientConn, priv.PubKey())
	require.NoError(t, err)

	res := <-serverCh
	require.NoError(t, res.err)
	serverIO := res.io
	t.Cleanup(serverIO.Shutdown)
	t.Cleanup(clientIO.Shutdown)

	msgCh := make(chan AnyMessage, 1)
	go func() {
		msg, err := serverIO.RecvMessage()
		require.NoError(t, err)
		msgCh <- msg
	}()
	require.NoError(t, clientIO.SendMessage(SetupConnectionSuccess{UsedVersion: 2, Flags: 1}))
	got := <-msgCh
	success, ok := got.(SetupConnectionSuccess)
	require.True(t, ok)
	require.Equal(t, uint16(2), success.UsedVersion)
}

func TestEncryptedClientIo_PubKeyMismatchRejected(t *testing.T) {
	priv, err := btcec.NewPrivateKey()
	require.NoError(t, err)
	other, err := btcec.NewPrivateKey()
	require.NoError(t, err)

	serverConn, clientConn := net.Pipe()
	go func() {
		_, _ = newEncryptedServerIo(serverConn, priv)
	}()

	_, err = newEncryptedClientIo(clientConn, other.PubKey())
	require.Error(t, err)
	_ = clientConn.Close()
	_ = serverConn.Close()
}

func TestEncryptedServerIo_NilPrivateKeyRejected(t *testing.T) {
	serverConn, _ := net.Pipe()
	defer serverConn.Close()
	_, err := newEncryptedServerIo(serverConn, nil)
	require.Error(t, err)
}
