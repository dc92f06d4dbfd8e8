package sv2svc

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestClientService(t *testing.T, mining MiningClientHandler) (*ClientService, FramedMessageIo) {
	t.Helper()
	serverSide, clientSide := net.Pipe()
	cfg := ClientConfig{
		ServerAddress: "unused:0",
		MinVersion:    2,
		MaxVersion:    2,
		Mining:        &ClientProtocolConfig{Flags: 0, UserIdentity: "worker1"},
	}
	c, err := NewClientService(cfg, mining, nil, nil)
	require.NoError(t, err)
	io := newPlaintextIo(clientSide)
	c.setIO(io)
	t.Cleanup(io.Shutdown)

	peer := newPlaintextIo(serverSide)
	t.Cleanup(peer.Shutdown)
	return c, peer
}

// callAndRecvClient mirrors server_setup_test.go's callAndRecv: net.Pipe is
// a synchronous rendezvous, so the trigger call and the peer's read must run
// concurrently.
func callAndRecvClient(t *testing.T, c *ClientService, req RequestToClient, peer FramedMessageIo) (AnyMessage, ResponseFromClient, error) {
	t.Helper()
	type callResult struct {
		resp ResponseFromClient
		err  error
	}
	resultCh := make(chan callResult, 1)
	go func() {
		resp, err := c.Call(context.Background(), req)
		resultCh <- callResult{resp: resp, err: err}
	}()

	msg, recvErr := peer.RecvMessage()
	require.NoError(t, recvErr)
	res := <-resultCh
	return msg, res.resp, res.err
}

func TestClientSetup_HappyPath(t *testing.T) {
	c, peer := newTestClientService(t, newStubMiningClientHandler())

	sent, resp, err := callAndRecvClient(t, c, SetupConnectionTriggerRequest{Protocol: ProtocolMining, Flags: 0}, peer)
	require.NoError(t, err)
	setup, ok := sent.(SetupConnection)
	require.True(t, ok, "expected SetupConnection, got %T", sent)
	require.Equal(t, ProtocolMining, setup.Protocol)
	_, ok = resp.(ClientOk)
	require.True(t, ok)
	require.Equal(t, stateNegotiating, connectionState(c.state.Load()))

	resp, err = c.Call(context.Background(), IncomingMessageToClient{Message: SetupConnectionSuccess{UsedVersion: 2}})
	require.NoError(t, err)
	_, ok = resp.(ClientConnectionEstablished)
	require.True(t, ok)
	require.Equal(t, stateEstablished, connectionState(c.state.Load()))
}

func TestClientSetup_ServerRefusal(t *testing.T) {
	c, peer := newTestClientService(t, newStubMiningClientHandler())

	_, _, err := callAndRecvClient(t, c, SetupConnectionTriggerRequest{Protocol: ProtocolMining}, peer)
	require.NoError(t, err)

	_, err = c.Call(context.Background(), IncomingMessageToClient{
		Message: SetupConnectionError{ErrorCode: ErrorCodeUnsupportedFeatureFlags},
	})
	require.Error(t, err)
	clientErr, ok := err.(*ClientError)
	require.True(t, ok)
	require.Equal(t, ClientErrSetupConnectionRefused, clientErr.Kind)
	require.Equal(t, ErrorCodeUnsupportedFeatureFlags, clientErr.ErrorCode)
	require.Equal(t, stateClosed, connectionState(c.state.Load()))
}

func TestClientSetup_SuccessOutsideNegotiatingIsUnsupported(t *testing.T) {
	c, _ := newTestClientService(t, newStubMiningClientHandler())
	// Still Accepted: no trigger has been sent.
	_, err := c.Call(context.Background(), IncomingMessageToClient{Message: SetupConnectionSuccess{UsedVersion: 2}})
	require.Error(t, err)
	clientErr, ok := err.(*ClientError)
	require.True(t, ok)
	require.Equal(t, ClientErrUnsupportedMessage, clientErr.Kind)
}

func TestClientSend_BeforeEstablishedIsNotConnected(t *testing.T) {
	c, _ := newTestClientService(t, newStubMiningClientHandler())
	_, err := c.Call(context.Background(), SendMessageToMiningServerRequest{Message: SubmitSharesStandard{}})
	require.Error(t, err)
	clientErr, ok := err.(*ClientError)
	require.True(t, ok)
	require.Equal(t, ClientErrIsNotConnected, clientErr.Kind)
}

func TestNewClientService_NullHandlerForSupportedProtocol(t *testing.T) {
	cfg := ClientConfig{
		ServerAddress: "unused:0",
		MinVersion:    2,
		MaxVersion:    2,
		Mining:        &ClientProtocolConfig{Flags: 0},
	}
	_, err := NewClientService(cfg, nil, nil, nil)
	require.Error(t, err)
	clientErr, ok := err.(*ClientError)
	require.True(t, ok)
	require.Equal(t, ClientErrNullHandlerForSupportedProtocol, clientErr.Kind)
	require.Equal(t, ProtocolMining, clientErr.Protocol)
}

func TestNewClientService_NonNullHandlerForUnsupportedProtocol(t *testing.T) {
	cfg := ClientConfig{ServerAddress: "unused:0", MinVersion: 2, MaxVersion: 2}
	_, err := NewClientService(cfg, newStubMiningClientHandler(), nil, nil)
	require.Error(t, err)
	clientErr, ok := err.(*ClientError)
	require.True(t, ok)
	require.Equal(t, ClientErrNonNullHandlerForUnsupportedProtocol, clientErr.Kind)
}
