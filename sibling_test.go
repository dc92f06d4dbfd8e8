package sv2svc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSiblingIOPair_RoundTrip(t *testing.T) {
	client, server := newSiblingIOPair()
	require.Equal(t, client.ID(), server.ID())

	require.NoError(t, client.Send(SetupConnectionTriggerRequest{Protocol: ProtocolMining}))
	req, ok := server.Recv(nil)
	require.True(t, ok)
	trigger, ok := req.(SetupConnectionTriggerRequest)
	require.True(t, ok)
	require.Equal(t, ProtocolMining, trigger.Protocol)

	require.NoError(t, server.Send(MultipleRequestsToClient{}))
	resp, ok := client.Recv(nil)
	require.True(t, ok)
	_, ok = resp.(MultipleRequestsToClient)
	require.True(t, ok)
}

func TestSiblingIOPair_FullChannelReportsError(t *testing.T) {
	client, server := newSiblingIOPair()
	for i := 0; i < siblingChannelCapacity; i++ {
		require.NoError(t, client.Send(SetupConnectionTriggerRequest{}))
	}
	err := client.Send(SetupConnectionTriggerRequest{})
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrFailedToSendToSiblingServer))

	for i := 0; i < siblingChannelCapacity; i++ {
		require.NoError(t, server.Send(MultipleRequestsToClient{}))
	}
	err = server.Send(MultipleRequestsToClient{})
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrFailedToSendToSiblingClient))
}

func TestSiblingIOPair_ShutdownUnblocksRecv(t *testing.T) {
	client, server := newSiblingIOPair()
	server.Shutdown()
	// idempotent
	server.Shutdown()

	_, ok := client.Recv(nil)
	require.False(t, ok)

	client2, server2 := newSiblingIOPair()
	doneCh := make(chan struct{})
	close(doneCh)
	_, ok = server2.Recv(doneCh)
	require.False(t, ok)
	_ = client2
}
