package sv2svc

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClientService_DispatchIncomingMessage_RoutesToMiningHandler(t *testing.T) {
	mining := newStubMiningClientHandler()
	cfg := ClientConfig{ServerAddress: "unused:0", MinVersion: 2, MaxVersion: 2, Mining: &ClientProtocolConfig{Flags: 0}}
	c, err := NewClientService(cfg, mining, nil, nil)
	require.NoError(t, err)

	resp, err := c.Call(context.Background(), IncomingMessageToClient{Message: NewMiningJob{ChannelID: 1, JobID: 2}})
	require.NoError(t, err)
	_, ok := resp.(ClientOk)
	require.True(t, ok)
}

func TestClientService_DispatchIncomingMessage_RejectsRequestShapedMessage(t *testing.T) {
	mining := newStubMiningClientHandler()
	cfg := ClientConfig{ServerAddress: "unused:0", MinVersion: 2, MaxVersion: 2, Mining: &ClientProtocolConfig{Flags: 0}}
	c, err := NewClientService(cfg, mining, nil, nil)
	require.NoError(t, err)

	_, err = c.Call(context.Background(), IncomingMessageToClient{Message: OpenStandardMiningChannel{RequestID: 1}})
	require.Error(t, err)
	clientErr, ok := err.(*ClientError)
	require.True(t, ok)
	require.Equal(t, ClientErrUnsupportedMessage, clientErr.Kind)
}

func TestClientService_DispatchMiningResponse_UnsupportedProtocol(t *testing.T) {
	cfg := ClientConfig{ServerAddress: "unused:0", MinVersion: 2, MaxVersion: 2}
	c, err := NewClientService(cfg, nil, nil, nil)
	require.NoError(t, err)

	_, err = c.Call(context.Background(), IncomingMessageToClient{Message: NewMiningJob{}})
	require.Error(t, err)
	clientErr, ok := err.(*ClientError)
	require.True(t, ok)
	require.Equal(t, ClientErrUnsupportedProtocol, clientErr.Kind)
	require.Equal(t, ProtocolMining, clientErr.Protocol)
}

func TestClientService_SiblingForwarding(t *testing.T) {
	clientIO, serverIO := newSiblingIOPair()
	cfg := ClientConfig{ServerAddress: "unused:0", MinVersion: 2, MaxVersion: 2}
	c, err := NewClientService(cfg, nil, nil, clientIO)
	require.NoError(t, err)

	resp, err := c.Call(context.Background(), SendRequestToSiblingServerServiceRequest{
		Request: MiningTriggerRequest{Trigger: MiningTriggerStart{}},
	})
	require.NoError(t, err)
	_, ok := resp.(ClientOk)
	require.True(t, ok)

	req, ok := serverIO.Recv(nil)
	require.True(t, ok)
	_, ok = req.(MiningTriggerRequest)
	require.True(t, ok)
}

func TestClientService_SiblingForwarding_NoSiblingConfigured(t *testing.T) {
	cfg := ClientConfig{ServerAddress: "unused:0", MinVersion: 2, MaxVersion: 2}
	c, err := NewClientService(cfg, nil, nil, nil)
	require.NoError(t, err)

	_, err = c.Call(context.Background(), SendRequestToSiblingServerServiceRequest{Request: MiningTriggerRequest{}})
	require.Error(t, err)
	clientErr, ok := err.(*ClientError)
	require.True(t, ok)
	require.Equal(t, ClientErrNoSiblingServerService, clientErr.Kind)
}

func TestClientService_MultipleRequestsToClient_AbortsOnFirstFailure(t *testing.T) {
	mining := newStubMiningClientHandler()
	cfg := ClientConfig{ServerAddress: "unused:0", MinVersion: 2, MaxVersion: 2, Mining: &ClientProtocolConfig{Flags: 0}}
	c, err := NewClientService(cfg, mining, nil, nil)
	require.NoError(t, err)

	_, err = c.Call(context.Background(), MultipleRequestsToClient{
		Requests: []RequestToClient{
			SendMessageToMiningServerRequest{Message: SubmitSharesStandard{}}, // not connected, fails
			IncomingMessageToClient{Message: NewMiningJob{}},
		},
	})
	require.Error(t, err)
	clientErr, ok := err.(*ClientError)
	require.True(t, ok)
	require.Equal(t, ClientErrIsNotConnected, clientErr.Kind)
}
