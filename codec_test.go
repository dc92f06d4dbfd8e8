package sv2svc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeMessage_RoundTrip(t *testing.T) {
	cases := []AnyMessage{
		SetupConnection{Protocol: ProtocolMining, MinVersion: 2, MaxVersion: 2, Flags: 7},
		SetupConnectionSuccess{UsedVersion: 2, Flags: 3},
		SetupConnectionError{ErrorCode: ErrorCodeUnsupportedFeatureFlags, Flags: 1},
		OpenStandardMiningChannel{RequestID: 1, UserIdentity: "worker1", NominalHashrate: 12.5},
		SubmitSharesStandard{ChannelID: 1, SequenceNumber: 2, JobID: 3, Nonce: 4, NTime: 5, Version: 6},
		NewTemplate{},
		SubmitSolution{},
		CoinbaseOutputConstraints{},
	}

	for _, msg := range cases {
		mt, payload, err := encodeMessage(msg)
		require.NoError(t, err)

		decoded, err := decodeMessage(mt, payload)
		require.NoError(t, err)
		require.Equal(t, msg, decoded)
	}
}

func TestDecodeMessage_UnknownType(t *testing.T) {
	_, err := decodeMessage(messageType(0xFFFF), nil)
	require.Error(t, err)
	var unk *ErrUnknownMessageType
	require.ErrorAs(t, err, &unk)
}

func TestMessageTypeOf_UnknownConcreteType(t *testing.T) {
	_, err := messageTypeOf(struct{}{})
	require.Error(t, err)
}
