package sv2svc

import "encoding/json"

// encodeMessage and decodeMessage are the minimal stand-in for the upstream
// Sv2 binary codec this core assumes is supplied by a deployment (see
// SPEC_FULL.md §6A). They exist only so FramedMessageIo implementations and
// this core's own tests can round-trip AnyMessage values end to end without
// depending on a real bit-exact Sv2 codec crate.
func encodeMessage(msg AnyMessage) (messageType, []byte, error) {
	mt, err := messageTypeOf(msg)
	if err != nil {
		return 0, nil, err
	}
	payload, err := json.Marshal(msg)
	if err != nil {
		return 0, nil, err
	}
	return mt, payload, nil
}

func decodeMessage(mt messageType, payload []byte) (AnyMessage, error) {
	var target any
	switch mt {
	case msgTypeSetupConnection:
		target = &SetupConnection{}
	case msgTypeSetupConnectionSuccess:
		target = &SetupConnectionSuccess{}
	case msgTypeSetupConnectionError:
		target = &SetupConnectionError{}
	case msgTypeOpenStandardMiningChannel:
		target = &OpenStandardMiningChannel{}
	case msgTypeOpenExtendedMiningChannel:
		target = &OpenExtendedMiningChannel{}
	case msgTypeUpdateChannel:
		target = &UpdateChannel{}
	case msgTypeSubmitSharesStandard:
		target = &SubmitSharesStandard{}
	case msgTypeSubmitSharesExtended:
		target = &SubmitSharesExtended{}
	case msgTypeSetCustomMiningJob:
		target = &SetCustomMiningJob{}
	case msgTypeCloseChannel:
		target = &CloseChannel{}
	case msgTypeOpenStandardMiningChannelSuccess:
		target = &OpenStandardMiningChannelSuccess{}
	case msgTypeOpenExtendedMiningChannelSuccess:
		target = &OpenExtendedMiningChannelSuccess{}
	case msgTypeOpenMiningChannelError:
		target = &OpenMiningChannelError{}
	case msgTypeUpdateChannelError:
		target = &UpdateChannelError{}
	case msgTypeNewMiningJob:
		target = &NewMiningJob{}
	case msgTypeNewExtendedMiningJob:
		target = &NewExtendedMiningJob{}
	case msgTypeSetNewPrevHashMining:
		target = &SetNewPrevHashMining{}
	case msgTypeSetTarget:
		target = &SetTarget{}
	case msgTypeSetGroupChannel:
		target = &SetGroupChannel{}
	case msgTypeSetExtranoncePrefix:
		target = &SetExtranoncePrefix{}
	case msgTypeSubmitSharesSuccess:
		target = &SubmitSharesSuccess{}
	case msgTypeSubmitSharesError:
		target = &SubmitSharesError{}
	case msgTypeSetCustomMiningJobSuccess:
		target = &SetCustomMiningJobSuccess{}
	case msgTypeSetCustomMiningJobError:
		target = &SetCustomMiningJobError{}
	case msgTypeNewTemplate:
		target = &NewTemplate{}
	case msgTypeSetNewPrevHashTemplateDistribution:
		target = &SetNewPrevHash{}
	case msgTypeRequestTransactionData:
		target = &RequestTransactionData{}
	case msgTypeRequestTransactionDataSuccess:
		target = &RequestTransactionDataSuccess{}
	case msgTypeRequestTransactionDataError:
		target = &RequestTransactionDataError{}
	case msgTypeSubmitSolution:
		target = &SubmitSolution{}
	case msgTypeCoinbaseOutputConstraints:
		target = &CoinbaseOutputConstraints{}
	default:
		return nil, &ErrUnknownMessageType{Type: mt}
	}
	if len(payload) > 0 {
		if err := json.Unmarshal(payload, target); err != nil {
			return nil, err
		}
	}
	return derefMessage(target), nil
}

// derefMessage returns the pointed-to struct value so callers get the same
// concrete value shapes used throughout this core's request/response types
// (AnyMessage carries values, not pointers).
func derefMessage(ptr any) AnyMessage {
	switch v := ptr.(type) {
	case *SetupConnection:
		return *v
	case *SetupConnectionSuccess:
		return *v
	case *SetupConnectionError:
		return *v
	case *OpenStandardMiningChannel:
		return *v
	case *OpenExtendedMiningChannel:
		return *v
	case *UpdateChannel:
		return *v
	case *SubmitSharesStandard:
		return *v
	case *SubmitSharesExtended:
		return *v
	case *SetCustomMiningJob:
		return *v
	case *CloseChannel:
		return *v
	case *OpenStandardMiningChannelSuccess:
		return *v
	case *OpenExtendedMiningChannelSuccess:
		return *v
	case *OpenMiningChannelError:
		return *v
	case *UpdateChannelError:
		return *v
	case *NewMiningJob:
		return *v
	case *NewExtendedMiningJob:
		return *v
	case *SetNewPrevHashMining:
		return *v
	case *SetTarget:
		return *v
	case *SetGroupChannel:
		return *v
	case *SetExtranoncePrefix:
		return *v
	case *SubmitSharesSuccess:
		return *v
	case *SubmitSharesError:
		return *v
	case *SetCustomMiningJobSuccess:
		return *v
	case *SetCustomMiningJobError:
		return *v
	case *NewTemplate:
		return *v
	case *SetNewPrevHash:
		return *v
	case *RequestTransactionData:
		return *v
	case *RequestTransactionDataSuccess:
		return *v
	case *RequestTransactionDataError:
		return *v
	case *SubmitSolution:
		return *v
	case *CoinbaseOutputConstraints:
		return *v
	default:
		return ptr
	}
}

func messageTypeOf(msg AnyMessage) (messageType, error) {
	switch msg.(type) {
	case SetupConnection:
		return msgTypeSetupConnection, nil
	case SetupConnectionSuccess:
		return msgTypeSetupConnectionSuccess, nil
	case SetupConnectionError:
		return msgTypeSetupConnectionError, nil
	case OpenStandardMiningChannel:
		return msgTypeOpenStandardMiningChannel, nil
	case OpenExtendedMiningChannel:
		return msgTypeOpenExtendedMiningChannel, nil
	case UpdateChannel:
		return msgTypeUpdateChannel, nil
	case SubmitSharesStandard:
		return msgTypeSubmitSharesStandard, nil
	case SubmitSharesExtended:
		return msgTypeSubmitSharesExtended, nil
	case SetCustomMiningJob:
		return msgTypeSetCustomMiningJob, nil
	case CloseChannel:
		return msgTypeCloseChannel, nil
	case OpenStandardMiningChannelSuccess:
		return msgTypeOpenStandardMiningChannelSuccess, nil
	case OpenExtendedMiningChannelSuccess:
		return msgTypeOpenExtendedMiningChannelSuccess, nil
	case OpenMiningChannelError:
		return msgTypeOpenMiningChannelError, nil
	case UpdateChannelError:
		return msgTypeUpdateChannelError, nil
	case NewMiningJob:
		return msgTypeNewMiningJob, nil
	case NewExtendedMiningJob:
		return msgTypeNewExtendedMiningJob, nil
	case SetNewPrevHashMining:
		return msgTypeSetNewPrevHashMining, nil
	case SetTarget:
		return msgTypeSetTarget, nil
	case SetGroupChannel:
		return msgTypeSetGroupChannel, nil
	case SetExtranoncePrefix:
		return msgTypeSetExtranoncePrefix, nil
	case SubmitSharesSuccess:
		return msgTypeSubmitSharesSuccess, nil
	case SubmitSharesError:
		return msgTypeSubmitSharesError, nil
	case SetCustomMiningJobSuccess:
		return msgTypeSetCustomMiningJobSuccess, nil
	case SetCustomMiningJobError:
		return msgTypeSetCustomMiningJobError, nil
	case NewTemplate:
		return msgTypeNewTemplate, nil
	case SetNewPrevHash:
		return msgTypeSetNewPrevHashTemplateDistribution, nil
	case RequestTransactionData:
		return msgTypeRequestTransactionData, nil
	case RequestTransactionDataSuccess:
		return msgTypeRequestTransactionDataSuccess, nil
	case RequestTransactionDataError:
		return msgTypeRequestTransactionDataError, nil
	case SubmitSolution:
		return msgTypeSubmitSolution, nil
	case CoinbaseOutputConstraints:
		return msgTypeCoinbaseOutputConstraints, nil
	default:
		return 0, &ErrUnknownMessageType{}
	}
}
