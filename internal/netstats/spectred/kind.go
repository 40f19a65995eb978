// Package spectred speaks the spectred node's bidirectional MessageStream RPC.
package spectred

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

// PayloadKind is the oneof field number that discriminates a request or response envelope.
type PayloadKind protowire.Number

const (
	KindNotifyBlockAddedRequest              PayloadKind = 1007
	KindNotifyBlockAddedResponse             PayloadKind = 1008
	KindBlockAddedNotification               PayloadKind = 1009
	KindGetBlockDagInfoRequest               PayloadKind = 1035
	KindGetBlockDagInfoResponse              PayloadKind = 1036
	KindNotifyVirtualDaaScoreChangedRequest  PayloadKind = 1074
	KindNotifyVirtualDaaScoreChangedResponse PayloadKind = 1075
	KindVirtualDaaScoreChangedNotification   PayloadKind = 1076
	KindNotifyNewBlockTemplateRequest        PayloadKind = 1081
	KindNotifyNewBlockTemplateResponse       PayloadKind = 1082
	KindNewBlockTemplateNotification         PayloadKind = 1083
	KindGetCoinSupplyRequest                 PayloadKind = 1086
	KindGetCoinSupplyResponse                PayloadKind = 1087
)

type kindClass int

const (
	classUnknown kindClass = iota
	classRequest
	classResponse
	classNotification
)

type kindInfo struct {
	name  string
	class kindClass
}

var kinds = map[PayloadKind]kindInfo{
	KindNotifyBlockAddedRequest:              {"notifyBlockAddedRequest", classRequest},
	KindNotifyBlockAddedResponse:             {"notifyBlockAddedResponse", classResponse},
	KindBlockAddedNotification:               {"blockAddedNotification", classNotification},
	KindGetBlockDagInfoRequest:               {"getBlockDagInfoRequest", classRequest},
	KindGetBlockDagInfoResponse:              {"getBlockDagInfoResponse", classResponse},
	KindNotifyVirtualDaaScoreChangedRequest:  {"notifyVirtualDaaScoreChangedRequest", classRequest},
	KindNotifyVirtualDaaScoreChangedResponse: {"notifyVirtualDaaScoreChangedResponse", classResponse},
	KindVirtualDaaScoreChangedNotification:   {"virtualDaaScoreChangedNotification", classNotification},
	KindNotifyNewBlockTemplateRequest:        {"notifyNewBlockTemplateRequest", classRequest},
	KindNotifyNewBlockTemplateResponse:       {"notifyNewBlockTemplateResponse", classResponse},
	KindNewBlockTemplateNotification:         {"newBlockTemplateNotification", classNotification},
	KindGetCoinSupplyRequest:                 {"getCoinSupplyRequest", classRequest},
	KindGetCoinSupplyResponse:                {"getCoinSupplyResponse", classResponse},
}

func (k PayloadKind) String() string {
	if info, ok := kinds[k]; ok {
		return info.name
	}
	return fmt.Sprintf("unknown(%d)", int32(k))
}

// Known reports whether the kind is part of the supported message set.
func (k PayloadKind) Known() bool {
	_, ok := kinds[k]
	return ok
}

// IsRequest reports whether the kind is an outbound request.
func (k PayloadKind) IsRequest() bool {
	return kinds[k].class == classRequest
}

// IsResponse reports whether the kind is a response in the supported set. Replies of
// unknown kinds are recognised by their envelope ID instead.
func (k PayloadKind) IsResponse() bool {
	return kinds[k].class == classResponse
}

// IsNotification reports whether the kind is an unsolicited subscription event.
func (k PayloadKind) IsNotification() bool {
	return kinds[k].class == classNotification
}
