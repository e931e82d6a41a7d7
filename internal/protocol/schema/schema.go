package schema

import (
	"fmt"
	"sort"
)

// MessageType is the 2-byte type field of a message header.
type MessageType uint16

// Outbound message types.
const (
	MsgAck      MessageType = 0x0000
	MsgResponse MessageType = 0x0001
)

// AP commands.
const (
	MsgAPStartUp           MessageType = 0x1000
	MsgAPStop              MessageType = 0x1001
	MsgAPConfigure         MessageType = 0x1002
	MsgAPTriggerChanSwitch MessageType = 0x1003
	MsgAPSendDisconnect    MessageType = 0x1004
	MsgAPSetParam          MessageType = 0x1005
	MsgAPSendBTMRequest    MessageType = 0x1006
	MsgAPStartWPS          MessageType = 0x1008
	MsgAPConfigureWSC      MessageType = 0x1009
)

// STA and P2P commands.
const (
	MsgSTAAssociate      MessageType = 0x2000
	MsgSTAConfigure      MessageType = 0x2001
	MsgSTADisconnect     MessageType = 0x2002
	MsgSTASendDisconnect MessageType = 0x2003
	MsgSTAReassociate    MessageType = 0x2004
	MsgSTASetParam       MessageType = 0x2005
	MsgSTASendBTMQuery   MessageType = 0x2006
	MsgSTASendANQPQuery  MessageType = 0x2007
	MsgP2PStartUp        MessageType = 0x200C
	MsgP2PFind           MessageType = 0x200D
	MsgP2PListen         MessageType = 0x200E
	MsgP2PAddGroup       MessageType = 0x200F
	MsgP2PStartWPS       MessageType = 0x2010
	MsgP2PConnect        MessageType = 0x2011
	MsgP2PGetIntentValue MessageType = 0x2015
	MsgSTAStartWPS       MessageType = 0x2016
	MsgP2PInvite         MessageType = 0x2018
	MsgP2PStopGroup      MessageType = 0x2019
	MsgP2PSetServDisc    MessageType = 0x201A
	MsgP2PSetExtListen   MessageType = 0x201C
	MsgSTAEnableWSC      MessageType = 0x201D
)

// Common commands.
const (
	MsgGetIPAddr             MessageType = 0x5000
	MsgGetMACAddr            MessageType = 0x5001
	MsgGetControlAppVersion  MessageType = 0x5002
	MsgStartLoopBackServer   MessageType = 0x5003
	MsgStopLoopBackServer    MessageType = 0x5004
	MsgCreateInterfaceBridge MessageType = 0x5005
	MsgAssignStaticIP        MessageType = 0x5006
	MsgDeviceReset           MessageType = 0x5007
	MsgStartDHCP             MessageType = 0x500A
	MsgStopDHCP              MessageType = 0x500B
	MsgGetWSCPin             MessageType = 0x500C
	MsgGetWSCCred            MessageType = 0x500D
)

// AFC commands.
const (
	MsgAFCConfigure MessageType = 0x6001
	MsgAFCOperation MessageType = 0x6002
	MsgAFCGetInfo   MessageType = 0x6003
)

var messageNames = map[MessageType]string{
	MsgAck:      "ACK",
	MsgResponse: "RESPONSE",

	MsgAPStartUp:           "AP_START_UP",
	MsgAPStop:              "AP_STOP",
	MsgAPConfigure:         "AP_CONFIGURE",
	MsgAPTriggerChanSwitch: "AP_TRIGGER_CHANSWITCH",
	MsgAPSendDisconnect:    "AP_SEND_DISCONNECT",
	MsgAPSetParam:          "AP_SET_PARAM",
	MsgAPSendBTMRequest:    "AP_SEND_BTM_REQ",
	MsgAPStartWPS:          "AP_START_WPS",
	MsgAPConfigureWSC:      "AP_CONFIGURE_WSC",

	MsgSTAAssociate:      "STA_ASSOCIATE",
	MsgSTAConfigure:      "STA_CONFIGURE",
	MsgSTADisconnect:     "STA_DISCONNECT",
	MsgSTASendDisconnect: "STA_SEND_DISCONNECT",
	MsgSTAReassociate:    "STA_REASSOCIATE",
	MsgSTASetParam:       "STA_SET_PARAM",
	MsgSTASendBTMQuery:   "STA_SEND_BTM_QUERY",
	MsgSTASendANQPQuery:  "STA_SEND_ANQP_QUERY",
	MsgP2PStartUp:        "P2P_START_UP",
	MsgP2PFind:           "P2P_FIND",
	MsgP2PListen:         "P2P_LISTEN",
	MsgP2PAddGroup:       "P2P_ADD_GROUP",
	MsgP2PStartWPS:       "P2P_START_WPS",
	MsgP2PConnect:        "P2P_CONNECT",
	MsgP2PGetIntentValue: "P2P_GET_INTENT_VALUE",
	MsgSTAStartWPS:       "STA_START_WPS",
	MsgP2PInvite:         "P2P_INVITE",
	MsgP2PStopGroup:      "P2P_STOP_GROUP",
	MsgP2PSetServDisc:    "P2P_SET_SERV_DISC",
	MsgP2PSetExtListen:   "P2P_SET_EXT_LISTEN",
	MsgSTAEnableWSC:      "STA_ENABLE_WSC",

	MsgGetIPAddr:             "GET_IP_ADDR",
	MsgGetMACAddr:            "GET_MAC_ADDR",
	MsgGetControlAppVersion:  "GET_CONTROL_APP_VERSION",
	MsgStartLoopBackServer:   "START_LOOP_BACK_SERVER",
	MsgStopLoopBackServer:    "STOP_LOOP_BACK_SERVER",
	MsgCreateInterfaceBridge: "CREATE_NEW_INTERFACE_BRIDGE_NETWORK",
	MsgAssignStaticIP:        "ASSIGN_STATIC_IP",
	MsgDeviceReset:           "DEVICE_RESET",
	MsgStartDHCP:             "START_DHCP",
	MsgStopDHCP:              "STOP_DHCP",
	MsgGetWSCPin:             "GET_WSC_PIN",
	MsgGetWSCCred:            "GET_WSC_CRED",

	MsgAFCConfigure: "AFCD_CONFIGURE",
	MsgAFCOperation: "AFCD_OPERATION",
	MsgAFCGetInfo:   "AFCD_GET_INFO",
}

func (t MessageType) String() string {
	if name, ok := messageNames[t]; ok {
		return name
	}
	return fmt.Sprintf("MessageType(0x%04x)", uint16(t))
}

// Known reports whether t belongs to the closed message-type enumeration.
func (t MessageType) Known() bool {
	_, ok := messageNames[t]
	return ok
}

// IsReply reports whether t is one of the two outbound types.
func (t MessageType) IsReply() bool {
	return t == MsgAck || t == MsgResponse
}

// IsRequest reports whether t is a known command type.
func (t MessageType) IsRequest() bool {
	return t.Known() && !t.IsReply()
}

// RequestTypes returns every command type in ascending order.
func RequestTypes() []MessageType {
	out := make([]MessageType, 0, len(messageNames))
	for t := range messageNames {
		if t.IsReply() {
			continue
		}
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Role selects which tag set a message's parameters are checked against.
type Role int

const (
	RoleRequest Role = iota
	RoleReply
)

// RoleOf returns the tag role for a message type.
func RoleOf(t MessageType) Role {
	if t.IsReply() {
		return RoleReply
	}
	return RoleRequest
}

// KnownTag reports whether tag is in the tag set for role.
func KnownTag(role Role, tag Tag) bool {
	if role == RoleReply {
		_, ok := responseTagNames[tag]
		return ok
	}
	_, ok := requestTagNames[tag]
	return ok
}

// TagName returns the enumeration name for tag under role.
func TagName(role Role, tag Tag) string {
	names := requestTagNames
	if role == RoleReply {
		names = responseTagNames
	}
	if name, ok := names[tag]; ok {
		return name
	}
	return fmt.Sprintf("0x%04x", uint16(tag))
}
