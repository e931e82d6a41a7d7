package agent

import (
	"github.com/danmuck/dutctl/internal/confgen"
	"github.com/danmuck/dutctl/internal/dispatch"
	"github.com/danmuck/dutctl/internal/protocol/schema"
)

// commands is the full command table. Every request type has an entry.
func (s *Service) commands() []dispatch.Command {
	return []dispatch.Command{
		// AP
		{Type: schema.MsgAPStartUp, Handler: s.apStartUp},
		{Type: schema.MsgAPStop, Handler: s.apStop},
		{Type: schema.MsgAPConfigure, Label: "AP configure", Projection: confgen.APTable, Handler: s.apConfigure},
		{Type: schema.MsgAPTriggerChanSwitch, Handler: s.apTriggerChanSwitch},
		{Type: schema.MsgAPSendDisconnect, Handler: s.apSendDisconnect},
		{Type: schema.MsgAPSetParam, Handler: s.apSetParam},
		{Type: schema.MsgAPSendBTMRequest, Handler: s.apSendBTMRequest},
		{Type: schema.MsgAPStartWPS, Handler: s.apStartWPS},
		{Type: schema.MsgAPConfigureWSC, Label: "AP configure WSC", Projection: confgen.APTable, Handler: s.apConfigureWSC},

		// STA
		{Type: schema.MsgSTAAssociate, Handler: s.staAssociate},
		{Type: schema.MsgSTAConfigure, Label: "STA configure", Projection: confgen.STATable, Handler: s.staConfigure},
		{Type: schema.MsgSTADisconnect, Handler: s.staDisconnect},
		{Type: schema.MsgSTASendDisconnect, Handler: s.staSendDisconnect},
		{Type: schema.MsgSTAReassociate, Handler: s.staReassociate},
		{Type: schema.MsgSTASetParam, Handler: s.staSetParam},
		{Type: schema.MsgSTASendBTMQuery, Handler: s.staSendBTMQuery},
		{Type: schema.MsgSTASendANQPQuery, Handler: s.staSendANQPQuery},
		{Type: schema.MsgSTAStartWPS, Handler: s.staStartWPS},
		{Type: schema.MsgSTAEnableWSC, Label: "STA Enable WSC", Projection: confgen.STAWSCTable, Handler: s.staEnableWSC},

		// P2P
		{Type: schema.MsgP2PStartUp, Handler: s.p2pStartUp},
		{Type: schema.MsgP2PFind, Handler: s.p2pFind},
		{Type: schema.MsgP2PListen, Handler: s.p2pListen},
		{Type: schema.MsgP2PAddGroup, Handler: s.p2pAddGroup},
		{Type: schema.MsgP2PStartWPS, Handler: s.p2pStartWPS},
		{Type: schema.MsgP2PConnect, Handler: s.p2pConnect},
		{Type: schema.MsgP2PGetIntentValue, Handler: s.p2pGetIntentValue},
		{Type: schema.MsgP2PInvite, Handler: s.p2pInvite},
		{Type: schema.MsgP2PStopGroup, Handler: s.p2pStopGroup},
		{Type: schema.MsgP2PSetServDisc, Handler: s.p2pSetServDisc},
		{Type: schema.MsgP2PSetExtListen, Handler: s.p2pSetExtListen},

		// Common
		{Type: schema.MsgGetIPAddr, Handler: s.getIPAddr},
		{Type: schema.MsgGetMACAddr, Handler: s.getMACAddr},
		{Type: schema.MsgGetControlAppVersion, Handler: s.getControlAppVersion},
		{Type: schema.MsgStartLoopBackServer, Handler: s.startLoopBackServer},
		{Type: schema.MsgStopLoopBackServer, Handler: s.stopLoopBackServer},
		{Type: schema.MsgCreateInterfaceBridge, Handler: s.createInterfaceBridge},
		{Type: schema.MsgAssignStaticIP, Handler: s.assignStaticIP},
		{Type: schema.MsgDeviceReset, Handler: s.deviceReset},
		{Type: schema.MsgStartDHCP, Handler: s.startDHCP},
		{Type: schema.MsgStopDHCP, Handler: s.stopDHCP},
		{Type: schema.MsgGetWSCPin, Handler: s.getWSCPin},
		{Type: schema.MsgGetWSCCred, Handler: s.getWSCCred},

		// AFC
		{Type: schema.MsgAFCConfigure, Handler: s.afcConfigure},
		{Type: schema.MsgAFCOperation, Handler: s.afcOperation},
		{Type: schema.MsgAFCGetInfo, Handler: s.afcGetInfo},
	}
}
