package agent

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/danmuck/dutctl/internal/dispatch"
	"github.com/danmuck/dutctl/internal/protocol"
	"github.com/danmuck/dutctl/internal/protocol/schema"
)

// Service discovery fixtures advertised and requested by the P2P tests.
const (
	servDiscQuery   = "02000001"
	servDiscUPnPVer = "10"
	servDiscUPnP    = "uuid:5566d33e-9774-09ab-4822-333456785632::urn:schemas-upnp-org:service:ContentDirectory:2"
)

func (s *Service) p2pStartUp(ctx context.Context, _ dispatch.Request) dispatch.Result {
	if err := s.writeDocument(s.cfg.SupplicantConf, s.compiler.P2PDevice()); err != nil {
		return dispatch.Failf("Unable to start P2P device. [%v]", err)
	}
	if err := s.startSupplicant(ctx); err != nil {
		return dispatch.Failf("Unable to start P2P device. [%v]", err)
	}
	return dispatch.OK("P2P device started successfully")
}

// p2pCLI runs a wpa_cli command on ifname and requires an OK reply.
func (s *Service) p2pCLI(ctx context.Context, ifname string, args ...string) error {
	out, err := s.daemons.WpaCLI(ctx, ifname, args...)
	if err != nil {
		return err
	}
	if !strings.Contains(out, "OK") {
		return fmt.Errorf("unable to execute %s: %s", strings.Join(args, " "), strings.TrimSpace(out))
	}
	return nil
}

func (s *Service) p2pFind(ctx context.Context, _ dispatch.Request) dispatch.Result {
	if err := s.p2pCLI(ctx, s.ifname(), "p2p_find"); err != nil {
		return dispatch.Failf("P2P_FIND API reports problem : %v", err)
	}
	return dispatch.OK("Successfully to start p2p_find")
}

func (s *Service) p2pListen(ctx context.Context, _ dispatch.Request) dispatch.Result {
	if err := s.p2pCLI(ctx, s.ifname(), "p2p_listen"); err != nil {
		return dispatch.Failf("P2P_LISTEN API reports problem : %v", err)
	}
	return dispatch.OK("Successfully to start p2p_listen")
}

func (s *Service) p2pAddGroup(ctx context.Context, req dispatch.Request) dispatch.Result {
	freq, ok := req.Params.Get(schema.TagFrequency)
	if !ok {
		return dispatch.Fail("P2P_ADD_GROUP reports problem : " + missing(schema.TagFrequency))
	}
	if err := s.p2pCLI(ctx, s.ifname(), "p2p_group_add", "freq="+freq); err != nil {
		return dispatch.Failf("P2P_ADD_GROUP reports problem : %v", err)
	}
	return dispatch.OK("Successfully to add group")
}

func (s *Service) p2pStartWPS(ctx context.Context, req dispatch.Request) dispatch.Result {
	group, err := s.p2pGroup(ctx)
	if err != nil {
		return dispatch.Failf("P2P_START_WPS reports problem : %v", err)
	}
	args := []string{"wps_pbc"}
	if pin, ok := req.Params.Get(schema.TagPINCode); ok {
		args = []string{"wps_pin", "any", pin}
	}
	if _, err := s.daemons.WpaCLI(ctx, group, args...); err != nil {
		return dispatch.Failf("P2P_START_WPS reports problem : %v", err)
	}
	return dispatch.OK("Successfully to start WPS")
}

func (s *Service) p2pConnect(ctx context.Context, req dispatch.Request) dispatch.Result {
	const prefix = "P2P_CONNECT reports problem : "
	addr, ok := req.Params.Get(schema.TagAddress)
	if !ok {
		return dispatch.Fail(prefix + missing(schema.TagAddress))
	}

	args := []string{"p2p_connect", addr}
	if pin, ok := req.Params.Get(schema.TagPINCode); ok {
		method, ok := req.Params.Get(schema.TagPINMethod)
		if !ok {
			return dispatch.Fail(prefix + missing(schema.TagPINMethod))
		}
		args = append(args, pin, method)
	} else {
		method, ok := req.Params.Get(schema.TagWSCMethod)
		if !ok {
			return dispatch.Fail(prefix + missing(schema.TagWSCMethod))
		}
		args = append(args, method)
	}

	intent := strconv.Itoa(s.cfg.P2PGoIntent)
	if v, ok := req.Params.Get(schema.TagGOIntent); ok {
		intent = v
	}
	connType := 0
	if v, ok := req.Params.Get(schema.TagP2PConnType); ok {
		connType, _ = strconv.Atoi(strings.TrimSpace(v))
	}
	switch schema.P2PConnType(connType) {
	case schema.P2PConnJoin:
		args = append(args, "join")
	case schema.P2PConnAuth:
		args = append(args, "auth", "go_intent="+intent)
	default:
		args = append(args, "go_intent="+intent)
	}
	if req.Params.Has(schema.TagIEEE80211AX) {
		args = append(args, "he")
	}
	if req.Params.Has(schema.TagPersistent) {
		args = append(args, "persistent")
	}

	if err := s.p2pCLI(ctx, s.ifname(), args...); err != nil {
		return dispatch.Failf(prefix+"%v", err)
	}
	return dispatch.OK("Successfully to connect")
}

func (s *Service) p2pGetIntentValue(context.Context, dispatch.Request) dispatch.Result {
	v := strconv.Itoa(s.cfg.P2PGoIntent)
	return dispatch.OK(v, protocol.Param{Tag: schema.TagP2PIntentValue, Value: v})
}

func (s *Service) p2pInvite(ctx context.Context, req dispatch.Request) dispatch.Result {
	const prefix = "P2P_INVITE reports problem : "
	peer, ok := req.Params.Get(schema.TagAddress)
	if !ok {
		return dispatch.Fail(prefix + missing(schema.TagAddress))
	}
	var args []string
	if req.Params.Has(schema.TagPersistent) {
		args = []string{"p2p_invite", "persistent=0"}
		if freq, ok := req.Params.Get(schema.TagFrequency); ok {
			args = append(args, "freq="+freq)
		}
	} else {
		group, err := s.p2pGroup(ctx)
		if err != nil {
			return dispatch.Failf(prefix+"%v", err)
		}
		args = []string{"p2p_invite", "group=" + group}
	}
	args = append(args, "peer="+peer)
	if err := s.p2pCLI(ctx, s.p2pDevice(), args...); err != nil {
		return dispatch.Failf(prefix+"%v", err)
	}
	return dispatch.OK("Successfully to invite peer")
}

func (s *Service) p2pStopGroup(ctx context.Context, req dispatch.Request) dispatch.Result {
	const prefix = "P2P_STOP_GROUP reports problem : "
	group, err := s.p2pGroup(ctx)
	if err != nil {
		return dispatch.Failf(prefix+"%v", err)
	}
	if err := s.p2pCLI(ctx, s.ifname(), "p2p_group_remove", group); err != nil {
		return dispatch.Failf(prefix+"%v", err)
	}
	if req.Params.Has(schema.TagPersistent) {
		if err := s.p2pCLI(ctx, s.p2pDevice(), "remove_network", "0"); err != nil {
			return dispatch.Failf(prefix+"%v", err)
		}
	}
	return dispatch.OK("Successfully to stop group")
}

func (s *Service) p2pSetServDisc(ctx context.Context, req dispatch.Request) dispatch.Result {
	args := []string{"p2p_service_add", "upnp", servDiscUPnPVer, servDiscUPnP}
	if addr, ok := req.Params.Get(schema.TagAddress); ok {
		args = []string{"p2p_serv_disc_req", addr, servDiscQuery}
	}
	out, err := s.daemons.WpaCLI(ctx, s.ifname(), args...)
	if err != nil {
		return dispatch.Failf("P2P_SET_SERV_DISC reports problem : %v", err)
	}
	s.log.Debug().Str("reply", strings.TrimSpace(out)).Msg("service discovery")
	return dispatch.OK("Successfully to set service discovery")
}

func (s *Service) p2pSetExtListen(ctx context.Context, _ dispatch.Request) dispatch.Result {
	if err := s.p2pCLI(ctx, s.ifname(), "p2p_ext_listen", "1000", "4000"); err != nil {
		return dispatch.Failf("P2P_SET_EXT_LISTEN reports problem : %v", err)
	}
	return dispatch.OK("Successfully to set extended listen")
}
