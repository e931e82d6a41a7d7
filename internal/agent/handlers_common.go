package agent

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/danmuck/dutctl/internal/dispatch"
	"github.com/danmuck/dutctl/internal/iface"
	"github.com/danmuck/dutctl/internal/platform"
	"github.com/danmuck/dutctl/internal/protocol"
	"github.com/danmuck/dutctl/internal/protocol/schema"
)

func (s *Service) getIPAddr(ctx context.Context, req dispatch.Request) dispatch.Result {
	name := s.ifname()
	if s.network.BridgeExists(ctx, s.cfg.BridgeName) {
		name = s.cfg.BridgeName
	}
	role, _, err := dutRole(req.Params)
	if err != nil {
		return dispatch.Failf("Unable to get the IP address. [%v]", err)
	}
	if role == schema.DutP2P {
		if name, err = s.p2pGroup(ctx); err != nil {
			return dispatch.Failf("Unable to get the IP address. [%v]", err)
		}
	}
	ip, err := s.network.InterfaceIPv4(name)
	if err != nil {
		return dispatch.Failf("Unable to get the IP address. [%v]", err)
	}
	return dispatch.OK(ip, protocol.Param{Tag: schema.TagDUTWLANIPAdd, Value: ip})
}

// macQuery selects an interface by the GET_MAC_ADDR parameters.
type macQuery struct {
	band    string
	ssid    string
	bssID   int
	hasBand bool
	hasSSID bool
}

func (s *Service) getMACAddr(ctx context.Context, req dispatch.Request) dispatch.Result {
	if req.Params.Len() == 0 {
		mac, err := s.network.InterfaceMAC(s.ifname())
		if err != nil {
			return dispatch.Failf("Unable to get mac address. [%v]", err)
		}
		return macReply(mac)
	}
	role, present, err := dutRole(req.Params)
	if !present {
		return dispatch.Fail(missing(schema.TagRole))
	}
	if err != nil {
		return dispatch.Fail(err.Error())
	}

	if role == schema.DutP2P {
		return s.p2pMAC(ctx)
	}
	list, err := s.network.WirelessInterfaces(ctx)
	if err != nil {
		return dispatch.Failf("Unable to get mac address. [%v]", err)
	}

	var q macQuery
	q.band, q.hasBand = req.Params.Get(schema.TagBand)
	q.ssid, q.hasSSID = req.Params.Get(schema.TagSSID)
	if raw, ok := req.Params.Get(schema.TagBSSIdentifier); ok {
		q.bssID, _ = strconv.Atoi(strings.TrimSpace(raw))
	}

	reason := "Unable to get mac address as the required parameters to get the mac address is not passed."
	for _, w := range list {
		if w.Name == "" || strings.HasPrefix(w.Type, "P2P") {
			continue
		}
		st := parseStatus(s.statusOf(ctx, role, w.Name))
		mac, why := s.matchInterface(w.Name, st, q)
		if mac != "" {
			return macReply(mac)
		}
		reason = why
	}
	return dispatch.Fail(reason)
}

func (s *Service) p2pMAC(ctx context.Context) dispatch.Result {
	list, err := s.network.WirelessInterfaces(ctx)
	if err != nil {
		return dispatch.Failf("Unable to get mac address. [%v]", err)
	}
	mac, ok := platform.P2PAddr(list)
	if !ok {
		return dispatch.Fail("Unable to get mac address. [no P2P interface]")
	}
	return macReply(mac)
}

// statusOf returns the control-socket status of name for role. A daemon that
// is not running reads as an empty status.
func (s *Service) statusOf(ctx context.Context, role schema.DutType, name string) string {
	var (
		out string
		err error
	)
	if role == schema.DutSTA {
		out, err = s.daemons.WpaCLI(ctx, name, "status")
	} else {
		out, err = s.daemons.HostapdCLI(ctx, name, "status")
	}
	if err != nil {
		s.log.Debug().Err(err).Str("interface", name).Msg("status unavailable")
		return ""
	}
	return out
}

// matchInterface applies the query to one interface. It returns the MAC on a
// match, otherwise the reason the interface did not match.
func (s *Service) matchInterface(name string, st linkStatus, q macQuery) (string, string) {
	switch {
	case q.hasBand:
		band, ok := parseBand(q.band)
		if !ok || !st.inBand(band) {
			return "", fmt.Sprintf("Unable to get mac address associated with the given band %s", q.band)
		}
		if q.hasSSID && q.ssid != st.SSID {
			return "", fmt.Sprintf("Unable to get mac address associated with the given band %s", q.band)
		}
		return st.Addr, ""
	case q.hasSSID:
		if q.ssid != st.SSID {
			return "", fmt.Sprintf("Unable to get mac address associated with the given ssid %s", q.ssid)
		}
		return st.Addr, ""
	case q.bssID != 0:
		id := iface.Decompose(q.bssID)
		assigned, ok := s.alloc.Lookup(id.Key())
		if !ok || assigned != name || !st.inBand(id.Band) {
			return "", fmt.Sprintf("Unable to get mac address associated with the given BSS Identifier %d", q.bssID)
		}
		return st.Addr, ""
	}
	return "", "Unable to get mac address as the required parameters to get the mac address is not passed."
}

func macReply(mac string) dispatch.Result {
	return dispatch.OK(mac, protocol.Param{Tag: schema.TagDUTMACAdd, Value: mac})
}

func (s *Service) getControlAppVersion(context.Context, dispatch.Request) dispatch.Result {
	return dispatch.OK(s.cfg.Version, protocol.Param{Tag: schema.TagAPIVersion, Value: s.cfg.Version})
}

func (s *Service) startLoopBackServer(ctx context.Context, _ dispatch.Request) dispatch.Result {
	s.stopLoopback()
	ip, name := s.loopbackAddr(ctx)
	if ip == "" {
		return dispatch.Fail("Failed to initialise loopback server")
	}
	s.log.Info().Str("interface", name).Msg("using interface for loopback test")
	lb, err := StartLoopback(ip)
	if err != nil {
		s.log.Error().Err(err).Str("ip", ip).Msg("loopback start")
		return dispatch.Fail("Failed to initialise loop back server")
	}
	s.loopback = lb
	return dispatch.OK("Loop back server initialized",
		protocol.Param{Tag: schema.TagLoopBackServerPort, Value: strconv.Itoa(lb.Port())})
}

// loopbackAddr prefers an addressed bridge, then an addressed P2P group,
// then the default interface.
func (s *Service) loopbackAddr(ctx context.Context) (ip, name string) {
	if s.network.BridgeExists(ctx, s.cfg.BridgeName) {
		if ip, err := s.network.InterfaceIPv4(s.cfg.BridgeName); err == nil {
			return ip, s.cfg.BridgeName
		}
	}
	if group, err := s.p2pGroup(ctx); err == nil {
		if ip, err := s.network.InterfaceIPv4(group); err == nil {
			return ip, group
		}
	}
	name = s.ifname()
	ip, err := s.network.InterfaceIPv4(name)
	if err != nil {
		s.log.Warn().Err(err).Str("interface", name).Msg("no address for loopback")
		return "", name
	}
	return ip, name
}

func (s *Service) stopLoopBackServer(context.Context, dispatch.Request) dispatch.Result {
	if s.loopback == nil {
		return dispatch.OK("Loopback server in idle state")
	}
	s.stopLoopback()
	return dispatch.OK("Loop back server terminated successfully")
}

func (s *Service) createInterfaceBridge(ctx context.Context, req dispatch.Request) dispatch.Result {
	name, ok := req.Params.Get(schema.TagNewInterfaceName)
	if !ok {
		return dispatch.Fail(missing(schema.TagNewInterfaceName))
	}
	s.log.Info().Str("interface", name).Str("bridge", s.cfg.BridgeName).Msg("creating bridge")
	if err := s.network.CreateBridge(ctx, s.cfg.BridgeName, nil); err != nil {
		return dispatch.Fail(err.Error())
	}
	return dispatch.OK("Bridge network is created successfully")
}

func (s *Service) assignStaticIP(ctx context.Context, req dispatch.Request) dispatch.Result {
	ip, ok := req.Params.Get(schema.TagStaticIP)
	if !ok || ip == "" {
		return dispatch.Fail("Unable to set static ip.")
	}
	if err := s.assignIP(ctx, ip, s.ifname()); err != nil {
		s.log.Error().Err(err).Str("ip", ip).Msg("assign static ip")
		return dispatch.Fail("Unable to set static ip.")
	}
	return dispatch.OK("Static Ip successfully assigned to wireless interface")
}

func (s *Service) deviceReset(ctx context.Context, req dispatch.Request) dispatch.Result {
	const prefix = "Unable to reset the device "
	role, present, err := dutRole(req.Params)
	if !present {
		return dispatch.Fail(prefix + missing(schema.TagRole))
	}
	if err != nil {
		return dispatch.Fail(prefix + err.Error())
	}
	rawLevel, ok := req.Params.Get(schema.TagDebugLevel)
	if !ok {
		return dispatch.Fail(prefix + missing(schema.TagDebugLevel))
	}
	level := schema.ParseDebugLevel(strings.TrimSpace(rawLevel))

	switch role {
	case schema.DutSTA:
		s.staDebug = level
		if err := s.daemons.StopSupplicant(ctx); err != nil {
			return dispatch.Fail(prefix + err.Error())
		}
		s.resetIP(ctx)
	case schema.DutAP:
		s.apDebug = level
		if err := s.stopAP(ctx); err != nil {
			return dispatch.Fail(prefix + err.Error())
		}
		s.resetIP(ctx)
		if err := s.network.ResetBridge(ctx, s.cfg.BridgeName); err != nil {
			s.log.Warn().Err(err).Str("bridge", s.cfg.BridgeName).Msg("bridge reset")
		}
	case schema.DutP2P:
		s.staDebug = level
	}
	s.log.Info().Stringer("role", role).Int("debug_level", int(level)).Msg("device reset")
	return dispatch.OK("Device reset successfully")
}

func (s *Service) resetIP(ctx context.Context) {
	if err := s.network.ResetIP(ctx, s.ifname()); err != nil {
		s.log.Warn().Err(err).Str("interface", s.ifname()).Msg("address reset")
	}
}

// dhcpInterface is the P2P group for the P2P role and the default interface
// otherwise.
func (s *Service) dhcpInterface(ctx context.Context, params protocol.Params) (string, error) {
	role, present, err := dutRole(params)
	if !present {
		return "", errors.New(missing(schema.TagRole))
	}
	if err != nil {
		return "", err
	}
	if role == schema.DutP2P {
		return s.p2pGroup(ctx)
	}
	return s.ifname(), nil
}

func (s *Service) startDHCP(ctx context.Context, req dispatch.Request) dispatch.Result {
	const prefix = "Unable to start DHCP "
	name, err := s.dhcpInterface(ctx, req.Params)
	if err != nil {
		return dispatch.Fail(prefix + err.Error())
	}
	ip, server := req.Params.Get(schema.TagStaticIP)
	if !server {
		if err := s.network.StartDHCPClient(ctx, name); err != nil {
			return dispatch.Fail(prefix + err.Error())
		}
		return dispatch.OK("Start DHCP successfully")
	}
	if ip == "0.0.0.0" {
		ip = s.cfg.DHCPServerIP
	}
	if err := s.assignIP(ctx, ip, name); err != nil {
		return dispatch.Fail(prefix + err.Error())
	}
	if err := s.network.StartDHCPServer(ctx, name, ip); err != nil {
		return dispatch.Fail(prefix + err.Error())
	}
	return dispatch.OK("Start DHCP successfully")
}

func (s *Service) stopDHCP(ctx context.Context, req dispatch.Request) dispatch.Result {
	const prefix = "Unable to stop DHCP "
	if !req.Params.Has(schema.TagRole) {
		return dispatch.Fail(prefix + missing(schema.TagRole))
	}
	stop := s.network.StopDHCPClient
	if req.Params.Has(schema.TagStaticIP) {
		stop = s.network.StopDHCPServer
	}
	if err := stop(ctx); err != nil {
		return dispatch.Fail(prefix + err.Error())
	}
	return dispatch.OK("Stop DHCP successfully")
}

func (s *Service) getWSCPin(ctx context.Context, req dispatch.Request) dispatch.Result {
	role, present, err := dutRole(req.Params)
	if !present {
		return dispatch.Fail(missing(schema.TagRole))
	}
	if err != nil {
		return dispatch.Fail(err.Error())
	}
	var out string
	if role == schema.DutAP {
		out, err = s.daemons.HostapdCLI(ctx, s.ifname(), "wps_ap_pin", "get")
	} else {
		out, err = s.daemons.WpaCLI(ctx, s.ifname(), "wps_pin", "get")
	}
	if err != nil {
		return dispatch.Fail(err.Error())
	}
	pin := strings.TrimSpace(out)
	return dispatch.OK(pin, protocol.Param{Tag: schema.TagWSCPINCode, Value: pin})
}

func (s *Service) getWSCCred(_ context.Context, req dispatch.Request) dispatch.Result {
	role, present, err := dutRole(req.Params)
	if !present {
		return dispatch.Fail(missing(schema.TagRole))
	}
	if err != nil {
		return dispatch.Fail(err.Error())
	}

	var cred [3]string
	switch role {
	case schema.DutSTA:
		cred, err = s.credentials(s.cfg.SupplicantConf, staCredKeys, true)
	case schema.DutAP:
		if len(s.hostapdFiles) == 0 {
			return dispatch.Fail(errNoHostapdConfig.Error())
		}
		cred, err = s.credentials(s.hostapdPath(s.hostapdFiles[0]), apCredKeys, false)
	default:
		return dispatch.Failf("Unable to get WSC credential for %s", role)
	}
	if err != nil {
		if errors.Is(err, errCredMissing) {
			return dispatch.Fail("Cannot find the setting")
		}
		return dispatch.Fail(err.Error())
	}
	return dispatch.OK("Get WSC credential successfully",
		protocol.Param{Tag: schema.TagWSCSSID, Value: cred[0]},
		protocol.Param{Tag: schema.TagWSCWPAPassphrase, Value: cred[1]},
		protocol.Param{Tag: schema.TagWSCWPAKeyMgmt, Value: cred[2]},
	)
}

func (s *Service) credentials(path string, keys wscKeys, strict bool) ([3]string, error) {
	b, err := s.files.ReadFile(path)
	if err != nil {
		return [3]string{}, fmt.Errorf("read %s: %w", path, err)
	}
	cred, err := readCredentials(string(b), keys, strict)
	if err != nil {
		s.log.Error().Str("path", path).Msg("credential setting missing")
	}
	return cred, err
}
