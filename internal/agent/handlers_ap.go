package agent

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/danmuck/dutctl/internal/capset"
	"github.com/danmuck/dutctl/internal/confgen"
	"github.com/danmuck/dutctl/internal/dispatch"
	"github.com/danmuck/dutctl/internal/protocol/schema"
)

func (s *Service) apStartUp(ctx context.Context, _ dispatch.Request) dispatch.Result {
	if err := s.startAP(ctx); err != nil {
		return dispatch.Failf("Unable to turn on AP. [%v]", err)
	}
	return dispatch.OK("AP is up : Hostapd service is active")
}

// startAP runs hostapd over every file written since the last stop and
// bridges the interfaces when more than one BSS is up.
func (s *Service) startAP(ctx context.Context) error {
	if len(s.hostapdFiles) == 0 {
		return errNoHostapdConfig
	}
	paths := make([]string, 0, len(s.hostapdFiles))
	for _, name := range s.hostapdFiles {
		paths = append(paths, s.hostapdPath(name))
	}
	if err := s.daemons.StartHostapd(ctx, paths, s.apDebug); err != nil {
		return fmt.Errorf("unable to start hostapd service: %w", err)
	}
	if s.alloc.Count() > 1 {
		if err := s.network.CreateBridge(ctx, s.cfg.BridgeName, s.alloc.Assigned()); err != nil {
			return fmt.Errorf("error when creating new interface: %w", err)
		}
	}
	return nil
}

func (s *Service) apStop(ctx context.Context, _ dispatch.Request) dispatch.Result {
	if err := s.stopAP(ctx); err != nil {
		s.log.Warn().Err(err).Msg("hostapd stop")
		return dispatch.Fail("Unable to turn off AP.[Unable to stop hostapd service.]")
	}
	return dispatch.OK("AP stop completed : Hostapd service is inactive.")
}

// stopAP forgets every BSS and hostapd file before stopping the daemon.
func (s *Service) stopAP(ctx context.Context) error {
	s.alloc.Reset()
	s.hostapdFiles = nil
	return s.daemons.StopHostapd(ctx)
}

func (s *Service) apConfigure(_ context.Context, req dispatch.Request) dispatch.Result {
	if err := s.configureAP(req.Caps); err != nil {
		return dispatch.Failf("Unable to configure the dut as AP. [%v]", err)
	}
	return dispatch.OK("DUT configured as AP : Configuration file created")
}

func (s *Service) configureAP(caps capset.Set) error {
	target, err := confgen.ResolveAPTarget(caps, s.alloc)
	if err != nil {
		return err
	}
	if target.FellBack {
		s.log.Warn().Str("interface", target.Interface).Msg("no free slot, using default interface")
	}
	doc, err := s.compiler.CompileAP(caps, target)
	if err != nil {
		return err
	}
	if err := s.writeDocument(s.hostapdPath(doc.FileName), doc); err != nil {
		return err
	}
	s.trackHostapdFile(doc.FileName)
	return nil
}

func (s *Service) apTriggerChanSwitch(ctx context.Context, req dispatch.Request) dispatch.Result {
	rawCh, ok := req.Params.Get(schema.TagChannel)
	if !ok {
		return dispatch.Fail(missing(schema.TagChannel))
	}
	rawFreq, ok := req.Params.Get(schema.TagFrequency)
	if !ok {
		return dispatch.Fail(missing(schema.TagFrequency))
	}
	ch, err := strconv.Atoi(strings.TrimSpace(rawCh))
	if err != nil {
		return dispatch.Failf("Unable to configure channel %s .Invalid channel", rawCh)
	}
	freq, err := strconv.Atoi(strings.TrimSpace(rawFreq))
	if err != nil {
		return dispatch.Failf("Unable to configure channel %d .Invalid frequency %s", ch, rawFreq)
	}
	center, offset, err := confgen.ChannelSwitchCenter(ch, freq)
	if err != nil {
		return dispatch.Failf("Unable to configure channel %d .%v", ch, err)
	}

	out, err := s.daemons.HostapdCLI(ctx, s.ifname(), "chan_switch", "10", strconv.Itoa(freq),
		"center_freq1="+strconv.Itoa(center),
		"sec_channel_offset="+strconv.Itoa(offset),
		"bandwidth=80", "vht")
	if err != nil {
		return dispatch.Failf("Unable to configure channel on the DUT [%v]", err)
	}
	if strings.TrimSpace(out) != "OK" {
		return dispatch.Failf("Unable to configure channel %d .Response received %s", ch, strings.TrimSpace(out))
	}
	return dispatch.OK(fmt.Sprintf("Channel %d successfully configured .", ch))
}

func (s *Service) apSendDisconnect(ctx context.Context, req dispatch.Request) dispatch.Result {
	addr, ok := req.Params.Get(schema.TagAddress)
	if !ok {
		return dispatch.Fail("APUT reports problem sending disconnection frame: " + missing(schema.TagAddress))
	}
	if _, err := s.daemons.HostapdCLI(ctx, s.ifname(), "disassociate", addr, "reason=1"); err != nil {
		return dispatch.Failf("APUT reports problem sending disconnection frame: %v", err)
	}
	return dispatch.OK("Successfully sent disconnection frame")
}

var apRuntimeParams = map[schema.Tag]string{
	schema.TagMBOAssocDisallow: "mbo_assoc_disallow",
	schema.TagGASComebackDelay: "gas_comeback_delay",
}

// apSetParam applies the first parameter only.
func (s *Service) apSetParam(ctx context.Context, req dispatch.Request) dispatch.Result {
	pairs := req.Params.Pairs()
	if len(pairs) == 0 {
		return dispatch.Fail("Unable to set parameters on the AP. [The set parameter is not supported]")
	}
	name, ok := apRuntimeParams[pairs[0].Tag]
	if !ok {
		return dispatch.Fail("Unable to set parameters on the AP. [The set parameter is not supported]")
	}
	value := pairs[0].Value
	if !cliOK(s.daemons.HostapdCLI(ctx, s.ifname(), "set", name, value)) {
		return dispatch.Failf("Unable to set parameters on the AP. [Unable to set %s %s]", name, value)
	}
	return dispatch.OK("Set parameter action was successful.")
}

func (s *Service) apSendBTMRequest(ctx context.Context, req dispatch.Request) dispatch.Result {
	const prefix = "Unable to trigger BTM request from APUT. "
	bssid, ok := req.Params.Get(schema.TagBSSID)
	if !ok {
		return dispatch.Fail(prefix + "[The target BSSID parameter is not specified.]")
	}
	vals := make(map[schema.Tag]string)
	for _, p := range req.Params.Pairs() {
		switch p.Tag {
		case schema.TagBSSID:
		case schema.TagDisassocImminent, schema.TagCandidateList, schema.TagDisassocTimer,
			schema.TagReassociationRetryDelay, schema.TagBSSTermination,
			schema.TagBSSTerminationTSF, schema.TagBSSTerminationDuration:
			vals[p.Tag] = p.Value
		default:
			return dispatch.Failf(prefix+"[The parameter %s is not supported in APUT]",
				schema.TagName(schema.RoleRequest, p.Tag))
		}
	}

	args := []string{"bss_tm_req", bssid}
	if v := vals[schema.TagDisassocImminent]; v != "" {
		args = append(args, "disassoc_imminent="+v)
	}
	if n, err := strconv.Atoi(vals[schema.TagCandidateList]); err == nil && n == 1 {
		args = append(args, "pref=1")
	}
	if v := vals[schema.TagDisassocTimer]; v != "" {
		args = append(args, "disassoc_timer="+v)
	}
	if v := vals[schema.TagReassociationRetryDelay]; v != "" {
		args = append(args, "mbo=0:"+v+":0")
	}
	tsf, dur := vals[schema.TagBSSTerminationTSF], vals[schema.TagBSSTerminationDuration]
	if vals[schema.TagBSSTermination] != "" && tsf != "" && dur != "" {
		args = append(args, "bss_term="+tsf+","+dur)
	}

	if !cliOK(s.daemons.HostapdCLI(ctx, s.ifname(), args...)) {
		return dispatch.Fail(prefix + "[Unable to execute Send BTM Req Command]")
	}
	return dispatch.OK("Triggering BTM request was successful.")
}

func (s *Service) apStartWPS(ctx context.Context, req dispatch.Request) dispatch.Result {
	pin, ok := req.Params.Get(schema.TagPINCode)
	if !ok {
		if _, err := s.daemons.HostapdCLI(ctx, s.ifname(), "wps_pbc"); err != nil {
			return dispatch.Fail(err.Error())
		}
		return dispatch.OK("Successfully to start WPS on APUT")
	}
	if !s.pinValid(ctx, pin) {
		s.log.Error().Str("pin", pin).Msg("invalid PIN code")
		return dispatch.Fail("AP detects invalid PIN code")
	}
	if _, err := s.daemons.HostapdCLI(ctx, s.ifname(), "wps_pin", "any", pin); err != nil {
		return dispatch.Fail(err.Error())
	}
	return dispatch.OK("Successfully to start WPS on APUT")
}

// pinValid runs the harness checksum script when it is installed. Without
// the script every PIN is accepted.
func (s *Service) pinValid(ctx context.Context, pin string) bool {
	script := s.cfg.PinChecksumScript
	if script == "" || !s.files.Exists(script) {
		return true
	}
	out, _, _, err := s.runner.Run(ctx, script, pin)
	if err != nil {
		s.log.Warn().Err(err).Str("script", script).Msg("pin checksum")
	}
	n, convErr := strconv.Atoi(strings.TrimSpace(string(out)))
	return convErr == nil && n != 0
}

func (s *Service) apConfigureWSC(ctx context.Context, req dispatch.Request) dispatch.Result {
	if err := s.stopAP(ctx); err != nil {
		s.log.Warn().Err(err).Msg("hostapd stop before wsc configure")
	}
	caps := req.Caps.Clone()
	configOnly := caps.Has("wsc_config_only")
	caps.Delete("wsc_config_only")

	if err := s.configureAP(caps); err != nil {
		return dispatch.Failf("Unable to configure wsc ap. [%v]", err)
	}
	if configOnly {
		return dispatch.OK("Configure wsc ap successfully. (Configure only)")
	}
	if err := s.startAP(ctx); err != nil {
		return dispatch.Failf("Unable to start wsc ap. [%v]", err)
	}
	return dispatch.OK("Configure and start wsc ap successfully. (Configure and start)")
}
