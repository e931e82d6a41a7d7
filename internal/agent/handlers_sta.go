package agent

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/danmuck/dutctl/internal/confgen"
	"github.com/danmuck/dutctl/internal/dispatch"
	"github.com/danmuck/dutctl/internal/protocol"
	"github.com/danmuck/dutctl/internal/protocol/schema"
)

// startSupplicant (re)starts wpa_supplicant on the default interface.
func (s *Service) startSupplicant(ctx context.Context) error {
	return s.daemons.StartSupplicant(ctx, s.cfg.SupplicantConf, s.ifname(), s.staDebug)
}

func (s *Service) staAssociate(ctx context.Context, _ dispatch.Request) dispatch.Result {
	if err := s.startSupplicant(ctx); err != nil {
		return dispatch.Failf("Unable to associate. [%v]", err)
	}
	return dispatch.OK("Station was successfully connected to AP. ")
}

func (s *Service) staConfigure(_ context.Context, req dispatch.Request) dispatch.Result {
	doc, err := s.compiler.CompileSTA(req.Caps)
	if err != nil {
		return dispatch.Failf("Unable to configure STAUT %v", err)
	}
	if err := s.writeDocument(s.cfg.SupplicantConf, doc); err != nil {
		return dispatch.Failf("Unable to configure STAUT %v", err)
	}
	return dispatch.OK("STAUT successfully configured")
}

func (s *Service) staDisconnect(ctx context.Context, _ dispatch.Request) dispatch.Result {
	if err := s.daemons.StopSupplicant(ctx); err != nil {
		return dispatch.Failf("STA was unable to disconnect [%v]", err)
	}
	return dispatch.OK("STA was successfully disconnected")
}

func (s *Service) staSendDisconnect(ctx context.Context, _ dispatch.Request) dispatch.Result {
	if _, err := s.daemons.WpaCLI(ctx, s.ifname(), "disconnect"); err != nil {
		return dispatch.Failf("STAUT reports problem sending disconnection frame: %v", err)
	}
	return dispatch.OK("Successfully sent disconnection frame")
}

func (s *Service) staReassociate(ctx context.Context, _ dispatch.Request) dispatch.Result {
	if _, err := s.daemons.WpaCLI(ctx, s.ifname(), "reconnect"); err != nil {
		return dispatch.Failf("STAUT reports problem when reassociate with AP: %v", err)
	}
	return dispatch.OK("Successfully reassociate with AP")
}

// staSetParam has no run-time parameters to set.
func (s *Service) staSetParam(context.Context, dispatch.Request) dispatch.Result {
	return dispatch.Fail("Unable to set run-time parameter to STAUT. [The set parameter is not supported in STAUT]")
}

func (s *Service) staSendBTMQuery(ctx context.Context, req dispatch.Request) dispatch.Result {
	var reason, candidates string
	for _, p := range req.Params.Pairs() {
		switch p.Tag {
		case schema.TagBTMQueryReasonCode:
			reason = p.Value
		case schema.TagCandidateList:
			candidates = p.Value
		default:
			return dispatch.Fail("Unable to trigger BTM query frame. [The parameter is not supported in STAUT]")
		}
	}
	args := []string{"wnm_bss_query"}
	if reason != "" {
		args = append(args, reason)
	}
	if n, err := strconv.Atoi(candidates); err == nil && n == 1 {
		args = append(args, "list")
	}
	if !cliOK(s.daemons.WpaCLI(ctx, s.ifname(), args...)) {
		return dispatch.Failf("Unable to trigger BTM query frame. [Unable to execute the command with [%s %s]]", reason, candidates)
	}
	return dispatch.OK("Trigger BTM query frame successfully")
}

var anqpQueryIDs = map[string]string{
	"NeighborReportReq":     "272",
	"QueryListWithCellPref": "mbo:2",
}

func (s *Service) staSendANQPQuery(ctx context.Context, req dispatch.Request) dispatch.Result {
	const prefix = "Unable to trigger ANQP query frame. "
	bssid, ok := req.Params.Get(schema.TagBSSID)
	if !ok {
		return dispatch.Fail(prefix + "[The target BSSID parameter is not specified.]")
	}
	var infoID string
	for _, p := range req.Params.Pairs() {
		switch p.Tag {
		case schema.TagBSSID:
		case schema.TagANQPInfoID:
			infoID = p.Value
		default:
			return dispatch.Failf(prefix+"[The parameter %s is not supported in STAUT]",
				schema.TagName(schema.RoleRequest, p.Tag))
		}
	}

	// ANQP runs pre-association, so a supplicant must be up to scan.
	if !s.daemons.SupplicantActive(ctx) {
		s.log.Debug().Msg("wpa_supplicant is not alive, starting one to scan")
		if err := s.startScan(ctx); err != nil {
			return dispatch.Failf(prefix+"[%v]", err)
		}
		if err := sleepCtx(ctx, s.cfg.ScanSettle); err != nil {
			return dispatch.Failf(prefix+"[%v]", err)
		}
	}

	args := []string{"anqp_get", bssid}
	if id, ok := anqpQueryIDs[infoID]; ok {
		args = append(args, id)
	}
	if !cliOK(s.daemons.WpaCLI(ctx, s.ifname(), args...)) {
		return dispatch.Failf(prefix+"[Unable to execute the command with [%s %s]]", bssid, infoID)
	}
	return dispatch.OK("Trigger ANQP query frame successfully")
}

func (s *Service) startScan(ctx context.Context) error {
	if err := s.writeDocument(s.cfg.SupplicantConf, confgen.ScanDocument()); err != nil {
		return fmt.Errorf("unable to configure wpa supplicant and trigger scan: %w", err)
	}
	if err := s.startSupplicant(ctx); err != nil {
		return err
	}
	_, err := s.daemons.WpaCLI(ctx, s.ifname(), "scan")
	return err
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (s *Service) staStartWPS(ctx context.Context, req dispatch.Request) dispatch.Result {
	const prefix = "STA_START_WPS reports problem : "
	pin, ok := req.Params.Get(schema.TagPINCode)
	switch {
	case !ok:
		if _, err := s.daemons.WpaCLI(ctx, s.ifname(), "wps_pbc"); err != nil {
			return dispatch.Fail(prefix + err.Error())
		}
	case pin == "0":
		out, err := s.daemons.WpaCLI(ctx, s.ifname(), "wps_pin", "any")
		if err != nil {
			return dispatch.Fail(prefix + err.Error())
		}
		generated := strings.TrimSpace(out)
		return dispatch.OK("Successfully to start WPS on STAUT",
			protocol.Param{Tag: schema.TagWSCPINCode, Value: generated})
	case len(pin) == 4 || len(pin) == 8:
		if _, err := s.daemons.WpaCLI(ctx, s.ifname(), "wps_pin", "any", pin); err != nil {
			return dispatch.Fail(prefix + err.Error())
		}
	default:
		s.log.Error().Str("pin", pin).Msg("unrecognized PIN")
		return dispatch.Fail(prefix + "Unrecognized PIN")
	}
	return dispatch.OK("Successfully to start WPS on STAUT")
}

func (s *Service) staEnableWSC(ctx context.Context, req dispatch.Request) dispatch.Result {
	doc, err := s.compiler.CompileSTAWSC(req.Caps)
	if err != nil {
		return dispatch.Failf("Unable to enable WSC %v", err)
	}
	if err := s.writeDocument(s.cfg.SupplicantConf, doc); err != nil {
		return dispatch.Failf("Unable to enable WSC %v", err)
	}
	if err := s.startSupplicant(ctx); err != nil {
		return dispatch.Failf("Unable to enable WSC %v", err)
	}
	return dispatch.OK("STAUT successfully enable WSC")
}
