package agent

import (
	"strings"
	"testing"

	"github.com/danmuck/dutctl/internal/protocol/schema"
	"github.com/danmuck/dutctl/internal/testutil/testlog"
)

func TestP2PStartUpWritesDeviceConfig(t *testing.T) {
	testlog.Start(t)
	h := newHarness(t)
	expectOK(t, h.call(t, schema.MsgP2PStartUp), "P2P device started successfully")
	b, _ := h.files.ReadFile(supplicantConf)
	if !strings.Contains(string(b), "device_name=WFA P2P Device\n") {
		t.Fatalf("p2p config:\n%s", b)
	}
	if !h.host.called("StartSupplicant " + supplicantConf + " wlan0 debug=0") {
		t.Fatalf("supplicant not started: %v", h.host.calls)
	}
}

func TestP2PFindListenAndGroup(t *testing.T) {
	testlog.Start(t)
	h := newHarness(t)
	expectOK(t, h.call(t, schema.MsgP2PFind), "Successfully to start p2p_find")
	expectOK(t, h.call(t, schema.MsgP2PListen), "Successfully to start p2p_listen")
	expectOK(t, h.call(t, schema.MsgP2PAddGroup, p(schema.TagFrequency, "2412")), "Successfully to add group")
	expectFail(t, h.call(t, schema.MsgP2PAddGroup), "P2P_ADD_GROUP reports problem : Missed TLV: FREQUENCY")
	if !h.host.called("wpa_cli wlan0 p2p_group_add freq=2412") {
		t.Fatalf("unexpected calls %v", h.host.calls)
	}

	h.host.cli["wpa_cli wlan0 p2p_find"] = "FAIL"
	r := h.call(t, schema.MsgP2PFind)
	if r.Status != "1" || !strings.HasPrefix(r.Message, "P2P_FIND API reports problem : ") {
		t.Fatalf("unexpected reply %+v", r)
	}
}

func TestP2PConnectCommandLine(t *testing.T) {
	testlog.Start(t)
	cases := []struct {
		name  string
		extra []schemaParam
		want  string
	}{
		{"pbc default intent", []schemaParam{{schema.TagWSCMethod, "pbc"}}, "wpa_cli wlan0 p2p_connect 02:aa:bb:cc:dd:ee pbc go_intent=7"},
		{"pin join", []schemaParam{{schema.TagPINCode, "12345670"}, {schema.TagPINMethod, "display"}, {schema.TagP2PConnType, "1"}},
			"wpa_cli wlan0 p2p_connect 02:aa:bb:cc:dd:ee 12345670 display join"},
		{"auth he persistent", []schemaParam{{schema.TagWSCMethod, "pbc"}, {schema.TagP2PConnType, "2"}, {schema.TagGOIntent, "15"}, {schema.TagIEEE80211AX, "1"}, {schema.TagPersistent, "1"}},
			"wpa_cli wlan0 p2p_connect 02:aa:bb:cc:dd:ee pbc auth go_intent=15 he persistent"},
	}
	for _, tc := range cases {
		h := newHarness(t)
		params := []schemaParam{{schema.TagAddress, "02:aa:bb:cc:dd:ee"}}
		r := h.call(t, schema.MsgP2PConnect, toParams(append(params, tc.extra...))...)
		if r.Status != "0" {
			t.Fatalf("%s: unexpected reply %+v", tc.name, r)
		}
		if !h.host.called(tc.want) {
			t.Fatalf("%s: missing %q in %v", tc.name, tc.want, h.host.calls)
		}
	}

	h := newHarness(t)
	expectFail(t, h.call(t, schema.MsgP2PConnect, p(schema.TagAddress, "02:aa:bb:cc:dd:ee"), p(schema.TagPINCode, "1234")),
		"P2P_CONNECT reports problem : Missed TLV: PIN_METHOD")
	expectFail(t, h.call(t, schema.MsgP2PConnect, p(schema.TagAddress, "02:aa:bb:cc:dd:ee")),
		"P2P_CONNECT reports problem : Missed TLV: WSC_METHOD")
}

func TestP2PGetIntentValue(t *testing.T) {
	testlog.Start(t)
	h := newHarness(t, func(c *ServiceConfig) { c.P2PGoIntent = 3 })
	r := h.call(t, schema.MsgP2PGetIntentValue)
	expectOK(t, r, "3")
	if v, _ := r.Params.Get(schema.TagP2PIntentValue); v != "3" {
		t.Fatalf("intent value %q", v)
	}
}

func TestP2PGroupCommandsNeedGroupInterface(t *testing.T) {
	testlog.Start(t)
	h := newHarness(t)

	r := h.call(t, schema.MsgP2PStopGroup)
	if r.Status != "1" {
		t.Fatalf("stop group without a group should fail: %+v", r)
	}
	r = h.call(t, schema.MsgP2PInvite, p(schema.TagAddress, "02:aa:bb:cc:dd:ee"))
	if r.Status != "1" {
		t.Fatalf("invite without a group should fail: %+v", r)
	}

	h.host.addP2PGroup("p2p-wlan0-0", "192.168.49.1")
	expectOK(t, h.call(t, schema.MsgP2PStartWPS, p(schema.TagPINCode, "12345670")), "Successfully to start WPS")
	expectOK(t, h.call(t, schema.MsgP2PInvite, p(schema.TagAddress, "02:aa:bb:cc:dd:ee")), "Successfully to invite peer")
	expectOK(t, h.call(t, schema.MsgP2PStopGroup, p(schema.TagPersistent, "1")), "Successfully to stop group")
	for _, line := range []string{
		"wpa_cli p2p-wlan0-0 wps_pin any 12345670",
		"wpa_cli p2p-dev-wlan0 p2p_invite group=p2p-wlan0-0 peer=02:aa:bb:cc:dd:ee",
		"wpa_cli wlan0 p2p_group_remove p2p-wlan0-0",
		"wpa_cli p2p-dev-wlan0 remove_network 0",
	} {
		if !h.host.called(line) {
			t.Fatalf("missing %q in %v", line, h.host.calls)
		}
	}
}

func TestP2PPersistentInvite(t *testing.T) {
	testlog.Start(t)
	h := newHarness(t)
	r := h.call(t, schema.MsgP2PInvite, p(schema.TagAddress, "02:aa:bb:cc:dd:ee"), p(schema.TagPersistent, "1"), p(schema.TagFrequency, "2437"))
	expectOK(t, r, "Successfully to invite peer")
	if !h.host.called("wpa_cli p2p-dev-wlan0 p2p_invite persistent=0 freq=2437 peer=02:aa:bb:cc:dd:ee") {
		t.Fatalf("unexpected calls %v", h.host.calls)
	}
}

func TestP2PServiceDiscoveryAndExtListen(t *testing.T) {
	testlog.Start(t)
	h := newHarness(t)
	h.host.cli["wpa_cli wlan0 p2p_serv_disc_req 02:aa:bb:cc:dd:ee 02000001"] = "1f2e3d"
	expectOK(t, h.call(t, schema.MsgP2PSetServDisc, p(schema.TagAddress, "02:aa:bb:cc:dd:ee")), "Successfully to set service discovery")
	expectOK(t, h.call(t, schema.MsgP2PSetServDisc), "Successfully to set service discovery")
	expectOK(t, h.call(t, schema.MsgP2PSetExtListen), "Successfully to set extended listen")
	for _, line := range []string{
		"wpa_cli wlan0 p2p_service_add upnp 10 " + servDiscUPnP,
		"wpa_cli wlan0 p2p_ext_listen 1000 4000",
	} {
		if !h.host.called(line) {
			t.Fatalf("missing %q in %v", line, h.host.calls)
		}
	}
}
