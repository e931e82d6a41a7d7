package agent

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/danmuck/dutctl/internal/confgen"
	"github.com/danmuck/dutctl/internal/platform"
	"github.com/danmuck/dutctl/internal/protocol"
	"github.com/danmuck/dutctl/internal/protocol/schema"
)

var errFake = errors.New("fake failure")

// fakeHost implements platform.Daemons and platform.Network in memory.
// Every call is recorded as a single line. CLI commands answer from cli
// (keyed by "<tool> <ifname> <args>") and default to "OK".
type fakeHost struct {
	calls []string

	cli    map[string]string
	cliErr map[string]error
	fail   map[string]error

	hostapdUp    bool
	supplicantUp bool
	bridge       bool
	ifaces       []platform.WirelessInterface
	ipv4         map[string]string
	mac          map[string]string
}

func newFakeHost() *fakeHost {
	return &fakeHost{
		cli:    make(map[string]string),
		cliErr: make(map[string]error),
		fail:   make(map[string]error),
		ifaces: []platform.WirelessInterface{{Name: "wlan0", Type: "managed", Addr: "02:00:00:00:00:01"}},
		ipv4:   map[string]string{"wlan0": "192.168.1.10"},
		mac:    map[string]string{"wlan0": "02:00:00:00:00:01"},
	}
}

func (f *fakeHost) record(format string, args ...any) {
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
}

func (f *fakeHost) err(op string) error {
	return f.fail[op]
}

func (f *fakeHost) called(line string) bool {
	for _, c := range f.calls {
		if c == line {
			return true
		}
	}
	return false
}

func (f *fakeHost) calledPrefix(prefix string) bool {
	for _, c := range f.calls {
		if strings.HasPrefix(c, prefix) {
			return true
		}
	}
	return false
}

func (f *fakeHost) StartHostapd(_ context.Context, files []string, debug schema.DebugLevel) error {
	f.record("StartHostapd %s debug=%d", strings.Join(files, ","), int(debug))
	if err := f.err("StartHostapd"); err != nil {
		return err
	}
	f.hostapdUp = true
	return nil
}

func (f *fakeHost) StopHostapd(context.Context) error {
	f.record("StopHostapd")
	f.hostapdUp = false
	return f.err("StopHostapd")
}

func (f *fakeHost) HostapdActive(context.Context) bool { return f.hostapdUp }

func (f *fakeHost) StartSupplicant(_ context.Context, confPath, ifname string, debug schema.DebugLevel) error {
	f.record("StartSupplicant %s %s debug=%d", confPath, ifname, int(debug))
	if err := f.err("StartSupplicant"); err != nil {
		return err
	}
	f.supplicantUp = true
	return nil
}

func (f *fakeHost) StopSupplicant(context.Context) error {
	f.record("StopSupplicant")
	f.supplicantUp = false
	return f.err("StopSupplicant")
}

func (f *fakeHost) SupplicantActive(context.Context) bool { return f.supplicantUp }

func (f *fakeHost) HostapdCLI(_ context.Context, ifname string, args ...string) (string, error) {
	return f.runCLI("hostapd_cli", ifname, args)
}

func (f *fakeHost) WpaCLI(_ context.Context, ifname string, args ...string) (string, error) {
	return f.runCLI("wpa_cli", ifname, args)
}

func (f *fakeHost) runCLI(tool, ifname string, args []string) (string, error) {
	line := strings.TrimSpace(tool + " " + ifname + " " + strings.Join(args, " "))
	f.calls = append(f.calls, line)
	if err := f.cliErr[line]; err != nil {
		return "", err
	}
	if out, ok := f.cli[line]; ok {
		return out, nil
	}
	return "OK", nil
}

func (f *fakeHost) InterfaceIPv4(name string) (string, error) {
	if ip, ok := f.ipv4[name]; ok {
		return ip, nil
	}
	return "", fmt.Errorf("%w: %s", platform.ErrNoIPv4, name)
}

func (f *fakeHost) InterfaceMAC(name string) (string, error) {
	if mac, ok := f.mac[name]; ok {
		return mac, nil
	}
	return "", fmt.Errorf("%w: %s", platform.ErrNoInterface, name)
}

func (f *fakeHost) AssignStaticIP(_ context.Context, ip, ifname string) error {
	f.record("AssignStaticIP %s %s", ip, ifname)
	return f.err("AssignStaticIP")
}

func (f *fakeHost) ResetIP(_ context.Context, ifname string) error {
	f.record("ResetIP %s", ifname)
	return nil
}

func (f *fakeHost) BridgeExists(context.Context, string) bool { return f.bridge }

func (f *fakeHost) CreateBridge(_ context.Context, name string, members []string) error {
	f.record("CreateBridge %s %s", name, strings.Join(members, ","))
	if err := f.err("CreateBridge"); err != nil {
		return err
	}
	f.bridge = true
	return nil
}

func (f *fakeHost) ResetBridge(_ context.Context, name string) error {
	f.record("ResetBridge %s", name)
	f.bridge = false
	return nil
}

func (f *fakeHost) StartDHCPServer(_ context.Context, ifname, ip string) error {
	f.record("StartDHCPServer %s %s", ifname, ip)
	return f.err("StartDHCPServer")
}

func (f *fakeHost) StartDHCPClient(_ context.Context, ifname string) error {
	f.record("StartDHCPClient %s", ifname)
	return f.err("StartDHCPClient")
}

func (f *fakeHost) StopDHCPServer(context.Context) error {
	f.record("StopDHCPServer")
	return nil
}

func (f *fakeHost) StopDHCPClient(context.Context) error {
	f.record("StopDHCPClient")
	return nil
}

func (f *fakeHost) WirelessInterfaces(context.Context) ([]platform.WirelessInterface, error) {
	if err := f.err("WirelessInterfaces"); err != nil {
		return nil, err
	}
	return f.ifaces, nil
}

func (f *fakeHost) EnsureWireless(_ context.Context, name string) error {
	f.record("EnsureWireless %s", name)
	return f.err("EnsureWireless")
}

// addP2PGroup adds a GO interface with an address.
func (f *fakeHost) addP2PGroup(name, ip string) {
	f.ifaces = append(f.ifaces, platform.WirelessInterface{Name: name, Type: "P2P-GO", Addr: "02:00:00:00:00:aa"})
	f.ipv4[name] = ip
}

// scriptRunner answers the PIN checksum script.
type scriptRunner struct {
	out   string
	calls []string
}

func (r *scriptRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, int32, error) {
	r.calls = append(r.calls, platform.CommandLine(name, args...))
	return []byte(r.out), nil, 0, nil
}

type harness struct {
	svc    *Service
	host   *fakeHost
	files  *platform.FS
	runner *scriptRunner
}

func testWPSSource() confgen.StaticWPSSource {
	return confgen.StaticWPSSource{
		confgen.WPSRoleAP: {
			{Key: "wps_state", Value: "2", Tag: "2"},
			{Key: "device_name", Value: "QT AP", Tag: "2"},
		},
		confgen.WPSRoleSTA: {
			{Key: "device_name", Value: "QT STA"},
			{Key: "config_methods", Value: "display push_button"},
		},
	}
}

func newHarness(t *testing.T, mutate ...func(*ServiceConfig)) *harness {
	t.Helper()
	cfg := DefaultServiceConfig()
	cfg.Interface = "wlan0"
	cfg.ScanSettle = 0
	for _, m := range mutate {
		m(&cfg)
	}
	h := &harness{
		host:   newFakeHost(),
		files:  platform.NewMemFiles(),
		runner: &scriptRunner{},
	}
	svc, err := NewService(cfg,
		WithPlatform(Platform{Daemons: h.host, Network: h.host, Files: h.files, Runner: h.runner}),
		WithWPSSource(testWPSSource()),
	)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	h.svc = svc
	return h
}

// reply is a decoded RESPONSE.
type reply struct {
	Status  string
	Message string
	Params  protocol.Params
}

func (h *harness) call(t *testing.T, typ schema.MessageType, pairs ...protocol.Param) reply {
	t.Helper()
	b, err := protocol.Encode(protocol.Message{Version: protocol.Version, Type: typ, CorrelationID: 42, Params: protocol.NewParams(pairs...)})
	if err != nil {
		t.Fatalf("encode %s: %v", typ, err)
	}
	r, err := h.svc.Dispatcher().Handle(context.Background(), b)
	if err != nil {
		t.Fatalf("handle %s: %v", typ, err)
	}
	msg, err := protocol.Decode(r.Response)
	if err != nil {
		t.Fatalf("decode %s response: %v", typ, err)
	}
	if msg.Type != schema.MsgResponse || msg.CorrelationID != 42 {
		t.Fatalf("%s: unexpected response header %+v", typ, msg.Header())
	}
	status, _ := msg.Params.Get(schema.TagStatus)
	text, _ := msg.Params.Get(schema.TagMessage)
	return reply{Status: status, Message: text, Params: msg.Params}
}

func p(tag schema.Tag, value string) protocol.Param {
	return protocol.Param{Tag: tag, Value: value}
}

func expectOK(t *testing.T, r reply, message string) {
	t.Helper()
	if r.Status != "0" || r.Message != message {
		t.Fatalf("expected success %q, got status=%s message=%q", message, r.Status, r.Message)
	}
}

func expectFail(t *testing.T, r reply, message string) {
	t.Helper()
	if r.Status != "1" || r.Message != message {
		t.Fatalf("expected failure %q, got status=%s message=%q", message, r.Status, r.Message)
	}
}

type schemaParam struct {
	tag   schema.Tag
	value string
}

func toParams(in []schemaParam) []protocol.Param {
	out := make([]protocol.Param, 0, len(in))
	for _, sp := range in {
		out = append(out, p(sp.tag, sp.value))
	}
	return out
}
