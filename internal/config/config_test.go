package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/danmuck/dutctl/internal/iface"
	"github.com/danmuck/dutctl/internal/testutil/testlog"
)

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadTOMLAppliesDefaults(t *testing.T) {
	testlog.Start(t)
	path := writeConfig(t, "agent.toml", `interface = "2:wlan0,5:wlan1"
port = 9010
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Interface != "2:wlan0,5:wlan1" || cfg.Port != 9010 {
		t.Fatalf("unexpected values: %+v", cfg)
	}
	if cfg.IP != "0.0.0.0" || cfg.BridgeName != "br-wlans" || cfg.P2PGoIntent != 7 {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
}

func TestLoadYAML(t *testing.T) {
	testlog.Start(t)
	path := writeConfig(t, "agent.yaml", `interface: wlan3
ip: 10.0.0.2
admin_addr: 127.0.0.1:9080
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Interface != "wlan3" || cfg.IP != "10.0.0.2" || cfg.AdminAddr != "127.0.0.1:9080" {
		t.Fatalf("unexpected values: %+v", cfg)
	}
	if cfg.Port != 9004 {
		t.Fatalf("expected default port, got %d", cfg.Port)
	}
}

func TestLoadYAMLRejectsUnknownField(t *testing.T) {
	testlog.Start(t)
	path := writeConfig(t, "agent.yml", "interfaces: wlan0\n")
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "config parse failed") {
		t.Fatalf("expected parse failure, got %v", err)
	}
}

func TestLoadUnsupportedExtension(t *testing.T) {
	testlog.Start(t)
	path := writeConfig(t, "agent.json", "{}")
	if _, err := Load(path); !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	testlog.Start(t)
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected os.ErrNotExist, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	testlog.Start(t)
	base := DefaultAgentConfig()
	cases := []struct {
		name   string
		mutate func(*AgentConfig)
		want   error
	}{
		{"defaults", func(*AgentConfig) {}, nil},
		{"bad ip", func(c *AgentConfig) { c.IP = "not-an-ip" }, ErrInvalidConfig},
		{"port zero", func(c *AgentConfig) { c.Port = 0 }, ErrInvalidConfig},
		{"port high", func(c *AgentConfig) { c.Port = 70000 }, ErrInvalidConfig},
		{"bad band", func(c *AgentConfig) { c.Interface = "7:wlan0" }, iface.ErrInvalidSpec},
		{"relative dir", func(c *AgentConfig) { c.HostapdDir = "hostapd" }, ErrInvalidConfig},
		{"intent", func(c *AgentConfig) { c.P2PGoIntent = 16 }, ErrInvalidConfig},
	}
	for _, tc := range cases {
		cfg := base
		tc.mutate(&cfg)
		err := Validate(cfg)
		if tc.want == nil {
			if err != nil {
				t.Fatalf("%s: unexpected error %v", tc.name, err)
			}
			continue
		}
		if !errors.Is(err, tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}
}

func TestTemplatesLoadCleanly(t *testing.T) {
	testlog.Start(t)
	dir := t.TempDir()
	for _, kind := range Kinds() {
		path := filepath.Join(dir, "agent."+kind)
		if err := WriteTemplate(path, kind, false); err != nil {
			t.Fatalf("write %s template: %v", kind, err)
		}
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("load %s template: %v", kind, err)
		}
		if cfg.Interface != "2:wlan0,5:wlan1" || cfg.AdminAddr != "127.0.0.1:9080" {
			t.Fatalf("%s template values: %+v", kind, cfg)
		}
		if err := WriteTemplate(path, kind, false); err == nil {
			t.Fatalf("expected refusal to overwrite %s", path)
		}
	}
	if _, err := Template("ini"); err == nil {
		t.Fatalf("expected unknown kind error")
	}
}
