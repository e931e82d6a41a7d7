package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/danmuck/dutctl/internal/agent"
	"github.com/danmuck/dutctl/internal/config"
)

// dutctl config.toml key mapping to agent runtime settings.
type fileConfig struct {
	Interface      string   `toml:"interface"`
	IP             string   `toml:"ip"`
	Port           int      `toml:"port"`
	AdminAddr      string   `toml:"admin_addr"`
	AdminOrigins   []string `toml:"admin_origins"`
	LogFile        string   `toml:"log_file"`
	HostapdDir     string   `toml:"hostapd_dir"`
	SupplicantConf string   `toml:"supplicant_conf"`
	WPSDir         string   `toml:"wps_dir"`
	BridgeName     string   `toml:"bridge_name"`
	DHCPServerIP   string   `toml:"dhcp_server_ip"`
	P2PGoIntent    int      `toml:"p2p_go_intent"`
}

// loadServiceConfig overlays the keys present in path onto the agent
// defaults. YAML files go through the shared config loader. The log file is
// returned separately since logging is configured before the service.
func loadServiceConfig(path string) (agent.ServiceConfig, string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		file, err := config.Load(path)
		if err != nil {
			return agent.ServiceConfig{}, "", err
		}
		return agent.ServiceConfigFrom(file), file.LogFile, nil
	case ".toml":
	default:
		return agent.ServiceConfig{}, "", fmt.Errorf("%w: %s", config.ErrUnsupportedFormat, path)
	}

	cfg := agent.DefaultServiceConfig()
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return agent.ServiceConfig{}, "", fmt.Errorf("load dutctl config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return agent.ServiceConfig{}, "", fmt.Errorf("load dutctl config: unknown key %q", undecoded[0].String())
	}

	if meta.IsDefined("interface") {
		cfg.Interface = strings.TrimSpace(raw.Interface)
	}
	if meta.IsDefined("ip") {
		cfg.ListenIP = strings.TrimSpace(raw.IP)
	}
	if meta.IsDefined("port") {
		cfg.ListenPort = raw.Port
	}
	if meta.IsDefined("admin_addr") {
		cfg.AdminListenAddr = strings.TrimSpace(raw.AdminAddr)
	}
	if meta.IsDefined("admin_origins") {
		cfg.AdminOrigins = raw.AdminOrigins
	}
	if meta.IsDefined("hostapd_dir") {
		cfg.HostapdDir = strings.TrimSpace(raw.HostapdDir)
	}
	if meta.IsDefined("supplicant_conf") {
		cfg.SupplicantConf = strings.TrimSpace(raw.SupplicantConf)
	}
	if meta.IsDefined("wps_dir") {
		cfg.WPSDir = strings.TrimSpace(raw.WPSDir)
	}
	if meta.IsDefined("bridge_name") {
		cfg.BridgeName = strings.TrimSpace(raw.BridgeName)
	}
	if meta.IsDefined("dhcp_server_ip") {
		cfg.DHCPServerIP = strings.TrimSpace(raw.DHCPServerIP)
	}
	if meta.IsDefined("p2p_go_intent") {
		cfg.P2PGoIntent = raw.P2PGoIntent
	}

	if err := cfg.Validate(); err != nil {
		return agent.ServiceConfig{}, "", fmt.Errorf("load dutctl config: %w", err)
	}
	return cfg, strings.TrimSpace(raw.LogFile), nil
}
