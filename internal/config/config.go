package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"

	"github.com/danmuck/dutctl/internal/iface"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v2"
)

var (
	ErrUnsupportedFormat = errors.New("config: unsupported file format")
	ErrInvalidConfig     = errors.New("config: invalid agent config")
)

// AgentConfig is the on-disk agent configuration. The same field names are
// accepted from TOML and YAML files.
type AgentConfig struct {
	Interface      string   `toml:"interface" yaml:"interface"`
	IP             string   `toml:"ip" yaml:"ip"`
	Port           int      `toml:"port" yaml:"port"`
	AdminAddr      string   `toml:"admin_addr" yaml:"admin_addr"`
	AdminOrigins   []string `toml:"admin_origins" yaml:"admin_origins"`
	LogFile        string   `toml:"log_file" yaml:"log_file"`
	HostapdDir     string   `toml:"hostapd_dir" yaml:"hostapd_dir"`
	SupplicantConf string   `toml:"supplicant_conf" yaml:"supplicant_conf"`
	WPSDir         string   `toml:"wps_dir" yaml:"wps_dir"`
	BridgeName     string   `toml:"bridge_name" yaml:"bridge_name"`
	DHCPServerIP   string   `toml:"dhcp_server_ip" yaml:"dhcp_server_ip"`
	P2PGoIntent    int      `toml:"p2p_go_intent" yaml:"p2p_go_intent"`
}

// Agent defaults applied to fields a file leaves empty.
func DefaultAgentConfig() AgentConfig {
	return AgentConfig{
		IP:             "0.0.0.0",
		Port:           9004,
		HostapdDir:     "/etc/hostapd",
		SupplicantConf: "/etc/wpa_supplicant/wpa_supplicant.conf",
		WPSDir:         "/tmp",
		BridgeName:     "br-wlans",
		DHCPServerIP:   "192.168.65.1",
		P2PGoIntent:    7,
	}
}

// Load reads path as TOML or YAML (by extension), fills defaults and validates.
func Load(path string) (AgentConfig, error) {
	var cfg AgentConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := loadFile(path, &cfg, toml.Unmarshal); err != nil {
			return AgentConfig{}, err
		}
	case ".yaml", ".yml":
		if err := loadFile(path, &cfg, yaml.UnmarshalStrict); err != nil {
			return AgentConfig{}, err
		}
	default:
		return AgentConfig{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	cfg = cfg.WithDefaults()
	if err := Validate(cfg); err != nil {
		return AgentConfig{}, err
	}
	return cfg, nil
}

func loadFile(path string, out any, unmarshal func([]byte, any) error) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config load failed (%s): %w", path, err)
	}
	if err := unmarshal(data, out); err != nil {
		return fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	return nil
}

// WithDefaults returns cfg with empty fields taken from DefaultAgentConfig.
func (cfg AgentConfig) WithDefaults() AgentConfig {
	def := DefaultAgentConfig()
	if strings.TrimSpace(cfg.IP) == "" {
		cfg.IP = def.IP
	}
	if cfg.Port == 0 {
		cfg.Port = def.Port
	}
	if strings.TrimSpace(cfg.HostapdDir) == "" {
		cfg.HostapdDir = def.HostapdDir
	}
	if strings.TrimSpace(cfg.SupplicantConf) == "" {
		cfg.SupplicantConf = def.SupplicantConf
	}
	if strings.TrimSpace(cfg.WPSDir) == "" {
		cfg.WPSDir = def.WPSDir
	}
	if strings.TrimSpace(cfg.BridgeName) == "" {
		cfg.BridgeName = def.BridgeName
	}
	if strings.TrimSpace(cfg.DHCPServerIP) == "" {
		cfg.DHCPServerIP = def.DHCPServerIP
	}
	if cfg.P2PGoIntent == 0 {
		cfg.P2PGoIntent = def.P2PGoIntent
	}
	return cfg
}

func Validate(cfg AgentConfig) error {
	if net.ParseIP(strings.TrimSpace(cfg.IP)) == nil {
		return fmt.Errorf("%w: ip %q is not an address", ErrInvalidConfig, cfg.IP)
	}
	if cfg.Port < 1 || cfg.Port > 65535 {
		return fmt.Errorf("%w: port %d out of range", ErrInvalidConfig, cfg.Port)
	}
	if _, err := iface.ParseSpec(cfg.Interface); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if net.ParseIP(strings.TrimSpace(cfg.DHCPServerIP)) == nil {
		return fmt.Errorf("%w: dhcp_server_ip %q is not an address", ErrInvalidConfig, cfg.DHCPServerIP)
	}
	if cfg.P2PGoIntent < 0 || cfg.P2PGoIntent > 15 {
		return fmt.Errorf("%w: p2p_go_intent %d out of range", ErrInvalidConfig, cfg.P2PGoIntent)
	}
	paths := []struct {
		name  string
		value string
	}{
		{"hostapd_dir", cfg.HostapdDir},
		{"supplicant_conf", cfg.SupplicantConf},
		{"wps_dir", cfg.WPSDir},
	}
	for _, p := range paths {
		if !filepath.IsAbs(p.value) {
			return fmt.Errorf("%w: %s must be absolute (%q)", ErrInvalidConfig, p.name, p.value)
		}
	}
	if cfg.LogFile != "" && strings.HasSuffix(cfg.LogFile, string(filepath.Separator)) {
		return fmt.Errorf("%w: log_file %q is a directory", ErrInvalidConfig, cfg.LogFile)
	}
	return nil
}
