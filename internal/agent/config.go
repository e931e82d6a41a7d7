package agent

import (
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/danmuck/dutctl/internal/config"
	"github.com/danmuck/dutctl/internal/platform"
)

// ServiceConfig configures the agent process.
type ServiceConfig struct {
	Interface         string
	ListenIP          string
	ListenPort        int
	AdminListenAddr   string
	AdminOrigins      []string
	Version           string
	HostapdDir        string
	SupplicantConf    string
	WPSDir            string
	BridgeName        string
	DHCPServerIP      string
	P2PGoIntent       int
	PinChecksumScript string
	// ScanSettle is how long an ANQP query waits after bringing up a
	// scanning supplicant.
	ScanSettle time.Duration
	Paths      platform.Paths
}

// Agent defaults for a standalone DUT.
func DefaultServiceConfig() ServiceConfig {
	def := config.DefaultAgentConfig()
	return ServiceConfig{
		ListenIP:          def.IP,
		ListenPort:        def.Port,
		Version:           "v1.0",
		HostapdDir:        def.HostapdDir,
		SupplicantConf:    def.SupplicantConf,
		WPSDir:            def.WPSDir,
		BridgeName:        def.BridgeName,
		DHCPServerIP:      def.DHCPServerIP,
		P2PGoIntent:       def.P2PGoIntent,
		PinChecksumScript: "/tmp/pin_checksum.sh",
		ScanSettle:        10 * time.Second,
		Paths:             platform.DefaultPaths(),
	}
}

// ServiceConfigFrom overlays a loaded config file onto the defaults.
func ServiceConfigFrom(file config.AgentConfig) ServiceConfig {
	file = file.WithDefaults()
	cfg := DefaultServiceConfig()
	cfg.Interface = file.Interface
	cfg.ListenIP = file.IP
	cfg.ListenPort = file.Port
	cfg.AdminListenAddr = file.AdminAddr
	cfg.AdminOrigins = file.AdminOrigins
	cfg.HostapdDir = file.HostapdDir
	cfg.SupplicantConf = file.SupplicantConf
	cfg.WPSDir = file.WPSDir
	cfg.BridgeName = file.BridgeName
	cfg.DHCPServerIP = file.DHCPServerIP
	cfg.P2PGoIntent = file.P2PGoIntent
	return cfg
}

// AgentConfig projects the file-backed fields back out, for validation and
// for writing the effective config.
func (c ServiceConfig) AgentConfig() config.AgentConfig {
	return config.AgentConfig{
		Interface:      c.Interface,
		IP:             c.ListenIP,
		Port:           c.ListenPort,
		AdminAddr:      c.AdminListenAddr,
		AdminOrigins:   c.AdminOrigins,
		HostapdDir:     c.HostapdDir,
		SupplicantConf: c.SupplicantConf,
		WPSDir:         c.WPSDir,
		BridgeName:     c.BridgeName,
		DHCPServerIP:   c.DHCPServerIP,
		P2PGoIntent:    c.P2PGoIntent,
	}
}

// Validate applies the config file rules to the effective settings.
func (c ServiceConfig) Validate() error {
	return config.Validate(c.AgentConfig())
}

func (c ServiceConfig) ListenAddr() string {
	return net.JoinHostPort(strings.TrimSpace(c.ListenIP), strconv.Itoa(c.ListenPort))
}
